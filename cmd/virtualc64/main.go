// Command virtualc64 is a headless Commodore 64 emulator: it powers on a
// machine built from the ROM images and options given on the command
// line, optionally attaches a cartridge and a disk drive, runs it for a
// fixed number of instructions or until interrupted, and writes a
// snapshot on the way out.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blar/virtualc64/cartridgeloader"
	"github.com/blar/virtualc64/debugger/monitor"
	"github.com/blar/virtualc64/emulator"
	"github.com/blar/virtualc64/environment"
	"github.com/blar/virtualc64/filesystem"
	"github.com/blar/virtualc64/hardware/instance"
	"github.com/blar/virtualc64/hardware/memory/cartridge"
	"github.com/blar/virtualc64/hardware/vic"
	"github.com/blar/virtualc64/logger"
	"github.com/blar/virtualc64/messagequeue"
	"github.com/blar/virtualc64/modalflag"
	"github.com/blar/virtualc64/preferences"
	"github.com/blar/virtualc64/resources"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "virtualc64:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin, stdout, stderr *os.File) error {
	var md modalflag.Modes
	md.Output = stdout
	md.NewArgs(args)

	basicPath := md.AddString("basic", "", "path to the 8 KiB BASIC ROM image")
	kernalPath := md.AddString("kernal", "", "path to the 8 KiB KERNAL ROM image")
	charPath := md.AddString("char", "", "path to the 4 KiB character ROM image")
	cartPath := md.AddString("cart", "", "path to a cartridge image")
	cartVariant := md.AddString("cart-variant", "NORMAL", "cartridge bank-switching scheme (NORMAL, MAGIC_DESK, FINAL_III, OCEAN, EASYFLASH)")
	diskPath := md.AddString("disk", "", "path to a D64 disk image to insert into drive 8")
	driveROMPath := md.AddString("drive-rom", "", "path to the VC1541's DOS ROM image; required if -disk is given")
	snapshotIn := md.AddString("snapshot-in", "", "resume from a snapshot written by a previous run")
	snapshotOut := md.AddString("snapshot-out", "", "write a snapshot here on exit")
	cycles := md.AddInt("cycles", 0, "run for this many instructions and exit; 0 runs until interrupted")
	warp := md.AddBool("warp", false, "run without pacing to the video refresh rate")
	monitorOn := md.AddBool("monitor", false, "arm breakpoints/watchpoints from a terminal session before running")

	result, err := md.Parse()
	switch result {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *basicPath == "" || *kernalPath == "" || *charPath == "" {
		return fmt.Errorf("-basic, -kernal and -char are all required")
	}

	prefsPath, err := resources.JoinPath("preferences")
	if err != nil {
		return err
	}
	prefs, err := preferences.NewPreferences(prefsPath)
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}
	_ = prefs.Load()

	ins, err := instance.NewInstance(prefs)
	if err != nil {
		return fmt.Errorf("creating instance: %w", err)
	}

	// env carries the machine-level context instance.Instance doesn't:
	// the notification queue and whichever loader most recently supplied
	// an image, mirroring the split the teacher itself draws between a
	// chip-level instance and a richer, entrypoint-level environment.
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, prefs)
	if err != nil {
		return fmt.Errorf("creating environment: %w", err)
	}

	basicLoader, err := cartridgeloader.NewLoaderFromFilename(*basicPath, "ROM")
	if err != nil {
		return fmt.Errorf("loading BASIC ROM: %w", err)
	}
	if err := basicLoader.Open(); err != nil {
		return fmt.Errorf("loading BASIC ROM: %w", err)
	}
	basic := *basicLoader.Data
	env.Loader = basicLoader

	kernal, err := loadImage(*kernalPath, "ROM")
	if err != nil {
		return fmt.Errorf("loading KERNAL ROM: %w", err)
	}
	char, err := loadImage(*charPath, "ROM")
	if err != nil {
		return fmt.Errorf("loading character ROM: %w", err)
	}

	model := modelFromString(ins.Prefs.VICModel.Get())

	m, err := newC64(ins, basic, kernal, char, ins.Prefs.RAMPattern.Get(), model)
	if err != nil {
		return fmt.Errorf("constructing machine: %w", err)
	}

	if *cartPath != "" {
		variant, err := variantFromString(*cartVariant)
		if err != nil {
			return err
		}
		cartLoader, err := cartridgeloader.NewLoaderFromFilename(*cartPath, "CRT")
		if err != nil {
			return fmt.Errorf("loading cartridge: %w", err)
		}
		if err := cartLoader.Open(); err != nil {
			return fmt.Errorf("loading cartridge: %w", err)
		}
		env.Loader = cartLoader
		if err := m.attachCartridge(variant, *cartLoader.Data); err != nil {
			return fmt.Errorf("attaching cartridge: %w", err)
		}
	}

	if *diskPath != "" {
		if *driveROMPath == "" {
			return fmt.Errorf("-drive-rom is required when -disk is given")
		}
		driveROM, err := loadImage(*driveROMPath, "ROM")
		if err != nil {
			return fmt.Errorf("loading drive ROM: %w", err)
		}
		diskData, err := loadImage(*diskPath, "D64")
		if err != nil {
			return fmt.Errorf("loading disk image: %w", err)
		}

		dev := filesystem.NewDevice(filesystem.KindD64SS)
		if err := dev.Import(diskData); err != nil {
			return fmt.Errorf("importing disk image: %w", err)
		}

		d := m.attachDrive(8, driveROM)
		if err := d.InsertD64(dev.Export()); err != nil {
			return fmt.Errorf("inserting disk: %w", err)
		}
	}

	if *snapshotIn != "" {
		data, err := os.ReadFile(*snapshotIn)
		if err != nil {
			return fmt.Errorf("reading snapshot: %w", err)
		}
		if err := m.Restore(data); err != nil {
			return fmt.Errorf("restoring snapshot: %w", err)
		}
	}

	env.Notifications.AddListener("virtualc64", func(msg messagequeue.Message) {
		if env.AllowLogging() {
			logger.Logf("virtualc64", "%s", msg.Kind)
		}
	})

	var mon monitor.Monitor
	if *monitorOn {
		term, err := monitor.NewTerminal(stdin, stdout)
		if err != nil {
			return fmt.Errorf("starting monitor: %w", err)
		}
		fmt.Fprintln(stdout, "monitor: arm breakpoints/watchpoints, then \"quit\" to run")
		if err := mon.REPL(term, m); err != nil {
			return fmt.Errorf("monitor session: %w", err)
		}
	}

	emu := emulator.NewEmulator(m, env.Notifications, refreshRateFor(model))
	emu.SetWarp(*warp)
	emu.PowerOn()

	if *monitorOn {
		runUntilHit(m, &mon, *cycles)
	} else if *cycles > 0 {
		for i := 0; i < *cycles; i++ {
			m.ExecuteCycle()
		}
	} else {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		emu.Run()
		<-sig
		emu.Pause()
	}

	emu.PowerOff()

	if *snapshotOut != "" {
		if err := os.WriteFile(*snapshotOut, m.Snapshot(), 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}

	logger.Write(stderr)

	return nil
}

// runUntilHit steps the machine one instruction at a time, checking
// the monitor's armed breakpoints and watchpoints at every boundary,
// stopping early on the first hit. limit caps the run to that many
// instructions when positive; 0 runs until a hit or the machine jams.
func runUntilHit(m *c64, mon *monitor.Monitor, limit int) {
	for i := 0; limit <= 0 || i < limit; i++ {
		m.ExecuteCycle()
		if m.Jammed() {
			return
		}
		if hit, ok := mon.Check(m); ok {
			logger.Logf("monitor", "%s", hit)
			return
		}
	}
}

// loadImage reads a file through cartridgeloader so ROM, cartridge and
// disk images all go through the same open/fingerprint/hash path.
func loadImage(path, format string) ([]byte, error) {
	ld, err := cartridgeloader.NewLoaderFromFilename(path, format)
	if err != nil {
		return nil, err
	}
	if err := ld.Open(); err != nil {
		return nil, err
	}
	return *ld.Data, nil
}

func modelFromString(s string) vic.Model {
	switch s {
	case "NTSC_6567":
		return vic.ModelNTSC6567
	case "PAL_8565":
		return vic.ModelPAL8565
	case "NTSC_8562":
		return vic.ModelNTSC8562
	default:
		return vic.ModelPAL6569
	}
}

func refreshRateFor(model vic.Model) float32 {
	switch model {
	case vic.ModelNTSC6567, vic.ModelNTSC8562:
		return 60.0
	default:
		return 50.0
	}
}

func variantFromString(s string) (cartridge.Variant, error) {
	switch s {
	case "NONE":
		return cartridge.VariantNone, nil
	case "NORMAL":
		return cartridge.VariantNormal, nil
	case "MAGIC_DESK":
		return cartridge.VariantMagicDesk, nil
	case "FINAL_III":
		return cartridge.VariantFinalIII, nil
	case "OCEAN":
		return cartridge.VariantOcean, nil
	case "EASYFLASH":
		return cartridge.VariantEasyFlash, nil
	}
	return cartridge.VariantNone, fmt.Errorf("unknown cartridge variant %q", s)
}
