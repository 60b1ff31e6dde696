package main

import (
	"github.com/blar/virtualc64/hardware/cia"
	"github.com/blar/virtualc64/hardware/cpu"
	"github.com/blar/virtualc64/hardware/display"
	"github.com/blar/virtualc64/hardware/drive"
	"github.com/blar/virtualc64/hardware/iec"
	"github.com/blar/virtualc64/hardware/instance"
	"github.com/blar/virtualc64/hardware/memory/addresses"
	"github.com/blar/virtualc64/hardware/memory/cartridge"
	"github.com/blar/virtualc64/hardware/memory/colorram"
	"github.com/blar/virtualc64/hardware/memory/memorymap"
	"github.com/blar/virtualc64/hardware/memory/ram"
	"github.com/blar/virtualc64/hardware/memory/rom"
	"github.com/blar/virtualc64/hardware/sid"
	"github.com/blar/virtualc64/hardware/vic"
	"github.com/blar/virtualc64/serialization"
)

// c64 wires every motherboard chip into one clocked Machine: RAM, the
// three mask ROMs, the memory map PLA, CPU, VIC-II, both CIAs, SID, the
// IEC bus and its attached drives, and the expansion port. It satisfies
// emulator.Machine and emulator.Stepper (via the embedded CPU's
// programmer-visible state) without either package needing to know any
// of this exists.
type c64 struct {
	ins *instance.Instance

	ram      *ram.RAM
	basic    *rom.ROM
	kernal   *rom.ROM
	char     *rom.ROM
	colorRAM *colorram.ColorRAM
	pla      *memorymap.Table

	portDDR  uint8
	portData uint8

	cpu  *cpu.CPU
	vic  *vic.VIC
	cia1 *cia.CIA
	cia2 *cia.CIA
	sid  *sid.SID
	disp *display.Display

	// sidRevision and sidFilterEnabled mirror the configuration last
	// applied to sid, which has no getter for either (SetRevision and
	// SetFilterEnabled are write-only on real hardware too); a snapshot
	// needs them to restore the engine to the same configuration.
	sidRevision      sid.Revision
	sidFilterEnabled bool

	cart *cartridge.Cartridge

	iecBus *iec.Bus
	drives []*drive.Drive

	prevRasterLine int
	lastBus        uint8
	atInstrBound   bool
}

// newC64 constructs a machine with basic/kernal/char already loaded and
// no cartridge or drive attached; attachCartridge/attachDrive add those
// afterwards.
func newC64(ins *instance.Instance, basic, kernal, char []uint8, ramPattern string, model vic.Model) (*c64, error) {
	m := &c64{ins: ins}

	m.ram = ram.NewRAM(ramPattern, ins.Random)
	m.colorRAM = colorram.NewColorRAM()
	m.pla = memorymap.NewTable()

	var err error
	if m.basic, err = rom.NewROM(basic, addresses.BasicROMLen); err != nil {
		return nil, err
	}
	if m.kernal, err = rom.NewROM(kernal, addresses.KernalROMLen); err != nil {
		return nil, err
	}
	if m.char, err = rom.NewROM(char, addresses.CharROMLen); err != nil {
		return nil, err
	}

	m.disp = display.New()
	m.vic = vic.NewVIC(model, vicMemory{m}, vicColorRAM{m}, m.disp)

	m.cia1 = cia.NewCIA(cia.CIA1, cia.Revision6526)
	m.cia2 = cia.NewCIA(cia.CIA2, cia.Revision6526)
	m.cia1.PortBInput = m.keyboardColumns
	m.cia1.SetClockDivider(model.CyclesPerFrame())
	m.cia2.SetClockDivider(model.CyclesPerFrame())

	m.sidRevision = sid.Revision6581
	m.sidFilterEnabled = true
	m.sid = sid.NewSID(sid.EngineReSID, m.sidRevision, m.sidFilterEnabled, 985248, 44100, 8192)

	m.iecBus = iec.NewBus()
	m.iecBus.Attach(cia2IECDriver{m})
	m.vicBankFromCIA2()

	m.cart, err = cartridge.NewCartridge(cartridge.VariantNone, nil)
	if err != nil {
		return nil, err
	}

	m.cpu = cpu.NewCPU(m)

	m.portDDR = 0x2F
	m.portData = 0x37
	m.pla.UpdatePLA(m.plaConfig())

	m.cpu.Reset()
	m.atInstrBound = true

	return m, nil
}

// attachCartridge replaces the expansion port contents, as if the
// machine had been powered off, a cartridge slotted in, and powered
// back on: the PLA is rebuilt from the cartridge's GAME/EXROM lines and
// the CPU's reset vector is re-fetched.
func (m *c64) attachCartridge(variant cartridge.Variant, data []uint8) error {
	c, err := cartridge.NewCartridge(variant, data)
	if err != nil {
		return err
	}
	m.cart = c
	m.pla.UpdatePLA(m.plaConfig())
	m.cpu.Reset()
	return nil
}

// attachDrive adds a VC1541 at the given device number, wired onto the
// same IEC bus as the computer's CIA2.
func (m *c64) attachDrive(num int, romImage []uint8) *drive.Drive {
	d := drive.NewDrive(num, m.iecBus)
	d.LoadROM(romImage)
	d.Reset()
	m.drives = append(m.drives, d)
	return d
}

// plaConfig derives the memory map's Config from the CPU port's bank
// bits and the attached cartridge's GAME/EXROM lines.
func (m *c64) plaConfig() memorymap.Config {
	portOut := (m.portData | ^m.portDDR) // bits configured as input float high
	return memorymap.Config{
		LORAM:  portOut&addresses.LORAM != 0,
		HIRAM:  portOut&addresses.HIRAM != 0,
		CHAREN: portOut&addresses.CHAREN != 0,
		GAME:   m.cart.GAME(),
		EXROM:  m.cart.EXROM(),
	}
}

// Jammed reports whether the 6510 has halted on an illegal opcode.
func (m *c64) Jammed() bool { return m.cpu.Jammed }

// ExecuteCycle runs the CPU's next instruction (or stalled cycle),
// ticking VIC, both CIAs, SID and every attached drive once per clock
// cycle the CPU consumes along the way, and reports whether any of
// those ticks crossed the last raster line of a frame. This mirrors the
// drive package's own cpu.ExecuteInstruction(d.Step) idiom rather than
// stepping the CPU one clock cycle at a time, since cpu.CPU only
// exposes whole-instruction execution with a per-cycle callback.
func (m *c64) ExecuteCycle() bool {
	frameDone := false

	m.atInstrBound = false
	m.cpu.ExecuteInstruction(func() {
		stall := m.vic.ExecuteCycle()
		m.cpu.HoldRDY(boolToInt(stall))

		if m.vic.RasterLine() < m.prevRasterLine {
			frameDone = true
		}
		m.prevRasterLine = m.vic.RasterLine()

		if m.cia1.Tick() {
			m.cpu.SetIRQ(true)
		} else {
			m.cpu.SetIRQ(false)
		}
		m.cpu.SetNMI(m.cia2.Tick())

		m.sid.Clock(1)

		for _, d := range m.drives {
			d.ExecuteInstruction()
		}

		if m.vic.IRQAsserted() {
			m.cpu.SetIRQ(true)
		}
	})
	m.atInstrBound = true

	return frameDone
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// PC, InstructionBoundary and LastInstructionBytes implement
// emulator.Stepper.
func (m *c64) PC() uint16                { return m.cpu.Registers().PC }
func (m *c64) InstructionBoundary() bool { return m.atInstrBound }
func (m *c64) LastInstructionBytes() int { return m.cpu.LastInstructionBytes() }

// Snapshot implements emulator.Snapshotter by delegating to
// serialization.Save across every stateful part of the machine.
func (m *c64) Snapshot() []byte {
	return serialization.Save(serialization.Version{Major: 1}, m)
}

// Restore reloads state saved by Snapshot.
func (m *c64) Restore(data []byte) error {
	return serialization.Load(data, serialization.Version{Major: 1}, m)
}

// keyboardColumns is CIA1's PortBInput: with no real keyboard attached,
// every column reads released (all bits high).
func (m *c64) keyboardColumns() uint8 { return 0xFF }

// vicMemory adapts c64 to vic.Memory: VIC's own 14-bit address space,
// windowed by CIA2's bank selection, with character ROM shining
// through at $1000-$1FFF of banks 0 and 2 regardless of CPU banking.
type vicMemory struct{ m *c64 }

func (a vicMemory) ChipRead(addr uint16) uint8 {
	bank := addr >> 14
	if (bank == 0 || bank == 2) && addr&0x3000 == 0x1000 {
		return a.m.char.Read(addr & 0x0FFF)
	}
	return a.m.ram.Read(addr)
}

// vicColorRAM adapts c64's colour RAM to vic.ColorRAM.
type vicColorRAM struct{ m *c64 }

func (a vicColorRAM) Read(addr uint16) uint8 {
	return a.m.colorRAM.Read(addr, 0)
}

// cia2IECDriver adapts CIA2's output port to iec.Driver: port A bits 3
// (DATA) and 4 (CLK) drive the serial bus, inverted (a set bit pulls
// the line low); bit 5 drives ATN the same way. Bits 0-1 instead select
// VIC's bank and never reach the bus.
type cia2IECDriver struct{ m *c64 }

func (d cia2IECDriver) DriveCLK() bool  { return d.m.cia2.OutputA()&0x10 != 0 }
func (d cia2IECDriver) DriveDATA() bool { return d.m.cia2.OutputA()&0x08 != 0 }
func (d cia2IECDriver) DriveATN() bool  { return d.m.cia2.OutputA()&0x20 != 0 }
