package drive

import (
	"github.com/blar/virtualc64/curated"
	"github.com/blar/virtualc64/hardware/cpu"
	"github.com/blar/virtualc64/hardware/iec"
)

const (
	tracksPerDisk = 35
	ramSize       = 0x0800
	romBase       = 0xC000
)

// Drive is one VC1541 unit: its own 6502, two VIAs, and a GCR image of
// whatever D64 is currently inserted. Several units share one IEC bus,
// distinguished by DriveNum (device number 8-11).
type Drive struct {
	DriveNum int

	cpu  *cpu.CPU
	via1 *via // talks to the IEC bus
	via2 *via // talks to the step motor and read/write head

	ram [ramSize]uint8
	rom []uint8

	bus *iec.Bus

	tracks      [tracksPerDisk + 1][]uint8 // GCR image, index by track number (1-based)
	headTrack   int
	headPos     int
	cycleAccum  int
	diskPresent bool
	motorOn     bool
	ledOn       bool
}

// NewDrive constructs a drive with device number num (conventionally
// 8-11) and wires it onto bus.
func NewDrive(num int, bus *iec.Bus) *Drive {
	d := &Drive{DriveNum: num, bus: bus}
	d.via1 = newVIA()
	d.via2 = newVIA()

	d.via1.PortAInput = d.via1PortAInput
	d.via1.PortAOutput = d.via1PortAOutput
	d.via2.PortBInput = d.via2PortBInput
	d.via2.PortBOutput = d.via2PortBOutput
	d.via2.PortAInput = d.headByteInput

	d.cpu = cpu.NewCPU(d)
	bus.Attach(d)
	return d
}

// LoadROM installs the drive's DOS ROM image (expected 16 KiB, mapped
// at $C000-$FFFF and mirrored through the rest of the upper half).
func (d *Drive) LoadROM(image []uint8) { d.rom = image }

// Reset powers the drive's CPU on from its ROM reset vector.
func (d *Drive) Reset() { d.cpu.Reset() }

// Read and Write implement bus.CPUBus for the drive's own 6502, mapping
// its 2 KiB of RAM, the two VIAs (each mirrored across a 1 KiB window),
// and the ROM.
func (d *Drive) Read(addr uint16) uint8 {
	switch {
	case addr < ramSize:
		return d.ram[addr]
	case addr >= 0x1800 && addr < 0x1C00:
		return d.via1.Read(uint8(addr))
	case addr >= 0x1C00 && addr < 0x2000:
		return d.via2.Read(uint8(addr))
	case len(d.rom) > 0 && addr >= romBase:
		return d.rom[(addr-romBase)%uint16(len(d.rom))]
	default:
		return 0xFF
	}
}

func (d *Drive) Write(addr uint16, data uint8) {
	switch {
	case addr < ramSize:
		d.ram[addr] = data
	case addr >= 0x1800 && addr < 0x1C00:
		d.via1.Write(uint8(addr), data)
	case addr >= 0x1C00 && addr < 0x2000:
		d.via2.Write(uint8(addr), data)
	}
}

// via1PortAInput reports the IEC lines as seen by VIA1: CLK and DATA in
// bits 2 and 0 respectively (active-low on the physical bus, inverted to
// active-high here for consistency with the rest of the model), ATN in
// bit 7.
func (d *Drive) via1PortAInput() uint8 {
	v := uint8(0)
	if !d.bus.CLK() {
		v |= 0x04
	}
	if !d.bus.DATA() {
		v |= 0x01
	}
	if !d.bus.ATN() {
		v |= 0x80
	}
	return v
}

func (d *Drive) via1PortAOutput(uint8) { d.bus.Recompute() }

// DriveCLK, DriveDATA and DriveATN implement iec.Driver: the drive only
// ever drives CLK and DATA (never ATN, which is computer-to-peripheral
// only), reading VIA1's port A output bits.
func (d *Drive) DriveCLK() bool  { return d.via1.portA&0x08 != 0 }
func (d *Drive) DriveDATA() bool { return d.via1.portA&0x02 != 0 }
func (d *Drive) DriveATN() bool  { return false }

// via2PortBOutput decodes the step motor (bits 0-1, a Gray-code phase
// pair), the spindle motor (bit 2) and the LED (bit 3).
func (d *Drive) via2PortBOutput(v uint8) {
	d.motorOn = v&0x04 != 0
	d.ledOn = v&0x08 != 0

	phase := int(v & 0x03)
	halfTrack := d.headTrack
	switch (halfTrack%4 - phase + 4) % 4 {
	case 1:
		if d.headTrack > 1 {
			d.headTrack--
		}
	case 3:
		if d.headTrack < tracksPerDisk*2 {
			d.headTrack++
		}
	}
}

func (d *Drive) via2PortBInput() uint8 {
	v := uint8(0)
	if d.writeProtected() {
		v |= 0x10
	}
	return v
}

func (d *Drive) writeProtected() bool { return false }

// headByteInput returns the GCR byte currently under the read head,
// VIA2's port A in read mode. Bit-serial shifting is not modelled: the
// whole byte becomes available at once, a coarser approximation than
// silicon but sufficient for software that polls the shift register one
// byte at a time.
func (d *Drive) headByteInput() uint8 {
	track := d.currentTrackData()
	if len(track) == 0 {
		return 0
	}
	return track[d.headPos%len(track)]
}

func (d *Drive) currentTrackData() []uint8 {
	track := d.headTrack/2 + 1
	if track < 1 || track > tracksPerDisk {
		return nil
	}
	return d.tracks[track]
}

// Step runs one drive-clock tick: if the motor is spinning, it advances
// the head position once every zoneCyclesPerByte(track) CPU cycles and
// ticks both VIAs, raising the CPU's IRQ line if either now wants
// service.
func (d *Drive) Step() {
	if d.motorOn && d.diskPresent {
		track := d.headTrack/2 + 1
		if track < 1 {
			track = 1
		} else if track > tracksPerDisk {
			track = tracksPerDisk
		}
		d.cycleAccum++
		if d.cycleAccum >= zoneCyclesPerByte[speedZone(track)] {
			d.cycleAccum = 0
			if data := d.currentTrackData(); len(data) > 0 {
				d.headPos = (d.headPos + 1) % len(data)
			}
		}
	}

	irq1 := d.via1.Tick()
	irq2 := d.via2.Tick()
	d.cpu.SetIRQ(irq1 || irq2)
}

// ExecuteInstruction runs one whole instruction of the drive's CPU,
// ticking both VIAs and the head motor once per elapsed clock cycle.
func (d *Drive) ExecuteInstruction() int {
	return d.cpu.ExecuteInstruction(d.Step)
}

// InsertD64 converts a raw D64 disk image into this drive's per-track
// GCR buffers and spins up the motor's idea of "disk present". The image
// is expected to be the standard 35-track, 683-block layout; sector data
// is taken at face value, with no header/checksum synthesis attempted
// (a real drive would also encode sync marks and header blocks per
// sector, omitted here since nothing in this module reads them back out
// through anything other than sector-aligned fetches).
func (d *Drive) InsertD64(image []uint8) error {
	offset := 0
	for track := 1; track <= tracksPerDisk; track++ {
		sectors := sectorsPerTrack(track)
		var raw []uint8
		for s := 0; s < sectors; s++ {
			if offset+256 > len(image) {
				return curated.Errorf(curated.ErrFSWrongCapacity, len(image))
			}
			raw = append(raw, image[offset:offset+256]...)
			offset += 256
		}
		d.tracks[track] = encodeGCR(raw)
	}
	d.diskPresent = true
	d.headTrack = 2 // track 1, the innermost step position used here as track index base
	d.headPos = 0
	return nil
}

// LED and MotorOn expose the drive's two externally visible indicators,
// for a status display or debugger.
func (d *Drive) LED() bool     { return d.ledOn }
func (d *Drive) MotorOn() bool { return d.motorOn }

// RemoveDisk detaches the current image.
func (d *Drive) RemoveDisk() {
	d.diskPresent = false
	for i := range d.tracks {
		d.tracks[i] = nil
	}
}
