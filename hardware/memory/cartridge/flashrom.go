package cartridge

// FlashState is a state of the Am29F040B command state machine.
type FlashState int

// List of Am29F040B states.
const (
	FlashRead FlashState = iota
	FlashMagic1
	FlashMagic2
	FlashAutoselect
	FlashByteProgram
	FlashByteProgramError
	FlashEraseMagic1
	FlashEraseMagic2
	FlashEraseSelect
	FlashChipErase
	FlashSectorErase
	FlashSectorEraseTimeout
	FlashSectorEraseSuspend
)

const (
	flashSize       = 512 * 1024
	flashSectorSize = 64 * 1024
	flashNumSectors = flashSize / flashSectorSize
)

// FlashRom models the Am29F040B flash ROM chip used by EasyFlash-style
// cartridges: 512 KiB in 8 64 KiB sectors, addressed through a
// command-sequence state machine rather than a plain write.
type FlashRom struct {
	data  [flashSize]uint8
	state FlashState

	// baseState is the state a completed or aborted command sequence
	// returns to; READ for normal chips.
	baseState FlashState

	manufacturerID uint8
	deviceID       uint8
}

// NewFlashRom constructs a FlashRom pre-loaded with data (truncated or
// zero-padded to 512 KiB).
func NewFlashRom(data []uint8) *FlashRom {
	f := &FlashRom{
		state:          FlashRead,
		baseState:      FlashRead,
		manufacturerID: 0x01,
		deviceID:       0xA4,
	}
	copy(f.data[:], data)
	return f
}

func firstCommandAddr(a uint32) bool  { return a&0x7FF == 0x555 }
func secondCommandAddr(a uint32) bool { return a&0x7FF == 0x2AA }

func sectorOf(addr uint32) int {
	return int(addr) / flashSectorSize
}

// Peek returns the byte visible at addr given the current command state,
// without causing any state transition.
func (f *FlashRom) Peek(addr uint32) uint8 {
	if f.state == FlashAutoselect {
		switch addr & 0x7FF {
		case 0x000:
			return f.manufacturerID
		case 0x001:
			return f.deviceID
		}
	}
	return f.data[int(addr)%flashSize]
}

// Poke applies one step of the Am29F040B command protocol. Any write that
// doesn't match the expected next byte of a sequence returns the chip to
// baseState.
func (f *FlashRom) Poke(addr uint32, v uint8) {
	switch f.state {
	case FlashRead, FlashAutoselect:
		if firstCommandAddr(addr) && v == 0xAA {
			f.state = FlashMagic1
			return
		}
		f.state = f.baseState

	case FlashMagic1:
		if secondCommandAddr(addr) && v == 0x55 {
			f.state = FlashMagic2
			return
		}
		f.state = f.baseState

	case FlashMagic2:
		if firstCommandAddr(addr) {
			switch v {
			case 0xA0:
				f.state = FlashByteProgram
				return
			case 0x80:
				f.state = FlashEraseMagic1
				return
			case 0x90:
				f.state = FlashAutoselect
				return
			case 0xF0:
				f.state = FlashRead
				return
			}
		}
		f.state = f.baseState

	case FlashByteProgram:
		f.data[int(addr)%flashSize] &= v
		f.state = FlashRead

	case FlashEraseMagic1:
		if firstCommandAddr(addr) && v == 0xAA {
			f.state = FlashEraseMagic2
			return
		}
		f.state = f.baseState

	case FlashEraseMagic2:
		if secondCommandAddr(addr) && v == 0x55 {
			f.state = FlashEraseSelect
			return
		}
		f.state = f.baseState

	case FlashEraseSelect:
		switch {
		case firstCommandAddr(addr) && v == 0x10:
			for i := range f.data {
				f.data[i] = 0xFF
			}
			f.state = FlashRead
		case v == 0x30:
			f.eraseSector(sectorOf(addr))
			f.state = FlashRead
		default:
			f.state = f.baseState
		}

	default:
		f.state = f.baseState
	}
}

func (f *FlashRom) eraseSector(sector int) {
	if sector < 0 || sector >= flashNumSectors {
		return
	}
	start := sector * flashSectorSize
	for i := start; i < start+flashSectorSize; i++ {
		f.data[i] = 0xFF
	}
}

// State returns the chip's current command state.
func (f *FlashRom) State() FlashState {
	return f.state
}

// Snapshot returns a copy of the flash contents for serialization; the
// command state is not included.
func (f *FlashRom) Snapshot() [flashSize]uint8 {
	return f.data
}

// Restore replaces the flash contents from a snapshot taken by Snapshot,
// and resets the command state machine to Read.
func (f *FlashRom) Restore(data [flashSize]uint8) {
	f.data = data
	f.state = FlashRead
}
