package cpu

// Flags is the 6510 processor status register. The unused bit 5 always
// reads back set; Break only appears in the byte pushed to the stack by
// BRK/PHP, never in the live register.
type Flags struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Overflow         bool
	Negative         bool
}

const (
	flagCarry    = 0x01
	flagZero     = 0x02
	flagIRQ      = 0x04
	flagDecimal  = 0x08
	flagBreak    = 0x10
	flagUnused   = 0x20
	flagOverflow = 0x40
	flagNegative = 0x80
)

// Byte packs the flags into the conventional 6502 status byte, as pushed
// to the stack by PHP/BRK/interrupt entry.
func (f Flags) Byte(brk bool) uint8 {
	var v uint8 = flagUnused
	if f.Carry {
		v |= flagCarry
	}
	if f.Zero {
		v |= flagZero
	}
	if f.InterruptDisable {
		v |= flagIRQ
	}
	if f.Decimal {
		v |= flagDecimal
	}
	if brk {
		v |= flagBreak
	}
	if f.Overflow {
		v |= flagOverflow
	}
	if f.Negative {
		v |= flagNegative
	}
	return v
}

// SetByte unpacks a status byte (as pulled by PLP/RTI/interrupt exit) into
// the flags. Break and the unused bit are not stored as CPU state.
func (f *Flags) SetByte(v uint8) {
	f.Carry = v&flagCarry != 0
	f.Zero = v&flagZero != 0
	f.InterruptDisable = v&flagIRQ != 0
	f.Decimal = v&flagDecimal != 0
	f.Overflow = v&flagOverflow != 0
	f.Negative = v&flagNegative != 0
}

func (f *Flags) setNZ(v uint8) {
	f.Zero = v == 0
	f.Negative = v&0x80 != 0
}

// Registers holds the 6510's programmer-visible state: the three 8 bit
// general registers, the stack pointer, the program counter and the
// status flags. Unlike the bit-sliced register model used elsewhere in
// the pack, these are plain fields: nothing about 6510 arithmetic needs
// anything more than Go's native uint8/uint16 wraparound.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  Flags
}
