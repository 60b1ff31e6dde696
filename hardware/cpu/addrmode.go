package cpu

// AddrMode names one of the 6510's addressing modes.
type AddrMode int

// List of 6510 addressing modes.
const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// resolve consumes however many operand bytes mode requires from the
// instruction stream (advancing PC as it goes) and returns the effective
// address together with whether indexing crossed a page boundary, which
// costs documented opcodes an extra cycle on most addressing modes.
func (mc *CPU) resolve(mode AddrMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		addr = mc.reg.PC
		mc.reg.PC++
		return addr, false

	case ZeroPage:
		addr = uint16(mc.fetch8())
		return addr, false

	case ZeroPageX:
		addr = uint16(mc.fetch8() + mc.reg.X)
		return addr, false

	case ZeroPageY:
		addr = uint16(mc.fetch8() + mc.reg.Y)
		return addr, false

	case Absolute:
		addr = mc.fetch16()
		return addr, false

	case AbsoluteX:
		base := mc.fetch16()
		addr = base + uint16(mc.reg.X)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case AbsoluteY:
		base := mc.fetch16()
		addr = base + uint16(mc.reg.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case Indirect:
		ptr := mc.fetch16()
		addr = mc.readIndirectBug(ptr)
		return addr, false

	case IndirectX:
		zp := mc.fetch8() + mc.reg.X
		lo := mc.mem.Read(uint16(zp))
		hi := mc.mem.Read(uint16(zp + 1))
		addr = uint16(hi)<<8 | uint16(lo)
		return addr, false

	case IndirectY:
		zp := mc.fetch8()
		lo := mc.mem.Read(uint16(zp))
		hi := mc.mem.Read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(mc.reg.Y)
		return addr, (base & 0xFF00) != (addr & 0xFF00)

	case Relative:
		offset := int8(mc.fetch8())
		addr = uint16(int32(mc.reg.PC) + int32(offset))
		return addr, (addr & 0xFF00) != (mc.reg.PC & 0xFF00)
	}
	return 0, false
}

// readIndirectBug reproduces the 6502's JMP ($xxFF) page-wrap bug: the
// high byte is fetched from the start of the same page rather than the
// next page.
func (mc *CPU) readIndirectBug(ptr uint16) uint16 {
	lo := mc.mem.Read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := mc.mem.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.reg.PC)
	mc.reg.PC++
	return v
}

func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}
