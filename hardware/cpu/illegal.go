package cpu

// defineIllegalOpcodes fills in the undocumented opcodes the 6510's NMOS
// decode logic produces as a side effect of its instruction matrix. C64
// software - and the Atari/NES/C64 demo scenes alike - routinely relies
// on these for their exact cycle counts, so they are implemented here
// rather than left to fall through to JAM. True illegal JAM/KIL opcodes
// are left at their init() default.
func defineIllegalOpcodes() {
	// SLO: ASL then ORA, combined into a single read-modify-write.
	defIllegal(0x07, "SLO", ZeroPage, 5, false, opSLO)
	defIllegal(0x17, "SLO", ZeroPageX, 6, false, opSLO)
	defIllegal(0x0F, "SLO", Absolute, 6, false, opSLO)
	defIllegal(0x1F, "SLO", AbsoluteX, 7, false, opSLO)
	defIllegal(0x1B, "SLO", AbsoluteY, 7, false, opSLO)
	defIllegal(0x03, "SLO", IndirectX, 8, false, opSLO)
	defIllegal(0x13, "SLO", IndirectY, 8, false, opSLO)

	// RLA: ROL then AND.
	defIllegal(0x27, "RLA", ZeroPage, 5, false, opRLA)
	defIllegal(0x37, "RLA", ZeroPageX, 6, false, opRLA)
	defIllegal(0x2F, "RLA", Absolute, 6, false, opRLA)
	defIllegal(0x3F, "RLA", AbsoluteX, 7, false, opRLA)
	defIllegal(0x3B, "RLA", AbsoluteY, 7, false, opRLA)
	defIllegal(0x23, "RLA", IndirectX, 8, false, opRLA)
	defIllegal(0x33, "RLA", IndirectY, 8, false, opRLA)

	// SRE: LSR then EOR.
	defIllegal(0x47, "SRE", ZeroPage, 5, false, opSRE)
	defIllegal(0x57, "SRE", ZeroPageX, 6, false, opSRE)
	defIllegal(0x4F, "SRE", Absolute, 6, false, opSRE)
	defIllegal(0x5F, "SRE", AbsoluteX, 7, false, opSRE)
	defIllegal(0x5B, "SRE", AbsoluteY, 7, false, opSRE)
	defIllegal(0x43, "SRE", IndirectX, 8, false, opSRE)
	defIllegal(0x53, "SRE", IndirectY, 8, false, opSRE)

	// RRA: ROR then ADC.
	defIllegal(0x67, "RRA", ZeroPage, 5, false, opRRA)
	defIllegal(0x77, "RRA", ZeroPageX, 6, false, opRRA)
	defIllegal(0x6F, "RRA", Absolute, 6, false, opRRA)
	defIllegal(0x7F, "RRA", AbsoluteX, 7, false, opRRA)
	defIllegal(0x7B, "RRA", AbsoluteY, 7, false, opRRA)
	defIllegal(0x63, "RRA", IndirectX, 8, false, opRRA)
	defIllegal(0x73, "RRA", IndirectY, 8, false, opRRA)

	// SAX: store A AND X.
	defIllegal(0x87, "SAX", ZeroPage, 3, false, opSAX)
	defIllegal(0x97, "SAX", ZeroPageY, 4, false, opSAX)
	defIllegal(0x8F, "SAX", Absolute, 4, false, opSAX)
	defIllegal(0x83, "SAX", IndirectX, 6, false, opSAX)

	// LAX: load A and X from the same byte.
	defIllegal(0xA7, "LAX", ZeroPage, 3, false, opLAX)
	defIllegal(0xB7, "LAX", ZeroPageY, 4, false, opLAX)
	defIllegal(0xAF, "LAX", Absolute, 4, false, opLAX)
	defIllegal(0xBF, "LAX", AbsoluteY, 4, true, opLAX)
	defIllegal(0xA3, "LAX", IndirectX, 6, false, opLAX)
	defIllegal(0xB3, "LAX", IndirectY, 5, true, opLAX)

	// DCP: DEC then CMP.
	defIllegal(0xC7, "DCP", ZeroPage, 5, false, opDCP)
	defIllegal(0xD7, "DCP", ZeroPageX, 6, false, opDCP)
	defIllegal(0xCF, "DCP", Absolute, 6, false, opDCP)
	defIllegal(0xDF, "DCP", AbsoluteX, 7, false, opDCP)
	defIllegal(0xDB, "DCP", AbsoluteY, 7, false, opDCP)
	defIllegal(0xC3, "DCP", IndirectX, 8, false, opDCP)
	defIllegal(0xD3, "DCP", IndirectY, 8, false, opDCP)

	// ISC (ISB): INC then SBC.
	defIllegal(0xE7, "ISC", ZeroPage, 5, false, opISC)
	defIllegal(0xF7, "ISC", ZeroPageX, 6, false, opISC)
	defIllegal(0xEF, "ISC", Absolute, 6, false, opISC)
	defIllegal(0xFF, "ISC", AbsoluteX, 7, false, opISC)
	defIllegal(0xFB, "ISC", AbsoluteY, 7, false, opISC)
	defIllegal(0xE3, "ISC", IndirectX, 8, false, opISC)
	defIllegal(0xF3, "ISC", IndirectY, 8, false, opISC)

	// single-byte immediate-operand illegals.
	defIllegal(0x0B, "ANC", Immediate, 2, false, opANC)
	defIllegal(0x2B, "ANC", Immediate, 2, false, opANC)
	defIllegal(0x4B, "ALR", Immediate, 2, false, opALR)
	defIllegal(0x6B, "ARR", Immediate, 2, false, opARR)
	defIllegal(0xCB, "AXS", Immediate, 2, false, opAXS)
	defIllegal(0xAB, "LAX", Immediate, 2, false, opLAX)

	defIllegal(0xBB, "LAS", AbsoluteY, 4, true, opLAS)

	// illegal single-byte NOPs.
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		defIllegal(op, "NOP", Implied, 2, false, opNOP)
	}

	// illegal NOPs that still consume an immediate operand byte.
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		defIllegal(op, "NOP", Immediate, 2, false, opNOP)
	}

	// illegal NOPs over zero page.
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		defIllegal(op, "NOP", ZeroPage, 3, false, opNOP)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		defIllegal(op, "NOP", ZeroPageX, 4, false, opNOP)
	}

	// illegal NOPs over absolute addressing.
	defIllegal(0x0C, "NOP", Absolute, 4, false, opNOP)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		defIllegal(op, "NOP", AbsoluteX, 4, true, opNOP)
	}
}

func opSLO(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	mc.reg.P.Carry = v&0x80 != 0
	v <<= 1
	opWrite(mc, addr, mode, v)
	mc.reg.A |= v
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opRLA(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	carryIn := uint8(0)
	if mc.reg.P.Carry {
		carryIn = 1
	}
	mc.reg.P.Carry = v&0x80 != 0
	v = (v << 1) | carryIn
	opWrite(mc, addr, mode, v)
	mc.reg.A &= v
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opSRE(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	mc.reg.P.Carry = v&0x01 != 0
	v >>= 1
	opWrite(mc, addr, mode, v)
	mc.reg.A ^= v
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opRRA(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	carryIn := uint8(0)
	if mc.reg.P.Carry {
		carryIn = 0x80
	}
	mc.reg.P.Carry = v&0x01 != 0
	v = (v >> 1) | carryIn
	opWrite(mc, addr, mode, v)
	adc(mc, v)
	return 0
}

func opSAX(mc *CPU, addr uint16, mode AddrMode) int {
	mc.mem.Write(addr, mc.reg.A&mc.reg.X)
	return 0
}

func opLAX(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	mc.reg.A = v
	mc.reg.X = v
	mc.reg.P.setNZ(v)
	return 0
}

func opDCP(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode) - 1
	opWrite(mc, addr, mode, v)
	compare(mc, mc.reg.A, v)
	return 0
}

func opISC(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode) + 1
	opWrite(mc, addr, mode, v)
	sbc(mc, v)
	return 0
}

func opANC(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A &= opRead(mc, addr, mode)
	mc.reg.P.setNZ(mc.reg.A)
	mc.reg.P.Carry = mc.reg.A&0x80 != 0
	return 0
}

func opALR(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A &= opRead(mc, addr, mode)
	mc.reg.P.Carry = mc.reg.A&0x01 != 0
	mc.reg.A >>= 1
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opARR(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A &= opRead(mc, addr, mode)
	carryIn := uint8(0)
	if mc.reg.P.Carry {
		carryIn = 0x80
	}
	mc.reg.A = (mc.reg.A >> 1) | carryIn
	mc.reg.P.setNZ(mc.reg.A)
	mc.reg.P.Carry = mc.reg.A&0x40 != 0
	mc.reg.P.Overflow = (mc.reg.A>>6)&1^(mc.reg.A>>5)&1 != 0
	return 0
}

func opAXS(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	r := (mc.reg.A & mc.reg.X) - v
	mc.reg.P.Carry = mc.reg.A&mc.reg.X >= v
	mc.reg.X = r
	mc.reg.P.setNZ(mc.reg.X)
	return 0
}

func opLAS(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode) & mc.reg.SP
	mc.reg.A = v
	mc.reg.X = v
	mc.reg.SP = v
	mc.reg.P.setNZ(v)
	return 0
}
