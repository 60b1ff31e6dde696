package cpu

// opSpec describes one opcode: its addressing mode, base cycle count, and
// the function that performs it. exec returns any extra cycles beyond
// the base count (a taken branch, a page-crossing relative jump).
type opSpec struct {
	mnemonic      string
	mode          AddrMode
	cycles        int
	pageSensitive bool
	illegal       bool
	exec          func(mc *CPU, addr uint16, mode AddrMode) int
}

var opcodeTable [256]opSpec

func def(opcode uint8, mnemonic string, mode AddrMode, cycles int, pageSensitive bool, exec func(mc *CPU, addr uint16, mode AddrMode) int) {
	opcodeTable[opcode] = opSpec{mnemonic: mnemonic, mode: mode, cycles: cycles, pageSensitive: pageSensitive, exec: exec}
}

func defIllegal(opcode uint8, mnemonic string, mode AddrMode, cycles int, pageSensitive bool, exec func(mc *CPU, addr uint16, mode AddrMode) int) {
	def(opcode, mnemonic, mode, cycles, pageSensitive, exec)
	opcodeTable[opcode].illegal = true
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opSpec{mnemonic: "JAM", mode: Implied, cycles: 1, illegal: true, exec: opJAM}
	}

	// load/store
	def(0xA9, "LDA", Immediate, 2, false, opLDA)
	def(0xA5, "LDA", ZeroPage, 3, false, opLDA)
	def(0xB5, "LDA", ZeroPageX, 4, false, opLDA)
	def(0xAD, "LDA", Absolute, 4, false, opLDA)
	def(0xBD, "LDA", AbsoluteX, 4, true, opLDA)
	def(0xB9, "LDA", AbsoluteY, 4, true, opLDA)
	def(0xA1, "LDA", IndirectX, 6, false, opLDA)
	def(0xB1, "LDA", IndirectY, 5, true, opLDA)

	def(0xA2, "LDX", Immediate, 2, false, opLDX)
	def(0xA6, "LDX", ZeroPage, 3, false, opLDX)
	def(0xB6, "LDX", ZeroPageY, 4, false, opLDX)
	def(0xAE, "LDX", Absolute, 4, false, opLDX)
	def(0xBE, "LDX", AbsoluteY, 4, true, opLDX)

	def(0xA0, "LDY", Immediate, 2, false, opLDY)
	def(0xA4, "LDY", ZeroPage, 3, false, opLDY)
	def(0xB4, "LDY", ZeroPageX, 4, false, opLDY)
	def(0xAC, "LDY", Absolute, 4, false, opLDY)
	def(0xBC, "LDY", AbsoluteX, 4, true, opLDY)

	def(0x85, "STA", ZeroPage, 3, false, opSTA)
	def(0x95, "STA", ZeroPageX, 4, false, opSTA)
	def(0x8D, "STA", Absolute, 4, false, opSTA)
	def(0x9D, "STA", AbsoluteX, 5, false, opSTA)
	def(0x99, "STA", AbsoluteY, 5, false, opSTA)
	def(0x81, "STA", IndirectX, 6, false, opSTA)
	def(0x91, "STA", IndirectY, 6, false, opSTA)

	def(0x86, "STX", ZeroPage, 3, false, opSTX)
	def(0x96, "STX", ZeroPageY, 4, false, opSTX)
	def(0x8E, "STX", Absolute, 4, false, opSTX)

	def(0x84, "STY", ZeroPage, 3, false, opSTY)
	def(0x94, "STY", ZeroPageX, 4, false, opSTY)
	def(0x8C, "STY", Absolute, 4, false, opSTY)

	// transfers
	def(0xAA, "TAX", Implied, 2, false, opTAX)
	def(0xA8, "TAY", Implied, 2, false, opTAY)
	def(0x8A, "TXA", Implied, 2, false, opTXA)
	def(0x98, "TYA", Implied, 2, false, opTYA)
	def(0xBA, "TSX", Implied, 2, false, opTSX)
	def(0x9A, "TXS", Implied, 2, false, opTXS)

	// stack
	def(0x48, "PHA", Implied, 3, false, opPHA)
	def(0x08, "PHP", Implied, 3, false, opPHP)
	def(0x68, "PLA", Implied, 4, false, opPLA)
	def(0x28, "PLP", Implied, 4, false, opPLP)

	// logic
	def(0x29, "AND", Immediate, 2, false, opAND)
	def(0x25, "AND", ZeroPage, 3, false, opAND)
	def(0x35, "AND", ZeroPageX, 4, false, opAND)
	def(0x2D, "AND", Absolute, 4, false, opAND)
	def(0x3D, "AND", AbsoluteX, 4, true, opAND)
	def(0x39, "AND", AbsoluteY, 4, true, opAND)
	def(0x21, "AND", IndirectX, 6, false, opAND)
	def(0x31, "AND", IndirectY, 5, true, opAND)

	def(0x09, "ORA", Immediate, 2, false, opORA)
	def(0x05, "ORA", ZeroPage, 3, false, opORA)
	def(0x15, "ORA", ZeroPageX, 4, false, opORA)
	def(0x0D, "ORA", Absolute, 4, false, opORA)
	def(0x1D, "ORA", AbsoluteX, 4, true, opORA)
	def(0x19, "ORA", AbsoluteY, 4, true, opORA)
	def(0x01, "ORA", IndirectX, 6, false, opORA)
	def(0x11, "ORA", IndirectY, 5, true, opORA)

	def(0x49, "EOR", Immediate, 2, false, opEOR)
	def(0x45, "EOR", ZeroPage, 3, false, opEOR)
	def(0x55, "EOR", ZeroPageX, 4, false, opEOR)
	def(0x4D, "EOR", Absolute, 4, false, opEOR)
	def(0x5D, "EOR", AbsoluteX, 4, true, opEOR)
	def(0x59, "EOR", AbsoluteY, 4, true, opEOR)
	def(0x41, "EOR", IndirectX, 6, false, opEOR)
	def(0x51, "EOR", IndirectY, 5, true, opEOR)

	def(0x24, "BIT", ZeroPage, 3, false, opBIT)
	def(0x2C, "BIT", Absolute, 4, false, opBIT)

	// arithmetic
	def(0x69, "ADC", Immediate, 2, false, opADC)
	def(0x65, "ADC", ZeroPage, 3, false, opADC)
	def(0x75, "ADC", ZeroPageX, 4, false, opADC)
	def(0x6D, "ADC", Absolute, 4, false, opADC)
	def(0x7D, "ADC", AbsoluteX, 4, true, opADC)
	def(0x79, "ADC", AbsoluteY, 4, true, opADC)
	def(0x61, "ADC", IndirectX, 6, false, opADC)
	def(0x71, "ADC", IndirectY, 5, true, opADC)

	def(0xE9, "SBC", Immediate, 2, false, opSBC)
	def(0xE5, "SBC", ZeroPage, 3, false, opSBC)
	def(0xF5, "SBC", ZeroPageX, 4, false, opSBC)
	def(0xED, "SBC", Absolute, 4, false, opSBC)
	def(0xFD, "SBC", AbsoluteX, 4, true, opSBC)
	def(0xF9, "SBC", AbsoluteY, 4, true, opSBC)
	def(0xE1, "SBC", IndirectX, 6, false, opSBC)
	def(0xF1, "SBC", IndirectY, 5, true, opSBC)

	def(0xC9, "CMP", Immediate, 2, false, opCMP)
	def(0xC5, "CMP", ZeroPage, 3, false, opCMP)
	def(0xD5, "CMP", ZeroPageX, 4, false, opCMP)
	def(0xCD, "CMP", Absolute, 4, false, opCMP)
	def(0xDD, "CMP", AbsoluteX, 4, true, opCMP)
	def(0xD9, "CMP", AbsoluteY, 4, true, opCMP)
	def(0xC1, "CMP", IndirectX, 6, false, opCMP)
	def(0xD1, "CMP", IndirectY, 5, true, opCMP)

	def(0xE0, "CPX", Immediate, 2, false, opCPX)
	def(0xE4, "CPX", ZeroPage, 3, false, opCPX)
	def(0xEC, "CPX", Absolute, 4, false, opCPX)

	def(0xC0, "CPY", Immediate, 2, false, opCPY)
	def(0xC4, "CPY", ZeroPage, 3, false, opCPY)
	def(0xCC, "CPY", Absolute, 4, false, opCPY)

	// increment/decrement
	def(0xE6, "INC", ZeroPage, 5, false, opINC)
	def(0xF6, "INC", ZeroPageX, 6, false, opINC)
	def(0xEE, "INC", Absolute, 6, false, opINC)
	def(0xFE, "INC", AbsoluteX, 7, false, opINC)
	def(0xE8, "INX", Implied, 2, false, opINX)
	def(0xC8, "INY", Implied, 2, false, opINY)

	def(0xC6, "DEC", ZeroPage, 5, false, opDEC)
	def(0xD6, "DEC", ZeroPageX, 6, false, opDEC)
	def(0xCE, "DEC", Absolute, 6, false, opDEC)
	def(0xDE, "DEC", AbsoluteX, 7, false, opDEC)
	def(0xCA, "DEX", Implied, 2, false, opDEX)
	def(0x88, "DEY", Implied, 2, false, opDEY)

	// shifts/rotates
	def(0x0A, "ASL", Accumulator, 2, false, opASL)
	def(0x06, "ASL", ZeroPage, 5, false, opASL)
	def(0x16, "ASL", ZeroPageX, 6, false, opASL)
	def(0x0E, "ASL", Absolute, 6, false, opASL)
	def(0x1E, "ASL", AbsoluteX, 7, false, opASL)

	def(0x4A, "LSR", Accumulator, 2, false, opLSR)
	def(0x46, "LSR", ZeroPage, 5, false, opLSR)
	def(0x56, "LSR", ZeroPageX, 6, false, opLSR)
	def(0x4E, "LSR", Absolute, 6, false, opLSR)
	def(0x5E, "LSR", AbsoluteX, 7, false, opLSR)

	def(0x2A, "ROL", Accumulator, 2, false, opROL)
	def(0x26, "ROL", ZeroPage, 5, false, opROL)
	def(0x36, "ROL", ZeroPageX, 6, false, opROL)
	def(0x2E, "ROL", Absolute, 6, false, opROL)
	def(0x3E, "ROL", AbsoluteX, 7, false, opROL)

	def(0x6A, "ROR", Accumulator, 2, false, opROR)
	def(0x66, "ROR", ZeroPage, 5, false, opROR)
	def(0x76, "ROR", ZeroPageX, 6, false, opROR)
	def(0x6E, "ROR", Absolute, 6, false, opROR)
	def(0x7E, "ROR", AbsoluteX, 7, false, opROR)

	// jumps/calls/returns
	def(0x4C, "JMP", Absolute, 3, false, opJMP)
	def(0x6C, "JMP", Indirect, 5, false, opJMP)
	def(0x20, "JSR", Absolute, 6, false, opJSR)
	def(0x60, "RTS", Implied, 6, false, opRTS)
	def(0x40, "RTI", Implied, 6, false, opRTI)
	def(0x00, "BRK", Implied, 7, false, opBRK)

	// branches
	def(0x10, "BPL", Relative, 2, false, opBranch(func(f Flags) bool { return !f.Negative }))
	def(0x30, "BMI", Relative, 2, false, opBranch(func(f Flags) bool { return f.Negative }))
	def(0x50, "BVC", Relative, 2, false, opBranch(func(f Flags) bool { return !f.Overflow }))
	def(0x70, "BVS", Relative, 2, false, opBranch(func(f Flags) bool { return f.Overflow }))
	def(0x90, "BCC", Relative, 2, false, opBranch(func(f Flags) bool { return !f.Carry }))
	def(0xB0, "BCS", Relative, 2, false, opBranch(func(f Flags) bool { return f.Carry }))
	def(0xD0, "BNE", Relative, 2, false, opBranch(func(f Flags) bool { return !f.Zero }))
	def(0xF0, "BEQ", Relative, 2, false, opBranch(func(f Flags) bool { return f.Zero }))

	// flag instructions
	def(0x18, "CLC", Implied, 2, false, opFlag(func(f *Flags) { f.Carry = false }))
	def(0x38, "SEC", Implied, 2, false, opFlag(func(f *Flags) { f.Carry = true }))
	def(0x58, "CLI", Implied, 2, false, opFlag(func(f *Flags) { f.InterruptDisable = false }))
	def(0x78, "SEI", Implied, 2, false, opFlag(func(f *Flags) { f.InterruptDisable = true }))
	def(0xB8, "CLV", Implied, 2, false, opFlag(func(f *Flags) { f.Overflow = false }))
	def(0xD8, "CLD", Implied, 2, false, opFlag(func(f *Flags) { f.Decimal = false }))
	def(0xF8, "SED", Implied, 2, false, opFlag(func(f *Flags) { f.Decimal = true }))

	def(0xEA, "NOP", Implied, 2, false, opNOP)

	defineIllegalOpcodes()
}

func opRead(mc *CPU, addr uint16, mode AddrMode) uint8 {
	if mode == Accumulator {
		return mc.reg.A
	}
	return mc.mem.Read(addr)
}

func opWrite(mc *CPU, addr uint16, mode AddrMode, v uint8) {
	if mode == Accumulator {
		mc.reg.A = v
		return
	}
	mc.mem.Write(addr, v)
}

func opLDA(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A = opRead(mc, addr, mode)
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opLDX(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.X = opRead(mc, addr, mode)
	mc.reg.P.setNZ(mc.reg.X)
	return 0
}

func opLDY(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.Y = opRead(mc, addr, mode)
	mc.reg.P.setNZ(mc.reg.Y)
	return 0
}

func opSTA(mc *CPU, addr uint16, mode AddrMode) int {
	mc.mem.Write(addr, mc.reg.A)
	return 0
}

func opSTX(mc *CPU, addr uint16, mode AddrMode) int {
	mc.mem.Write(addr, mc.reg.X)
	return 0
}

func opSTY(mc *CPU, addr uint16, mode AddrMode) int {
	mc.mem.Write(addr, mc.reg.Y)
	return 0
}

func opTAX(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.X = mc.reg.A
	mc.reg.P.setNZ(mc.reg.X)
	return 0
}

func opTAY(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.Y = mc.reg.A
	mc.reg.P.setNZ(mc.reg.Y)
	return 0
}

func opTXA(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A = mc.reg.X
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opTYA(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A = mc.reg.Y
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opTSX(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.X = mc.reg.SP
	mc.reg.P.setNZ(mc.reg.X)
	return 0
}

func opTXS(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.SP = mc.reg.X
	return 0
}

func opPHA(mc *CPU, addr uint16, mode AddrMode) int {
	mc.push8(mc.reg.A)
	return 0
}

func opPHP(mc *CPU, addr uint16, mode AddrMode) int {
	mc.push8(mc.reg.P.Byte(true))
	return 0
}

func opPLA(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A = mc.pull8()
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opPLP(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.P.SetByte(mc.pull8())
	return 0
}

func opAND(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A &= opRead(mc, addr, mode)
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opORA(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A |= opRead(mc, addr, mode)
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opEOR(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.A ^= opRead(mc, addr, mode)
	mc.reg.P.setNZ(mc.reg.A)
	return 0
}

func opBIT(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	mc.reg.P.Zero = mc.reg.A&v == 0
	mc.reg.P.Overflow = v&0x40 != 0
	mc.reg.P.Negative = v&0x80 != 0
	return 0
}

// adc is shared by ADC and the illegal opcodes that fold an addition into
// their sequence.
func adc(mc *CPU, v uint8) {
	if mc.reg.P.Decimal {
		adcDecimal(mc, v)
		return
	}
	a := uint16(mc.reg.A)
	sum := a + uint16(v)
	if mc.reg.P.Carry {
		sum++
	}
	mc.reg.P.Overflow = (^(a^uint16(v)))&(a^sum)&0x80 != 0
	mc.reg.P.Carry = sum > 0xFF
	mc.reg.A = uint8(sum)
	mc.reg.P.setNZ(mc.reg.A)
}

func adcDecimal(mc *CPU, v uint8) {
	carry := uint8(0)
	if mc.reg.P.Carry {
		carry = 1
	}
	lo := (mc.reg.A & 0x0F) + (v & 0x0F) + carry
	hi := (mc.reg.A >> 4) + (v >> 4)
	if lo > 9 {
		lo += 6
		hi++
	}
	mc.reg.P.Overflow = (^(mc.reg.A^v))&(mc.reg.A^(hi<<4))&0x80 != 0
	if hi > 9 {
		hi += 6
	}
	mc.reg.P.Carry = hi > 15
	mc.reg.A = (hi << 4) | (lo & 0x0F)
	mc.reg.P.setNZ(mc.reg.A)
}

func sbc(mc *CPU, v uint8) {
	if mc.reg.P.Decimal {
		sbcDecimal(mc, v)
		return
	}
	adc(mc, ^v)
}

func sbcDecimal(mc *CPU, v uint8) {
	carry := uint8(0)
	if mc.reg.P.Carry {
		carry = 1
	}
	a := int16(mc.reg.A)
	sum := a - int16(v) - int16(1-carry)

	mc.reg.P.Overflow = (a^int16(v))&(a^sum)&0x80 != 0

	lo := int16(mc.reg.A&0x0F) - int16(v&0x0F) - int16(1-carry)
	hi := int16(mc.reg.A>>4) - int16(v>>4)
	if lo < 0 {
		lo -= 6
		hi--
	}
	if hi < 0 {
		hi -= 6
	}
	mc.reg.P.Carry = sum >= 0
	mc.reg.A = uint8(hi<<4) | uint8(lo&0x0F)
	mc.reg.P.setNZ(mc.reg.A)
}

func opADC(mc *CPU, addr uint16, mode AddrMode) int {
	adc(mc, opRead(mc, addr, mode))
	return 0
}

func opSBC(mc *CPU, addr uint16, mode AddrMode) int {
	sbc(mc, opRead(mc, addr, mode))
	return 0
}

func compare(mc *CPU, reg uint8, v uint8) {
	mc.reg.P.Carry = reg >= v
	mc.reg.P.setNZ(reg - v)
}

func opCMP(mc *CPU, addr uint16, mode AddrMode) int {
	compare(mc, mc.reg.A, opRead(mc, addr, mode))
	return 0
}

func opCPX(mc *CPU, addr uint16, mode AddrMode) int {
	compare(mc, mc.reg.X, opRead(mc, addr, mode))
	return 0
}

func opCPY(mc *CPU, addr uint16, mode AddrMode) int {
	compare(mc, mc.reg.Y, opRead(mc, addr, mode))
	return 0
}

func opINC(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode) + 1
	opWrite(mc, addr, mode, v)
	mc.reg.P.setNZ(v)
	return 0
}

func opINX(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.X++
	mc.reg.P.setNZ(mc.reg.X)
	return 0
}

func opINY(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.Y++
	mc.reg.P.setNZ(mc.reg.Y)
	return 0
}

func opDEC(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode) - 1
	opWrite(mc, addr, mode, v)
	mc.reg.P.setNZ(v)
	return 0
}

func opDEX(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.X--
	mc.reg.P.setNZ(mc.reg.X)
	return 0
}

func opDEY(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.Y--
	mc.reg.P.setNZ(mc.reg.Y)
	return 0
}

func opASL(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	mc.reg.P.Carry = v&0x80 != 0
	v <<= 1
	opWrite(mc, addr, mode, v)
	mc.reg.P.setNZ(v)
	return 0
}

func opLSR(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	mc.reg.P.Carry = v&0x01 != 0
	v >>= 1
	opWrite(mc, addr, mode, v)
	mc.reg.P.setNZ(v)
	return 0
}

func opROL(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	carryIn := uint8(0)
	if mc.reg.P.Carry {
		carryIn = 1
	}
	mc.reg.P.Carry = v&0x80 != 0
	v = (v << 1) | carryIn
	opWrite(mc, addr, mode, v)
	mc.reg.P.setNZ(v)
	return 0
}

func opROR(mc *CPU, addr uint16, mode AddrMode) int {
	v := opRead(mc, addr, mode)
	carryIn := uint8(0)
	if mc.reg.P.Carry {
		carryIn = 0x80
	}
	mc.reg.P.Carry = v&0x01 != 0
	v = (v >> 1) | carryIn
	opWrite(mc, addr, mode, v)
	mc.reg.P.setNZ(v)
	return 0
}

func opJMP(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.PC = addr
	return 0
}

func opJSR(mc *CPU, addr uint16, mode AddrMode) int {
	mc.push16(mc.reg.PC - 1)
	mc.reg.PC = addr
	return 0
}

func opRTS(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.PC = mc.pull16() + 1
	return 0
}

func opRTI(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.P.SetByte(mc.pull8())
	mc.reg.PC = mc.pull16()
	return 0
}

func opBRK(mc *CPU, addr uint16, mode AddrMode) int {
	mc.reg.PC++
	mc.push16(mc.reg.PC)
	mc.push8(mc.reg.P.Byte(true))
	mc.reg.P.InterruptDisable = true
	lo := mc.mem.Read(vectorIRQ)
	hi := mc.mem.Read(vectorIRQ + 1)
	mc.reg.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}

func opBranch(taken func(Flags) bool) func(mc *CPU, addr uint16, mode AddrMode) int {
	return func(mc *CPU, addr uint16, mode AddrMode) int {
		if !taken(mc.reg.P) {
			return 0
		}
		same := mc.reg.PC&0xFF00 == addr&0xFF00
		mc.reg.PC = addr
		if same {
			return 1
		}
		return 2
	}
}

func opFlag(set func(*Flags)) func(mc *CPU, addr uint16, mode AddrMode) int {
	return func(mc *CPU, addr uint16, mode AddrMode) int {
		set(&mc.reg.P)
		return 0
	}
}

func opNOP(mc *CPU, addr uint16, mode AddrMode) int {
	return 0
}

func opJAM(mc *CPU, addr uint16, mode AddrMode) int {
	mc.Jammed = true
	return 0
}
