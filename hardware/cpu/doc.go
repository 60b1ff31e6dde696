// Package cpu implements the MOS 6510, the C64's main processor: a 6502
// core plus the data-direction/port latch at $0000/$0001 used to bank
// KERNAL, BASIC, I/O and character ROM into the CPU's 64 KiB address
// space (handled by hardware/memory/memorymap, not here).
//
// Every documented opcode is implemented, alongside the undocumented
// opcodes the NMOS decode matrix produces as a side effect (SLO, RLA,
// SRE, RRA, SAX, LAX, DCP, ISC, ANC, ALR, ARR, AXS, LAS) and the small
// family of illegal NOPs and JAM/KIL opcodes. ExecuteInstruction ticks a
// caller-supplied callback once per clock cycle, so the rest of the
// machine advances in lockstep with instruction execution rather than
// running ahead of or behind the CPU.
package cpu
