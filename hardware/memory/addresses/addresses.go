// Package addresses names the fixed memory locations and register offsets
// of the C64's address space, so that the rest of the tree can refer to
// "addresses.CIA1Base" instead of a bare hex literal.
package addresses

// CPU port at $0000/$0001 (DDR and data respectively), the three low bits
// of which (LORAM, HIRAM, CHAREN) feed the memory map's PLA decode.
const (
	CPUPortDDR  = 0x0000
	CPUPortData = 0x0001
)

// CPU port bit masks.
const (
	LORAM  = 0x01
	HIRAM  = 0x02
	CHAREN = 0x04
)

// I/O space windows, each $0400 bytes wide, mirrored across $D000-$DFFF.
const (
	VICBase      = 0xD000
	VICMirrorLen = 0x0400
	SIDBase      = 0xD400
	SIDMirrorLen = 0x0400
	ColorRAMBase = 0xD800
	ColorRAMLen  = 0x0400
	CIA1Base     = 0xDC00
	CIA1MirrorLen = 0x0100
	CIA2Base     = 0xDD00
	CIA2MirrorLen = 0x0100
	IO1Base      = 0xDE00
	IO1Len       = 0x0100
	IO2Base      = 0xDF00
	IO2Len       = 0x0100
)

// ROM regions as they appear in the CPU's address space when banked in.
const (
	BasicROMBase = 0xA000
	BasicROMLen  = 0x2000
	KernalROMBase = 0xE000
	KernalROMLen  = 0x2000
	CharROMBase  = 0xD000
	CharROMLen   = 0x1000
)

// RAM and colour RAM sizes.
const (
	RAMSize      = 0x10000
	ColorRAMSize = 0x0400
)

// VC1541 drive ROM sizes (16 KiB for the 1541, 32 KiB for later DOS
// variants with a bank-switched second half).
const (
	DriveROMSize1541 = 0x4000
	DriveROMSize8000 = 0x8000
)

// KERNAL vectors of interest to tests and the functional-test harness.
const (
	VectorNMI   = 0xFFFA
	VectorReset = 0xFFFC
	VectorIRQ   = 0xFFFE
)
