package main

import (
	"testing"

	"github.com/blar/virtualc64/hardware/memory/addresses"
	"github.com/blar/virtualc64/hardware/memory/cartridge"
	"github.com/blar/virtualc64/test"
)

// TestCIATimerChainScenario programs CIA1 through the CPU bus exactly
// as a running program would: timer A underflows every 100 cycles,
// timer B is chained to count those underflows. The registers are set
// up over the bus to exercise the machine's I/O decode, then timer B's
// count is checked against 10,000 clock cycles driven straight against
// the attached CIA, since the composite machine only exposes
// instruction-granularity stepping.
func TestCIATimerChainScenario(t *testing.T) {
	m := newTestMachine(t)

	m.Write(addresses.CIA1Base+0x04, 99) // timer A latch lo (underflows every 100 ticks)
	m.Write(addresses.CIA1Base+0x05, 0)  // timer A latch hi
	m.Write(addresses.CIA1Base+0x0E, 0x01)

	m.Write(addresses.CIA1Base+0x06, 0) // timer B latch lo: underflows on every timer-A underflow
	m.Write(addresses.CIA1Base+0x07, 0)
	m.Write(addresses.CIA1Base+0x0F, 0x01|0x40) // start, count timer-A underflows

	m.Write(addresses.CIA1Base+0x0D, 0x82) // unmask timer B IRQ

	underflows := 0
	for i := 0; i < 10000; i++ {
		m.cia1.Tick()
		icr := m.Read(addresses.CIA1Base + 0x0D)
		if icr&0x02 != 0 {
			underflows++
		}
	}

	test.ExpectEquality(t, underflows, 100)
}

// TestFlashRomAutoselectScenario exercises the JEDEC autoselect command
// sequence through the cartridge expansion ROM window: the manufacturer
// and device IDs must appear at offsets 0 and 1, and writing the
// software-ID-exit command must return the window to ordinary reads.
func TestFlashRomAutoselectScenario(t *testing.T) {
	m := newTestMachine(t)
	test.ExpectSuccess(t, m.attachCartridge(cartridge.VariantEasyFlash, make([]uint8, 0)))

	m.Write(0x8555, 0xAA)
	m.Write(0x82AA, 0x55)
	m.Write(0x8555, 0x90)

	test.ExpectEquality(t, m.Read(0x8000), uint8(0x01))
	test.ExpectEquality(t, m.Read(0x8001), uint8(0xA4))

	m.Write(0x8000, 0xF0)
	test.ExpectEquality(t, m.Read(0x8000), uint8(0x00))
}
