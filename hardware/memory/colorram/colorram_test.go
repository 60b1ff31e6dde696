package colorram_test

import (
	"testing"

	"github.com/blar/virtualc64/hardware/memory/colorram"
	"github.com/blar/virtualc64/test"
)

func TestWriteMasksToLowNibble(t *testing.T) {
	c := colorram.NewColorRAM()
	c.Write(0, 0xFF)
	test.ExpectEquality(t, c.Read(0, 0x00), uint8(0x0F))
}

func TestOpenBusSuppliesUpperNibble(t *testing.T) {
	c := colorram.NewColorRAM()
	c.Write(5, 0x03)
	test.ExpectEquality(t, c.Read(5, 0xE0), uint8(0xE3))
}

func TestSnapshotRoundtrip(t *testing.T) {
	c := colorram.NewColorRAM()
	c.Write(10, 0x0A)
	snap := c.Snapshot()

	d := colorram.NewColorRAM()
	d.Restore(snap)
	test.ExpectEquality(t, d.Read(10, 0), uint8(0x0A))
}
