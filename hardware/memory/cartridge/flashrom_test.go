package cartridge_test

import (
	"testing"

	"github.com/blar/virtualc64/hardware/memory/cartridge"
	"github.com/blar/virtualc64/test"
)

func TestAutoselect(t *testing.T) {
	data := make([]uint8, 512*1024)
	data[0] = 0x55
	f := cartridge.NewFlashRom(data)

	f.Poke(0x555, 0xAA)
	f.Poke(0x2AA, 0x55)
	f.Poke(0x555, 0x90)
	test.ExpectEquality(t, f.State(), cartridge.FlashAutoselect)
	test.ExpectEquality(t, f.Peek(0), uint8(0x01))
	test.ExpectEquality(t, f.Peek(1), uint8(0xA4))

	f.Poke(0x1234, 0xF0)
	test.ExpectEquality(t, f.State(), cartridge.FlashRead)
	test.ExpectEquality(t, f.Peek(0), uint8(0x55))
}

func TestByteProgramOnlyClearsBits(t *testing.T) {
	data := make([]uint8, 512*1024)
	data[100] = 0xFF
	f := cartridge.NewFlashRom(data)

	f.Poke(0x555, 0xAA)
	f.Poke(0x2AA, 0x55)
	f.Poke(0x555, 0xA0)
	f.Poke(100, 0x0F)

	test.ExpectEquality(t, f.State(), cartridge.FlashRead)
	test.ExpectEquality(t, f.Peek(100), uint8(0x0F))
}

func TestChipErase(t *testing.T) {
	data := make([]uint8, 512*1024)
	data[0] = 0x00
	f := cartridge.NewFlashRom(data)

	f.Poke(0x555, 0xAA)
	f.Poke(0x2AA, 0x55)
	f.Poke(0x555, 0x80)
	f.Poke(0x555, 0xAA)
	f.Poke(0x2AA, 0x55)
	f.Poke(0x555, 0x10)

	test.ExpectEquality(t, f.Peek(0), uint8(0xFF))
	test.ExpectEquality(t, f.Peek(300000), uint8(0xFF))
}

func TestSectorErase(t *testing.T) {
	f := cartridge.NewFlashRom(make([]uint8, 512*1024))

	f.Poke(0x555, 0xAA)
	f.Poke(0x2AA, 0x55)
	f.Poke(0x555, 0x80)
	f.Poke(0x555, 0xAA)
	f.Poke(0x2AA, 0x55)
	f.Poke(0x10000, 0x30)

	test.ExpectEquality(t, f.Peek(0x10000), uint8(0xFF))
	test.ExpectEquality(t, f.Peek(0), uint8(0))
}

func TestMismatchedSequenceReturnsToBase(t *testing.T) {
	f := cartridge.NewFlashRom(make([]uint8, 512*1024))
	f.Poke(0x555, 0xAA)
	f.Poke(0x2AA, 0x99)
	test.ExpectEquality(t, f.State(), cartridge.FlashRead)
}

func TestSnapshotRestore(t *testing.T) {
	data := make([]uint8, 512*1024)
	data[42] = 0x7E
	f := cartridge.NewFlashRom(data)
	snap := f.Snapshot()

	g := cartridge.NewFlashRom(make([]uint8, 512*1024))
	g.Restore(snap)
	test.ExpectEquality(t, g.Peek(42), uint8(0x7E))
}
