package memorymap_test

import (
	"strings"
	"testing"

	"github.com/blar/virtualc64/hardware/memory/memorymap"
	"github.com/blar/virtualc64/test"
)

func TestColdBootDecode(t *testing.T) {
	tb := memorymap.NewTable()
	test.ExpectEquality(t, tb.ReadSource(0xA000), memorymap.SourceBasicROM)
	test.ExpectEquality(t, tb.ReadSource(0xD000), memorymap.SourceCharROM)
	test.ExpectEquality(t, tb.ReadSource(0xE000), memorymap.SourceKernalROM)
	test.ExpectEquality(t, tb.ReadSource(0x0400), memorymap.SourceRAM)
}

func TestCHARENSwitchesD000ToIO(t *testing.T) {
	tb := memorymap.NewTable()
	tb.UpdatePLA(memorymap.Config{LORAM: true, HIRAM: true, CHAREN: true, GAME: true, EXROM: true})
	test.ExpectEquality(t, tb.ReadSource(0xD000), memorymap.SourceIO)
}

func TestWritesNeverTargetROM(t *testing.T) {
	tb := memorymap.NewTable()
	test.ExpectEquality(t, tb.WriteSource(0xA000), memorymap.SourceRAM)
	test.ExpectEquality(t, tb.WriteSource(0xE000), memorymap.SourceRAM)
	test.ExpectEquality(t, tb.WriteSource(0xD000), memorymap.SourceRAM)
}

func TestUltimaxMode(t *testing.T) {
	tb := memorymap.NewTable()
	tb.UpdatePLA(memorymap.Config{LORAM: true, HIRAM: true, CHAREN: false, GAME: false, EXROM: true})
	test.ExpectEquality(t, tb.ReadSource(0xE000), memorymap.SourceCartHi)
	test.ExpectEquality(t, tb.ReadSource(0xD000), memorymap.SourceIO)
	test.ExpectEquality(t, tb.ReadSource(0xA000), memorymap.SourceUnmapped)
	test.ExpectEquality(t, tb.ReadSource(0x8000), memorymap.SourceCartLo)
	test.ExpectEquality(t, tb.ReadSource(0x0400), memorymap.SourceRAM)
	test.ExpectEquality(t, tb.ReadSource(0x1000), memorymap.SourceUnmapped)
	test.ExpectEquality(t, tb.ReadSource(0x7FFF), memorymap.SourceUnmapped)
}

func TestSummaryFormat(t *testing.T) {
	tb := memorymap.NewTable()
	s := tb.Summary()
	test.ExpectEquality(t, strings.Contains(s, "KERNAL"), true)
	test.ExpectEquality(t, strings.Contains(s, "nibble"), true)
}
