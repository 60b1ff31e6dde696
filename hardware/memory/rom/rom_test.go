package rom_test

import (
	"testing"

	"github.com/blar/virtualc64/hardware/memory/rom"
	"github.com/blar/virtualc64/test"
)

func TestNewROMWrongSize(t *testing.T) {
	_, err := rom.NewROM(make([]uint8, 10), 20)
	test.ExpectFailure(t, err)
}

func TestReadAndIdentity(t *testing.T) {
	data := make([]uint8, 0x2000)
	data[0] = 0xAB

	r, err := rom.NewROM(data, 0x2000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Read(0), uint8(0xAB))
	test.ExpectEquality(t, r.Len(), 0x2000)
	test.ExpectEquality(t, r.Identity() != 0, true)
}

func TestIdenticalContentSameIdentity(t *testing.T) {
	data := make([]uint8, 0x1000)
	data[5] = 0x7F

	a, _ := rom.NewROM(data, 0x1000)
	b, _ := rom.NewROM(data, 0x1000)
	test.ExpectEquality(t, a.Identity(), b.Identity())
}
