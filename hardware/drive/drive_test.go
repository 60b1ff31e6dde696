package drive_test

import (
	"testing"

	"github.com/blar/virtualc64/hardware/drive"
	"github.com/blar/virtualc64/hardware/iec"
	"github.com/blar/virtualc64/test"
)

func blankD64() []uint8 {
	// 683 blocks of 256 bytes is the standard single-sided 35-track image
	// size; contents don't matter for these tests, only that the size
	// divides evenly across the speed-zone sector counts.
	return make([]uint8, 683*256)
}

func TestInsertD64PopulatesEveryTrack(t *testing.T) {
	bus := iec.NewBus()
	d := drive.NewDrive(8, bus)

	err := d.InsertD64(blankD64())
	test.ExpectSuccess(t, err)
}

func TestInsertD64RejectsShortImage(t *testing.T) {
	bus := iec.NewBus()
	d := drive.NewDrive(8, bus)

	err := d.InsertD64(make([]uint8, 100))
	test.ExpectFailure(t, err)
}

func TestDriveAttachesToIECBusAsDriver(t *testing.T) {
	bus := iec.NewBus()
	_ = drive.NewDrive(8, bus)

	// attaching must not itself pull any line low.
	bus.Recompute()
	test.ExpectEquality(t, bus.CLK(), true)
	test.ExpectEquality(t, bus.DATA(), true)
}

func TestDriveCPUExecutesFromROMResetVector(t *testing.T) {
	bus := iec.NewBus()
	d := drive.NewDrive(8, bus)

	rom := make([]uint8, 0x4000)
	// reset vector at $FFFC/$FFFD (mapped from ROM offset 0x3FFC/0x3FFD)
	// pointing at $C000, holding a single NOP ($EA) there so one
	// instruction executes cleanly.
	rom[0x3FFC] = 0x00
	rom[0x3FFD] = 0xC0
	rom[0x0000] = 0xEA
	d.LoadROM(rom)
	d.Reset()

	cycles := d.ExecuteInstruction()
	test.ExpectEquality(t, cycles > 0, true)
}
