package filesystem_test

import (
	"bytes"
	"testing"

	"github.com/blar/virtualc64/filesystem"
	"github.com/blar/virtualc64/test"
)

func TestNewDeviceBAMPopcountMatchesFreeCount(t *testing.T) {
	d := filesystem.NewDevice(filesystem.KindD64SS)
	r := d.Check(true)
	test.ExpectEquality(t, len(r.CorruptedBlocks), 0)
}

func TestImportRejectsWrongCapacity(t *testing.T) {
	d := filesystem.NewDevice(filesystem.KindD64SS)
	err := d.Import(make([]uint8, 100))
	test.ExpectFailure(t, err)
}

func TestImportExportRoundTrip(t *testing.T) {
	d := filesystem.NewDevice(filesystem.KindD64SS)
	image := d.Export()
	image[500] = 0x42

	d2 := filesystem.NewDevice(filesystem.KindD64SS)
	err := d2.Import(image)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d2.Export()[500], uint8(0x42))
}

func TestMakeFileRoundTrip(t *testing.T) {
	d := filesystem.NewDevice(filesystem.KindD64SS)
	payload := []uint8("HELLO WORLD")

	err := d.MakeFile("GREETING", payload)
	test.ExpectSuccess(t, err)

	entries := d.ScanDirectory(false)
	test.ExpectEquality(t, len(entries), 1)
	test.ExpectEquality(t, entries[0].Name, "GREETING")
	test.ExpectEquality(t, entries[0].SizeBlocks, 1)

	got := d.ReadFile(entries[0])
	test.ExpectEquality(t, bytes.Equal(got, payload), true)
}

func TestMakeFileSpanningMultipleBlocks(t *testing.T) {
	d := filesystem.NewDevice(filesystem.KindD64SS)
	payload := make([]uint8, 600) // needs ceil(600/254) = 3 blocks
	for i := range payload {
		payload[i] = uint8(i)
	}

	err := d.MakeFile("BIG", payload)
	test.ExpectSuccess(t, err)

	entries := d.ScanDirectory(false)
	test.ExpectEquality(t, entries[0].SizeBlocks, 3)

	got := d.ReadFile(entries[0])
	test.ExpectEquality(t, bytes.Equal(got, payload), true)

	r := d.Check(true)
	test.ExpectEquality(t, len(r.CorruptedBlocks), 0)
}

func TestMultipleFilesEachGetOwnDirectoryEntry(t *testing.T) {
	d := filesystem.NewDevice(filesystem.KindD64SS)
	test.ExpectSuccess(t, d.MakeFile("ONE", []uint8{1, 2, 3}))
	test.ExpectSuccess(t, d.MakeFile("TWO", []uint8{4, 5, 6}))

	entries := d.ScanDirectory(false)
	test.ExpectEquality(t, len(entries), 2)
	test.ExpectEquality(t, entries[0].Name, "ONE")
	test.ExpectEquality(t, entries[1].Name, "TWO")
}

func TestCheckDetectsBrokenChainLink(t *testing.T) {
	d := filesystem.NewDevice(filesystem.KindD64SS)
	test.ExpectSuccess(t, d.MakeFile("X", []uint8{9}))

	image := d.Export()
	// block 0 is (track 1, sector 0): corrupt its link to an
	// out-of-range track.
	image[0] = 200
	corrupt := filesystem.NewDevice(filesystem.KindD64SS)
	test.ExpectSuccess(t, corrupt.Import(image))

	r := corrupt.Check(false)
	test.ExpectEquality(t, len(r.CorruptedBlocks) > 0, true)
	test.ExpectEquality(t, r.FirstErrorBlock, 0)
}
