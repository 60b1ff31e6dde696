package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blar/virtualc64/cartridgeloader"
	"github.com/blar/virtualc64/test"
)

func TestLoaderExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.crt")
	test.ExpectSuccess(t, os.WriteFile(path, []byte("C64 CARTRIDGE   \x00\x00\x00\x40"), 0644))

	ld, err := cartridgeloader.NewLoaderFromFilename(path, "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.Format, cartridgeloader.FormatCRT)
	test.ExpectEquality(t, ld.Name, "game")

	test.ExpectSuccess(t, ld.Open())
	test.ExpectEquality(t, len(ld.HashSHA1) > 0, true)
}

func TestLoaderFingerprint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noext")
	test.ExpectSuccess(t, os.WriteFile(path, []byte("C64-TAPE-RAW\x01\x02"), 0644))

	ld, err := cartridgeloader.NewLoaderFromFilename(path, "")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ld.Open())
	test.ExpectEquality(t, ld.Format, cartridgeloader.FormatTAP)
}

func TestLoaderFromData(t *testing.T) {
	ld, err := cartridgeloader.NewLoaderFromData("embedded", []byte{0x01, 0x08, 0x00, 0x00}, "PRG")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.Format, cartridgeloader.FormatPRG)
	test.ExpectEquality(t, ld.Name, "embedded")
}

func TestLoaderEmptyFilename(t *testing.T) {
	_, err := cartridgeloader.NewLoaderFromFilename("   ", "")
	test.ExpectFailure(t, err)
}
