package cartridge_test

import (
	"testing"

	"github.com/blar/virtualc64/hardware/memory/cartridge"
	"github.com/blar/virtualc64/test"
)

func TestNoneCartridgeReadsZero(t *testing.T) {
	c, err := cartridge.NewCartridge(cartridge.VariantNone, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Attached(), false)
	test.ExpectEquality(t, c.ReadLo(0), uint8(0))
}

func TestNormal8KReadsSingleBank(t *testing.T) {
	data := make([]uint8, 0x2000)
	data[0] = 0x4C
	c, err := cartridge.NewCartridge(cartridge.VariantNormal, data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Attached(), true)
	test.ExpectEquality(t, c.ReadLo(0), uint8(0x4C))
	test.ExpectEquality(t, c.GAME(), true)
	test.ExpectEquality(t, c.EXROM(), false)
}

func TestNormal16KSpansBothWindows(t *testing.T) {
	data := make([]uint8, 0x4000)
	data[0x2000] = 0x99
	c, _ := cartridge.NewCartridge(cartridge.VariantNormal, data)
	test.ExpectEquality(t, c.ReadHi(0), uint8(0x99))
	test.ExpectEquality(t, c.GAME(), false)
}

func TestMagicDeskBankSwitch(t *testing.T) {
	data := make([]uint8, 0x4000)
	data[0x2000] = 0xAB
	c, _ := cartridge.NewCartridge(cartridge.VariantMagicDesk, data)

	c.Poke(0xDE00, 1)
	test.ExpectEquality(t, c.ReadLo(0), uint8(0xAB))
	test.ExpectEquality(t, c.GetBank(), 1)

	c.Poke(0xDE00, 0x80)
	test.ExpectEquality(t, c.EXROM(), true)
	test.ExpectEquality(t, c.ReadLo(0), uint8(0))
}

func TestFinalIIIBankAndHide(t *testing.T) {
	data := make([]uint8, 0x4000*2)
	data[0x4000] = 0x11
	c, _ := cartridge.NewCartridge(cartridge.VariantFinalIII, data)

	c.Poke(0xDFFF, 1)
	test.ExpectEquality(t, c.ReadLo(0), uint8(0x11))

	c.Poke(0xDFFF, 0x21)
	test.ExpectEquality(t, c.GAME(), false)
	test.ExpectEquality(t, c.ReadLo(0), uint8(0))
}

func TestOceanBankSelect(t *testing.T) {
	data := make([]uint8, 0x2000*3)
	data[0x4000] = 0x33
	c, _ := cartridge.NewCartridge(cartridge.VariantOcean, data)

	c.Poke(0xDE00, 2)
	test.ExpectEquality(t, c.ReadLo(0), uint8(0x33))
	test.ExpectEquality(t, c.NumBanks(), 3)
}

func TestEasyFlashBankAndProgram(t *testing.T) {
	c, err := cartridge.NewCartridge(cartridge.VariantEasyFlash, nil)
	test.ExpectSuccess(t, err)

	c.Poke(0xDE00, 0)
	c.WriteLo(0x555, 0xAA)
	c.WriteLo(0x2AA, 0x55)
	c.WriteLo(0x555, 0xA0)
	c.WriteLo(0x0, 0x3C)
	// the empty image is zero-filled and programming can only clear bits
	test.ExpectEquality(t, c.ReadLo(0), uint8(0x00))

	c.Poke(0xDE02, 0x03)
	test.ExpectEquality(t, c.GAME(), false)
	test.ExpectEquality(t, c.EXROM(), true)
}

func TestUnknownVariantErrors(t *testing.T) {
	_, err := cartridge.NewCartridge(cartridge.Variant(99), nil)
	test.ExpectFailure(t, err)
}
