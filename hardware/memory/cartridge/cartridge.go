// Package cartridge implements the expansion port: dispatch across the
// handful of bank-switching schemes real C64 cartridges used, plus the
// Am29F040B flash chip found on EasyFlash-style boards.
package cartridge

import "github.com/blar/virtualc64/curated"

// Variant names a cartridge bank-switching scheme.
type Variant int

// List of supported cartridge variants.
const (
	VariantNone Variant = iota
	VariantNormal
	VariantMagicDesk
	VariantFinalIII
	VariantOcean
	VariantEasyFlash
)

// String names a Variant.
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "NONE"
	case VariantNormal:
		return "NORMAL"
	case VariantMagicDesk:
		return "MAGIC_DESK"
	case VariantFinalIII:
		return "FINAL_III"
	case VariantOcean:
		return "OCEAN"
	case VariantEasyFlash:
		return "EASYFLASH"
	}
	return "?"
}

// Mapper is implemented by each cartridge variant. ReadLo/ReadHi serve the
// $8000-$9FFF and $A000-$BFFF cartridge ROM windows respectively; Poke
// handles writes into the $DE00-$DFFF I/O windows used for bank/mode
// registers.
type Mapper interface {
	ReadLo(addr uint16) uint8
	ReadHi(addr uint16) uint8
	WriteLo(addr uint16, data uint8)
	WriteHi(addr uint16, data uint8)
	Poke(addr uint16, data uint8)
	NumBanks() int
	GetBank() int
	SetBank(n int)
	GAME() bool
	EXROM() bool
}

// Cartridge dispatches to the Mapper matching its Variant.
type Cartridge struct {
	variant Variant
	mapper  Mapper
}

// NewCartridge constructs a Cartridge from raw image bytes, banked
// according to variant.
func NewCartridge(variant Variant, data []uint8) (*Cartridge, error) {
	var m Mapper

	switch variant {
	case VariantNone:
		return &Cartridge{variant: VariantNone}, nil
	case VariantNormal:
		m = newNormalMapper(data)
	case VariantMagicDesk:
		m = newMagicDeskMapper(data)
	case VariantFinalIII:
		m = newFinalIIIMapper(data)
	case VariantOcean:
		m = newOceanMapper(data)
	case VariantEasyFlash:
		m = newEasyFlashMapper(data)
	default:
		return nil, curated.Errorf(curated.ErrUnsupportedCRT, variant)
	}

	return &Cartridge{variant: variant, mapper: m}, nil
}

// Variant returns the cartridge's bank-switching scheme.
func (c *Cartridge) Variant() Variant {
	return c.variant
}

// Attached reports whether a cartridge image is present.
func (c *Cartridge) Attached() bool {
	return c.variant != VariantNone
}

// ReadLo reads the $8000-$9FFF cartridge ROM window.
func (c *Cartridge) ReadLo(addr uint16) uint8 {
	if c.mapper == nil {
		return 0
	}
	return c.mapper.ReadLo(addr)
}

// ReadHi reads the $A000-$BFFF cartridge ROM window.
func (c *Cartridge) ReadHi(addr uint16) uint8 {
	if c.mapper == nil {
		return 0
	}
	return c.mapper.ReadHi(addr)
}

// Poke writes to the $DE00-$DFFF cartridge I/O window.
func (c *Cartridge) Poke(addr uint16, data uint8) {
	if c.mapper == nil {
		return
	}
	c.mapper.Poke(addr, data)
}

// WriteLo and WriteHi carry CPU writes into the $8000-$9FFF/$A000-$BFFF
// ROM windows through to the mapper. Most mappers ignore these; flash
// based boards use them to feed command-sequence bytes to the chip.
func (c *Cartridge) WriteLo(addr uint16, data uint8) {
	if c.mapper == nil {
		return
	}
	c.mapper.WriteLo(addr, data)
}

func (c *Cartridge) WriteHi(addr uint16, data uint8) {
	if c.mapper == nil {
		return
	}
	c.mapper.WriteHi(addr, data)
}

// GAME and EXROM report the cartridge's current state of those two lines,
// feeding the memory map's PLA decode.
func (c *Cartridge) GAME() bool {
	if c.mapper == nil {
		return true
	}
	return c.mapper.GAME()
}

func (c *Cartridge) EXROM() bool {
	if c.mapper == nil {
		return true
	}
	return c.mapper.EXROM()
}

// GetBank and SetBank expose the mapper's current bank for the debugger
// and snapshotting.
func (c *Cartridge) GetBank() int {
	if c.mapper == nil {
		return 0
	}
	return c.mapper.GetBank()
}

func (c *Cartridge) SetBank(n int) {
	if c.mapper == nil {
		return
	}
	c.mapper.SetBank(n)
}

func (c *Cartridge) NumBanks() int {
	if c.mapper == nil {
		return 0
	}
	return c.mapper.NumBanks()
}
