// Package memorymap implements the C64's memory-configuration PLA: the
// truth table, keyed by the CPU port's LORAM/HIRAM/CHAREN bits and the
// cartridge's GAME/EXROM lines, that decides which physical bank backs
// each 4 KiB nibble of the CPU's 16-bit address space.
package memorymap

import "fmt"

// Source identifies which physical memory backs a given address.
type Source int

// List of possible memory sources.
const (
	SourceRAM Source = iota
	SourceBasicROM
	SourceKernalROM
	SourceCharROM
	SourceIO
	SourceCartLo
	SourceCartHi
	SourceUnmapped
)

// String names a Source for Summary() and debugging.
func (s Source) String() string {
	switch s {
	case SourceRAM:
		return "RAM"
	case SourceBasicROM:
		return "BASIC"
	case SourceKernalROM:
		return "KERNAL"
	case SourceCharROM:
		return "CHAR"
	case SourceIO:
		return "I/O"
	case SourceCartLo:
		return "CART-LO"
	case SourceCartHi:
		return "CART-HI"
	case SourceUnmapped:
		return "-"
	}
	return "?"
}

// Config is the set of inputs the PLA decode depends on.
type Config struct {
	LORAM, HIRAM, CHAREN bool
	GAME, EXROM          bool
}

// Table is a 16-entry nibble decode, one Source per 4 KiB of address
// space, rebuilt whenever the Config changes via UpdatePLA.
type Table struct {
	cfg   Config
	read  [16]Source
	write [16]Source
}

// NewTable returns a Table configured for a cartridge-free cold boot
// (GAME=1, EXROM=1, LORAM=HIRAM=1, CHAREN=0 — BASIC and KERNAL visible,
// CHAR ROM visible at $D000).
func NewTable() *Table {
	t := &Table{}
	t.UpdatePLA(Config{LORAM: true, HIRAM: true, CHAREN: false, GAME: true, EXROM: true})
	return t
}

// UpdatePLA recomputes the 16-entry decode table from cfg. Writes never
// target ROM — a write to a nibble whose read source is ROM instead falls
// through to the RAM underneath it, exactly as in silicon.
func (t *Table) UpdatePLA(cfg Config) {
	t.cfg = cfg

	ultimax := !cfg.GAME && cfg.EXROM
	cart16k := !cfg.GAME && !cfg.EXROM
	cart8k := cfg.GAME && !cfg.EXROM

	for nibble := 0; nibble < 16; nibble++ {
		addr := uint16(nibble) << 12
		t.read[nibble] = t.decode(addr, cfg, ultimax, cart16k, cart8k)
		t.write[nibble] = t.read[nibble]
		if t.write[nibble] != SourceRAM && t.write[nibble] != SourceIO &&
			t.write[nibble] != SourceCartLo && t.write[nibble] != SourceCartHi {
			t.write[nibble] = SourceRAM
		}
	}
}

func (t *Table) decode(addr uint16, cfg Config, ultimax, cart16k, cart8k bool) Source {
	switch {
	case addr < 0x1000:
		return SourceRAM

	case addr >= 0x1000 && addr < 0x8000:
		// ultimax exposes only the bottom 4 KiB of RAM; the rest of
		// what would otherwise be RAM is masked off entirely.
		if ultimax {
			return SourceUnmapped
		}
		return SourceRAM

	case addr >= 0x8000 && addr < 0xA000:
		if cart8k || cart16k || ultimax {
			return SourceCartLo
		}
		return SourceRAM

	case addr >= 0xA000 && addr < 0xC000:
		if cart16k {
			return SourceCartHi
		}
		if ultimax {
			return SourceUnmapped
		}
		if cfg.LORAM && cfg.HIRAM {
			return SourceBasicROM
		}
		return SourceRAM

	case addr >= 0xC000 && addr < 0xD000:
		if ultimax {
			return SourceUnmapped
		}
		return SourceRAM

	case addr >= 0xD000 && addr < 0xE000:
		if ultimax {
			return SourceIO
		}
		if !cfg.CHAREN && (cfg.LORAM || cfg.HIRAM) {
			return SourceCharROM
		}
		if cfg.CHAREN && (cfg.LORAM || cfg.HIRAM) {
			return SourceIO
		}
		return SourceRAM

	default: // addr >= 0xE000
		if ultimax || cart16k {
			return SourceCartHi
		}
		if cfg.HIRAM {
			return SourceKernalROM
		}
		return SourceRAM
	}
}

// ReadSource returns the memory source that backs addr for a CPU read.
func (t *Table) ReadSource(addr uint16) Source {
	return t.read[addr>>12]
}

// WriteSource returns the memory source that backs addr for a CPU write.
func (t *Table) WriteSource(addr uint16) Source {
	return t.write[addr>>12]
}

// Config returns the configuration last passed to UpdatePLA.
func (t *Table) Config() Config {
	return t.cfg
}

// Summary renders the 16-entry decode table as a fixed-width text table,
// for debugger and test use.
func (t *Table) Summary() string {
	s := "nibble  base    read     write\n"
	for i := 0; i < 16; i++ {
		s += fmt.Sprintf("%2d      $%04X   %-8s %-8s\n", i, i<<12, t.read[i], t.write[i])
	}
	return s
}
