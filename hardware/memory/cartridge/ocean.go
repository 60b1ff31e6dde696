package cartridge

// oceanMapper models the Ocean type A scheme: up to 64 8 KiB banks mapped
// at $8000-$9FFF (the larger Ocean images bank across both $8000 and
// $A000 together, but the common case used by most Ocean releases banks
// $8000 alone), bank selected by the low 6 bits of a write to $DE00.
type oceanMapper struct {
	banks [][]uint8
	bank  int
}

const oceanBankSize = 0x2000

func newOceanMapper(data []uint8) *oceanMapper {
	m := &oceanMapper{}
	for off := 0; off < len(data); off += oceanBankSize {
		end := off + oceanBankSize
		if end > len(data) {
			end = len(data)
		}
		bank := make([]uint8, oceanBankSize)
		copy(bank, data[off:end])
		m.banks = append(m.banks, bank)
	}
	if len(m.banks) == 0 {
		m.banks = append(m.banks, make([]uint8, oceanBankSize))
	}
	return m
}

func (m *oceanMapper) ReadLo(addr uint16) uint8 {
	return m.banks[m.bank][addr&0x1FFF]
}

func (m *oceanMapper) ReadHi(addr uint16) uint8 { return 0 }

func (m *oceanMapper) WriteLo(addr uint16, data uint8) {}
func (m *oceanMapper) WriteHi(addr uint16, data uint8) {}

func (m *oceanMapper) Poke(addr uint16, data uint8) {
	bank := int(data & 0x3F)
	if bank < len(m.banks) {
		m.bank = bank
	}
}

func (m *oceanMapper) NumBanks() int { return len(m.banks) }
func (m *oceanMapper) GetBank() int  { return m.bank }
func (m *oceanMapper) SetBank(n int) {
	if n >= 0 && n < len(m.banks) {
		m.bank = n
	}
}

func (m *oceanMapper) GAME() bool  { return true }
func (m *oceanMapper) EXROM() bool { return false }
