package cartridge

// finalIIIMapper models the Final Cartridge III scheme: four 16 KiB banks
// mapped across $8000-$BFFF, bank and GAME/EXROM both controlled by a
// single register write at $DFFF.
type finalIIIMapper struct {
	banks  [][]uint8
	bank   int
	hidden bool
}

const finalIIIBankSize = 0x4000

func newFinalIIIMapper(data []uint8) *finalIIIMapper {
	m := &finalIIIMapper{}
	for off := 0; off < len(data); off += finalIIIBankSize {
		end := off + finalIIIBankSize
		if end > len(data) {
			end = len(data)
		}
		bank := make([]uint8, finalIIIBankSize)
		copy(bank, data[off:end])
		m.banks = append(m.banks, bank)
	}
	if len(m.banks) == 0 {
		m.banks = append(m.banks, make([]uint8, finalIIIBankSize))
	}
	return m
}

func (m *finalIIIMapper) ReadLo(addr uint16) uint8 {
	if m.hidden {
		return 0
	}
	return m.banks[m.bank][addr&0x1FFF]
}

func (m *finalIIIMapper) ReadHi(addr uint16) uint8 {
	if m.hidden {
		return 0
	}
	return m.banks[m.bank][0x2000+int(addr&0x1FFF)]
}

func (m *finalIIIMapper) WriteLo(addr uint16, data uint8) {}
func (m *finalIIIMapper) WriteHi(addr uint16, data uint8) {}

// Poke handles a write to the $DFFF control register: bits 0-1 select the
// bank, bit 5 hides the cartridge from the CPU's address space entirely.
func (m *finalIIIMapper) Poke(addr uint16, data uint8) {
	bank := int(data & 0x03)
	if bank < len(m.banks) {
		m.bank = bank
	}
	m.hidden = data&0x20 != 0
}

func (m *finalIIIMapper) NumBanks() int { return len(m.banks) }
func (m *finalIIIMapper) GetBank() int  { return m.bank }
func (m *finalIIIMapper) SetBank(n int) {
	if n >= 0 && n < len(m.banks) {
		m.bank = n
	}
}

func (m *finalIIIMapper) GAME() bool  { return !m.hidden }
func (m *finalIIIMapper) EXROM() bool { return m.hidden }
