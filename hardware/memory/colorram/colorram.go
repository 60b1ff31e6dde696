// Package colorram implements the 1 KiB x 4-bit colour RAM at $D800-$DBFF.
// Only the low nibble of each location is backed by real SRAM; the upper
// nibble is open bus and returns whatever last drove the data bus.
package colorram

// ColorRAM is 1024 nibbles, one per screen character cell.
type ColorRAM struct {
	data [1024]uint8
}

// NewColorRAM constructs an empty ColorRAM.
func NewColorRAM() *ColorRAM {
	return &ColorRAM{}
}

// Read returns the nibble at addr (0-1023) in the low 4 bits; the upper
// nibble is supplied by the caller as openBus, simulating the floating
// data bus behaviour of the real chip.
func (c *ColorRAM) Read(addr uint16, openBus uint8) uint8 {
	return (openBus & 0xF0) | (c.data[addr&0x3FF] & 0x0F)
}

// Write stores the low nibble of data at addr; the upper nibble is
// discarded, since only 4 bits of SRAM exist per cell.
func (c *ColorRAM) Write(addr uint16, data uint8) {
	c.data[addr&0x3FF] = data & 0x0F
}

// Snapshot returns a copy of the colour RAM contents.
func (c *ColorRAM) Snapshot() [1024]uint8 {
	return c.data
}

// Restore replaces the colour RAM contents from a snapshot.
func (c *ColorRAM) Restore(data [1024]uint8) {
	c.data = data
}
