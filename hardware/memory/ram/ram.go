// Package ram implements the C64's 64 KiB of main RAM.
package ram

import "github.com/blar/virtualc64/random"

// RAM is a flat 64 KiB byte array.
type RAM struct {
	data [0x10000]uint8
}

// NewRAM constructs a RAM. pattern selects the power-on fill: "C64" asks r
// for pseudo-random noise (matching the real machine's uninitialised SRAM
// behaviour), anything else zero-fills (RAM_PATTERN=INIT_C64C).
func NewRAM(pattern string, r *random.Random) *RAM {
	ram := &RAM{}
	if pattern == "C64" && r != nil {
		r.FillRAM(ram.data[:])
	}
	return ram
}

// Read returns the byte at addr.
func (m *RAM) Read(addr uint16) uint8 {
	return m.data[addr]
}

// Write stores data at addr.
func (m *RAM) Write(addr uint16, data uint8) {
	m.data[addr] = data
}

// Snapshot returns a copy of the RAM contents suitable for serialization.
func (m *RAM) Snapshot() [0x10000]uint8 {
	return m.data
}

// Restore replaces the RAM contents from a snapshot taken by Snapshot.
func (m *RAM) Restore(data [0x10000]uint8) {
	m.data = data
}
