// Package rom implements read-only memory regions (BASIC, KERNAL, CHAR,
// and VC1541 DOS ROMs), each carrying a 64-bit FNV-1a identity hash used
// for ROM title lookup and as a cheap equality check across snapshots.
package rom

import "hash/fnv"

// ROM is a fixed-size, read-only byte array with a content identity hash.
type ROM struct {
	data     []uint8
	identity uint64
}

// ErrWrongSize is returned by NewROM when data does not match size.
type ErrWrongSize struct {
	Want, Got int
}

func (e ErrWrongSize) Error() string {
	return "rom: wrong image size"
}

// NewROM constructs a ROM of exactly size bytes from data.
func NewROM(data []uint8, size int) (*ROM, error) {
	if len(data) != size {
		return nil, ErrWrongSize{Want: size, Got: len(data)}
	}

	cp := make([]uint8, size)
	copy(cp, data)

	h := fnv.New64a()
	_, _ = h.Write(cp)

	return &ROM{data: cp, identity: h.Sum64()}, nil
}

// Read returns the byte at addr, relative to the start of this ROM image.
func (r *ROM) Read(addr uint16) uint8 {
	return r.data[int(addr)%len(r.data)]
}

// Identity returns the 64-bit FNV-1a hash of the ROM's contents, used for
// title lookup.
func (r *ROM) Identity() uint64 {
	return r.identity
}

// Len returns the size of the ROM image in bytes.
func (r *ROM) Len() int {
	return len(r.data)
}
