package drive

// gcrEncodeTable is the Commodore 1541's 4-bit-to-5-bit GCR nibble
// code: every possible 4-bit value maps to a 5-bit group with no more
// than two consecutive zero bits, the property that makes the bit
// stream self-clocking on the read head.
var gcrEncodeTable = [16]uint8{
	0x0a, 0x0b, 0x12, 0x13,
	0x0e, 0x0f, 0x16, 0x17,
	0x09, 0x19, 0x1a, 0x1b,
	0x0d, 0x1d, 0x1e, 0x15,
}

var gcrDecodeTable = buildGCRDecodeTable()

func buildGCRDecodeTable() [32]int8 {
	var t [32]int8
	for i := range t {
		t[i] = -1
	}
	for nibble, code := range gcrEncodeTable {
		t[code] = int8(nibble)
	}
	return t
}

// encodeGCR packs data four bytes (32 bits) at a time into five GCR
// bytes (40 bits), the standard 1541 sector-data encoding.
func encodeGCR(data []uint8) []uint8 {
	out := make([]uint8, 0, (len(data)*5+3)/4)
	var bitBuf uint64
	var bitCount int

	flush := func() {
		for bitCount >= 8 {
			bitCount -= 8
			out = append(out, uint8(bitBuf>>uint(bitCount)))
		}
	}

	for _, b := range data {
		bitBuf = bitBuf<<5 | uint64(gcrEncodeTable[b>>4])
		bitCount += 5
		flush()
		bitBuf = bitBuf<<5 | uint64(gcrEncodeTable[b&0x0F])
		bitCount += 5
		flush()
	}
	if bitCount > 0 {
		out = append(out, uint8(bitBuf<<uint(8-bitCount)))
	}
	return out
}

// sectorsPerTrack is the 1541's four speed-zone layout: tracks 1-17
// carry 21 sectors, 18-24 carry 19, 25-30 carry 18, 31-35 carry 17.
func sectorsPerTrack(track int) int {
	switch {
	case track <= 17:
		return 21
	case track <= 24:
		return 19
	case track <= 30:
		return 18
	default:
		return 17
	}
}

// speedZone returns the bit-rate zone (0 = outermost/fastest, 3 =
// innermost/slowest) a track belongs to.
func speedZone(track int) int {
	switch {
	case track <= 17:
		return 0
	case track <= 24:
		return 1
	case track <= 30:
		return 2
	default:
		return 3
	}
}

// zoneCyclesPerByte approximates each zone's bit rate as CPU cycles
// per GCR byte, centred on spec's documented "~26 cycles per byte"
// nominal figure and widening slightly per zone.
var zoneCyclesPerByte = [4]int{25, 27, 29, 31}
