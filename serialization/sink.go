package serialization

import "encoding/binary"

// Sink is an append-only byte buffer that a component writes its state
// into. Every Write method appends; nothing is ever overwritten or
// rewound, matching the "append-only" traversal spec.md describes.
type Sink struct {
	buf []byte
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Bytes returns the accumulated buffer.
func (s *Sink) Bytes() []byte {
	return s.buf
}

// WriteUint8 appends a single byte.
func (s *Sink) WriteUint8(v uint8) {
	s.buf = append(s.buf, v)
}

// WriteBool appends a byte, 1 for true and 0 for false.
func (s *Sink) WriteBool(v bool) {
	if v {
		s.WriteUint8(1)
	} else {
		s.WriteUint8(0)
	}
}

// WriteUint16 appends v big-endian.
func (s *Sink) WriteUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

// WriteUint32 appends v big-endian.
func (s *Sink) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

// WriteUint64 appends v big-endian.
func (s *Sink) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	s.buf = append(s.buf, b[:]...)
}

// WriteBytes appends a 32-bit length prefix followed by data, so a
// Source can read back a variable-length field without the reader
// needing to already know its size.
func (s *Sink) WriteBytes(data []byte) {
	s.WriteUint32(uint32(len(data)))
	s.buf = append(s.buf, data...)
}
