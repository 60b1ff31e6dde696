package serialization

import (
	"encoding/binary"

	"github.com/blar/virtualc64/curated"
)

// Source reads back a byte stream produced by a Sink, mirroring its
// traversal exactly: whatever order a component wrote fields in, it
// must read them back in.
type Source struct {
	buf []byte
	pos int
}

// NewSource wraps data for reading.
func NewSource(data []byte) *Source {
	return &Source{buf: data}
}

func (s *Source) require(n int) error {
	if s.pos+n > len(s.buf) {
		return curated.Errorf(curated.ErrSnapshotCorrupted, "unexpected end of data")
	}
	return nil
}

// ReadUint8 reads one byte.
func (s *Source) ReadUint8() (uint8, error) {
	if err := s.require(1); err != nil {
		return 0, err
	}
	v := s.buf[s.pos]
	s.pos++
	return v, nil
}

// ReadBool reads one byte and reports it as a bool.
func (s *Source) ReadBool() (bool, error) {
	v, err := s.ReadUint8()
	return v != 0, err
}

// ReadUint16 reads two big-endian bytes.
func (s *Source) ReadUint16() (uint16, error) {
	if err := s.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(s.buf[s.pos:])
	s.pos += 2
	return v, nil
}

// ReadUint32 reads four big-endian bytes.
func (s *Source) ReadUint32() (uint32, error) {
	if err := s.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v, nil
}

// ReadUint64 reads eight big-endian bytes.
func (s *Source) ReadUint64() (uint64, error) {
	if err := s.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v, nil
}

// ReadBytes reads back a length-prefixed field written by WriteBytes.
func (s *Source) ReadBytes() ([]byte, error) {
	n, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	if err := s.require(int(n)); err != nil {
		return nil, err
	}
	v := make([]byte, n)
	copy(v, s.buf[s.pos:s.pos+int(n)])
	s.pos += int(n)
	return v, nil
}

// Done reports whether every byte has been consumed.
func (s *Source) Done() bool {
	return s.pos == len(s.buf)
}
