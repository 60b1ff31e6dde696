package serialization_test

import (
	"bytes"
	"testing"

	"github.com/blar/virtualc64/serialization"
	"github.com/blar/virtualc64/test"
)

func TestSinkSourcePrimitiveRoundTrip(t *testing.T) {
	s := serialization.NewSink()
	s.WriteUint8(0x42)
	s.WriteBool(true)
	s.WriteUint16(0x1234)
	s.WriteUint32(0xdeadbeef)
	s.WriteUint64(0x0102030405060708)
	s.WriteBytes([]byte{1, 2, 3})

	src := serialization.NewSource(s.Bytes())

	u8, err := src.ReadUint8()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, u8, uint8(0x42))

	b, err := src.ReadBool()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, true)

	u16, err := src.ReadUint16()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, u16, uint16(0x1234))

	u32, err := src.ReadUint32()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, u32, uint32(0xdeadbeef))

	u64, err := src.ReadUint64()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, u64, uint64(0x0102030405060708))

	bs, err := src.ReadBytes()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, bytes.Equal(bs, []byte{1, 2, 3}), true)

	test.ExpectEquality(t, src.Done(), true)
}

func TestSourceRejectsShortData(t *testing.T) {
	src := serialization.NewSource([]byte{1, 2})
	_, err := src.ReadUint32()
	test.ExpectFailure(t, err)
}

// fakeComponent is a minimal Component: persistent state is a RAM-like
// byte slice, reset state is a single register that Reset would
// normally reinitialize.
type fakeComponent struct {
	ram []uint8
	reg uint8
}

func (c *fakeComponent) WritePersistent(s *serialization.Sink) {
	s.WriteBytes(c.ram)
}

func (c *fakeComponent) WriteReset(s *serialization.Sink) {
	s.WriteUint8(c.reg)
}

func (c *fakeComponent) ReadPersistent(s *serialization.Source) error {
	v, err := s.ReadBytes()
	if err != nil {
		return err
	}
	c.ram = v
	return nil
}

func (c *fakeComponent) ReadReset(s *serialization.Source) error {
	v, err := s.ReadUint8()
	if err != nil {
		return err
	}
	c.reg = v
	return nil
}

func TestSaveLoadRoundTripAcrossComponents(t *testing.T) {
	a := &fakeComponent{ram: []uint8{1, 2, 3}, reg: 0x11}
	b := &fakeComponent{ram: []uint8{4, 5}, reg: 0x22}

	blob := serialization.Save(serialization.Version{Major: 1}, a, b)

	a2 := &fakeComponent{}
	b2 := &fakeComponent{}
	err := serialization.Load(blob, serialization.Version{Major: 1}, a2, b2)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, bytes.Equal(a2.ram, a.ram), true)
	test.ExpectEquality(t, a2.reg, a.reg)
	test.ExpectEquality(t, bytes.Equal(b2.ram, b.ram), true)
	test.ExpectEquality(t, b2.reg, b.reg)
}

func TestLoadRejectsVersionMismatch(t *testing.T) {
	a := &fakeComponent{ram: []uint8{1}, reg: 1}
	blob := serialization.Save(serialization.Version{Major: 2}, a)

	err := serialization.Load(blob, serialization.Version{Major: 1}, &fakeComponent{})
	test.ExpectFailure(t, err)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	blob := serialization.Save(serialization.Version{Major: 1}, &fakeComponent{ram: []uint8{1}})
	blob[0] = 'X'

	err := serialization.Load(blob, serialization.Version{Major: 1}, &fakeComponent{})
	test.ExpectFailure(t, err)
}

func TestLoadRejectsTrailingData(t *testing.T) {
	a := &fakeComponent{ram: []uint8{1}, reg: 1}
	blob := serialization.Save(serialization.Version{Major: 1}, a)
	blob = append(blob, 0xff)

	err := serialization.Load(blob, serialization.Version{Major: 1}, &fakeComponent{})
	test.ExpectFailure(t, err)
}
