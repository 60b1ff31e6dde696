package serialization

import (
	"bytes"

	"github.com/blar/virtualc64/curated"
)

var magic = [4]byte{'V', 'C', '6', '4'}

// Version is the three-part tag stamped into every snapshot. Load
// refuses to read a snapshot whose Major differs from the Version it
// is called with; Minor/Subminor differences are accepted, the same
// backward-compatible-migration contract spec.md describes.
type Version struct {
	Major    uint8
	Minor    uint8
	Subminor uint8
}

// Component is the traversal unit Save/Load walks: anything with
// persistent state (RAM contents, ROM, cartridge flash) and reset-time
// state (CPU registers, timer counters) that needs to survive a
// snapshot round trip. The two are written and read as a pair so a
// future caller could restore only the persistent half (e.g. a file
// load that doesn't want to inherit the previous session's CPU
// registers) without changing the wire format.
type Component interface {
	WritePersistent(*Sink)
	WriteReset(*Sink)
	ReadPersistent(*Source) error
	ReadReset(*Source) error
}

// Save serializes every component, in order, into a single snapshot
// blob: magic, version, then each component's persistent block
// followed by its reset block.
func Save(version Version, components ...Component) []byte {
	s := NewSink()
	s.buf = append(s.buf, magic[:]...)
	s.WriteUint8(version.Major)
	s.WriteUint8(version.Minor)
	s.WriteUint8(version.Subminor)

	for _, c := range components {
		c.WritePersistent(s)
		c.WriteReset(s)
	}

	return s.Bytes()
}

// Load validates the header against version and then restores every
// component, in the same order Save wrote them. It refuses to touch
// any component if the header doesn't match, leaving prior state
// intact per spec.md's integrity failure taxonomy.
func Load(data []byte, version Version, components ...Component) error {
	if len(data) < len(magic)+3 {
		return curated.Errorf(curated.ErrSnapshotCorrupted, "short header")
	}
	if !bytes.Equal(data[:len(magic)], magic[:]) {
		return curated.Errorf(curated.ErrSnapshotCorrupted, "bad magic")
	}

	src := NewSource(data[len(magic):])

	major, err := src.ReadUint8()
	if err != nil {
		return err
	}
	minor, err := src.ReadUint8()
	if err != nil {
		return err
	}
	subminor, err := src.ReadUint8()
	if err != nil {
		return err
	}
	if major != version.Major {
		return curated.Errorf(curated.ErrSnapshotVersion, Version{major, minor, subminor})
	}

	for _, c := range components {
		if err := c.ReadPersistent(src); err != nil {
			return err
		}
		if err := c.ReadReset(src); err != nil {
			return err
		}
	}

	if !src.Done() {
		return curated.Errorf(curated.ErrSnapshotCorrupted, "trailing data")
	}

	return nil
}
