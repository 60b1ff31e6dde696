package monitor_test

import (
	"testing"

	"github.com/blar/virtualc64/debugger/monitor"
	"github.com/blar/virtualc64/test"
)

type fakeTarget struct {
	pc       uint16
	boundary bool
	mem      map[uint16]uint8
}

func (f *fakeTarget) PC() uint16                { return f.pc }
func (f *fakeTarget) InstructionBoundary() bool { return f.boundary }
func (f *fakeTarget) Peek(addr uint16) uint8    { return f.mem[addr] }

func TestBreakpointFiresOnlyAtInstructionBoundary(t *testing.T) {
	var m monitor.Monitor
	m.Break(0xC000)

	tgt := &fakeTarget{pc: 0xC000, boundary: false, mem: map[uint16]uint8{}}
	_, hit := m.Check(tgt)
	test.ExpectEquality(t, hit, false)

	tgt.boundary = true
	h, hit := m.Check(tgt)
	test.ExpectEquality(t, hit, true)
	test.ExpectEquality(t, h.Breakpoint, true)
	test.ExpectEquality(t, h.Address, uint16(0xC000))
}

func TestClearBreakDisarms(t *testing.T) {
	var m monitor.Monitor
	m.Break(0xC000)
	m.ClearBreak(0xC000)

	tgt := &fakeTarget{pc: 0xC000, boundary: true, mem: map[uint16]uint8{}}
	_, hit := m.Check(tgt)
	test.ExpectEquality(t, hit, false)
}

func TestWatchpointFiresOnValueChange(t *testing.T) {
	var m monitor.Monitor
	tgt := &fakeTarget{pc: 0x1000, boundary: true, mem: map[uint16]uint8{0xD020: 0x00}}
	m.Watch(0xD020, tgt)

	_, hit := m.Check(tgt)
	test.ExpectEquality(t, hit, false)

	tgt.mem[0xD020] = 0x06
	h, hit := m.Check(tgt)
	test.ExpectEquality(t, hit, true)
	test.ExpectEquality(t, h.Watchpoint, true)
	test.ExpectEquality(t, h.Old, uint8(0x00))
	test.ExpectEquality(t, h.New, uint8(0x06))

	// the baseline is latched at the new value, so the same change
	// doesn't fire twice.
	_, hit = m.Check(tgt)
	test.ExpectEquality(t, hit, false)
}

func TestBreakpointTakesPriorityOverWatchpoint(t *testing.T) {
	var m monitor.Monitor
	tgt := &fakeTarget{pc: 0xC000, boundary: true, mem: map[uint16]uint8{0xD020: 0x00}}
	m.Watch(0xD020, tgt)
	m.Break(0xC000)

	tgt.mem[0xD020] = 0x01
	h, hit := m.Check(tgt)
	test.ExpectEquality(t, hit, true)
	test.ExpectEquality(t, h.Breakpoint, true)
}
