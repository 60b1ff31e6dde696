package sid_test

import (
	"testing"

	"github.com/blar/virtualc64/hardware/sid"
	"github.com/blar/virtualc64/test"
)

func TestSampleRingPreservesOrder(t *testing.T) {
	r := sid.NewSampleRing(8)
	r.Push(1)
	r.Push(2)
	r.Push(3)

	v, ok := r.Pop()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v, int16(1))

	v, _ = r.Pop()
	test.ExpectEquality(t, v, int16(2))
	v, _ = r.Pop()
	test.ExpectEquality(t, v, int16(3))

	_, ok = r.Pop()
	test.ExpectEquality(t, ok, false)
}

func TestSampleRingDropsOldestOnOverflow(t *testing.T) {
	r := sid.NewSampleRing(2)
	r.Push(1)
	r.Push(2)
	r.Push(3) // ring holds 2; this overwrites the unread 1

	v, _ := r.Pop()
	test.ExpectEquality(t, v, int16(2))
	v, _ = r.Pop()
	test.ExpectEquality(t, v, int16(3))
}

func TestClockResamplesAtGivenRatio(t *testing.T) {
	s := sid.NewSID(sid.EngineFast, sid.Revision6581, false, 8, 2, 16)
	s.Clock(8)
	test.ExpectEquality(t, s.Ring().Len(), 2)
}

func TestPokeShadowsWriteOnlyRegister(t *testing.T) {
	s := sid.NewSID(sid.EngineFast, sid.Revision6581, true, 985248, 44100, 256)
	s.Poke(0x00, 0x34)
	test.ExpectEquality(t, s.Peek(0x00), uint8(0x34))
}

func TestGateOpensAttackEnvelope(t *testing.T) {
	s := sid.NewSID(sid.EngineFast, sid.Revision6581, false, 985248, 44100, 256)
	s.Poke(0x13, 0x00) // voice 3 attack=0, decay=0
	s.Poke(0x14, 0x00) // voice 3 sustain=0, release=0
	s.Poke(0x12, 0x11) // voice 3 control: gate + triangle
	s.Clock(20)        // attack rate 0 advances every 9 cycles
	env := s.Peek(0x1C)
	if env == 0 {
		t.Fatalf("expected voice 3 envelope to have advanced past 0, got %d", env)
	}
}

func TestEngineRevisionSwitchDoesNotPanic(t *testing.T) {
	s := sid.NewSID(sid.EngineReSID, sid.Revision6581, true, 985248, 44100, 256)
	s.SetRevision(sid.Revision8580)
	s.SetFilterEnabled(false)
	s.Clock(100)
}
