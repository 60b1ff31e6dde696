package sid

// State is the externally visible SID state: the shadowed register
// file and the resampling accumulator. It does not capture the active
// Engine's internal oscillator phase or envelope counters, since
// Engine exposes no such accessor and the fast/ReSID engines are
// swappable at construction time; Restore replays every register
// through WriteRegister, which re-synthesizes a consistent (if not
// bit-identical) internal engine state from the shadowed values.
type State struct {
	Revision      Revision
	FilterEnabled bool
	Regs          [numRegisters]uint8
	ClockRate     uint32
	SampleRate    uint32
	Accum         uint32
}

// Snapshot captures the SID's externally visible state.
func (s *SID) Snapshot(revision Revision, filterEnabled bool) State {
	return State{
		Revision:      revision,
		FilterEnabled: filterEnabled,
		Regs:          s.regs,
		ClockRate:     s.clockRate,
		SampleRate:    s.sampleRate,
		Accum:         s.accum,
	}
}

// Restore replaces the SID's register shadow and resampling state, and
// replays every register write into the active engine so its filter
// and waveform generators pick up the restored values.
func (s *SID) Restore(st State) {
	s.SetRevision(st.Revision)
	s.SetFilterEnabled(st.FilterEnabled)
	s.clockRate = st.ClockRate
	s.sampleRate = st.SampleRate
	s.accum = st.Accum

	s.regs = st.Regs
	for reg, v := range s.regs {
		s.engine.WriteRegister(uint8(reg), v)
	}
}
