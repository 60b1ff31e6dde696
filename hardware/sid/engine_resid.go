package sid

// reSIDEngine backs SID_ENGINE=RESID: the same voice and envelope
// model as fastEngine, but with the analogue filter wired in (subject
// to SID_FILTER) and its nonlinear, revision-dependent cutoff curve,
// at the cost of the filter's extra per-cycle integrator work.
type reSIDEngine struct {
	baseEngine
}

func newReSIDEngine() *reSIDEngine {
	return &reSIDEngine{baseEngine: newBaseEngine()}
}

func (e *reSIDEngine) Output() int16 {
	return clampSample(e.mix() >> 10)
}
