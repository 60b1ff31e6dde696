package sid

// fastEngine backs SID_ENGINE=FAST: full register and envelope
// accuracy, but the filter stage is skipped outright regardless of
// SID_FILTER, trading the analogue filter's nonlinear feedback (the
// most expensive part of a per-sample synthesis) for raw speed. Games
// that lean on the filter for their lead voice will sound thinner;
// this is the documented trade the FAST engine makes.
type fastEngine struct {
	baseEngine
}

func newFastEngine() *fastEngine {
	e := &fastEngine{baseEngine: newBaseEngine()}
	return e
}

func (e *fastEngine) Output() int16 {
	var sum int32
	for i, v := range e.voices {
		if i == 2 && e.flt.mode&0x08 != 0 {
			continue
		}
		ringSource := e.voices[(i+2)%3].accum
		sum += int32(v.output(ringSource))
	}
	sum = (sum >> 12) * int32(e.flt.volume)
	return clampSample(sum >> 4)
}

func clampSample(v int32) int16 {
	const max = 32767
	const min = -32768
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return int16(v)
}
