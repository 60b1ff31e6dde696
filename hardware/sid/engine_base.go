package sid

// baseEngine holds the register decode and per-cycle oscillator/
// envelope advance shared by both Engine implementations; FastEngine
// and ReSIDEngine only differ in how they mix the three voices down
// to a single output sample.
type baseEngine struct {
	voices   [3]*voice
	flt      filter
	revision Revision
}

func newBaseEngine() baseEngine {
	return baseEngine{voices: [3]*voice{newVoice(), newVoice(), newVoice()}}
}

func (e *baseEngine) Reset() {
	for i := range e.voices {
		e.voices[i] = newVoice()
	}
	e.flt = filter{revision: e.revision, enabled: e.flt.enabled}
}

func (e *baseEngine) SetRevision(r Revision) {
	e.revision = r
	e.flt.revision = r
}

func (e *baseEngine) SetFilterEnabled(on bool) { e.flt.enabled = on }

func (e *baseEngine) WriteRegister(reg uint8, v uint8) {
	switch reg {
	case regFreqLo1, regFreqLo2, regFreqLo3:
		e.voices[voiceIndex(reg, regFreqLo1)].writeFreqLo(v)
	case regFreqLo1 + 1, regFreqLo2 + 1, regFreqLo3 + 1:
		e.voices[voiceIndex(reg, regFreqHi1)].writeFreqHi(v)
	case regPWLo1, regPWLo1 + 7, regPWLo1 + 14:
		e.voices[voiceIndex(reg, regPWLo1)].writePWLo(v)
	case regPWHi1, regPWHi1 + 7, regPWHi1 + 14:
		e.voices[voiceIndex(reg, regPWHi1)].writePWHi(v)
	case regCtrl1, regCtrl2, regCtrl3:
		e.voices[voiceIndex(reg, regCtrl1)].writeCtrl(v)
	case regAD1, regAD1 + 7, regAD1 + 14:
		e.voices[voiceIndex(reg, regAD1)].writeAD(v)
	case regSR1, regSR1 + 7, regSR1 + 14:
		e.voices[voiceIndex(reg, regSR1)].writeSR(v)
	case regCutoffLo:
		e.flt.writeCutoffLo(v)
	case regCutoffHi:
		e.flt.writeCutoffHi(v)
	case regResRoute:
		e.flt.writeResRoute(v)
	case regModeVol:
		e.flt.writeModeVol(v)
	}
}

// voiceIndex recovers which of the three voices a register belongs to,
// given the register offset and the corresponding voice-1 register; the
// three voices' register blocks are each 7 bytes apart.
func voiceIndex(reg, base1 uint8) int {
	return int(reg-base1) / 7
}

func (e *baseEngine) ReadRegister(reg uint8) uint8 {
	switch reg {
	case regOsc3:
		return uint8(e.voices[2].waveform(e.voices[1].accum) >> 4)
	case regEnv3:
		return e.voices[2].envelope
	}
	return 0xFF
}

func (e *baseEngine) Tick() {
	syncSources := [3]uint32{e.voices[2].accum, e.voices[0].accum, e.voices[1].accum}
	for i, v := range e.voices {
		v.tickOscillator(syncSources[i])
		v.tickEnvelope()
	}
}

// mix sums the three voices' outputs, routing each through the filter
// when both the filter is enabled and that voice's route bit is set;
// voice 3 can additionally be cut from the final mix entirely (the
// "voice 3 off" bit, used by players that read OSC3/ENV3 without
// wanting to hear voice 3).
func (e *baseEngine) mix() int32 {
	var sum int32
	for i, v := range e.voices {
		if i == 2 && e.flt.mode&0x08 != 0 && e.flt.route&0x04 == 0 {
			continue
		}
		ringSource := e.voices[(i+2)%3].accum
		out := int32(v.output(ringSource))
		routed := e.flt.route&(1<<uint(i)) != 0
		if e.flt.enabled && routed {
			out = e.flt.process(out)
		}
		sum += out
	}
	return sum * int32(e.flt.volume)
}
