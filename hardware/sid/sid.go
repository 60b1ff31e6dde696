// Package sid implements the MOS 6581/8580 SID audio chip as a bridge:
// a register-accurate front end (the 29 registers at $D400-$D41C, their
// write-only/read-only asymmetry) driving a pluggable Engine that does
// the actual waveform synthesis, selected at runtime by the SID_ENGINE
// configuration option (FAST favors speed, RESID favors fidelity).
// Samples produced by the Engine are pushed into a lock-free ring that
// the host drains independently of the emulation thread.
package sid

// Revision selects the 6581 (the original, its filter's nonlinearity
// and its combined-waveform quirks) or the later 8580 (cleaner filter,
// different combined-waveform table). Both engines honor it.
type Revision int

const (
	Revision6581 Revision = iota
	Revision8580
)

// SamplingMethod mirrors the SID_SAMPLING configuration option. It only
// affects how the Engine's internal cycle-rate output is resampled down
// to the host sample rate.
type SamplingMethod int

const (
	SamplingFast SamplingMethod = iota
	SamplingInterpolate
	SamplingResample
)

// EngineKind selects which Engine implementation backs a SID, matching
// the SID_ENGINE configuration option.
type EngineKind int

const (
	EngineFast EngineKind = iota
	EngineReSID
)

// Engine does the actual audio synthesis: three voices, ADSR envelopes,
// and (in the RESID engine) the analogue filter. SID drives it one
// clock cycle at a time and samples its output at the host rate.
type Engine interface {
	Reset()
	SetRevision(r Revision)
	SetFilterEnabled(on bool)
	WriteRegister(reg uint8, v uint8)
	// ReadRegister services the two read-only registers (OSC3, ENV3)
	// that expose live oscillator/envelope state; reg is already masked
	// to 0-28.
	ReadRegister(reg uint8) uint8
	// Tick advances every voice and the filter by one clock cycle.
	Tick()
	// Output returns the chip's current mixed output sample.
	Output() int16
}

// register offsets within the 29-register block, mirrored every 32
// bytes through the chip's $D400-$D7FF I/O window.
const (
	regFreqLo1 = 0x00
	regFreqHi1 = 0x01
	regPWLo1   = 0x02
	regPWHi1   = 0x03
	regCtrl1   = 0x04
	regAD1     = 0x05
	regSR1     = 0x06

	regFreqLo2 = 0x07
	regCtrl2   = 0x0B

	regFreqLo3 = 0x0E
	regCtrl3   = 0x12

	regCutoffLo = 0x15
	regCutoffHi = 0x16
	regResRoute = 0x17
	regModeVol  = 0x18

	regPotX = 0x19
	regPotY = 0x1A
	regOsc3 = 0x1B
	regEnv3 = 0x1C

	numRegisters = 0x1D
)

// SID is one MOS 6581/8580 instance: CIA1 or CIA2's neighbour at
// $D400, mapped by the memory map into the I/O page.
type SID struct {
	engine Engine
	ring   *SampleRing

	// regs shadows every register as last written, for the write-only
	// registers that real hardware reads back as bus-capacitance residue
	// rather than open bus.
	regs [numRegisters]uint8

	clockRate  uint32
	sampleRate uint32
	accum      uint32
}

// NewSID constructs a SID clocked at clockRate Hz (the C64's ~0.985 MHz
// PAL or ~1.023 MHz NTSC system clock) and resampled to sampleRate Hz
// for the host ring, using the given engine and starting configuration.
func NewSID(kind EngineKind, revision Revision, filterEnabled bool, clockRate, sampleRate uint32, ringCapacity int) *SID {
	var e Engine
	switch kind {
	case EngineReSID:
		e = newReSIDEngine()
	default:
		e = newFastEngine()
	}
	e.SetRevision(revision)
	e.SetFilterEnabled(filterEnabled)

	return &SID{
		engine:     e,
		ring:       NewSampleRing(ringCapacity),
		clockRate:  clockRate,
		sampleRate: sampleRate,
	}
}

// Ring exposes the sample ring for the host to drain.
func (s *SID) Ring() *SampleRing { return s.ring }

// Reset returns every register and the engine to power-on state.
func (s *SID) Reset() {
	s.regs = [numRegisters]uint8{}
	s.engine.Reset()
	s.accum = 0
}

// SetRevision switches the chip model (6581/8580) without losing
// register state, matching a live SID_REVISION reconfiguration.
func (s *SID) SetRevision(r Revision) { s.engine.SetRevision(r) }

// SetFilterEnabled toggles the analogue filter stage, matching SID_FILTER.
func (s *SID) SetFilterEnabled(on bool) { s.engine.SetFilterEnabled(on) }

// SetClockRate updates the cycle rate the chip is driven at, used when
// the VIC_MODEL configuration option switches between PAL and NTSC.
func (s *SID) SetClockRate(hz uint32) { s.clockRate = hz }

// Peek reads register addr & 0x1F (the chip decodes only 5 address
// lines; anything above 28 mirrors open-bus/unused behavior as 0xFF).
func (s *SID) Peek(addr uint16) uint8 {
	reg := uint8(addr) & 0x1F
	switch reg {
	case regOsc3, regEnv3:
		return s.engine.ReadRegister(reg)
	case regPotX, regPotY:
		// no paddle is modelled; a floating pot input reads as 0xFF.
		return 0xFF
	}
	if reg >= numRegisters {
		return 0xFF
	}
	return s.regs[reg]
}

// Poke writes register addr & 0x1F.
func (s *SID) Poke(addr uint16, data uint8) {
	reg := uint8(addr) & 0x1F
	if reg >= numRegisters {
		return
	}
	s.regs[reg] = data
	s.engine.WriteRegister(reg, data)
}

// Clock advances the chip by n system clock cycles, ticking the engine
// every cycle and pushing a resampled output into the ring each time
// the sample-rate accumulator overflows (a Bresenham-style rational
// resampler, avoiding floating point in the hot path).
func (s *SID) Clock(n int) {
	for i := 0; i < n; i++ {
		s.engine.Tick()
		s.accum += s.sampleRate
		if s.accum >= s.clockRate {
			s.accum -= s.clockRate
			s.ring.Push(s.engine.Output())
		}
	}
}
