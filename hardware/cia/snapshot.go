package cia

// TimerInputFromByte reconstructs a timerInput from its serialized
// form. timerInput itself is unexported, so a caller outside this
// package (a snapshot codec, say) can't name the type to convert a
// byte into it directly; this function does that conversion on its
// behalf.
func TimerInputFromByte(b uint8) timerInput {
	return timerInput(b)
}

// State is every field needed to restore a CIA exactly, including the
// timer and TOD internals a plain register readback would lose (timer
// running/one-shot flags, the TOD alarm and latch state).
type State struct {
	PortA, PortB uint8
	DDRA, DDRB   uint8

	TimerALatch, TimerACounter   uint16
	TimerARunning, TimerAOneShot bool
	TimerAInput                  timerInput
	TimerAUnderflowed            bool
	TimerBLatch, TimerBCounter   uint16
	TimerBRunning, TimerBOneShot bool
	TimerBInput                  timerInput
	TimerBUnderflowed            bool

	Tenths, Seconds, Minutes, Hours uint8
	Latched                         [4]uint8
	LatchHeld                       bool
	WriteHoldTenths                 bool
	Stopped                         bool
	Alarm                           [4]uint8
	Matched                         bool
	SixtyHz                         bool

	SDR          uint8
	ICRData      uint8
	ICRMask      uint8
	CRBShadow    uint8
	TODPrescaler int
}

// Snapshot captures the CIA's complete internal state.
func (c *CIA) Snapshot() State {
	return State{
		PortA: c.portA, PortB: c.portB,
		DDRA: c.ddrA, DDRB: c.ddrB,

		TimerALatch: c.timerA.latch, TimerACounter: c.timerA.counter,
		TimerARunning: c.timerA.running, TimerAOneShot: c.timerA.oneShot,
		TimerAInput: c.timerA.input, TimerAUnderflowed: c.timerA.underflowed,
		TimerBLatch: c.timerB.latch, TimerBCounter: c.timerB.counter,
		TimerBRunning: c.timerB.running, TimerBOneShot: c.timerB.oneShot,
		TimerBInput: c.timerB.input, TimerBUnderflowed: c.timerB.underflowed,

		Tenths: c.clock.tenths, Seconds: c.clock.seconds,
		Minutes: c.clock.minutes, Hours: c.clock.hours,
		Latched: c.clock.latched, LatchHeld: c.clock.latchHeld,
		WriteHoldTenths: c.clock.writeHoldTenths, Stopped: c.clock.stopped,
		Alarm: c.clock.alarm, Matched: c.clock.matched, SixtyHz: c.clock.sixtyHz,

		SDR:          c.sdr,
		ICRData:      c.icrData,
		ICRMask:      c.icrMask,
		CRBShadow:    c.crbShadow,
		TODPrescaler: c.todPrescaler,
	}
}

// Restore replaces the CIA's internal state with a previously captured
// State.
func (c *CIA) Restore(s State) {
	c.portA, c.portB = s.PortA, s.PortB
	c.ddrA, c.ddrB = s.DDRA, s.DDRB

	c.timerA.latch, c.timerA.counter = s.TimerALatch, s.TimerACounter
	c.timerA.running, c.timerA.oneShot = s.TimerARunning, s.TimerAOneShot
	c.timerA.input, c.timerA.underflowed = s.TimerAInput, s.TimerAUnderflowed
	c.timerB.latch, c.timerB.counter = s.TimerBLatch, s.TimerBCounter
	c.timerB.running, c.timerB.oneShot = s.TimerBRunning, s.TimerBOneShot
	c.timerB.input, c.timerB.underflowed = s.TimerBInput, s.TimerBUnderflowed

	c.clock.tenths, c.clock.seconds = s.Tenths, s.Seconds
	c.clock.minutes, c.clock.hours = s.Minutes, s.Hours
	c.clock.latched, c.clock.latchHeld = s.Latched, s.LatchHeld
	c.clock.writeHoldTenths, c.clock.stopped = s.WriteHoldTenths, s.Stopped
	c.clock.alarm, c.clock.matched, c.clock.sixtyHz = s.Alarm, s.Matched, s.SixtyHz

	c.sdr = s.SDR
	c.icrData = s.ICRData
	c.icrMask = s.ICRMask
	c.crbShadow = s.CRBShadow
	c.todPrescaler = s.TODPrescaler
}
