package emulator

// PowerState is one of the emulator's three states.
type PowerState int

const (
	StateOff PowerState = iota
	StatePaused
	StateRunning
)

func (s PowerState) String() string {
	switch s {
	case StateOff:
		return "OFF"
	case StatePaused:
		return "PAUSED"
	case StateRunning:
		return "RUNNING"
	}
	return ""
}

// Machine is the clocked logic the run loop drives. Concrete wiring of
// VIC/CIA/SID/CPU/drive into something satisfying this interface lives
// outside this package.
type Machine interface {
	// ExecuteCycle advances the machine by one master-clock cycle and
	// reports whether that cycle completed a video frame.
	ExecuteCycle() (frameDone bool)

	// Jammed reports whether the CPU has halted on an opcode it cannot
	// execute and can make no further progress.
	Jammed() bool
}

// PowerOn transitions OFF to PAUSED; it is a no-op from PAUSED or
// RUNNING (the transition table's diagonal).
func (e *Emulator) PowerOn() {
	e.stateChangeLock.Lock()
	defer e.stateChangeLock.Unlock()
	if e.state == StateOff {
		e.setState(StatePaused)
	}
}

// PowerOff halts the run loop, if running, and sets the state to OFF
// from any state.
func (e *Emulator) PowerOff() {
	e.stateChangeLock.Lock()
	defer e.stateChangeLock.Unlock()
	if e.state == StateRunning {
		e.haltThread()
	}
	e.setState(StateOff)
}

// Run transitions to RUNNING, starting the run-loop goroutine. Calling
// Run while OFF first powers on (the table's "RUNNING (via PAUSED)").
func (e *Emulator) Run() {
	e.stateChangeLock.Lock()
	defer e.stateChangeLock.Unlock()
	if e.state == StateOff {
		e.setState(StatePaused)
	}
	if e.state == StateRunning {
		return
	}
	e.setState(StateRunning)
	e.startThread()
}

// Pause transitions RUNNING to PAUSED; a no-op from OFF or PAUSED.
func (e *Emulator) Pause() {
	e.stateChangeLock.Lock()
	defer e.stateChangeLock.Unlock()
	if e.state == StateRunning {
		e.haltThread()
		e.setState(StatePaused)
	}
}

// State reports the current power state.
func (e *Emulator) State() PowerState {
	e.stateChangeLock.Lock()
	defer e.stateChangeLock.Unlock()
	return e.state
}

func (e *Emulator) setState(s PowerState) {
	e.state = s
	if e.mq != nil {
		e.notifyState(s)
	}
}
