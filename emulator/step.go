package emulator

// Stepper is implemented by a Machine that exposes enough of its CPU
// to support single-instruction debugging. A Machine that doesn't
// implement it simply has no step support; StepInto/StepOver become
// no-ops against it.
type Stepper interface {
	Machine

	// PC reports the CPU's current program counter.
	PC() uint16

	// InstructionBoundary reports whether the most recently completed
	// cycle left the CPU about to fetch a new instruction, rather than
	// mid-instruction.
	InstructionBoundary() bool

	// LastInstructionBytes reports the length in bytes of the
	// instruction that just retired, valid only when
	// InstructionBoundary is true.
	LastInstructionBytes() int
}

// StepInto runs the machine, paused, until the CPU retires its current
// instruction and the next one is about to be fetched.
func (e *Emulator) StepInto() {
	s, ok := e.machine.(Stepper)
	if !ok {
		return
	}

	e.threadLock.Lock()
	defer e.threadLock.Unlock()

	s.ExecuteCycle()
	if s.Jammed() {
		return
	}
	for !s.InstructionBoundary() {
		s.ExecuteCycle()
		if s.Jammed() {
			return
		}
	}
}

// StepOver arms a one-shot breakpoint at the address immediately
// following the current instruction and resumes running, so a call
// instruction (e.g. JSR) executes in full rather than being stepped
// into.
func (e *Emulator) StepOver() {
	s, ok := e.machine.(Stepper)
	if !ok {
		return
	}

	e.oneShotBreakPC = s.PC() + uint16(s.LastInstructionBytes())
	e.oneShotBreakActive = true
	e.Run()
}
