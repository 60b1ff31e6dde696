package emulator

import (
	"sync/atomic"

	"github.com/blar/virtualc64/assert"
)

// runLoopCtrl bits, in descending priority: a goroutine observing more
// than one set bit always acts on the highest-priority one first.
const (
	ctrlStop uint32 = 1 << iota
	ctrlCPUJammed
	ctrlBreakpointReached
	ctrlWatchpointReached
	ctrlInspect
	ctrlAutoSnapshot
	ctrlUserSnapshot
)

func setBit(v *atomic.Uint32, bit uint32) {
	for {
		old := v.Load()
		if old&bit != 0 {
			return
		}
		if v.CompareAndSwap(old, old|bit) {
			return
		}
	}
}

func clearBit(v *atomic.Uint32, bit uint32) {
	for {
		old := v.Load()
		if old&bit == 0 {
			return
		}
		if v.CompareAndSwap(old, old&^bit) {
			return
		}
	}
}

// startThread launches the run-loop goroutine. Callers must hold
// stateChangeLock and have already set state to StateRunning.
func (e *Emulator) startThread() {
	e.done = make(chan struct{})
	go e.runLoop(e.done)
}

// haltThread asks the run-loop goroutine to stop at the next frame
// boundary and waits for it to have done so. Callers must hold
// stateChangeLock and call this only while state is StateRunning.
func (e *Emulator) haltThread() {
	setBit(&e.ctrl, ctrlStop)
	e.threadLock.Lock()
	e.threadLock.Unlock()
	<-e.done
	clearBit(&e.ctrl, ctrlStop)
}

func (e *Emulator) runLoop(done chan struct{}) {
	defer close(done)
	e.runLoopGoroutine.Store(assert.GetGoRoutineID())

	for {
		e.threadLock.Lock()
		jammed := e.executeOneFrame()
		e.threadLock.Unlock()

		if jammed {
			setBit(&e.ctrl, ctrlCPUJammed)
		}

		ctrl := e.ctrl.Load()

		if ctrl&ctrlStop != 0 {
			return
		}
		if ctrl&ctrlCPUJammed != 0 {
			e.autoPause()
			e.notifyJammed()
			return
		}
		if ctrl&(ctrlBreakpointReached|ctrlWatchpointReached) != 0 {
			e.autoPause()
			e.notifyBreak(ctrl)
			return
		}
		if ctrl&ctrlInspect != 0 {
			clearBit(&e.ctrl, ctrlInspect)
		}
		if ctrl&ctrlAutoSnapshot != 0 {
			clearBit(&e.ctrl, ctrlAutoSnapshot)
			e.takeSnapshot(e.autoSnapshots)
		}
		if ctrl&ctrlUserSnapshot != 0 {
			clearBit(&e.ctrl, ctrlUserSnapshot)
			e.takeSnapshot(e.userSnapshots)
		}

		e.limiter.CheckFrame()
	}
}

// executeOneFrame runs machine cycles until a frame completes or the
// CPU jams, watching for the one-shot step-over breakpoint along the
// way.
func (e *Emulator) executeOneFrame() (jammed bool) {
	assert.OwnedBy(e.runLoopGoroutine.Load())

	stepper, canStep := e.machine.(Stepper)

	for {
		frameDone := e.machine.ExecuteCycle()
		if e.machine.Jammed() {
			return true
		}

		if canStep && e.oneShotBreakActive && stepper.InstructionBoundary() && stepper.PC() == e.oneShotBreakPC {
			e.oneShotBreakActive = false
			setBit(&e.ctrl, ctrlBreakpointReached)
			return false
		}

		if frameDone {
			return false
		}
	}
}
