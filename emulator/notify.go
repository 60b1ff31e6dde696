package emulator

import "github.com/blar/virtualc64/messagequeue"

// autoPause moves the emulator to PAUSED from within the run-loop
// goroutine itself, on its way out of runLoop. It takes stateChangeLock
// directly rather than going through Pause, since Pause would wait for
// this same goroutine to stop.
func (e *Emulator) autoPause() {
	e.stateChangeLock.Lock()
	defer e.stateChangeLock.Unlock()
	e.setState(StatePaused)
	clearBit(&e.ctrl, ctrlCPUJammed)
	clearBit(&e.ctrl, ctrlBreakpointReached)
	clearBit(&e.ctrl, ctrlWatchpointReached)
}

func (e *Emulator) notifyState(s PowerState) {
	switch s {
	case StateRunning:
		e.mq.PutMessage(messagequeue.Message{Kind: messagequeue.EmulationRunning})
	case StatePaused:
		e.mq.PutMessage(messagequeue.Message{Kind: messagequeue.EmulationPaused})
	}
}

func (e *Emulator) notifyJammed() {
	if e.mq != nil {
		e.mq.PutMessage(messagequeue.Message{Kind: messagequeue.CPUJammed})
	}
}

func (e *Emulator) notifyBreak(ctrl uint32) {
	if e.mq == nil {
		return
	}
	if ctrl&ctrlBreakpointReached != 0 {
		e.mq.PutMessage(messagequeue.Message{Kind: messagequeue.BreakpointReached})
	}
	if ctrl&ctrlWatchpointReached != 0 {
		e.mq.PutMessage(messagequeue.Message{Kind: messagequeue.WatchpointReached})
	}
}
