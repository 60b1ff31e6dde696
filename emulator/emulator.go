package emulator

import (
	"sync"
	"sync/atomic"

	"github.com/blar/virtualc64/messagequeue"
)

// Emulator owns one Machine's run loop.
type Emulator struct {
	machine Machine
	mq      *messagequeue.Queue

	stateChangeLock sync.Mutex
	threadLock      sync.Mutex
	state           PowerState

	ctrl atomic.Uint32

	// runLoopGoroutine is the goroutine id runLoop is currently executing
	// on, latched at the top of each run and checked by executeOneFrame:
	// nothing else may call it concurrently while a run loop is active.
	runLoopGoroutine atomic.Uint64

	suspendMu       sync.Mutex
	suspendCount    int
	preSuspendState PowerState

	done chan struct{}

	limiter *frameLimiter

	autoSnapshots *snapshotRing
	userSnapshots *snapshotRing

	oneShotBreakPC     uint16
	oneShotBreakActive bool
}

// NewEmulator constructs an Emulator, OFF, driving machine at refreshHz
// frames per second once running. mq may be nil to discard
// notifications.
func NewEmulator(machine Machine, mq *messagequeue.Queue, refreshHz float32) *Emulator {
	return &Emulator{
		machine:       machine,
		mq:            mq,
		limiter:       newFrameLimiter(refreshHz),
		autoSnapshots: newSnapshotRing(32),
		userSnapshots: newSnapshotRing(32),
	}
}
