package emulator

import (
	"github.com/blar/virtualc64/crunched"
	"github.com/blar/virtualc64/messagequeue"
)

// Snapshotter is implemented by a Machine that can serialize its own
// state. Snapshotting is optional: a Machine that doesn't implement it
// simply never has anything captured.
type Snapshotter interface {
	Snapshot() []byte
}

// snapshotRing is a fixed-capacity FIFO of serialized machine states.
// Entries are kept RLE-crunched between push and all: a full-machine
// snapshot is mostly zeroed or repetitive RAM, and a 32-slot ring of
// them otherwise holds onto many uncompressed copies for as long as
// the emulator runs.
type snapshotRing struct {
	buf  []crunched.Data
	cap  int
	next int
	full bool
}

func newSnapshotRing(capacity int) *snapshotRing {
	return &snapshotRing{buf: make([]crunched.Data, capacity), cap: capacity}
}

func (r *snapshotRing) push(data []byte) {
	q := crunched.NewQuick(len(data))
	copy(*q.Data(), data)
	r.buf[r.next] = q.Snapshot()
	r.next = (r.next + 1) % r.cap
	if r.next == 0 {
		r.full = true
	}
}

// all returns the ring's contents in oldest-to-newest order, decrunched.
func (r *snapshotRing) all() [][]byte {
	entries := r.ordered()
	out := make([][]byte, len(entries))
	for i, e := range entries {
		out[i] = *e.Data()
	}
	return out
}

func (r *snapshotRing) ordered() []crunched.Data {
	if !r.full {
		out := make([]crunched.Data, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]crunched.Data, r.cap)
	copy(out, r.buf[r.next:])
	copy(out[r.cap-r.next:], r.buf[:r.next])
	return out
}

func (e *Emulator) takeSnapshot(ring *snapshotRing) {
	s, ok := e.machine.(Snapshotter)
	if !ok {
		return
	}
	ring.push(s.Snapshot())
	if e.mq != nil {
		e.mq.PutMessage(messagequeue.Message{Kind: messagequeue.SnapshotTaken})
	}
}

// RequestAutoSnapshot asks the run-loop to capture state into the
// automatic ring at the next frame boundary. Safe to call from any
// goroutine.
func (e *Emulator) RequestAutoSnapshot() {
	setBit(&e.ctrl, ctrlAutoSnapshot)
}

// RequestUserSnapshot asks the run-loop to capture state into the
// user-requested ring at the next frame boundary.
func (e *Emulator) RequestUserSnapshot() {
	setBit(&e.ctrl, ctrlUserSnapshot)
}

// AutoSnapshots returns the automatic snapshot ring's contents,
// oldest first.
func (e *Emulator) AutoSnapshots() [][]byte {
	return e.autoSnapshots.all()
}

// UserSnapshots returns the user-requested snapshot ring's contents,
// oldest first.
func (e *Emulator) UserSnapshots() [][]byte {
	return e.userSnapshots.all()
}

// Suspend pauses the emulator if it is running and remembers that fact
// so a matching Resume can restore it. Calls nest: the emulator only
// actually resumes once every Suspend has a matching Resume.
func (e *Emulator) Suspend() {
	e.suspendMu.Lock()
	defer e.suspendMu.Unlock()

	if e.suspendCount == 0 {
		e.preSuspendState = e.State()
		e.Pause()
	}
	e.suspendCount++
}

// Resume undoes one Suspend call, restoring the pre-suspend state
// once the nesting count reaches zero.
func (e *Emulator) Resume() {
	e.suspendMu.Lock()
	defer e.suspendMu.Unlock()

	if e.suspendCount == 0 {
		return
	}
	e.suspendCount--
	if e.suspendCount == 0 && e.preSuspendState == StateRunning {
		e.Run()
	}
}
