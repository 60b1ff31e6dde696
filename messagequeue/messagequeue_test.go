package messagequeue_test

import (
	"testing"

	"github.com/blar/virtualc64/messagequeue"
	"github.com/blar/virtualc64/test"
)

func TestListenerInvokedSynchronously(t *testing.T) {
	q := messagequeue.NewQueue(0)

	var got messagequeue.Message
	q.AddListener("test", func(m messagequeue.Message) { got = m })

	q.PutMessage(messagequeue.Message{Kind: messagequeue.DiskInserted, Value: "disk1.d64"})
	test.ExpectEquality(t, got.Kind, messagequeue.DiskInserted)
	test.ExpectEquality(t, got.Value, "disk1.d64")
}

func TestRemoveListener(t *testing.T) {
	q := messagequeue.NewQueue(0)

	count := 0
	q.AddListener("test", func(m messagequeue.Message) { count++ })
	q.PutMessage(messagequeue.Message{Kind: messagequeue.CPUJammed})
	test.ExpectEquality(t, count, 1)

	q.RemoveListener("test")
	q.PutMessage(messagequeue.Message{Kind: messagequeue.CPUJammed})
	test.ExpectEquality(t, count, 1)
}

func TestRingEviction(t *testing.T) {
	q := messagequeue.NewQueue(2)

	q.PutMessage(messagequeue.Message{Kind: messagequeue.DiskInserted})
	q.PutMessage(messagequeue.Message{Kind: messagequeue.DiskEjected})
	q.PutMessage(messagequeue.Message{Kind: messagequeue.DiskChanged})

	drained := q.Drain()
	test.ExpectEquality(t, len(drained), 2)
	test.ExpectEquality(t, drained[0].Kind, messagequeue.DiskEjected)
	test.ExpectEquality(t, drained[1].Kind, messagequeue.DiskChanged)
}

func TestKindString(t *testing.T) {
	test.ExpectEquality(t, messagequeue.BreakpointReached.String(), "BREAKPOINT_REACHED")
}
