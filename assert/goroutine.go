// Package assert provides lightweight runtime checks for invariants that
// should never fail in correct code but are cheap enough to leave compiled
// in, chiefly single-goroutine-ownership of emulation state.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for the calling goroutine. It is
// (a) different between goroutines and (b) consistent for a given
// goroutine for its lifetime. Only ever use this for debugging, testing, or
// assertions — never for program logic.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// OwnedBy panics if the calling goroutine's id does not match owner. Used to
// assert that emulation state is only ever mutated from the single
// emulation thread described in spec.md section 5.
func OwnedBy(owner uint64) {
	if id := GetGoRoutineID(); id != owner {
		panic(fmt.Sprintf("assert: expected goroutine %d, called from %d", owner, id))
	}
}
