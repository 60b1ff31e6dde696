package emulator

import (
	"sync/atomic"
	"time"
)

// frameLimiter paces CheckFrame calls to a target refresh rate using
// the monotonic clock, the way the teacher's television/limiter
// package paces TV frames: track a running target time and sleep
// until it, resetting if the caller falls too far behind to ever
// catch up.
type frameLimiter struct {
	frameNanos     int64
	nanoTargetTime int64 // unix nanos of the next frame deadline, 0 before first check
	measured       atomic.Value
	warp           atomic.Bool
}

const desyncTolerance = 200 * time.Millisecond

func newFrameLimiter(refreshHz float32) *frameLimiter {
	l := &frameLimiter{}
	l.SetRefreshRate(refreshHz)
	l.measured.Store(float32(0))
	return l
}

// SetRefreshRate reconfigures the target frame period; a running
// limiter restarts its timer on the next CheckFrame.
func (l *frameLimiter) SetRefreshRate(hz float32) {
	if hz <= 0 {
		hz = 50.0
	}
	l.frameNanos = int64(time.Second) / int64(hz)
	atomic.StoreInt64(&l.nanoTargetTime, 0)
}

// SetWarp disables real-time pacing entirely (run as fast as the host
// allows) when on is true.
func (l *frameLimiter) SetWarp(on bool) {
	l.warp.Store(on)
}

func (l *frameLimiter) restartTimer(now int64) {
	atomic.StoreInt64(&l.nanoTargetTime, now+l.frameNanos)
}

// CheckFrame blocks the caller until the next frame deadline, measures
// the actual interval since the previous call, and advances the
// target. If the host has fallen more than desyncTolerance behind
// (the machine was suspended, or paused for a long debugger session)
// the timer restarts from now instead of trying to burn through the
// backlog.
func (l *frameLimiter) CheckFrame() {
	now := time.Now().UnixNano()

	if l.warp.Load() {
		l.restartTimer(now)
		return
	}

	target := atomic.LoadInt64(&l.nanoTargetTime)
	if target == 0 {
		l.restartTimer(now)
		return
	}

	if now > target+int64(desyncTolerance) {
		l.restartTimer(now)
		return
	}

	if now < target {
		time.Sleep(time.Duration(target - now))
	}

	actual := time.Now().UnixNano() - (target - l.frameNanos)
	if actual > 0 {
		l.measured.Store(float32(time.Second) / float32(actual))
	}

	atomic.StoreInt64(&l.nanoTargetTime, target+l.frameNanos)
}

// MeasureActual reports the most recently measured frame rate.
func (l *frameLimiter) MeasureActual() float32 {
	v, _ := l.measured.Load().(float32)
	return v
}

// SetRefreshRate on the Emulator forwards to its frame limiter.
func (e *Emulator) SetRefreshRate(hz float32) {
	e.limiter.SetRefreshRate(hz)
}

// SetWarp toggles unthrottled execution.
func (e *Emulator) SetWarp(on bool) {
	e.limiter.SetWarp(on)
}

// MeasuredRefreshRate reports the emulator's actual measured frame rate.
func (e *Emulator) MeasuredRefreshRate() float32 {
	return e.limiter.MeasureActual()
}
