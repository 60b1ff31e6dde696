// Package emulator owns the run loop that drives a Machine one master
// clock cycle at a time: the OFF/PAUSED/RUNNING power state machine, the
// thread-synchronised suspend/resume used by anything that needs the
// emulation quiescent for a moment (a snapshot, a debugger inspection),
// and the real-time pacing that keeps a frame-based machine running at
// its native refresh rate instead of as fast as the host CPU allows.
//
// The package never imports hardware/*, the same way the teacher's own
// emulation package defines TV/VCS/Debugger as minimal interfaces rather
// than depending on the concrete types that satisfy them — Machine here
// plays that role, leaving the concrete wiring of VIC/CIA/SID/CPU/drive
// to cmd/virtualc64.
package emulator
