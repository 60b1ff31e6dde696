// Package serialization implements the deterministic save/load format
// used to snapshot an emulator's state: a magic header, a three-part
// version tag, and then every component's persistent and reset-time
// state written in a fixed traversal order.
//
// The traversal pairs up with the teacher's own per-component
// Snapshot()-by-struct-copy idiom (hardware/cpu/cpu.go, cartridge's
// Snapshot methods): where the teacher copies a Go struct in memory for
// rewind, this package instead asks each component to serialize itself
// to an append-only byte Sink, so the same bytes can cross a process
// boundary or be written to a file.
package serialization
