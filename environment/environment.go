// Package environment carries everything a hardware component needs from
// its surroundings, passed explicitly into constructors rather than reached
// for through a global. This keeps Plumb (rewiring after a snapshot or
// rewind) a matter of handing components a fresh Environment rather than
// threading individual fields through every layer.
package environment

import (
	"github.com/blar/virtualc64/cartridgeloader"
	"github.com/blar/virtualc64/messagequeue"
	"github.com/blar/virtualc64/preferences"
	"github.com/blar/virtualc64/random"
)

// Label distinguishes between different instances of the emulation, useful
// when more than one is running in the same process (a thumbnailer, say).
type Label string

// MainEmulation is the label used for the primary, user-facing emulation.
const MainEmulation = Label("main")

// Environment is passed by reference into every hardware component at
// construction time, and again whenever a component is Plumb()-ed after a
// snapshot restore.
type Environment struct {
	// Label distinguishes this emulation from any others sharing the
	// process.
	Label Label

	// Notifications is where asynchronous events (CPU_JAMMED,
	// DISK_INSERTED, SNAPSHOT_TAKEN, ...) are delivered.
	Notifications *messagequeue.Queue

	// Prefs holds the configuration surface described in spec.md section 6.
	Prefs *preferences.Preferences

	// Random is the single source of pseudo-randomness for this emulation;
	// every component that needs non-determinism (RAM power-on pattern,
	// uninitialised register reads) goes through this instance so that
	// ZeroSeed can make a run fully reproducible.
	Random *random.Random

	// Loader is the cartridge/disk/tape loader currently attached, if any.
	Loader cartridgeloader.Loader
}

// NewEnvironment is the preferred method of initialisation for Environment.
// Either argument may be nil, in which case a default instance is created.
func NewEnvironment(label Label, src random.CycleSource, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:         label,
		Notifications: messagequeue.NewQueue(0),
		Prefs:         prefs,
		Random:        random.NewRandom(src),
	}

	if prefs == nil {
		var err error
		env.Prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	return env, nil
}

// Normalise resets the environment to a known default state, useful for
// regression testing where every run must start identically.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsEmulation reports whether label matches this environment's Label.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging reports whether this environment is permitted to create new
// log entries. Secondary emulations (thumbnailers, rewind scratch copies)
// stay quiet so the log reflects only the emulation the user is watching.
func (env *Environment) AllowLogging() bool {
	return env.IsEmulation(MainEmulation)
}
