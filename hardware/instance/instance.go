// Package instance carries the per-run context every hardware component
// needs but none of them own: configuration and a source of determinism.
// Passing an Instance down through constructors avoids a cyclic
// back-reference from every chip to some root "machine" object.
package instance

import (
	"github.com/blar/virtualc64/preferences"
	"github.com/blar/virtualc64/random"
)

// Instance is shared, by reference, across every component belonging to a
// single emulation.
type Instance struct {
	Prefs  *preferences.Preferences
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for Instance. If
// prefs is nil a fresh, unconfigured Preferences is created.
func NewInstance(prefs *preferences.Preferences) (*Instance, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	return &Instance{
		Prefs:  prefs,
		Random: random.NewRandom(nil),
	}, nil
}

// Plumb attaches src as the cycle source for the Instance's Random. Called
// once the master clock exists, and again after a snapshot restore when a
// fresh clock has taken its place.
func (ins *Instance) Plumb(src random.CycleSource) {
	zeroSeed := ins.Random != nil && ins.Random.ZeroSeed
	ins.Random = random.NewRandom(src)
	ins.Random.ZeroSeed = zeroSeed
}

