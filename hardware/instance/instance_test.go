package instance_test

import (
	"testing"

	"github.com/blar/virtualc64/hardware/instance"
	"github.com/blar/virtualc64/test"
)

type fixedCycle uint64

func (f fixedCycle) GetCycle() uint64 { return uint64(f) }

func TestNewInstanceDefaults(t *testing.T) {
	ins, err := instance.NewInstance(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ins.Prefs != nil, true)
	test.ExpectEquality(t, ins.Random != nil, true)
}

func TestPlumbPreservesZeroSeed(t *testing.T) {
	ins, err := instance.NewInstance(nil)
	test.ExpectSuccess(t, err)
	ins.Random.ZeroSeed = true

	ins.Plumb(fixedCycle(100))
	test.ExpectEquality(t, ins.Random.ZeroSeed, true)
}
