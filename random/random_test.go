package random_test

import (
	"testing"

	"github.com/blar/virtualc64/random"
	"github.com/blar/virtualc64/test"
)

type fixedCycle uint64

func (f fixedCycle) GetCycle() uint64 { return uint64(f) }

func TestRandomDeterministic(t *testing.T) {
	a := random.NewRandom(fixedCycle(1000))
	b := random.NewRandom(fixedCycle(1000))
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestRandomDiffersByCycle(t *testing.T) {
	a := random.NewRandom(fixedCycle(1))
	b := random.NewRandom(fixedCycle(2))

	same := true
	for i := 0; i < 32; i++ {
		if a.Rewindable(i) != b.Rewindable(i) {
			same = false
			break
		}
	}
	test.ExpectEquality(t, same, false)
}

func TestFillRAM(t *testing.T) {
	a := random.NewRandom(fixedCycle(42))
	buf := make([]uint8, 64)
	a.FillRAM(buf)

	b := random.NewRandom(fixedCycle(42))
	want := make([]uint8, 64)
	b.FillRAM(want)

	test.ExpectEquality(t, string(buf), string(want))
}
