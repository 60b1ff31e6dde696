package digest_test

import (
	"testing"

	"github.com/blar/virtualc64/digest"
	"github.com/blar/virtualc64/test"
)

func TestVideoDeterministic(t *testing.T) {
	run := func() string {
		v := digest.NewVideo(4, 4)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				v.SetPixel(x, y, byte(x), byte(y), 0)
			}
		}
		test.ExpectSuccess(t, v.NewFrame(0))
		return v.Hash()
	}

	test.ExpectEquality(t, run(), run())
}

func TestVideoDiffersWithContent(t *testing.T) {
	a := digest.NewVideo(2, 2)
	a.SetPixel(0, 0, 1, 2, 3)
	test.ExpectSuccess(t, a.NewFrame(0))

	b := digest.NewVideo(2, 2)
	b.SetPixel(0, 0, 9, 9, 9)
	test.ExpectSuccess(t, b.NewFrame(0))

	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestAudioFlushAndEndMixing(t *testing.T) {
	a := digest.NewAudio()
	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, a.SetAudio(uint8(i)))
	}
	test.ExpectSuccess(t, a.EndMixing())
	test.ExpectEquality(t, len(a.Hash()) > 0, true)
}
