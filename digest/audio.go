package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/blar/virtualc64/curated"
)

const audioBufferLength = 1024 + sha1.Size
const audioBufferStart = sha1.Size

// Audio accumulates a chained SHA-1 digest of every sample written to it via
// SetAudio, periodically flushing once its buffer fills. It exists purely
// to compare the SID sample stream of two emulation runs for determinism.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for Audio.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements the Digest interface.
func (dig Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// SetAudio records a single SID output sample.
func (dig *Audio) SetAudio(sample uint8) error {
	dig.buffer[dig.bufferCt] = sample
	dig.bufferCt++
	if dig.bufferCt >= audioBufferLength {
		return dig.flush()
	}
	return nil
}

func (dig *Audio) flush() error {
	dig.digest = sha1.Sum(dig.buffer)
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: audio: digest error while flushing audio stream")
	}
	dig.bufferCt = audioBufferStart
	return nil
}

// EndMixing flushes any partially filled buffer into the digest, so that a
// run can be compared even when its sample count doesn't align exactly with
// audioBufferLength.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		return dig.flush()
	}
	return nil
}
