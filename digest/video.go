package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/blar/virtualc64/curated"
)

const pixelDepth = 3

// Video accumulates a chained SHA-1 digest of every frame written to it via
// SetPixel/NewFrame. It does not display the image anywhere; it exists
// purely to compare emulation runs for determinism.
type Video struct {
	width, height int
	digest        [sha1.Size]byte
	pixels        []byte
	frameNum      int
}

// NewVideo constructs a Video sized for width x height pixels, matching the
// VIC-II framebuffer dimensions for the selected television standard
// (PAL_WIDTH x PAL_HEIGHT or NTSC_WIDTH x NTSC_HEIGHT).
func NewVideo(width, height int) *Video {
	dig := &Video{width: width, height: height}
	l := len(dig.digest) + width*height*pixelDepth
	dig.pixels = make([]byte, l)
	return dig
}

// Hash implements the Digest interface.
func (dig Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// NewFrame folds the accumulated pixel buffer into the running digest and
// records frameNum as the current frame number, chaining fingerprints by copying the previous
// digest value into the head of the next frame's pixel data.
func (dig *Video) NewFrame(frameNum int) error {
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: digest error during new frame")
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// SetPixel records the colour of the pixel at (x, y) in the current frame.
// Coordinates outside the configured dimensions are silently ignored.
func (dig *Video) SetPixel(x, y int, r, g, b byte) {
	i := len(dig.digest) + dig.width*y*pixelDepth + x*pixelDepth
	if i <= len(dig.pixels)-pixelDepth && x >= 0 && y >= 0 && x < dig.width && y < dig.height {
		dig.pixels[i] = r
		dig.pixels[i+1] = g
		dig.pixels[i+2] = b
	}
}
