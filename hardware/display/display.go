// Package display holds the VIC-II's pixel output: a double-buffered
// framebuffer that the emulation thread writes to one scanline at a
// time and atomically swaps at end-of-frame, so a host reading the
// "front" buffer never observes a frame VIC is still drawing.
package display

import "sync/atomic"

// Width and Height are the visible raster dimensions in pixels, the
// same for every VIC model (the PAL/NTSC difference is in blanking and
// total scanline count, not the visible picture this core exposes).
const (
	Width  = 403
	Height = 284
)

// Framebuffer is one complete frame: one palette-index byte per pixel,
// row-major. Color is resolved to RGB by the host from the palette
// index, matching how real composite/RGB output is a per-host concern.
type Framebuffer [Width * Height]uint8

// Display owns the pair of buffers VIC alternates between. Back is
// mutated during a frame; Swap publishes it as Front and hands back a
// fresh (the previous Front) buffer to draw into next.
type Display struct {
	buffers [2]*Framebuffer
	front   atomic.Uint32 // index into buffers of the currently published frame
	back    int
}

// New constructs a Display with both buffers zeroed (palette index 0,
// conventionally black/border at power-on).
func New() *Display {
	d := &Display{buffers: [2]*Framebuffer{{}, {}}}
	d.back = 1
	return d
}

// Back returns the buffer the emulation thread should draw the
// in-progress frame into.
func (d *Display) Back() *Framebuffer {
	return d.buffers[d.back]
}

// SetPixel writes one pixel of the back buffer. VIC calls this once
// per output pixel as its per-cycle pixel pipeline runs.
func (d *Display) SetPixel(x, y int, colorIndex uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	d.buffers[d.back][y*Width+x] = colorIndex
}

// Swap publishes the back buffer as the new front buffer and makes the
// other buffer the back buffer for the emulation thread to draw the
// next frame into. Called once per frame, from endFrame().
func (d *Display) Swap() {
	newFront := d.back
	d.back = 1 - d.back
	d.front.Store(uint32(newFront))
}

// Front returns the most recently completed frame. Safe to call from
// any goroutine without locking; it only ever observes a frame Swap
// has already published in full.
func (d *Display) Front() *Framebuffer {
	return d.buffers[d.front.Load()]
}
