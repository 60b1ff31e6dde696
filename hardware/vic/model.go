// Package vic implements the MOS 6567/6569 VIC-II video controller: the
// per-rasterline-cycle dispatch table that drives bad-line DMA, sprite
// DMA, the raster IRQ, and the pixel pipeline feeding a display.Display.
package vic

// Model selects one of the four VIC_MODEL configuration values. PAL and
// NTSC differ in cycles-per-line, lines-per-frame, and the vertical
// blanking window; the 6567 (old NTSC) and 8562 (new NTSC) differ only
// in lines-per-frame (262 vs 263), which this core treats as a single
// NTSC geometry for simplicity, matching the indistinguishable-to-
// software timing the two revisions share.
type Model int

const (
	ModelPAL6569 Model = iota
	ModelNTSC6567
	ModelPAL8565
	ModelNTSC8562
)

// geometry is the raster layout a Model implies.
type geometry struct {
	cyclesPerLine int
	linesPerFrame int
	firstVBlank   int // first line of vertical blanking (no c-accesses/pixels)
	lastVBlank    int
}

func (m Model) geometry() geometry {
	switch m {
	case ModelNTSC6567, ModelNTSC8562:
		return geometry{cyclesPerLine: 65, linesPerFrame: 263, firstVBlank: 13, lastVBlank: 40}
	default: // PAL (6569, 8565)
		return geometry{cyclesPerLine: 63, linesPerFrame: 312, firstVBlank: 300, lastVBlank: 15}
	}
}

// CyclesPerFrame reports the number of Phi2 cycles in one frame at this
// Model's geometry: 63 cycles/line * 312 lines for PAL, 65 * 263 for
// NTSC. Real hardware genlocks the video frame rate to the 50/60Hz power
// line, so this also doubles as the CIA TOD clock's line-frequency tick
// period.
func (m Model) CyclesPerFrame() int {
	g := m.geometry()
	return g.cyclesPerLine * g.linesPerFrame
}

// badLineWindow is the raster range bad lines can occur in, identical
// across every model.
const (
	badLineFirst = 0x30
	badLineLast  = 0xF7
)
