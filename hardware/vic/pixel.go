package vic

import "github.com/blar/virtualc64/hardware/display"

// renderColumn produces the 8 background pixels of character column
// col (0-39) plus any sprite pixels overlapping them, mixes them by
// priority, and writes the result into the display. Invalid mode
// combinations (ECM+MCM, ECM+BMM+MCM) are rendered as black rather
// than reproducing their real, data-sheet-undocumented garbage output.
func (v *VIC) renderColumn(col int) {
	y := v.rasterLine
	if y < 0 || y >= display.Height {
		return
	}
	baseX := col*8 + 42 - v.xScroll()

	pixels := v.backgroundPixels(col)

	for i := 0; i < 8; i++ {
		x := baseX + i
		bg := pixels[i]
		out := bg
		bgIsBackground := bg == v.regs[0x21]&0x0F && !v.bmmSet() && !v.mcmSet()

		for s := 7; s >= 0; s-- {
			color, ok := v.spritePixel(s, x)
			if !ok {
				continue
			}
			v.checkSpriteSpriteCollision(s, x)
			if !bgIsBackground {
				v.checkSpriteBackgroundCollision(s, x)
			}
			if v.spriteBehindBG(s) && !bgIsBackground {
				continue
			}
			out = color
		}

		v.disp.SetPixel(x, y, out)
	}
}

// backgroundPixels decodes this column's 8 background pixels from the
// currently latched video-matrix/colour byte, following whichever of
// the chip's text/bitmap, standard/multicolor modes ECM/BMM/MCM select.
func (v *VIC) backgroundPixels(col int) [8]uint8 {
	var out [8]uint8
	ch := v.videoMatrixRow[col]
	colorNibble := v.colorRow[col]

	var data uint8
	if v.bmmSet() {
		addr := v.chipAddr(v.bitmapBase() + uint16(v.vcbase+col)*8 + uint16(v.rc))
		data = v.mem.ChipRead(addr)
	} else {
		charAddr := v.charBase() + uint16(ch)*8 + uint16(v.rc)
		data = v.mem.ChipRead(v.chipAddr(charAddr))
	}

	switch {
	case v.ecmSet() && v.mcmSet():
		// invalid mode: every pixel stays 0 (black)
	case v.ecmSet() && !v.bmmSet() && !v.mcmSet():
		bg := v.regs[0x21+uint16((ch>>6)&0x03)] & 0x0F
		for i := 0; i < 8; i++ {
			if data&(0x80>>uint(i)) != 0 {
				out[i] = colorNibble
			} else {
				out[i] = bg
			}
		}
	case v.mcmSet() && !v.bmmSet():
		if colorNibble&0x08 == 0 {
			for i := 0; i < 8; i++ {
				if data&(0x80>>uint(i)) != 0 {
					out[i] = colorNibble
				} else {
					out[i] = v.regs[0x21] & 0x0F
				}
			}
			break
		}
		for i := 0; i < 8; i += 2 {
			pair := (data >> uint(6-i)) & 0x03
			var c uint8
			switch pair {
			case 0:
				c = v.regs[0x21] & 0x0F
			case 1:
				c = v.regs[0x22] & 0x0F
			case 2:
				c = v.regs[0x23] & 0x0F
			case 3:
				c = colorNibble & 0x07
			}
			out[i] = c
			out[i+1] = c
		}
	case v.bmmSet() && v.mcmSet():
		for i := 0; i < 8; i += 2 {
			pair := (data >> uint(6-i)) & 0x03
			var c uint8
			switch pair {
			case 0:
				c = v.regs[0x21] & 0x0F
			case 1:
				c = ch >> 4
			case 2:
				c = ch & 0x0F
			case 3:
				c = colorNibble
			}
			out[i] = c
			out[i+1] = c
		}
	case v.bmmSet():
		for i := 0; i < 8; i++ {
			if data&(0x80>>uint(i)) != 0 {
				out[i] = ch >> 4
			} else {
				out[i] = ch & 0x0F
			}
		}
	default: // standard text mode
		for i := 0; i < 8; i++ {
			if data&(0x80>>uint(i)) != 0 {
				out[i] = colorNibble
			} else {
				out[i] = v.regs[0x21] & 0x0F
			}
		}
	}
	return out
}

func (v *VIC) checkSpriteSpriteCollision(idx, x int) {
	for other := 0; other < 8; other++ {
		if other == idx {
			continue
		}
		if _, ok := v.spritePixel(other, x); ok {
			before := v.regs[0x1E]
			v.regs[0x1E] |= 1 << uint(idx)
			v.regs[0x1E] |= 1 << uint(other)
			if before == 0 && v.regs[0x1E] != 0 {
				v.setIRQ(irqSpriteSpr)
			}
		}
	}
}

func (v *VIC) checkSpriteBackgroundCollision(idx, x int) {
	before := v.regs[0x1F]
	v.regs[0x1F] |= 1 << uint(idx)
	if before == 0 {
		v.setIRQ(irqSpriteBG)
	}
}
