// vac_objects.go - shared state and update logic for players, missiles and ball

package main

// movableObject is the position/motion/line-buffer state shared by every
// beam-positioned object: two players, two missiles and the ball. Each
// tracks its own horizontal strobe position in color clocks and renders
// into a 160-slot line buffer once per scanline.
type movableObject struct {
	positionClock int  // color clock (0..159) the object was last strobed at
	horizontalOff int8 // signed motion nibble from HMxx, range -8..7
	width         int  // pixel width for a fixed-width object (missile, ball)
	mode          nusizMode
	lineBuffer    [VisibleColumns]bool
	scanlineReset bool // true once this object's RESxx has latched this line
}

// strobe records the beam's current horizontal slot as the object's new
// reference position, as RESPx/RESMx/RESBL do.
func (o *movableObject) strobe(beamColumn int) {
	o.positionClock = beamColumn
	o.scanlineReset = true
}

// applyMotion decodes one HMxx nibble into a signed -8..+7 offset. Values
// 0x8-0xF represent negative motion; 0x0-0x7 positive, per the two's
// complement convention the chip applies to the top nibble of the register.
func applyMotion(reg byte) int8 {
	nibble := reg >> 4
	if nibble > 7 {
		return int8(nibble) - 16
	}
	return int8(nibble)
}

// moveByHMOVE shifts the object's position by its latched motion offset,
// exactly the way an HMOVE strobe does.
func (o *movableObject) moveByHMOVE() {
	o.positionClock -= int(o.horizontalOff)
	if o.positionClock < 0 {
		o.positionClock += VisibleColumns
	}
	o.positionClock %= VisibleColumns
}

// buildSizedMask renders one scanline of a player, applying the object's
// NUSIZx copy/size selection: the 8-bit graphics pattern is drawn at offset
// 0 from positionClock, then again at each of the mode's extra copy
// offsets, each pixel stretched by the mode's width factor.
func (o *movableObject) buildSizedMask(pattern byte, reversed bool) {
	for i := range o.lineBuffer {
		o.lineBuffer[i] = false
	}
	if pattern == 0 {
		return
	}
	offsets := append([]int{0}, o.mode.copyOffsets...)
	stretch := o.mode.stretch
	if stretch == 0 {
		stretch = 1
	}
	for _, off := range offsets {
		start := (o.positionClock + off) % ColorClocksPerLine
		for p := 0; p < 8*stretch; p++ {
			col := (start + p) % ColorClocksPerLine
			if col >= VisibleColumns {
				continue
			}
			bitIndex := p / stretch
			if reversed {
				bitIndex = 7 - bitIndex
			}
			if pattern&(1<<uint(7-bitIndex)) != 0 {
				o.lineBuffer[col] = true
			}
		}
	}
}

// buildMissileMask renders a missile, which shares NUSIZx's copy-offset
// field with its player but draws a solid block of width pixels (from bits
// 4-5 of NUSIZx) instead of an 8-bit graphics pattern.
func (o *movableObject) buildMissileMask() {
	for i := range o.lineBuffer {
		o.lineBuffer[i] = false
	}
	if o.width == 0 {
		return
	}
	offsets := append([]int{0}, o.mode.copyOffsets...)
	for _, off := range offsets {
		start := (o.positionClock + off) % ColorClocksPerLine
		for w := 0; w < o.width; w++ {
			col := (start + w) % ColorClocksPerLine
			if col < VisibleColumns {
				o.lineBuffer[col] = true
			}
		}
	}
}

// buildBallMask renders the ball as a single solid run of width pixels
// starting at positionClock. The ball has no NUSIZx copy selector.
func (o *movableObject) buildBallMask() {
	for i := range o.lineBuffer {
		o.lineBuffer[i] = false
	}
	if o.width == 0 {
		return
	}
	for w := 0; w < o.width; w++ {
		col := (o.positionClock + w) % ColorClocksPerLine
		if col < VisibleColumns {
			o.lineBuffer[col] = true
		}
	}
}

// player adds the vertical-delay graphics latch on top of movableObject.
type player struct {
	movableObject
	shadow byte // GRPx value captured at the last write to the other player's GRP; drawn while VDELPx is set
}
