// vac.go - VAC video/audio/input coprocessor core
//
// The VAC races the television beam one color clock at a time. It owns no
// notion of frames; RunFrame's VSYNC edge detection lives in system.go. Each
// call to Tick advances the beam by one color clock and, at the start of
// every scanline, recomputes that line's player/missile/ball/playfield
// masks so CurrentPixel can look up the correct priority-resolved color
// clock by clock.

package main

// VAC is the console's television interface chip: two players, two
// missiles, one ball, a 20-bit playfield, audio generators and six analog
// input comparators, all addressed through a 128-byte strobe/latch window.
type VAC struct {
	colorClock int // 0..227, wraps every scanline
	beamColumn int // colorClock - HSyncColumns, or -1 during horizontal sync/blank

	writeRegs [vacLastWriteReg + 1]byte
	readRegs  [vacLastReadReg + 1]byte

	vsync  bool
	vblank bool

	players  [2]player
	missiles [2]movableObject
	ball     movableObject

	ballEnable        bool
	ballEnableShadow  bool
	ballEnableDelayed bool

	playfield     [VisibleColumns]bool
	playfieldHold uint32 // 20-bit pattern, recomputed on PF0/1/2 write

	wsyncLatch bool // true while the CPU is held on WSYNC

	inputLatch [6]bool // INPT0..INPT5, host-driven via SetInputLatch

	pixels [VisibleColumns]Pixel
}

// NewVAC returns a VAC in its power-on state: all registers zero, so no
// player graphics are set and no missile or ball is enabled; nothing is
// drawn until a program sets them up.
func NewVAC() *VAC {
	v := &VAC{}
	v.Reset()
	return v
}

// Reset clears every register and object back to power-on state.
func (v *VAC) Reset() {
	v.colorClock = 0
	v.beamColumn = 0
	for i := range v.writeRegs {
		v.writeRegs[i] = 0
	}
	for i := range v.readRegs {
		v.readRegs[i] = 0
	}
	v.vsync = false
	v.vblank = false
	v.players[0] = player{}
	v.players[1] = player{}
	v.missiles[0] = movableObject{}
	v.missiles[1] = movableObject{}
	v.ball = movableObject{}
	v.ballEnable = false
	v.ballEnableShadow = false
	v.ballEnableDelayed = false
	v.playfieldHold = 0
	for i := range v.playfield {
		v.playfield[i] = false
	}
	v.wsyncLatch = false
	for i := range v.inputLatch {
		v.inputLatch[i] = false
	}
}

// VSync reports whether VSYNC is currently asserted.
func (v *VAC) VSync() bool { return v.vsync }

// VBlank reports whether VBLANK is currently asserted.
func (v *VAC) VBlank() bool { return v.vblank }

// WSync reports whether the CPU should remain halted pending horizontal
// blank. It self-clears at the start of the next scanline (see Tick).
func (v *VAC) WSync() bool { return v.wsyncLatch }

// SetInputLatch drives one of the six INPTx analog comparators from the
// host. Engaged (true) reads back as a clear high bit (grounded); released
// reads back as a set high bit (open), matching spec section 3's INPT
// polarity.
func (v *VAC) SetInputLatch(index int, engaged bool) {
	if index < 0 || index >= len(v.inputLatch) {
		return
	}
	v.inputLatch[index] = engaged
}

// ColorClock reports the current position of the beam within the scanline,
// 0..227.
func (v *VAC) ColorClock() int { return v.colorClock }

// Tick advances the beam by one color clock, recomputing object line
// buffers at the start of each scanline and clearing WSYNC at the wrap.
func (v *VAC) Tick() {
	if v.colorClock == 0 {
		v.wsyncLatch = false
		v.recomputeLine()
	}
	if v.colorClock >= HSyncColumns {
		v.beamColumn = v.colorClock - HSyncColumns
	} else {
		v.beamColumn = -1
	}
	v.colorClock++
	if v.colorClock >= ColorClocksPerLine {
		v.colorClock = 0
		for i := range v.players {
			v.players[i].scanlineReset = false
		}
		for i := range v.missiles {
			v.missiles[i].scanlineReset = false
		}
		v.ball.scanlineReset = false
	}
}

// CurrentPixel returns the priority-resolved color for the beam's present
// horizontal position. Callers outside the visible window (HSYNC/blank)
// should not call this; system.go only samples during the visible span.
func (v *VAC) CurrentPixel() Pixel {
	if v.beamColumn < 0 || v.beamColumn >= VisibleColumns {
		return Pixel{}
	}
	return v.pixels[v.beamColumn]
}

// recomputeLine rebuilds every object's line buffer and resolves per-pixel
// priority for the scanline. Called at colorClock==0 and again after every
// register write that can change what the line shows.
func (v *VAC) recomputeLine() {
	v.rebuildPlayfield()
	for i := range v.players {
		reversed := v.writeRegs[RegREFP0+i]&0x08 != 0
		v.players[i].buildSizedMask(v.activePlayerPattern(i), reversed)
	}
	for i := range v.missiles {
		v.missiles[i].buildMissileMask()
	}
	v.ball.width = missileSizeShift[(v.writeRegs[RegCTRLPF]>>4)&0x03]
	v.ball.buildBallMask()
	v.resolvePriority()
	v.latchCollisions()
}

// activePlayerPattern returns the graphics pattern that should actually be
// drawn this line, honoring VDELPx: when vertical delay is enabled the
// shadow (the value GRPx held as of the last write to the OTHER player's
// GRP register) is used instead of the live register.
func (v *VAC) activePlayerPattern(i int) byte {
	vdel := RegVDELP0 + i
	if v.writeRegs[vdel]&0x01 != 0 {
		return v.players[i].shadow
	}
	return v.writeRegs[RegGRP0+i]
}

// rebuildPlayfield decodes PF0/PF1/PF2 into the 160-wide playfield mask,
// each of the 20 raw bits repeated across 4 color clocks, the right half
// mirrored when CTRLPF's reflect bit is set.
func (v *VAC) rebuildPlayfield() {
	pf0 := v.writeRegs[RegPF0]
	pf1 := v.writeRegs[RegPF1]
	pf2 := v.writeRegs[RegPF2]
	pattern := uint32(pf0>>4) | uint32(reverseByte(pf1))<<4 | uint32(pf2)<<12
	v.playfieldHold = pattern
	reflect := v.writeRegs[RegCTRLPF]&0x01 != 0

	for col := 0; col < VisibleColumns; col++ {
		var bitIndex int
		if col < playfieldHalfColumn {
			bitIndex = col / 4
		} else if reflect {
			bitIndex = 19 - (col-playfieldHalfColumn)/4
		} else {
			bitIndex = (col - playfieldHalfColumn) / 4
		}
		v.playfield[col] = pattern&(1<<uint(bitIndex)) != 0
	}
}

// resolvePriority computes the final color for every visible column,
// mirroring the chip's fixed priority ladder: players/missiles over
// playfield/ball unless CTRLPF's priority bit reverses it, score mode
// splits the playfield color down the middle, and background fills
// anywhere nothing else is lit.
func (v *VAC) resolvePriority() {
	ctrlpf := v.writeRegs[RegCTRLPF]
	pfPriority := ctrlpf&0x04 != 0
	scoreMode := ctrlpf&0x02 != 0
	bk := colorFromCode(v.writeRegs[RegCOLUBK])
	pf := colorFromCode(v.writeRegs[RegCOLUPF])
	p0 := colorFromCode(v.writeRegs[RegCOLUP0])
	p1 := colorFromCode(v.writeRegs[RegCOLUP1])

	for col := 0; col < VisibleColumns; col++ {
		p0lit := v.players[0].lineBuffer[col]
		p1lit := v.players[1].lineBuffer[col]
		m0lit := v.missiles[0].lineBuffer[col]
		m1lit := v.missiles[1].lineBuffer[col]
		bllit := v.ballEnable && v.ball.lineBuffer[col]
		pflit := v.playfield[col]

		pfColor := pf
		if scoreMode {
			if col < playfieldHalfColumn {
				pfColor = p0
			} else {
				pfColor = p1
			}
		}

		playerGroupLit := p0lit || p1lit || m0lit || m1lit
		bgGroupLit := pflit || bllit

		var result Pixel
		switch {
		case pfPriority && bgGroupLit:
			if pflit {
				result = pfColor
			} else {
				result = pf
			}
		case playerGroupLit:
			switch {
			case p0lit:
				result = p0
			case m0lit:
				result = p0
			case p1lit:
				result = p1
			case m1lit:
				result = p1
			}
		case bgGroupLit:
			if pflit {
				result = pfColor
			} else {
				result = pf
			}
		default:
			result = bk
		}
		v.pixels[col] = result
	}
}

// latchCollisions sets the eight sticky collision bits for every column
// where two different object classes overlap. Latches only ever accumulate
// until CXCLR is strobed.
func (v *VAC) latchCollisions() {
	for col := 0; col < VisibleColumns; col++ {
		p0 := v.players[0].lineBuffer[col]
		p1 := v.players[1].lineBuffer[col]
		m0 := v.missiles[0].lineBuffer[col]
		m1 := v.missiles[1].lineBuffer[col]
		bl := v.ballEnable && v.ball.lineBuffer[col]
		pf := v.playfield[col]

		if m0 && p1 {
			v.readRegs[RegCXM0P] |= 0x80
		}
		if m0 && p0 {
			v.readRegs[RegCXM0P] |= 0x40
		}
		if m1 && p0 {
			v.readRegs[RegCXM1P] |= 0x80
		}
		if m1 && p1 {
			v.readRegs[RegCXM1P] |= 0x40
		}
		if p0 && pf {
			v.readRegs[RegCXP0FB] |= 0x80
		}
		if p0 && bl {
			v.readRegs[RegCXP0FB] |= 0x40
		}
		if p1 && pf {
			v.readRegs[RegCXP1FB] |= 0x80
		}
		if p1 && bl {
			v.readRegs[RegCXP1FB] |= 0x40
		}
		if m0 && pf {
			v.readRegs[RegCXM0FB] |= 0x80
		}
		if m0 && bl {
			v.readRegs[RegCXM0FB] |= 0x40
		}
		if m1 && pf {
			v.readRegs[RegCXM1FB] |= 0x80
		}
		if m1 && bl {
			v.readRegs[RegCXM1FB] |= 0x40
		}
		if bl && pf {
			v.readRegs[RegCXBLPF] |= 0x80
		}
		if p0 && p1 {
			v.readRegs[RegCXPPMM] |= 0x80
		}
		if m0 && m1 {
			v.readRegs[RegCXPPMM] |= 0x40
		}
	}
}
