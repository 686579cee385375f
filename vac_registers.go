// vac_registers.go - VAC register write/read dispatch

package main

// ReadRegister services a CPU read from the VAC's 128-byte chip-select
// window. Only the low 4 bits of the offset select a distinct register;
// the upper bits are address-line mirrors and are ignored here.
func (v *VAC) ReadRegister(offset byte) byte {
	idx := offset & 0x0F
	switch int(idx) {
	case RegCXM0P, RegCXM1P, RegCXP0FB, RegCXP1FB, RegCXM0FB, RegCXM1FB, RegCXBLPF, RegCXPPMM:
		return v.readRegs[idx]
	case RegINPT0, RegINPT1, RegINPT2, RegINPT3, RegINPT4, RegINPT5:
		if v.inputLatch[idx-RegINPT0] {
			return 0x00
		}
		return 0x80
	default:
		return 0
	}
}

// WriteRegister services a CPU write to the VAC. Most registers are plain
// latches; a handful are strobes that trigger an immediate side effect
// regardless of the byte value written.
func (v *VAC) WriteRegister(offset byte, value byte) {
	idx := int(offset & 0x3F)
	if idx > vacLastWriteReg {
		return
	}
	v.writeRegs[idx] = value

	switch idx {
	case RegVSYNC:
		v.vsync = value&0x02 != 0
	case RegVBLANK:
		v.vblank = value&0x02 != 0
	case RegWSYNC:
		v.wsyncLatch = true
	case RegNUSIZ0:
		v.applyNusiz(0)
		v.recomputeLine()
	case RegNUSIZ1:
		v.applyNusiz(1)
		v.recomputeLine()
	case RegRESP0:
		v.players[0].strobe(v.strobeColumn())
		v.recomputeLine()
	case RegRESP1:
		v.players[1].strobe(v.strobeColumn())
		v.recomputeLine()
	case RegRESM0:
		v.missiles[0].strobe(v.strobeColumn())
		v.recomputeLine()
	case RegRESM1:
		v.missiles[1].strobe(v.strobeColumn())
		v.recomputeLine()
	case RegRESBL:
		v.ball.strobe(v.strobeColumn())
		v.recomputeLine()
	case RegGRP0:
		v.players[1].shadow = v.writeRegs[RegGRP1]
		v.recomputeLine()
	case RegGRP1:
		v.players[0].shadow = v.writeRegs[RegGRP0]
		v.recomputeLine()
	case RegENAM0:
		v.missiles[0].width = missileSizeShift[(v.writeRegs[RegNUSIZ0]>>4)&0x03]
		if value&0x02 == 0 {
			v.missiles[0].width = 0
		}
		v.recomputeLine()
	case RegENAM1:
		v.missiles[1].width = missileSizeShift[(v.writeRegs[RegNUSIZ1]>>4)&0x03]
		if value&0x02 == 0 {
			v.missiles[1].width = 0
		}
		v.recomputeLine()
	case RegENABL:
		v.ballEnableDelayed = v.ballEnableShadow
		v.ballEnableShadow = value&0x02 != 0
		v.refreshBallEnable()
		v.recomputeLine()
	case RegHMP0:
		v.players[0].horizontalOff = applyMotion(value)
	case RegHMP1:
		v.players[1].horizontalOff = applyMotion(value)
	case RegHMM0:
		v.missiles[0].horizontalOff = applyMotion(value)
	case RegHMM1:
		v.missiles[1].horizontalOff = applyMotion(value)
	case RegHMBL:
		v.ball.horizontalOff = applyMotion(value)
	case RegVDELP0, RegVDELP1:
		v.recomputeLine()
	case RegVDELBL:
		v.refreshBallEnable()
		v.recomputeLine()
	case RegRESMP0:
		if value&0x02 != 0 {
			v.missiles[0].positionClock = v.players[0].positionClock
		}
		v.recomputeLine()
	case RegRESMP1:
		if value&0x02 != 0 {
			v.missiles[1].positionClock = v.players[1].positionClock
		}
		v.recomputeLine()
	case RegHMOVE:
		v.players[0].moveByHMOVE()
		v.players[1].moveByHMOVE()
		v.missiles[0].moveByHMOVE()
		v.missiles[1].moveByHMOVE()
		v.ball.moveByHMOVE()
		v.recomputeLine()
	case RegHMCLR:
		v.players[0].horizontalOff = 0
		v.players[1].horizontalOff = 0
		v.missiles[0].horizontalOff = 0
		v.missiles[1].horizontalOff = 0
		v.ball.horizontalOff = 0
		v.recomputeLine()
	case RegPF0, RegPF1, RegPF2, RegCTRLPF, RegREFP0, RegREFP1:
		v.recomputeLine()
	case RegCXCLR:
		for i := range v.readRegs[:RegCXPPMM+1] {
			v.readRegs[i] = 0
		}
	}
}

// refreshBallEnable recomputes the live ball-enable flag from whichever of
// the current or one-write-delayed ENABL latch VDELBL selects.
func (v *VAC) refreshBallEnable() {
	if v.writeRegs[RegVDELBL]&0x01 != 0 {
		v.ballEnable = v.ballEnableDelayed
	} else {
		v.ballEnable = v.ballEnableShadow
	}
}

// applyNusiz refreshes the cached copy/size mode for a player and its
// paired missile's width from a freshly written NUSIZx value.
func (v *VAC) applyNusiz(i int) {
	reg := v.writeRegs[RegNUSIZ0+i]
	v.players[i].mode = playerSizeModes[reg&0x07]
	widthIdx := (reg >> 4) & 0x03
	if v.missiles[i].width != 0 {
		v.missiles[i].width = missileSizeShift[widthIdx]
	}
	v.missiles[i].mode = nusizMode{copyOffsets: v.players[i].mode.copyOffsets}
}

// strobeColumn is the horizontal slot a RESxx strobe latches, biased by a
// few color clocks the way the real chip's strobe decode delay behaves:
// objects reset mid-line start drawing a handful of clocks after the
// write actually lands.
func (v *VAC) strobeColumn() int {
	col := v.beamColumn
	if col < 0 {
		col = 0
	}
	col += 5
	if col >= VisibleColumns {
		col = VisibleColumns - 1
	}
	return col
}
