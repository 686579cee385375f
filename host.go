// host.go - types exchanged between the core and its host

package main

// Pixel is one RGBA output sample, already looked up through the NTSC palette.
type Pixel struct {
	R, G, B, A byte
}

// FrameWidth and FrameHeight are the visible picture dimensions the
// orchestrator fills per frame: 160 color clocks wide, 192 scanlines tall.
const (
	FrameWidth  = 160
	FrameHeight = 192
)

// Framebuffer is one complete picture, row-major, top scanline first.
type Framebuffer [FrameHeight][FrameWidth]Pixel

// InputEvent is what the host pushes into the system before a frame runs.
// Joystick and Console map directly onto the RIOT's SWCHA/SWCHB ports; Fire
// maps onto the VAC's six INPTx latches (only INPT4/INPT5 are wired to a
// real joystick's fire button on this platform, but the full bank is
// exposed for paddle-style controllers).
type InputEvent struct {
	Joystick byte    // SWCHA: bit7=right1 bit6=left1 bit5=down1 bit4=up1 bit3..0 = joystick 2
	Console  byte    // SWCHB: bit0=reset bit1=select bit3=color/bw bit6=p1 difficulty bit7=p0 difficulty
	Fire     [6]bool // INPT0..INPT5, true = button pressed (engaged)
}
