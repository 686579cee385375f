//go:build !headless

// video_backend_ebiten.go - ebiten presentation window and keyboard joystick

package main

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

const displayScale = 3

// EbitenDisplay presents a Framebuffer in a resizable window and samples
// the keyboard as a joystick and console switch panel. The emulator owns
// no goroutine inside ebiten itself: Update/Draw run on ebiten's own loop,
// and SetFrame/PollInput cross that boundary through atomics so the
// console's run loop never blocks on presentation.
type EbitenDisplay struct {
	frame   atomic.Pointer[Framebuffer]
	input   atomic.Pointer[InputEvent]
	running bool
	closed  chan struct{}
	once    sync.Once
}

func NewEbitenDisplay() *EbitenDisplay {
	return &EbitenDisplay{closed: make(chan struct{})}
}

// Start opens the window on ebiten's own main-thread run loop. It blocks
// until the window closes, so callers run it on the main goroutine and
// drive the emulator core from another goroutine.
func (d *EbitenDisplay) Start() error {
	d.running = true
	ebiten.SetWindowSize(FrameWidth*displayScale, FrameHeight*displayScale)
	ebiten.SetWindowTitle("tricycle")
	ebiten.SetWindowResizable(true)
	ebiten.SetVsyncEnabled(true)
	err := ebiten.RunGame(d)
	d.running = false
	d.once.Do(func() { close(d.closed) })
	return err
}

// Closed reports a channel that closes once the window has been dismissed.
func (d *EbitenDisplay) Closed() <-chan struct{} { return d.closed }

// SetFrame publishes a newly rendered picture for the next Draw call.
func (d *EbitenDisplay) SetFrame(fb Framebuffer) {
	d.frame.Store(&fb)
}

// PollInput returns the most recently sampled keyboard state as an
// InputEvent, ready to hand to System.PushInput.
func (d *EbitenDisplay) PollInput() InputEvent {
	if ev := d.input.Load(); ev != nil {
		return *ev
	}
	return InputEvent{Joystick: 0xFF, Console: 0xFF}
}

func (d *EbitenDisplay) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	d.input.Store(sampleKeyboard())
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	fb := d.frame.Load()
	if fb == nil {
		return
	}
	img := ebiten.NewImage(FrameWidth, FrameHeight)
	pixels := make([]byte, FrameWidth*FrameHeight*4)
	for y := 0; y < FrameHeight; y++ {
		for x := 0; x < FrameWidth; x++ {
			p := fb[y][x]
			off := (y*FrameWidth + x) * 4
			pixels[off] = p.R
			pixels[off+1] = p.G
			pixels[off+2] = p.B
			pixels[off+3] = p.A
		}
	}
	img.WritePixels(pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(displayScale, displayScale)
	screen.DrawImage(img, op)
}

func (d *EbitenDisplay) Layout(_, _ int) (int, int) {
	return FrameWidth * displayScale, FrameHeight * displayScale
}

// sampleKeyboard maps arrow keys, space, and a handful of console switches
// onto SWCHA/SWCHB bit layout. Bits follow host.go's InputEvent doc
// comment: active-low, so a held key clears its bit.
func sampleKeyboard() *InputEvent {
	joystick := byte(0xFF)
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		joystick &^= 0x10
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		joystick &^= 0x20
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		joystick &^= 0x40
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		joystick &^= 0x80
	}

	console := byte(0xFF)
	if ebiten.IsKeyPressed(ebiten.KeyF1) {
		console &^= 0x01 // reset
	}
	if ebiten.IsKeyPressed(ebiten.KeyF2) {
		console &^= 0x02 // select
	}

	var fire [6]bool
	fire[4] = ebiten.IsKeyPressed(ebiten.KeySpace)

	return &InputEvent{Joystick: joystick, Console: console, Fire: fire}
}
