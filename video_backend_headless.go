//go:build headless

// video_backend_headless.go - no-op display for headless builds (CI,
// automated testing)

package main

import "sync/atomic"

type EbitenDisplay struct {
	frameCount uint64
	closed     chan struct{}
}

func NewEbitenDisplay() *EbitenDisplay {
	return &EbitenDisplay{closed: make(chan struct{})}
}

func (d *EbitenDisplay) Start() error { return nil }

func (d *EbitenDisplay) Closed() <-chan struct{} { return d.closed }

func (d *EbitenDisplay) SetFrame(fb Framebuffer) {
	atomic.AddUint64(&d.frameCount, 1)
}

func (d *EbitenDisplay) PollInput() InputEvent {
	return InputEvent{Joystick: 0xFF, Console: 0xFF}
}
