//go:build windows

// terminal_host_windows.go - raw-stdin joystick input for the console CLI
// frontend, Windows variant (no O_NONBLOCK/EAGAIN on this platform)

package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

type TerminalHost struct {
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	oldTermState *term.State

	input atomic.Pointer[InputEvent]
}

func NewTerminalHost() *TerminalHost {
	h := &TerminalHost{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	h.input.Store(&InputEvent{Joystick: 0xFF, Console: 0xFF})
	return h
}

func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	go h.readLoop()
}

func (h *TerminalHost) readLoop() {
	defer close(h.done)
	buf := make([]byte, 1)
	var held [256]bool

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		n, err := os.Stdin.Read(buf)
		if n > 0 {
			held[buf[0]] = true
			h.input.Store(keysToInput(held))
		}
		if err != nil {
			return
		}
		time.Sleep(5 * time.Millisecond)
		for i := range held {
			held[i] = false
		}
	}
}

func keysToInput(held [256]bool) *InputEvent {
	joystick := byte(0xFF)
	if held['w'] {
		joystick &^= 0x10
	}
	if held['s'] {
		joystick &^= 0x20
	}
	if held['a'] {
		joystick &^= 0x40
	}
	if held['d'] {
		joystick &^= 0x80
	}
	console := byte(0xFF)
	var fire [6]bool
	fire[4] = held[' ']
	return &InputEvent{Joystick: joystick, Console: console, Fire: fire}
}

func (h *TerminalHost) PollInput() InputEvent {
	return *h.input.Load()
}

func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
