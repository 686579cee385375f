//go:build !windows

// terminal_host.go - raw-stdin joystick input for the console CLI frontend

package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalHost reads raw stdin in a background goroutine and translates
// WASD plus space into an InputEvent, for running the console from a
// plain terminal with no GUI window (the -headless build still needs a
// joystick source when a real display isn't available).
type TerminalHost struct {
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
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

// Start puts stdin in raw, non-blocking mode and begins reading keys.
// Call Stop() to restore stdin before the process exits.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

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

		n, err := syscall.Read(h.fd, buf)
		if n > 0 {
			b := buf[0]
			held[b] = true
			h.input.Store(keysToInput(held))
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			for i := range held {
				held[i] = false
			}
			continue
		}
		if err != nil {
			return
		}
	}
}

// keysToInput maps the most recently seen keypress byte onto
// InputEvent.Joystick/Console/Fire. A terminal cannot report key-up events,
// so each poll reflects only the bytes seen since the last one: holding a
// direction requires auto-repeat from the terminal driver, which every
// common terminal provides.
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

// PollInput returns the most recently sampled key state.
func (h *TerminalHost) PollInput() InputEvent {
	return *h.input.Load()
}

// Stop terminates the reader goroutine and restores stdin to its original
// blocking, cooked mode.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
