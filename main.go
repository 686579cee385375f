// main.go - CLI entry point: loads a cartridge image and runs it against
// the ebiten display and oto audio backends

package main

import (
	"fmt"
	"os"
	"time"
)

const targetFrameRate = 60

func usage() {
	fmt.Println("Usage: tricycle [-headless-input] <cartridge.bin>")
}

func main() {
	args := os.Args[1:]
	useTerminalInput := false
	if len(args) > 0 && args[0] == "-headless-input" {
		useTerminalInput = true
		args = args[1:]
	}
	if len(args) != 1 {
		usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("tricycle: failed to read cartridge: %v\n", err)
		os.Exit(1)
	}

	sys := NewSystem()
	sys.LoadROM(data)
	sys.Reset()

	audio, err := NewOtoPlayer(audioSampleRate)
	if err != nil {
		fmt.Printf("tricycle: failed to initialize audio: %v\n", err)
		os.Exit(1)
	}
	audio.SetupPlayer(sys.vac)
	audio.Start()
	defer audio.Close()

	display := NewEbitenDisplay()

	var term *TerminalHost
	if useTerminalInput {
		term = NewTerminalHost()
		term.Start()
		defer term.Stop()
	}

	go runEmulation(sys, display, term)

	if err := display.Start(); err != nil {
		fmt.Printf("tricycle: display error: %v\n", err)
		os.Exit(1)
	}
}

// runEmulation drives the console one frame at a time on its own
// goroutine, independent of ebiten's run loop, pacing itself to the
// console's native 60Hz field rate.
func runEmulation(sys *System, display *EbitenDisplay, term *TerminalHost) {
	ticker := time.NewTicker(time.Second / targetFrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-display.Closed():
			return
		case <-ticker.C:
			input := display.PollInput()
			if term != nil {
				input = term.PollInput()
			}
			sys.PushInput(input)
			fb, err := sys.RunFrame()
			if err != nil {
				fmt.Printf("tricycle: %v\n", err)
				return
			}
			display.SetFrame(fb)
		}
	}
}
