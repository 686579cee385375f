// system.go - orchestrator tying CPU, VAC, RIOT and cartridge into one
// running machine

package main

import "fmt"

// colorClocksPerMachineClock is the fixed 3:1 ratio between VAC color
// clocks and the CPU/RIOT machine clock.
const colorClocksPerMachineClock = 3

// System owns one complete console: a memory map, CPU, VAC, RIOT and
// cartridge slot, and drives them together one frame at a time.
type System struct {
	mem  *MemoryMap
	cpu  *CPU
	vac  *VAC
	riot *RIOT
	cart *Cartridge

	framebuffer Framebuffer
	currentLine int
	inVSync     bool
	frameReady  bool
}

// NewSystem builds a System with an empty cartridge slot. Call LoadROM and
// Reset before running frames.
func NewSystem() *System {
	cart := NewCartridge()
	vac := NewVAC()
	riot := NewRIOT()
	mem := NewMemoryMap(vac, riot, cart)
	cpu := NewCPU(mem)
	return &System{mem: mem, cpu: cpu, vac: vac, riot: riot, cart: cart}
}

// LoadROM installs a cartridge image. It does not reset the machine; call
// Reset afterward to start execution from the new image's reset vector.
func (s *System) LoadROM(data []byte) {
	s.cart.Load(data)
}

// Reset reinitializes every component and reloads the CPU's program
// counter from the cartridge's reset vector.
func (s *System) Reset() {
	s.vac.Reset()
	s.riot.Reset()
	s.cpu.Reset()
	s.currentLine = 0
	s.inVSync = false
	s.frameReady = false
}

// PushInput latches one input sample into the RIOT and VAC before the next
// frame is run. The console only samples input at the start of RunFrame;
// mid-frame changes take effect on the following frame.
func (s *System) PushInput(ev InputEvent) {
	s.riot.SetInput(ev.Joystick, ev.Console)
	for i, pressed := range ev.Fire {
		s.vac.SetInputLatch(i, pressed)
	}
}

// RunFrame advances the machine until one complete picture has been
// submitted, which is the next VSYNC falling edge; no minimum amount of
// picture data is required. It returns the completed framebuffer. An illegal opcode
// halts the CPU; RunFrame notices on the same tick and returns a non-nil
// error with whatever framebuffer had been assembled so far.
func (s *System) RunFrame() (Framebuffer, error) {
	s.frameReady = false
	for !s.frameReady {
		s.runColorClock()
		if s.cpu.Halted() {
			return s.framebuffer, fmt.Errorf("cpu halted at PC=%#04x: illegal opcode %#02x", s.cpu.PC, s.mem.Read(s.cpu.PC))
		}
	}
	return s.framebuffer, nil
}

// TakeFramebuffer returns the most recently completed picture without
// advancing the machine.
func (s *System) TakeFramebuffer() Framebuffer {
	return s.framebuffer
}

// runColorClock advances the VAC by one color clock and, every third call,
// advances the CPU and RIOT by one machine clock. VSYNC and visible-line
// sampling are handled here since they depend on the VAC's beam position.
func (s *System) runColorClock() {
	wasVSync := s.vac.VSync()
	column := s.vac.ColorClock()
	vblank := s.vac.VBlank()

	// Tick first: it is what advances beamColumn to this color clock's
	// position. Sampling CurrentPixel before Tick would read the previous
	// clock's beam position, shifting every emitted pixel one column late.
	s.vac.Tick()

	if column >= HSyncColumns && !vblank {
		col := column - HSyncColumns
		if col >= 0 && col < VisibleColumns && s.currentLine < FrameHeight {
			s.framebuffer[s.currentLine][col] = s.vac.CurrentPixel()
		}
	}

	if (column+1)%colorClocksPerMachineClock == 0 && !s.vac.WSync() {
		s.riot.Tick()
		s.cpu.Tick()
	}

	if column == ColorClocksPerLine-1 {
		s.currentLine++
		if s.currentLine >= FrameHeight {
			s.currentLine = 0
		}
	}

	nowVSync := s.vac.VSync()
	if wasVSync && !nowVSync {
		s.currentLine = 0
		s.frameReady = true
	}
}
