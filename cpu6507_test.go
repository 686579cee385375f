package main

import "testing"

func newTestCPUAndCart(program []byte) (*CPU, *Cartridge, []byte) {
	cart := NewCartridge()
	data := make([]byte, 4096)
	copy(data, program)
	data[4092] = 0x00 // reset vector low
	data[4093] = 0x10 // reset vector high -> PC = 0x1000
	cart.Load(data)

	vac := NewVAC()
	riot := NewRIOT()
	mem := NewMemoryMap(vac, riot, cart)
	return NewCPU(mem), cart, data
}

func newTestCPU(program []byte) *CPU {
	c, _, _ := newTestCPUAndCart(program)
	return c
}

func tick(c *CPU, n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

func TestCPUResetLoadsVectorAndState(t *testing.T) {
	c := newTestCPU(nil)
	if c.PC != 0x1000 {
		t.Fatalf("PC after reset = %#x, want 0x1000", c.PC)
	}
	if c.S != 0xFD {
		t.Fatalf("S after reset = %#x, want 0xfd", c.S)
	}
	if !c.flag(flagI) {
		t.Fatalf("I flag after reset = false, want true")
	}
}

func TestCPULDAImmediate(t *testing.T) {
	c := newTestCPU([]byte{0xA9, 0x42})
	tick(c, 2)
	if c.A != 0x42 {
		t.Fatalf("A = %#x, want 0x42", c.A)
	}
	if c.flag(flagZ) || c.flag(flagN) {
		t.Fatalf("Z/N flags wrong for A=0x42: Z=%v N=%v", c.flag(flagZ), c.flag(flagN))
	}
}

func TestCPULDAImmediateSetsZeroFlag(t *testing.T) {
	c := newTestCPU([]byte{0xA9, 0x00})
	tick(c, 2)
	if !c.flag(flagZ) {
		t.Fatalf("Z flag not set for A=0")
	}
}

// Effect must not be visible before the instruction's final cycle: the
// eager-dispatch design resolves the address immediately but defers the
// state mutation to the counted-down tick.
func TestCPUEffectDeferredUntilFinalTick(t *testing.T) {
	c := newTestCPU([]byte{0xA9, 0x42})
	c.Tick() // dispatch only; cyclesLeft becomes 1
	if c.A != 0 {
		t.Fatalf("A = %#x after dispatch tick, want 0 (effect not yet applied)", c.A)
	}
	c.Tick() // final tick applies the effect
	if c.A != 0x42 {
		t.Fatalf("A = %#x after final tick, want 0x42", c.A)
	}
}

func TestCPUADCBinaryNoCarry(t *testing.T) {
	c := newTestCPU([]byte{0x18, 0xA9, 0x01, 0x69, 0x01}) // CLC; LDA #1; ADC #1
	tick(c, 6)
	if c.A != 2 {
		t.Fatalf("A = %d, want 2", c.A)
	}
	if c.flag(flagC) {
		t.Fatalf("C flag set, want clear")
	}
}

func TestCPUBranchTaken(t *testing.T) {
	// LDA #0x00; BEQ +2 (skips the next instruction); LDA #0x11; LDA #0x22
	// BEQ is taken and stays on the same page, so it costs 3 cycles rather
	// than the base 2: LDA(2) + BEQ(3) + LDA(2) = 7.
	c := newTestCPU([]byte{0xA9, 0x00, 0xF0, 0x02, 0xA9, 0x11, 0xA9, 0x22})
	tick(c, 7)
	if c.A != 0x22 {
		t.Fatalf("A = %#x, want 0x22 (branch should have skipped LDA #0x11)", c.A)
	}
	if c.PC != 0x1008 {
		t.Fatalf("PC = %#x, want 0x1008", c.PC)
	}
}

// TestCPUBranchNotTaken asserts the base 2-cycle cost when the branch
// condition is false.
func TestCPUBranchNotTaken(t *testing.T) {
	// LDA #0x01; BEQ +2 (not taken, Z clear); LDA #0x11
	c := newTestCPU([]byte{0xA9, 0x01, 0xF0, 0x02, 0xA9, 0x11})
	tick(c, 6) // LDA(2) + BEQ not taken(2) + LDA(2)
	if c.A != 0x11 {
		t.Fatalf("A = %#x, want 0x11 (branch not taken, fallthrough executed)", c.A)
	}
}

// TestCPUBranchTakenAcrossPage asserts the 4-cycle cost when a taken branch
// crosses a page boundary.
func TestCPUBranchTakenAcrossPage(t *testing.T) {
	data := make([]byte, 4096)
	data[0xFA] = 0xA9 // LDA #0x00, at 0x10FA
	data[0xFB] = 0x00
	data[0xFC] = 0xF0 // BEQ +4, at 0x10FC; PC after operand fetch = 0x10FE
	data[0xFD] = 0x04 // target = 0x10FE + 4 = 0x1102, crosses into page 0x11
	data[4092] = 0xFA
	data[4093] = 0x10 // reset vector -> PC = 0x10FA

	cart := NewCartridge()
	cart.Load(data)
	vac := NewVAC()
	riot := NewRIOT()
	mem := NewMemoryMap(vac, riot, cart)
	c := NewCPU(mem)

	tick(c, 2) // LDA #0x00
	tick(c, 4) // BEQ taken, page crossed: 2 base + 1 taken + 1 page cross
	if c.PC != 0x1102 {
		t.Fatalf("PC = %#x, want 0x1102 (branch target across page boundary)", c.PC)
	}
}

// TestCPUIllegalOpcodeHalts asserts that fetching an undocumented opcode
// halts the CPU in place rather than running it as a NOP.
func TestCPUIllegalOpcodeHalts(t *testing.T) {
	c := newTestCPU([]byte{0x02}) // KIL/JAM: never a documented opcode
	if c.Halted() {
		t.Fatalf("Halted() true before any tick")
	}
	tick(c, 1)
	if !c.Halted() {
		t.Fatalf("Halted() false after fetching an illegal opcode")
	}
	if c.PC != 0x1000 {
		t.Fatalf("PC = %#x, want 0x1000 (should not advance past the trapping opcode)", c.PC)
	}
	pc := c.PC
	tick(c, 5) // further ticks must be no-ops
	if c.PC != pc {
		t.Fatalf("PC changed after halt: %#x -> %#x", pc, c.PC)
	}
}

func TestCPUZeroPageRoundTrip(t *testing.T) {
	// LDA #0x77; STA $80; LDA #0x00; LDA $80
	c := newTestCPU([]byte{0xA9, 0x77, 0x85, 0x80, 0xA9, 0x00, 0xA5, 0x80})
	tick(c, 10)
	if c.A != 0x77 {
		t.Fatalf("A = %#x, want 0x77 (zero page round trip through RIOT RAM)", c.A)
	}
}

// TestCPUIndirectJMPPageWrapBug reproduces the original 6502's indirect-JMP
// bug: a pointer whose low byte is 0xFF fetches its high byte from the
// start of the same page instead of the next one.
func TestCPUIndirectJMPPageWrapBug(t *testing.T) {
	program := []byte{0x6C, 0xFF, 0x10} // JMP ($10FF)
	c, _, data := newTestCPUAndCart(program)
	data[0xFF] = 0x34 // low byte of the (wrongly wrapped) target
	// high byte is fetched from 0x1000, which holds this program's own
	// first opcode byte (0x6C) due to the wraparound.
	tick(c, 5)
	if c.PC != 0x6C34 {
		t.Fatalf("PC = %#x, want 0x6c34 (page-wrap bug target)", c.PC)
	}
}

func TestCPUJSRRTS(t *testing.T) {
	// JSR $1006; BRK (never reached); ... ; at 0x1006: LDA #0x55; RTS
	program := []byte{0x20, 0x06, 0x10, 0x00, 0x00, 0x00, 0xA9, 0x55, 0x60}
	c := newTestCPU(program)
	tick(c, 6) // JSR (6 cycles)
	if c.PC != 0x1006 {
		t.Fatalf("PC after JSR = %#x, want 0x1006", c.PC)
	}
	tick(c, 2) // LDA #0x55
	if c.A != 0x55 {
		t.Fatalf("A = %#x, want 0x55", c.A)
	}
	tick(c, 6) // RTS
	if c.PC != 0x1003 {
		t.Fatalf("PC after RTS = %#x, want 0x1003 (return address + 1)", c.PC)
	}
}
