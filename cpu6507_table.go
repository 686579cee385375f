// cpu6507_table.go - opcode descriptor table
//
// Every documented 6502 opcode is listed by its hex value. Undocumented
// opcodes are not implemented; fetching one halts the CPU rather than
// silently running as a NOP (see dispatch in cpu6507.go).

package main

type opcodeDescriptor struct {
	mode    addrMode
	cycles  int
	exec    func(c *CPU, addr uint16)
	illegal bool
	// branchCond is set only for the eight branch opcodes: dispatch uses it
	// to know, before counting cycles, whether this branch will be taken
	// and whether its target crosses a page.
	branchCond func(c *CPU) bool
}

var undocumented = opcodeDescriptor{mode: addrImplied, cycles: 1, illegal: true}

var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeDescriptor {
	var t [256]opcodeDescriptor
	for i := range t {
		t[i] = undocumented
	}

	set := func(op byte, mode addrMode, cycles int, exec func(c *CPU, addr uint16)) {
		t[op] = opcodeDescriptor{mode: mode, cycles: cycles, exec: exec}
	}

	setBranch := func(op byte, exec func(c *CPU, addr uint16), cond func(c *CPU) bool) {
		t[op] = opcodeDescriptor{mode: addrRelative, cycles: 2, exec: exec, branchCond: cond}
	}

	condFlag := func(mask byte, want bool) func(c *CPU) bool {
		return func(c *CPU) bool { return c.flag(mask) == want }
	}

	// ADC
	set(0x69, addrImmediate, 2, opADC)
	set(0x65, addrZeroPage, 3, opADC)
	set(0x75, addrZeroPageX, 4, opADC)
	set(0x6D, addrAbsolute, 4, opADC)
	set(0x7D, addrAbsoluteX, 4, opADC)
	set(0x79, addrAbsoluteY, 4, opADC)
	set(0x61, addrIndirectX, 6, opADC)
	set(0x71, addrIndirectY, 5, opADC)

	// SBC
	set(0xE9, addrImmediate, 2, opSBC)
	set(0xE5, addrZeroPage, 3, opSBC)
	set(0xF5, addrZeroPageX, 4, opSBC)
	set(0xED, addrAbsolute, 4, opSBC)
	set(0xFD, addrAbsoluteX, 4, opSBC)
	set(0xF9, addrAbsoluteY, 4, opSBC)
	set(0xE1, addrIndirectX, 6, opSBC)
	set(0xF1, addrIndirectY, 5, opSBC)

	// AND
	set(0x29, addrImmediate, 2, opAND)
	set(0x25, addrZeroPage, 3, opAND)
	set(0x35, addrZeroPageX, 4, opAND)
	set(0x2D, addrAbsolute, 4, opAND)
	set(0x3D, addrAbsoluteX, 4, opAND)
	set(0x39, addrAbsoluteY, 4, opAND)
	set(0x21, addrIndirectX, 6, opAND)
	set(0x31, addrIndirectY, 5, opAND)

	// ORA
	set(0x09, addrImmediate, 2, opORA)
	set(0x05, addrZeroPage, 3, opORA)
	set(0x15, addrZeroPageX, 4, opORA)
	set(0x0D, addrAbsolute, 4, opORA)
	set(0x1D, addrAbsoluteX, 4, opORA)
	set(0x19, addrAbsoluteY, 4, opORA)
	set(0x01, addrIndirectX, 6, opORA)
	set(0x11, addrIndirectY, 5, opORA)

	// EOR
	set(0x49, addrImmediate, 2, opEOR)
	set(0x45, addrZeroPage, 3, opEOR)
	set(0x55, addrZeroPageX, 4, opEOR)
	set(0x4D, addrAbsolute, 4, opEOR)
	set(0x5D, addrAbsoluteX, 4, opEOR)
	set(0x59, addrAbsoluteY, 4, opEOR)
	set(0x41, addrIndirectX, 6, opEOR)
	set(0x51, addrIndirectY, 5, opEOR)

	// ASL
	set(0x0A, addrAccumulator, 2, opASLAcc)
	set(0x06, addrZeroPage, 5, opASLMem)
	set(0x16, addrZeroPageX, 6, opASLMem)
	set(0x0E, addrAbsolute, 6, opASLMem)
	set(0x1E, addrAbsoluteX, 7, opASLMem)

	// LSR
	set(0x4A, addrAccumulator, 2, opLSRAcc)
	set(0x46, addrZeroPage, 5, opLSRMem)
	set(0x56, addrZeroPageX, 6, opLSRMem)
	set(0x4E, addrAbsolute, 6, opLSRMem)
	set(0x5E, addrAbsoluteX, 7, opLSRMem)

	// ROL
	set(0x2A, addrAccumulator, 2, opROLAcc)
	set(0x26, addrZeroPage, 5, opROLMem)
	set(0x36, addrZeroPageX, 6, opROLMem)
	set(0x2E, addrAbsolute, 6, opROLMem)
	set(0x3E, addrAbsoluteX, 7, opROLMem)

	// ROR
	set(0x6A, addrAccumulator, 2, opRORAcc)
	set(0x66, addrZeroPage, 5, opRORMem)
	set(0x76, addrZeroPageX, 6, opRORMem)
	set(0x6E, addrAbsolute, 6, opRORMem)
	set(0x7E, addrAbsoluteX, 7, opRORMem)

	// INC / DEC
	set(0xE6, addrZeroPage, 5, opINC)
	set(0xF6, addrZeroPageX, 6, opINC)
	set(0xEE, addrAbsolute, 6, opINC)
	set(0xFE, addrAbsoluteX, 7, opINC)
	set(0xC6, addrZeroPage, 5, opDEC)
	set(0xD6, addrZeroPageX, 6, opDEC)
	set(0xCE, addrAbsolute, 6, opDEC)
	set(0xDE, addrAbsoluteX, 7, opDEC)

	set(0xE8, addrImplied, 2, opINX)
	set(0xC8, addrImplied, 2, opINY)
	set(0xCA, addrImplied, 2, opDEX)
	set(0x88, addrImplied, 2, opDEY)

	// LDA
	set(0xA9, addrImmediate, 2, opLDA)
	set(0xA5, addrZeroPage, 3, opLDA)
	set(0xB5, addrZeroPageX, 4, opLDA)
	set(0xAD, addrAbsolute, 4, opLDA)
	set(0xBD, addrAbsoluteX, 4, opLDA)
	set(0xB9, addrAbsoluteY, 4, opLDA)
	set(0xA1, addrIndirectX, 6, opLDA)
	set(0xB1, addrIndirectY, 5, opLDA)

	// LDX
	set(0xA2, addrImmediate, 2, opLDX)
	set(0xA6, addrZeroPage, 3, opLDX)
	set(0xB6, addrZeroPageY, 4, opLDX)
	set(0xAE, addrAbsolute, 4, opLDX)
	set(0xBE, addrAbsoluteY, 4, opLDX)

	// LDY
	set(0xA0, addrImmediate, 2, opLDY)
	set(0xA4, addrZeroPage, 3, opLDY)
	set(0xB4, addrZeroPageX, 4, opLDY)
	set(0xAC, addrAbsolute, 4, opLDY)
	set(0xBC, addrAbsoluteX, 4, opLDY)

	// STA
	set(0x85, addrZeroPage, 3, opSTA)
	set(0x95, addrZeroPageX, 4, opSTA)
	set(0x8D, addrAbsolute, 4, opSTA)
	set(0x9D, addrAbsoluteX, 5, opSTA)
	set(0x99, addrAbsoluteY, 5, opSTA)
	set(0x81, addrIndirectX, 6, opSTA)
	set(0x91, addrIndirectY, 6, opSTA)

	// STX / STY
	set(0x86, addrZeroPage, 3, opSTX)
	set(0x96, addrZeroPageY, 4, opSTX)
	set(0x8E, addrAbsolute, 4, opSTX)
	set(0x84, addrZeroPage, 3, opSTY)
	set(0x94, addrZeroPageX, 4, opSTY)
	set(0x8C, addrAbsolute, 4, opSTY)

	set(0xAA, addrImplied, 2, opTAX)
	set(0xA8, addrImplied, 2, opTAY)
	set(0x8A, addrImplied, 2, opTXA)
	set(0x98, addrImplied, 2, opTYA)
	set(0xBA, addrImplied, 2, opTSX)
	set(0x9A, addrImplied, 2, opTXS)

	// CMP
	set(0xC9, addrImmediate, 2, opCMP)
	set(0xC5, addrZeroPage, 3, opCMP)
	set(0xD5, addrZeroPageX, 4, opCMP)
	set(0xCD, addrAbsolute, 4, opCMP)
	set(0xDD, addrAbsoluteX, 4, opCMP)
	set(0xD9, addrAbsoluteY, 4, opCMP)
	set(0xC1, addrIndirectX, 6, opCMP)
	set(0xD1, addrIndirectY, 5, opCMP)

	// CPX / CPY
	set(0xE0, addrImmediate, 2, opCPX)
	set(0xE4, addrZeroPage, 3, opCPX)
	set(0xEC, addrAbsolute, 4, opCPX)
	set(0xC0, addrImmediate, 2, opCPY)
	set(0xC4, addrZeroPage, 3, opCPY)
	set(0xCC, addrAbsolute, 4, opCPY)

	// BIT
	set(0x24, addrZeroPage, 3, opBIT)
	set(0x2C, addrAbsolute, 4, opBIT)

	// Branches: base cost 2 (not taken); dispatch adds 1 for a taken branch
	// and a further 1 if the target crosses a page, per branchCond above.
	setBranch(0x90, opBCC, condFlag(flagC, false))
	setBranch(0xB0, opBCS, condFlag(flagC, true))
	setBranch(0xF0, opBEQ, condFlag(flagZ, true))
	setBranch(0xD0, opBNE, condFlag(flagZ, false))
	setBranch(0x30, opBMI, condFlag(flagN, true))
	setBranch(0x10, opBPL, condFlag(flagN, false))
	setBranch(0x50, opBVC, condFlag(flagV, false))
	setBranch(0x70, opBVS, condFlag(flagV, true))

	set(0x4C, addrAbsolute, 3, opJMP)
	set(0x6C, addrIndirect, 5, opJMP)
	set(0x20, addrAbsolute, 6, opJSR)
	set(0x60, addrImplied, 6, opRTS)
	set(0x40, addrImplied, 6, opRTI)
	set(0x00, addrImplied, 7, opBRK)

	set(0x48, addrImplied, 3, opPHA)
	set(0x08, addrImplied, 3, opPHP)
	set(0x68, addrImplied, 4, opPLA)
	set(0x28, addrImplied, 4, opPLP)

	set(0x18, addrImplied, 2, opCLC)
	set(0x38, addrImplied, 2, opSEC)
	set(0x58, addrImplied, 2, opCLI)
	set(0x78, addrImplied, 2, opSEI)
	set(0xB8, addrImplied, 2, opCLV)
	set(0xD8, addrImplied, 2, opCLD)
	set(0xF8, addrImplied, 2, opSED)

	set(0xEA, addrImplied, 2, opNOP)

	return t
}
