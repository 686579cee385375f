// cpu6507_addressing.go - operand address resolution

package main

type addrMode int

const (
	addrImplied addrMode = iota
	addrAccumulator
	addrImmediate
	addrZeroPage
	addrZeroPageX
	addrZeroPageY
	addrAbsolute
	addrAbsoluteX
	addrAbsoluteY
	addrIndirect
	addrIndirectX
	addrIndirectY
	addrRelative
)

// resolveAddress reads whatever operand bytes the mode requires, advances
// PC past them, and returns the effective address along with any extra
// cycle the addressing mode itself contributes (a page boundary crossed in
// absolute,X / absolute,Y / indirect,Y mode). Relative mode contributes
// none; dispatch adds the taken-branch and branch page-cross cycles.
func resolveAddress(c *CPU, mode addrMode) (addr uint16, extra int) {
	switch mode {
	case addrImplied, addrAccumulator:
		return 0, 0

	case addrImmediate:
		addr = c.PC
		c.PC++
		return addr, 0

	case addrZeroPage:
		addr = uint16(c.bus.Read(c.PC))
		c.PC++
		return addr, 0

	case addrZeroPageX:
		base := c.bus.Read(c.PC)
		c.PC++
		return uint16(base + c.X), 0

	case addrZeroPageY:
		base := c.bus.Read(c.PC)
		c.PC++
		return uint16(base + c.Y), 0

	case addrAbsolute:
		addr = c.readWord(c.PC)
		c.PC += 2
		return addr, 0

	case addrAbsoluteX:
		base := c.readWord(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		if pageCrossed(base, addr) {
			extra = 1
		}
		return addr, extra

	case addrAbsoluteY:
		base := c.readWord(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		if pageCrossed(base, addr) {
			extra = 1
		}
		return addr, extra

	case addrIndirect:
		ptr := c.readWord(c.PC)
		c.PC += 2
		return c.readWordWrapped(ptr), 0

	case addrIndirectX:
		zp := c.bus.Read(c.PC)
		c.PC++
		ptr := zp + c.X
		lo := uint16(c.bus.Read(uint16(ptr)))
		hi := uint16(c.bus.Read(uint16(ptr + 1)))
		return lo | hi<<8, 0

	case addrIndirectY:
		zp := c.bus.Read(c.PC)
		c.PC++
		lo := uint16(c.bus.Read(uint16(zp)))
		hi := uint16(c.bus.Read(uint16(zp + 1)))
		base := lo | hi<<8
		addr = base + uint16(c.Y)
		if pageCrossed(base, addr) {
			extra = 1
		}
		return addr, extra

	case addrRelative:
		offset := int8(c.bus.Read(c.PC))
		c.PC++
		target := uint16(int32(c.PC) + int32(offset))
		return target, 0

	default:
		return 0, 0
	}
}

// readWordWrapped reproduces the 6502 indirect-JMP page-wrap bug: if the
// pointer's low byte is 0xFF, the high byte is fetched from the start of
// the same page rather than the next one.
func (c *CPU) readWordWrapped(ptr uint16) uint16 {
	lo := uint16(c.bus.Read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.bus.Read(hiAddr))
	return lo | hi<<8
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
