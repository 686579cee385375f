// vac_constants.go - VAC register address map and lookup tables

package main

// Write register codes, canonical (0-based from the VAC's 0x00 chip-select).
// These are the 45 named write registers of spec section 3.
const (
	RegVSYNC  = 0x00
	RegVBLANK = 0x01
	RegWSYNC  = 0x02
	RegRSYNC  = 0x03
	RegNUSIZ0 = 0x04
	RegNUSIZ1 = 0x05
	RegCOLUP0 = 0x06
	RegCOLUP1 = 0x07
	RegCOLUPF = 0x08
	RegCOLUBK = 0x09
	RegCTRLPF = 0x0A
	RegREFP0  = 0x0B
	RegREFP1  = 0x0C
	RegPF0    = 0x0D
	RegPF1    = 0x0E
	RegPF2    = 0x0F
	RegRESP0  = 0x10
	RegRESP1  = 0x11
	RegRESM0  = 0x12
	RegRESM1  = 0x13
	RegRESBL  = 0x14
	RegAUDC0  = 0x15
	RegAUDC1  = 0x16
	RegAUDF0  = 0x17
	RegAUDF1  = 0x18
	RegAUDV0  = 0x19
	RegAUDV1  = 0x1A
	RegGRP0   = 0x1B
	RegGRP1   = 0x1C
	RegENAM0  = 0x1D
	RegENAM1  = 0x1E
	RegENABL  = 0x1F
	RegHMP0   = 0x20
	RegHMP1   = 0x21
	RegHMM0   = 0x22
	RegHMM1   = 0x23
	RegHMBL   = 0x24
	RegVDELP0 = 0x25
	RegVDELP1 = 0x26
	RegVDELBL = 0x27
	RegRESMP0 = 0x28
	RegRESMP1 = 0x29
	RegHMOVE  = 0x2A
	RegHMCLR  = 0x2B
	RegCXCLR  = 0x2C

	vacLastWriteReg = RegCXCLR
)

// Read register codes: eight sticky collision latches followed by six
// input ports.
const (
	RegCXM0P  = 0x00
	RegCXM1P  = 0x01
	RegCXP0FB = 0x02
	RegCXP1FB = 0x03
	RegCXM0FB = 0x04
	RegCXM1FB = 0x05
	RegCXBLPF = 0x06
	RegCXPPMM = 0x07
	RegINPT0  = 0x08
	RegINPT1  = 0x09
	RegINPT2  = 0x0A
	RegINPT3  = 0x0B
	RegINPT4  = 0x0C
	RegINPT5  = 0x0D

	vacLastReadReg = RegINPT5
)

// VisibleColumns is the number of visible horizontal pixel slots per
// scanline. ColorClocksPerLine is the total color-clock count before wrap;
// the first HSyncColumns of those are horizontal sync/blank.
const (
	VisibleColumns      = 160
	ColorClocksPerLine  = 228
	HSyncColumns        = 68
	playfieldHalfColumn = 80
)

// nusizMode describes one of the eight NUSIZx copy/size selections: a set of
// additional copy start offsets (in color clocks, relative to the primary
// copy at offset 0) and a per-pixel stretch factor.
type nusizMode struct {
	copyOffsets []int
	stretch     int
}

// playerSizeModes is indexed by the low three bits of NUSIZx.
var playerSizeModes = [8]nusizMode{
	{copyOffsets: nil, stretch: 1},             // one copy
	{copyOffsets: []int{16}, stretch: 1},       // two copies, close
	{copyOffsets: []int{32}, stretch: 1},       // two copies, medium
	{copyOffsets: []int{16, 32}, stretch: 1},   // three copies, close
	{copyOffsets: []int{64}, stretch: 1},       // two copies, wide
	{copyOffsets: nil, stretch: 2},             // double width, one copy
	{copyOffsets: []int{32, 64}, stretch: 1},   // three copies, medium
	{copyOffsets: nil, stretch: 4},             // quad width, one copy
}

// missileSizeShift maps the two-bit missile width field of NUSIZx to a
// pixel width: 1, 2, 4 or 8.
var missileSizeShift = [4]int{1, 2, 4, 8}

// reverseByte flips the bit order of a single byte.
func reverseByte(b byte) byte {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}
