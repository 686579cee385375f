package main

import "testing"

func newTestMemoryMap() (*MemoryMap, *VAC, *RIOT, *Cartridge) {
	vac := NewVAC()
	riot := NewRIOT()
	cart := NewCartridge()
	cart.Load(make([]byte, 4096))
	return NewMemoryMap(vac, riot, cart), vac, riot, cart
}

func TestMemoryMapRoutesVAC(t *testing.T) {
	m, _, _, _ := newTestMemoryMap()
	m.Write(RegCOLUBK, 0x42)
	if got := m.Read(RegCOLUBK); got != 0 {
		// COLUBK is a write-only register: the VAC's read bank doesn't
		// expose it, so a read through this address returns zero.
		t.Fatalf("Read(RegCOLUBK) = %#x, want 0 (write-only register)", got)
	}
}

func TestMemoryMapRoutesRIOTRAM(t *testing.T) {
	m, _, _, _ := newTestMemoryMap()
	m.Write(0x0080, 0x55)
	if got := m.Read(0x0080); got != 0x55 {
		t.Fatalf("Read(0x0080) = %#x, want 0x55", got)
	}
	// Mirror window.
	if got := m.Read(0x0180); got != 0x55 {
		t.Fatalf("Read(0x0180) mirror = %#x, want 0x55", got)
	}
}

func TestMemoryMapRoutesCartridge(t *testing.T) {
	m, _, _, cart := newTestMemoryMap()
	cart.data[0] = 0x99
	if got := m.Read(0x1000); got != 0x99 {
		t.Fatalf("Read(0x1000) = %#x, want 0x99", got)
	}
	// Writes into the cartridge window are ignored.
	m.Write(0x1000, 0x00)
	if got := m.Read(0x1000); got != 0x99 {
		t.Fatalf("Read(0x1000) after write = %#x, want unchanged 0x99", got)
	}
}

func TestMemoryMapMasksAddress(t *testing.T) {
	m, _, _, cart := newTestMemoryMap()
	cart.data[0] = 0x77
	// 0x3000 & 0x1FFF == 0x1000, the start of the cartridge window.
	if got := m.Read(0x3000); got != 0x77 {
		t.Fatalf("Read(0x3000) = %#x, want 0x77 via 13-bit mask", got)
	}
}

func TestMemoryMapUnmappedReadsZero(t *testing.T) {
	m, _, _, _ := newTestMemoryMap()
	if got := m.Read(0x0200); got != 0 {
		t.Fatalf("Read(0x0200) unmapped = %#x, want 0", got)
	}
}
