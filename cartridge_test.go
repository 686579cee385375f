package main

import "testing"

func TestCartridgeEmptyReadsZero(t *testing.T) {
	c := NewCartridge()
	if got := c.Read(0); got != 0 {
		t.Fatalf("Read on empty cartridge = %d, want 0", got)
	}
	if got := c.ReadMirrored(100); got != 0 {
		t.Fatalf("ReadMirrored on empty cartridge = %d, want 0", got)
	}
}

func TestCartridgeLoadAndRead(t *testing.T) {
	c := NewCartridge()
	c.Load([]byte{0xAA, 0xBB, 0xCC})
	if got := c.Read(1); got != 0xBB {
		t.Fatalf("Read(1) = %#x, want 0xbb", got)
	}
	if got := c.Read(10); got != 0 {
		t.Fatalf("Read out of bounds = %#x, want 0", got)
	}
	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
}

func TestCartridgeReadMirrored(t *testing.T) {
	c := NewCartridge()
	c.Load([]byte{1, 2, 3, 4})
	tests := []struct {
		offset uint16
		want   byte
	}{
		{0, 1}, {3, 4}, {4, 1}, {7, 4}, {8, 1},
	}
	for _, tt := range tests {
		if got := c.ReadMirrored(tt.offset); got != tt.want {
			t.Errorf("ReadMirrored(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestCartridgeEject(t *testing.T) {
	c := NewCartridge()
	c.Load([]byte{1, 2})
	c.Eject()
	if c.Len() != 0 {
		t.Fatalf("Len() after Eject = %d, want 0", c.Len())
	}
	if got := c.Read(0); got != 0 {
		t.Fatalf("Read after Eject = %d, want 0", got)
	}
}
