// cartridge.go - read-only cartridge ROM image

package main

// Cartridge holds a loaded ROM image. It has no behaviour of its own beyond
// byte lookup; bank switching and other cartridge logic boards are out of
// scope (see spec section 1, Non-goals).
type Cartridge struct {
	data []byte
}

// NewCartridge returns an empty cartridge. Reads before Load yield zero.
func NewCartridge() *Cartridge {
	return &Cartridge{}
}

// Load replaces the cartridge image. A typical image is 2KiB or 4KiB.
func (c *Cartridge) Load(data []byte) {
	c.data = data
}

// Eject clears the loaded image.
func (c *Cartridge) Eject() {
	c.data = nil
}

// Read returns the byte at offset, bounds-checked directly against the
// image length. Reading past the end of the image is caller error; this
// implementation returns zero rather than panicking.
func (c *Cartridge) Read(offset uint16) byte {
	if int(offset) >= len(c.data) {
		return 0
	}
	return c.data[offset]
}

// ReadMirrored indexes modulo the image length, reproducing the address-line
// mirroring real hardware exhibits when a ROM smaller than the cartridge
// window (e.g. a 2KiB image in a 4KiB window) is plugged in.
func (c *Cartridge) ReadMirrored(offset uint16) byte {
	if len(c.data) == 0 {
		return 0
	}
	return c.data[int(offset)%len(c.data)]
}

// Len reports the size of the loaded image.
func (c *Cartridge) Len() int {
	return len(c.data)
}
