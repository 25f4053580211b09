// Package ram provides a basic RAM implementation.
package ram

// RAM represents a flat block of RAM covering the full
// 16-bit address space.
type RAM struct {
	data [0x10000]uint8
}

// NewRAM returns a new zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}
