// Package mmu provides a memory management unit for the Game Boy. The
// MMU unifies the cartridge and RAM into a single 16-bit address space,
// and is the only path the CPU has to memory.
package mmu

import (
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/ram"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// Reader is implemented by anything that can be read from
// byte by byte, such as the MMU.
type Reader interface {
	Read(address uint16) uint8
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
//
//	0x0000 - 0x7FFF - Cartridge ROM (or RAM when no cartridge is inserted)
//	0xC000 - 0xDDFF - Work RAM
//	0xE000 - 0xFDFF - Echo of 0xC000 - 0xDDFF
//	0xFF44          - LY, cleared by any write from the CPU
//
// Everything else is backed directly by RAM.
type MMU struct {
	// 0x0000 - 0x7FFF - ROM (32kB)
	Cart *cartridge.Cartridge

	ram *ram.RAM

	Log log.Logger
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// NewMMU returns a new MMU. cart may be nil, in which case the
// whole address space is plain RAM, which is convenient when
// testing the CPU.
func NewMMU(cart *cartridge.Cartridge, opts ...Opt) *MMU {
	m := &MMU{
		Cart: cart,
		ram:  ram.NewRAM(),
		Log:  log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Read returns the value at the given address. It handles the
// cartridge window and the echo RAM mirror.
func (m *MMU) Read(address uint16) uint8 {
	if address < types.ROMEnd && m.Cart != nil {
		return m.Cart.Read(address)
	}
	return m.ram.Read(remap(address))
}

// Write writes the value to the given address, applying the rules a
// write from the CPU is subject to.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address == types.LY:
		// LY can only be cleared from the CPU
		value = 0
	case m.Cart != nil && address >= types.BankSelectStart && address < types.ROMBank0End:
		m.selectBank(value)
		return
	}
	m.ram.Write(remap(address), value)
}

// WriteDirect writes the value to the given address without any of the
// rules that apply to CPU writes. It is used by the hardware itself,
// e.g. to advance LY.
func (m *MMU) WriteDirect(address uint16, value uint8) {
	m.ram.Write(remap(address), value)
}

// ReadWord reads a little-endian word starting at the given address.
func (m *MMU) ReadWord(address uint16) uint16 {
	return utils.BytesToUint16(m.Read(address+1), m.Read(address))
}

// WriteWord writes a little-endian word starting at the given address.
func (m *MMU) WriteWord(address uint16, value uint16) {
	high, low := utils.Uint16ToBytes(value)
	m.Write(address, low)
	m.Write(address+1, high)
}

// selectBank handles a write to the ROM bank register. Only the lower
// 5 bits are used, and bank 0 selects bank 1.
func (m *MMU) selectBank(value uint8) {
	bank := int(value & 0x1F)
	if bank == 0 {
		bank = 1
	}
	if err := m.Cart.SetFirstBankIndex(bank); err != nil {
		m.Log.Errorf("mmu: %s", err)
		return
	}
	m.Log.Debugf("mmu: selected ROM bank %d", bank)
}

// remap folds the echo RAM region onto work RAM.
func remap(address uint16) uint16 {
	if address >= types.EchoStart && address <= types.EchoEnd {
		return address - types.EchoStart + types.WRAMStart
	}
	return address
}
