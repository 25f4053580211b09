// Package cartridge provides the game cartridge. The cartridge holds
// the game ROM, with the first 16kB bank fixed at 0x0000 - 0x3FFF
// and a selectable bank visible at 0x4000 - 0x7FFF.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// OpenBus is returned for any read past the end of the ROM.
const OpenBus uint8 = 0xFF

// ErrInvalidBankIndex is returned when selecting a negative bank.
var ErrInvalidBankIndex = errors.New("invalid cartridge bank index")

// Cartridge represents a basic game cartridge.
type Cartridge struct {
	rom            []byte
	firstBankIndex int
	fingerprint    uint64
}

// NewCartridge returns a new Cartridge holding a copy of rom, with
// ROM bank 1 selected.
func NewCartridge(rom []byte) *Cartridge {
	c := &Cartridge{firstBankIndex: 1}
	c.LoadROM(rom)
	return c
}

// LoadROM replaces the ROM image of the cartridge. The bytes are
// copied as is; no header parsing or checksum validation happens.
func (c *Cartridge) LoadROM(rom []byte) {
	c.rom = append([]byte(nil), rom...)
	c.fingerprint = xxhash.Sum64(c.rom)
}

// Read returns the value at the given address, which must lie within
// the cartridge window (0x0000 - 0x7FFF). Reads beyond the end of the
// ROM return OpenBus.
func (c *Cartridge) Read(address uint16) uint8 {
	if address >= types.ROMEnd {
		panic(fmt.Sprintf("cartridge: read outside of ROM window: 0x%04X", address))
	}

	offset := int(address)
	if address >= types.ROMBank0End {
		// the window starts one bank in, so the default index of 1
		// exposes ROM bank 1 at 0x4000
		offset = (c.firstBankIndex-1)*types.ROMBankSize + int(address)
	}

	if offset < 0 || offset >= len(c.rom) {
		return OpenBus
	}
	return c.rom[offset]
}

// SetFirstBankIndex selects the ROM bank visible at 0x4000 - 0x7FFF.
// There is no upper bound, as the number of banks the game expects is
// unknown; banks past the end of the ROM read as OpenBus.
func (c *Cartridge) SetFirstBankIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBankIndex, index)
	}
	c.firstBankIndex = index
	return nil
}

// FirstBankIndex returns the currently selected ROM bank.
func (c *Cartridge) FirstBankIndex() int {
	return c.firstBankIndex
}

// ROM returns the ROM image. It must not be modified.
func (c *Cartridge) ROM() []byte {
	return c.rom
}

// Banks returns the number of 16kB banks in the ROM image, counting a
// trailing partial bank.
func (c *Cartridge) Banks() int {
	return (len(c.rom) + types.ROMBankSize - 1) / types.ROMBankSize
}

// Fingerprint returns the xxhash64 of the ROM image, used to identify
// the loaded game in logs and the debugger.
func (c *Cartridge) Fingerprint() uint64 {
	return c.fingerprint
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%d bytes, %d banks, fingerprint %016x", len(c.rom), c.Banks(), c.fingerprint)
}
