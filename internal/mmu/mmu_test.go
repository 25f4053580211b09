package mmu

import (
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestMMU_NoCartridge(t *testing.T) {
	m := NewMMU(nil)
	for _, addr := range []uint16{0x0000, 0x0100, 0x7FFF, 0x8000, 0xA000, 0xFF80} {
		m.Write(addr, 0x42)
		if v := m.Read(addr); v != 0x42 {
			t.Errorf("expected 0x42 at 0x%04X, got 0x%02X", addr, v)
		}
	}
}

func TestMMU_Cartridge(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0xC3
	rom[0x4000] = 0x01
	m := NewMMU(cartridge.NewCartridge(rom))

	if v := m.Read(0x0100); v != 0xC3 {
		t.Errorf("expected 0xC3 from cartridge at 0x0100, got 0x%02X", v)
	}
	if v := m.Read(0x4000); v != 0x01 {
		t.Errorf("expected 0x01 from cartridge at 0x4000, got 0x%02X", v)
	}

	// writes below the bank register never reach the cartridge
	m.Write(0x0100, 0x00)
	if v := m.Read(0x0100); v != 0xC3 {
		t.Errorf("expected cartridge to shadow RAM at 0x0100, got 0x%02X", v)
	}

	// RAM above the cartridge window
	m.Write(0x8000, 0x99)
	if v := m.Read(0x8000); v != 0x99 {
		t.Errorf("expected 0x99 at 0x8000, got 0x%02X", v)
	}
}

func TestMMU_BankSelect(t *testing.T) {
	rom := make([]byte, 4*0x4000)
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}
	cart := cartridge.NewCartridge(rom)
	m := NewMMU(cart)

	for _, tt := range []struct {
		value uint8
		bank  int
	}{
		{0x02, 2},
		{0x03, 3},
		{0x00, 1},
		{0xE2, 2}, // only the lower 5 bits select the bank
	} {
		m.Write(0x2000, tt.value)
		if cart.FirstBankIndex() != tt.bank {
			t.Errorf("write 0x%02X: expected bank %d, got %d", tt.value, tt.bank, cart.FirstBankIndex())
		}
		if v := m.Read(0x4000); v != uint8(tt.bank) {
			t.Errorf("write 0x%02X: expected 0x%02X at 0x4000, got 0x%02X", tt.value, tt.bank, v)
		}
	}
}

func TestMMU_Echo(t *testing.T) {
	m := NewMMU(nil)

	m.Write(0xC000, 0x11)
	if v := m.Read(0xE000); v != 0x11 {
		t.Errorf("expected echo of 0xC000 at 0xE000, got 0x%02X", v)
	}
	m.Write(0xFDFF, 0x22)
	if v := m.Read(0xDDFF); v != 0x22 {
		t.Errorf("expected write to 0xFDFF to land at 0xDDFF, got 0x%02X", v)
	}

	// 0xFE00 is outside the echo region
	m.Write(0xFE00, 0x33)
	if v := m.Read(0xDE00); v == 0x33 {
		t.Error("expected 0xFE00 not to be echoed to 0xDE00")
	}
	if v := m.Read(0xFE00); v != 0x33 {
		t.Errorf("expected 0x33 at 0xFE00, got 0x%02X", v)
	}
}

func TestMMU_LY(t *testing.T) {
	m := NewMMU(nil)

	m.WriteDirect(types.LY, 0x90)
	if v := m.Read(types.LY); v != 0x90 {
		t.Fatalf("expected direct write to store 0x90, got 0x%02X", v)
	}

	m.Write(types.LY, 0x45)
	if v := m.Read(types.LY); v != 0x00 {
		t.Errorf("expected CPU write to clear LY, got 0x%02X", v)
	}

	// only LY is special
	m.Write(types.LCDC, 0x91)
	if v := m.Read(types.LCDC); v != 0x91 {
		t.Errorf("expected 0x91 in LCDC, got 0x%02X", v)
	}
}

func TestMMU_Words(t *testing.T) {
	m := NewMMU(nil)

	m.WriteWord(0xC000, 0x1234)
	if lo, hi := m.Read(0xC000), m.Read(0xC001); lo != 0x34 || hi != 0x12 {
		t.Errorf("expected little-endian 34 12, got %02X %02X", lo, hi)
	}
	if v := m.ReadWord(0xC000); v != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", v)
	}

	// words wrap around the top of the address space
	m.WriteWord(0xFFFF, 0xBEEF)
	if lo, hi := m.Read(0xFFFF), m.Read(0x0000); lo != 0xEF || hi != 0xBE {
		t.Errorf("expected wrapped word EF BE, got %02X %02X", lo, hi)
	}
	if v := m.ReadWord(0xFFFF); v != 0xBEEF {
		t.Errorf("expected 0xBEEF, got 0x%04X", v)
	}
}
