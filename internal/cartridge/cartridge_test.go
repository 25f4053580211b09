package cartridge

import (
	"errors"
	"testing"

	"github.com/cespare/xxhash"
)

// pagedROM returns a ROM of the given number of banks where
// every byte holds the index of its bank.
func pagedROM(banks int) []byte {
	rom := make([]byte, banks*0x4000)
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}
	return rom
}

func TestCartridge_Read(t *testing.T) {
	rom := make([]byte, 0x1CCC)
	rom[0x0000] = 0xC9
	cart := NewCartridge(rom)

	if v := cart.Read(0x0000); v != 0xC9 {
		t.Errorf("expected 0xC9 at 0x0000, got 0x%02X", v)
	}
	if v := cart.Read(0x1CCB); v != 0x00 {
		t.Errorf("expected 0x00 at 0x1CCB, got 0x%02X", v)
	}
	if v := cart.Read(0x1CCC); v != OpenBus {
		t.Errorf("expected 0xFF past the end of the ROM, got 0x%02X", v)
	}
	if v := cart.Read(0x4000); v != OpenBus {
		t.Errorf("expected 0xFF in the missing bank window, got 0x%02X", v)
	}
}

func TestCartridge_Paging(t *testing.T) {
	cart := NewCartridge(pagedROM(3))

	expectWindow := func(t *testing.T, start, end uint16, want uint8) {
		t.Helper()
		for address := uint32(start); address < uint32(end); address++ {
			if v := cart.Read(uint16(address)); v != want {
				t.Fatalf("expected 0x%02X at 0x%04X, got 0x%02X", want, address, v)
			}
		}
	}

	t.Run("bank 0 fixed", func(t *testing.T) {
		expectWindow(t, 0x0000, 0x4000, 0x00)
	})
	t.Run("default bank", func(t *testing.T) {
		if cart.FirstBankIndex() != 1 {
			t.Errorf("expected default bank index 1, got %d", cart.FirstBankIndex())
		}
		expectWindow(t, 0x4000, 0x8000, 0x01)
	})
	t.Run("bank 2", func(t *testing.T) {
		if err := cart.SetFirstBankIndex(2); err != nil {
			t.Fatal(err)
		}
		expectWindow(t, 0x4000, 0x8000, 0x02)
		expectWindow(t, 0x0000, 0x4000, 0x00)
	})
	t.Run("beyond rom", func(t *testing.T) {
		if err := cart.SetFirstBankIndex(3); err != nil {
			t.Fatal(err)
		}
		expectWindow(t, 0x4000, 0x8000, OpenBus)
	})
	t.Run("bank 0 in window", func(t *testing.T) {
		if err := cart.SetFirstBankIndex(0); err != nil {
			t.Fatal(err)
		}
		expectWindow(t, 0x4000, 0x8000, 0x00)
	})
}

func TestCartridge_SetFirstBankIndex(t *testing.T) {
	cart := NewCartridge(pagedROM(2))
	err := cart.SetFirstBankIndex(-1)
	if !errors.Is(err, ErrInvalidBankIndex) {
		t.Fatalf("expected ErrInvalidBankIndex, got %v", err)
	}
	if cart.FirstBankIndex() != 1 {
		t.Errorf("expected rejected index to leave bank 1 selected, got %d", cart.FirstBankIndex())
	}
	if err := cart.SetFirstBankIndex(0x1FF); err != nil {
		t.Errorf("expected large index to be accepted, got %v", err)
	}
	if v := cart.Read(0x5000); v != OpenBus {
		t.Errorf("expected 0xFF for out of range bank, got 0x%02X", v)
	}
}

func TestCartridge_ReadOutsideWindow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic reading 0x8000 from the cartridge")
		}
	}()
	NewCartridge(pagedROM(2)).Read(0x8000)
}

func TestCartridge_LoadROM(t *testing.T) {
	rom := []byte{0x00, 0xC3, 0x50, 0x01}
	cart := NewCartridge(nil)
	if cart.Read(0x0000) != OpenBus || cart.Banks() != 0 {
		t.Fatalf("expected empty cartridge to read 0xFF with 0 banks")
	}

	cart.LoadROM(rom)
	rom[1] = 0x00 // the cartridge holds its own copy
	if v := cart.Read(0x0001); v != 0xC3 {
		t.Errorf("expected 0xC3 at 0x0001, got 0x%02X", v)
	}
	if cart.Banks() != 1 {
		t.Errorf("expected 1 bank, got %d", cart.Banks())
	}
	if cart.Fingerprint() != xxhash.Sum64([]byte{0x00, 0xC3, 0x50, 0x01}) {
		t.Errorf("unexpected fingerprint %016x", cart.Fingerprint())
	}
}
