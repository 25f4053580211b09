package gameboy

import "github.com/thelolagemann/gomeboy-core/pkg/log"

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables the LD B, B breakpoint, which stops any run.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithCompositor sets the compositor each scanline is rendered with.
func WithCompositor(c Compositor) Opt {
	return func(gb *GameBoy) {
		gb.compositor = c
	}
}

// WithBank selects the ROM bank visible at 0x4000-0x7FFF. It has no
// effect without a cartridge, and an invalid index is logged and ignored.
func WithBank(index int) Opt {
	return func(gb *GameBoy) {
		if gb.MMU.Cart == nil {
			return
		}
		if err := gb.MMU.Cart.SetFirstBankIndex(index); err != nil {
			gb.Errorf("%s", err)
		}
	}
}
