package cpu

import (
	"fmt"
	"strings"
)

// Snapshot is a copy of the CPU state, used by debuggers.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16

	Zero, Subtract, HalfCarry, Carry bool

	IME   bool
	Clock uint64
}

// Snapshot captures the current CPU state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F, B: c.B, C: c.C,
		D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,

		Zero:      c.isFlagSet(FlagZero),
		Subtract:  c.isFlagSet(FlagSubtract),
		HalfCarry: c.isFlagSet(FlagHalfCarry),
		Carry:     c.isFlagSet(FlagCarry),

		IME:   c.ime,
		Clock: c.clock,
	}
}

func flagChar(set bool, c byte) byte {
	if set {
		return c
	}
	return '-'
}

// String renders the snapshot as a register dump.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "AF: %02X%02X  BC: %02X%02X  DE: %02X%02X  HL: %02X%02X\n", s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L)
	fmt.Fprintf(&b, "SP: %04X  PC: %04X  IME: %t\n", s.SP, s.PC, s.IME)
	fmt.Fprintf(&b, "Flags: %c%c%c%c  Clock: %d",
		flagChar(s.Zero, 'Z'), flagChar(s.Subtract, 'N'),
		flagChar(s.HalfCarry, 'H'), flagChar(s.Carry, 'C'), s.Clock)
	return b.String()
}
