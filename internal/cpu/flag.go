package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = bits.Reset(c.F, flag)
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F = bits.Set(c.F, flag)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F, flag)
}

// setFlags sets all four flags at once. The low nibble of F is left as is.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = bits.SetTo(c.F, FlagZero, zero)
	c.F = bits.SetTo(c.F, FlagSubtract, subtract)
	c.F = bits.SetTo(c.F, FlagHalfCarry, halfCarry)
	c.F = bits.SetTo(c.F, FlagCarry, carry)
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	return bits.Val(c.F, FlagCarry)
}

// Flag reports whether the given flag is set.
func (c *CPU) Flag(flag Flag) bool {
	return c.isFlagSet(flag)
}

// SetFlag sets or clears the given flag, leaving every other bit of F
// untouched.
func (c *CPU) SetFlag(flag Flag, on bool) {
	c.F = bits.SetTo(c.F, flag, on)
}
