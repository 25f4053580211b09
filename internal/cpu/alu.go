package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// add adds rhs and the optional carry to lhs and returns the result.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(lhs, rhs uint8, carry bool) uint8 {
	var cy uint16
	if carry {
		cy = 1
	}
	sum := uint16(lhs) + uint16(rhs) + cy
	c.setFlags(
		uint8(sum) == 0,
		false,
		uint16(lhs&0x0F)+uint16(rhs&0x0F)+cy > 0x0F,
		sum > 0xFF,
	)
	return uint8(sum)
}

// sub subtracts rhs and the optional carry from lhs and returns the result.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(lhs, rhs uint8, carry bool) uint8 {
	var cy int
	if carry {
		cy = 1
	}
	diff := int(lhs) - int(rhs) - cy
	c.setFlags(
		uint8(diff) == 0,
		true,
		int(lhs&0x0F)-int(rhs&0x0F)-cy < 0,
		diff < 0,
	)
	return uint8(diff)
}

// compare compares rhs to lhs. Flags are set as for sub, but the
// result is discarded.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
func (c *CPU) compare(lhs, rhs uint8) {
	c.sub(lhs, rhs, false)
	c.SetFlag(FlagZero, lhs == rhs)
}

// and performs a bitwise AND operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// alu performs one of the eight accumulator operations selected by bits
// 5-3 of an ALU opcode.
func (c *CPU) alu(op uint8, n uint8) {
	switch op & 0x7 {
	case 0:
		c.A = c.add(c.A, n, false)
	case 1:
		c.A = c.add(c.A, n, c.isFlagSet(FlagCarry))
	case 2:
		c.A = c.sub(c.A, n, false)
	case 3:
		c.A = c.sub(c.A, n, c.isFlagSet(FlagCarry))
	case 4:
		c.and(n)
	case 5:
		c.xor(n)
	case 6:
		c.or(n)
	case 7:
		c.compare(c.A, n)
	}
}

// increment increments n by 1. The carry flag is not affected.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.SetFlag(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.SetFlag(FlagHalfCarry, n&0x0F == 0x0F)
	return result
}

// decrement decrements n by 1. The carry flag is not affected.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.SetFlag(FlagZero, result == 0)
	c.setFlag(FlagSubtract)
	c.SetFlag(FlagHalfCarry, n&0x0F == 0)
	return result
}

// addHL adds n to HL.
//
//	ADD HL, n
//	n = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	c.clearFlag(FlagSubtract)
	c.SetFlag(FlagHalfCarry, hl&0x0FFF+n&0x0FFF > 0x0FFF)
	c.SetFlag(FlagCarry, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e. The half carry and
// carry flags come from the unsigned addition of the low byte of SP and e.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	low := uint8(c.SP)
	c.setFlags(
		false,
		false,
		low&0x0F+e&0x0F > 0x0F,
		uint16(low)+uint16(e) > 0xFF,
	)
	return uint16(int32(c.SP) + int32(int8(e)))
}

// decimalAdjust adjusts the A register into binary coded decimal after
// an addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	var adjust uint8
	carry := c.isFlagSet(FlagCarry)
	if c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagHalfCarry) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		c.A -= adjust
	} else {
		if c.isFlagSet(FlagHalfCarry) || c.A&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || c.A > 0x99 {
			adjust |= 0x60
			carry = true
		}
		c.A += adjust
	}
	c.SetFlag(FlagZero, c.A == 0)
	c.clearFlag(FlagHalfCarry)
	c.SetFlag(FlagCarry, carry)
}

// complement flips every bit of A.
//
//	CPL
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// setCarryFlag sets the carry flag and resets N and H.
//
//	SCF
func (c *CPU) setCarryFlag() {
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlag(FlagCarry)
}

// complementCarryFlag flips the carry flag and resets N and H.
//
//	CCF
func (c *CPU) complementCarryFlag() {
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.SetFlag(FlagCarry, !c.isFlagSet(FlagCarry))
}

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & types.Bit7
	computed := n<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry != 0)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & types.Bit0
	computed := n>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry != 0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied
// into the least significant bit, and the old bit 7 into the carry flag.
//
//	RL n
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n<<1 | c.carryBit()
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is
// copied into the most significant bit, and the old bit 0 into the carry
// flag.
//
//	RR n
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n>>1 | c.carryBit()<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftLeftArithmetic shifts n left into the carry flag. Bit 0 is reset.
//
//	SLA n
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// shiftRightArithmetic shifts n right into the carry flag. Bit 7 keeps
// its value.
//
//	SRA n
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftRightLogical shifts n right into the carry flag. Bit 7 is reset.
//
//	SRL n
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// swap the upper and lower nibbles of n.
//
//	SWAP n
func (c *CPU) swap(n uint8) uint8 {
	computed := n<<4 | n>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// testBit tests bit b of n.
//
//	BIT b, n
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(b, n uint8) {
	c.SetFlag(FlagZero, n&(1<<b) == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}
