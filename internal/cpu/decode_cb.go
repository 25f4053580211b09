package cpu

import "fmt"

var cbNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// executeCB executes a CB prefixed opcode. Every one of the 256 prefixed
// opcodes is implemented:
//
//	00 ooo rrr  rotate/shift/swap ooo on r
//	01 bbb rrr  BIT b, r
//	10 bbb rrr  RES b, r
//	11 bbb rrr  SET b, r
func executeCB(c *CPU, opcode uint8) {
	o := src(opcode)
	b := (opcode >> 3) & 0x7
	value := c.operand(o)

	switch opcode >> 6 {
	case 0:
		c.setOperand(o, c.shiftOp(b, value))
	case 1:
		c.testBit(b, value)
	case 2:
		c.setOperand(o, value&^(1<<b))
	case 3:
		c.setOperand(o, value|1<<b)
	}
}

func (c *CPU) shiftOp(op, value uint8) uint8 {
	switch op {
	case 0:
		return c.rotateLeftCarry(value)
	case 1:
		return c.rotateRightCarry(value)
	case 2:
		return c.rotateLeftThroughCarry(value)
	case 3:
		return c.rotateRightThroughCarry(value)
	case 4:
		return c.shiftLeftArithmetic(value)
	case 5:
		return c.shiftRightArithmetic(value)
	case 6:
		return c.swap(value)
	}
	return c.shiftRightLogical(value)
}

// DisassembleCB returns the mnemonic of a CB prefixed opcode.
func DisassembleCB(opcode uint8) string {
	o := src(opcode)
	b := (opcode >> 3) & 0x7
	switch opcode >> 6 {
	case 0:
		return fmt.Sprintf("%s %s", cbNames[b], o)
	case 1:
		return fmt.Sprintf("BIT %d, %s", b, o)
	case 2:
		return fmt.Sprintf("RES %d, %s", b, o)
	}
	return fmt.Sprintf("SET %d, %s", b, o)
}
