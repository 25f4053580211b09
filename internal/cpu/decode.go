package cpu

import "fmt"

// Instruction is a decoded opcode. A nil fn marks the opcode as
// unimplemented.
type Instruction struct {
	name string
	fn   func(c *CPU, opcode uint8)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Implemented reports whether the instruction can be executed.
func (i Instruction) Implemented() bool {
	return i.fn != nil
}

// InstructionSet holds the decoded form of every unprefixed opcode. It is
// resolved from the decode rules once, at init, and never modified.
var InstructionSet [256]Instruction

// rule matches every opcode for which opcode&mask == value.
type rule struct {
	mask, value uint8
	name        func(opcode uint8) string
	fn          func(c *CPU, opcode uint8)
}

func exact(opcode uint8, name string, fn func(c *CPU, opcode uint8)) rule {
	return rule{mask: 0xFF, value: opcode, name: func(uint8) string { return name }, fn: fn}
}

func pattern(mask, value uint8, name func(opcode uint8) string, fn func(c *CPU, opcode uint8)) rule {
	return rule{mask: mask, value: value, name: name, fn: fn}
}

var (
	pairNames      = [4]string{"BC", "DE", "HL", "SP"}
	stackPairNames = [4]string{"BC", "DE", "HL", "AF"}
	conditionNames = [4]string{"NZ", "Z", "NC", "C"}
	aluNames       = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}
)

// dst decodes the operand held in bits 5-3.
func dst(opcode uint8) Operand { return DecodeOperand(opcode >> 3) }

// src decodes the operand held in bits 2-0.
func src(opcode uint8) Operand { return DecodeOperand(opcode) }

func rr(opcode uint8) uint8 { return (opcode >> 4) & 0x3 }

func aluOp(opcode uint8) uint8 { return (opcode >> 3) & 0x7 }

func cond(opcode uint8) string { return conditionNames[(opcode>>3)&0x3] }

func pairName(opcode uint8) string { return pairNames[rr(opcode)] }

// rules is the ordered decision table. Exact opcodes come first, then the
// bit-field patterns; the first match wins.
var rules = []rule{
	exact(0x00, "NOP", func(c *CPU, _ uint8) {}),
	exact(0x07, "RLCA", func(c *CPU, _ uint8) {
		c.A = c.rotateLeftCarry(c.A)
		c.clearFlag(FlagZero)
	}),
	exact(0x0F, "RRCA", func(c *CPU, _ uint8) {
		c.A = c.rotateRightCarry(c.A)
		c.clearFlag(FlagZero)
	}),
	exact(0x17, "RLA", func(c *CPU, _ uint8) {
		c.A = c.rotateLeftThroughCarry(c.A)
		c.clearFlag(FlagZero)
	}),
	exact(0x1F, "RRA", func(c *CPU, _ uint8) {
		c.A = c.rotateRightThroughCarry(c.A)
		c.clearFlag(FlagZero)
	}),
	exact(0x27, "DAA", func(c *CPU, _ uint8) { c.decimalAdjust() }),
	exact(0x2F, "CPL", func(c *CPU, _ uint8) { c.complement() }),
	exact(0x37, "SCF", func(c *CPU, _ uint8) { c.setCarryFlag() }),
	exact(0x3F, "CCF", func(c *CPU, _ uint8) { c.complementCarryFlag() }),
	exact(0x08, "LD (a16), SP", func(c *CPU, _ uint8) {
		c.writeWord(c.readOperandWord(), c.SP)
	}),
	exact(0x10, "STOP", nil),
	exact(0x18, "JR r8", func(c *CPU, _ uint8) {
		c.jumpRelative(c.readOperand())
	}),
	exact(0x22, "LD (HL+), A", func(c *CPU, _ uint8) {
		hl := c.HL.Uint16()
		c.writeByte(hl, c.A)
		c.HL.SetUint16(hl + 1)
	}),
	exact(0x2A, "LD A, (HL+)", func(c *CPU, _ uint8) {
		hl := c.HL.Uint16()
		c.A = c.readByte(hl)
		c.HL.SetUint16(hl + 1)
	}),
	exact(0x32, "LD (HL-), A", func(c *CPU, _ uint8) {
		hl := c.HL.Uint16()
		c.writeByte(hl, c.A)
		c.HL.SetUint16(hl - 1)
	}),
	exact(0x3A, "LD A, (HL-)", func(c *CPU, _ uint8) {
		hl := c.HL.Uint16()
		c.A = c.readByte(hl)
		c.HL.SetUint16(hl - 1)
	}),
	// (HL), (HL) slot of the register load block.
	exact(0x76, "HALT", nil),
	exact(0xC3, "JP a16", func(c *CPU, _ uint8) {
		c.jumpAbsolute(c.readOperandWord())
	}),
	exact(0xC9, "RET", func(c *CPU, _ uint8) { c.ret() }),
	exact(0xCB, "PREFIX CB", func(c *CPU, _ uint8) {
		op := c.readOperand()
		executeCB(c, op)
	}),
	exact(0xCD, "CALL a16", func(c *CPU, _ uint8) {
		c.call(c.readOperandWord())
	}),
	exact(0xD9, "RETI", func(c *CPU, _ uint8) {
		c.ret()
		c.ime = true
	}),
	exact(0xE0, "LDH (a8), A", func(c *CPU, _ uint8) {
		c.writeByte(0xFF00|uint16(c.readOperand()), c.A)
	}),
	exact(0xE2, "LD (C), A", func(c *CPU, _ uint8) {
		c.writeByte(0xFF00|uint16(c.C), c.A)
	}),
	exact(0xE8, "ADD SP, r8", func(c *CPU, _ uint8) {
		c.SP = c.addSPSigned(c.readOperand())
		c.tick()
		c.tick()
	}),
	exact(0xE9, "JP HL", func(c *CPU, _ uint8) { c.PC = c.HL.Uint16() }),
	exact(0xEA, "LD (a16), A", func(c *CPU, _ uint8) {
		c.writeByte(c.readOperandWord(), c.A)
	}),
	exact(0xF0, "LDH A, (a8)", func(c *CPU, _ uint8) {
		c.A = c.readByte(0xFF00 | uint16(c.readOperand()))
	}),
	exact(0xF2, "LD A, (C)", func(c *CPU, _ uint8) {
		c.A = c.readByte(0xFF00 | uint16(c.C))
	}),
	exact(0xF3, "DI", func(c *CPU, _ uint8) { c.ime = false }),
	exact(0xF8, "LD HL, SP+r8", func(c *CPU, _ uint8) {
		c.HL.SetUint16(c.addSPSigned(c.readOperand()))
		c.tick()
	}),
	exact(0xF9, "LD SP, HL", func(c *CPU, _ uint8) {
		c.SP = c.HL.Uint16()
		c.tick()
	}),
	exact(0xFA, "LD A, (a16)", func(c *CPU, _ uint8) {
		c.A = c.readByte(c.readOperandWord())
	}),
	exact(0xFB, "EI", func(c *CPU, _ uint8) { c.ime = true }),

	pattern(0xC7, 0x06, func(op uint8) string {
		return fmt.Sprintf("LD %s, d8", dst(op))
	}, func(c *CPU, op uint8) {
		c.setOperand(dst(op), c.readOperand())
	}),
	pattern(0xC0, 0x40, func(op uint8) string {
		return fmt.Sprintf("LD %s, %s", dst(op), src(op))
	}, func(c *CPU, op uint8) {
		c.setOperand(dst(op), c.operand(src(op)))
	}),
	pattern(0xC0, 0x80, func(op uint8) string {
		return fmt.Sprintf("%s %s", aluNames[aluOp(op)], src(op))
	}, func(c *CPU, op uint8) {
		c.alu(aluOp(op), c.operand(src(op)))
	}),
	pattern(0xCF, 0x01, func(op uint8) string {
		return fmt.Sprintf("LD %s, d16", pairName(op))
	}, func(c *CPU, op uint8) {
		c.setPair(rr(op), false, c.readOperandWord())
	}),
	pattern(0xCF, 0x03, func(op uint8) string {
		return "INC " + pairName(op)
	}, func(c *CPU, op uint8) {
		c.setPair(rr(op), false, c.pair(rr(op), false)+1)
		c.tick()
	}),
	pattern(0xCF, 0x0B, func(op uint8) string {
		return "DEC " + pairName(op)
	}, func(c *CPU, op uint8) {
		c.setPair(rr(op), false, c.pair(rr(op), false)-1)
		c.tick()
	}),
	pattern(0xCF, 0x09, func(op uint8) string {
		return "ADD HL, " + pairName(op)
	}, func(c *CPU, op uint8) {
		c.addHL(c.pair(rr(op), false))
		c.tick()
	}),
	pattern(0xEF, 0x02, func(op uint8) string {
		return fmt.Sprintf("LD (%s), A", pairName(op))
	}, func(c *CPU, op uint8) {
		c.writeByte(c.pair(rr(op), false), c.A)
	}),
	pattern(0xEF, 0x0A, func(op uint8) string {
		return fmt.Sprintf("LD A, (%s)", pairName(op))
	}, func(c *CPU, op uint8) {
		c.A = c.readByte(c.pair(rr(op), false))
	}),
	pattern(0xC7, 0x04, func(op uint8) string {
		return fmt.Sprintf("INC %s", dst(op))
	}, func(c *CPU, op uint8) {
		o := dst(op)
		c.setOperand(o, c.increment(c.operand(o)))
	}),
	pattern(0xC7, 0x05, func(op uint8) string {
		return fmt.Sprintf("DEC %s", dst(op))
	}, func(c *CPU, op uint8) {
		o := dst(op)
		c.setOperand(o, c.decrement(c.operand(o)))
	}),
	pattern(0xE7, 0x20, func(op uint8) string {
		return fmt.Sprintf("JR %s, r8", cond(op))
	}, func(c *CPU, op uint8) {
		e := c.readOperand()
		if c.condition(op) {
			c.jumpRelative(e)
		}
	}),
	pattern(0xE7, 0xC0, func(op uint8) string {
		return "RET " + cond(op)
	}, func(c *CPU, op uint8) {
		c.tick()
		if c.condition(op) {
			c.ret()
		}
	}),
	pattern(0xE7, 0xC2, func(op uint8) string {
		return fmt.Sprintf("JP %s, a16", cond(op))
	}, func(c *CPU, op uint8) {
		address := c.readOperandWord()
		if c.condition(op) {
			c.jumpAbsolute(address)
		}
	}),
	pattern(0xE7, 0xC4, func(op uint8) string {
		return fmt.Sprintf("CALL %s, a16", cond(op))
	}, func(c *CPU, op uint8) {
		address := c.readOperandWord()
		if c.condition(op) {
			c.call(address)
		}
	}),
	pattern(0xCF, 0xC1, func(op uint8) string {
		return "POP " + stackPairNames[rr(op)]
	}, func(c *CPU, op uint8) {
		c.setPair(rr(op), true, c.pop())
	}),
	pattern(0xCF, 0xC5, func(op uint8) string {
		return "PUSH " + stackPairNames[rr(op)]
	}, func(c *CPU, op uint8) {
		c.push(c.pair(rr(op), true))
	}),
	pattern(0xC7, 0xC6, func(op uint8) string {
		return aluNames[aluOp(op)] + " d8"
	}, func(c *CPU, op uint8) {
		c.alu(aluOp(op), c.readOperand())
	}),
	pattern(0xC7, 0xC7, func(op uint8) string {
		return fmt.Sprintf("RST %02XH", op&0x38)
	}, func(c *CPU, op uint8) {
		c.restart(op)
	}),
}

func init() {
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		InstructionSet[op] = Instruction{name: fmt.Sprintf("ILLEGAL_%02X", opcode)}
		for _, r := range rules {
			if opcode&r.mask == r.value {
				InstructionSet[op] = Instruction{name: r.name(opcode), fn: r.fn}
				break
			}
		}
	}
}

// Disassemble returns the mnemonic of an unprefixed opcode.
func Disassemble(opcode uint8) string {
	return InstructionSet[opcode].name
}
