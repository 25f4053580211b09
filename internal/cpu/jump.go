package cpu

// jumpRelative adds the signed offset e to PC.
//
//	JR e
func (c *CPU) jumpRelative(e uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(e)))
	c.tick()
}

// jumpAbsolute sets PC to address.
//
//	JP nn
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
	c.tick()
}

// call pushes the address of the next instruction onto the stack and
// jumps to address.
//
//	CALL nn
func (c *CPU) call(address uint16) {
	c.push(c.PC)
	c.PC = address
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
	c.tick()
}

// restart pushes PC onto the stack and jumps to the fixed vector
// encoded in the opcode.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func (c *CPU) restart(opcode uint8) {
	c.push(c.PC)
	c.PC = uint16(opcode & 0x38)
}
