package cpu

// push decrements SP by 2 and writes value to the new top of the stack.
func (c *CPU) push(value uint16) {
	c.SP -= 2
	c.tick()
	c.writeWord(c.SP, value)
}

// pop reads the word at the top of the stack and increments SP by 2.
func (c *CPU) pop() uint16 {
	value := c.readWord(c.SP)
	c.SP += 2
	return value
}
