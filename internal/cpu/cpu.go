package cpu

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// EntryPoint is where execution begins once the boot ROM has handed
	// control to the cartridge.
	EntryPoint uint16 = 0x0100
	// StackTop is the initial stack pointer.
	StackTop uint16 = 0xFFFE
)

// Bus is the memory the CPU executes against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	ReadWord(address uint16) uint16
	WriteWord(address uint16, value uint16)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// Debug enables the LD B, B software breakpoint used by test ROMs.
	Debug           bool
	DebugBreakpoint bool

	bus Bus

	// clock counts every cycle executed since creation and is never reset.
	clock uint64
	// currentTick counts the cycles of the instruction being executed.
	currentTick uint8
	ime         bool
}

// New creates a new CPU instance that executes against the given bus.
func New(bus Bus) *CPU {
	c := &CPU{
		bus: bus,
		ime: true,
	}
	c.initPairs()

	return c
}

// Init places the CPU in its post boot state, with PC at the cartridge
// entry point and SP at the top of high RAM. Registers and the clock are
// left untouched.
func (c *CPU) Init() {
	c.PC = EntryPoint
	c.SP = StackTop
}

// Clock returns the total number of cycles executed.
func (c *CPU) Clock() uint64 {
	return c.clock
}

// IME returns the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// Step fetches, decodes and executes a single instruction, returning the
// number of cycles it took. If the opcode is not implemented PC is left
// pointing at it, the clock is unchanged and an *UnimplementedOpcodeError
// is returned.
func (c *CPU) Step() (uint8, error) {
	c.currentTick = 0
	pc := c.PC

	opcode := c.readOperand()
	instr := InstructionSet[opcode]
	if instr.fn == nil {
		c.PC = pc
		c.currentTick = 0
		return 0, &UnimplementedOpcodeError{Opcode: opcode, PC: pc}
	}

	if c.Debug && opcode == 0x40 {
		c.DebugBreakpoint = true
	}

	instr.fn(c, opcode)
	c.clock += uint64(c.currentTick)

	return c.currentTick, nil
}

// tick accounts for a single machine cycle.
func (c *CPU) tick() {
	c.currentTick += 4
}

// readOperand reads the byte at PC and increments PC.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readOperandWord reads the little endian word at PC.
func (c *CPU) readOperandWord() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

func (c *CPU) readByte(address uint16) uint8 {
	c.tick()
	return c.bus.Read(address)
}

func (c *CPU) writeByte(address uint16, value uint8) {
	c.tick()
	c.bus.Write(address, value)
}

func (c *CPU) readWord(address uint16) uint16 {
	c.tick()
	c.tick()
	return c.bus.ReadWord(address)
}

func (c *CPU) writeWord(address uint16, value uint16) {
	c.tick()
	c.tick()
	c.bus.WriteWord(address, value)
}

// operand returns the value held by o, reading from memory when o
// refers to (HL).
func (c *CPU) operand(o Operand) uint8 {
	switch o.Kind {
	case Accumulator:
		return c.A
	case MemoryAtHL:
		return c.readByte(c.HL.Uint16())
	}
	return *c.slot(o.Slot)
}

// setOperand stores value in the location o refers to.
func (c *CPU) setOperand(o Operand, value uint8) {
	switch o.Kind {
	case Accumulator:
		c.A = value
	case MemoryAtHL:
		c.writeByte(c.HL.Uint16(), value)
	default:
		*c.slot(o.Slot) = value
	}
}

// pair returns the 16-bit register selected by bits 5-4 of an opcode.
// Index 3 selects AF for stack instructions and SP otherwise.
func (c *CPU) pair(index uint8, stack bool) uint16 {
	switch index & 0x3 {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	}
	if stack {
		return c.AF.Uint16()
	}
	return c.SP
}

// setPair is the counterpart of pair.
func (c *CPU) setPair(index uint8, stack bool, value uint16) {
	switch index & 0x3 {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		if stack {
			c.AF.SetUint16(value)
		} else {
			c.SP = value
		}
	}
}

// condition evaluates the condition encoded in bits 4-3 of an opcode.
//
//	00 NZ  01 Z  10 NC  11 C
func (c *CPU) condition(opcode uint8) bool {
	switch (opcode >> 3) & 0x3 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	}
	return c.isFlagSet(FlagCarry)
}
