package cpu

import "fmt"

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register

	// flags is set for AF, whose low byte only holds 4 bits.
	flags bool
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value, writing
// the high byte first.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	if r.flags {
		*r.Low = uint8(value) & 0xF0
	} else {
		*r.Low = uint8(value)
	}
}

// Registers represents the GB CPU registers. The pairs point back into
// the struct, so a Registers must not be copied once initialised.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// initPairs wires the register pairs to their registers.
func (r *Registers) initPairs() {
	r.BC = &RegisterPair{High: &r.B, Low: &r.C}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L}
	r.AF = &RegisterPair{High: &r.A, Low: &r.F, flags: true}
}

// OperandKind identifies what a 3-bit operand encoding refers to.
type OperandKind uint8

const (
	// StorageSlot is one of B, C, D, E, H or L.
	StorageSlot OperandKind = iota
	// Accumulator is the A register.
	Accumulator
	// MemoryAtHL is the byte in memory at the address held in HL.
	MemoryAtHL
)

// Operand is a decoded 3-bit register operand. Slot is only meaningful
// for StorageSlot, where 0-5 select B, C, D, E, H and L.
type Operand struct {
	Kind OperandKind
	Slot uint8
}

// registerNames indexed by the 3-bit hardware encoding.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (o Operand) String() string {
	switch o.Kind {
	case Accumulator:
		return "A"
	case MemoryAtHL:
		return "(HL)"
	}
	return registerNames[o.Slot]
}

// DecodeOperand decodes the 3-bit register encoding used by most
// instructions:
//
//	000 B    001 C    010 D    011 E
//	100 H    101 L    110 (HL) 111 A
//
// Only the lower 3 bits of encoding are considered.
func DecodeOperand(encoding uint8) Operand {
	switch encoding &= 0x7; encoding {
	case 0b110:
		return Operand{Kind: MemoryAtHL}
	case 0b111:
		return Operand{Kind: Accumulator}
	default:
		return Operand{Kind: StorageSlot, Slot: encoding}
	}
}

// slot returns a pointer to the register held in the given storage slot.
func (r *Registers) slot(index uint8) *Register {
	switch index {
	case 0:
		return &r.B
	case 1:
		return &r.C
	case 2:
		return &r.D
	case 3:
		return &r.E
	case 4:
		return &r.H
	case 5:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register slot: %d", index))
}
