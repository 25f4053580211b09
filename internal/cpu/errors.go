package cpu

import (
	"errors"
	"fmt"
)

// ErrUnimplemented matches any UnimplementedOpcodeError with errors.Is.
var ErrUnimplemented = errors.New("unimplemented opcode")

// UnimplementedOpcodeError is returned by Step when the fetched opcode has
// no implementation. PC is the address the opcode was fetched from.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *UnimplementedOpcodeError) Is(target error) bool {
	return target == ErrUnimplemented
}
