package cpu

import "fmt"

// UnsupportedOpcodeError is returned by Execute when the decode loop hits a
// byte that isn't one of the 151 documented opcodes. This is fatal for the
// current Execute call: the CPU is left exactly one byte past the offending
// opcode and the caller decides whether to reset and continue.
type UnsupportedOpcodeError struct {
	Opcode uint8
	PC     uint16 // PC of the opcode byte itself, before the fetch advanced it.
}

func (e UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("unsupported opcode 0x%.2X at PC 0x%.4X", e.Opcode, e.PC)
}

// InvalidCPUStateError signals an implementation bug rather than a decode
// failure - an internal helper invoked in a way its precondition forbids.
// The one such check is adc, which panics with this error when decimal
// mode is set; Execute recovers it and returns it as its error.
type InvalidCPUStateError struct {
	Reason string
}

func (e InvalidCPUStateError) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}
