// Package cpu implements the core of a cycle-accurate MOS 6502 interpreter:
// the decode/execute loop, the eight addressing-mode evaluators, the ALU
// helpers, and the stack/control-flow instructions. It deliberately leaves
// out anything that isn't part of chip itself - the program loader lives in
// the sibling loader package, and there is no assembler, disassembler, or
// UI here.
package cpu

import (
	"fmt"

	"github.com/ghandic/sixtwofiveoh/memory"
)

// Flag bit positions within the packed status byte. Layout (bit7->bit0) is
// N V U B D I Z C.
const (
	flagC uint8 = 1 << 0
	flagZ uint8 = 1 << 1
	flagI uint8 = 1 << 2
	flagD uint8 = 1 << 3
	flagB uint8 = 1 << 4
	flagU uint8 = 1 << 5
	flagV uint8 = 1 << 6
	flagN uint8 = 1 << 7
)

// Memory layout constants per the datasheet.
const (
	ResetVector = uint16(0xFFFC)
	BRKVector   = uint16(0xFFFE)
	StackBase   = uint16(0x0100)
)

// CPU holds all architectural state of the chip: the three general purpose
// registers, the program counter, the stack pointer, the individually
// addressable status flags, and the cycle budget that drives Execute.
// Memory is owned by the CPU; nothing outside of Execute may mutate CPU
// state concurrently with a running Execute call (see spec.md §5).
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16

	// Status flags, individually addressable as the source models them,
	// in addition to the packed-byte view used only by PHP/PLP/BRK/RTI.
	C, Z, I, D, B, U, V, N bool

	// CyclesRemaining is the budget counter. Execute sets it to the
	// requested value and every bus/ALU helper decrements it as it runs.
	CyclesRemaining int32

	Mem *memory.Memory
}

// New returns a CPU wired to mem, already reset (SP=$FF, PC=$FFFC, all
// registers/flags zero, and mem zeroed).
func New(mem *memory.Memory) *CPU {
	c := &CPU{Mem: mem}
	c.Reset()
	return c
}

// Reset zeroes all registers and flags, sets SP=$FF and PC=$FFFC, and - per
// the source this was distilled from - clears Memory as well.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.C, c.Z, c.I, c.D, c.B, c.U, c.V, c.N = false, false, false, false, false, false, false, false
	c.SP = 0xFF
	c.PC = ResetVector
	c.CyclesRemaining = 0
	c.Mem.Reset()
}

// ResetTo performs a Reset and then overwrites PC, letting callers bypass
// the reset vector for hand-assembled test programs.
func (c *CPU) ResetTo(addr uint16) {
	c.Reset()
	c.PC = addr
}

// statusByte packs the eight individually addressable flags into a single
// byte, used by PHP/BRK (via pushStatus) and by String.
func (c *CPU) statusByte() uint8 {
	var v uint8
	if c.C {
		v |= flagC
	}
	if c.Z {
		v |= flagZ
	}
	if c.I {
		v |= flagI
	}
	if c.D {
		v |= flagD
	}
	if c.B {
		v |= flagB
	}
	if c.U {
		v |= flagU
	}
	if c.V {
		v |= flagV
	}
	if c.N {
		v |= flagN
	}
	return v
}

// setStatusByte unpacks v into the eight individual flags, used only by
// PLP/RTI (via popStatus).
func (c *CPU) setStatusByte(v uint8) {
	c.C = v&flagC != 0
	c.Z = v&flagZ != 0
	c.I = v&flagI != 0
	c.D = v&flagD != 0
	c.B = v&flagB != 0
	c.U = v&flagU != 0
	c.V = v&flagV != 0
	c.N = v&flagN != 0
}

// String renders a human-readable snapshot of CPU state, handy in test
// failure messages alongside spew.Sdump's exhaustive dump.
func (c *CPU) String() string {
	return fmt.Sprintf("A:%.2X X:%.2X Y:%.2X SP:%.2X PC:%.4X P:%.2X (C:%t Z:%t I:%t D:%t B:%t U:%t V:%t N:%t) cycles:%d",
		c.A, c.X, c.Y, c.SP, c.PC, c.statusByte(), c.C, c.Z, c.I, c.D, c.B, c.U, c.V, c.N, c.CyclesRemaining)
}
