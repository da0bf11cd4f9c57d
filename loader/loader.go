// Package loader copies a program image into a CPU's address space. It is
// deliberately narrow: turning a file on disk into a byte slice is the
// caller's job, not this package's.
package loader

import "github.com/ghandic/sixtwofiveoh/memory"

// LoadProgram interprets the first two bytes of program as a little-endian
// load address, then copies the remaining bytes starting there. It returns
// the load address, or 0 if program is empty or shorter than two bytes -
// there's nothing to load in either case.
func LoadProgram(mem *memory.Memory, program []byte) uint16 {
	if len(program) < 2 {
		return 0
	}
	loadAddr := uint16(program[0]) | uint16(program[1])<<8
	addr := loadAddr
	for _, b := range program[2:] {
		mem.Write(addr, b)
		addr++
	}
	return loadAddr
}
