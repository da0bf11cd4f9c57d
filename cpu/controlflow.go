package cpu

// pushStatus packs the status flags, forcing B and U set in the pushed
// byte (per spec.md §3, without necessarily mutating the live B/U fields -
// PHP leaves them alone; BRK sets the live B separately right after).
func (c *CPU) pushStatus() {
	c.pushByte(c.statusByte() | flagB | flagU)
}

// popStatus restores all eight flags from the top of stack, then clears B
// and U regardless of what was popped - used by both PLP and RTI.
func (c *CPU) popStatus() {
	c.setStatusByte(c.popByte())
	c.B = false
	c.U = false
}

// jmp implements JMP abs: PC <- fetched word.
func (c *CPU) jmp() {
	c.PC = c.absolute()
}

// jmpIndirect implements JMP (ind): PC <- read_word(fetched word). The
// original chip's page-wrap bug when the pointer falls on a page boundary
// is a documented Non-goal and is not reproduced here.
func (c *CPU) jmpIndirect() {
	ptr := c.absolute()
	c.PC = c.readWord(ptr)
}

// jsr implements JSR abs: fetch the target, push PC-1 (the address of the
// JSR's last operand byte), jump, and charge one extra internal cycle.
func (c *CPU) jsr() {
	target := c.absolute()
	c.pushWord(c.PC - 1)
	c.CyclesRemaining--
	c.PC = target
}

// rts implements RTS: pop a word, PC <- popped+1, two extra internal
// cycles.
func (c *CPU) rts() {
	ret := c.popWord()
	c.CyclesRemaining -= 2
	c.PC = ret + 1
}

// brk implements BRK: push PC+1 (skipping the padding byte after the BRK
// opcode), push status with B/U forced, set I, load PC from the BRK
// vector, and mark B as actually set on the live flags (per spec.md §8
// scenario 5).
func (c *CPU) brk() {
	c.pushWord(c.PC + 1)
	c.pushStatus()
	c.I = true
	c.B = true
	c.PC = c.readWord(BRKVector)
}

// rti implements RTI: pop status (clearing B/U after), then pop PC.
func (c *CPU) rti() {
	c.popStatus()
	c.PC = c.popWord()
}
