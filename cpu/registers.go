package cpu

// Register transfers, stack push/pull, increment/decrement register
// instructions, and the plain flag mutators. The transfers, INX/INY/DEX/DEY,
// the flag mutators and NOP each cost a single internal cycle beyond the
// opcode fetch; the stack ops cost what pushByte/popByte charge (PLA one
// more).

func (c *CPU) tax() { c.CyclesRemaining--; c.loadRegister(&c.X, c.A) }
func (c *CPU) tay() { c.CyclesRemaining--; c.loadRegister(&c.Y, c.A) }
func (c *CPU) txa() { c.CyclesRemaining--; c.loadRegister(&c.A, c.X) }
func (c *CPU) tya() { c.CyclesRemaining--; c.loadRegister(&c.A, c.Y) }
func (c *CPU) tsx() { c.CyclesRemaining--; c.loadRegister(&c.X, c.SP) }

// txs copies X into SP without touching any flags.
func (c *CPU) txs() {
	c.CyclesRemaining--
	c.SP = c.X
}

// pha pushes A onto the stack.
func (c *CPU) pha() {
	c.pushByte(c.A)
}

// pla pops into A and updates Z/N. The extra cycle beyond popByte mirrors
// the source, which charges one more than PLP does for the same shape of
// operation - see DESIGN.md Open Questions.
func (c *CPU) pla() {
	v := c.popByte()
	c.CyclesRemaining--
	c.loadRegister(&c.A, v)
}

// php pushes status with B/U forced set.
func (c *CPU) php() {
	c.pushStatus()
}

// plp pops status, clearing B/U after.
func (c *CPU) plp() {
	c.popStatus()
}

func (c *CPU) inx() { c.CyclesRemaining--; c.loadRegister(&c.X, c.X+1) }
func (c *CPU) iny() { c.CyclesRemaining--; c.loadRegister(&c.Y, c.Y+1) }
func (c *CPU) dex() { c.CyclesRemaining--; c.loadRegister(&c.X, c.X-1) }
func (c *CPU) dey() { c.CyclesRemaining--; c.loadRegister(&c.Y, c.Y-1) }

func (c *CPU) clc() { c.CyclesRemaining--; c.C = false }
func (c *CPU) sec() { c.CyclesRemaining--; c.C = true }
func (c *CPU) cld() { c.CyclesRemaining--; c.D = false }
func (c *CPU) sed() { c.CyclesRemaining--; c.D = true }
func (c *CPU) cli() { c.CyclesRemaining--; c.I = false }
func (c *CPU) sei() { c.CyclesRemaining--; c.I = true }
func (c *CPU) clv() { c.CyclesRemaining--; c.V = false }

// nop consumes one cycle beyond the opcode fetch and touches nothing
// else.
func (c *CPU) nop() {
	c.CyclesRemaining--
}
