package cpu

// branch fetches the signed displacement operand (always, via
// fetchSignedByte - one cycle) and, if taken is true, charges one cycle,
// applies the displacement to PC, and charges one more cycle if that
// lands PC in a different 256-byte page.
func (c *CPU) branch(taken bool) {
	offset := c.fetchSignedByte()
	if !taken {
		return
	}
	c.CyclesRemaining--
	old := c.PC
	c.PC = uint16(int32(c.PC) + int32(offset))
	if old&0xFF00 != c.PC&0xFF00 {
		c.CyclesRemaining--
	}
}

func (c *CPU) beq() { c.branch(c.Z) }
func (c *CPU) bne() { c.branch(!c.Z) }
func (c *CPU) bcs() { c.branch(c.C) }
func (c *CPU) bcc() { c.branch(!c.C) }
func (c *CPU) bmi() { c.branch(c.N) }
func (c *CPU) bpl() { c.branch(!c.N) }
func (c *CPU) bvs() { c.branch(c.V) }
func (c *CPU) bvc() { c.branch(!c.V) }
