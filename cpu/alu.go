package cpu

// setZN updates the Z and N flags from an arbitrary byte value. This is the
// "takes a raw value" entry point the source's set_zero_and_negative_flags
// needed but didn't have (it was always invoked with a register name);
// loadRegister below is the register-name-flavored wrapper around it.
func (c *CPU) setZN(v uint8) {
	c.Z = v == 0
	c.N = v&0x80 != 0
}

// loadRegister stores val into *reg and updates Z/N from the new value.
// Used by every load and by the register transfer instructions.
func (c *CPU) loadRegister(reg *uint8, val uint8) {
	*reg = val
	c.setZN(val)
}

// adc implements ADC, assuming binary (non-decimal) mode - decimal-mode
// arithmetic is an explicit spec Non-goal. Asserts D is clear, mirroring
// the source's own `assert not self.Flag.D`.
func (c *CPU) adc(op uint8) {
	if c.D {
		panic(InvalidCPUStateError{Reason: "ADC invoked with decimal mode set; decimal mode is unimplemented"})
	}
	sameSign := (c.A^op)&0x80 == 0
	carry := uint16(0)
	if c.C {
		carry = 1
	}
	sum := uint16(c.A) + uint16(op) + carry
	result := uint8(sum & 0xFF)
	c.A = result
	c.setZN(c.A)
	c.C = sum > 0xFF
	c.V = sameSign && (c.A^op)&0x80 != 0
}

// sbc implements SBC as ADC of the one's complement of the operand, per
// the source's own trick (carry acts as borrow-in via ~op's low bit
// already being accounted for by ADC's carry-in).
func (c *CPU) sbc(op uint8) {
	c.adc(^op)
}

// compare implements the shared CMP/CPX/CPY semantics: reg and op are
// compared without modifying reg. The subtraction is done in a 16-bit
// field so the N flag can be read off bit 7 of the (possibly negative)
// low byte, exactly as the source does with its typed-int subtraction.
func (c *CPU) compare(reg, op uint8) {
	t := int16(reg) - int16(op)
	c.N = uint8(t)&0x80 != 0
	c.Z = reg == op
	c.C = reg >= op
}

// asl implements ASL: shift left, old bit 7 into carry. Charges the one
// extra internal cycle the real chip spends on the shift itself.
func (c *CPU) asl(op uint8) uint8 {
	c.C = op&0x80 != 0
	result := op << 1
	c.setZN(result)
	c.CyclesRemaining--
	return result
}

// lsr implements LSR: shift right, old bit 0 into carry.
func (c *CPU) lsr(op uint8) uint8 {
	c.C = op&0x01 != 0
	result := op >> 1
	c.setZN(result)
	c.CyclesRemaining--
	return result
}

// rol implements ROL: shift left, old carry into bit 0, old bit 7 into
// carry.
func (c *CPU) rol(op uint8) uint8 {
	newBit0 := uint8(0)
	if c.C {
		newBit0 = 1
	}
	c.C = op&0x80 != 0
	result := (op << 1) | newBit0
	c.setZN(result)
	c.CyclesRemaining--
	return result
}

// ror implements ROR: shift right, old carry into bit 7, old bit 0 into
// carry.
func (c *CPU) ror(op uint8) uint8 {
	oldBit0 := op & 0x01
	result := op >> 1
	if c.C {
		result |= 0x80
	}
	c.C = oldBit0 != 0
	c.setZN(result)
	c.CyclesRemaining--
	return result
}

// incMem reads addr, increments, writes back, and updates Z/N from the new
// value. The increment itself is the one extra internal cycle; the
// surrounding read/write are charged by readByte/writeByte.
func (c *CPU) incMem(addr uint16) {
	v := c.readByte(addr) + 1
	c.CyclesRemaining--
	c.writeByte(addr, v)
	c.setZN(v)
}

// decMem is incMem's mirror for DEC.
func (c *CPU) decMem(addr uint16) {
	v := c.readByte(addr) - 1
	c.CyclesRemaining--
	c.writeByte(addr, v)
	c.setZN(v)
}

// bit implements BIT: Z comes from A&op, N and V come directly from bits 7
// and 6 of the operand - independent of A.
func (c *CPU) bit(op uint8) {
	c.Z = c.A&op == 0
	c.N = op&0x80 != 0
	c.V = op&0x40 != 0
}

// and_, or_, and eor_ implement AND/ORA/EOR against the accumulator.
func (c *CPU) and_(op uint8) {
	c.A &= op
	c.setZN(c.A)
}

func (c *CPU) ora_(op uint8) {
	c.A |= op
	c.setZN(c.A)
}

func (c *CPU) eor_(op uint8) {
	c.A ^= op
	c.setZN(c.A)
}

// rmw reads addr, runs op over the value, and writes the result back -
// the shared shape of ASL/LSR/ROL/ROR/ when targeting memory rather than
// the accumulator.
func (c *CPU) rmw(addr uint16, op func(uint8) uint8) {
	v := c.readByte(addr)
	c.writeByte(addr, op(v))
}
