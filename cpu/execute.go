package cpu

// Execute runs the decode/execute loop until at least n cycles have been
// spent, then returns the actual number of cycles consumed - which may be
// larger than n, since an instruction already in flight always runs to
// completion. A negative n is treated as zero. Execute stops early and
// returns an UnsupportedOpcodeError if it decodes a byte that isn't one of
// the 151 documented opcodes; the CPU is left with PC one past that byte.
// An InvalidCPUStateError raised by an instruction (ADC/SBC with D set) is
// recovered and returned as the error instead of escaping as a panic.
func (c *CPU) Execute(n int32) (used int32, err error) {
	if n < 0 {
		n = 0
	}
	c.CyclesRemaining = n
	defer func() {
		if r := recover(); r != nil {
			ierr, ok := r.(InvalidCPUStateError)
			if !ok {
				panic(r)
			}
			used, err = n-c.CyclesRemaining, ierr
		}
	}()
	for c.CyclesRemaining > 0 {
		op := c.fetchByte()
		if err := c.dispatch(op); err != nil {
			return n - c.CyclesRemaining, err
		}
	}
	return n - c.CyclesRemaining, nil
}

// dispatch decodes and runs a single instruction given its opcode byte,
// which fetchByte has already consumed. It returns UnsupportedOpcodeError
// for any byte outside the 151 documented opcodes - illegal/undocumented
// opcodes are not emulated.
func (c *CPU) dispatch(op uint8) error {
	opPC := c.PC - 1
	switch op {

	// LDA
	case 0xA9:
		c.loadRegister(&c.A, c.fetchByte()) // LDA #i
	case 0xA5:
		c.loadRegister(&c.A, c.readByte(c.zeroPage())) // LDA d
	case 0xB5:
		c.loadRegister(&c.A, c.readByte(c.zeroPageX())) // LDA d,x
	case 0xAD:
		c.loadRegister(&c.A, c.readByte(c.absolute())) // LDA a
	case 0xBD:
		c.loadRegister(&c.A, c.readByte(c.absoluteIndexed(c.X, false))) // LDA a,x
	case 0xB9:
		c.loadRegister(&c.A, c.readByte(c.absoluteIndexed(c.Y, false))) // LDA a,y
	case 0xA1:
		c.loadRegister(&c.A, c.readByte(c.indirectX())) // LDA (d,x)
	case 0xB1:
		c.loadRegister(&c.A, c.readByte(c.indirectY(false))) // LDA (d),y

	// LDX
	case 0xA2:
		c.loadRegister(&c.X, c.fetchByte()) // LDX #i
	case 0xA6:
		c.loadRegister(&c.X, c.readByte(c.zeroPage())) // LDX d
	case 0xB6:
		c.loadRegister(&c.X, c.readByte(c.zeroPageY())) // LDX d,y
	case 0xAE:
		c.loadRegister(&c.X, c.readByte(c.absolute())) // LDX a
	case 0xBE:
		c.loadRegister(&c.X, c.readByte(c.absoluteIndexed(c.Y, false))) // LDX a,y

	// LDY
	case 0xA0:
		c.loadRegister(&c.Y, c.fetchByte()) // LDY #i
	case 0xA4:
		c.loadRegister(&c.Y, c.readByte(c.zeroPage())) // LDY d
	case 0xB4:
		c.loadRegister(&c.Y, c.readByte(c.zeroPageX())) // LDY d,x
	case 0xAC:
		c.loadRegister(&c.Y, c.readByte(c.absolute())) // LDY a
	case 0xBC:
		c.loadRegister(&c.Y, c.readByte(c.absoluteIndexed(c.X, false))) // LDY a,x

	// STA
	case 0x85:
		c.writeByte(c.zeroPage(), c.A) // STA d
	case 0x95:
		c.writeByte(c.zeroPageX(), c.A) // STA d,x
	case 0x8D:
		c.writeByte(c.absolute(), c.A) // STA a
	case 0x9D:
		c.writeByte(c.absoluteIndexed(c.X, true), c.A) // STA a,x
	case 0x99:
		c.writeByte(c.absoluteIndexed(c.Y, true), c.A) // STA a,y
	case 0x81:
		c.writeByte(c.indirectX(), c.A) // STA (d,x)
	case 0x91:
		c.writeByte(c.indirectY(true), c.A) // STA (d),y

	// STX / STY
	case 0x86:
		c.writeByte(c.zeroPage(), c.X) // STX d
	case 0x96:
		c.writeByte(c.zeroPageY(), c.X) // STX d,y
	case 0x8E:
		c.writeByte(c.absolute(), c.X) // STX a
	case 0x84:
		c.writeByte(c.zeroPage(), c.Y) // STY d
	case 0x94:
		c.writeByte(c.zeroPageX(), c.Y) // STY d,x
	case 0x8C:
		c.writeByte(c.absolute(), c.Y) // STY a

	// AND
	case 0x29:
		c.and_(c.fetchByte())
	case 0x25:
		c.and_(c.readByte(c.zeroPage()))
	case 0x35:
		c.and_(c.readByte(c.zeroPageX()))
	case 0x2D:
		c.and_(c.readByte(c.absolute()))
	case 0x3D:
		c.and_(c.readByte(c.absoluteIndexed(c.X, false)))
	case 0x39:
		c.and_(c.readByte(c.absoluteIndexed(c.Y, false)))
	case 0x21:
		c.and_(c.readByte(c.indirectX()))
	case 0x31:
		c.and_(c.readByte(c.indirectY(false)))

	// ORA
	case 0x09:
		c.ora_(c.fetchByte())
	case 0x05:
		c.ora_(c.readByte(c.zeroPage()))
	case 0x15:
		c.ora_(c.readByte(c.zeroPageX()))
	case 0x0D:
		c.ora_(c.readByte(c.absolute()))
	case 0x1D:
		c.ora_(c.readByte(c.absoluteIndexed(c.X, false)))
	case 0x19:
		c.ora_(c.readByte(c.absoluteIndexed(c.Y, false)))
	case 0x01:
		c.ora_(c.readByte(c.indirectX()))
	case 0x11:
		c.ora_(c.readByte(c.indirectY(false)))

	// EOR
	case 0x49:
		c.eor_(c.fetchByte())
	case 0x45:
		c.eor_(c.readByte(c.zeroPage()))
	case 0x55:
		c.eor_(c.readByte(c.zeroPageX()))
	case 0x4D:
		c.eor_(c.readByte(c.absolute()))
	case 0x5D:
		c.eor_(c.readByte(c.absoluteIndexed(c.X, false)))
	case 0x59:
		c.eor_(c.readByte(c.absoluteIndexed(c.Y, false)))
	case 0x41:
		c.eor_(c.readByte(c.indirectX()))
	case 0x51:
		c.eor_(c.readByte(c.indirectY(false)))

	// BIT
	case 0x24:
		c.bit(c.readByte(c.zeroPage()))
	case 0x2C:
		c.bit(c.readByte(c.absolute()))

	// ADC / SBC
	case 0x69:
		c.adc(c.fetchByte())
	case 0x65:
		c.adc(c.readByte(c.zeroPage()))
	case 0x75:
		c.adc(c.readByte(c.zeroPageX()))
	case 0x6D:
		c.adc(c.readByte(c.absolute()))
	case 0x7D:
		c.adc(c.readByte(c.absoluteIndexed(c.X, false)))
	case 0x79:
		c.adc(c.readByte(c.absoluteIndexed(c.Y, false)))
	case 0x61:
		c.adc(c.readByte(c.indirectX()))
	case 0x71:
		c.adc(c.readByte(c.indirectY(false)))
	case 0xE9:
		c.sbc(c.fetchByte())
	case 0xE5:
		c.sbc(c.readByte(c.zeroPage()))
	case 0xF5:
		c.sbc(c.readByte(c.zeroPageX()))
	case 0xED:
		c.sbc(c.readByte(c.absolute()))
	case 0xFD:
		c.sbc(c.readByte(c.absoluteIndexed(c.X, false)))
	case 0xF9:
		c.sbc(c.readByte(c.absoluteIndexed(c.Y, false)))
	case 0xE1:
		c.sbc(c.readByte(c.indirectX()))
	case 0xF1:
		c.sbc(c.readByte(c.indirectY(false)))

	// CMP / CPX / CPY
	case 0xC9:
		c.compare(c.A, c.fetchByte())
	case 0xC5:
		c.compare(c.A, c.readByte(c.zeroPage()))
	case 0xD5:
		c.compare(c.A, c.readByte(c.zeroPageX()))
	case 0xCD:
		c.compare(c.A, c.readByte(c.absolute()))
	case 0xDD:
		c.compare(c.A, c.readByte(c.absoluteIndexed(c.X, false)))
	case 0xD9:
		c.compare(c.A, c.readByte(c.absoluteIndexed(c.Y, false)))
	case 0xC1:
		c.compare(c.A, c.readByte(c.indirectX()))
	case 0xD1:
		c.compare(c.A, c.readByte(c.indirectY(false)))
	case 0xE0:
		c.compare(c.X, c.fetchByte())
	case 0xE4:
		c.compare(c.X, c.readByte(c.zeroPage()))
	case 0xEC:
		c.compare(c.X, c.readByte(c.absolute()))
	case 0xC0:
		c.compare(c.Y, c.fetchByte())
	case 0xC4:
		c.compare(c.Y, c.readByte(c.zeroPage()))
	case 0xCC:
		c.compare(c.Y, c.readByte(c.absolute()))

	// ASL
	case 0x0A:
		c.A = c.asl(c.A)
	case 0x06:
		a := c.zeroPage()
		c.rmw(a, c.asl)
	case 0x16:
		a := c.zeroPageX()
		c.rmw(a, c.asl)
	case 0x0E:
		a := c.absolute()
		c.rmw(a, c.asl)
	case 0x1E:
		a := c.absoluteIndexed(c.X, true)
		c.rmw(a, c.asl)

	// LSR
	case 0x4A:
		c.A = c.lsr(c.A)
	case 0x46:
		a := c.zeroPage()
		c.rmw(a, c.lsr)
	case 0x56:
		a := c.zeroPageX()
		c.rmw(a, c.lsr)
	case 0x4E:
		a := c.absolute()
		c.rmw(a, c.lsr)
	case 0x5E:
		a := c.absoluteIndexed(c.X, true)
		c.rmw(a, c.lsr)

	// ROL
	case 0x2A:
		c.A = c.rol(c.A)
	case 0x26:
		a := c.zeroPage()
		c.rmw(a, c.rol)
	case 0x36:
		a := c.zeroPageX()
		c.rmw(a, c.rol)
	case 0x2E:
		a := c.absolute()
		c.rmw(a, c.rol)
	case 0x3E:
		a := c.absoluteIndexed(c.X, true)
		c.rmw(a, c.rol)

	// ROR
	case 0x6A:
		c.A = c.ror(c.A)
	case 0x66:
		a := c.zeroPage()
		c.rmw(a, c.ror)
	case 0x76:
		a := c.zeroPageX()
		c.rmw(a, c.ror)
	case 0x6E:
		a := c.absolute()
		c.rmw(a, c.ror)
	case 0x7E:
		a := c.absoluteIndexed(c.X, true)
		c.rmw(a, c.ror)

	// INC / DEC
	case 0xE6:
		c.incMem(c.zeroPage())
	case 0xF6:
		c.incMem(c.zeroPageX())
	case 0xEE:
		c.incMem(c.absolute())
	case 0xFE:
		c.incMem(c.absoluteIndexed(c.X, true))
	case 0xC6:
		c.decMem(c.zeroPage())
	case 0xD6:
		c.decMem(c.zeroPageX())
	case 0xCE:
		c.decMem(c.absolute())
	case 0xDE:
		c.decMem(c.absoluteIndexed(c.X, true))

	// INX/INY/DEX/DEY
	case 0xE8:
		c.inx()
	case 0xC8:
		c.iny()
	case 0xCA:
		c.dex()
	case 0x88:
		c.dey()

	// Branches
	case 0xF0:
		c.beq()
	case 0xD0:
		c.bne()
	case 0xB0:
		c.bcs()
	case 0x90:
		c.bcc()
	case 0x30:
		c.bmi()
	case 0x10:
		c.bpl()
	case 0x70:
		c.bvs()
	case 0x50:
		c.bvc()

	// JMP / JSR / RTS / BRK / RTI
	case 0x4C:
		c.jmp()
	case 0x6C:
		c.jmpIndirect()
	case 0x20:
		c.jsr()
	case 0x60:
		c.rts()
	case 0x00:
		c.brk()
	case 0x40:
		c.rti()

	// Transfers
	case 0xAA:
		c.tax()
	case 0xA8:
		c.tay()
	case 0x8A:
		c.txa()
	case 0x98:
		c.tya()
	case 0xBA:
		c.tsx()
	case 0x9A:
		c.txs()

	// Stack
	case 0x48:
		c.pha()
	case 0x68:
		c.pla()
	case 0x08:
		c.php()
	case 0x28:
		c.plp()

	// Flags
	case 0x18:
		c.clc()
	case 0x38:
		c.sec()
	case 0xD8:
		c.cld()
	case 0xF8:
		c.sed()
	case 0x58:
		c.cli()
	case 0x78:
		c.sei()
	case 0xB8:
		c.clv()

	// NOP
	case 0xEA:
		c.nop()

	default:
		return UnsupportedOpcodeError{Opcode: op, PC: opPC}
	}
	return nil
}
