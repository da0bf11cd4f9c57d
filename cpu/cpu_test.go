package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ghandic/sixtwofiveoh/memory"
)

func TestResetState(t *testing.T) {
	c := New(memory.New())
	c.A, c.X, c.Y = 1, 2, 3
	c.SP = 0x42
	c.PC = 0xBEEF
	c.C, c.Z, c.N = true, true, true

	c.Reset()

	if c.A != 0 || c.X != 0 || c.Y != 0 {
		t.Fatalf("registers not cleared after Reset: %s", spew.Sdump(c))
	}
	if c.SP != 0xFF {
		t.Errorf("SP after Reset = %.2X, want FF: %s", c.SP, spew.Sdump(c))
	}
	if c.PC != ResetVector {
		t.Errorf("PC after Reset = %.4X, want %.4X", c.PC, ResetVector)
	}
	if c.C || c.Z || c.I || c.D || c.B || c.U || c.V || c.N {
		t.Errorf("flags not all clear after Reset: %s", spew.Sdump(c))
	}
	for addr := 0; addr < 0x10; addr++ {
		if v := c.Mem.Read(uint16(addr)); v != 0 {
			t.Errorf("memory at %.4X = %.2X after Reset, want 0", addr, v)
		}
	}
}

func TestResetTo(t *testing.T) {
	c := New(memory.New())
	c.ResetTo(0x1234)
	if c.PC != 0x1234 {
		t.Errorf("PC after ResetTo(0x1234) = %.4X, want 1234", c.PC)
	}
}

func TestStatusBytePackUnpack(t *testing.T) {
	c := New(memory.New())
	for _, v := range []uint8{0x00, 0xFF, 0x81, 0x55, 0xAA} {
		c.setStatusByte(v)
		got := c.statusByte()
		if got != v {
			t.Errorf("statusByte round trip for %.2X got %.2X: %s", v, got, spew.Sdump(c))
		}
	}
}

func TestString(t *testing.T) {
	c := New(memory.New())
	if s := c.String(); s == "" {
		t.Error("String() returned empty string")
	}
}
