package cpu

import (
	"testing"

	"github.com/ghandic/sixtwofiveoh/memory"
)

func TestBranchNotTakenCostsOneCycle(t *testing.T) {
	c := New(memory.New())
	c.ResetTo(0x2000)
	c.Mem.Write(0x2000, 0x05)
	c.CyclesRemaining = 5

	before := c.CyclesRemaining
	c.branch(false)
	if c.PC != 0x2001 {
		t.Errorf("PC after not-taken branch = %.4X, want 2001 (operand consumed, no jump)", c.PC)
	}
	if before-c.CyclesRemaining != 1 {
		t.Errorf("cycles charged for not-taken branch = %d, want 1", before-c.CyclesRemaining)
	}
}

func TestBranchTakenSamePage(t *testing.T) {
	c := New(memory.New())
	c.ResetTo(0x2000)
	c.Mem.Write(0x2000, 0x05)
	c.CyclesRemaining = 5

	before := c.CyclesRemaining
	c.branch(true)
	if c.PC != 0x2006 {
		t.Errorf("PC after taken branch = %.4X, want 2006", c.PC)
	}
	if before-c.CyclesRemaining != 2 {
		t.Errorf("cycles charged = %d, want 2 (fetch + taken)", before-c.CyclesRemaining)
	}
}

func TestBranchTakenPageCross(t *testing.T) {
	c := New(memory.New())
	c.ResetTo(0x20F0)
	c.Mem.Write(0x20F0, 0x20) // +32 crosses into page 21
	c.CyclesRemaining = 5

	before := c.CyclesRemaining
	c.branch(true)
	if c.PC != 0x2111 {
		t.Errorf("PC after crossing branch = %.4X, want 2111", c.PC)
	}
	if before-c.CyclesRemaining != 3 {
		t.Errorf("cycles charged = %d, want 3 (fetch + taken + page cross)", before-c.CyclesRemaining)
	}
}

func TestBranchNegativeOffset(t *testing.T) {
	c := New(memory.New())
	c.ResetTo(0x2010)
	c.Mem.Write(0x2010, 0xFE) // -2
	c.CyclesRemaining = 5

	c.branch(true)
	if c.PC != 0x200F {
		t.Errorf("PC after -2 branch from 2011 = %.4X, want 200F", c.PC)
	}
}

func TestConditionalBranchHelpers(t *testing.T) {
	c := New(memory.New())
	c.ResetTo(0x3000)
	c.Mem.Write(0x3000, 0x01)
	c.Z = true
	c.CyclesRemaining = 5
	c.beq()
	if c.PC != 0x3002 {
		t.Errorf("beq with Z set did not branch: PC=%.4X", c.PC)
	}
}
