package m68k

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ccCase pins one row of the condition-code truth table: which of the
// sixteen conditions hold for a given CCR value.
type ccCase struct {
	ccr  uint16
	want [16]bool
}

func TestConditionTable(t *testing.T) {
	const (
		ccT = iota
		ccF
		ccHI
		ccLS
		ccCC
		ccCS
		ccNE
		ccEQ
		ccVC
		ccVS
		ccPL
		ccMI
		ccGE
		ccLT
		ccGT
		ccLE
	)

	cases := []ccCase{
		// ---- X N Z V C = 00000
		{0x00, [16]bool{
			ccT: true, ccHI: true, ccCC: true, ccNE: true,
			ccVC: true, ccPL: true, ccGE: true, ccGT: true,
		}},
		// C set: low
		{0x01, [16]bool{
			ccT: true, ccLS: true, ccCS: true, ccNE: true,
			ccVC: true, ccPL: true, ccGE: true, ccGT: true,
		}},
		// Z set: equal
		{0x04, [16]bool{
			ccT: true, ccLS: true, ccCC: true, ccEQ: true,
			ccVC: true, ccPL: true, ccGE: true, ccLE: true,
		}},
		// N set: minus, less-than
		{0x08, [16]bool{
			ccT: true, ccHI: true, ccCC: true, ccNE: true,
			ccVC: true, ccMI: true, ccLT: true, ccLE: true,
		}},
		// V set: overflow, and N==V decides the signed orderings
		{0x02, [16]bool{
			ccT: true, ccHI: true, ccCC: true, ccNE: true,
			ccVS: true, ccPL: true, ccLT: true, ccLE: true,
		}},
		// N and V both set: greater-or-equal again
		{0x0A, [16]bool{
			ccT: true, ccHI: true, ccCC: true, ccNE: true,
			ccVS: true, ccMI: true, ccGE: true, ccGT: true,
		}},
		// N, Z set: LT and LE, not GT
		{0x0C, [16]bool{
			ccT: true, ccLS: true, ccCC: true, ccEQ: true,
			ccVC: true, ccMI: true, ccLT: true, ccLE: true,
		}},
	}

	cpu, _, _ := newTestCore(0)
	for _, tc := range cases {
		cpu.SetStatusRegister(0x2700 | tc.ccr)
		for cc := uint16(0); cc < 16; cc++ {
			got := cpu.testCondition(cc)
			if got != tc.want[cc] {
				t.Errorf("ccr=%02x cond %s: got %v, want %v",
					tc.ccr, condNames[cc], got, tc.want[cc])
			}
		}
	}
}

func TestConditionsDeriveFromInternalSlots(t *testing.T) {
	// The conditions must see flag updates made by the ALU primitives, not
	// just by SR writes.
	cpu, _, _ := newTestCore(0)

	cpu.sub8(5, 7) // borrow, negative
	assert.True(t, cpu.testCondition(5), "CS after borrow")
	assert.True(t, cpu.testCondition(11), "MI after negative result")
	assert.True(t, cpu.testCondition(13), "LT: N != V")

	cpu.sub8(7, 7)
	assert.True(t, cpu.testCondition(7), "EQ after zero result")
	assert.True(t, cpu.testCondition(4), "CC, no borrow")

	cpu.add8(0x7f, 1) // signed overflow
	assert.True(t, cpu.testCondition(9), "VS after overflow")
	assert.True(t, cpu.testCondition(12), "GE: N and V both set")
}

func TestSupervisorBitReadback(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	cpu.SetStatusRegister(0x2000)
	assert.True(t, cpu.supervisor())
	assert.Equal(t, uint16(0x2000), cpu.StatusRegister()&0x2000)

	cpu.SetStatusRegister(0x0000)
	assert.False(t, cpu.supervisor())
}

func TestReservedBitsMasked(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	cpu.SetStatusRegister(0xFFFF)
	assert.Equal(t, uint16(0xA71F), cpu.StatusRegister())
	cpu.SetStatusRegister(0x58E0) // only reserved bits
	assert.Equal(t, uint16(0x0000), cpu.StatusRegister())
}

func TestXFlagAs1(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	cpu.SetStatusRegister(0x2710)
	assert.Equal(t, uint32(1), cpu.xFlagAs1())
	cpu.SetStatusRegister(0x2700)
	assert.Equal(t, uint32(0), cpu.xFlagAs1())
}
