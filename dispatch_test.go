package m68k

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInstallsTemplates(t *testing.T) {
	set := instructionSet()
	require.Len(t, set, 0x10000)

	// Exact-match entry.
	nop := set[0x4E71]
	assert.Equal(t, Cycles(4), nop.cycles)

	// maskLoBytX: every MOVEQ opcode across all eight x blocks.
	for _, op := range []uint16{0x7000, 0x70FF, 0x7242, 0x7EAA} {
		inst := set[op]
		assert.Equal(t, Cycles(4), inst.cycles, "moveq %04x", op)
	}
	// Bit 8 set is not MOVEQ.
	cpu, _, _ := newTestCore(0x40, 0x71, 0x00)
	cpu.Execute1()
	assert.Equal(t, Group1Exception, cpu.State(), "0x7100 is illegal")
}

func TestGenerateContiguousEarlyOut(t *testing.T) {
	set := instructionSet()
	// maskLoByte: all 256 displacements of BRA share one template.
	for _, op := range []uint16{0x6000, 0x6001, 0x60FF} {
		assert.Equal(t, Cycles(10), set[op].cycles, "bra %04x", op)
	}
}

func TestUnmappedOpcodesAreIllegal(t *testing.T) {
	cpu, bus, _ := newTestCore(0x40, 0x4A, 0xFC)
	bus.pokeLong(uint32(vecIllegalInstruction)*4, 0x2000)
	cpu.Execute1()
	assert.Equal(t, Group1Exception, cpu.State())
}

func TestLineAAndLineFVectors(t *testing.T) {
	cpu, bus, _ := newTestCore(0x40, 0xA0, 0x00)
	bus.pokeLong(uint32(vecUnimplementedLineA)*4, 0x2000)
	cycles := cpu.Execute1()
	assert.Equal(t, Cycles(34), cycles)
	assert.Equal(t, Group2Exception, cpu.State(), "line-A is treated as group 2")
	assert.Equal(t, uint32(0x2000), cpu.PC)

	cpu, bus, _ = newTestCore(0x40, 0xFF, 0xFF)
	bus.pokeLong(uint32(vecUnimplementedLineF)*4, 0x3000)
	cpu.Execute1()
	assert.Equal(t, uint32(0x3000), cpu.PC)
}

func TestLegalOpcodeDensity(t *testing.T) {
	// Musashi counts 54007 implemented opcodes on the 68000; allow a
	// margin for encoding-validity judgment calls at the edges.
	set := instructionSet()
	legal := 0
	for _, inst := range set {
		if !isIllegalHandler(inst) {
			legal++
		}
	}
	assert.Greater(t, legal, 50000)
	assert.Less(t, legal, 58000)
}

func isIllegalHandler(inst instruction) bool {
	cpu, _, _ := newTestCore(0x40)
	cpu.PC = 0x42 // as after fetch
	_, err := inst.handler(cpu)
	_, ok := err.(IllegalInstruction)
	return ok && inst.cycles == 0
}

func TestTemplateMasks(t *testing.T) {
	// Spot-check the mask helper against the documented field layout.
	assert.Equal(t, maskOutXY, eaVariant{2, 0}.mask(true))
	assert.Equal(t, maskOutX, eaVariant{7, 1}.mask(true))
	assert.Equal(t, maskOutY, eaVariant{5, 0}.mask(false))
	assert.Equal(t, maskExact, eaVariant{7, 4}.mask(false))
}

func TestEntryMatchesAreUnique(t *testing.T) {
	seen := make(map[uint16]string)
	for _, e := range optable() {
		key := e.match
		if prev, ok := seen[key]; ok {
			t.Fatalf("entries %q and %q share match %04x", prev, e.name, key)
		}
		seen[key] = e.name
	}
}
