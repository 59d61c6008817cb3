package m68k

import (
	"math/bits"
	"sync"
)

// opHandler executes one instruction. The first word is already in c.IR.
// The return value is any cycle cost beyond the dispatch entry's base count
// (shift-count units, taken branches, MOVEM register traffic); exceptional
// outcomes are returned as errors and costed by the executor instead.
type opHandler func(*CPU) (Cycles, error)

// instruction is one slot of the 64K dispatch table: the handler plus the
// documented base cycle count for that exact opcode.
type instruction struct {
	cycles  Cycles
	handler opHandler
}

// opEntry is a dispatch template: every opcode matching
// (opcode & mask) == match is installed with this handler and cycle count.
type opEntry struct {
	mask, match uint16
	name        string
	cycles      Cycles
	handler     opHandler
}

// Template masks. The x field is bits 11-9, the y field bits 2-0.
const (
	maskOutXY  uint16 = 0xf1f8 // ????xxx??????yyy
	maskOutX   uint16 = 0xf1ff // ????xxx?????????
	maskOutY   uint16 = 0xfff8 // ?????????????yyy
	maskExact  uint16 = 0xffff
	maskLoByte uint16 = 0xff00 // ????????bbbbbbbb
	maskLoBytX uint16 = 0xf100 // ????xxx?bbbbbbbb
	maskLo3Nib uint16 = 0xf000 // ????????????????, low three nibbles free
	maskLoNib  uint16 = 0xfff0 // ????????????nnnn
)

var (
	buildOnce sync.Once
	table     []instruction
)

// instructionSet returns the shared 64K dispatch table, building it on
// first use.
func instructionSet() []instruction {
	buildOnce.Do(func() {
		table = generate(optable())
	})
	return table
}

// generate expands the template entries into the dense 64K table. The three
// non-contiguous masks in use (x free, x+y free, low-byte+x free) are
// expanded through a precomputed block-offset table (the x field selects
// one of eight 512-opcode blocks) instead of scanning the whole opcode
// space per entry. The remaining masks cover contiguous runs, scanned with
// an early-out once every matching opcode is installed.
func generate(entries []opEntry) []instruction {
	set := make([]instruction, 0x10000)
	for i := range set {
		set[i] = instruction{handler: opIllegal}
	}

	// Run length under each x block for the non-contiguous masks.
	blockLen := map[uint16]uint32{
		maskOutX:   1,
		maskOutXY:  8,
		maskLoBytX: 256,
	}

	for _, e := range entries {
		inst := instruction{cycles: e.cycles, handler: e.handler}
		if length, ok := blockLen[e.mask]; ok {
			for block := uint32(0); block < 8; block++ {
				base := uint32(e.match) + block*512
				for off := uint32(0); off < length; off++ {
					set[base+off] = inst
				}
			}
			continue
		}
		max := 1 << bits.OnesCount16(^e.mask)
		installed := 0
		for op := uint32(e.match); op < 0x10000; op++ {
			if uint16(op)&e.mask == e.match {
				set[op] = inst
				installed++
				if installed >= max {
					break
				}
			}
		}
	}
	return set
}

// optable gathers the template entries contributed by each handler family.
func optable() []opEntry {
	var t []opEntry
	t = append(t, unimplementedEntries()...)
	t = append(t, arithEntries()...)
	t = append(t, logicEntries()...)
	t = append(t, moveEntries()...)
	t = append(t, branchEntries()...)
	t = append(t, ctrlEntries()...)
	t = append(t, bitEntries()...)
	t = append(t, bcdEntries()...)
	return t
}

// unimplementedEntries maps the line-A and line-F regions to their
// dedicated vectors. Everything else unmapped stays on the illegal handler.
func unimplementedEntries() []opEntry {
	return []opEntry{
		{maskLo3Nib, 0xA000, "unimplemented line-a", 0, opUnimplementedLineA},
		{maskLo3Nib, 0xF000, "unimplemented line-f", 0, opUnimplementedLineF},
	}
}

func opIllegal(c *CPU) (Cycles, error) {
	return 0, IllegalInstruction{IR: c.IR, PC: c.PC - 2}
}

func opUnimplementedLineA(c *CPU) (Cycles, error) {
	return 0, UnimplementedInstruction{IR: c.IR, PC: c.PC - 2, Vector: vecUnimplementedLineA}
}

func opUnimplementedLineF(c *CPU) (Cycles, error) {
	return 0, UnimplementedInstruction{IR: c.IR, PC: c.PC - 2, Vector: vecUnimplementedLineF}
}

// --- Effective-address variants for entry generation ---

// eaVariant identifies one of the twelve addressing modes as it appears in
// a standard 6-bit EA field.
type eaVariant struct {
	mode, reg uint16
}

// bits returns the EA field value for this variant (reg meaningful only in
// mode 7).
func (v eaVariant) bits() uint16 {
	return v.mode<<3 | v.reg
}

// mask builds the template mask for an opcode whose low bits hold this EA:
// the y register bits are free for modes 0-6, fixed for the mode-7 variants.
// hasX additionally frees the x register field.
func (v eaVariant) mask(hasX bool) uint16 {
	m := maskExact
	if v.mode < 7 {
		m &^= 0x0007
	}
	if hasX {
		m &^= 0x0e00
	}
	return m
}

func (v eaVariant) isAn() bool {
	return v.mode == 1
}

func (v eaVariant) isImm() bool {
	return v.mode == 7 && v.reg == 4
}

// isMemory reports whether the variant performs a memory access (anything
// but register direct and immediate).
func (v eaVariant) isMemory() bool {
	return v.mode >= 2 && !v.isImm()
}

func (v eaVariant) String() string {
	switch v.mode {
	case 0:
		return "dn"
	case 1:
		return "an"
	case 2:
		return "ai"
	case 3:
		return "pi"
	case 4:
		return "pd"
	case 5:
		return "di"
	case 6:
		return "ix"
	default:
		switch v.reg {
		case 0:
			return "aw"
		case 1:
			return "al"
		case 2:
			return "pcdi"
		case 3:
			return "pcix"
		default:
			return "imm"
		}
	}
}

// Addressing-mode classes, named after the M68000UM groupings.
var (
	// All twelve modes.
	eaAll = []eaVariant{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0},
		{7, 0}, {7, 1}, {7, 2}, {7, 3}, {7, 4},
	}
	// Data addressing: everything but An.
	eaData = []eaVariant{
		{0, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0},
		{7, 0}, {7, 1}, {7, 2}, {7, 3}, {7, 4},
	}
	// Memory alterable: writable memory destinations.
	eaMemAlt = []eaVariant{
		{2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {7, 1},
	}
	// Data alterable: memory alterable plus Dn.
	eaDataAlt = []eaVariant{
		{0, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {7, 1},
	}
	// Control: modes with a computable address and no side effect.
	eaControl = []eaVariant{
		{2, 0}, {5, 0}, {6, 0}, {7, 0}, {7, 1}, {7, 2}, {7, 3},
	}
	// Control alterable: control minus the PC-relative modes.
	eaControlAlt = []eaVariant{
		{2, 0}, {5, 0}, {6, 0}, {7, 0}, {7, 1},
	}
)

// sizeBits pairs a Size with its standard bits 7-6 encoding.
var sizeBits = []struct {
	bits uint16
	sz   Size
}{
	{0, Byte},
	{1, Word},
	{2, Long},
}
