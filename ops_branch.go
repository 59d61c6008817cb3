package m68k

import "fmt"

// condNames indexes the sixteen condition mnemonics by their encoding.
var condNames = [16]string{
	"t", "f", "hi", "ls", "cc", "cs", "ne", "eq",
	"vc", "vs", "pl", "mi", "ge", "lt", "gt", "le",
}

// branchEntries contributes the dispatch templates for the flow-control
// family: Bcc/BRA/BSR, DBcc, Scc, JMP/JSR and the subroutine returns.
func branchEntries() []opEntry {
	var t []opEntry

	// BRA/BSR/Bcc: 0110 cccc dddddddd; displacement 0 selects a 16-bit
	// extension word. Base count is the not-taken byte-form cost; the handler
	// pays the difference for taken branches and the word not-taken form.
	t = append(t,
		opEntry{maskLoByte, 0x6000, "bra", 10, opBRA},
		opEntry{maskLoByte, 0x6100, "bsr", 18, opBSR})
	for cc := uint16(2); cc < 16; cc++ {
		t = append(t, opEntry{maskLoByte, 0x6000 | cc<<8,
			fmt.Sprintf("b%s", condNames[cc]), 8, opBcc})
	}

	// DBcc Dn,d16: 0101 cccc 1100 1yyy
	for cc := uint16(0); cc < 16; cc++ {
		t = append(t, opEntry{maskOutY, 0x50C8 | cc<<8,
			fmt.Sprintf("db%s dn", condNames[cc]), 10, opDBcc})
	}

	// Scc <ea>: 0101 cccc 11mm myyy
	for cc := uint16(0); cc < 16; cc++ {
		for _, v := range eaDataAlt {
			cycles := Cycles(4)
			if v.mode != 0 {
				cycles = 8 + eaFetchCycles(v.mode, v.reg, Byte)
			}
			t = append(t, opEntry{v.mask(false), 0x50C0 | cc<<8 | v.bits(),
				fmt.Sprintf("s%s %s", condNames[cc], v), cycles, opScc})
		}
	}

	// JMP/JSR <ea>: 0100 1110 11mm myyy / 0100 1110 10mm myyy.
	// d8(An,Xn) is 14 per the MC68000 user manual.
	jmpCycles := map[string]Cycles{"ai": 8, "di": 10, "ix": 14, "aw": 10, "al": 12, "pcdi": 10, "pcix": 14}
	for _, v := range eaControl {
		t = append(t,
			opEntry{v.mask(false), 0x4EC0 | v.bits(),
				fmt.Sprintf("jmp %s", v), jmpCycles[v.String()], opJMP},
			opEntry{v.mask(false), 0x4E80 | v.bits(),
				fmt.Sprintf("jsr %s", v), jmpCycles[v.String()] + 8, opJSR})
	}

	t = append(t,
		opEntry{maskExact, 0x4E75, "rts", 16, opRTS},
		opEntry{maskExact, 0x4E73, "rte", 20, opRTE},
		opEntry{maskExact, 0x4E77, "rtr", 20, opRTR})
	return t
}

// --- Handlers ---

// branchDisp reads the branch displacement: the low opcode byte, or a
// 16-bit extension word when the byte is zero. base is the PC the
// displacement is relative to (instruction address + 2).
func (c *CPU) branchDisp() (base uint32, disp int32, short bool, err error) {
	base = c.PC
	disp = int32(int8(c.IR))
	short = disp != 0
	if !short {
		ext, err := c.readImmWord()
		if err != nil {
			return 0, 0, false, err
		}
		disp = int32(int16(ext))
	}
	return base, disp, short, nil
}

func opBRA(c *CPU) (Cycles, error) {
	base, disp, _, err := c.branchDisp()
	if err != nil {
		return 0, err
	}
	c.PC = base + uint32(disp)
	return 0, nil
}

func opBSR(c *CPU) (Cycles, error) {
	base, disp, _, err := c.branchDisp()
	if err != nil {
		return 0, err
	}
	if err := c.pushLong(c.PC); err != nil {
		return 0, err
	}
	c.PC = base + uint32(disp)
	return 0, nil
}

func opBcc(c *CPU) (Cycles, error) {
	base, disp, short, err := c.branchDisp()
	if err != nil {
		return 0, err
	}
	if c.testCondition((c.IR >> 8) & 0xf) {
		c.PC = base + uint32(disp)
		return 2, nil // taken: 10
	}
	if short {
		return 0, nil // not taken, byte form: 8
	}
	return 4, nil // not taken, word form: 12
}

func opDBcc(c *CPU) (Cycles, error) {
	dn := c.IR & 7
	disp, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	if c.testCondition((c.IR >> 8) & 0xf) {
		return 2, nil // condition true: no decrement, 12 cycles
	}
	count := uint16(c.DAR[dn]) - 1
	c.setDataReg(dn, Word, uint32(count))
	if count == 0xffff {
		return 4, nil // counter expired: fall through, 14 cycles
	}
	c.PC = c.PC - 2 + uint32(int32(int16(disp)))
	return 0, nil // branch taken: 10 cycles
}

func opScc(c *CPU) (Cycles, error) {
	dst, err := c.resolveEA(c.IR>>3, c.IR, Byte)
	if err != nil {
		return 0, err
	}
	var extra Cycles
	val := uint32(0x00)
	if c.testCondition((c.IR >> 8) & 0xf) {
		val = 0xff
		if dst.kind == eaDataReg {
			extra = 2 // register destination: 6 when true, 4 when false
		}
	}
	return extra, dst.write(c, Byte, val)
}

func opJMP(c *CPU) (Cycles, error) {
	dst, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	c.PC = dst.address()
	return 0, nil
}

func opJSR(c *CPU) (Cycles, error) {
	dst, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	if err := c.pushLong(c.PC); err != nil {
		return 0, err
	}
	c.PC = dst.address()
	return 0, nil
}

func opRTS(c *CPU) (Cycles, error) {
	pc, err := c.popLong()
	if err != nil {
		return 0, err
	}
	c.PC = pc
	return 0, nil
}

// opRTE restores the stacked SR and PC and resumes normal processing.
func opRTE(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	sr, err := c.popWord()
	if err != nil {
		return 0, err
	}
	pc, err := c.popLong()
	if err != nil {
		return 0, err
	}
	c.PC = pc
	c.SetStatusRegister(sr)
	c.state = Normal
	return 0, nil
}

func opRTR(c *CPU) (Cycles, error) {
	ccr, err := c.popWord()
	if err != nil {
		return 0, err
	}
	pc, err := c.popLong()
	if err != nil {
		return 0, err
	}
	c.PC = pc
	c.SetConditionCodeRegister(ccr)
	return 0, nil
}
