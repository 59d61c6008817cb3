package m68k

import "fmt"

// logicEntries contributes the dispatch templates for the logic family:
// AND/OR and their immediate forms, EOR/EORI, NOT, TST, TAS and the shift
// and rotate group.
func logicEntries() []opEntry {
	var t []opEntry
	t = append(t, andOrEntries(0xC000, "and", opANDToReg, opANDToEA)...)
	t = append(t, andOrEntries(0x8000, "or", opORToReg, opORToEA)...)
	t = append(t, immediateEntries(0x0200, "andi", opANDI)...)
	t = append(t, immediateEntries(0x0000, "ori", opORI)...)
	t = append(t, eorEntries()...)
	t = append(t, immediateEntries(0x0A00, "eori", opEORI)...)
	t = append(t, negNotClrEntries(0x4600, "not", opNOT)...)
	t = append(t, tstEntries()...)
	t = append(t, tasEntries()...)
	t = append(t, shiftEntries()...)
	return t
}

// andOrEntries covers both directions of AND and OR. An is never a valid
// operand; the destination direction takes memory-alterable EAs only.
func andOrEntries(base uint16, name string, toReg, toEA opHandler) []opEntry {
	var t []opEntry
	for _, s := range sizeBits {
		for _, v := range eaData {
			cycles := Cycles(4) + eaFetchCycles(v.mode, v.reg, s.sz)
			if s.sz == Long {
				if v.isMemory() {
					cycles = 6 + eaFetchCycles(v.mode, v.reg, s.sz)
				} else {
					cycles = 8 + eaFetchCycles(v.mode, v.reg, s.sz)
				}
			}
			t = append(t, opEntry{v.mask(true), base | s.bits<<6 | v.bits(),
				fmt.Sprintf("%s.%s %s,dn", name, s.sz.suffix(), v), cycles, toReg})
		}
		for _, v := range eaMemAlt {
			cycles := Cycles(8) + eaFetchCycles(v.mode, v.reg, s.sz)
			if s.sz == Long {
				cycles = 12 + eaFetchCycles(v.mode, v.reg, s.sz)
			}
			t = append(t, opEntry{v.mask(true), base | (s.bits+4)<<6 | v.bits(),
				fmt.Sprintf("%s.%s dn,%s", name, s.sz.suffix(), v), cycles, toEA})
		}
	}
	return t
}

// eorEntries covers EOR Dn,<ea> (the only direction EOR has).
// Encoding: 1011 xxx1 SSmm myyy
func eorEntries() []opEntry {
	var t []opEntry
	for _, s := range sizeBits {
		for _, v := range eaDataAlt {
			var cycles Cycles
			switch {
			case v.mode == 0 && s.sz == Long:
				cycles = 8
			case v.mode == 0:
				cycles = 4
			case s.sz == Long:
				cycles = 12 + eaFetchCycles(v.mode, v.reg, s.sz)
			default:
				cycles = 8 + eaFetchCycles(v.mode, v.reg, s.sz)
			}
			t = append(t, opEntry{v.mask(true), 0xB000 | (s.bits+4)<<6 | v.bits(),
				fmt.Sprintf("eor.%s dn,%s", s.sz.suffix(), v), cycles, opEOR})
		}
	}
	return t
}

func tstEntries() []opEntry {
	var t []opEntry
	for _, s := range sizeBits {
		for _, v := range eaDataAlt {
			t = append(t, opEntry{v.mask(false), 0x4A00 | s.bits<<6 | v.bits(),
				fmt.Sprintf("tst.%s %s", s.sz.suffix(), v),
				4 + eaFetchCycles(v.mode, v.reg, s.sz), opTST})
		}
	}
	return t
}

func tasEntries() []opEntry {
	var t []opEntry
	for _, v := range eaDataAlt {
		cycles := Cycles(4)
		if v.mode != 0 {
			cycles = 14 + eaFetchCycles(v.mode, v.reg, Byte)
		}
		t = append(t, opEntry{v.mask(false), 0x4AC0 | v.bits(),
			fmt.Sprintf("tas.b %s", v), cycles, opTAS})
	}
	return t
}

// shiftEntries covers ASd/LSd/ROXd/ROd.
// Register form: 1110 cccD SSit tyyy
//
//	ccc = count or count register, D = direction (1 = left)
//	SS = size, i = 0: immediate count, 1: register count
//	tt = type (00 AS, 01 LS, 10 ROX, 11 RO)
//
// Memory form: 1110 0ttD 11mm myyy (word only, count fixed at 1)
func shiftEntries() []opEntry {
	names := [4]string{"as", "ls", "rox", "ro"}
	dirs := [2]string{"r", "l"}
	var t []opEntry
	for dir := uint16(0); dir < 2; dir++ {
		for _, s := range sizeBits {
			cycles := Cycles(6)
			if s.sz == Long {
				cycles = 8
			}
			for ir := uint16(0); ir < 2; ir++ {
				for typ := uint16(0); typ < 4; typ++ {
					t = append(t, opEntry{maskOutXY,
						0xE000 | dir<<8 | s.bits<<6 | ir<<5 | typ<<3,
						fmt.Sprintf("%s%s.%s dn", names[typ], dirs[dir], s.sz.suffix()),
						cycles, opShiftReg})
				}
			}
		}
		for typ := uint16(0); typ < 4; typ++ {
			for _, v := range eaMemAlt {
				t = append(t, opEntry{v.mask(false),
					0xE0C0 | typ<<9 | dir<<8 | v.bits(),
					fmt.Sprintf("%s%s.w %s", names[typ], dirs[dir], v),
					8 + eaFetchCycles(v.mode, v.reg, Word), opShiftMem})
			}
		}
	}
	return t
}

// --- Handlers ---

func opANDToReg(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	sz := sizeField(c.IR >> 6)
	src, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	c.setDataReg(dn, sz, c.aluAnd(sz, c.DAR[dn], s))
	return 0, nil
}

func opANDToEA(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	sz := sizeField(c.IR >> 6)
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluAnd(sz, d, c.DAR[dn]))
}

func opORToReg(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	sz := sizeField(c.IR >> 6)
	src, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	c.setDataReg(dn, sz, c.aluOr(sz, c.DAR[dn], s))
	return 0, nil
}

func opORToEA(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	sz := sizeField(c.IR >> 6)
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluOr(sz, d, c.DAR[dn]))
}

func opANDI(c *CPU) (Cycles, error) {
	sz := sizeField(c.IR >> 6)
	imm, err := c.readImmSized(sz)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluAnd(sz, d, imm))
}

func opORI(c *CPU) (Cycles, error) {
	sz := sizeField(c.IR >> 6)
	imm, err := c.readImmSized(sz)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluOr(sz, d, imm))
}

func opEOR(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	sz := sizeField(c.IR >> 6)
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluEor(sz, d, c.DAR[dn]))
}

func opEORI(c *CPU) (Cycles, error) {
	sz := sizeField(c.IR >> 6)
	imm, err := c.readImmSized(sz)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluEor(sz, d, imm))
}

func opNOT(c *CPU) (Cycles, error) {
	sz := sizeField(c.IR >> 6)
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluNot(sz, d))
}

func opTST(c *CPU) (Cycles, error) {
	sz := sizeField(c.IR >> 6)
	src, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	val, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	c.aluMoveFlags(sz, val)
	return 0, nil
}

func opTAS(c *CPU) (Cycles, error) {
	dst, err := c.resolveEA(c.IR>>3, c.IR, Byte)
	if err != nil {
		return 0, err
	}
	val, err := dst.read(c, Byte)
	if err != nil {
		return 0, err
	}
	c.moveFlags(val, 0)
	// Hosts whose buses cannot complete the read-modify-write cycle may
	// suppress the write phase.
	if dst.kind == eaMemory && !c.allowTASWriteback() {
		return 0, nil
	}
	return 0, dst.write(c, Byte, val|0x80)
}

func opShiftReg(c *CPU) (Cycles, error) {
	cnt := (c.IR >> 9) & 7
	dir := (c.IR >> 8) & 1
	sz := sizeField(c.IR >> 6)
	typ := (c.IR >> 3) & 3
	dy := c.IR & 7

	var count uint32
	if c.IR&0x20 != 0 {
		count = c.DAR[cnt] & 63 // register-sourced count, modulo 64
	} else {
		count = uint32(cnt)
		if count == 0 {
			count = 8
		}
	}

	res := c.aluShift(typ, dir, sz, c.DAR[dy], count)
	c.setDataReg(dy, sz, res)
	return Cycles(2 * count), nil
}

func opShiftMem(c *CPU) (Cycles, error) {
	typ := (c.IR >> 9) & 3
	dir := (c.IR >> 8) & 1
	dst, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	val, err := dst.read(c, Word)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, Word, c.aluShift(typ, dir, Word, val, 1))
}
