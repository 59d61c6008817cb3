package m68k

import "fmt"

// arithEntries contributes the dispatch templates for the arithmetic
// family: ADD/SUB and their address/immediate/quick/extend forms, CMP,
// multiply, divide, negate, CLR, EXT and CHK.
func arithEntries() []opEntry {
	var t []opEntry
	t = append(t, addSubEntries(0xD000, "add", opADDToReg, opADDToEA)...)
	t = append(t, addSubEntries(0x9000, "sub", opSUBToReg, opSUBToEA)...)
	t = append(t, addaSubaEntries(0xD000, "adda", opADDA)...)
	t = append(t, addaSubaEntries(0x9000, "suba", opSUBA)...)
	t = append(t, immediateEntries(0x0600, "addi", opADDI)...)
	t = append(t, immediateEntries(0x0400, "subi", opSUBI)...)
	t = append(t, quickEntries(0x5000, "addq", opADDQ)...)
	t = append(t, quickEntries(0x5100, "subq", opSUBQ)...)
	t = append(t, extendEntries(0xD100, "addx", opADDXReg, opADDXMem)...)
	t = append(t, extendEntries(0x9100, "subx", opSUBXReg, opSUBXMem)...)
	t = append(t, cmpEntries()...)
	t = append(t, mulDivEntries()...)
	t = append(t, negNotClrEntries(0x4400, "neg", opNEG)...)
	t = append(t, negNotClrEntries(0x4000, "negx", opNEGX)...)
	t = append(t, negNotClrEntries(0x4200, "clr", opCLR)...)
	t = append(t, extEntries()...)
	t = append(t, chkEntries()...)
	return t
}

// addSubEntries covers both directions of ADD and SUB.
// Encoding: oooo xxxO SSmm myyy, O=0 <ea>,Dx  O=1 Dx,<ea>
func addSubEntries(base uint16, name string, toReg, toEA opHandler) []opEntry {
	var t []opEntry
	for _, s := range sizeBits {
		for _, v := range eaAll {
			if v.isAn() && s.sz == Byte {
				continue
			}
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

// addaSubaEntries covers the address-destination forms.
// Encoding: oooo xxxS 11mm myyy, S=0 word S=1 long (opmode 011/111)
func addaSubaEntries(base uint16, name string, h opHandler) []opEntry {
	var t []opEntry
	for _, szBit := range []uint16{3, 7} {
		sz := Word
		if szBit == 7 {
			sz = Long
		}
		for _, v := range eaAll {
			cycles := Cycles(8) + eaFetchCycles(v.mode, v.reg, sz)
			if sz == Long && v.isMemory() {
				cycles = 6 + eaFetchCycles(v.mode, v.reg, sz)
			}
			t = append(t, opEntry{v.mask(true), base | szBit<<6 | v.bits(),
				fmt.Sprintf("%s.%s %s,an", name, sz.suffix(), v), cycles, h})
		}
	}
	return t
}

// immediateEntries covers ADDI/SUBI (and, reused, the immediate logic
// forms): data alterable destinations only.
func immediateEntries(base uint16, name string, h opHandler) []opEntry {
	var t []opEntry
	for _, s := range sizeBits {
		for _, v := range eaDataAlt {
			var cycles Cycles
			switch {
			case v.mode == 0 && s.sz == Long:
				cycles = 16
			case v.mode == 0:
				cycles = 8
			case s.sz == Long:
				cycles = 20 + eaFetchCycles(v.mode, v.reg, s.sz)
			default:
				cycles = 12 + eaFetchCycles(v.mode, v.reg, s.sz)
			}
			t = append(t, opEntry{v.mask(false), base | s.bits<<6 | v.bits(),
				fmt.Sprintf("%s.%s #,%s", name, s.sz.suffix(), v), cycles, h})
		}
	}
	return t
}

// quickEntries covers ADDQ/SUBQ. The x field holds the quick data.
func quickEntries(base uint16, name string, h opHandler) []opEntry {
	var t []opEntry
	for _, s := range sizeBits {
		for _, v := range eaAll {
			if v.mode > 6 && v.reg > 1 {
				continue // alterable only
			}
			if v.isAn() && s.sz == Byte {
				continue
			}
			var cycles Cycles
			switch {
			case v.isAn():
				cycles = 8
			case v.mode == 0 && s.sz == Long:
				cycles = 8
			case v.mode == 0:
				cycles = 4
			case s.sz == Long:
				cycles = 12 + eaFetchCycles(v.mode, v.reg, s.sz)
			default:
				cycles = 8 + eaFetchCycles(v.mode, v.reg, s.sz)
			}
			t = append(t, opEntry{v.mask(true), base | s.bits<<6 | v.bits(),
				fmt.Sprintf("%s.%s #,%s", name, s.sz.suffix(), v), cycles, h})
		}
	}
	return t
}

// extendEntries covers the ADDX/SUBX pairs.
// Encoding: oooo xxx1 SS00 Ryyy, R=0 Dy,Dx  R=1 -(Ay),-(Ax)
func extendEntries(base uint16, name string, rr, mm opHandler) []opEntry {
	var t []opEntry
	for _, s := range sizeBits {
		rrCycles, mmCycles := Cycles(4), Cycles(18)
		if s.sz == Long {
			rrCycles, mmCycles = 8, 30
		}
		t = append(t,
			opEntry{maskOutXY, base | s.bits<<6,
				fmt.Sprintf("%s.%s dy,dx", name, s.sz.suffix()), rrCycles, rr},
			opEntry{maskOutXY, base | s.bits<<6 | 8,
				fmt.Sprintf("%s.%s -(ay),-(ax)", name, s.sz.suffix()), mmCycles, mm})
	}
	return t
}

func cmpEntries() []opEntry {
	var t []opEntry
	// CMP <ea>,Dn: 1011 xxx0 SSmm myyy
	for _, s := range sizeBits {
		for _, v := range eaAll {
			if v.isAn() && s.sz == Byte {
				continue
			}
			cycles := Cycles(4) + eaFetchCycles(v.mode, v.reg, s.sz)
			if s.sz == Long {
				cycles = 6 + eaFetchCycles(v.mode, v.reg, s.sz)
			}
			t = append(t, opEntry{v.mask(true), 0xB000 | s.bits<<6 | v.bits(),
				fmt.Sprintf("cmp.%s %s,dn", s.sz.suffix(), v), cycles, opCMP})
		}
	}
	// CMPA <ea>,An: 1011 xxxS 11mm myyy
	for _, szBit := range []uint16{3, 7} {
		sz := Word
		if szBit == 7 {
			sz = Long
		}
		for _, v := range eaAll {
			t = append(t, opEntry{v.mask(true), 0xB000 | szBit<<6 | v.bits(),
				fmt.Sprintf("cmpa.%s %s,an", sz.suffix(), v),
				6 + eaFetchCycles(v.mode, v.reg, sz), opCMPA})
		}
	}
	// CMPI #,<ea>: 0000 1100 SSmm myyy
	for _, s := range sizeBits {
		for _, v := range eaDataAlt {
			var cycles Cycles
			switch {
			case v.mode == 0 && s.sz == Long:
				cycles = 14
			case v.mode == 0:
				cycles = 8
			case s.sz == Long:
				cycles = 12 + eaFetchCycles(v.mode, v.reg, s.sz)
			default:
				cycles = 8 + eaFetchCycles(v.mode, v.reg, s.sz)
			}
			t = append(t, opEntry{v.mask(false), 0x0C00 | s.bits<<6 | v.bits(),
				fmt.Sprintf("cmpi.%s #,%s", s.sz.suffix(), v), cycles, opCMPI})
		}
	}
	// CMPM (Ay)+,(Ax)+: 1011 xxx1 SS00 1yyy
	for _, s := range sizeBits {
		cycles := Cycles(12)
		if s.sz == Long {
			cycles = 20
		}
		t = append(t, opEntry{maskOutXY, 0xB108 | s.bits<<6,
			fmt.Sprintf("cmpm.%s (ay)+,(ax)+", s.sz.suffix()), cycles, opCMPM})
	}
	return t
}

func mulDivEntries() []opEntry {
	var t []opEntry
	type mulDiv struct {
		base    uint16
		name    string
		cycles  Cycles
		handler opHandler
	}
	// Worst-case base cycles per MC68000UM; the manual gives data-dependent
	// ranges (38-70 multiply, 76-140/120-158 divide).
	for _, md := range []mulDiv{
		{0xC0C0, "mulu", 70, opMULU},
		{0xC1C0, "muls", 70, opMULS},
		{0x80C0, "divu", 140, opDIVU},
		{0x81C0, "divs", 158, opDIVS},
	} {
		for _, v := range eaData {
			t = append(t, opEntry{v.mask(true), md.base | v.bits(),
				fmt.Sprintf("%s.w %s,dn", md.name, v),
				md.cycles + eaFetchCycles(v.mode, v.reg, Word), md.handler})
		}
	}
	return t
}

// negNotClrEntries covers the single-operand data-alterable forms that
// share the NEG timing shape (NEG, NEGX, CLR; reused for NOT).
func negNotClrEntries(base uint16, name string, h opHandler) []opEntry {
	var t []opEntry
	for _, s := range sizeBits {
		for _, v := range eaDataAlt {
			var cycles Cycles
			switch {
			case v.mode == 0 && s.sz == Long:
				cycles = 6
			case v.mode == 0:
				cycles = 4
			case s.sz == Long:
				cycles = 12 + eaFetchCycles(v.mode, v.reg, s.sz)
			default:
				cycles = 8 + eaFetchCycles(v.mode, v.reg, s.sz)
			}
			t = append(t, opEntry{v.mask(false), base | s.bits<<6 | v.bits(),
				fmt.Sprintf("%s.%s %s", name, s.sz.suffix(), v), cycles, h})
		}
	}
	return t
}

func extEntries() []opEntry {
	return []opEntry{
		{maskOutY, 0x4880, "ext.w dn", 4, opEXTW},
		{maskOutY, 0x48C0, "ext.l dn", 4, opEXTL},
	}
}

func chkEntries() []opEntry {
	var t []opEntry
	for _, v := range eaData {
		t = append(t, opEntry{v.mask(true), 0x4180 | v.bits(),
			fmt.Sprintf("chk.w %s,dn", v),
			10 + eaFetchCycles(v.mode, v.reg, Word), opCHK})
	}
	return t
}

// --- Handlers ---

func opADDToReg(c *CPU) (Cycles, error) {
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
	c.setDataReg(dn, sz, c.aluAdd(sz, c.DAR[dn], s))
	return 0, nil
}

func opADDToEA(c *CPU) (Cycles, error) {
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
	return 0, dst.write(c, sz, c.aluAdd(sz, d, c.DAR[dn]))
}

func opSUBToReg(c *CPU) (Cycles, error) {
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
	c.setDataReg(dn, sz, c.aluSub(sz, c.DAR[dn], s))
	return 0, nil
}

func opSUBToEA(c *CPU) (Cycles, error) {
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
	return 0, dst.write(c, sz, c.aluSub(sz, d, c.DAR[dn]))
}

// adderSize decodes the word/long opmode bit of the address forms.
func adderSize(ir uint16) Size {
	if (ir>>6)&7 == 7 {
		return Long
	}
	return Word
}

func opADDA(c *CPU) (Cycles, error) {
	an := c.addrReg(c.IR >> 9)
	sz := adderSize(c.IR)
	src, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	val, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	// Address arithmetic is always full width and leaves the flags alone.
	*an += sz.SignExtend(val)
	return 0, nil
}

func opSUBA(c *CPU) (Cycles, error) {
	an := c.addrReg(c.IR >> 9)
	sz := adderSize(c.IR)
	src, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	val, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	*an -= sz.SignExtend(val)
	return 0, nil
}

// readImmSized fetches a sized immediate from the instruction stream (the
// byte form occupies the low half of a full extension word).
func (c *CPU) readImmSized(sz Size) (uint32, error) {
	if sz == Long {
		return c.readImmLong()
	}
	val, err := c.readImmWord()
	return uint32(val) & sz.Mask(), err
}

func opADDI(c *CPU) (Cycles, error) {
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
	return 0, dst.write(c, sz, c.aluAdd(sz, d, imm))
}

func opSUBI(c *CPU) (Cycles, error) {
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
	return 0, dst.write(c, sz, c.aluSub(sz, d, imm))
}

// quickData decodes the 3-bit quick field, where 0 encodes 8.
func quickData(ir uint16) uint32 {
	data := uint32(ir>>9) & 7
	if data == 0 {
		data = 8
	}
	return data
}

func opADDQ(c *CPU) (Cycles, error) {
	data := quickData(c.IR)
	sz := sizeField(c.IR >> 6)
	if (c.IR>>3)&7 == 1 {
		*c.addrReg(c.IR) += data // always 32 bits wide, no flags
		return 0, nil
	}
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluAdd(sz, d, data))
}

func opSUBQ(c *CPU) (Cycles, error) {
	data := quickData(c.IR)
	sz := sizeField(c.IR >> 6)
	if (c.IR>>3)&7 == 1 {
		*c.addrReg(c.IR) -= data
		return 0, nil
	}
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluSub(sz, d, data))
}

func opADDXReg(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	sz := sizeField(c.IR >> 6)
	c.setDataReg(rx, sz, c.aluAddx(sz, c.DAR[rx], c.DAR[ry]))
	return 0, nil
}

func opADDXMem(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	sz := sizeField(c.IR >> 6)
	src, err := c.resolveEA(4, ry, sz)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(4, rx, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluAddx(sz, d, s))
}

func opSUBXReg(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	sz := sizeField(c.IR >> 6)
	c.setDataReg(rx, sz, c.aluSubx(sz, c.DAR[rx], c.DAR[ry]))
	return 0, nil
}

func opSUBXMem(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	sz := sizeField(c.IR >> 6)
	src, err := c.resolveEA(4, ry, sz)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(4, rx, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluSubx(sz, d, s))
}

func opCMP(c *CPU) (Cycles, error) {
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
	c.aluCmp(sz, c.DAR[dn], s)
	return 0, nil
}

func opCMPA(c *CPU) (Cycles, error) {
	an := c.addrReg(c.IR >> 9)
	sz := adderSize(c.IR)
	src, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	val, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	c.cmp32(*an, sz.SignExtend(val))
	return 0, nil
}

func opCMPI(c *CPU) (Cycles, error) {
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
	c.aluCmp(sz, d, imm)
	return 0, nil
}

func opCMPM(c *CPU) (Cycles, error) {
	ax := (c.IR >> 9) & 7
	ay := c.IR & 7
	sz := sizeField(c.IR >> 6)
	src, err := c.resolveEA(3, ay, sz)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(3, ax, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	c.aluCmp(sz, d, s)
	return 0, nil
}

func opMULU(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	src, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, Word)
	if err != nil {
		return 0, err
	}
	c.DAR[dn] = c.mulu16(uint16(c.DAR[dn]), uint16(s))
	return 0, nil
}

func opMULS(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	src, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, Word)
	if err != nil {
		return 0, err
	}
	c.DAR[dn] = c.muls16(int16(c.DAR[dn]), int16(s))
	return 0, nil
}

// divTrapCycles is the zero-divide trap cost: 38 cycles plus the
// effective-address calculation time of the divisor.
func (c *CPU) divTrapCycles() Cycles {
	return 38 + eaFetchCycles((c.IR>>3)&7, c.IR&7, Word)
}

func opDIVU(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	src, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, Word)
	if err != nil {
		return 0, err
	}
	if s == 0 {
		return 0, TrapException{Vector: vecZeroDivide, ExtraCycles: c.divTrapCycles()}
	}
	if res, ok := c.divu16(c.DAR[dn], uint16(s)); ok {
		c.DAR[dn] = res
	}
	return 0, nil
}

func opDIVS(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	src, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, Word)
	if err != nil {
		return 0, err
	}
	if s == 0 {
		return 0, TrapException{Vector: vecZeroDivide, ExtraCycles: c.divTrapCycles()}
	}
	if res, ok := c.divs16(c.DAR[dn], int16(s)); ok {
		c.DAR[dn] = res
	}
	return 0, nil
}

func opNEG(c *CPU) (Cycles, error) {
	sz := sizeField(c.IR >> 6)
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluSub(sz, 0, d))
}

func opNEGX(c *CPU) (Cycles, error) {
	sz := sizeField(c.IR >> 6)
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, sz)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, sz, c.aluSubx(sz, 0, d))
}

func opCLR(c *CPU) (Cycles, error) {
	sz := sizeField(c.IR >> 6)
	dst, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	c.aluMoveFlags(sz, 0)
	return 0, dst.write(c, sz, 0)
}

func opEXTW(c *CPU) (Cycles, error) {
	dn := c.IR & 7
	val := uint32(int32(int8(c.DAR[dn]))) & 0xffff
	c.setDataReg(dn, Word, val)
	c.moveFlags(val, 8)
	return 0, nil
}

func opEXTL(c *CPU) (Cycles, error) {
	dn := c.IR & 7
	val := uint32(int32(int16(c.DAR[dn])))
	c.DAR[dn] = val
	c.moveFlags(val, 24)
	return 0, nil
}

func opCHK(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	mode, reg := (c.IR>>3)&7, c.IR&7
	src, err := c.resolveEA(mode, reg, Word)
	if err != nil {
		return 0, err
	}
	b, err := src.read(c, Word)
	if err != nil {
		return 0, err
	}
	val := int16(c.DAR[dn])
	bound := int16(b)

	c.notZFlag = uint32(uint16(val))
	c.vFlag = 0
	c.cFlag = 0

	if val >= 0 && val <= bound {
		return 0, nil
	}
	if val < 0 {
		c.nFlag = nflagSet
	} else {
		c.nFlag = 0
	}
	// 40 cycles for the CHK trap plus the effective-address time; the
	// 10-cycle instruction base is deducted to leave only the EA share.
	base := Cycles(10) + eaFetchCycles(mode, reg, Word)
	return 0, TrapException{Vector: vecCHK, ExtraCycles: 40 + base - 10}
}
