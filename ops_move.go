package m68k

import (
	"fmt"
	"math/bits"
)

// moveSizeMap decodes the MOVE size field (bits 13-12), which uses its own
// encoding: 01 = byte, 11 = word, 10 = long.
var moveSizeMap = [4]Size{0, Byte, Long, Word}

// moveEntries contributes the dispatch templates for the move family:
// MOVE, MOVEA, MOVEQ, MOVEP, LEA, PEA, MOVEM, EXG and SWAP.
func moveEntries() []opEntry {
	var t []opEntry

	// MOVE <ea>,<ea>: 00SS dddD DDss ssss with the destination field
	// reversed (reg before mode). Destination is data alterable.
	for _, ms := range []struct {
		bits uint16
		sz   Size
	}{{0x1000, Byte}, {0x3000, Word}, {0x2000, Long}} {
		for _, dst := range eaDataAlt {
			for _, src := range eaAll {
				if src.isAn() && ms.sz == Byte {
					continue
				}
				mask := src.mask(dst.mode < 7)
				match := ms.bits | dst.reg<<9 | dst.mode<<6 | src.bits()
				cycles := 4 + eaFetchCycles(src.mode, src.reg, ms.sz) +
					eaWriteCycles(dst.mode, dst.reg, ms.sz)
				t = append(t, opEntry{mask, match,
					fmt.Sprintf("move.%s %s,%s", ms.sz.suffix(), src, dst),
					cycles, opMOVE})
			}
		}
		// MOVEA <ea>,An (destination mode 001; word and long only).
		if ms.sz != Byte {
			for _, src := range eaAll {
				t = append(t, opEntry{src.mask(true), ms.bits | 1<<6 | src.bits(),
					fmt.Sprintf("movea.%s %s,an", ms.sz.suffix(), src),
					4 + eaFetchCycles(src.mode, src.reg, ms.sz), opMOVEA})
			}
		}
	}

	// MOVEQ #imm8,Dn: 0111 xxx0 dddddddd
	t = append(t, opEntry{maskLoBytX, 0x7000, "moveq #,dn", 4, opMOVEQ})

	// MOVEP Dx,d16(Ay) / d16(Ay),Dx: 0000 xxxO OO00 1yyy
	for _, mp := range []struct {
		match  uint16
		name   string
		cycles Cycles
	}{
		{0x0108, "movep.w d16(ay),dn", 16},
		{0x0148, "movep.l d16(ay),dn", 24},
		{0x0188, "movep.w dn,d16(ay)", 16},
		{0x01C8, "movep.l dn,d16(ay)", 24},
	} {
		t = append(t, opEntry{maskOutXY, mp.match, mp.name, mp.cycles, opMOVEP})
	}

	// LEA <ea>,An: 0100 xxx1 11mm myyy (control modes only).
	leaCycles := map[string]Cycles{"ai": 4, "di": 8, "ix": 12, "aw": 8, "al": 12, "pcdi": 8, "pcix": 12}
	for _, v := range eaControl {
		t = append(t, opEntry{v.mask(true), 0x41C0 | v.bits(),
			fmt.Sprintf("lea %s,an", v), leaCycles[v.String()], opLEA})
	}

	// PEA <ea>: 0100 1000 01mm myyy
	peaCycles := map[string]Cycles{"ai": 12, "di": 16, "ix": 20, "aw": 16, "al": 20, "pcdi": 16, "pcix": 20}
	for _, v := range eaControl {
		t = append(t, opEntry{v.mask(false), 0x4840 | v.bits(),
			fmt.Sprintf("pea %s", v), peaCycles[v.String()], opPEA})
	}

	// MOVEM: 0100 1D00 1Smm myyy, D = direction, S = size.
	// Bases per MC68000UM Table 8-7; the per-register transfer cost is
	// returned by the handler.
	regToMem := map[string]Cycles{"ai": 8, "pd": 8, "di": 12, "ix": 14, "aw": 12, "al": 16}
	memToReg := map[string]Cycles{"ai": 12, "pi": 12, "di": 16, "ix": 18, "aw": 16, "al": 20, "pcdi": 16, "pcix": 18}
	for szBit, sz := range map[uint16]Size{0: Word, 1: Long} {
		for _, v := range append([]eaVariant{{4, 0}}, eaControlAlt...) {
			t = append(t, opEntry{v.mask(false), 0x4880 | szBit<<6 | v.bits(),
				fmt.Sprintf("movem.%s regs,%s", sz.suffix(), v),
				regToMem[v.String()], opMOVEM})
		}
		for _, v := range append([]eaVariant{{3, 0}}, eaControl...) {
			t = append(t, opEntry{v.mask(false), 0x4C80 | szBit<<6 | v.bits(),
				fmt.Sprintf("movem.%s %s,regs", sz.suffix(), v),
				memToReg[v.String()], opMOVEM})
		}
	}

	// EXG: 1100 xxx1 oooo oyyy with opmodes 01000/01001/10001.
	for _, opmode := range []uint16{0x40, 0x48, 0x88} {
		t = append(t, opEntry{maskOutXY, 0xC100 | opmode, "exg rx,ry", 6, opEXG})
	}

	// SWAP Dn: 0100 1000 0100 0yyy
	t = append(t, opEntry{maskOutY, 0x4840, "swap dn", 4, opSWAP})

	return t
}

// --- Handlers ---

func opMOVE(c *CPU) (Cycles, error) {
	sz := moveSizeMap[(c.IR>>12)&3]
	src, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	val, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(c.IR>>6, c.IR>>9, sz)
	if err != nil {
		return 0, err
	}
	c.aluMoveFlags(sz, val)
	return 0, dst.write(c, sz, val)
}

func opMOVEA(c *CPU) (Cycles, error) {
	sz := moveSizeMap[(c.IR>>12)&3]
	src, err := c.resolveEA(c.IR>>3, c.IR, sz)
	if err != nil {
		return 0, err
	}
	val, err := src.read(c, sz)
	if err != nil {
		return 0, err
	}
	// MOVEA.W sign-extends and never touches the flags.
	*c.addrReg(c.IR >> 9) = sz.SignExtend(val)
	return 0, nil
}

func opMOVEQ(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	c.DAR[dn] = uint32(int32(int8(c.IR)))
	c.moveFlags(c.DAR[dn], 24)
	return 0, nil
}

func opMOVEP(c *CPU) (Cycles, error) {
	dn := (c.IR >> 9) & 7
	opmode := (c.IR >> 6) & 7
	disp, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	addr := *c.addrReg(c.IR) + uint32(int32(int16(disp)))

	// Alternating bytes, high byte first, every other address.
	switch opmode {
	case 4: // MOVEP.W mem->reg
		hi, err := c.readData(Byte, addr)
		if err != nil {
			return 0, err
		}
		lo, err := c.readData(Byte, addr+2)
		if err != nil {
			return 0, err
		}
		c.setDataReg(dn, Word, hi<<8|lo)
	case 5: // MOVEP.L mem->reg
		var val uint32
		for i := uint32(0); i < 4; i++ {
			b, err := c.readData(Byte, addr+2*i)
			if err != nil {
				return 0, err
			}
			val = val<<8 | b
		}
		c.DAR[dn] = val
	case 6: // MOVEP.W reg->mem
		val := c.DAR[dn]
		if err := c.writeData(Byte, addr, val>>8); err != nil {
			return 0, err
		}
		if err := c.writeData(Byte, addr+2, val); err != nil {
			return 0, err
		}
	case 7: // MOVEP.L reg->mem
		val := c.DAR[dn]
		for i := uint32(0); i < 4; i++ {
			if err := c.writeData(Byte, addr+2*i, val>>(24-8*i)); err != nil {
				return 0, err
			}
		}
	}
	return 0, nil
}

func opLEA(c *CPU) (Cycles, error) {
	src, err := c.resolveEA(c.IR>>3, c.IR, Long)
	if err != nil {
		return 0, err
	}
	*c.addrReg(c.IR >> 9) = src.address()
	return 0, nil
}

func opPEA(c *CPU) (Cycles, error) {
	src, err := c.resolveEA(c.IR>>3, c.IR, Long)
	if err != nil {
		return 0, err
	}
	return 0, c.pushLong(src.address())
}

func opMOVEM(c *CPU) (Cycles, error) {
	toRegs := c.IR&0x0400 != 0
	sz := Word
	perReg := Cycles(4)
	if c.IR&0x0040 != 0 {
		sz = Long
		perReg = 8
	}
	mode, reg := (c.IR>>3)&7, c.IR&7

	regMask, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	moves := Cycles(bits.OnesCount16(regMask))

	if !toRegs && mode == 4 {
		// -(An): the mask is reversed (bit 0 = A7) and the registers go
		// out in reverse order, so D0 lands at the lowest address.
		addr := *c.addrReg(reg)
		for i := 0; i < 16; i++ {
			if regMask&(1<<i) == 0 {
				continue
			}
			addr -= uint32(sz)
			if err := c.writeData(sz, addr, c.DAR[15-i]); err != nil {
				return 0, err
			}
		}
		*c.addrReg(reg) = addr
		return moves * perReg, nil
	}

	var addr uint32
	prog := false
	if toRegs && mode == 3 {
		addr = *c.addrReg(reg) // (An)+: bump An afterwards
	} else {
		src, err := c.resolveEA(mode, reg, sz)
		if err != nil {
			return 0, err
		}
		addr = src.address()
		prog = src.prog
	}

	for i := 0; i < 16; i++ {
		if regMask&(1<<i) == 0 {
			continue
		}
		if toRegs {
			var val uint32
			var err error
			if prog {
				val, err = c.readProgram(sz, addr)
			} else {
				val, err = c.readData(sz, addr)
			}
			if err != nil {
				return 0, err
			}
			// The word form sign-extends into the full register.
			c.DAR[i] = sz.SignExtend(val)
		} else {
			if err := c.writeData(sz, addr, c.DAR[i]); err != nil {
				return 0, err
			}
		}
		addr += uint32(sz)
	}

	if toRegs && mode == 3 {
		*c.addrReg(reg) = addr
	}
	return moves * perReg, nil
}

func opEXG(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	switch (c.IR >> 3) & 0x1f {
	case 0x08: // data-data
		c.DAR[rx], c.DAR[ry] = c.DAR[ry], c.DAR[rx]
	case 0x09: // addr-addr
		c.DAR[8+rx], c.DAR[8+ry] = c.DAR[8+ry], c.DAR[8+rx]
	case 0x11: // data-addr
		c.DAR[rx], c.DAR[8+ry] = c.DAR[8+ry], c.DAR[rx]
	}
	return 0, nil
}

func opSWAP(c *CPU) (Cycles, error) {
	dn := c.IR & 7
	val := c.DAR[dn]
	c.DAR[dn] = val>>16 | val<<16
	c.moveFlags(c.DAR[dn], 24)
	return 0, nil
}
