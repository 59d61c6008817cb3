package m68k

import "fmt"

// bcdEntries contributes the dispatch templates for the packed-BCD family.
func bcdEntries() []opEntry {
	t := []opEntry{
		// ABCD/SBCD: oooo xxx1 0000 Ryyy, R=0 Dy,Dx  R=1 -(Ay),-(Ax)
		{maskOutXY, 0xC100, "abcd.b dy,dx", 6, opABCDReg},
		{maskOutXY, 0xC108, "abcd.b -(ay),-(ax)", 18, opABCDMem},
		{maskOutXY, 0x8100, "sbcd.b dy,dx", 6, opSBCDReg},
		{maskOutXY, 0x8108, "sbcd.b -(ay),-(ax)", 18, opSBCDMem},
	}
	// NBCD <ea>: 0100 1000 00mm myyy
	for _, v := range eaDataAlt {
		cycles := Cycles(6)
		if v.mode != 0 {
			cycles = 8 + eaFetchCycles(v.mode, v.reg, Byte)
		}
		t = append(t, opEntry{v.mask(false), 0x4800 | v.bits(),
			fmt.Sprintf("nbcd.b %s", v), cycles, opNBCD})
	}
	return t
}

// --- Handlers ---

func opABCDReg(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	c.setDataReg(rx, Byte, c.abcd8(c.DAR[rx], c.DAR[ry]))
	return 0, nil
}

func opABCDMem(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	src, err := c.resolveEA(4, ry, Byte)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, Byte)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(4, rx, Byte)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, Byte)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, Byte, c.abcd8(d, s))
}

func opSBCDReg(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	c.setDataReg(rx, Byte, c.sbcd8(c.DAR[rx], c.DAR[ry]))
	return 0, nil
}

func opSBCDMem(c *CPU) (Cycles, error) {
	rx := (c.IR >> 9) & 7
	ry := c.IR & 7
	src, err := c.resolveEA(4, ry, Byte)
	if err != nil {
		return 0, err
	}
	s, err := src.read(c, Byte)
	if err != nil {
		return 0, err
	}
	dst, err := c.resolveEA(4, rx, Byte)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, Byte)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, Byte, c.sbcd8(d, s))
}

func opNBCD(c *CPU) (Cycles, error) {
	dst, err := c.resolveEA(c.IR>>3, c.IR, Byte)
	if err != nil {
		return 0, err
	}
	d, err := dst.read(c, Byte)
	if err != nil {
		return 0, err
	}
	if res, ok := c.nbcd8(d); ok {
		return 0, dst.write(c, Byte, res)
	}
	return 0, nil
}
