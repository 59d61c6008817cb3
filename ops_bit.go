package m68k

import "fmt"

// Bit operations come in two forms:
//
//	dynamic: 0000 xxx1 tt mmmyyy  (bit number in Dx)
//	static:  0000 1000 tt mmmyyy  (bit number in an extension word)
//
// tt = 00 BTST, 01 BCHG, 10 BCLR, 11 BSET. A data register destination
// operates on a long (bit mod 32); memory destinations on a byte (mod 8).
// Only Z is affected, from the tested bit before any modification.

// bitEntries contributes the dispatch templates for BTST/BCHG/BCLR/BSET.
func bitEntries() []opEntry {
	type bitOp struct {
		dynBase, staticBase    uint16
		name                   string
		dynDn, dynMem          Cycles
		staticDn, staticMem    Cycles
		handlerDyn, handlerStc opHandler
	}
	ops := []bitOp{
		{0x0100, 0x0800, "btst", 6, 4, 10, 8, opBTSTDyn, opBTSTStatic},
		{0x0140, 0x0840, "bchg", 8, 8, 12, 12, opBCHGDyn, opBCHGStatic},
		{0x0180, 0x0880, "bclr", 10, 8, 14, 12, opBCLRDyn, opBCLRStatic},
		{0x01C0, 0x08C0, "bset", 8, 8, 12, 12, opBSETDyn, opBSETStatic},
	}

	var t []opEntry
	for _, op := range ops {
		// BTST's read-only destination admits the PC-relative modes (and,
		// for the dynamic form, immediate); the modifying ops take data
		// alterable destinations.
		dynDst, staticDst := eaDataAlt, eaDataAlt
		if op.name == "btst" {
			dynDst = eaData
			staticDst = eaData[:len(eaData)-1] // no immediate destination
		}
		for _, v := range dynDst {
			cycles := op.dynDn
			if v.mode != 0 {
				cycles = op.dynMem + eaFetchCycles(v.mode, v.reg, Byte)
			}
			t = append(t, opEntry{v.mask(true), op.dynBase | v.bits(),
				fmt.Sprintf("%s dn,%s", op.name, v), cycles, op.handlerDyn})
		}
		for _, v := range staticDst {
			cycles := op.staticDn
			if v.mode != 0 {
				cycles = op.staticMem + eaFetchCycles(v.mode, v.reg, Byte)
			}
			t = append(t, opEntry{v.mask(false), op.staticBase | v.bits(),
				fmt.Sprintf("%s #,%s", op.name, v), cycles, op.handlerStc})
		}
	}
	return t
}

// --- Handlers ---

// bitOperand resolves the destination, reads it, and sets Z from the
// addressed bit. It returns the operand value and the bit mask in place.
func (c *CPU) bitOperand(bitNum uint32) (ea, uint32, uint32, error) {
	var dst ea
	var err error
	if (c.IR>>3)&7 == 0 {
		dst, err = c.resolveEA(c.IR>>3, c.IR, Long)
	} else {
		dst, err = c.resolveEA(c.IR>>3, c.IR, Byte)
	}
	if err != nil {
		return ea{}, 0, 0, err
	}
	var val, mask uint32
	if dst.kind == eaDataReg {
		val = c.DAR[c.IR&7]
		mask = 1 << (bitNum & 31)
	} else {
		val, err = dst.read(c, Byte)
		if err != nil {
			return ea{}, 0, 0, err
		}
		mask = 1 << (bitNum & 7)
	}
	c.notZFlag = val & mask
	return dst, val, mask, nil
}

func opBTSTDyn(c *CPU) (Cycles, error) {
	bitNum := c.DAR[(c.IR>>9)&7]
	_, _, _, err := c.bitOperand(bitNum)
	return 0, err
}

func opBTSTStatic(c *CPU) (Cycles, error) {
	ext, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	_, _, _, err = c.bitOperand(uint32(ext & 0xff))
	return 0, err
}

func (c *CPU) bitModify(bitNum uint32, change func(val, mask uint32) uint32) error {
	dst, val, mask, err := c.bitOperand(bitNum)
	if err != nil {
		return err
	}
	if dst.kind == eaDataReg {
		c.DAR[c.IR&7] = change(val, mask)
		return nil
	}
	return dst.write(c, Byte, change(val, mask))
}

func opBCHGDyn(c *CPU) (Cycles, error) {
	return 0, c.bitModify(c.DAR[(c.IR>>9)&7], func(v, m uint32) uint32 { return v ^ m })
}

func opBCHGStatic(c *CPU) (Cycles, error) {
	ext, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	return 0, c.bitModify(uint32(ext&0xff), func(v, m uint32) uint32 { return v ^ m })
}

func opBCLRDyn(c *CPU) (Cycles, error) {
	return 0, c.bitModify(c.DAR[(c.IR>>9)&7], func(v, m uint32) uint32 { return v &^ m })
}

func opBCLRStatic(c *CPU) (Cycles, error) {
	ext, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	return 0, c.bitModify(uint32(ext&0xff), func(v, m uint32) uint32 { return v &^ m })
}

func opBSETDyn(c *CPU) (Cycles, error) {
	return 0, c.bitModify(c.DAR[(c.IR>>9)&7], func(v, m uint32) uint32 { return v | m })
}

func opBSETStatic(c *CPU) (Cycles, error) {
	ext, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	return 0, c.bitModify(uint32(ext&0xff), func(v, m uint32) uint32 { return v | m })
}
