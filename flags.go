package m68k

// Internal condition-flag representation.
//
// Each flag lives in its own 32-bit slot, positioned so the ALU primitives
// can update it straight from the arithmetic result without branching: the
// carry out of a byte add lands in bit 8, the sign of a byte result in bit 7,
// and the word/long variants shift their results down so the same positions
// apply. Z is stored negated (notZFlag == 0 means Z is set), which lets the
// extend instructions accumulate it with a plain OR. The positions are
// internal only; StatusRegister and SetStatusRegister translate to and from
// the architectural layout.
const (
	sflagSet = 0x04
	xflagSet = 0x100
	nflagSet = 0x80
	vflagSet = 0x80
	cflagSet = 0x100

	zflagSet   = 0x00000000 // notZFlag value meaning Z is set
	zflagClear = 0xffffffff // canonical non-zero notZFlag value

	// Writable SR bits: T1 - S - - I2 I1 I0 - - - X N Z V C
	srMask    uint16 = 0xa71f
	srIntMask uint32 = 0x0700
)

// xFlagAs1 returns the extend flag as 0 or 1.
func (c *CPU) xFlagAs1() uint32 {
	return (c.xFlag >> 8) & 1
}

// StatusRegister packs the internal flag slots into the architectural
// 16-bit status register layout.
func (c *CPU) StatusRegister() uint16 {
	return uint16(c.sFlag<<11 |
		c.intMask |
		(c.xFlag&xflagSet)>>4 |
		(c.nFlag&nflagSet)>>4 |
		not1(c.notZFlag)<<2 |
		(c.vFlag&vflagSet)>>6 |
		(c.cFlag&cflagSet)>>8)
}

// ConditionCodeRegister returns the low byte of the status register.
func (c *CPU) ConditionCodeRegister() uint16 {
	return c.StatusRegister() & 0xff
}

// SetStatusRegister unpacks an architectural status word into the internal
// flag slots. Reserved bits are masked to 0xA71F. A supervisor-bit change
// swaps the active stack pointer with the matching inactive one.
func (c *CPU) SetStatusRegister(sr16 uint16) {
	sr := uint32(sr16 & srMask)
	oldS := c.sFlag
	c.intMask = sr & srIntMask
	c.sFlag = (sr >> 11) & sflagSet
	c.xFlag = (sr << 4) & xflagSet
	c.nFlag = (sr << 4) & nflagSet
	c.notZFlag = not1(sr & 0x04)
	c.vFlag = (sr << 6) & vflagSet
	c.cFlag = (sr << 8) & cflagSet
	if oldS != c.sFlag {
		if c.sFlag == sflagSet {
			c.inactiveUSP = c.DAR[15]
			c.DAR[15] = c.inactiveSSP
		} else {
			c.inactiveSSP = c.DAR[15]
			c.DAR[15] = c.inactiveUSP
		}
	}
}

// SetConditionCodeRegister replaces the low byte of the status register,
// preserving the system byte.
func (c *CPU) SetConditionCodeRegister(ccr uint16) {
	sr := c.StatusRegister()
	c.SetStatusRegister(sr&0xff00 | ccr&0xff)
}

// not1 returns 1 when v is zero, else 0.
func not1(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	return 0
}

// supervisor reports whether the CPU is in supervisor mode.
func (c *CPU) supervisor() bool {
	return c.sFlag != 0
}

// condZ reports the zero flag.
func (c *CPU) condZ() bool { return c.notZFlag == zflagSet }

// condC reports the carry flag.
func (c *CPU) condC() bool { return c.cFlag&cflagSet != 0 }

// condN reports the negative flag.
func (c *CPU) condN() bool { return c.nFlag&nflagSet != 0 }

// condV reports the overflow flag.
func (c *CPU) condV() bool { return c.vFlag&vflagSet != 0 }

// testCondition evaluates an MC68000 condition code (0-15).
func (c *CPU) testCondition(cc uint16) bool {
	switch cc {
	case 0: // T - true
		return true
	case 1: // F - false
		return false
	case 2: // HI - !C & !Z
		return !c.condC() && !c.condZ()
	case 3: // LS - C | Z
		return c.condC() || c.condZ()
	case 4: // CC - !C
		return !c.condC()
	case 5: // CS - C
		return c.condC()
	case 6: // NE - !Z
		return !c.condZ()
	case 7: // EQ - Z
		return c.condZ()
	case 8: // VC - !V
		return !c.condV()
	case 9: // VS - V
		return c.condV()
	case 10: // PL - !N
		return !c.condN()
	case 11: // MI - N
		return c.condN()
	case 12: // GE - N == V
		return c.condN() == c.condV()
	case 13: // LT - N != V
		return c.condN() != c.condV()
	case 14: // GT - (N == V) & !Z
		return c.condN() == c.condV() && !c.condZ()
	case 15: // LE - Z | (N != V)
		return c.condZ() || c.condN() != c.condV()
	}
	return false
}

// Flags renders the status register as a compact string, e.g. "-S7XNZVC".
func (c *CPU) Flags() string {
	sr := c.StatusRegister()
	buf := []byte("-U0-----")
	if sr&0x2000 != 0 {
		buf[1] = 'S'
	}
	buf[2] = byte('0' + (sr>>8)&7)
	for i, ch := range []byte("XNZVC") {
		if sr&(1<<uint(4-i)) != 0 {
			buf[3+i] = ch
		}
	}
	return string(buf)
}
