package m68k

// EA operand categories.
const (
	eaDataReg   = iota // data register direct (Dn)
	eaAddrReg          // address register direct (An)
	eaMemory           // all memory addressing modes
	eaImmediate        // immediate (#imm)
)

// ea represents a resolved effective address operand. Memory operands carry
// the effective 32-bit address plus the address space their reads belong to;
// PC-relative modes read through the program space, everything else through
// the data space.
type ea struct {
	kind int
	reg  uint16 // register number (register modes)
	addr uint32 // effective address (memory modes)
	imm  uint32 // value (immediate mode)
	prog bool   // memory reads go through the program space
}

// read returns the sized value at this effective address.
func (e ea) read(c *CPU, sz Size) (uint32, error) {
	switch e.kind {
	case eaDataReg:
		return c.DAR[e.reg] & sz.Mask(), nil
	case eaAddrReg:
		return c.DAR[8+e.reg] & sz.Mask(), nil
	case eaMemory:
		if e.prog {
			return c.readProgram(sz, e.addr)
		}
		return c.readData(sz, e.addr)
	default:
		return e.imm & sz.Mask(), nil
	}
}

// write stores a sized value at this effective address. Data register
// writes preserve the upper bits for byte and word operations; address
// register writes always store the full 32 bits.
func (e ea) write(c *CPU, sz Size, val uint32) error {
	switch e.kind {
	case eaDataReg:
		c.setDataReg(e.reg, sz, val)
		return nil
	case eaAddrReg:
		c.DAR[8+e.reg] = val
		return nil
	default:
		return c.writeData(sz, e.addr, val)
	}
}

// address returns the effective address (memory operands only).
func (e ea) address() uint32 {
	return e.addr
}

// resolveEA decodes and resolves an effective address from a mode/register
// pair: mode is bits 5-3 and reg bits 2-0 of the standard EA field.
// Extension words are consumed from the instruction stream as needed.
func (c *CPU) resolveEA(mode, reg uint16, sz Size) (ea, error) {
	mode &= 7
	reg &= 7
	switch mode {
	case 0: // Dn
		return ea{kind: eaDataReg, reg: reg}, nil

	case 1: // An
		return ea{kind: eaAddrReg, reg: reg}, nil

	case 2: // (An)
		return ea{kind: eaMemory, addr: *c.addrReg(reg)}, nil

	case 3: // (An)+
		an := c.addrReg(reg)
		addr := *an
		inc := uint32(sz)
		if reg == 7 && sz == Byte {
			inc = 2 // keep the stack pointer word aligned
		}
		*an += inc
		return ea{kind: eaMemory, addr: addr}, nil

	case 4: // -(An)
		an := c.addrReg(reg)
		dec := uint32(sz)
		if reg == 7 && sz == Byte {
			dec = 2
		}
		*an -= dec
		return ea{kind: eaMemory, addr: *an}, nil

	case 5: // d16(An)
		disp, err := c.readImmWord()
		if err != nil {
			return ea{}, err
		}
		return ea{kind: eaMemory, addr: *c.addrReg(reg) + uint32(int32(int16(disp)))}, nil

	case 6: // d8(An,Xn)
		ext, err := c.readImmWord()
		if err != nil {
			return ea{}, err
		}
		return ea{kind: eaMemory, addr: c.indexedAddr(*c.addrReg(reg), ext)}, nil

	default:
		switch reg {
		case 0: // (xxx).W
			addr, err := c.readImmWord()
			if err != nil {
				return ea{}, err
			}
			return ea{kind: eaMemory, addr: uint32(int32(int16(addr)))}, nil

		case 1: // (xxx).L
			addr, err := c.readImmLong()
			if err != nil {
				return ea{}, err
			}
			return ea{kind: eaMemory, addr: addr}, nil

		case 2: // d16(PC)
			base := c.PC // PC at the extension word
			disp, err := c.readImmWord()
			if err != nil {
				return ea{}, err
			}
			return ea{kind: eaMemory, addr: base + uint32(int32(int16(disp))), prog: true}, nil

		case 3: // d8(PC,Xn)
			base := c.PC
			ext, err := c.readImmWord()
			if err != nil {
				return ea{}, err
			}
			return ea{kind: eaMemory, addr: c.indexedAddr(base, ext), prog: true}, nil

		case 4: // #imm
			if sz == Long {
				val, err := c.readImmLong()
				if err != nil {
					return ea{}, err
				}
				return ea{kind: eaImmediate, imm: val}, nil
			}
			val, err := c.readImmWord()
			if err != nil {
				return ea{}, err
			}
			return ea{kind: eaImmediate, imm: uint32(val) & sz.Mask()}, nil
		}
	}

	// Unreachable through the dispatch table, which only installs handlers
	// on encodings with valid EA fields.
	return ea{}, IllegalInstruction{IR: c.IR, PC: c.PC - 2}
}

// indexedAddr computes base + d8 + Xn from a brief extension word.
// Extension word format: D/A | reg(3) | W/L | 000 | displacement(8)
func (c *CPU) indexedAddr(base uint32, ext uint16) uint32 {
	disp := int32(int8(ext & 0xff))
	xn := (ext >> 12) & 7

	var idx uint32
	if ext&0x8000 != 0 {
		idx = *c.addrReg(xn)
	} else {
		idx = c.DAR[xn]
	}
	// Bit 11: 0 = sign-extended word index, 1 = full long index
	if ext&0x0800 == 0 {
		idx = uint32(int32(int16(idx)))
	}
	return base + idx + uint32(disp)
}
