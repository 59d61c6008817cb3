package m68k

import "fmt"

// ctrlEntries contributes the dispatch templates for the control family:
// NOP, STOP, RESET, TRAP/TRAPV, LINK/UNLK, the status-register moves and
// the immediate-to-CCR/SR logical forms.
func ctrlEntries() []opEntry {
	var t []opEntry

	t = append(t,
		opEntry{maskExact, 0x4E71, "nop", 4, opNOP},
		opEntry{maskExact, 0x4E72, "stop #", 4, opSTOP},
		opEntry{maskExact, 0x4E70, "reset", 132, opRESET},
		opEntry{maskExact, 0x4E76, "trapv", 4, opTRAPV},
		opEntry{maskLoNib, 0x4E40, "trap #", 4, opTRAP},
		opEntry{maskOutY, 0x4E50, "link an,#", 16, opLINK},
		opEntry{maskOutY, 0x4E58, "unlk an", 12, opUNLK},
		opEntry{maskOutY, 0x4E60, "move an,usp", 4, opMOVEToUSP},
		opEntry{maskOutY, 0x4E68, "move usp,an", 4, opMOVEFromUSP})

	// MOVE SR,<ea>: 0100 0000 11mm myyy. Not privileged on the 68000.
	for _, v := range eaDataAlt {
		cycles := Cycles(6)
		if v.mode != 0 {
			cycles = 8 + eaFetchCycles(v.mode, v.reg, Word)
		}
		t = append(t, opEntry{v.mask(false), 0x40C0 | v.bits(),
			fmt.Sprintf("move sr,%s", v), cycles, opMOVEFromSR})
	}
	// MOVE <ea>,CCR: 0100 0100 11mm myyy
	for _, v := range eaData {
		t = append(t, opEntry{v.mask(false), 0x44C0 | v.bits(),
			fmt.Sprintf("move %s,ccr", v),
			12 + eaFetchCycles(v.mode, v.reg, Word), opMOVEToCCR})
	}
	// MOVE <ea>,SR: 0100 0110 11mm myyy (privileged)
	for _, v := range eaData {
		t = append(t, opEntry{v.mask(false), 0x46C0 | v.bits(),
			fmt.Sprintf("move %s,sr", v),
			12 + eaFetchCycles(v.mode, v.reg, Word), opMOVEToSR})
	}

	t = append(t,
		opEntry{maskExact, 0x003C, "ori #,ccr", 20, opORIToCCR},
		opEntry{maskExact, 0x007C, "ori #,sr", 20, opORIToSR},
		opEntry{maskExact, 0x023C, "andi #,ccr", 20, opANDIToCCR},
		opEntry{maskExact, 0x027C, "andi #,sr", 20, opANDIToSR},
		opEntry{maskExact, 0x0A3C, "eori #,ccr", 20, opEORIToCCR},
		opEntry{maskExact, 0x0A7C, "eori #,sr", 20, opEORIToSR})
	return t
}

// --- Handlers ---

func opNOP(c *CPU) (Cycles, error) {
	return 0, nil
}

// opSTOP loads the immediate into SR and parks the processor. An interrupt
// above the new mask or an external reset resumes execution.
func opSTOP(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	sr, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	c.SetStatusRegister(sr)
	c.state = Stopped
	return 0, nil
}

func opRESET(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	c.intCtrl.ResetExternalDevices()
	return 0, nil
}

func opTRAP(c *CPU) (Cycles, error) {
	return 0, TrapException{Vector: vecTrapBase + uint8(c.IR&0xf), ExtraCycles: 34}
}

func opTRAPV(c *CPU) (Cycles, error) {
	if c.condV() {
		return 0, TrapException{Vector: vecTRAPV, ExtraCycles: 34}
	}
	return 0, nil
}

func opLINK(c *CPU) (Cycles, error) {
	an := c.addrReg(c.IR)
	disp, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	if err := c.pushLong(*an); err != nil {
		return 0, err
	}
	*an = c.DAR[stackPointerReg]
	c.DAR[stackPointerReg] += uint32(int32(int16(disp)))
	return 0, nil
}

func opUNLK(c *CPU) (Cycles, error) {
	an := c.addrReg(c.IR)
	c.DAR[stackPointerReg] = *an
	val, err := c.popLong()
	if err != nil {
		return 0, err
	}
	*an = val
	return 0, nil
}

func opMOVEFromSR(c *CPU) (Cycles, error) {
	dst, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	return 0, dst.write(c, Word, uint32(c.StatusRegister()))
}

func opMOVEToCCR(c *CPU) (Cycles, error) {
	src, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	val, err := src.read(c, Word)
	if err != nil {
		return 0, err
	}
	c.SetConditionCodeRegister(uint16(val))
	return 0, nil
}

func opMOVEToSR(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	src, err := c.resolveEA(c.IR>>3, c.IR, Word)
	if err != nil {
		return 0, err
	}
	val, err := src.read(c, Word)
	if err != nil {
		return 0, err
	}
	c.SetStatusRegister(uint16(val))
	return 0, nil
}

func opMOVEToUSP(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	c.inactiveUSP = *c.addrReg(c.IR)
	return 0, nil
}

func opMOVEFromUSP(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	*c.addrReg(c.IR) = c.inactiveUSP
	return 0, nil
}

func opORIToCCR(c *CPU) (Cycles, error) {
	imm, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	c.SetConditionCodeRegister(c.ConditionCodeRegister() | imm&0xff)
	return 0, nil
}

func opORIToSR(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	imm, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	c.SetStatusRegister(c.StatusRegister() | imm)
	return 0, nil
}

func opANDIToCCR(c *CPU) (Cycles, error) {
	imm, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	c.SetConditionCodeRegister(c.ConditionCodeRegister() & imm)
	return 0, nil
}

func opANDIToSR(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	imm, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	c.SetStatusRegister(c.StatusRegister() & imm)
	return 0, nil
}

func opEORIToCCR(c *CPU) (Cycles, error) {
	imm, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	c.SetConditionCodeRegister(c.ConditionCodeRegister() ^ imm&0xff)
	return 0, nil
}

func opEORIToSR(c *CPU) (Cycles, error) {
	if !c.supervisor() {
		return 0, PrivilegeViolation{IR: c.IR, PC: c.PC - 2}
	}
	imm, err := c.readImmWord()
	if err != nil {
		return 0, err
	}
	c.SetStatusRegister(c.StatusRegister() ^ imm)
	return 0, nil
}
