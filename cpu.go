// Package m68k implements a cycle-counting Motorola 68000 CPU core.
//
// The MC68000 is a 32-bit internal / 16-bit external CISC processor with:
//   - Eight 32-bit data registers (D0-D7)
//   - Eight 32-bit address registers (A0-A7), where A7 is the stack pointer
//   - A 32-bit program counter
//   - A 16-bit status register (system byte + condition code register)
//   - Dual stack pointers (USP for user mode, SSP for supervisor mode)
//
// The core executes against a pluggable Bus exposing the four function-coded
// address spaces and a pluggable InterruptController. Instruction words are
// fetched through a one-slot long-aligned prefetch cache, so the bus sees one
// 32-bit program-space read per two sequential instruction words.
package m68k

// Cycles counts MC68000 clock periods.
type Cycles int

// stackPointerReg is the dar index of the active stack pointer.
const stackPointerReg = 15

// CPU is the MC68000 processor core.
//
// DAR is the combined register file: indices 0-7 are D0-D7, 8-15 are A0-A7.
// DAR[15] is always the stack pointer of the current mode; the stack pointer
// of the other mode sits in the matching inactive slot and the two swap on
// every supervisor-bit transition.
type CPU struct {
	PC  uint32
	DAR [16]uint32
	IR  uint16

	inactiveSSP uint32 // SSP while in user mode
	inactiveUSP uint32 // USP while in supervisor mode

	// One-slot prefetch cache: prefetchData holds the 32 bits read from
	// the program space at the long-aligned prefetchAddr.
	prefetchAddr uint32
	prefetchData uint32

	// Condition flags in the internal slot positions (see flags.go).
	xFlag    uint32
	cFlag    uint32
	vFlag    uint32
	nFlag    uint32
	notZFlag uint32

	sFlag    uint32
	intMask  uint32
	irqLevel uint8 // last accepted IRQ level, for level-7 edge detection

	state ProcessingState

	mem     Bus
	intCtrl InterruptController

	instructionSet []instruction

	tasWriteback bool
}

// New creates a core wired to the given bus and interrupt controller, with
// the PC at base, supervisor mode, interrupts masked and flags cleared. Call
// Reset to boot through the vector table instead.
func New(base uint32, bus Bus, ctrl InterruptController) *CPU {
	return &CPU{
		PC:             base,
		sFlag:          sflagSet,
		intMask:        srIntMask,
		notZFlag:       zflagClear,
		state:          Normal,
		mem:            bus,
		intCtrl:        ctrl,
		instructionSet: instructionSet(),
		tasWriteback:   true,
	}
}

// Reset performs a hardware reset: enters supervisor mode with interrupts
// masked, loads the initial SSP from addresses 0-3 and the initial PC from
// addresses 4-7 through the supervisor program space, and resumes normal
// processing. Reset is the only way to leave the Halted state.
func (c *CPU) Reset() {
	c.state = Group0Exception
	c.sFlag = sflagSet
	c.intMask = srIntMask
	c.prefetchAddr = 1 // unaligned: forces the first refill
	c.PC = 0
	// These fetches cannot fault: the PC was forced to 0.
	ssp, _ := c.readImmLong()
	c.DAR[stackPointerReg] = ssp
	pc, _ := c.readImmLong()
	c.PC = pc
	c.state = Normal
}

// State returns the current processing state.
func (c *CPU) State() ProcessingState {
	return c.state
}

// USP returns the user stack pointer regardless of the current mode.
func (c *CPU) USP() uint32 {
	if c.supervisor() {
		return c.inactiveUSP
	}
	return c.DAR[stackPointerReg]
}

// SSP returns the supervisor stack pointer regardless of the current mode.
func (c *CPU) SSP() uint32 {
	if c.supervisor() {
		return c.DAR[stackPointerReg]
	}
	return c.inactiveSSP
}

// SetTASWriteback selects whether TAS performs its write phase. Some host
// buses cannot complete the read-modify-write cycle; setting false keeps the
// read and flag update but omits the write.
func (c *CPU) SetTASWriteback(allow bool) {
	c.tasWriteback = allow
}

func (c *CPU) allowTASWriteback() bool {
	return c.tasWriteback
}

// dataSpace returns the data address space for the current mode.
func (c *CPU) dataSpace() AddressSpace {
	if c.supervisor() {
		return SupervisorData
	}
	return UserData
}

// programSpace returns the program address space for the current mode.
func (c *CPU) programSpace() AddressSpace {
	if c.supervisor() {
		return SupervisorProgram
	}
	return UserProgram
}

// readData reads a sized value from the data space. Word and long reads
// from odd addresses raise an Address Error without touching the bus.
func (c *CPU) readData(sz Size, addr uint32) (uint32, error) {
	space := c.dataSpace()
	if sz != Byte && addr&1 != 0 {
		return 0, AddressError{Address: addr, Access: AccessRead, Space: space, State: c.state}
	}
	switch sz {
	case Byte:
		return c.mem.ReadByte(space, addr), nil
	case Word:
		return c.mem.ReadWord(space, addr), nil
	default:
		return c.mem.ReadLong(space, addr), nil
	}
}

// writeData writes a sized value to the data space, with the same alignment
// rule as readData.
func (c *CPU) writeData(sz Size, addr, val uint32) error {
	space := c.dataSpace()
	if sz != Byte && addr&1 != 0 {
		return AddressError{Address: addr, Access: AccessWrite, Space: space, State: c.state}
	}
	switch sz {
	case Byte:
		c.mem.WriteByte(space, addr, val&0xff)
	case Word:
		c.mem.WriteWord(space, addr, val&0xffff)
	default:
		c.mem.WriteLong(space, addr, val)
	}
	return nil
}

// readProgram reads a sized operand from the program space. Used by the
// PC-relative addressing modes; instruction words go through the prefetch
// slot instead.
func (c *CPU) readProgram(sz Size, addr uint32) (uint32, error) {
	space := c.programSpace()
	if sz != Byte && addr&1 != 0 {
		return 0, AddressError{Address: addr, Access: AccessRead, Space: space, State: c.state}
	}
	switch sz {
	case Byte:
		return c.mem.ReadByte(space, addr), nil
	case Word:
		return c.mem.ReadWord(space, addr), nil
	default:
		return c.mem.ReadLong(space, addr), nil
	}
}

// prefetchIfNeeded refills the prefetch slot when the PC has moved into a
// new long-aligned window, then advances the PC by 2. Reports whether a bus
// read occurred.
func (c *CPU) prefetchIfNeeded() bool {
	fetched := false
	if c.PC&^3 != c.prefetchAddr {
		c.prefetchAddr = c.PC &^ 3
		c.prefetchData = c.mem.ReadLong(c.programSpace(), c.prefetchAddr)
		fetched = true
	}
	c.PC += 2
	return fetched
}

// readImmWord fetches the next 16-bit word from the instruction stream
// through the prefetch slot. An odd PC raises an Address Error.
func (c *CPU) readImmWord() (uint16, error) {
	if c.PC&1 != 0 {
		return 0, AddressError{Address: c.PC, Access: AccessRead, Space: c.programSpace(), State: c.state}
	}
	c.prefetchIfNeeded()
	return uint16(c.prefetchData >> ((2 - (c.PC-2)&2) << 3)), nil
}

// readImmLong fetches the next two instruction words as a 32-bit value.
func (c *CPU) readImmLong() (uint32, error) {
	if c.PC&1 != 0 {
		return 0, AddressError{Address: c.PC, Access: AccessRead, Space: c.programSpace(), State: c.state}
	}
	c.prefetchIfNeeded()
	prev := c.prefetchData
	if c.prefetchIfNeeded() {
		return prev<<16 | c.prefetchData>>16, nil
	}
	return prev, nil
}

// pushLong pushes a 32-bit value onto the active stack.
func (c *CPU) pushLong(val uint32) error {
	sp := c.DAR[stackPointerReg] - 4
	c.DAR[stackPointerReg] = sp
	return c.writeData(Long, sp, val)
}

// pushWord pushes a 16-bit value onto the active stack.
func (c *CPU) pushWord(val uint16) error {
	sp := c.DAR[stackPointerReg] - 2
	c.DAR[stackPointerReg] = sp
	return c.writeData(Word, sp, uint32(val))
}

// popLong pops a 32-bit value from the active stack.
func (c *CPU) popLong() (uint32, error) {
	val, err := c.readData(Long, c.DAR[stackPointerReg])
	if err != nil {
		return 0, err
	}
	c.DAR[stackPointerReg] += 4
	return val, nil
}

// popWord pops a 16-bit value from the active stack.
func (c *CPU) popWord() (uint16, error) {
	val, err := c.readData(Word, c.DAR[stackPointerReg])
	if err != nil {
		return 0, err
	}
	c.DAR[stackPointerReg] += 2
	return uint16(val), nil
}

// setDataReg merges a sized result into a data register, preserving the
// untouched upper bits for byte and word operations.
func (c *CPU) setDataReg(reg uint16, sz Size, val uint32) {
	mask := sz.Mask()
	c.DAR[reg&7] = c.DAR[reg&7]&^mask | val&mask
}

// addrReg returns a pointer to address register n.
func (c *CPU) addrReg(n uint16) *uint32 {
	return &c.DAR[8+n&7]
}
