package m68k

import "log"

// Callbacks intercepts exceptions before the core processes them, as a seam
// for test instrumentation. Returning a nil error suppresses the exception
// and charges the returned cycle count instead.
type Callbacks interface {
	ExceptionCallback(c *CPU, ex error) (Cycles, error)
}

// canExecute reports whether the execute loop should keep going: the
// processor is running, or it is stopped with an interrupt that would wake
// it.
func (c *CPU) canExecute() bool {
	if c.state.Running() {
		return true
	}
	if c.state == Stopped {
		_, pending := c.pendingInterrupt()
		return pending
	}
	return false
}

// pendingInterrupt applies the acceptance rule: an IRQ is pending when its
// level exceeds the interrupt mask, or when level 7 is asserted while the
// last accepted level was not 7 (the non-maskable level is edge triggered).
// Polling has no side effects.
func (c *CPU) pendingInterrupt() (uint8, bool) {
	level := c.intCtrl.HighestPriority()
	edgeTriggeredNMI := c.irqLevel != 7 && level == 7
	if uint32(level)<<8 > c.intMask || edgeTriggeredNMI {
		return level, true
	}
	return 0, false
}

// readInstruction fetches the next instruction word, servicing a pending
// interrupt first. Interrupts surface as an InterruptRequest error without
// consuming instruction bytes.
func (c *CPU) readInstruction() (uint16, error) {
	if level, ok := c.pendingInterrupt(); ok {
		vector, ok := c.intCtrl.AcknowledgeInterrupt(level)
		if !ok {
			vector = spuriousInterrupt
		}
		return 0, InterruptRequest{Level: level, Vector: vector}
	}
	return c.readImmWord()
}

// step dispatches one instruction and returns its cycle cost, or the
// exception it raised.
func (c *CPU) step() (Cycles, error) {
	opcode, err := c.readInstruction()
	if err != nil {
		return 0, err
	}
	c.IR = opcode
	inst := &c.instructionSet[opcode]
	extra, err := inst.handler(c)
	if err != nil {
		return 0, err
	}
	return inst.cycles + extra, nil
}

// Execute runs instructions until the cycle budget is exhausted or the
// processor parks in Stopped or Halted. When the processor parks, the whole
// budget is reported as consumed; an overshoot by the final instruction is
// charged in full.
func (c *CPU) Execute(budget Cycles) Cycles {
	return c.ExecuteWithCallbacks(budget, nil)
}

// Execute1 runs a single instruction's worth of budget.
func (c *CPU) Execute1() Cycles {
	return c.Execute(1)
}

// ExecuteWithCallbacks is Execute with an exception-interception seam. A nil
// cb emulates every exception.
func (c *CPU) ExecuteWithCallbacks(budget Cycles, cb Callbacks) Cycles {
	remaining := budget
	for remaining > 0 && c.canExecute() {
		used, err := c.step()
		if err != nil && cb != nil {
			used, err = cb.ExceptionCallback(c, err)
		}
		if err != nil {
			used = c.processException(err)
		}
		remaining -= used
	}
	if c.state.Running() {
		return budget - remaining
	}
	// Parked: consume the full budget, plus any overshoot.
	if remaining < 0 {
		return budget - remaining
	}
	return budget
}

// processException applies the exception-entry routine for err. Faults
// raised while stacking the frame (an odd stack pointer) feed back in, so a
// second Group 0 fault lands in Halted via the double-fault rule.
func (c *CPU) processException(err error) Cycles {
	cycles, nested := c.enterException(err)
	if nested != nil {
		return cycles + c.processException(nested)
	}
	return cycles
}

func (c *CPU) enterException(err error) (Cycles, error) {
	switch ex := err.(type) {
	case AddressError:
		log.Printf("[m68k] %v", ex)
		return c.handleAddressError(ex)
	case IllegalInstruction:
		log.Printf("[m68k] %v", ex)
		return c.handleException(Group1Exception, vecIllegalInstruction, 34)
	case PrivilegeViolation:
		log.Printf("[m68k] %v", ex)
		return c.handleException(Group1Exception, vecPrivilegeViolation, 34)
	case UnimplementedInstruction:
		return c.handleException(Group2Exception, ex.Vector, 34)
	case TrapException:
		return c.handleException(Group2Exception, ex.Vector, ex.ExtraCycles)
	case InterruptRequest:
		return c.handleInterrupt(ex)
	default:
		panic("m68k: unknown exception type: " + err.Error())
	}
}

// ensureSupervisorMode backs up the status register, then forces supervisor
// mode, swapping in the supervisor stack pointer when entering from user
// mode.
func (c *CPU) ensureSupervisorMode() uint16 {
	backup := c.StatusRegister()
	if c.sFlag == 0 {
		c.inactiveUSP = c.DAR[stackPointerReg]
		c.DAR[stackPointerReg] = c.inactiveSSP
	}
	c.sFlag = sflagSet
	return backup
}

// jumpVector loads the PC from the vector table entry for vector.
func (c *CPU) jumpVector(vector uint8) error {
	addr, err := c.readData(Long, uint32(vector)<<2)
	if err != nil {
		return err
	}
	c.PC = addr
	return nil
}

// handleException enters a Group 1 or Group 2 exception: stack the return
// PC and the pre-exception status register, then vector.
func (c *CPU) handleException(state ProcessingState, vector uint8, cycles Cycles) (Cycles, error) {
	c.state = state
	backupSR := c.ensureSupervisorMode()

	if err := c.pushLong(c.PC); err != nil {
		return 0, err
	}
	if err := c.pushWord(backupSR); err != nil {
		return 0, err
	}
	if err := c.jumpVector(vector); err != nil {
		return 0, err
	}
	return cycles, nil
}

// handleInterrupt enters an interrupt exception. The interrupt mask is
// raised to the accepted level after the status register backup, so the
// stacked frame restores the pre-interrupt mask.
func (c *CPU) handleInterrupt(ex InterruptRequest) (Cycles, error) {
	pc := c.PC
	c.state = Group1Exception
	backupSR := c.ensureSupervisorMode()
	c.intMask = uint32(ex.Level) << 8
	c.irqLevel = ex.Level

	if err := c.jumpVector(ex.Vector); err != nil {
		return 0, err
	}
	if err := c.pushLong(pc); err != nil {
		return 0, err
	}
	if err := c.pushWord(backupSR); err != nil {
		return 0, err
	}

	// 44 cycles per MC68000UM Table 8-14; the interrupt acknowledge cycle
	// is assumed to take four clock periods.
	return 44, nil
}

// handleAddressError enters the Group 0 exception, pushing the extended
// frame: PC, SR, IR, the faulting address and the access-info word. A fault
// that was itself raised during Group 0 processing halts the processor.
func (c *CPU) handleAddressError(ex AddressError) (Cycles, error) {
	if ex.State == Group0Exception {
		c.state = Halted
		return 0, nil
	}
	c.state = Group0Exception
	backupSR := c.ensureSupervisorMode()

	if err := c.pushLong(c.PC); err != nil {
		return 0, err
	}
	if err := c.pushWord(backupSR); err != nil {
		return 0, err
	}
	if err := c.pushWord(c.IR); err != nil {
		return 0, err
	}
	if err := c.pushLong(ex.Address); err != nil {
		return 0, err
	}
	// Access-info word:
	//   bit 4   R/W  (1 = read)
	//   bit 3   I/N  (1 = not processing an instruction)
	//   bits 2-0 function code
	info := uint16(ex.Space.FC())
	if ex.Access == AccessRead {
		info |= 1 << 4
	}
	if !ex.State.instructionProcessing() {
		info |= 1 << 3
	}
	if err := c.pushWord(info); err != nil {
		return 0, err
	}
	if err := c.jumpVector(vecAddressError); err != nil {
		return 0, err
	}
	return 50, nil
}
