package m68k

import "fmt"

// MC68000 exception vector numbers. Vector table entries live at vector*4.
const (
	vecAddressError       uint8 = 3
	vecIllegalInstruction uint8 = 4
	vecZeroDivide         uint8 = 5
	vecCHK                uint8 = 6
	vecTRAPV              uint8 = 7
	vecPrivilegeViolation uint8 = 8
	vecUnimplementedLineA uint8 = 10
	vecUnimplementedLineF uint8 = 11
	vecTrapBase           uint8 = 32 // TRAP #0..#15 = vectors 32-47
)

// ProcessingState tracks what the processor is currently doing. The state
// selects the shape of a Group 0 stack frame and gates the double-fault rule.
type ProcessingState int

const (
	Normal          ProcessingState = iota // executing instructions
	Group2Exception                        // TRAP(V), CHK, zero divide
	Group1Exception                        // interrupt, illegal instruction, privilege violation
	Group0Exception                        // address error
	Stopped                                // STOP executed; interrupt or reset resumes
	Halted                                 // double fault; only reset resumes
)

// Running reports whether the processor executes instructions in this state.
func (s ProcessingState) Running() bool {
	return s != Stopped && s != Halted
}

// instructionProcessing reports whether the processor counts as processing
// an instruction for the purposes of the Group 0 access-info word. Group 0
// and Group 1 exception processing does not; normal execution and Group 2
// exception processing does.
func (s ProcessingState) instructionProcessing() bool {
	return s == Normal || s == Group2Exception
}

func (s ProcessingState) String() string {
	switch s {
	case Normal:
		return "normal"
	case Group2Exception:
		return "group 2 exception"
	case Group1Exception:
		return "group 1 exception"
	case Group0Exception:
		return "group 0 exception"
	case Stopped:
		return "stopped"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

// AccessType distinguishes the faulting direction of a bus access.
type AccessType int

const (
	AccessRead AccessType = iota
	AccessWrite
)

func (a AccessType) String() string {
	if a == AccessWrite {
		return "write"
	}
	return "read"
}

// AddressError is raised by a word or long access to an odd address, or by
// an instruction fetch from an odd PC. It records everything the Group 0
// stack frame needs.
type AddressError struct {
	Address uint32
	Access  AccessType
	Space   AddressSpace
	State   ProcessingState // processing state at the time of the fault
}

func (e AddressError) Error() string {
	return fmt.Sprintf("address error: %s %s at %08x during %s processing",
		e.Access, e.Space, e.Address, e.State)
}

// IllegalInstruction is raised when dispatch lands on an unmapped opcode.
type IllegalInstruction struct {
	IR uint16
	PC uint32 // address of the faulting instruction
}

func (e IllegalInstruction) Error() string {
	return fmt.Sprintf("illegal instruction %04x at %08x", e.IR, e.PC)
}

// PrivilegeViolation is raised by a privileged instruction in user mode.
type PrivilegeViolation struct {
	IR uint16
	PC uint32
}

func (e PrivilegeViolation) Error() string {
	return fmt.Sprintf("privilege violation %04x at %08x", e.IR, e.PC)
}

// TrapException covers the Group 2 traps: TRAP #n, TRAPV, CHK and zero
// divide. ExtraCycles carries the instruction-specific cost (base trap cost
// plus any effective-address calculation time) charged on exception entry.
type TrapException struct {
	Vector      uint8
	ExtraCycles Cycles
}

func (e TrapException) Error() string {
	return fmt.Sprintf("trap: vector %02x (%d cycles)", e.Vector, e.ExtraCycles)
}

// UnimplementedInstruction is raised by opcodes in the line-A and line-F
// regions, which have dedicated vectors.
type UnimplementedInstruction struct {
	IR     uint16
	PC     uint32
	Vector uint8
}

func (e UnimplementedInstruction) Error() string {
	return fmt.Sprintf("unimplemented instruction %04x at %08x", e.IR, e.PC)
}

// InterruptRequest is produced at an instruction boundary when a pending IRQ
// wins arbitration. Vector is the acknowledged (or spurious) vector number.
type InterruptRequest struct {
	Level  uint8
	Vector uint8
}

func (e InterruptRequest) Error() string {
	return fmt.Sprintf("interrupt %d (vector %02x)", e.Level, e.Vector)
}
