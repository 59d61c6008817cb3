package m68k

import "math/bits"

// Spurious interrupt vector and the base vector for auto-vectored devices.
// An auto-vectored device at IRQ level n uses vector autovectorBase + n.
const (
	spuriousInterrupt uint8 = 24
	autovectorBase    uint8 = 24
)

// InterruptController arbitrates interrupt requests for the CPU.
//
// The core polls HighestPriority once per instruction dispatch. When it
// decides to take an interrupt it calls AcknowledgeInterrupt with the level;
// the controller either supplies the vector number for the interrupting
// device or reports false, in which case the core substitutes the spurious
// interrupt vector (24).
//
// The core is single-threaded and only polls at instruction boundaries.
// Controllers fed from other goroutines must make their own state safe to
// poll from the CPU goroutine.
type InterruptController interface {
	// HighestPriority returns the highest currently-asserted IRQ level,
	// 0..7, where 0 means no request is pending.
	HighestPriority() uint8

	// AcknowledgeInterrupt accepts an interrupt at the given level and
	// returns the vector number supplied by the device. ok is false for a
	// spurious interrupt.
	AcknowledgeInterrupt(level uint8) (vector uint8, ok bool)

	// ResetExternalDevices is invoked by the RESET instruction.
	ResetExternalDevices()
}

// AutoInterruptController is an InterruptController for systems where every
// device auto-vectors: acknowledging level n yields vector 24+n. Levels are
// asserted with RequestInterrupt and cleared when acknowledged.
type AutoInterruptController struct {
	asserted uint8 // bit n set = level n asserted (bit 0 unused)
}

// RequestInterrupt asserts an IRQ at the given priority level (1-7).
func (a *AutoInterruptController) RequestInterrupt(level uint8) {
	if level >= 1 && level <= 7 {
		a.asserted |= 1 << level
	}
}

// HighestPriority returns the highest asserted level, or 0.
func (a *AutoInterruptController) HighestPriority() uint8 {
	if a.asserted == 0 {
		return 0
	}
	return uint8(bits.Len8(a.asserted)) - 1
}

// AcknowledgeInterrupt clears the level and returns its autovector.
func (a *AutoInterruptController) AcknowledgeInterrupt(level uint8) (uint8, bool) {
	a.asserted &^= 1 << level
	return autovectorBase + level, true
}

// ResetExternalDevices drops all asserted levels.
func (a *AutoInterruptController) ResetExternalDevices() {
	a.asserted = 0
}
