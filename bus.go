package m68k

// AddressSpace identifies which of the four 68000 bus spaces an access
// belongs to: {user, supervisor} x {program, data}. The space is emitted on
// the bus as a 3-bit function code.
type AddressSpace uint8

const (
	UserData          AddressSpace = 1
	UserProgram       AddressSpace = 2
	SupervisorData    AddressSpace = 5
	SupervisorProgram AddressSpace = 6
)

// FC returns the 3-bit function code for this address space.
func (s AddressSpace) FC() uint8 {
	return uint8(s)
}

// String returns a human-readable name for this address space.
func (s AddressSpace) String() string {
	switch s {
	case UserData:
		return "user data"
	case UserProgram:
		return "user program"
	case SupervisorData:
		return "supervisor data"
	case SupervisorProgram:
		return "supervisor program"
	default:
		return "unknown"
	}
}

// Bus provides function-coded memory access for the CPU.
//
// Byte reads return the 8 data bits in the low byte of the result; word and
// long accesses are big-endian at the 68000 level (the byte at the lowest
// address is the most significant). The core never issues a word or long
// access to an odd address: alignment is checked upstream and raises an
// Address Error instead of reaching the bus.
type Bus interface {
	ReadByte(space AddressSpace, addr uint32) uint32
	ReadWord(space AddressSpace, addr uint32) uint32
	ReadLong(space AddressSpace, addr uint32) uint32
	WriteByte(space AddressSpace, addr uint32, val uint32)
	WriteWord(space AddressSpace, addr uint32, val uint32)
	WriteLong(space AddressSpace, addr uint32, val uint32)
}
