package m68k

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// busOp is one logged bus access.
type busOp struct {
	write bool
	space AddressSpace
	size  Size
	addr  uint32
	val   uint32
}

// loggingBus is a sparse memory backing all four address spaces, with an
// operation trace and a fill pattern for uninitialized locations. The trace
// lets tests pin the observable access pattern, in particular the one
// long-aligned program read per two instruction words that the prefetch
// slot produces.
type loggingBus struct {
	initializer uint32
	mem         map[uint32]byte
	ops         []busOp
}

func newLoggingBus() *loggingBus {
	return &loggingBus{initializer: 0xaaaaaaaa, mem: make(map[uint32]byte)}
}

func (b *loggingBus) peek(addr uint32) byte {
	if v, ok := b.mem[addr]; ok {
		return v
	}
	return byte(b.initializer >> (24 - 8*(addr&3)))
}

func (b *loggingBus) poke(addr uint32, val byte) {
	b.mem[addr] = val
}

// pokeBytes stores a byte sequence starting at addr.
func (b *loggingBus) pokeBytes(addr uint32, data ...byte) {
	for i, v := range data {
		b.poke(addr+uint32(i), v)
	}
}

// pokeLong stores a big-endian 32-bit value.
func (b *loggingBus) pokeLong(addr, val uint32) {
	b.pokeBytes(addr, byte(val>>24), byte(val>>16), byte(val>>8), byte(val))
}

func (b *loggingBus) rawRead(sz Size, addr uint32) uint32 {
	var val uint32
	for i := uint32(0); i < uint32(sz); i++ {
		val = val<<8 | uint32(b.peek(addr+i))
	}
	return val
}

func (b *loggingBus) rawWrite(sz Size, addr, val uint32) {
	for i := uint32(0); i < uint32(sz); i++ {
		b.poke(addr+i, byte(val>>(8*(uint32(sz)-1-i))))
	}
}

func (b *loggingBus) read(space AddressSpace, sz Size, addr uint32) uint32 {
	val := b.rawRead(sz, addr)
	b.ops = append(b.ops, busOp{space: space, size: sz, addr: addr, val: val})
	return val
}

func (b *loggingBus) writeOp(space AddressSpace, sz Size, addr, val uint32) {
	b.rawWrite(sz, addr, val)
	b.ops = append(b.ops, busOp{write: true, space: space, size: sz, addr: addr, val: val})
}

func (b *loggingBus) ReadByte(space AddressSpace, addr uint32) uint32 {
	return b.read(space, Byte, addr)
}

func (b *loggingBus) ReadWord(space AddressSpace, addr uint32) uint32 {
	return b.read(space, Word, addr)
}

func (b *loggingBus) ReadLong(space AddressSpace, addr uint32) uint32 {
	return b.read(space, Long, addr)
}

func (b *loggingBus) WriteByte(space AddressSpace, addr, val uint32) {
	b.writeOp(space, Byte, addr, val)
}

func (b *loggingBus) WriteWord(space AddressSpace, addr, val uint32) {
	b.writeOp(space, Word, addr, val)
}

func (b *loggingBus) WriteLong(space AddressSpace, addr, val uint32) {
	b.writeOp(space, Long, addr, val)
}

// clearOps drops the trace collected so far.
func (b *loggingBus) clearOps() {
	b.ops = nil
}

// programReads returns the logged program-space reads.
func (b *loggingBus) programReads() []busOp {
	var out []busOp
	for _, op := range b.ops {
		if !op.write && (op.space == SupervisorProgram || op.space == UserProgram) {
			out = append(out, op)
		}
	}
	return out
}

// newTestCore builds a core on a logging bus with an auto-vectoring
// interrupt controller, the given program bytes at base, and the PC at
// base. Supervisor mode, interrupts masked, as after New.
func newTestCore(base uint32, prog ...byte) (*CPU, *loggingBus, *AutoInterruptController) {
	bus := newLoggingBus()
	bus.pokeBytes(base, prog...)
	ctrl := &AutoInterruptController{}
	cpu := New(base, bus, ctrl)
	cpu.DAR[stackPointerReg] = 0x10000
	return cpu, bus, ctrl
}

// dumpCPU logs the full register file and flag state on test failure.
func dumpCPU(t *testing.T, c *CPU) {
	t.Helper()
	t.Logf("pc=%08x sr=%04x (%s) state=%v\n%s",
		c.PC, c.StatusRegister(), c.Flags(), c.State(), spew.Sdump(c.DAR))
}
