package m68k

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize:
// version, dar, pc, inactive stack pointers, ir, prefetch slot, the five
// flag slots, system state and the IRQ latch.
const cpuSerializeSize = 1 + 16*4 + 4 + 4 + 4 + 2 + 4 + 4 + 5*4 + 4 + 4 + 1 + 1 + 1

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize() bytes. The bus, interrupt controller and dispatch table
// references are not included.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("m68k: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	for i := 0; i < 16; i++ {
		be.PutUint32(buf[off:], c.DAR[i])
		off += 4
	}
	be.PutUint32(buf[off:], c.PC)
	off += 4
	be.PutUint32(buf[off:], c.inactiveSSP)
	off += 4
	be.PutUint32(buf[off:], c.inactiveUSP)
	off += 4
	be.PutUint16(buf[off:], c.IR)
	off += 2
	be.PutUint32(buf[off:], c.prefetchAddr)
	off += 4
	be.PutUint32(buf[off:], c.prefetchData)
	off += 4

	for _, flag := range []uint32{c.xFlag, c.cFlag, c.vFlag, c.nFlag, c.notZFlag} {
		be.PutUint32(buf[off:], flag)
		off += 4
	}
	be.PutUint32(buf[off:], c.sFlag)
	off += 4
	be.PutUint32(buf[off:], c.intMask)
	off += 4
	buf[off] = c.irqLevel
	off++
	buf[off] = byte(c.state)
	off++
	buf[off] = boolByte(c.tasWriteback)
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores CPU state from buf. The bus, interrupt controller
// and dispatch table wiring are left unchanged.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("m68k: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("m68k: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	for i := 0; i < 16; i++ {
		c.DAR[i] = be.Uint32(buf[off:])
		off += 4
	}
	c.PC = be.Uint32(buf[off:])
	off += 4
	c.inactiveSSP = be.Uint32(buf[off:])
	off += 4
	c.inactiveUSP = be.Uint32(buf[off:])
	off += 4
	c.IR = be.Uint16(buf[off:])
	off += 2
	c.prefetchAddr = be.Uint32(buf[off:])
	off += 4
	c.prefetchData = be.Uint32(buf[off:])
	off += 4

	for _, flag := range []*uint32{&c.xFlag, &c.cFlag, &c.vFlag, &c.nFlag, &c.notZFlag} {
		*flag = be.Uint32(buf[off:])
		off += 4
	}
	c.sFlag = be.Uint32(buf[off:])
	off += 4
	c.intMask = be.Uint32(buf[off:])
	off += 4
	c.irqLevel = buf[off]
	off++
	c.state = ProcessingState(buf[off])
	off++
	c.tasWriteback = buf[off] != 0
	return nil
}
