package m68k

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flagBits reads XNZVC out of the packed status register.
func flagBits(c *CPU) (x, n, z, v, cf bool) {
	sr := c.StatusRegister()
	return sr&0x10 != 0, sr&0x08 != 0, sr&0x04 != 0, sr&0x02 != 0, sr&0x01 != 0
}

func TestAdd8Exhaustive(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	for a := uint32(0); a < 256; a++ {
		for b := uint32(0); b < 256; b++ {
			res := cpu.add8(a, b)
			sum := a + b
			if res != sum&0xff {
				t.Fatalf("add8(%02x, %02x) = %02x, want %02x", a, b, res, sum&0xff)
			}
			x, n, z, v, cf := flagBits(cpu)
			if want := sum > 0xff; cf != want || x != want {
				t.Fatalf("add8(%02x, %02x): C=%v X=%v, want %v", a, b, cf, x, want)
			}
			if want := res == 0; z != want {
				t.Fatalf("add8(%02x, %02x): Z=%v, want %v", a, b, z, want)
			}
			if want := res&0x80 != 0; n != want {
				t.Fatalf("add8(%02x, %02x): N=%v, want %v", a, b, n, want)
			}
			sa, sb, sr := int8(a), int8(b), int8(res)
			if want := (sa >= 0) == (sb >= 0) && (sa >= 0) != (sr >= 0); v != want {
				t.Fatalf("add8(%02x, %02x): V=%v, want %v", a, b, v, want)
			}
		}
	}
}

func TestSub8Exhaustive(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	for a := uint32(0); a < 256; a++ {
		for b := uint32(0); b < 256; b++ {
			res := cpu.sub8(a, b)
			if res != (a-b)&0xff {
				t.Fatalf("sub8(%02x, %02x) = %02x, want %02x", a, b, res, (a-b)&0xff)
			}
			x, n, z, v, cf := flagBits(cpu)
			if want := b > a; cf != want || x != want {
				t.Fatalf("sub8(%02x, %02x): C=%v X=%v, want %v", a, b, cf, x, want)
			}
			if want := res == 0; z != want {
				t.Fatalf("sub8(%02x, %02x): Z=%v, want %v", a, b, z, want)
			}
			if want := res&0x80 != 0; n != want {
				t.Fatalf("sub8(%02x, %02x): N=%v, want %v", a, b, n, want)
			}
			sa, sb, sr := int8(a), int8(b), int8(res)
			if want := (sa >= 0) != (sb >= 0) && (sa >= 0) != (sr >= 0); v != want {
				t.Fatalf("sub8(%02x, %02x): V=%v, want %v", a, b, v, want)
			}
		}
	}
}

func TestAdd16SampledAgainstModel(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	for a := uint32(0); a <= 0xffff; a += 251 {
		for b := uint32(0); b <= 0xffff; b += 257 {
			res := cpu.add16(a, b)
			sum := a + b
			require.Equal(t, sum&0xffff, res)
			x, n, z, v, cf := flagBits(cpu)
			assert.Equal(t, sum > 0xffff, cf)
			assert.Equal(t, sum > 0xffff, x)
			assert.Equal(t, res == 0, z)
			assert.Equal(t, res&0x8000 != 0, n)
			sa, sb, sr := int16(a), int16(b), int16(res)
			assert.Equal(t, (sa >= 0) == (sb >= 0) && (sa >= 0) != (sr >= 0), v)
		}
	}
}

func TestAdd32CarryAndOverflow(t *testing.T) {
	cpu, _, _ := newTestCore(0)

	res := cpu.add32(0xffffffff, 1)
	assert.Equal(t, uint32(0), res)
	x, n, z, v, cf := flagBits(cpu)
	assert.True(t, cf)
	assert.True(t, x)
	assert.True(t, z)
	assert.False(t, n)
	assert.False(t, v)

	res = cpu.add32(0x7fffffff, 1)
	assert.Equal(t, uint32(0x80000000), res)
	_, n, _, v, cf = flagBits(cpu)
	assert.True(t, v)
	assert.True(t, n)
	assert.False(t, cf)
}

func TestAddxStickyZero(t *testing.T) {
	cpu, _, _ := newTestCore(0)

	// Multi-precision add: low half produces zero with carry, high half
	// consumes X; Z must stay set across the pair only when both are zero.
	cpu.SetStatusRegister(0x2704) // Z set, X clear
	res := cpu.addx8(0xff, 0x01)
	assert.Equal(t, uint32(0), res)
	_, _, z, _, _ := flagBits(cpu)
	assert.True(t, z, "zero result must leave a set Z alone")

	res = cpu.addx8(0x00, 0x00) // X from previous carry makes this 1
	assert.Equal(t, uint32(1), res)
	_, _, z, _, _ = flagBits(cpu)
	assert.False(t, z)

	// A non-zero result clears Z even when it was set before.
	cpu.SetStatusRegister(0x2704)
	cpu.addx8(0x01, 0x01)
	_, _, z, _, _ = flagBits(cpu)
	assert.False(t, z)

	// A zero result never sets a cleared Z.
	cpu.SetStatusRegister(0x2700)
	cpu.addx8(0x00, 0x00)
	_, _, z, _, _ = flagBits(cpu)
	assert.False(t, z)
}

func TestSubxStickyZero(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	cpu.SetStatusRegister(0x2700) // Z clear
	cpu.subx8(0x01, 0x01)
	_, _, z, _, _ := flagBits(cpu)
	assert.False(t, z, "subx must not set Z")

	cpu.SetStatusRegister(0x2704)
	cpu.subx8(0x01, 0x01)
	_, _, z, _, _ = flagBits(cpu)
	assert.True(t, z)
}

func TestCmpLeavesX(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	cpu.SetStatusRegister(0x2710) // X set
	cpu.cmp8(0x00, 0x01)
	x, n, z, _, cf := flagBits(cpu)
	assert.True(t, x, "cmp must not touch X")
	assert.True(t, cf)
	assert.True(t, n)
	assert.False(t, z)
}

func TestLogicalPrimitives(t *testing.T) {
	cpu, _, _ := newTestCore(0)

	cpu.SetStatusRegister(0x2713) // C and V set
	res := cpu.and8(0xf0, 0x0f)
	assert.Equal(t, uint32(0), res)
	_, n, z, v, cf := flagBits(cpu)
	assert.True(t, z)
	assert.False(t, n)
	assert.False(t, v, "logic ops clear V")
	assert.False(t, cf, "logic ops clear C")

	res = cpu.or16(0x8000, 0x0001)
	assert.Equal(t, uint32(0x8001), res)
	_, n, z, _, _ = flagBits(cpu)
	assert.True(t, n)
	assert.False(t, z)

	res = cpu.eor32(0xffffffff, 0x7fffffff)
	assert.Equal(t, uint32(0x80000000), res)
	_, n, _, _, _ = flagBits(cpu)
	assert.True(t, n)

	res = cpu.not8(0xff)
	assert.Equal(t, uint32(0), res)
	_, _, z, _, _ = flagBits(cpu)
	assert.True(t, z)
}

func TestShiftPrimitives(t *testing.T) {
	cpu, _, _ := newTestCore(0)

	t.Run("lsr carries the last bit out", func(t *testing.T) {
		res := cpu.lsr8(0x01, 1)
		assert.Equal(t, uint32(0), res)
		x, _, z, v, cf := flagBits(cpu)
		assert.True(t, cf)
		assert.True(t, x)
		assert.True(t, z)
		assert.False(t, v)
	})

	t.Run("asl sets V on sign change", func(t *testing.T) {
		res := cpu.asl8(0x40, 1)
		assert.Equal(t, uint32(0x80), res)
		_, n, _, v, cf := flagBits(cpu)
		assert.True(t, v)
		assert.True(t, n)
		assert.False(t, cf)
	})

	t.Run("asr drags the sign", func(t *testing.T) {
		res := cpu.asr8(0x80, 1)
		assert.Equal(t, uint32(0xc0), res)
		_, n, _, v, cf := flagBits(cpu)
		assert.True(t, n)
		assert.False(t, v)
		assert.False(t, cf)
	})

	t.Run("asr past the width saturates", func(t *testing.T) {
		res := cpu.asr16(0x8000, 20)
		assert.Equal(t, uint32(0xffff), res)
		x, n, z, _, cf := flagBits(cpu)
		assert.True(t, cf)
		assert.True(t, x)
		assert.True(t, n)
		assert.False(t, z)
	})

	t.Run("rol wraps into carry", func(t *testing.T) {
		res := cpu.rol8(0x81, 1)
		assert.Equal(t, uint32(0x03), res)
		_, _, _, _, cf := flagBits(cpu)
		assert.True(t, cf)
	})

	t.Run("ror zero count clears C and keeps NZ", func(t *testing.T) {
		cpu.SetStatusRegister(0x2701) // C set
		res := cpu.ror8(0x80, 0)
		assert.Equal(t, uint32(0x80), res)
		_, n, z, _, cf := flagBits(cpu)
		assert.False(t, cf)
		assert.True(t, n)
		assert.False(t, z)
	})

	t.Run("ro does not touch X", func(t *testing.T) {
		cpu.SetStatusRegister(0x2710) // X set
		cpu.rol8(0x81, 1)
		x, _, _, _, _ := flagBits(cpu)
		assert.True(t, x)
	})

	t.Run("roxr rotates through X", func(t *testing.T) {
		cpu.SetStatusRegister(0x2700) // X clear
		res := cpu.roxr8(0x01, 1)
		assert.Equal(t, uint32(0x00), res)
		x, _, z, _, cf := flagBits(cpu)
		assert.True(t, x)
		assert.True(t, cf)
		assert.True(t, z)

		res = cpu.roxr8(0x00, 1) // X from the previous rotate re-enters at the top
		assert.Equal(t, uint32(0x80), res)
	})

	t.Run("roxl zero count copies X to C", func(t *testing.T) {
		cpu.SetStatusRegister(0x2710) // X set, C clear
		res := cpu.roxl8(0x01, 0)
		assert.Equal(t, uint32(0x01), res)
		x, _, _, _, cf := flagBits(cpu)
		assert.True(t, cf)
		assert.True(t, x, "zero-count rox leaves X unchanged")
	})
}

func TestMultiplyPrimitives(t *testing.T) {
	cpu, _, _ := newTestCore(0)

	res := cpu.mulu16(0xffff, 0xffff)
	assert.Equal(t, uint32(0xfffe0001), res)
	_, n, z, v, cf := flagBits(cpu)
	assert.True(t, n)
	assert.False(t, z)
	assert.False(t, v)
	assert.False(t, cf)

	res = cpu.muls16(-2, 3)
	assert.Equal(t, uint32(0xfffffffa), res)
	_, n, _, _, _ = flagBits(cpu)
	assert.True(t, n)

	res = cpu.muls16(0, 1234)
	assert.Equal(t, uint32(0), res)
	_, _, z, _, _ = flagBits(cpu)
	assert.True(t, z)
}

func TestDividePrimitives(t *testing.T) {
	cpu, _, _ := newTestCore(0)

	t.Run("divu packs remainder and quotient", func(t *testing.T) {
		res, ok := cpu.divu16(0x1000f, 4)
		require.True(t, ok)
		assert.Equal(t, uint32(0x0003_4003), res)
		_, _, _, v, cf := flagBits(cpu)
		assert.False(t, v)
		assert.False(t, cf)
	})

	t.Run("divu overflow sets V and keeps the destination", func(t *testing.T) {
		_, ok := cpu.divu16(0x20000, 2)
		require.False(t, ok)
		_, _, _, v, _ := flagBits(cpu)
		assert.True(t, v)
	})

	t.Run("divs signed remainder", func(t *testing.T) {
		res, ok := cpu.divs16(0xfffffff9, 2) // -7 / 2 = -3 rem -1
		require.True(t, ok)
		assert.Equal(t, uint32(0xffff_fffd), res)
	})

	t.Run("divs most negative by minus one", func(t *testing.T) {
		res, ok := cpu.divs16(0x80000000, -1)
		require.True(t, ok)
		assert.Equal(t, uint32(0), res)
		_, n, z, v, cf := flagBits(cpu)
		assert.True(t, z)
		assert.False(t, n)
		assert.False(t, v)
		assert.False(t, cf)
	})

	t.Run("divs overflow", func(t *testing.T) {
		_, ok := cpu.divs16(0x40000000, 1)
		require.False(t, ok)
		_, _, _, v, _ := flagBits(cpu)
		assert.True(t, v)
	})
}

func TestBCDPrimitives(t *testing.T) {
	cpu, _, _ := newTestCore(0)

	t.Run("abcd", func(t *testing.T) {
		cpu.SetStatusRegister(0x2700)
		res := cpu.abcd8(0x16, 0x26)
		assert.Equal(t, uint32(0x42), res)
		x, _, _, _, cf := flagBits(cpu)
		assert.False(t, cf)
		assert.False(t, x)
	})

	t.Run("abcd with decimal carry", func(t *testing.T) {
		cpu.SetStatusRegister(0x2704) // Z set
		res := cpu.abcd8(0x99, 0x01)
		assert.Equal(t, uint32(0x00), res)
		x, _, z, _, cf := flagBits(cpu)
		assert.True(t, cf)
		assert.True(t, x)
		assert.True(t, z, "zero result keeps Z sticky")
	})

	t.Run("abcd consumes X", func(t *testing.T) {
		cpu.SetStatusRegister(0x2710) // X set
		res := cpu.abcd8(0x15, 0x26)
		assert.Equal(t, uint32(0x42), res)
	})

	t.Run("sbcd", func(t *testing.T) {
		cpu.SetStatusRegister(0x2700)
		res := cpu.sbcd8(0x42, 0x16)
		assert.Equal(t, uint32(0x26), res)
		_, _, _, _, cf := flagBits(cpu)
		assert.False(t, cf)
	})

	t.Run("sbcd with borrow", func(t *testing.T) {
		cpu.SetStatusRegister(0x2700)
		res := cpu.sbcd8(0x00, 0x01)
		assert.Equal(t, uint32(0x99), res)
		x, _, _, _, cf := flagBits(cpu)
		assert.True(t, cf)
		assert.True(t, x)
	})

	t.Run("nbcd of zero is a no-op", func(t *testing.T) {
		cpu.SetStatusRegister(0x2700)
		_, ok := cpu.nbcd8(0x00)
		assert.False(t, ok)
		x, _, _, _, cf := flagBits(cpu)
		assert.False(t, cf)
		assert.False(t, x)
	})

	t.Run("nbcd negates", func(t *testing.T) {
		cpu.SetStatusRegister(0x2700)
		res, ok := cpu.nbcd8(0x01)
		require.True(t, ok)
		assert.Equal(t, uint32(0x99), res)
		_, _, _, _, cf := flagBits(cpu)
		assert.True(t, cf)
	})
}

func TestMoveFlags(t *testing.T) {
	cpu, _, _ := newTestCore(0)
	cpu.SetStatusRegister(0x271f)
	cpu.aluMoveFlags(Byte, 0x80)
	x, n, z, v, cf := flagBits(cpu)
	assert.True(t, x, "move leaves X alone")
	assert.True(t, n)
	assert.False(t, z)
	assert.False(t, v)
	assert.False(t, cf)

	cpu.aluMoveFlags(Long, 0)
	_, n, z, _, _ = flagBits(cpu)
	assert.False(t, n)
	assert.True(t, z)
}
