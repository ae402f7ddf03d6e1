package btypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord128Shl(t *testing.T) {
	one := Word128{Lo: 1}

	assert.Equal(t, Word128{Lo: 1}, one.Shl(0))
	assert.Equal(t, Word128{Lo: 1 << 63}, one.Shl(63))
	assert.Equal(t, Word128{Hi: 1}, one.Shl(64))
	assert.Equal(t, Word128{Hi: 1 << 63}, one.Shl(127))
	assert.Equal(t, Word128{}, one.Shl(128))

	// carries cross the half boundary
	w := Word128{Lo: 0x8000000000000000}
	assert.Equal(t, Word128{Hi: 1}, w.Shl(1))
}

func TestWord128Shr(t *testing.T) {
	top := Word128{Hi: 1 << 63}

	assert.Equal(t, top, top.Shr(0))
	assert.Equal(t, Word128{Hi: 1}, top.Shr(63))
	assert.Equal(t, Word128{Lo: 1 << 63}, top.Shr(64))
	assert.Equal(t, Word128{Lo: 1}, top.Shr(127))
	assert.Equal(t, Word128{}, top.Shr(128))

	w := Word128{Hi: 1}
	assert.Equal(t, Word128{Lo: 0x8000000000000000}, w.Shr(1))
}

func TestWord128Bitwise(t *testing.T) {
	a := Word128{Hi: 0xF0, Lo: 0x0F}
	b := Word128{Hi: 0xFF, Lo: 0xFF}

	assert.Equal(t, Word128{Hi: 0xF0, Lo: 0x0F}, a.And(b))
	assert.Equal(t, b, a.Or(b))
	assert.Equal(t, Word128{Hi: 0x0F, Lo: 0xF0}, a.Xor(b))
	assert.Equal(t, Word128{Hi: ^uint64(0xF0), Lo: ^uint64(0x0F)}, a.Not())
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, uint64(0x0F), a.Uint())
	assert.Equal(t, Word128{Lo: 42}, a.FromUint(42))
	assert.Equal(t, uint(128), a.Width())
}

func TestBitAtWithBit(t *testing.T) {
	var w Word8
	w = withBit(w, 0, true)
	w = withBit(w, 7, true)
	assert.Equal(t, Word8(0x81), w)
	assert.True(t, bitAt(w, 0))
	assert.False(t, bitAt(w, 3))
	assert.True(t, bitAt(w, 7))

	w = withBit(w, 7, false)
	assert.Equal(t, Word8(0x01), w)

	// same algorithm across the 64-bit boundary of Word128
	var big Word128
	big = withBit(big, 64, true)
	assert.Equal(t, Word128{Hi: 1}, big)
	assert.True(t, bitAt(big, 64))
	assert.False(t, bitAt(big, 63))
	big = withBit(big, 64, false)
	assert.Equal(t, Word128{}, big)
}

func TestBinaryString(t *testing.T) {
	assert.Equal(t, "00000101", binaryString(Word8(5)))
	assert.Equal(t, "1000000000000001", binaryString(Word16(0x8001)))

	w := binaryString(Word128{Hi: 1, Lo: 1})
	assert.Len(t, w, 128)
	assert.Equal(t, byte('1'), w[63])  // bit 64
	assert.Equal(t, byte('1'), w[127]) // bit 0
	assert.Equal(t, byte('0'), w[0])   // bit 127
}

func TestGrowCap(t *testing.T) {
	assert.Equal(t, 1, growCap(0, 1))
	assert.Equal(t, 16, growCap(8, 9))
	assert.Equal(t, 100, growCap(8, 100))
	assert.Equal(t, 1280, growCap(1024, 1025))
}
