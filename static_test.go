package btypes_test

import (
	"errors"
	"testing"

	"github.com/afemboylol/btypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolsSetGet(t *testing.T) {
	b := btypes.NewBools[btypes.Word8]()
	require.Equal(t, uint(8), b.Cap())

	require.NoError(t, b.Set(0, true))
	require.NoError(t, b.Set(2, true))
	v, err := b.Get(0)
	require.NoError(t, err)
	assert.True(t, v)
	v, err = b.Get(1)
	require.NoError(t, err)
	assert.False(t, v)

	assert.Equal(t, btypes.Word8(0b101), b.Raw())
	assert.Equal(t, "{0 2}", b.String())
}

func TestBoolsBounds(t *testing.T) {
	b := btypes.NewBools[btypes.Word8]()

	err := b.Set(8, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, btypes.ErrInvalidPosition))

	_, err = b.Get(8)
	assert.True(t, errors.Is(err, btypes.ErrInvalidPosition))

	assert.True(t, errors.Is(b.Seek(8), btypes.ErrInvalidPosition))
	require.NoError(t, b.Set(7, true))
}

func TestBoolsToggle(t *testing.T) {
	b := btypes.NewBoolsFrom(btypes.Word16(0b10))

	require.NoError(t, b.Toggle(1))
	assert.Equal(t, btypes.Word16(0), b.Raw())
	require.NoError(t, b.Toggle(15))
	assert.Equal(t, btypes.Word16(1<<15), b.Raw())
	assert.True(t, errors.Is(b.Toggle(16), btypes.ErrInvalidPosition))
}

func TestBoolsCursor(t *testing.T) {
	b := btypes.NewBoolsFrom(btypes.Word8(0b101))

	got := make([]bool, 0, 8)
	for {
		v, err := b.Next()
		if err != nil {
			assert.True(t, errors.Is(err, btypes.ErrInvalidPosition))
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []bool{true, false, true, false, false, false, false, false}, got)

	require.NoError(t, b.Seek(2))
	v, err := b.Next()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestBoolsAllClear(t *testing.T) {
	b := btypes.NewBoolsFrom(btypes.Word8(0b11))

	assert.Equal(t, []bool{true, true, false, false, false, false, false, false}, b.All())
	b.Clear()
	assert.Equal(t, btypes.Word8(0), b.Raw())
	assert.Equal(t, "{}", b.String())
}

func TestBools128(t *testing.T) {
	b := btypes.NewBools[btypes.Word128]()
	require.Equal(t, uint(128), b.Cap())

	require.NoError(t, b.Set(127, true))
	require.NoError(t, b.Set(64, true))
	require.NoError(t, b.Set(0, true))

	v, err := b.Get(127)
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, btypes.Word128{Hi: 1<<63 | 1, Lo: 1}, b.Raw())
	assert.Equal(t, "{0 64 127}", b.String())
	assert.True(t, errors.Is(b.Set(128, true), btypes.ErrInvalidPosition))
}

func TestBoolsBinary(t *testing.T) {
	b := btypes.NewBoolsFrom(btypes.Word8(5))
	assert.Equal(t, "00000101", b.Binary())
}
