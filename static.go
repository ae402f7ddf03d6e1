package btypes

import (
	"bytes"
	"fmt"
)

// Bools is a fixed-capacity positional boolean container.
// Its zero value is the empty container; capacity equals the backing
// word's bit width and never changes.
//
// bit i lives at store & (1<<i), so position checks reduce to i < width.
type Bools[T Nums[T]] struct {
	store T

	// reader cursor for Seek/Next
	head uint
}

// Fixed-width positional aliases, one per backing word.
type (
	B8   = Bools[Word8]
	B16  = Bools[Word16]
	B32  = Bools[Word32]
	B64  = Bools[Word64]
	B128 = Bools[Word128]
)

// NewBools returns an empty fixed container over the backing word T.
func NewBools[T Nums[T]]() *Bools[T] {
	return &Bools[T]{}
}

// NewBoolsFrom returns a fixed container preloaded with raw.
func NewBoolsFrom[T Nums[T]](raw T) *Bools[T] {
	return &Bools[T]{store: raw}
}

// Cap returns the number of addressable bits.
func (b *Bools[T]) Cap() uint { return b.store.Width() }

// Bounded reports that the capacity is fixed.
func (b *Bools[T]) Bounded() bool { return true }

// Get returns the bit at pos.
// time complexity: O(1)
func (b *Bools[T]) Get(pos uint) (bool, error) {
	if pos >= b.Cap() {
		return false, fmt.Errorf("%w: %d outside width %d", ErrInvalidPosition, pos, b.Cap())
	}
	return bitAt(b.store, pos), nil
}

// Set forces the bit at pos to value.
// time complexity: O(1)
func (b *Bools[T]) Set(pos uint, value bool) error {
	if pos >= b.Cap() {
		return fmt.Errorf("%w: %d outside width %d", ErrInvalidPosition, pos, b.Cap())
	}
	b.store = withBit(b.store, pos, value)
	return nil
}

// Toggle flips the bit at pos.
func (b *Bools[T]) Toggle(pos uint) error {
	v, err := b.Get(pos)
	if err != nil {
		return err
	}
	return b.Set(pos, !v)
}

// All returns every bit in position order.
func (b *Bools[T]) All() []bool {
	out := make([]bool, b.Cap())
	for i := range out {
		out[i] = bitAt(b.store, uint(i))
	}
	return out
}

// Clear zeroes every bit and rewinds the cursor.
func (b *Bools[T]) Clear() {
	b.store = b.store.Zero()
	b.head = 0
}

// Raw returns the backing word.
func (b *Bools[T]) Raw() T { return b.store }

// Binary renders the backing word in binary, most significant bit first.
func (b *Bools[T]) Binary() string { return binaryString(b.store) }

// Seek moves the reader cursor to pos.
func (b *Bools[T]) Seek(pos uint) error {
	if pos >= b.Cap() {
		return fmt.Errorf("%w: %d outside width %d", ErrInvalidPosition, pos, b.Cap())
	}
	b.head = pos
	return nil
}

// Next returns the bit under the cursor and advances it.
// Reading past the last bit returns ErrInvalidPosition.
func (b *Bools[T]) Next() (bool, error) {
	v, err := b.Get(b.head)
	if err != nil {
		return false, err
	}
	b.head++
	return v, nil
}

// Range calls f sequentially for each set bit, lowest position first.
// If f returns false, range stops the iteration.
func (b *Bools[T]) Range(f func(pos uint) bool) {
	for i := uint(0); i < b.Cap(); i++ {
		if !bitAt(b.store, i) {
			continue
		}
		if !f(i) {
			return
		}
	}
}

// String returns the set positions as a string of the form "{1 2 3}".
func (b *Bools[T]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	b.Range(func(pos uint) bool {
		if buf.Len() > len("{") {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d", pos)
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}
