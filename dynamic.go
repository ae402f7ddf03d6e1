package btypes

import (
	"bytes"
	"fmt"
)

const (
	// wordBits is the arena word width.
	// pos = 64*idx + off
	// idx = pos/64 (pos>>6), off = pos%64 (pos&63)
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// InfBools is a growable positional boolean container backed by an arena
// of 64-bit words ordered least significant word first. Its zero value is
// the empty container. Setting a bit past the current arena appends
// zero-valued words; the arena never shrinks, so bit positions stay
// stable for the life of the container.
type InfBools struct {
	words []Word64

	// reader cursor for Seek/Next
	head uint
}

// BInf is the growable positional container.
type BInf = InfBools

// NewBInf returns an empty growable container.
func NewBInf() *InfBools {
	return &InfBools{}
}

// NewBInfFrom returns a growable container preloaded with raw words,
// least significant word first. The slice is copied.
func NewBInfFrom(raw []uint64) *InfBools {
	words := make([]Word64, len(raw))
	for i, w := range raw {
		words[i] = Word64(w)
	}
	return &InfBools{words: words}
}

// Cap returns the number of currently addressable bits.
// It only ever grows.
func (b *InfBools) Cap() uint { return uint(len(b.words)) * wordBits }

// Bounded reports that the capacity is not fixed.
func (b *InfBools) Bounded() bool { return false }

// Get returns the bit at pos. Positions past the current arena read
// false: the store is a zero-extended unbounded bit string.
// time complexity: O(1)
func (b *InfBools) Get(pos uint) (bool, error) {
	idx := pos >> wordShift
	if idx >= uint(len(b.words)) {
		return false, nil
	}
	return bitAt(b.words[idx], pos&wordMask), nil
}

// Set forces the bit at pos to value, growing the arena by whole words
// when pos is not yet addressable.
// amortized time complexity: O(1)
func (b *InfBools) Set(pos uint, value bool) error {
	idx := pos >> wordShift
	b.grow(int(idx) + 1)
	b.words[idx] = withBit(b.words[idx], pos&wordMask, value)
	return nil
}

// Toggle flips the bit at pos.
func (b *InfBools) Toggle(pos uint) error {
	v, _ := b.Get(pos)
	return b.Set(pos, !v)
}

// grow extends the arena to at least n words, over-allocating so that
// repeated single-bit extensions stay amortized O(1).
func (b *InfBools) grow(n int) {
	if n <= len(b.words) {
		return
	}
	if n <= cap(b.words) {
		b.words = b.words[:n]
		return
	}
	words := make([]Word64, n, growCap(cap(b.words), n))
	copy(words, b.words)
	b.words = words
}

// growCap computes the next arena capacity: double while small, then
// grow by a quarter until want fits.
func growCap(old, want int) int {
	newCap := old
	doubleCap := newCap << 1
	if want > doubleCap {
		newCap = want
	} else if newCap < 1024 {
		newCap = doubleCap
	} else {
		// check 0 < newCap to detect overflow and prevent an infinite loop
		for 0 < newCap && newCap < want {
			newCap += newCap / 4
		}
		if newCap <= 0 {
			newCap = want
		}
	}
	return newCap
}

// All returns every currently addressable bit in position order.
func (b *InfBools) All() []bool {
	out := make([]bool, b.Cap())
	for i := range out {
		out[i] = bitAt(b.words[i>>wordShift], uint(i)&wordMask)
	}
	return out
}

// Clear zeroes every word and rewinds the cursor. The arena keeps its
// length: growth is monotonic.
func (b *InfBools) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
	b.head = 0
}

// Raw returns a copy of the backing words, least significant word first.
func (b *InfBools) Raw() []uint64 {
	out := make([]uint64, len(b.words))
	for i, w := range b.words {
		out[i] = uint64(w)
	}
	return out
}

// Binary renders the arena in binary, most significant word first.
func (b *InfBools) Binary() string {
	if len(b.words) == 0 {
		return "0"
	}
	var buf bytes.Buffer
	for i := len(b.words) - 1; i >= 0; i-- {
		buf.WriteString(binaryString(b.words[i]))
	}
	return buf.String()
}

// Seek moves the reader cursor to pos.
func (b *InfBools) Seek(pos uint) error {
	b.head = pos
	return nil
}

// Next returns the bit under the cursor and advances it. Reading past
// the arena yields false, like Get.
func (b *InfBools) Next() (bool, error) {
	v, err := b.Get(b.head)
	if err != nil {
		return false, err
	}
	b.head++
	return v, nil
}

// Range calls f sequentially for each set bit, lowest position first.
// If f returns false, range stops the iteration.
//
// Range may be O(N) with N the arena width in bits.
func (b *InfBools) Range(f func(pos uint) bool) {
	for i := 0; i < len(b.words); i++ {
		item := b.words[i]
		if item == 0 {
			continue
		}
		for j := 0; j < wordBits; j++ {
			if item == 0 {
				break
			}
			if item&1 == 1 {
				if !f(uint(i<<wordShift + j)) {
					return
				}
			}
			item >>= 1
		}
	}
}

// String returns the set positions as a string of the form "{1 2 3}".
func (b *InfBools) String() string {
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
