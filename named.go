package btypes

import (
	"bytes"
	"fmt"
	"sort"
)

// bitStore is the capability a named container needs from its backing
// store. Two implementations exist: Bools, whose fixed-width word is
// consumed and rebuilt on every edit, and InfBools, whose word arena
// duplicates only the touched word. Named runs the same algorithm over
// either.
type bitStore[R any] interface {
	Get(pos uint) (bool, error)
	Set(pos uint, value bool) error
	Clear()
	Cap() uint
	Bounded() bool
	Raw() R
	Binary() string
}

// Entry is one named flag with its current value.
type Entry struct {
	Name  string
	Value bool
}

// Named maps flag names to bits of a backing store. The directory keeps
// insertion order for deterministic iteration; a removed name frees its
// bit for reuse by the lowest-unused-index policy.
//
// Use the constructors in public.go; the zero value has no store.
type Named[R any] struct {
	bools bitStore[R]

	// directory: name -> bit position, plus iteration order
	names map[string]uint
	order []string

	// freed positions, ascending, all below next
	free []uint
	next uint
}

// Set assigns value to name. An existing name flips its bit in place;
// a new name takes the lowest unused position. Fixed containers return
// ErrCapacityExceeded once every bit is named.
func (b *Named[R]) Set(name string, value bool) error {
	if pos, ok := b.names[name]; ok {
		return b.bools.Set(pos, value)
	}
	pos, err := b.alloc()
	if err != nil {
		return err
	}
	if err := b.bools.Set(pos, value); err != nil {
		return err
	}
	b.names[name] = pos
	b.order = append(b.order, name)
	return nil
}

// alloc picks the lowest unused bit position: the smallest freed
// position when one exists, else the never-used low watermark.
func (b *Named[R]) alloc() (uint, error) {
	if len(b.free) > 0 {
		pos := b.free[0]
		b.free = b.free[1:]
		return pos, nil
	}
	if b.bools.Bounded() && b.next >= b.bools.Cap() {
		return 0, fmt.Errorf("%w: all %d bits named", ErrCapacityExceeded, b.bools.Cap())
	}
	pos := b.next
	b.next++
	return pos, nil
}

// Get returns the value stored under name.
func (b *Named[R]) Get(name string) (bool, error) {
	pos, ok := b.names[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return b.bools.Get(pos)
}

// Toggle flips the value stored under name.
func (b *Named[R]) Toggle(name string) error {
	v, err := b.Get(name)
	if err != nil {
		return err
	}
	return b.Set(name, !v)
}

// Exists reports whether name is present.
func (b *Named[R]) Exists(name string) bool {
	_, ok := b.names[name]
	return ok
}

// Remove deletes name, clears its bit and frees the position for reuse
// by a later Set on a new name.
func (b *Named[R]) Remove(name string) error {
	pos, ok := b.names[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	if err := b.bools.Set(pos, false); err != nil {
		return err
	}
	delete(b.names, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.freeIndex(pos)
	return nil
}

// freeIndex inserts pos into the free list, keeping it ascending.
func (b *Named[R]) freeIndex(pos uint) {
	i := sort.Search(len(b.free), func(i int) bool { return b.free[i] >= pos })
	b.free = append(b.free, 0)
	copy(b.free[i+1:], b.free[i:])
	b.free[i] = pos
}

// All returns every entry in iteration order: insertion order until a
// sort re-derives it.
func (b *Named[R]) All() []Entry {
	out := make([]Entry, 0, len(b.order))
	for _, name := range b.order {
		v, _ := b.bools.Get(b.names[name])
		out = append(out, Entry{Name: name, Value: v})
	}
	return out
}

// MassGet returns the values stored under names, in order.
func (b *Named[R]) MassGet(names ...string) ([]bool, error) {
	out := make([]bool, 0, len(names))
	for _, name := range names {
		v, err := b.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MassToggle flips the values stored under names, in order.
func (b *Named[R]) MassToggle(names ...string) error {
	for _, name := range names {
		if err := b.Toggle(name); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of named bits.
func (b *Named[R]) Len() int { return len(b.names) }

// Cap returns the store's current bit capacity. For growable containers
// it only ever grows.
func (b *Named[R]) Cap() uint { return b.bools.Cap() }

// Clear removes every name and zeroes the store.
func (b *Named[R]) Clear() {
	b.bools.Clear()
	for name := range b.names {
		delete(b.names, name)
	}
	b.order = b.order[:0]
	b.free = nil
	b.next = 0
}

// Raw returns the raw backing value, read-only exposure for diagnostics.
func (b *Named[R]) Raw() R { return b.bools.Raw() }

// Binary renders the raw backing value in binary, most significant bit
// first.
func (b *Named[R]) Binary() string { return b.bools.Binary() }

// Range calls f sequentially for each entry in iteration order.
// If f returns false, range stops the iteration.
func (b *Named[R]) Range(f func(name string, value bool) bool) {
	for _, name := range b.order {
		v, _ := b.bools.Get(b.names[name])
		if !f(name, v) {
			return
		}
	}
}

// String returns the entries as a string of the form "{a=true b=false}".
func (b *Named[R]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	b.Range(func(name string, value bool) bool {
		if buf.Len() > len("{") {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%s=%t", name, value)
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}
