package btypes

// Container is the contract shared by every named container variant.
// BN8 through BN128 bound their capacity by the backing word's width;
// BNInf grows without bound.
type Container[R any] interface {
	// Set assigns value to name, allocating the lowest unused bit for a
	// new name. Fixed containers return ErrCapacityExceeded when full.
	Set(name string, value bool) error

	// Get returns the value stored under name,
	// or ErrNameNotFound if absent.
	Get(name string) (bool, error)

	// Toggle flips the value stored under name.
	Toggle(name string) error

	// Exists reports whether name is present.
	Exists(name string) bool

	// Remove deletes name, clears its bit and frees it for reuse.
	Remove(name string) error

	// All returns every entry in iteration order.
	All() []Entry

	// MassSet expands a name/value template pair into count assignments.
	MassSet(count int, namePattern, valuePattern string) error

	// SortByName re-derives iteration order to ascending name order.
	SortByName()

	// SortByValue re-derives iteration order to ascending value order.
	SortByValue()

	// Raw returns the raw backing value.
	Raw() R

	// Binary renders the raw backing value in binary.
	Binary() string

	// Len returns the number of named bits.
	Len() int

	// Clear removes every name and zeroes the store.
	Clear()

	// Range calls f sequentially for each entry in iteration order.
	// If f returns false, range stops the iteration.
	Range(f func(name string, value bool) bool)
}

// Fixed-width named aliases, one per backing word, plus the growable one.
type (
	BN8   = Named[Word8]
	BN16  = Named[Word16]
	BN32  = Named[Word32]
	BN64  = Named[Word64]
	BN128 = Named[Word128]
	BNInf = Named[[]uint64]
)

// NewBN returns an empty named container over the fixed backing word T.
func NewBN[T Nums[T]]() *Named[T] {
	return &Named[T]{
		bools: NewBools[T](),
		names: make(map[string]uint),
	}
}

// NewBNFrom returns a fixed named container whose bits are preloaded
// with raw. The directory starts empty; names claim bits as usual.
func NewBNFrom[T Nums[T]](raw T) *Named[T] {
	return &Named[T]{
		bools: NewBoolsFrom(raw),
		names: make(map[string]uint),
	}
}

// NewBN8 returns an empty 8-bit named container.
func NewBN8() *BN8 { return NewBN[Word8]() }

// NewBN16 returns an empty 16-bit named container.
func NewBN16() *BN16 { return NewBN[Word16]() }

// NewBN32 returns an empty 32-bit named container.
func NewBN32() *BN32 { return NewBN[Word32]() }

// NewBN64 returns an empty 64-bit named container.
func NewBN64() *BN64 { return NewBN[Word64]() }

// NewBN128 returns an empty 128-bit named container.
func NewBN128() *BN128 { return NewBN[Word128]() }

// NewBNInf returns an empty growable named container.
func NewBNInf() *BNInf {
	return &BNInf{
		bools: NewBInf(),
		names: make(map[string]uint),
	}
}

// NewBNInfFrom returns a growable named container whose words are
// preloaded with raw, least significant word first.
func NewBNInfFrom(raw []uint64) *BNInf {
	return &BNInf{
		bools: NewBInfFrom(raw),
		names: make(map[string]uint),
	}
}

// Equal reports whether two containers hold the same names with the
// same values, regardless of iteration order or backing width.
// worst time complexity: O(N)
func Equal[R1, R2 any](s Container[R1], t Container[R2]) bool {
	if s.Len() != t.Len() {
		return false
	}
	eq := true
	s.Range(func(name string, value bool) bool {
		v, err := t.Get(name)
		if err != nil || v != value {
			eq = false
			return false
		}
		return true
	})
	return eq
}
