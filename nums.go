package btypes

// Nums is the contract a backing word must satisfy: zero/one
// construction, the bitwise operators, shifts by a bit offset, equality,
// and conversion to and from an index-sized integer. Satisfying types:
// Word8, Word16, Word32, Word64 and the two-word Word128.
type Nums[T any] interface {
	Zero() T
	One() T
	And(T) T
	Or(T) T
	Xor(T) T
	Not() T
	Shl(uint) T
	Shr(uint) T
	Equal(T) bool
	Uint() uint64
	FromUint(uint64) T
	Width() uint
}

// bitAt reports the bit at offset off in w.
func bitAt[T Nums[T]](w T, off uint) bool {
	var t T
	return !w.And(t.One().Shl(off)).Equal(t.Zero())
}

// withBit returns w with the bit at offset off forced to value.
// A word is consumed and rebuilt rather than mutated; stores that keep
// words in an arena overwrite only the touched word with the result.
func withBit[T Nums[T]](w T, off uint, value bool) T {
	var t T
	mask := t.One().Shl(off)
	if value {
		return w.Or(mask)
	}
	return w.And(mask.Not())
}

// binaryString renders w most significant bit first.
func binaryString[T Nums[T]](w T) string {
	width := w.Width()
	buf := make([]byte, width)
	for i := uint(0); i < width; i++ {
		if bitAt(w, width-1-i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Word8 is an 8-bit backing word.
type Word8 uint8

func (w Word8) Zero() Word8            { return 0 }
func (w Word8) One() Word8             { return 1 }
func (w Word8) And(o Word8) Word8      { return w & o }
func (w Word8) Or(o Word8) Word8       { return w | o }
func (w Word8) Xor(o Word8) Word8      { return w ^ o }
func (w Word8) Not() Word8             { return ^w }
func (w Word8) Shl(n uint) Word8       { return w << n }
func (w Word8) Shr(n uint) Word8       { return w >> n }
func (w Word8) Equal(o Word8) bool     { return w == o }
func (w Word8) Uint() uint64           { return uint64(w) }
func (w Word8) FromUint(x uint64) Word8 { return Word8(x) }
func (w Word8) Width() uint            { return 8 }

// Word16 is a 16-bit backing word.
type Word16 uint16

func (w Word16) Zero() Word16             { return 0 }
func (w Word16) One() Word16              { return 1 }
func (w Word16) And(o Word16) Word16      { return w & o }
func (w Word16) Or(o Word16) Word16       { return w | o }
func (w Word16) Xor(o Word16) Word16      { return w ^ o }
func (w Word16) Not() Word16              { return ^w }
func (w Word16) Shl(n uint) Word16        { return w << n }
func (w Word16) Shr(n uint) Word16        { return w >> n }
func (w Word16) Equal(o Word16) bool      { return w == o }
func (w Word16) Uint() uint64             { return uint64(w) }
func (w Word16) FromUint(x uint64) Word16 { return Word16(x) }
func (w Word16) Width() uint              { return 16 }

// Word32 is a 32-bit backing word.
type Word32 uint32

func (w Word32) Zero() Word32             { return 0 }
func (w Word32) One() Word32              { return 1 }
func (w Word32) And(o Word32) Word32      { return w & o }
func (w Word32) Or(o Word32) Word32       { return w | o }
func (w Word32) Xor(o Word32) Word32      { return w ^ o }
func (w Word32) Not() Word32              { return ^w }
func (w Word32) Shl(n uint) Word32        { return w << n }
func (w Word32) Shr(n uint) Word32        { return w >> n }
func (w Word32) Equal(o Word32) bool      { return w == o }
func (w Word32) Uint() uint64             { return uint64(w) }
func (w Word32) FromUint(x uint64) Word32 { return Word32(x) }
func (w Word32) Width() uint              { return 32 }

// Word64 is a 64-bit backing word, also the arena word of InfBools.
type Word64 uint64

func (w Word64) Zero() Word64             { return 0 }
func (w Word64) One() Word64              { return 1 }
func (w Word64) And(o Word64) Word64      { return w & o }
func (w Word64) Or(o Word64) Word64       { return w | o }
func (w Word64) Xor(o Word64) Word64      { return w ^ o }
func (w Word64) Not() Word64              { return ^w }
func (w Word64) Shl(n uint) Word64        { return w << n }
func (w Word64) Shr(n uint) Word64        { return w >> n }
func (w Word64) Equal(o Word64) bool      { return w == o }
func (w Word64) Uint() uint64             { return uint64(w) }
func (w Word64) FromUint(x uint64) Word64 { return Word64(x) }
func (w Word64) Width() uint              { return 64 }

// Word128 is a 128-bit backing word built from two uint64 halves,
// least significant half in Lo.
type Word128 struct {
	Hi, Lo uint64
}

func (w Word128) Zero() Word128        { return Word128{} }
func (w Word128) One() Word128         { return Word128{Lo: 1} }
func (w Word128) And(o Word128) Word128 {
	return Word128{Hi: w.Hi & o.Hi, Lo: w.Lo & o.Lo}
}
func (w Word128) Or(o Word128) Word128 {
	return Word128{Hi: w.Hi | o.Hi, Lo: w.Lo | o.Lo}
}
func (w Word128) Xor(o Word128) Word128 {
	return Word128{Hi: w.Hi ^ o.Hi, Lo: w.Lo ^ o.Lo}
}
func (w Word128) Not() Word128 {
	return Word128{Hi: ^w.Hi, Lo: ^w.Lo}
}

func (w Word128) Shl(n uint) Word128 {
	switch {
	case n >= 128:
		return Word128{}
	case n >= 64:
		return Word128{Hi: w.Lo << (n - 64)}
	default:
		// at n==0 the carry term is Lo>>64, which is 0
		return Word128{Hi: w.Hi<<n | w.Lo>>(64-n), Lo: w.Lo << n}
	}
}

func (w Word128) Shr(n uint) Word128 {
	switch {
	case n >= 128:
		return Word128{}
	case n >= 64:
		return Word128{Lo: w.Hi >> (n - 64)}
	default:
		return Word128{Hi: w.Hi >> n, Lo: w.Lo>>n | w.Hi<<(64-n)}
	}
}

func (w Word128) Equal(o Word128) bool      { return w == o }
func (w Word128) Uint() uint64              { return w.Lo }
func (w Word128) FromUint(x uint64) Word128 { return Word128{Lo: x} }
func (w Word128) Width() uint               { return 128 }
