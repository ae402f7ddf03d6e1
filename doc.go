// Package btypes provides named, bit-addressable boolean containers.
//
// A container maps human-readable flag names to individual bits inside a
// numeric backing store. Fixed-capacity containers (BN8 to BN128) pack
// their flags into a single machine word and fail once every bit is
// named; the growable container (BNInf) is backed by a word arena that
// extends itself as higher bits are requested.
//
//	bools := btypes.NewBN64()
//	_ = bools.Set("verbose", true)
//	_ = bools.MassSet(4, "flag_{n}", "true,false{r}")
//	on, _ := bools.Get("flag_2")
//
// Underneath the named layer sit the positional containers B8 to B128 and
// BInf, which address bits by index instead of name. Both layers share
// one generic bit algorithm parameterized over the Nums backing contract,
// so a 8-bit word, a two-word 128-bit value and an unbounded word arena
// all run the same code.
//
// Containers are single-owner: no operation is safe for concurrent use,
// callers that share a container must serialize access themselves.
package btypes
