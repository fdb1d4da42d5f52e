// Package hash provides the symbol and key hashing used across the module:
// xxHash64 for bundle entry keys, truncated to a given bit width for
// building synthetic value sets out of symbol names.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// bundle uses ID as the default key for an entry when the caller has a
// package name rather than a numeric id.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Truncate folds a 64-bit hash down to the low bpp bits, wrapping it into
// the value range a set-string of the given bit width can hold (values in
// [0, 2^bpp)). bpp must be in [1, 64]; Truncate panics otherwise.
func Truncate(h uint64, bpp int) uint32 {
	if bpp <= 0 || bpp > 64 {
		panic("hash: Truncate: bpp out of range")
	}
	if bpp >= 32 {
		return uint32(h)
	}

	return uint32(h & ((uint64(1) << uint(bpp)) - 1))
}

// SymbolHash hashes a symbol name and truncates it to bpp bits, giving the
// uint32 value that name would occupy in a set-string of that width. This
// lets a caller build a value set directly from symbol names without
// re-deriving the truncation arithmetic.
func SymbolHash(name string, bpp int) uint32 {
	return Truncate(ID(name), bpp)
}
