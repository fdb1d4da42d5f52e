// Package rpmss provides a compact textual representation for sets of
// unsigned integers, a "set-string", and a comparison primitive that
// decides the subset/superset relationship between two such strings.
//
// It is built for the same problem rpm's weak dependency resolution
// solves: a package's exported symbols become its Provides set-string,
// a package's required symbols become its Requires set-string, and
// dependency resolution reduces to deciding whether Requires is a
// subset of Provides, without ever exchanging or storing the full
// symbol lists.
//
// # Core Features
//
//   - Delta + Golomb-Rice + base-62 codec: encoded length approaches the
//     information-theoretic bound for uniform hashes (codec package).
//   - A four-valued comparator (equal / superset / subset /
//     incomparable) over two sorted integer vectors, using a
//     sentinel-guarded speculative-stride merge (compare package).
//   - Cross-bpp comparison via bit-by-bit downsampling when Provides
//     and Requires were hashed to different bit widths (downsample
//     package).
//   - An LRU decode cache that amortizes repeated decoding of
//     heavily-depended-upon Provides strings (cache package).
//   - A bundle container for storing or transmitting many set-strings
//     (one Provides/Requires per package in a repository) as a single
//     compressed, checksummed blob (bundle package).
//
// # Basic Usage
//
//	import "github.com/svpv/rpmss"
//
//	provides, _ := rpmss.Encode([]uint32{0x10, 0x20, 0x30}, 16)
//	requires, _ := rpmss.Encode([]uint32{0x20}, 16)
//
//	result, err := rpmss.Compare(provides, requires)
//	// result == rpmss.Superset: requires is satisfied by provides
//
// Repeated comparisons against the same Provides strings should share a
// *Cache:
//
//	c := rpmss.NewCache()
//	for _, req := range requiresList {
//	    result, err := rpmss.CompareWithCache(provides, req, c)
//	    ...
//	}
//
// # Package Structure
//
// This package is a thin convenience wrapper over setcmp (orchestration),
// codec (wire format), compare (the four-valued relation), downsample,
// and cache. Use those packages directly for fine-grained control (e.g.
// sizing your own buffers, or inspecting bpp/m without a full decode).
package rpmss

import (
	"github.com/svpv/rpmss/cache"
	"github.com/svpv/rpmss/codec"
	"github.com/svpv/rpmss/compare"
	"github.com/svpv/rpmss/internal/hash"
	"github.com/svpv/rpmss/setcmp"
)

// Result mirrors compare.Result: 0 equal, 1 superset, -1 subset, -2
// incomparable.
type Result = compare.Result

const (
	Equal        = compare.Equal
	Superset     = compare.Superset
	Subset       = compare.Subset
	Incomparable = compare.Incomparable
)

// Cache is an LRU decode cache for Provides set-strings. It is ordinary
// mutable state owned by the caller, not a process-wide global: give
// each goroutine its own Cache, or synchronize access externally.
type Cache = cache.Cache

// NewCache creates a Cache with the default capacity (~254 entries) and
// midpoint-insertion LRU eviction policy.
func NewCache() *Cache {
	return cache.New()
}

// EncodeSize returns an upper bound, in bytes, on the set-string Encode
// would produce for values at the given bpp (bits per value, 7..32).
func EncodeSize(values []uint32, bpp int) (int, error) {
	return codec.EncodeSize(values, bpp)
}

// Encode produces the set-string for a sorted, strictly increasing
// slice of values, each less than 2^bpp.
func Encode(values []uint32, bpp int) (string, error) {
	return codec.Encode(values, bpp)
}

// Decode parses a full set-string and returns its strictly increasing
// value sequence.
func Decode(s string) ([]uint32, error) {
	return codec.Decode(s)
}

// SymbolHash hashes a symbol name and truncates it to bpp bits, the
// value that name would occupy in a set-string of that width. It lets
// a caller build a value set directly from exported/required symbol
// names, the way a real Provides/Requires set-string is constructed.
func SymbolHash(name string, bpp int) uint32 {
	return hash.SymbolHash(name, bpp)
}

// Compare decides the relation of provides to requires without a
// shared decode cache. Equivalent to CompareWithCache(provides,
// requires, nil).
func Compare(provides, requires string) (Result, error) {
	return setcmp.Compare(provides, requires, nil)
}

// CompareWithCache decides the relation of provides to requires, using
// c to avoid redecoding Provides strings seen in earlier calls. c may
// be nil.
func CompareWithCache(provides, requires string, c *Cache) (Result, error) {
	return setcmp.Compare(provides, requires, c)
}

// Code maps a Compare outcome (or its error) to the stable numeric
// comparison codes a CLI front-end would print or use as an exit
// status: -11/-12 are reserved for Provides/Requires decode failure.
func Code(result Result, err error) int {
	return setcmp.Code(result, err)
}
