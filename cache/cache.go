// Package cache implements the LRU decode cache for Provides set-strings.
//
// Decoding a dense, multi-thousand-element Provides string is the most
// expensive step in a comparison; repository-wide dependency resolution
// decodes the same handful of heavily-depended-upon Provides strings over
// and over. This cache amortizes that cost across calls made through the
// same Cache value.
//
// The policy follows rpmsetcmp.c's struct cache / cache_decode: a 16-bit digest
// array searched linearly, a matching entry moved toward the front by a
// bounded step, and new entries admitted at a midpoint rather than the
// front so one-shot lookups don't evict the hot set. Go's bounds-checked
// slices make the original's "sentinel digest" search trick (install a
// copy of the needle past the live region so the scan never runs off the
// end) unnecessary; a plain indexed loop over hv[:hc] is used instead.
package cache

import (
	"github.com/svpv/rpmss/codec"
	"github.com/svpv/rpmss/compare"
	"github.com/svpv/rpmss/internal/options"
)

// DefaultCapacity is the number of distinct Provides strings the cache
// holds before it starts evicting, matching rpmsetcmp.c's CACHE_SIZE
// comment ("about 256 entries... 75% hit ratio... less than 2MB").
const DefaultCapacity = 256 - 2

// DefaultMoveStep bounds how far a cache hit promotes its entry toward
// the front in one lookup (rpmsetcmp.c's move-to-front, but capped).
const DefaultMoveStep = 32

type entry struct {
	str string
	n   int
	v   []uint32 // n real values + compare.Sentinels trailing ^uint32(0)
}

// Cache is a process-local, mutable, unsynchronized decode cache: plain
// value state with no hidden globals, so per-goroutine or per-thread
// isolation is just "don't share a *Cache across goroutines without
// your own locking."
type Cache struct {
	capacity int
	moveStep int
	pivot    int

	hv []uint16
	ev []*entry
	hc int
}

// Option configures a Cache at construction time.
type Option = options.Option[*Cache]

// WithCapacity overrides the number of entries the cache holds before
// evicting.
func WithCapacity(n int) Option {
	return options.New(func(c *Cache) error {
		c.capacity = n
		return nil
	})
}

// WithMoveStep overrides how far a hit promotes its entry per lookup.
func WithMoveStep(n int) Option {
	return options.New(func(c *Cache) error {
		c.moveStep = n
		return nil
	})
}

// New creates a Cache ready for use. The zero Cache is not usable;
// always construct through New.
func New(opts ...Option) *Cache {
	c := &Cache{
		capacity: DefaultCapacity,
		moveStep: DefaultMoveStep,
	}
	_ = options.Apply(c, opts...)
	c.pivot = c.capacity * 7 / 8
	c.hv = make([]uint16, c.capacity)
	c.ev = make([]*entry, c.capacity)
	return c
}

// Decode returns the decoded values for s, including compare.Sentinels
// trailing guard values, and the real element count n (v[:n] are the
// real values). The returned slice is owned by the cache and must not be
// mutated by the caller; it remains valid until s is evicted.
//
// A decode failure is never cached (no negative caching), so a failing
// lookup is retried fresh on every call.
func (c *Cache) Decode(s string) (v []uint32, n int, err error) {
	h := digest(s)
	for i := 0; i < c.hc; i++ {
		if c.hv[i] != h {
			continue
		}
		ent := c.ev[i]
		if ent.str != s {
			continue
		}
		c.touch(i)
		return ent.v, ent.n, nil
	}

	values, err := codec.Decode(s)
	if err != nil {
		return nil, 0, err
	}
	n = len(values)
	v = make([]uint32, n+compare.Sentinels)
	copy(v, values)
	for i := n; i < len(v); i++ {
		v[i] = ^uint32(0)
	}

	c.insert(h, &entry{str: s, n: n, v: v})
	return v, n, nil
}

// touch promotes the entry at index i toward the front by at most
// moveStep positions.
func (c *Cache) touch(i int) {
	newPos := i - c.moveStep
	if newPos < 0 {
		newPos = 0
	}
	if newPos == i {
		return
	}
	h := c.hv[i]
	e := c.ev[i]
	copy(c.hv[newPos+1:i+1], c.hv[newPos:i])
	copy(c.ev[newPos+1:i+1], c.ev[newPos:i])
	c.hv[newPos] = h
	c.ev[newPos] = e
}

// insert admits a freshly decoded entry. If the cache isn't full yet, it
// is appended at the end (treated as least-recently-used until touched).
// Otherwise the current tail is evicted and the new entry is placed at
// the pivot, deliberately short of the front: first-time Provides
// strings are often one-shot lookups during a single transaction and
// shouldn't displace entries that are actually hot.
func (c *Cache) insert(h uint16, ent *entry) {
	if c.hc < c.capacity {
		i := c.hc
		c.hv[i] = h
		c.ev[i] = ent
		c.hc++
		return
	}

	pivot := c.pivot
	copy(c.hv[pivot+1:c.capacity], c.hv[pivot:c.capacity-1])
	copy(c.ev[pivot+1:c.capacity], c.ev[pivot:c.capacity-1])
	c.hv[pivot] = h
	c.ev[pivot] = ent
}

// Len reports the number of entries currently held.
func (c *Cache) Len() int {
	return c.hc
}

// Cap reports the cache's configured capacity.
func (c *Cache) Cap() int {
	return c.capacity
}

// digest computes the 16-bit key used to narrow the linear scan before a
// full string comparison. Same recipe as rpmsetcmp.c's cache_decode: load
// the 4 bytes starting at offset 4 (past the two header characters) as a
// little-endian uint32, multiply by Knuth's 32-bit multiplicative hash
// constant, fold in the string length, and keep the high 16 bits.
//
// Strings shorter than 8 bytes (tiny sets) fall back to hashing whatever
// payload bytes exist instead of indexing past the end; this only
// affects how quickly short collisions are filtered, never correctness,
// since every candidate is still verified with a full string comparison.
func digest(s string) uint16 {
	var word uint32
	if len(s) >= 8 {
		word = uint32(s[4]) | uint32(s[5])<<8 | uint32(s[6])<<16 | uint32(s[7])<<24
	} else {
		for i := 2; i < len(s); i++ {
			word |= uint32(s[i]) << (8 * uint(i-2))
		}
	}
	h := word * 2654435761
	h += uint32(len(s)) << 16
	return uint16(h >> 16)
}
