// Package setcmp is the top-level orchestrator: given two set-strings
// (Provides and Requires), it normalizes them to a common bpp by
// downsampling whichever side has the larger bpp, then hands the
// resulting vectors to package compare.
//
// This folds together rpmsetcmp.c's rpmsetcmp/setcmp1/setcmp1a/setcmp2/setcmp2a
// cascade. The five bpp relationships between Provides and Requires
// (equal, Provides one bit wider, Requires one bit wider, Provides much
// wider, Requires much wider) are all handled by one repeated-downsample
// loop per side (package downsample's Reduce) rather than the original's
// separate one-bit and multi-bit code paths; the collapse is safe
// because one-bit reduction is just the n=1 case of the general loop.
package setcmp

import (
	"errors"

	"github.com/svpv/rpmss/cache"
	"github.com/svpv/rpmss/codec"
	"github.com/svpv/rpmss/compare"
	"github.com/svpv/rpmss/downsample"
	"github.com/svpv/rpmss/errs"
	"github.com/svpv/rpmss/internal/pool"
)

// ProvidesCacheThreshold is the upper-bound element count above which a
// Provides decode consults the cache instead of decoding into a private
// buffer, matching rpmsetcmp.c's PROV_STACK_SIZE. Below the threshold
// repeated cache lookups aren't worth the digest/compare overhead.
const ProvidesCacheThreshold = 256

// Compare decides the relation of provides to requires: 0 (equal), 1
// (requires is a proper subset of provides), -1 (provides is a proper
// subset of requires), or -2 (incomparable). c may be nil, in which
// case Provides is always decoded fresh; passing a shared *cache.Cache
// across repeated calls amortizes decoding of frequently reused
// Provides strings.
func Compare(provides, requires string, c *cache.Cache) (compare.Result, error) {
	bpp1, _, n1, err := codec.DecodeInit(provides)
	if err != nil {
		return 0, errs.ErrProvidesDecode
	}
	bpp2, _, _, err := codec.DecodeInit(requires)
	if err != nil {
		return 0, errs.ErrRequiresDecode
	}

	v2, bpp2, err := decodeRequires(requires, bpp2, bpp1)
	if err != nil {
		return 0, err
	}

	return compareProvides(provides, n1, bpp1, v2, bpp2, c)
}

// decodeRequires decodes requires and, if its bpp exceeds provides's,
// downsamples it down to match (stage 1 / setcmp1a in the original).
func decodeRequires(requires string, bpp2, bpp1 int) ([]uint32, int, error) {
	v2, err := codec.Decode(requires)
	if err != nil {
		return nil, 0, errs.ErrRequiresDecode
	}
	if bpp2 > bpp1 {
		bufA, putA := pool.GetUint32Slice(len(v2))
		bufB, putB := pool.GetUint32Slice(len(v2))
		v2 = append([]uint32(nil), downsample.Reduce(v2, bpp2, bpp1, bufA[:0], bufB[:0])...)
		putA()
		putB()
		bpp2 = bpp1
	}
	return v2, bpp2, nil
}

// compareProvides decodes provides (via the cache when it's large
// enough and one was supplied), downsamples it if its bpp exceeds
// requires's (stage 2 / setcmp2a in the original), installs sentinels,
// and runs the comparator.
func compareProvides(provides string, n1, bpp1 int, v2 []uint32, bpp2 int, c *cache.Cache) (compare.Result, error) {
	var values []uint32
	var pn1 int

	if n1 > ProvidesCacheThreshold && c != nil {
		v, n, err := c.Decode(provides)
		if err != nil {
			return 0, errs.ErrProvidesDecode
		}
		if bpp1 == bpp2 {
			return compare.Compare(v, n, v2), nil
		}
		values = v[:n]
		pn1 = n
	} else {
		v, err := codec.Decode(provides)
		if err != nil {
			return 0, errs.ErrProvidesDecode
		}
		pn1 = len(v)
		if bpp1 == bpp2 {
			return compare.Compare(withSentinels(v), pn1, v2), nil
		}
		values = v
	}

	bufA, putA := pool.GetUint32Slice(pn1)
	bufB, putB := pool.GetUint32Slice(pn1)
	reduced := downsample.Reduce(values, bpp1, bpp2, bufA[:0], bufB[:0])
	n := len(reduced)
	result := compare.Compare(withSentinels(reduced), n, v2)
	putA()
	putB()
	return result, nil
}

func withSentinels(v []uint32) []uint32 {
	out := make([]uint32, len(v)+compare.Sentinels)
	copy(out, v)
	for i := len(v); i < len(out); i++ {
		out[i] = ^uint32(0)
	}
	return out
}

// Code maps a Compare result (or its error) to the stable numeric
// comparison codes a CLI front-end would print: -11 and -12 reserved
// for Provides/Requires decode failure, distinct from the comparator's
// own -2 "incomparable".
func Code(result compare.Result, err error) int {
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProvidesDecode):
			return -11
		case errors.Is(err, errs.ErrRequiresDecode):
			return -12
		default:
			return -1
		}
	}
	return int(result)
}
