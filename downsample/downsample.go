// Package downsample reduces a sorted set of values encoded at bpp+1
// bits down to bpp bits, merging any values that become equal once
// their top bit is stripped.
//
// Same technique as rpmsetcmp.c's downsample1: a binary search locates the
// split point between values that fit in bpp bits unchanged and those
// whose top bit must be cleared, then the two runs are merged back
// into one strictly increasing sequence.
package downsample

import "sort"

// One reduces values (sorted, strictly increasing, each < 2^(bpp+1))
// from bpp+1 bits to bpp bits, writing the result into dst and
// returning the slice actually used. dst must have capacity at least
// len(values); the result may be shorter than values if stripping the
// top bit produces duplicates.
func One(values []uint32, bpp int, dst []uint32) []uint32 {
	mask := uint32(1)<<uint(bpp) - 1

	// Binary-search the least index u such that values[u] > mask: all
	// values from u onward have the top bit set and must be folded.
	u := sort.Search(len(values), func(i int) bool {
		return values[i] > mask
	})

	dst = dst[:0]
	i, j := 0, u
	for i < u || j < len(values) {
		switch {
		case j >= len(values):
			dst = append(dst, values[i])
			i++
		case i >= u:
			dst = appendUnique(dst, values[j]&mask)
			j++
		case values[i] < values[j]&mask:
			dst = append(dst, values[i])
			i++
		case values[j]&mask < values[i]:
			dst = appendUnique(dst, values[j]&mask)
			j++
		default:
			// Equal: the folded high value collapses onto the
			// existing low value; consume both, emit one.
			dst = appendUnique(dst, values[i])
			i++
			j++
		}
	}
	return dst
}

func appendUnique(dst []uint32, v uint32) []uint32 {
	if len(dst) > 0 && dst[len(dst)-1] == v {
		return dst
	}
	return append(dst, v)
}

// Reduce folds values down from fromBpp to toBpp bits (fromBpp >
// toBpp), alternating between two scratch buffers so no intermediate
// allocation is needed per bit stripped. It returns the final result,
// which may alias one of bufA/bufB.
func Reduce(values []uint32, fromBpp, toBpp int, bufA, bufB []uint32) []uint32 {
	src := values
	bufs := [2][]uint32{bufA, bufB}
	cur := 0
	for bpp := fromBpp - 1; bpp >= toBpp; bpp-- {
		dst := One(src, bpp, bufs[cur])
		bufs[cur] = dst
		src = dst
		cur = 1 - cur
	}
	return src
}
