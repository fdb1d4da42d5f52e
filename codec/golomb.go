package codec

import "github.com/svpv/rpmss/errs"

// MinBpp and MaxBpp bound the set-string's bits-per-value header field.
const (
	MinBpp = 7
	MaxBpp = 32
	MinM   = 5
	MaxM   = 30
)

// chooseM picks the Golomb-Rice remainder width for a set of n values
// whose largest element is vLast, with an adaptive estimator: start
// from m=5 and grow it while the average gap would make the quotient
// run too long, rejecting the choice entirely if the set is too dense
// for the resulting m to satisfy the decoder's density invariant
// n < 2^(bpp-m).
func chooseM(n int, vLast uint32, bpp int) (int, error) {
	dvAvg := (int64(vLast) - int64(n) + 1) / int64(n)

	m := MinM
	if dvAvg >= 32 {
		rng := int64(66)
		for dvAvg > rng && m < MaxM {
			m++
			rng = 2*rng + 1
		}
	}

	if bpp-m >= 63 {
		return m, nil
	}
	if uint64(n) >= uint64(1)<<uint(bpp-m) {
		return 0, errs.ErrTooDense
	}
	return m, nil
}

// sizeBound returns the byte-count upper bound for an encoded set of n
// values with largest element vLast and Golomb parameter m: enough
// room for (m+1) bits per value plus the total quotient range, packed
// at roughly 5 bits per character, plus the two header characters.
func sizeBound(n, m int, vLast uint32) int {
	bitc := int64(n)*int64(m+1) + ((int64(vLast) - int64(n) + 1) >> uint(m))
	return int(bitc/5) + 4
}
