// Package codec implements the set-string wire format: a sorted,
// strictly increasing sequence of uint32 values is delta-encoded into
// gaps, each gap Golomb-Rice coded into a quotient/remainder pair, and
// the resulting bitstream packed into a 62-symbol alphabet with two
// reserved 5-bit "irregular" flush characters.
//
// The algorithm matches the C implementation (rpmss.c/rpmss.h) in its
// wide-range variant: bpp in [7,32], m in [5,30], header characters
// 'a'+(bpp-7) and 'A'+(m-5).
//
// Unlike the C original, encoded strings here are plain Go strings
// sized by their own length, not NUL-terminated byte buffers; decode
// walks the string to its end rather than scanning for a sentinel
// word. Bit-level state tracking (the getQ/getR dance) lives in
// internal/base62, which trades the original's word2bits[65536]
// dispatch table for a one-character-at-a-time reader.
package codec

import (
	"github.com/svpv/rpmss/errs"
	"github.com/svpv/rpmss/internal/base62"
)

func validate(values []uint32, bpp int) (n int, vLast uint32, err error) {
	n = len(values)
	if n < 1 {
		return 0, 0, errs.ErrEmptySet
	}
	if bpp < MinBpp || bpp > MaxBpp {
		return 0, 0, errs.ErrBppOutOfRange
	}
	vLast = values[n-1]
	if bpp < 32 && vLast >= uint32(1)<<uint(bpp) {
		return 0, 0, errs.ErrValueOutOfRange
	}
	if uint64(vLast) < uint64(n-1) {
		return 0, 0, errs.ErrNonMonotone
	}
	return n, vLast, nil
}

// EncodeSize returns an upper bound, in bytes, on the set-string that
// Encode would produce for values at the given bpp. Callers may use it
// to size a buffer without committing to the encode itself.
func EncodeSize(values []uint32, bpp int) (int, error) {
	n, vLast, err := validate(values, bpp)
	if err != nil {
		return 0, err
	}
	m, err := chooseM(n, vLast, bpp)
	if err != nil {
		return 0, err
	}
	return sizeBound(n, m, vLast), nil
}

// Encode produces the set-string for a sorted, strictly increasing
// slice of values, each less than 2^bpp.
func Encode(values []uint32, bpp int) (string, error) {
	n, vLast, err := validate(values, bpp)
	if err != nil {
		return "", err
	}
	m, err := chooseM(n, vLast, bpp)
	if err != nil {
		return "", err
	}

	prefix := make([]byte, 0, sizeBound(n, m, vLast))
	prefix = append(prefix, base62.BppChar(bpp), base62.MChar(m))

	w := base62.NewWriter(prefix)
	rmask := uint32(1)<<uint(m) - 1
	enc := NewDeltaEncoder()
	for _, v := range values {
		gap, err := enc.Next(v)
		if err != nil {
			return "", err
		}
		q := gap >> uint(m)
		r := gap & rmask
		w.PutGap(int(q), r, m)
	}
	w.Finish()

	return string(w.Bytes()), nil
}

// DecodeInit parses the two header characters of a set-string and
// returns its bpp, its Golomb parameter m, and an upper bound on the
// number of values it can hold, enough to size a caller's output
// buffer without decoding the payload.
func DecodeInit(s string) (bpp, m, upperBoundN int, err error) {
	// A set-string is at least 3 characters: two header characters
	// plus a non-empty payload (empty sets are disallowed).
	if len(s) < 3 {
		return 0, 0, 0, errs.ErrBadHeader
	}
	bpp, ok := base62.ParseBppChar(s[0])
	if !ok {
		return 0, 0, 0, errs.ErrBadHeader
	}
	m, ok = base62.ParseMChar(s[1])
	if !ok {
		return 0, 0, 0, errs.ErrMOutOfRange
	}
	if m >= bpp {
		return 0, 0, 0, errs.ErrMNotLessThanBpp
	}

	byQuotientBudget := (1 << uint(bpp-m)) - 1
	byLength := ((len(s) - 2) * 6) / (m + 1)
	upperBoundN = byQuotientBudget
	if byLength < upperBoundN {
		upperBoundN = byLength
	}
	if upperBoundN < 0 {
		upperBoundN = 0
	}
	return bpp, m, upperBoundN, nil
}

// Decode parses a full set-string and returns its strictly increasing
// value sequence.
func Decode(s string) ([]uint32, error) {
	bpp, m, upperBoundN, err := DecodeInit(s)
	if err != nil {
		return nil, err
	}

	r := base62.NewReader(s[2:])
	dec := NewDeltaDecoder()
	qmax := (int64(1) << uint(bpp-m)) - 1

	values := make([]uint32, 0, upperBoundN)
	for {
		q, end, ok := r.TakeQuotient()
		if !ok {
			return nil, errs.ErrInvalidChar
		}
		if end {
			if q > 5 {
				return nil, errs.ErrCorruptPayload
			}
			break
		}

		qmax -= int64(q)
		if qmax < 0 {
			return nil, errs.ErrQuotientOverflow
		}

		rem, truncated, ok := r.TakeRemainder(m)
		if !ok {
			return nil, errs.ErrInvalidChar
		}
		if truncated {
			return nil, errs.ErrTruncatedPayload
		}

		gap := uint32(q)<<uint(m) | rem
		v, overflow := dec.Next(gap)
		if overflow {
			return nil, errs.ErrValueOverflow
		}
		if bpp < 32 && v >= uint32(1)<<uint(bpp) {
			return nil, errs.ErrValueOverflow
		}
		values = append(values, v)
	}

	return values, nil
}
