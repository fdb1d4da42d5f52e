package codec

import "github.com/svpv/rpmss/errs"

// DeltaEncoder converts a strictly increasing sequence of values into
// its zero-based gap sequence: gap[i] = v[i] - v[i-1] - 1, with an
// implicit v[-1] = -1 so the first gap folds into the same formula
// (gap[0] = v[0]).
type DeltaEncoder struct {
	prev uint32
}

// NewDeltaEncoder returns a DeltaEncoder ready to encode the first
// value of a set.
func NewDeltaEncoder() *DeltaEncoder {
	return &DeltaEncoder{prev: ^uint32(0)}
}

// Next consumes the next value (which must be strictly greater than
// the previous one) and returns its gap.
func (d *DeltaEncoder) Next(v uint32) (gap uint32, err error) {
	d.prev++
	if v < d.prev {
		return 0, errs.ErrNonMonotone
	}
	gap = v - d.prev
	d.prev = v
	return gap, nil
}

// DeltaDecoder is the inverse of DeltaEncoder: it reconstructs values
// from a gap sequence.
type DeltaDecoder struct {
	prev  uint32
	first bool
}

// NewDeltaDecoder returns a DeltaDecoder ready to decode the first gap
// of a set.
func NewDeltaDecoder() *DeltaDecoder {
	return &DeltaDecoder{first: true}
}

// Next consumes the next gap and returns the reconstructed value.
// overflow is true if the reconstructed value wrapped past the uint32
// range. The first value is the first gap itself (the implicit v[-1]
// is -1, so prev+1 is genuinely 0) and can never overflow.
func (d *DeltaDecoder) Next(gap uint32) (v uint32, overflow bool) {
	if d.first {
		d.first = false
		d.prev = gap
		return gap, false
	}
	next := uint64(d.prev) + 1 + uint64(gap)
	if next > 0xFFFFFFFF {
		return 0, true
	}
	v = uint32(next)
	d.prev = v
	return v, false
}
