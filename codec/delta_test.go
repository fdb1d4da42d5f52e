package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeltaRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 2, 10, 11, 1000, 1001, 50000}

	enc := NewDeltaEncoder()
	gaps := make([]uint32, len(values))
	for i, v := range values {
		g, err := enc.Next(v)
		require.NoError(t, err)
		gaps[i] = g
	}

	dec := NewDeltaDecoder()
	for i, g := range gaps {
		v, overflow := dec.Next(g)
		require.False(t, overflow)
		require.Equal(t, values[i], v)
	}
}

func TestDeltaEncoderRejectsNonMonotone(t *testing.T) {
	enc := NewDeltaEncoder()
	_, err := enc.Next(5)
	require.NoError(t, err)

	_, err = enc.Next(5)
	require.Error(t, err)

	_, err = enc.Next(3)
	require.Error(t, err)
}

func TestDeltaFirstGapEqualsFirstValue(t *testing.T) {
	enc := NewDeltaEncoder()
	gap, err := enc.Next(42)
	require.NoError(t, err)
	require.Equal(t, uint32(42), gap)
}

func TestDeltaDecoderFirstValueNeverOverflows(t *testing.T) {
	// The implicit v[-1] = -1 must not trip the wraparound check on
	// the first gap, including the two extremes.
	for _, gap := range []uint32{0, ^uint32(0)} {
		dec := NewDeltaDecoder()
		v, overflow := dec.Next(gap)
		require.False(t, overflow)
		require.Equal(t, gap, v)
	}
}

func TestDeltaDecoderDetectsOverflow(t *testing.T) {
	dec := NewDeltaDecoder()
	_, overflow := dec.Next(^uint32(0)) // v = 0xFFFFFFFF
	require.False(t, overflow)

	_, overflow = dec.Next(0) // v would be 0x100000000
	require.True(t, overflow)
}
