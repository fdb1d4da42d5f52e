package compare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withSentinels(values []uint32) []uint32 {
	v := make([]uint32, len(values)+Sentinels)
	copy(v, values)
	for i := len(values); i < len(v); i++ {
		v[i] = ^uint32(0)
	}
	return v
}

func TestCompareEqual(t *testing.T) {
	v1 := withSentinels([]uint32{1, 2, 3, 4, 5})
	v2 := []uint32{1, 2, 3, 4, 5}
	require.Equal(t, Equal, Compare(v1, 5, v2))
}

func TestCompareSuperset(t *testing.T) {
	v1 := withSentinels([]uint32{1, 2, 3, 4, 5})
	v2 := []uint32{2, 4}
	require.Equal(t, Superset, Compare(v1, 5, v2))
}

func TestCompareSubset(t *testing.T) {
	v1 := withSentinels([]uint32{2, 4})
	v2 := []uint32{1, 2, 3, 4, 5}
	require.Equal(t, Subset, Compare(v1, 2, v2))
}

func TestCompareIncomparable(t *testing.T) {
	v1 := withSentinels([]uint32{1, 2, 3})
	v2 := []uint32{2, 3, 4}
	require.Equal(t, Incomparable, Compare(v1, 3, v2))
}

func TestCompareAntiSymmetry(t *testing.T) {
	a := withSentinels([]uint32{1, 2, 3, 4, 5})
	b := []uint32{2, 4}

	require.Equal(t, Superset, Compare(a, 5, b))
	require.Equal(t, Subset, Compare(withSentinels(b), 2, []uint32{1, 2, 3, 4, 5}))
}

func TestCompareWideStride(t *testing.T) {
	// n1 >= 16*n2 exercises the step=8 speculative stride.
	n1 := 200
	values := make([]uint32, n1)
	for i := range values {
		values[i] = uint32(i * 2)
	}
	v1 := withSentinels(values)
	v2 := []uint32{10, 50, 250}
	require.Equal(t, Superset, Compare(v1, n1, v2))
}

func TestCompareNarrowStride(t *testing.T) {
	values := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	v1 := withSentinels(values)
	v2 := []uint32{3, 7}
	require.Equal(t, Superset, Compare(v1, len(values), v2))
}

func TestCompareReflexivity(t *testing.T) {
	values := []uint32{7, 9, 11, 100, 4096}
	v1 := withSentinels(values)
	require.Equal(t, Equal, Compare(v1, len(values), values))
}

func TestCompareRequiresExceedsProvides(t *testing.T) {
	v1 := withSentinels([]uint32{5})
	v2 := []uint32{1, 5, 9}
	require.Equal(t, Subset, Compare(v1, 1, v2))
}
