package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(10, 5)
	require.True(t, ok)
	require.Equal(t, 15, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok, "expected overflow when adding to MaxInt")
	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok, "expected underflow when subtracting from MinInt")
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}

	got, ok := Slice(data, 1, 3)
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, got)
	require.Equal(t, 3, cap(got), "slice must be capped at its length")

	for _, tc := range []struct{ off, n int }{{4, 2}, {-1, 1}, {1, -1}, {6, 0}, {1, math.MaxInt}} {
		_, ok := Slice(data, tc.off, tc.n)
		require.False(t, ok, "Slice(%d, %d) should fail", tc.off, tc.n)
	}

	empty, ok := Slice(data, 5, 0)
	require.True(t, ok)
	require.Empty(t, empty)
}
