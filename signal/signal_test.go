package signal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ugeorge/flashadc/signal"
)

// TestFromSliceCollect verifies that a bounded signal reproduces its
// defining samples in order.
func TestFromSliceCollect(t *testing.T) {
	s := signal.FromSlice([]float64{0.1, 0.2, 0.3})
	require.Equal(t, 3, s.Len())

	got, err := signal.Collect(s)
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.2, 0.3}, got)
}

// TestRestartable verifies that iterating a signal twice regenerates
// the same samples from its definition.
func TestRestartable(t *testing.T) {
	s := signal.FromSlice([]int{1, 2, 3})

	first, err := signal.Collect(s)
	require.NoError(t, err)
	second, err := signal.Collect(s)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestMap verifies point-wise application and length preservation.
func TestMap(t *testing.T) {
	s := signal.Map(signal.FromSlice([]int{1, 2, 3}), func(v int) int { return 2 * v })
	require.Equal(t, 3, s.Len())

	got, err := signal.Collect(s)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, got)
}

// TestZip verifies point-wise combination of two aligned signals.
func TestZip(t *testing.T) {
	a := signal.FromSlice([]int{1, 2, 3})
	b := signal.FromSlice([]int{10, 20, 30})

	z, err := signal.Zip(a, b, func(x, y int) int { return x + y })
	require.NoError(t, err)

	got, err := signal.Collect(z)
	require.NoError(t, err)
	require.Equal(t, []int{11, 22, 33}, got)
}

// TestZipAlignment verifies that combining bounded signals of
// different lengths fails at combination time.
func TestZipAlignment(t *testing.T) {
	a := signal.FromSlice([]int{1, 2, 3})
	b := signal.FromSlice([]int{1, 2})

	_, err := signal.Zip(a, b, func(x, y int) int { return x + y })
	require.ErrorIs(t, err, signal.ErrAlignment)
}

// TestZipUnbounded verifies that an unbounded signal aligns with any
// bounded signal and the result takes the bounded length.
func TestZipUnbounded(t *testing.T) {
	a := signal.FromSlice([]int{1, 2, 3})
	b := signal.Const(10)

	z, err := signal.Zip(a, b, func(x, y int) int { return x + y })
	require.NoError(t, err)
	require.Equal(t, 3, z.Len())

	got, err := signal.Collect(z)
	require.NoError(t, err)
	require.Equal(t, []int{11, 12, 13}, got)
}

// TestTake verifies truncation of an unbounded generator.
func TestTake(t *testing.T) {
	ramp := signal.Generate(func(n int) int { return n })

	got, err := signal.Collect(signal.Take(ramp, 4))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, got)
}

// TestTakeShortSignal verifies Take past the end of a bounded signal.
func TestTakeShortSignal(t *testing.T) {
	s := signal.FromSlice([]int{7, 8})
	taken := signal.Take(s, 5)
	require.Equal(t, 2, taken.Len())

	got, err := signal.Collect(taken)
	require.NoError(t, err)
	require.Equal(t, []int{7, 8}, got)
}

// TestCollectUnbounded verifies that materializing an unbounded signal
// is refused rather than looping.
func TestCollectUnbounded(t *testing.T) {
	_, err := signal.Collect(signal.Const(0))
	require.ErrorIs(t, err, signal.ErrUnbounded)
}

// TestSinusoid checks the first quarter period of a unit sinusoid.
func TestSinusoid(t *testing.T) {
	// One period over four samples: sin(0), sin(pi/2), sin(pi), sin(3pi/2).
	s := signal.Take(signal.Sinusoid(1, 0.25, 0, 1), 4)

	got, err := signal.Collect(s)
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.InDelta(t, 0, got[0], 1e-12)
	require.InDelta(t, 1, got[1], 1e-12)
	require.InDelta(t, 0, got[2], 1e-12)
	require.InDelta(t, -1, got[3], 1e-12)
}

// TestZeroValue verifies that the zero Signal is empty and bounded.
func TestZeroValue(t *testing.T) {
	var s signal.Signal[float64]
	require.Equal(t, 0, s.Len())

	got, err := signal.Collect(s)
	require.NoError(t, err)
	require.Empty(t, got)
}
