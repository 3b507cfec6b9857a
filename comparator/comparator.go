// Package comparator models the parallel comparator bank of a flash
// converter: one stateless comparator per reference threshold, each
// applied sample-by-sample to the shared input signal.
package comparator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ugeorge/flashadc/signal"
)

// Bit is a single comparator decision: 0 when the threshold voltage is
// at or below the input sample, 1 when the threshold exceeds it, so the
// decision against an exactly equal input is 0. The polarity is
// inverted relative to the textbook thermometer code, where an asserted
// bit means the input cleared the threshold; here the decoded code
// counts the thresholds still above the input. No epsilon is applied;
// NaN input follows Go float comparison and is left unspecified.
func Bit(threshold, input float64) int {
	if threshold <= input {
		return 0
	}
	return 1
}

// Array builds one bit signal per threshold. Every channel is an
// independent point-wise map over the same input signal, aligned with
// it sample for sample; there is no state shared between channels or
// carried across samples.
func Array(input signal.Signal[float64], thresholds mat.Vector) []signal.Signal[int] {
	bits := make([]signal.Signal[int], thresholds.Len())
	for i := range bits {
		v := thresholds.AtVec(i)
		bits[i] = signal.Map(input, func(x float64) int {
			return Bit(v, x)
		})
	}
	return bits
}
