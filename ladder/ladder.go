// Package ladder derives comparator reference voltages from a resistor
// ladder, the threshold generator of a flash converter. Each interior
// tap of the voltage divider becomes one threshold; the two boundary
// taps (ground and the full supply) belong to the degenerate always-low
// and always-high comparators and are discarded.
package ladder

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultSupply is the supply voltage used when no option overrides it.
const DefaultSupply = 1.0

var (
	// ErrLadderLength indicates a resistor list with fewer than two
	// elements, which produces no interior tap.
	ErrLadderLength = errors.New("ladder: resistor ladder needs at least two resistors")
	// ErrResistance indicates a resistor value that is not strictly
	// positive.
	ErrResistance = errors.New("ladder: resistor values must be positive")
)

type config struct {
	supply float64
}

// Option configures the threshold generator.
type Option func(*config)

// WithSupply sets the ladder supply voltage. Default is DefaultSupply.
func WithSupply(v float64) Option {
	return func(cfg *config) { cfg.supply = v }
}

// Thresholds computes the interior tap voltages of the ladder in ladder
// order. For N resistors the cumulative divider walks through N+1
// points from 0 to the supply; the N-1 interior points are returned as
// a dense vector, one per comparator.
//
// Thresholds are monotonically increasing because resistor values are
// required positive; the order of the resistor list fixes the order of
// the taps.
func Thresholds(resistors []float64, opts ...Option) (*mat.VecDense, error) {
	cfg := config{supply: DefaultSupply}
	for _, o := range opts {
		o(&cfg)
	}

	if len(resistors) < 2 {
		return nil, ErrLadderLength
	}
	for _, r := range resistors {
		if r <= 0 {
			return nil, ErrResistance
		}
	}

	total := floats.Sum(resistors)

	// Cumulative divider voltages. cum[k] is the tap above resistor k,
	// so cum[N-1] is the full supply and the taps before it are the
	// interior points.
	cum := make([]float64, len(resistors))
	for i, r := range resistors {
		cum[i] = cfg.supply * r / total
	}
	floats.CumSum(cum, cum)

	return mat.NewVecDense(len(resistors)-1, cum[:len(resistors)-1]), nil
}
