// Package flashadc models an ideal flash analog-to-digital converter,
// https://en.wikipedia.org/wiki/Flash_ADC, as a pipeline of synchronous
// signal stages: a resistor ladder deriving the reference thresholds, a
// parallel comparator bank, and a thermometer-code decoder summing the
// comparator bits into the output code.
//
// The model is purely functional. Every output sample depends only on
// the input sample at the same clock index and the static threshold
// list; no stage carries state between samples.
package flashadc

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ugeorge/flashadc/comparator"
	"github.com/ugeorge/flashadc/decoder"
	"github.com/ugeorge/flashadc/ladder"
	"github.com/ugeorge/flashadc/signal"
)

// Convert quantizes the input signal against the thresholds of the
// given resistor ladder and returns the code signal, sample-aligned
// with the input. It is the composition
//
//	decoder.Decode(comparator.Array(input, ladder.Thresholds(resistors)))
//
// and is deterministic with no side effects. Configuration errors from
// the ladder surface before any sample is drawn.
func Convert(resistors []float64, input signal.Signal[float64], opts ...ladder.Option) (signal.Signal[int], error) {
	thresholds, err := ladder.Thresholds(resistors, opts...)
	if err != nil {
		return signal.Signal[int]{}, fmt.Errorf("flashadc: %w", err)
	}
	code, err := decoder.Decode(comparator.Array(input, thresholds))
	if err != nil {
		return signal.Signal[int]{}, fmt.Errorf("flashadc: %w", err)
	}
	return code, nil
}

// ConvertSamples quantizes a bounded block of samples, evaluating the
// comparator channels concurrently. Each channel owns its row of the
// bit matrix and only the input block and threshold vector are shared,
// read-only, so no locking is needed; a final point-wise sum over the
// channel rows produces the codes. The result equals Convert applied to
// the same samples.
func ConvertSamples(resistors []float64, samples []float64, opts ...ladder.Option) ([]int, error) {
	thresholds, err := ladder.Thresholds(resistors, opts...)
	if err != nil {
		return nil, fmt.Errorf("flashadc: %w", err)
	}

	m := thresholds.Len()
	bits := make([][]int, m)

	var g errgroup.Group
	for i := 0; i < m; i++ {
		v := thresholds.AtVec(i)
		row := make([]int, len(samples))
		bits[i] = row
		g.Go(func() error {
			for n, x := range samples {
				row[n] = comparator.Bit(v, x)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("flashadc: %w", err)
	}

	codes := make([]int, len(samples))
	for _, row := range bits {
		for n, b := range row {
			codes[n] += b
		}
	}
	return codes, nil
}
