// Package decoder reduces the comparator bit signals of a flash
// converter to its integer output code.
package decoder

import "github.com/ugeorge/flashadc/signal"

// Decode folds the bit signals with point-wise addition, producing the
// thermometer-code sum at every clock index. Addition is associative,
// so the left-to-right fold order does not affect the result.
//
// With no bit signals the code is the constant zero signal. All bit
// signals must be sample-aligned; combining signals of different
// lengths fails with signal.ErrAlignment.
func Decode(bits []signal.Signal[int]) (signal.Signal[int], error) {
	if len(bits) == 0 {
		return signal.Const(0), nil
	}
	code := bits[0]
	for _, b := range bits[1:] {
		var err error
		code, err = signal.Zip(code, b, func(x, y int) int { return x + y })
		if err != nil {
			return signal.Signal[int]{}, err
		}
	}
	return code, nil
}
