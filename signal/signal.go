// Package signal provides the synchronous signal substrate for the
// flash ADC model: an ordered, lazily evaluated sequence of samples on
// a discrete global clock, with point-wise combinators.
//
// A Signal is a definition, not a buffer. Iterating it regenerates the
// samples from that definition, so the same signal can feed any number
// of downstream consumers without coordination; nothing is memoized.
package signal

import (
	"errors"
	"iter"
	"math"
)

// Unbounded is the declared length of a signal with no defined end.
const Unbounded = -1

var (
	// ErrAlignment indicates a point-wise combination of two bounded
	// signals whose lengths differ.
	ErrAlignment = errors.New("signal: point-wise combination of signals with different lengths")
	// ErrUnbounded indicates an attempt to materialize a signal with no
	// defined end.
	ErrUnbounded = errors.New("signal: cannot collect an unbounded signal")
)

// Signal is a discrete-time sequence of samples of type T. The zero
// value is an empty bounded signal.
type Signal[T any] struct {
	length int
	seq    iter.Seq[T]
}

// Len returns the number of samples the signal produces, or Unbounded.
func (s Signal[T]) Len() int { return s.length }

// Samples returns an iterator over the signal from clock index zero.
// Each call restarts from the signal definition.
func (s Signal[T]) Samples() iter.Seq[T] {
	if s.seq == nil {
		return func(yield func(T) bool) {}
	}
	return s.seq
}

// FromSlice returns the bounded signal whose samples are the elements
// of samples in order. The slice is not copied.
func FromSlice[T any](samples []T) Signal[T] {
	return Signal[T]{
		length: len(samples),
		seq: func(yield func(T) bool) {
			for _, v := range samples {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Const returns the unbounded signal that holds v at every clock index.
func Const[T any](v T) Signal[T] {
	return Signal[T]{
		length: Unbounded,
		seq: func(yield func(T) bool) {
			for yield(v) {
			}
		},
	}
}

// Generate returns the unbounded signal whose sample at clock index n
// is f(n).
func Generate[T any](f func(n int) T) Signal[T] {
	return Signal[T]{
		length: Unbounded,
		seq: func(yield func(T) bool) {
			for n := 0; ; n++ {
				if !yield(f(n)) {
					return
				}
			}
		},
	}
}

// Sinusoid returns the unbounded signal
//
//	amplitude * sin(2*pi*frequency*n*ts + phase)
//
// sampled with period ts. It is the usual stimulus for driving a
// converter model.
func Sinusoid(amplitude, frequency, phase, ts float64) Signal[float64] {
	return Generate(func(n int) float64 {
		return amplitude * math.Sin(2*math.Pi*frequency*float64(n)*ts+phase)
	})
}
