package signal

import "iter"

// Map returns the signal whose sample at every clock index is f applied
// to the corresponding sample of s. The result keeps the length of s.
func Map[T, U any](s Signal[T], f func(T) U) Signal[U] {
	return Signal[U]{
		length: s.length,
		seq: func(yield func(U) bool) {
			for v := range s.Samples() {
				if !yield(f(v)) {
					return
				}
			}
		},
	}
}

// Zip combines a and b point-wise with f. The two signals must share
// the same clock: two bounded signals of different lengths fail with
// ErrAlignment at combination time. An unbounded signal is defined at
// every index, so it aligns with anything; the result takes the length
// of the bounded partner.
func Zip[T, U, V any](a Signal[T], b Signal[U], f func(T, U) V) (Signal[V], error) {
	if a.length != Unbounded && b.length != Unbounded && a.length != b.length {
		return Signal[V]{}, ErrAlignment
	}
	length := a.length
	if length == Unbounded {
		length = b.length
	}
	return Signal[V]{
		length: length,
		seq: func(yield func(V) bool) {
			nextA, stopA := iter.Pull(a.Samples())
			defer stopA()
			nextB, stopB := iter.Pull(b.Samples())
			defer stopB()
			for {
				va, okA := nextA()
				vb, okB := nextB()
				if !okA || !okB {
					return
				}
				if !yield(f(va, vb)) {
					return
				}
			}
		},
	}, nil
}

// Take returns the signal holding the first n samples of s, or all of
// them if s ends sooner.
func Take[T any](s Signal[T], n int) Signal[T] {
	length := n
	if s.length != Unbounded && s.length < n {
		length = s.length
	}
	return Signal[T]{
		length: length,
		seq: func(yield func(T) bool) {
			taken := 0
			for v := range s.Samples() {
				if taken == n {
					return
				}
				if !yield(v) {
					return
				}
				taken++
			}
		},
	}
}

// Collect materializes a bounded signal into a slice. Collecting an
// unbounded signal fails with ErrUnbounded.
func Collect[T any](s Signal[T]) ([]T, error) {
	if s.length == Unbounded {
		return nil, ErrUnbounded
	}
	out := make([]T, 0, s.length)
	for v := range s.Samples() {
		out = append(out, v)
	}
	return out, nil
}
