// SPDX-License-Identifier: MIT
// Package: variations/variation
//
// enumerate.go — lazy, pull-based enumeration of the space.
//
// Contract:
//   • Strictly increasing index order; position 0 changes fastest.
//   • Restartable: every range over the returned iterator starts afresh.
//   • No shared state: each yielded Variation owns its Index and Elements.
//   • Callers stop early by breaking out of the range loop.

package variation

import (
	"fmt"
	"iter"
	"math/big"
)

// All yields every sequence of the space, index 0 through Count()-1.
// Complexity: O(k) amortized per step (odometer carry), O(k) memory.
func (s *Space[T]) All() iter.Seq[Variation[T]] {
	return s.from(new(big.Int))
}

// From yields the sequences with index >= start in increasing order.
// Returns ErrIndexOutOfRange if start is outside [0, Count()).
func (s *Space[T]) From(start *big.Int) (iter.Seq[Variation[T]], error) {
	if !s.InRange(start) {
		return nil, fmt.Errorf("variation: From(%v): %w", start, ErrIndexOutOfRange)
	}

	return s.from(start), nil
}

// from runs the odometer starting at an in-range index.
func (s *Space[T]) from(start *big.Int) iter.Seq[Variation[T]] {
	n := s.alpha.Len()

	return func(yield func(Variation[T]) bool) {
		digits := s.digits(start)
		cur := new(big.Int).Set(start)
		one := big.NewInt(1)

		for cur.Cmp(s.count) < 0 {
			elems := make([]T, s.length)
			for i, r := range digits {
				elems[i], _ = s.alpha.Symbol(r)
			}
			if !yield(Variation[T]{Index: new(big.Int).Set(cur), Elements: elems}) {
				return
			}

			// Increment the rank digits with carry.
			for i := range digits {
				digits[i]++
				if digits[i] < n {
					break
				}
				digits[i] = 0
			}
			cur.Add(cur, one)
		}
	}
}
