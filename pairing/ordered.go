// SPDX-License-Identifier: MIT
// Package: variations/pairing
//
// ordered.go — Ordered: pair enumeration backed by a precomputed norm table.
//
// Scale limit:
//   The full n×n table is computed in NewOrdered: O(n²) norm calls and O(n²)
//   memory, traded for O(1) lookups afterwards. Intended for bounded item
//   sets (a few dozen elements: pitch classes, fret offsets). Nothing guards
//   against larger inputs.

package pairing

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/matrix"
	"github.com/katalvlaran/variations/variation"
)

// Ordered caches norm(a, b) for every ordered pair of a fixed item set.
// It is immutable after NewOrdered and safe for concurrent readers.
type Ordered[T alphabet.Valued, N Number] struct {
	space *variation.Space[T]
	alpha *alphabet.Alphabet[T]
	table *matrix.Dense[N] // table[rank(a), rank(b)] = norm(a, b)
}

// NewOrdered filters items, builds the k=2 space and fills the norm table.
// Complexity: O(n²) time and memory.
func NewOrdered[T alphabet.Valued, N Number](items []T, norm func(a, b T) N, opts ...Option[T]) (*Ordered[T, N], error) {
	if norm == nil {
		return nil, ErrNilNorm
	}
	space, err := pairSpace(items, opts)
	if err != nil {
		return nil, err
	}

	alpha := space.Alphabet()
	symbols := alpha.Symbols()
	table, err := matrix.NewSquareFunc(len(symbols), func(i, j int) N {
		return norm(symbols[i], symbols[j])
	})
	if err != nil {
		return nil, fmt.Errorf("pairing: NewOrdered: %w", err)
	}

	return &Ordered[T, N]{space: space, alpha: alpha, table: table}, nil
}

// Items returns the kept items in rank order.
func (o *Ordered[T, N]) Items() []T { return o.alpha.Symbols() }

// Len returns the number of ordered pairs, n².
func (o *Ordered[T, N]) Len() int { return o.alpha.Len() * o.alpha.Len() }

// Norm returns the cached norm of (a, b).
// Returns ErrUnknownItem if either item is not in the set.
// Complexity: O(1).
func (o *Ordered[T, N]) Norm(a, b T) (N, error) {
	i, okA := o.alpha.Rank(a)
	j, okB := o.alpha.Rank(b)
	if !okA || !okB {
		var zero N
		return zero, fmt.Errorf("pairing: Norm(%v, %v): %w", a, b, ErrUnknownItem)
	}

	return o.table.At(i, j)
}

// Pairs yields every normed pair in the same order as AllNormedPairs,
// reading norms from the table.
func (o *Ordered[T, N]) Pairs() iter.Seq[NormedPair[T, N]] {
	return func(yield func(NormedPair[T, N]) bool) {
		for v := range o.space.All() {
			a, b := v.Elements[0], v.Elements[1]
			i, _ := o.alpha.Rank(a)
			j, _ := o.alpha.Rank(b)
			n, _ := o.table.At(i, j)
			if !yield(NormedPair[T, N]{Pair: Pair[T]{A: a, B: b}, Norm: n}) {
				return
			}
		}
	}
}

// Groups partitions all cached pairs by norm.
func (o *Ordered[T, N]) Groups() *Groups[T, N] {
	return GroupByNorm(o.Pairs())
}

// Symmetric reports whether the cached norm satisfied norm(a,b) == norm(b,a)
// for every pair.
// Complexity: O(n²).
func (o *Ordered[T, N]) Symmetric() bool {
	return matrix.IsSymmetric(o.table)
}
