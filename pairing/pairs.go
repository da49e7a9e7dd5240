// SPDX-License-Identifier: MIT
// Package: variations/pairing
//
// pairs.go — AllPairs / AllNormedPairs on top of the k=2 index engine.
//
// Order: index order of variation.Space with k=2, i.e. the first element
// changes fastest: (x0,x0), (x1,x0), ..., (x0,x1), ...

package pairing

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/variation"
)

// pairLength is the sequence length of a pair space.
const pairLength = 2

var (
	// ErrNilNorm indicates a nil norm function.
	ErrNilNorm = errors.New("pairing: nil norm function")

	// ErrUnknownItem indicates a lookup for an item outside the (filtered) set.
	ErrUnknownItem = errors.New("pairing: unknown item")
)

// pairSpace filters items and builds the k=2 space over them. Items only
// need to be distinct; their values are never consulted, so two items may
// share one (notes an octave apart keyed by pitch class).
// Errors: variation.ErrInvalidConstruction (together with alphabet.ErrEmpty)
// when nothing is left after filtering, alphabet.ErrDuplicateSymbol.
func pairSpace[T alphabet.Valued](items []T, opts []Option[T]) (*variation.Space[T], error) {
	cfg := newPairConfig(opts...)
	kept := cfg.filter(items)
	if len(kept) == 0 {
		return nil, fmt.Errorf("pairing: no items left out of %d: %w: %w",
			len(items), variation.ErrInvalidConstruction, alphabet.ErrEmpty)
	}
	a, err := alphabet.NewRanked(kept...)
	if err != nil {
		return nil, fmt.Errorf("pairing: %w", err)
	}

	return variation.New(a, pairLength)
}

// AllPairs yields every ordered pair (a, b) of the kept items, including a == b.
// n kept items produce n² pairs.
// Complexity: O(n) setup, O(1) amortized per pair.
func AllPairs[T alphabet.Valued](items []T, opts ...Option[T]) (iter.Seq[Pair[T]], error) {
	space, err := pairSpace(items, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(Pair[T]) bool) {
		for v := range space.All() {
			if !yield(Pair[T]{A: v.Elements[0], B: v.Elements[1]}) {
				return
			}
		}
	}, nil
}

// AllNormedPairs is AllPairs with norm(a, b) attached to every pair.
// norm is evaluated lazily, once per yielded pair. It should be symmetric,
// norm(a,b) == norm(b,a), for grouping to be meaningful; this is not checked.
func AllNormedPairs[T alphabet.Valued, N Number](items []T, norm func(a, b T) N, opts ...Option[T]) (iter.Seq[NormedPair[T, N]], error) {
	if norm == nil {
		return nil, ErrNilNorm
	}
	pairs, err := AllPairs(items, opts...)
	if err != nil {
		return nil, err
	}

	return func(yield func(NormedPair[T, N]) bool) {
		for p := range pairs {
			if !yield(NormedPair[T, N]{Pair: p, Norm: norm(p.A, p.B)}) {
				return
			}
		}
	}, nil
}
