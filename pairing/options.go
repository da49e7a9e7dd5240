// SPDX-License-Identifier: MIT
// Package: variations/pairing
//
// options.go — functional options for pair enumeration.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil funcs);
//     enumeration itself never panics.
//   • Options apply in order; later options override earlier ones.

package pairing

import "github.com/katalvlaran/variations/alphabet"

// Option customizes pair enumeration by mutating a pairConfig.
type Option[T alphabet.Valued] func(*pairConfig[T])

// pairConfig aggregates all knobs of AllPairs / AllNormedPairs / NewOrdered.
type pairConfig[T alphabet.Valued] struct {
	keep func(T) bool // nil keeps every item
}

// WithPredicate keeps only the items for which keep returns true, before the
// pair space is built. Panics on nil.
// Complexity: O(1) to construct; O(n) calls when applied.
func WithPredicate[T alphabet.Valued](keep func(T) bool) Option[T] {
	if keep == nil {
		panic("pairing: WithPredicate(nil)")
	}
	return func(c *pairConfig[T]) {
		c.keep = keep
	}
}

// newPairConfig applies opts over the defaults (no filtering).
func newPairConfig[T alphabet.Valued](opts ...Option[T]) pairConfig[T] {
	var cfg pairConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// filter returns the kept items in their original order.
func (c pairConfig[T]) filter(items []T) []T {
	if c.keep == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if c.keep(it) {
			out = append(out, it)
		}
	}

	return out
}
