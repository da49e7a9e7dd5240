// SPDX-License-Identifier: MIT
// Package: variations/pairing
//
// groups.go — partition of normed pairs by norm value.

package pairing

import (
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/variations/alphabet"
)

// Groups partitions normed pairs into buckets keyed by norm. Every input
// pair lands in exactly one bucket. NaN norms never compare equal and so
// each forms its own unreachable bucket; use finite norms.
type Groups[T alphabet.Valued, N Number] struct {
	buckets map[N][]NormedPair[T, N]
	norms   []N // ascending, distinct
	total   int
}

// GroupByNorm drains pairs into a Groups.
// Complexity: O(p + b log b) for p pairs and b distinct norms.
func GroupByNorm[T alphabet.Valued, N Number](pairs iter.Seq[NormedPair[T, N]]) *Groups[T, N] {
	g := &Groups[T, N]{buckets: make(map[N][]NormedPair[T, N])}
	for p := range pairs {
		g.buckets[p.Norm] = append(g.buckets[p.Norm], p)
		g.total++
	}
	g.norms = slices.Sorted(maps.Keys(g.buckets))

	return g
}

// Norms returns the distinct norm values in ascending order.
func (g *Groups[T, N]) Norms() []N { return slices.Clone(g.norms) }

// Pairs returns the pairs whose norm equals norm, in input order.
// Returns nil when no pair has that norm.
func (g *Groups[T, N]) Pairs(norm N) []NormedPair[T, N] {
	return slices.Clone(g.buckets[norm])
}

// Count returns how many pairs have the given norm.
func (g *Groups[T, N]) Count(norm N) int { return len(g.buckets[norm]) }

// Len returns the total number of grouped pairs.
func (g *Groups[T, N]) Len() int { return g.total }

// Histogram returns norm → pair count.
func (g *Groups[T, N]) Histogram() map[N]int {
	out := make(map[N]int, len(g.buckets))
	for n, ps := range g.buckets {
		out[n] = len(ps)
	}

	return out
}
