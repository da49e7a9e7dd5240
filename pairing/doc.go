// SPDX-License-Identifier: MIT

// Package pairing specializes the variation index engine to length 2.
//
// ✨ Key features:
//   - AllPairs: every ordered pair (a, b) of an item set, a == b included
//   - AllNormedPairs: the same pairs carrying norm(a, b), computed on demand
//   - GroupByNorm: a true partition of pairs by norm ("how many pairs at distance d")
//   - Ordered: the same surface over a norm table precomputed at construction
//   - WithPredicate: filter items before the pair space is built
//
// ⚙️ Usage:
//
//	pairs, err := pairing.AllNormedPairs(items, intervalClass)
//	if err != nil {
//	  // handle variation.ErrInvalidConstruction / alphabet.ErrDuplicateSymbol / ErrNilNorm
//	}
//	groups := pairing.GroupByNorm(pairs)
//	fmt.Println(groups.Histogram())
//
// Norms should be symmetric; the engine never checks this on its own, but
// Ordered.Symmetric reports it after the table is built.
//
// Performance:
//
//   - AllPairs / AllNormedPairs: O(n) setup, O(1) amortized per pair
//   - Ordered: O(n²) time and memory up front, O(1) per lookup
package pairing
