// SPDX-License-Identifier: MIT

// Package variation implements the bijective sequence index engine: an exact
// mapping between every length-k sequence over an alphabet of size n and a
// unique index in [0, n^k).
//
// 🚀 What is a variation?
//
//	An ordered k-tuple drawn from the alphabet, repetition allowed. The
//	space of all of them has n^k members, which overflows machine words
//	quickly (6 frets on 30 strings is already ~2.2e23), so every index is a
//	*big.Int.
//
// ✨ Key features:
//   - Encode / Decode: mixed-radix positional encoding, position 0 least significant
//   - All / From: lazy iter.Seq enumeration in strictly increasing index order
//   - UnknownSymbolError lists up to five offending symbols
//
// ⚙️ Usage:
//
//	a, _ := alphabet.New(alphabet.Ints(0, 5)...)
//	space, _ := variation.New(a, 2)
//	idx, _ := space.Encode([]alphabet.Int{0, 3}) // 18
//	seq, _ := space.Decode(big.NewInt(7))        // [1 1]
//	for v := range space.All() {
//	  _ = v.Index
//	}
//
// Performance:
//
//   - Encode/Decode: O(k) big-int operations
//   - Enumeration:   O(k) amortized per sequence, no materialization
package variation
