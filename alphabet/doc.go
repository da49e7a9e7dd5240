// SPDX-License-Identifier: MIT

// Package alphabet defines the value-bearing element contract and the ordered,
// duplicate-free Alphabet that every engine in this module is generic over.
//
// 🚀 What is an Alphabet?
//
//	A finite ordered set of n symbols. Each symbol carries:
//	  • a dense rank 0..n-1 (its position in the input order), used by the
//	    mixed-radix index engine;
//	  • an integer value (Value()), used for minimum/shift computations by the
//	    translation-equivalence engine.
//
// ✨ Key features:
//   - Generic over any comparable type implementing Valued
//   - Three O(1) lookup tables: symbol→rank, rank→symbol, value→symbol
//   - Immutable after New; safe for unlimited concurrent readers
//
// ⚙️ Usage:
//
//	a, err := alphabet.New(alphabet.Ints(0, 5)...)
//	if err != nil {
//	  // handle ErrEmpty / ErrDuplicateSymbol / ErrDuplicateValue
//	}
//	r, _ := a.Rank(alphabet.Int(3)) // r == 3
//
// Complexity:
//
//   - New:    O(n) time, O(n) memory
//   - Lookup: O(1) expected
package alphabet
