// Package variations indexes every fixed-length sequence over an ordered
// alphabet, groups sequences that differ only by a uniform shift of values,
// and pairs items under a caller-supplied norm.
//
// 🚀 What is in the box?
//
//	• Bijective index: every sequence of length k over n symbols ↔ an
//	  integer in [0, n^k), exact at any size (math/big)
//	• Translation equivalence: each sequence reduced to a prime form and a
//	  shift; every prime form lists its translates
//	• Pairing: all ordered pairs of a set, with norms, grouping and a
//	  cached n×n norm table
//	• Shapes: the musical view (fret shapes across strings)
//
// Everything is organized in flat subpackages:
//
//	alphabet/    — ordered, valued symbol sets (Alphabet, Int)
//	variation/   — Space: Encode, Decode, lazy enumeration
//	equivalence/ — Engine: prime forms, translates, canonicalization
//	pairing/     — AllPairs, AllNormedPairs, Groups, Ordered
//	matrix/      — generic dense table backing pairing.Ordered
//	shapes/      — Shapes: prime forms and translations of fret patterns
//	fretting/    — RelativeFret and PitchClass symbol types
//	cmd/variations — inspection CLI (count, index, shapes, canon, pairs)
//
// Quick example (2 strings, frets 0..5):
//
//	(2, 5) ──shift -2──▶ (0, 3)    index 32 ↔ prime form 18, shift +2
//
//	go get github.com/katalvlaran/variations
package variations
