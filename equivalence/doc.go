// SPDX-License-Identifier: MIT

// Package equivalence partitions a variation.Space into translation-equivalence
// classes: two sequences are equivalent when one is obtained from the other by
// adding the same constant to every symbol value. Each class has one canonical
// ("prime") member, the one containing the alphabet's minimum value, and every
// other member is described by a Record (From, To, Shift).
//
// The Engine is built eagerly in New from a single pass over the space and is
// read-only afterwards. Memory is O(n^k).
//
// Rotation equivalence (cyclic permutations of positions or values) is not
// modelled here.
package equivalence
