// SPDX-License-Identifier: MIT
// Package: variations/alphabet
//
// alphabet.go — Valued contract and the immutable Alphabet lookup tables.

package alphabet

import (
	"fmt"
	"strconv"
)

// Valued is the contract an element type must satisfy to be used as an
// alphabet symbol: it is comparable (usable as a map key) and exposes a
// stable integer value.
type Valued interface {
	comparable
	Value() int
}

// Alphabet is an ordered, duplicate-free collection of symbols. Symbol values
// are distinct too unless the alphabet came from NewRanked.
// Rank i is the i-th symbol in construction order.
type Alphabet[T Valued] struct {
	symbols []T       // rank -> symbol
	ranks   map[T]int // symbol -> rank
	values  map[int]T // value -> symbol
	min     int       // smallest Value() present
	max     int       // largest Value() present
}

// New builds an Alphabet from symbols in the given order.
// Stage 1 (Validate): at least one symbol, no duplicate symbols or values.
// Stage 2 (Prepare): fill rank and value tables, track min/max value.
// Complexity: O(n) time, O(n) memory.
func New[T Valued](symbols ...T) (*Alphabet[T], error) {
	return build(symbols, true)
}

// NewRanked builds an Alphabet that only needs distinct symbols: two symbols
// may report the same Value() (C4 and C5 keyed by pitch class). A shared
// value is left out of the value table, so ByValue reports false for it.
// Rank, Symbol and the enumeration order are exactly as with New.
// Complexity: O(n) time, O(n) memory.
func NewRanked[T Valued](symbols ...T) (*Alphabet[T], error) {
	return build(symbols, false)
}

// build fills the tables; distinctValues selects New's duplicate-value check.
func build[T Valued](symbols []T, distinctValues bool) (*Alphabet[T], error) {
	if len(symbols) == 0 {
		return nil, ErrEmpty
	}

	a := &Alphabet[T]{
		symbols: make([]T, len(symbols)),
		ranks:   make(map[T]int, len(symbols)),
		values:  make(map[int]T, len(symbols)),
		min:     symbols[0].Value(),
		max:     symbols[0].Value(),
	}
	copy(a.symbols, symbols)

	var shared map[int]struct{}
	for rank, s := range a.symbols {
		if _, dup := a.ranks[s]; dup {
			return nil, fmt.Errorf("alphabet: New: symbol %v at rank %d: %w", s, rank, ErrDuplicateSymbol)
		}
		a.ranks[s] = rank
		v := s.Value()
		if prev, dup := a.values[v]; dup {
			if distinctValues {
				return nil, fmt.Errorf("alphabet: New: %v and %v share value %d: %w", prev, s, v, ErrDuplicateValue)
			}
			if shared == nil {
				shared = make(map[int]struct{})
			}
			shared[v] = struct{}{}
		}
		a.values[v] = s
		a.min = min(a.min, v)
		a.max = max(a.max, v)
	}
	for v := range shared {
		delete(a.values, v)
	}

	return a, nil
}

// Len returns the number of symbols n.
func (a *Alphabet[T]) Len() int { return len(a.symbols) }

// Rank returns the dense rank of s, or false if s is not a member.
// Complexity: O(1) expected.
func (a *Alphabet[T]) Rank(s T) (int, bool) {
	r, ok := a.ranks[s]
	return r, ok
}

// Symbol returns the symbol at rank r, or false if r is outside [0, Len()).
// Complexity: O(1).
func (a *Alphabet[T]) Symbol(r int) (T, bool) {
	if r < 0 || r >= len(a.symbols) {
		var zero T
		return zero, false
	}
	return a.symbols[r], true
}

// ByValue returns the symbol whose Value() equals v, or false if none (or,
// for a NewRanked alphabet, if several symbols share v).
// This is the inverse of Valued.Value restricted to the alphabet.
// Complexity: O(1) expected.
func (a *Alphabet[T]) ByValue(v int) (T, bool) {
	s, ok := a.values[v]
	return s, ok
}

// Contains reports whether s is a member of the alphabet.
func (a *Alphabet[T]) Contains(s T) bool {
	_, ok := a.ranks[s]
	return ok
}

// MinValue returns the smallest symbol value.
func (a *Alphabet[T]) MinValue() int { return a.min }

// MaxValue returns the largest symbol value.
func (a *Alphabet[T]) MaxValue() int { return a.max }

// IsContiguous reports whether the symbol values are exactly the integers
// MinValue()..MaxValue(), each held by one symbol, with no gaps.
// Complexity: O(1).
func (a *Alphabet[T]) IsContiguous() bool {
	return len(a.values) == len(a.symbols) && a.max-a.min+1 == len(a.symbols)
}

// Symbols returns a copy of the symbols in rank order.
// Complexity: O(n).
func (a *Alphabet[T]) Symbols() []T {
	out := make([]T, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Int is an integer symbol whose value is itself.
type Int int

// Value implements Valued.
func (i Int) Value() int { return int(i) }

// String renders the integer in base 10.
func (i Int) String() string { return strconv.Itoa(int(i)) }

// Ints returns the symbols lo, lo+1, ..., hi in ascending order.
// Returns nil when hi < lo.
func Ints(lo, hi int) []Int {
	if hi < lo {
		return nil
	}
	out := make([]Int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, Int(v))
	}
	return out
}
