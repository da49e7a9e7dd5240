// SPDX-License-Identifier: MIT
// Package: variations/variation
//
// space.go — Space: the mixed-radix bijection between sequences and indices.
//
// Encoding (base n, position 0 least significant):
//
//	index = Σ rank(s_i) · n^i   for i = 0..k-1
//
// All index arithmetic uses math/big; n^k beyond 64 bits is a regular case.

package variation

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/variations/alphabet"
)

// Space is the set of all length-k sequences over an alphabet of size n.
// It is never materialized; sequences are encoded, decoded and enumerated
// on demand. A Space is immutable and safe for concurrent use.
type Space[T alphabet.Valued] struct {
	alpha  *alphabet.Alphabet[T]
	length int
	radix  *big.Int // n
	count  *big.Int // n^k
}

// Variation is one sequence of the space together with its index.
// Index and Elements are owned by the receiver of the value.
type Variation[T alphabet.Valued] struct {
	Index    *big.Int
	Elements []T
}

// New returns the space of length-k sequences over a.
// Returns ErrInvalidConstruction if a is nil or empty, or length <= 0.
// Complexity: O(log k) big-int multiplications for n^k.
func New[T alphabet.Valued](a *alphabet.Alphabet[T], length int) (*Space[T], error) {
	if a == nil || a.Len() <= 0 {
		return nil, fmt.Errorf("variation: New: empty alphabet: %w", ErrInvalidConstruction)
	}
	if length <= 0 {
		return nil, fmt.Errorf("variation: New: length %d: %w", length, ErrInvalidConstruction)
	}

	radix := big.NewInt(int64(a.Len()))
	count := new(big.Int).Exp(radix, big.NewInt(int64(length)), nil)

	return &Space[T]{alpha: a, length: length, radix: radix, count: count}, nil
}

// Alphabet returns the alphabet the space is built over.
func (s *Space[T]) Alphabet() *alphabet.Alphabet[T] { return s.alpha }

// Length returns k, the number of positions per sequence.
func (s *Space[T]) Length() int { return s.length }

// Count returns n^k exactly. The result is a fresh copy.
func (s *Space[T]) Count() *big.Int { return new(big.Int).Set(s.count) }

// InRange reports whether 0 <= index < Count().
func (s *Space[T]) InRange(index *big.Int) bool {
	return index != nil && index.Sign() >= 0 && index.Cmp(s.count) < 0
}

// Encode maps a sequence to its index.
// Stage 1 (Validate): length must be k; every symbol must be ranked.
// Stage 2 (Execute): Horner evaluation from the most significant position.
// Complexity: O(k) big-int operations.
func (s *Space[T]) Encode(seq []T) (*big.Int, error) {
	if len(seq) != s.length {
		return nil, fmt.Errorf("variation: Encode: got %d symbols, want %d: %w", len(seq), s.length, ErrLengthMismatch)
	}

	ranks := make([]int, len(seq))
	var unknown []any
	seen := make(map[T]struct{})
	for i, sym := range seq {
		r, ok := s.alpha.Rank(sym)
		if !ok {
			if _, dup := seen[sym]; !dup {
				seen[sym] = struct{}{}
				unknown = append(unknown, sym)
			}
			continue
		}
		ranks[i] = r
	}
	if len(unknown) > 0 {
		return nil, &UnknownSymbolError{Symbols: unknown}
	}

	index := new(big.Int)
	digit := new(big.Int)
	for i := len(ranks) - 1; i >= 0; i-- {
		index.Mul(index, s.radix)
		index.Add(index, digit.SetInt64(int64(ranks[i])))
	}

	return index, nil
}

// Decode maps an index back to its sequence.
// Returns ErrIndexOutOfRange for nil, negative, or >= Count() indices.
// Complexity: O(k) big-int divisions.
func (s *Space[T]) Decode(index *big.Int) ([]T, error) {
	if !s.InRange(index) {
		return nil, fmt.Errorf("variation: Decode(%v): %w", index, ErrIndexOutOfRange)
	}

	digits := s.digits(index)
	out := make([]T, s.length)
	for i, r := range digits {
		out[i], _ = s.alpha.Symbol(r)
	}

	return out, nil
}

// EncodeUint64 is Encode for spaces whose indices fit in 64 bits.
// Returns ErrIndexOverflow when the index does not fit.
func (s *Space[T]) EncodeUint64(seq []T) (uint64, error) {
	index, err := s.Encode(seq)
	if err != nil {
		return 0, err
	}
	if !index.IsUint64() {
		return 0, fmt.Errorf("variation: EncodeUint64: %s: %w", index, ErrIndexOverflow)
	}

	return index.Uint64(), nil
}

// DecodeUint64 is Decode for a 64-bit index.
func (s *Space[T]) DecodeUint64(index uint64) ([]T, error) {
	return s.Decode(new(big.Int).SetUint64(index))
}

// digits splits an in-range index into k base-n rank digits, least significant first.
func (s *Space[T]) digits(index *big.Int) []int {
	q := new(big.Int).Set(index)
	m := new(big.Int)
	out := make([]int, s.length)
	for i := range out {
		q.DivMod(q, s.radix, m)
		out[i] = int(m.Int64())
	}

	return out
}
