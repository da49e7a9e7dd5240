// SPDX-License-Identifier: MIT
// Package: variations/equivalence
//
// engine.go — one-pass construction and queries of the translation classes.
//
// Lifecycle: uninitialized → building (single pass over Space.All) → built.
// A built Engine is immutable; rebuilding means calling New again.

package equivalence

import (
	"cmp"
	"fmt"
	"iter"
	"math/big"
	"slices"

	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/variation"
)

// Record states that the canonical sequence at From, with every symbol value
// increased by Shift, is the sequence at To. Shift is always > 0.
type Record struct {
	From  *big.Int
	To    *big.Int
	Shift int
}

// String renders "from -> to (+shift)".
func (r Record) String() string {
	return fmt.Sprintf("%s -> %s (+%d)", r.From, r.To, r.Shift)
}

// clone detaches the record from the engine's internal big.Int values.
func (r Record) clone() Record {
	return Record{From: new(big.Int).Set(r.From), To: new(big.Int).Set(r.To), Shift: r.Shift}
}

// indexKey turns an index into a map key. Big-endian magnitude bytes are
// unique for non-negative integers of any size.
func indexKey(i *big.Int) string { return string(i.Bytes()) }

// Engine holds the translation-equivalence tables of one sequence space.
type Engine[T alphabet.Valued] struct {
	space  *variation.Space[T]
	alpha  *alphabet.Alphabet[T]
	byTo   map[string]Record   // exactly one record per translate
	byFrom map[string][]Record // translates per canonical form, ascending Shift
	primes []*big.Int          // canonical indices, ascending
	order  []Record            // all records, ascending To
}

// New builds the engine eagerly from a full enumeration of space.
// Stage 1 (Validate): non-nil space.
// Stage 2 (Build): for each non-canonical sequence compute (From, Shift)
// and index it by To and by From. Alphabet values may have gaps, as long as
// every sequence shifted down to its canonical form stays in the alphabet
// ({0,2,4} works, {0,1,3} does not: (1,3) would need value 2); the first
// sequence that breaks this stops the build with ErrOutsideAlphabet.
// Stage 3 (Finalize): sort every From group by Shift.
// Complexity: O(n^k · k) big-int operations, O(n^k) memory. This does not
// scale to arbitrary alphabets/lengths; size the space accordingly.
func New[T alphabet.Valued](space *variation.Space[T]) (*Engine[T], error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	alpha := space.Alphabet()

	e := &Engine[T]{
		space:  space,
		alpha:  alpha,
		byTo:   make(map[string]Record),
		byFrom: make(map[string][]Record),
	}

	for v := range space.All() {
		if e.IsCanonical(v.Elements) {
			e.primes = append(e.primes, v.Index)
			continue
		}
		_, from, shift, err := e.CanonicalFormOf(v.Elements)
		if err != nil {
			return nil, fmt.Errorf("equivalence: New: index %s: %w", v.Index, err)
		}
		rec := Record{From: from, To: v.Index, Shift: shift}
		e.byTo[indexKey(v.Index)] = rec
		e.byFrom[indexKey(from)] = append(e.byFrom[indexKey(from)], rec)
		e.order = append(e.order, rec)
	}

	for _, group := range e.byFrom {
		slices.SortFunc(group, func(a, b Record) int { return cmp.Compare(a.Shift, b.Shift) })
	}

	return e, nil
}

// Space returns the sequence space the engine was built from.
func (e *Engine[T]) Space() *variation.Space[T] { return e.space }

// IsCanonical reports whether seq contains the alphabet's minimum value.
// Complexity: O(k).
func (e *Engine[T]) IsCanonical(seq []T) bool {
	low := e.alpha.MinValue()
	for _, s := range seq {
		if s.Value() == low {
			return true
		}
	}

	return false
}

// CanonicalFormOf returns the canonical (prime) form of seq, its index and
// the shift that maps the canonical form back onto seq. A canonical input is
// returned as-is with shift 0.
// shift = min(values of seq) − alphabet minimum.
// Complexity: O(k) lookups + two Encode calls.
func (e *Engine[T]) CanonicalFormOf(seq []T) ([]T, *big.Int, int, error) {
	index, err := e.space.Encode(seq)
	if err != nil {
		return nil, nil, 0, err
	}
	if e.IsCanonical(seq) {
		return slices.Clone(seq), index, 0, nil
	}

	low := seq[0].Value()
	for _, s := range seq[1:] {
		low = min(low, s.Value())
	}
	shift := low - e.alpha.MinValue()

	canonical, err := e.Apply(seq, -shift)
	if err != nil {
		return nil, nil, 0, err
	}
	from, err := e.space.Encode(canonical)
	if err != nil {
		return nil, nil, 0, err
	}

	return canonical, from, shift, nil
}

// Apply adds delta to the value of every symbol of seq, element-wise and
// without wraparound. Returns ErrOutsideAlphabet if a shifted value is not
// an alphabet value.
// Complexity: O(k).
func (e *Engine[T]) Apply(seq []T, delta int) ([]T, error) {
	out := make([]T, len(seq))
	for i, s := range seq {
		shifted, ok := e.alpha.ByValue(s.Value() + delta)
		if !ok {
			return nil, fmt.Errorf("equivalence: Apply: %v%+d: %w", s, delta, ErrOutsideAlphabet)
		}
		out[i] = shifted
	}

	return out, nil
}

// TranslatesOf returns every translate of the canonical sequence at index,
// ordered by increasing shift. The slice is empty (never nil) when the
// canonical form admits no translate.
// Errors: variation.ErrIndexOutOfRange, ErrNotCanonical.
// Complexity: O(k + t) for t translates.
func (e *Engine[T]) TranslatesOf(index *big.Int) ([]Record, error) {
	seq, err := e.space.Decode(index)
	if err != nil {
		return nil, fmt.Errorf("equivalence: TranslatesOf: %w", err)
	}
	if !e.IsCanonical(seq) {
		return nil, fmt.Errorf("equivalence: TranslatesOf(%s): %w", index, ErrNotCanonical)
	}

	group := e.byFrom[indexKey(index)]
	out := make([]Record, 0, len(group))
	for _, r := range group {
		out = append(out, r.clone())
	}

	return out, nil
}

// SourceOf returns the unique record whose To equals index.
// Errors: variation.ErrIndexOutOfRange, ErrNotATranslate.
// Complexity: O(1) expected.
func (e *Engine[T]) SourceOf(index *big.Int) (Record, error) {
	if !e.space.InRange(index) {
		return Record{}, fmt.Errorf("equivalence: SourceOf(%v): %w", index, variation.ErrIndexOutOfRange)
	}
	r, ok := e.byTo[indexKey(index)]
	if !ok {
		return Record{}, fmt.Errorf("equivalence: SourceOf(%s): %w", index, ErrNotATranslate)
	}

	return r.clone(), nil
}

// Primes yields the canonical indices in ascending order.
func (e *Engine[T]) Primes() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		for _, p := range e.primes {
			if !yield(new(big.Int).Set(p)) {
				return
			}
		}
	}
}

// Translates yields every record in ascending To order.
func (e *Engine[T]) Translates() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range e.order {
			if !yield(r.clone()) {
				return
			}
		}
	}
}

// ClassCount returns the number of equivalence classes (canonical forms).
func (e *Engine[T]) ClassCount() int { return len(e.primes) }

// Len returns the number of translation records (non-canonical sequences).
func (e *Engine[T]) Len() int { return len(e.order) }
