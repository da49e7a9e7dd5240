// SPDX-License-Identifier: MIT
// Package: variations/shapes
//
// shapes.go — Shapes: the public projection over the index and equivalence
// engines used by chord-shape and voicing code.
//
// Ownership:
//   • Shapes is the sole owner of its equivalence.Engine; domain code reaches
//     indices and records only through Shape and Translation values.
//   • PrimeForms and Translations are computed once, on first access, under
//     sync.OnceValue; every later call returns a deep copy of the cached result.

package shapes

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/equivalence"
	"github.com/katalvlaran/variations/variation"
)

// Shape is one fret pattern across all strings together with its index.
// Every Shape handed out by this package is the caller's own copy.
type Shape[T alphabet.Valued] struct {
	Index *big.Int
	Frets []T
}

// clone returns a copy sharing no memory with s.
func (s Shape[T]) clone() Shape[T] {
	return Shape[T]{Index: new(big.Int).Set(s.Index), Frets: slices.Clone(s.Frets)}
}

// String renders "#index [f0 f1 ...]".
func (s Shape[T]) String() string {
	parts := make([]string, len(s.Frets))
	for i, f := range s.Frets {
		parts[i] = fmt.Sprint(f)
	}

	return fmt.Sprintf("#%s [%s]", s.Index, strings.Join(parts, " "))
}

// Translation is a non-canonical shape: its prime form moved up by Shift.
// The prime form is resolved lazily on the first call to Prime.
type Translation[T alphabet.Valued] struct {
	Shape[T]
	Shift int
	prime func() (Shape[T], error)
}

// Prime returns the canonical shape this translation was moved from.
// The first call decodes it; later calls return the cached value.
func (t Translation[T]) Prime() (Shape[T], error) {
	if t.prime == nil {
		return Shape[T]{}, ErrDetached
	}
	p, err := t.prime()
	if err != nil {
		return Shape[T]{}, err
	}
	return p.clone(), nil
}

// Shapes is the set of all fret patterns of a given string count over a
// relative-fret alphabet, partitioned into prime forms and translations.
type Shapes[T alphabet.Valued] struct {
	space        *variation.Space[T]
	engine       *equivalence.Engine[T]
	primeForms   func() []Shape[T]
	translations func() []Translation[T]
}

// New builds the projection for the given fret values and string count.
// The equivalence tables are built eagerly; the shape lists lazily.
// Errors: variation.ErrInvalidConstruction (no values, stringCount <= 0),
// alphabet duplicate errors, equivalence.ErrOutsideAlphabet (fret values
// with a gap that some shape cannot be shifted across).
// Complexity: O(n^k · k) time and O(n^k) memory.
func New[T alphabet.Valued](values []T, stringCount int) (*Shapes[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("shapes: New: no fret values: %w", variation.ErrInvalidConstruction)
	}
	a, err := alphabet.New(values...)
	if err != nil {
		return nil, fmt.Errorf("shapes: New: %w", err)
	}
	space, err := variation.New(a, stringCount)
	if err != nil {
		return nil, fmt.Errorf("shapes: New: %w", err)
	}
	engine, err := equivalence.New(space)
	if err != nil {
		return nil, fmt.Errorf("shapes: New: %w", err)
	}

	s := &Shapes[T]{space: space, engine: engine}
	s.primeForms = sync.OnceValue(s.buildPrimeForms)
	s.translations = sync.OnceValue(s.buildTranslations)

	return s, nil
}

// Count returns the exact number of shapes, n^k.
func (s *Shapes[T]) Count() *big.Int { return s.space.Count() }

// Strings returns k, the number of strings per shape.
func (s *Shapes[T]) Strings() int { return s.space.Length() }

// Values returns the fret alphabet in rank order.
func (s *Shapes[T]) Values() []T { return s.space.Alphabet().Symbols() }

// PrimeForms returns every canonical shape in ascending index order.
// The result is a deep copy of the cached list: callers may modify it.
// Complexity: O(p · k) for p prime forms.
func (s *Shapes[T]) PrimeForms() []Shape[T] {
	cached := s.primeForms()
	out := make([]Shape[T], len(cached))
	for i, p := range cached {
		out[i] = p.clone()
	}

	return out
}

// Translations returns every non-canonical shape in ascending index order,
// each with a lazily resolved prime form. The result is a deep copy of the
// cached list: callers may modify it.
// Complexity: O(t · k) for t translations.
func (s *Shapes[T]) Translations() []Translation[T] {
	cached := s.translations()
	out := make([]Translation[T], len(cached))
	for i, t := range cached {
		t.Shape = t.Shape.clone()
		out[i] = t
	}

	return out
}

// Canonical returns the prime form of frets and the shift that maps the prime
// form back onto frets (0 when frets is already prime).
func (s *Shapes[T]) Canonical(frets []T) (Shape[T], int, error) {
	canon, index, shift, err := s.engine.CanonicalFormOf(frets)
	if err != nil {
		return Shape[T]{}, 0, fmt.Errorf("shapes: Canonical: %w", err)
	}

	return Shape[T]{Index: index, Frets: canon}, shift, nil
}

// IsPrime reports whether frets is a canonical shape.
func (s *Shapes[T]) IsPrime(frets []T) bool { return s.engine.IsCanonical(frets) }

// TranslationsOf returns the translations of a prime shape by increasing
// shift. Errors: equivalence.ErrNotCanonical, variation.ErrIndexOutOfRange.
func (s *Shapes[T]) TranslationsOf(prime Shape[T]) ([]Translation[T], error) {
	recs, err := s.engine.TranslatesOf(prime.Index)
	if err != nil {
		return nil, fmt.Errorf("shapes: TranslationsOf: %w", err)
	}
	out := make([]Translation[T], 0, len(recs))
	for _, r := range recs {
		t, err := s.translation(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

// buildPrimeForms decodes every canonical index.
func (s *Shapes[T]) buildPrimeForms() []Shape[T] {
	out := make([]Shape[T], 0, s.engine.ClassCount())
	for index := range s.engine.Primes() {
		frets, _ := s.space.Decode(index) // engine indices are always in range
		out = append(out, Shape[T]{Index: index, Frets: frets})
	}

	return out
}

// buildTranslations decodes every translate; prime forms stay deferred.
func (s *Shapes[T]) buildTranslations() []Translation[T] {
	out := make([]Translation[T], 0, s.engine.Len())
	for r := range s.engine.Translates() {
		t, _ := s.translation(r) // engine indices are always in range
		out = append(out, t)
	}

	return out
}

// translation materializes the translated shape and defers its prime form.
func (s *Shapes[T]) translation(r equivalence.Record) (Translation[T], error) {
	frets, err := s.space.Decode(r.To)
	if err != nil {
		return Translation[T]{}, fmt.Errorf("shapes: %w", err)
	}
	from := r.From

	return Translation[T]{
		Shape: Shape[T]{Index: r.To, Frets: frets},
		Shift: r.Shift,
		prime: sync.OnceValues(func() (Shape[T], error) {
			pf, err := s.space.Decode(from)
			if err != nil {
				return Shape[T]{}, fmt.Errorf("shapes: Prime: %w", err)
			}
			return Shape[T]{Index: from, Frets: pf}, nil
		}),
	}, nil
}
