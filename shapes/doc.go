// SPDX-License-Identifier: MIT

// Package shapes canonicalizes movable chord shapes.
//
// A shape is a relative-fret pattern across k strings. Playing the same shape
// higher up the neck adds a constant to every fret, so shapes are grouped into
// translation classes: the prime form touches fret offset 0, every other
// member is a Translation carrying its Shift and (lazily) its prime form.
//
// ⚙️ Usage:
//
//	s, err := shapes.New(fretting.RelativeFrets(5), 6)
//	if err != nil {
//	  // handle variation.ErrInvalidConstruction, equivalence.ErrOutsideAlphabet
//	}
//	prime, shift, _ := s.Canonical(frets) // barre chord → open-position form
//	for _, t := range s.Translations() {
//	  p, _ := t.Prime()
//	  _ = p
//	}
//
// This package is the only entry point domain code uses to reach the
// variation and equivalence engines.
package shapes
