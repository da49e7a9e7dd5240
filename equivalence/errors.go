// SPDX-License-Identifier: MIT
// Package: variations/equivalence
//
// errors.go — sentinel errors for the translation-equivalence engine.
//
// Index validation errors come from the variation package
// (variation.ErrIndexOutOfRange, variation.ErrUnknownSymbol, ...) and are
// wrapped, never replaced, so errors.Is keeps working across layers.

package equivalence

import "errors"

var (
	// ErrNilSpace indicates New was called without a sequence space.
	ErrNilSpace = errors.New("equivalence: nil space")

	// ErrOutsideAlphabet indicates a shifted value has no symbol in the alphabet.
	ErrOutsideAlphabet = errors.New("equivalence: shifted value outside alphabet")

	// ErrNotATranslate indicates SourceOf was asked about a canonical index.
	ErrNotATranslate = errors.New("equivalence: index is canonical, not a translate")

	// ErrNotCanonical indicates TranslatesOf was asked about a non-canonical index.
	ErrNotCanonical = errors.New("equivalence: index is not canonical")
)
