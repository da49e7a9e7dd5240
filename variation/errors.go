// SPDX-License-Identifier: MIT
// Package: variations/variation
//
// errors.go — sentinel errors and the UnknownSymbolError detail type.
//
// Error policy (explicit and strict):
//   • Sentinels are package-level and stable; branch with errors.Is.
//   • UnknownSymbolError carries the offending symbols but still matches
//     ErrUnknownSymbol through errors.Is.
//   • Every failure is a contract error of the caller; nothing is retried.

package variation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConstruction indicates a nil/empty alphabet or a length <= 0.
	ErrInvalidConstruction = errors.New("variation: invalid construction")

	// ErrUnknownSymbol indicates Encode received a symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("variation: unknown symbol")

	// ErrIndexOutOfRange indicates an index outside [0, Count()).
	ErrIndexOutOfRange = errors.New("variation: index out of range")

	// ErrLengthMismatch indicates a sequence whose length differs from the space length.
	ErrLengthMismatch = errors.New("variation: sequence length mismatch")

	// ErrIndexOverflow indicates an index that does not fit the requested fixed-width type.
	ErrIndexOverflow = errors.New("variation: index overflows uint64")
)

// maxListedSymbols bounds how many offenders an UnknownSymbolError prints.
const maxListedSymbols = 5

// UnknownSymbolError lists the distinct symbols Encode could not rank,
// in order of first appearance.
type UnknownSymbolError struct {
	Symbols []any
}

// Error renders at most maxListedSymbols offenders, then an ellipsis.
func (e *UnknownSymbolError) Error() string {
	shown := e.Symbols
	if len(shown) > maxListedSymbols {
		shown = shown[:maxListedSymbols]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, s := range shown {
		parts = append(parts, fmt.Sprint(s))
	}
	if len(e.Symbols) > maxListedSymbols {
		parts = append(parts, "…")
	}

	return fmt.Sprintf("%s: %s", ErrUnknownSymbol.Error(), strings.Join(parts, ", "))
}

// Is makes errors.Is(err, ErrUnknownSymbol) true.
func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}
