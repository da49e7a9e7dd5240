// SPDX-License-Identifier: MIT
// Package: variations/alphabet
//
// errors.go — sentinel errors for the alphabet package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached by wrapping with %w, never by redefining sentinels.

package alphabet

import "errors"

var (
	// ErrEmpty indicates an alphabet with no symbols (n <= 0).
	ErrEmpty = errors.New("alphabet: no symbols")

	// ErrDuplicateSymbol indicates the same symbol was supplied twice; ranks
	// would no longer be a bijection.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrDuplicateValue indicates two distinct symbols report the same Value();
	// value→symbol lookups would be ambiguous.
	ErrDuplicateValue = errors.New("alphabet: duplicate value")
)
