// SPDX-License-Identifier: MIT
// Package: variations/pairing
//
// types.go — Pair / NormedPair values and the Number norm constraint.

package pairing

import (
	"fmt"

	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/matrix"
)

// Number is the set of norm types: any numeric type a matrix.Dense can hold.
type Number interface {
	matrix.Element
}

// Pair is an ordered 2-sequence (A, B); A == B is allowed.
type Pair[T alphabet.Valued] struct {
	A T
	B T
}

// String renders "(a, b)".
func (p Pair[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.A, p.B)
}

// NormedPair is a Pair decorated with its norm.
type NormedPair[T alphabet.Valued, N Number] struct {
	Pair[T]
	Norm N
}

// String renders "(a, b)=norm".
func (p NormedPair[T, N]) String() string {
	return fmt.Sprintf("%s=%v", p.Pair, p.Norm)
}
