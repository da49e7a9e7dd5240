// SPDX-License-Identifier: MIT
// Package: variations/shapes
//
// errors.go — sentinel errors for the shapes projection. Engine errors
// (variation.*, equivalence.*) are wrapped with %w and pass through unchanged.

package shapes

import "errors"

// ErrDetached indicates a zero Translation that was not produced by Shapes.
var ErrDetached = errors.New("shapes: translation has no source")
