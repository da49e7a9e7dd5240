// Package matrix offers a small generic dense table for precomputed pairwise
// values.
//
// The matrix package provides:
//
//   - Dense[E], a row-major r×c table of any numeric element type with
//     a bounds-checked At and O(1) lookups. Cells are written once, at
//     construction.
//   - NewSquareFunc to fill an n×n table from a function of (row, col).
//   - ValidateSquare / IsSymmetric structural checks.
//
// Tables are best for small item sets where O(n²) memory is acceptable; the
// pairing package uses them to cache norms between every pair of items.
package matrix
