// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the assignment solvers.
//
// The package offers:
//
//   - Matrix, a small interface over two-dimensional mutable float64 arrays with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by one flat slice. RowView exposes a
//     row without copying for hot loops inside solvers.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite, ValidateNonNegative,
//     ValidateRows) that return the package sentinels from errors.go.
//   - Interop with gonum (FromGonum, (*Dense).Gonum) so callers already holding a
//     *mat.Dense can hand it over unchanged.
//
// Numeric policy: a Dense rejects NaN and ±Inf on Set and on construction from rows.
// Every public entry returns sentinel errors; nothing here panics on user input.
package matrix
