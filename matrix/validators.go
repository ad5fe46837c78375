// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating shape/nil/numeric checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    match them with errors.Is and still read where they came from.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error.
//  - Scans run in fixed row-major order, so the first offending cell is reported.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense inside the interface is treated as nil too.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite scans every cell and rejects NaN/±Inf.
// The error carries the first offending coordinates.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scanCells(m, "ValidateFinite", func(v float64) error {
		if isNonFinite(v) {
			return ErrNaNInf
		}

		return nil
	})
}

// ValidateNonNegative scans every cell and rejects NaN/±Inf and negative values.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scanCells(m, "ValidateNonNegative", func(v float64) error {
		if isNonFinite(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}

		return nil
	})
}

// ValidateRows checks a slice-of-rows literal: at least one row, at least one
// column, every row as long as the first.
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}
	var (
		cols = len(rows[0])
		i    int
	)
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d values, want %d", i, len(rows[i]), cols), ErrRagged)
		}
	}

	return nil
}

// scanCells applies check to every cell of m in row-major order.
func scanCells(m Matrix, tag string, check func(float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return validatorErrorf(fmt.Sprintf("%s(%d,%d)", tag, i, j), err)
			}
		}
	}

	return nil
}
