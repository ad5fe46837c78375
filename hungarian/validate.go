// SPDX-License-Identifier: MIT

// Package hungarian - validation shared by Solve and Assign.
//
// The helpers:
//  1. Validate Options (method, bounds).
//  2. Translate matrix-package sentinels into this package's taxonomy, keeping
//     both in the chain so either can be matched with errors.Is.
//  3. Validate label slices and the size bound.
//
// No logging and no panics here; only sentinel errors from errors.go.
package hungarian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/assignment/matrix"
)

// validateOptions checks the resolved configuration.
// Complexity: O(1).
func validateOptions(cfg Options) error {
	switch cfg.Method {
	case CoverMethod, PotentialsMethod:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, cfg.Method)
	}

	return nil
}

// validateSize rejects orders above cfg.MaxSize before any O(n³) work starts.
// Complexity: O(1).
func validateSize(size int, cfg Options) error {
	if cfg.MaxSize > 0 && size > cfg.MaxSize {
		return fmt.Errorf("%w: order %d > %d", ErrTooLarge, size, cfg.MaxSize)
	}

	return nil
}

// weightsError maps matrix construction failures onto ErrInvalidWeight or
// ErrInvalidMatrix.
func weightsError(err error) error {
	if errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
}

// resolveLabels returns a private copy of labels, or generated labels
// ("<prefix> 1".."<prefix> n") when labels is nil.
// A non-nil slice of the wrong length is ErrInvalidLabels.
// Complexity: O(n).
func resolveLabels(labels []string, n int, prefix, axis string) ([]string, error) {
	if labels == nil {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s %d", prefix, i+1)
		}

		return out, nil
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d %s labels for %d %s", ErrInvalidLabels, len(labels), axis, n, axis)
	}

	return append([]string(nil), labels...), nil
}

// validateCost checks a raw cost matrix handed to Assign: square, finite,
// non-negative. Returns the order on success.
// Complexity: O(n²).
func validateCost(cost matrix.Matrix, cfg Options) (int, error) {
	if err := matrix.ValidateSquare(cost); err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			return 0, fmt.Errorf("%w: %w", ErrNonSquare, err)
		}

		return 0, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	n := cost.Rows()
	if err := validateSize(n, cfg); err != nil {
		return 0, err
	}
	if err := matrix.ValidateNonNegative(cost); err != nil {
		if errors.Is(err, matrix.ErrNegative) {
			return 0, fmt.Errorf("%w: %w", ErrNegativeCost, err)
		}

		return 0, fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}

	return n, nil
}
