// SPDX-License-Identifier: MIT

package hungarian

import "errors"

// Sentinel errors returned by the solvers. Call sites wrap them with context via
// fmt.Errorf("...: %w", Err...) and callers match with errors.Is.
var (
	// ErrInvalidMatrix indicates zero rows, zero columns or rows of unequal length.
	ErrInvalidMatrix = errors.New("hungarian: invalid weight matrix")

	// ErrInvalidWeight indicates a NaN or ±Inf weight.
	ErrInvalidWeight = errors.New("hungarian: weight is not a finite number")

	// ErrInvalidLabels indicates a label slice whose length differs from the
	// corresponding matrix dimension.
	ErrInvalidLabels = errors.New("hungarian: label count does not match matrix dimension")

	// ErrUnknownDirection indicates a Direction other than Minimize or Maximize.
	ErrUnknownDirection = errors.New("hungarian: unknown optimization direction")

	// ErrUnsupportedMethod indicates a Method this package does not implement.
	ErrUnsupportedMethod = errors.New("hungarian: unsupported method")

	// ErrTooLarge indicates that the padded order exceeds Options.MaxSize.
	ErrTooLarge = errors.New("hungarian: matrix exceeds the configured size limit")

	// ErrNonSquare indicates that Assign received a non-square cost matrix.
	ErrNonSquare = errors.New("hungarian: cost matrix is not square")

	// ErrNegativeCost indicates that Assign received a negative cost.
	ErrNegativeCost = errors.New("hungarian: negative cost")
)
