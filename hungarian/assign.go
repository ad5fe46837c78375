// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"

	"github.com/katalvlaran/assignment/matrix"
)

// Assign computes a minimum-cost perfect assignment on a square cost matrix.
//
// The input must be square, finite and non-negative; it is copied and never
// modified. The returned Assignment is a permutation: row i goes to column a[i].
// When several assignments share the optimal total, the same one is returned for
// the same input.
//
// Errors:
//   - ErrUnsupportedMethod for an unknown Options.Method.
//   - ErrNonSquare, ErrInvalidMatrix for a nil or non-square matrix.
//   - ErrTooLarge when the order exceeds Options.MaxSize.
//   - ErrNegativeCost, ErrInvalidWeight for negative or non-finite cells.
//
// Complexity: O(n³) time and O(n) extra space beyond the copy, for both methods.
func Assign(cost matrix.Matrix, opts ...Option) (Assignment, error) {
	cfg := gatherOptions(opts)
	if err := validateOptions(cfg); err != nil {
		return nil, err
	}
	if _, err := validateCost(cost, cfg); err != nil {
		return nil, err
	}
	work, err := matrix.ToDense(cost)
	if err != nil {
		return nil, weightsError(err)
	}

	return assign(work, cfg)
}

// assign dispatches on cfg.Method. cost must be square and finite; it is not
// modified.
func assign(cost *matrix.Dense, cfg Options) (Assignment, error) {
	switch cfg.Method {
	case CoverMethod:
		return newCoverRunner(cost, cfg).run(), nil
	case PotentialsMethod:
		return assignPotentials(cost), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, cfg.Method)
	}
}
