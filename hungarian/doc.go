// SPDX-License-Identifier: MIT

// Package hungarian solves the linear assignment problem with the Kuhn–Munkres
// (Hungarian) method.
//
// Overview:
//
//   - Given a rectangular weight matrix relating agents (rows) to tasks (columns),
//     Solve finds a one-to-one pairing that minimizes or maximizes the sum of the
//     selected weights.
//   - Normalize pads the matrix to a square of order max(rows, cols) and, when
//     maximizing, turns benefits into residual costs M − w (M = largest weight).
//     Padding cells are 0 for Minimize and M for Maximize.
//   - Assign computes an optimal permutation of a square cost matrix.
//
// Methods:
//
//   - CoverMethod (default): row and column reduction, a maximum zero-matching
//     by augmenting paths, then König minimum vertex covers with the δ
//     adjustment. The alternating forest and per-column slack survive each
//     adjustment, so the method is O(n³).
//   - PotentialsMethod: shortest augmenting paths over dual potentials
//     (Jonker–Volgenant style). O(n³).
//
// Both methods scan rows and columns in ascending order and only replace a
// candidate on strict improvement, so a given input always produces the same
// assignment.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrInvalidMatrix:    zero rows, zero columns or ragged rows.
//   - ErrInvalidWeight:    a NaN or ±Inf weight.
//   - ErrInvalidLabels:    a label slice whose length differs from its dimension.
//   - ErrUnknownDirection: a Direction other than Minimize or Maximize.
//   - ErrUnsupportedMethod, ErrTooLarge: configuration and size bounds.
//   - ErrNonSquare, ErrNegativeCost: raw cost matrices handed to Assign.
//
// Thread safety:
//
//   - Every call works on private copies and keeps no state between calls, so
//     concurrent calls are safe. Inputs are never mutated.
//
// Example:
//
//	res, err := hungarian.Solve(
//	    [][]float64{{4, 2, 8}, {4, 3, 7}, {3, 1, 6}},
//	    []string{"Ann", "Bob", "Cid"},
//	    []string{"A", "B", "C"},
//	    hungarian.Minimize,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.TotalWeight) // 12
package hungarian
