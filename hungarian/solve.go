// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"

	"github.com/katalvlaran/assignment/matrix"
)

const (
	rowLabelPrefix = "Row"
	colLabelPrefix = "Col"
	rowAxis        = "rows"
	colAxis        = "columns"
)

// Solve pairs agents (rows of weights) with tasks (columns) one-to-one so that
// the summed weight is minimal (Minimize) or maximal (Maximize).
//
// Stages:
//  1. Validate options, shape, size bound, weights, labels and direction.
//  2. Normalize to a square cost matrix (padding, maximize→minimize).
//  3. Assign on the cost matrix.
//  4. Map back: drop pairs that touch a padded row or column, order by row and
//     total the original weights.
//
// When rows ≠ cols only min(rows, cols) pairs are produced. nil labels are
// replaced with "Row 1".."Row n" and "Col 1".."Col m". Minimize accepts negative
// weights. weights and labels are never modified.
//
// Errors: ErrUnsupportedMethod, ErrInvalidMatrix, ErrTooLarge, ErrInvalidWeight,
// ErrInvalidLabels, ErrUnknownDirection.
//
// Complexity: dominated by Assign on order max(rows, cols).
func Solve(weights [][]float64, rowLabels, colLabels []string, dir Direction, opts ...Option) (MatchingResult, error) {
	cfg := gatherOptions(opts)
	if err := validateOptions(cfg); err != nil {
		return MatchingResult{}, err
	}
	if err := matrix.ValidateRows(weights); err != nil {
		return MatchingResult{}, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	if err := validateSize(max(len(weights), len(weights[0])), cfg); err != nil {
		return MatchingResult{}, err
	}
	w, err := matrix.NewDenseFrom(weights)
	if err != nil {
		return MatchingResult{}, weightsError(err)
	}

	return solveDense(w, rowLabels, colLabels, dir, cfg)
}

// SolveMatrix is Solve over any matrix.Matrix, including gonum-backed input
// converted with matrix.FromGonum.
func SolveMatrix(m matrix.Matrix, rowLabels, colLabels []string, dir Direction, opts ...Option) (MatchingResult, error) {
	cfg := gatherOptions(opts)
	if err := validateOptions(cfg); err != nil {
		return MatchingResult{}, err
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return MatchingResult{}, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	if err := validateSize(max(m.Rows(), m.Cols()), cfg); err != nil {
		return MatchingResult{}, err
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return MatchingResult{}, weightsError(err)
	}
	w, err := matrix.ToDense(m)
	if err != nil {
		return MatchingResult{}, weightsError(err)
	}

	return solveDense(w, rowLabels, colLabels, dir, cfg)
}

// solveDense runs stages 1 (labels, direction) through 4 on a private copy w.
func solveDense(w *matrix.Dense, rowLabels, colLabels []string, dir Direction, cfg Options) (MatchingResult, error) {
	rows, cols := w.Shape()
	agents, err := resolveLabels(rowLabels, rows, rowLabelPrefix, rowAxis)
	if err != nil {
		return MatchingResult{}, err
	}
	tasks, err := resolveLabels(colLabels, cols, colLabelPrefix, colAxis)
	if err != nil {
		return MatchingResult{}, err
	}
	if !dir.Valid() {
		return MatchingResult{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}

	norm := Normalize(w, dir)
	a, err := assign(norm.Cost, cfg)
	if err != nil {
		return MatchingResult{}, err
	}

	res := MatchingResult{
		Pairs:     make([]MatchingPair, 0, min(rows, cols)),
		Direction: dir,
		RowLabels: agents,
		ColLabels: tasks,
	}
	var (
		i, j int
		row  []float64
	)
	for i = 0; i < rows; i++ {
		if j = a[i]; j >= cols {
			continue // real agent on a padded task
		}
		row, _ = w.RowView(i)
		res.Pairs = append(res.Pairs, MatchingPair{
			Agent:  agents[i],
			Task:   tasks[j],
			Row:    i,
			Col:    j,
			Weight: row[j],
		})
		res.TotalWeight += row[j]
	}

	cfg.Logger.Debug().
		Int("rows", rows).
		Int("cols", cols).
		Int("size", norm.Size).
		Stringer("method", cfg.Method).
		Stringer("direction", dir).
		Int("pairs", len(res.Pairs)).
		Float64("total", res.TotalWeight).
		Msg("hungarian: solved")

	return res, nil
}
