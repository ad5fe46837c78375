// SPDX-License-Identifier: MIT

// Package hungarian - reduction / zero-cover formulation of Kuhn–Munkres.
//
// The working matrix is kept implicitly as reduced costs
// r(i,j) = c(i,j) − u(i) − v(j) over the caller's read-only cost matrix C.
//  1. Row reduction sets u(i) to the row minimum, column reduction sets v(j) to
//     the column minimum of the row-reduced matrix.
//  2. A maximum matching on the zero cells is grown with augmenting paths.
//  3. Stop when it has n pairs.
//  4. Otherwise grow the alternating forest rooted at the free rows along zero
//     cells (row→column) and matched cells (column→row). With covered =
//     unreached rows ∪ reached columns (a König minimum vertex cover) and δ the
//     smallest uncovered value, the adjustment "add δ to doubly covered cells,
//     subtract it from uncovered cells" is u(i) += δ on reached rows and
//     v(j) −= δ on reached columns. Matched and forest cells keep their value.
//  5. The forest survives the adjustment: each step reaches one more column, so
//     at most n steps separate two augmentations.
//
// slack(j) holds the smallest uncovered value in column j, so δ is an O(n) scan
// and every step costs O(n). n augmentations of O(n²) each give O(n³).
//
// A cell counts as zero when r(i,j) ≤ Epsilon·max|c|; the tolerance scales with
// the matrix so that inputs of any magnitude keep their distinct costs.
package hungarian

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/assignment/matrix"
)

// coverRunner holds the mutable state of one CoverMethod execution.
type coverRunner struct {
	n        int
	tol      float64     // zero tolerance, Epsilon scaled by max|c|
	rows     [][]float64 // read-only row views of the cost matrix
	u, v     []float64   // row and column reductions accumulated so far
	rowMatch []int       // rowMatch[i] = matched column or Unassigned
	colMatch []int       // colMatch[j] = matched row or Unassigned
	matched  int
	seen     []bool    // columns visited by the initial augmenting search
	rowReach []bool    // rows reached by the alternating forest (uncovered rows)
	colReach []bool    // columns reached by the forest (covered columns)
	slack    []float64 // slack[j] = min reduced cost from a reached row into column j
	slackRow []int     // reached row attaining slack[j]
	parent   []int     // parent[j] = reached row the forest entered column j from
	round    int
	log      zerolog.Logger
}

// newCoverRunner reads cost through row views; cost is never written.
func newCoverRunner(cost *matrix.Dense, cfg Options) *coverRunner {
	n := cost.Rows()
	r := &coverRunner{
		n:        n,
		rows:     make([][]float64, n),
		u:        make([]float64, n),
		v:        make([]float64, n),
		rowMatch: make([]int, n),
		colMatch: make([]int, n),
		seen:     make([]bool, n),
		rowReach: make([]bool, n),
		colReach: make([]bool, n),
		slack:    make([]float64, n),
		slackRow: make([]int, n),
		parent:   make([]int, n),
		log:      cfg.Logger,
	}

	var (
		i     int
		scale float64
	)
	for i = 0; i < n; i++ {
		r.rows[i], _ = cost.RowView(i)
		r.rowMatch[i] = Unassigned
		r.colMatch[i] = Unassigned
		scale = math.Max(scale, floats.Norm(r.rows[i], math.Inf(1)))
	}
	r.tol = cfg.Epsilon * scale

	return r
}

// reduced returns the current value of cell (i, j).
func (r *coverRunner) reduced(i, j int) float64 {
	return r.rows[i][j] - r.u[i] - r.v[j]
}

// run executes the full method and returns the row→column assignment.
func (r *coverRunner) run() Assignment {
	r.reduceRows()
	r.reduceCols()
	r.maximize()

	for r.matched < r.n {
		r.grow()
	}

	out := make(Assignment, r.n)
	copy(out, r.rowMatch)

	return out
}

// reduceRows subtracts each row's minimum from the row.
func (r *coverRunner) reduceRows() {
	for i, row := range r.rows {
		r.u[i] = floats.Min(row)
	}
}

// reduceCols subtracts each column's minimum on the row-reduced matrix.
func (r *coverRunner) reduceCols() {
	var (
		i, j int
		low  float64
	)
	for j = 0; j < r.n; j++ {
		low = r.reduced(0, j)
		for i = 1; i < r.n; i++ {
			low = math.Min(low, r.reduced(i, j))
		}
		r.v[j] = low
	}
}

// maximize tries one augmenting search from every free row, in index order.
// Kuhn's argument: a row with no augmenting path now gains none later in the
// same pass, so one pass yields a maximum matching on the current zeros.
func (r *coverRunner) maximize() {
	var i int
	for i = 0; i < r.n; i++ {
		clear(r.seen)
		if r.augment(i) {
			r.matched++
		}
	}
}

// augment looks for an alternating path of zeros from row i to a free column
// and flips it. Columns are tried in ascending order.
func (r *coverRunner) augment(i int) bool {
	var j int
	for j = 0; j < r.n; j++ {
		if r.seen[j] || r.reduced(i, j) > r.tol {
			continue
		}
		r.seen[j] = true
		if r.colMatch[j] == Unassigned || r.augment(r.colMatch[j]) {
			r.rowMatch[i] = j
			r.colMatch[j] = i

			return true
		}
	}

	return false
}

// grow builds the alternating forest from every free row and extends it one
// column at a time, adjusting by δ whenever no zero leaves the forest, until a
// free column is reached; the path to it is then flipped.
func (r *coverRunner) grow() {
	clear(r.rowReach)
	clear(r.colReach)
	var i, j int
	for j = 0; j < r.n; j++ {
		r.slack[j] = math.Inf(1)
	}
	for i = 0; i < r.n; i++ {
		if r.rowMatch[i] == Unassigned {
			r.reach(i)
		}
	}

	var delta float64
	for {
		j = r.nearest()
		if delta = r.slack[j]; delta > r.tol {
			r.adjust(delta)
		}
		r.colReach[j] = true
		r.parent[j] = r.slackRow[j]
		if r.colMatch[j] == Unassigned {
			r.flip(j)

			return
		}
		r.reach(r.colMatch[j])
	}
}

// reach adds row i to the forest and lowers the slack of unreached columns.
func (r *coverRunner) reach(i int) {
	r.rowReach[i] = true
	var (
		j int
		s float64
	)
	for j = 0; j < r.n; j++ {
		if r.colReach[j] {
			continue
		}
		if s = r.reduced(i, j); s < r.slack[j] {
			r.slack[j] = s
			r.slackRow[j] = i
		}
	}
}

// nearest returns the unreached column with the smallest slack, lowest index
// first. A free row exists, so some column is unreached.
func (r *coverRunner) nearest() int {
	best := Unassigned
	var j int
	for j = 0; j < r.n; j++ {
		if !r.colReach[j] && (best == Unassigned || r.slack[j] < r.slack[best]) {
			best = j
		}
	}

	return best
}

// adjust applies the δ step to the cover of the current forest:
//   - uncovered cell (reached row, unreached column): −δ
//   - doubly covered cell (unreached row, reached column): +δ
//   - singly covered cell: unchanged
func (r *coverRunner) adjust(delta float64) {
	var i, j int
	for i = 0; i < r.n; i++ {
		if r.rowReach[i] {
			r.u[i] += delta
		}
	}
	for j = 0; j < r.n; j++ {
		if r.colReach[j] {
			r.v[j] -= delta
		} else {
			r.slack[j] -= delta
		}
	}

	r.round++
	r.log.Debug().
		Int("round", r.round).
		Int("matched", r.matched).
		Int("size", r.n).
		Float64("delta", delta).
		Msg("hungarian: cover adjusted")
}

// flip augments along the forest path ending at free column j.
func (r *coverRunner) flip(j int) {
	var i, prev int
	for j != Unassigned {
		i = r.parent[j]
		prev = r.rowMatch[i]
		r.rowMatch[i] = j
		r.colMatch[j] = i
		j = prev
	}
	r.matched++
}
