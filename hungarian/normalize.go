// SPDX-License-Identifier: MIT

package hungarian

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/assignment/matrix"
)

// Normalize turns a validated rows×cols weight matrix into the square cost
// matrix the solvers expect.
//
//   - Size = max(rows, cols); the weights land in the top-left block.
//   - Minimize: weights are used as they are; padding cells are 0.
//   - Maximize: with M the largest weight, every real cell becomes M − w and
//     every padding cell becomes M.
//
// Every padded row (or column) is filled with one constant, so padding adds the
// same amount to every complete assignment and never changes which real cells
// are optimal. w is not modified.
//
// Complexity: O(Size²) time and space.
func Normalize(w *matrix.Dense, dir Direction) Normalized {
	rows, cols := w.Shape()
	size := max(rows, cols)
	cost, _ := matrix.NewDense(size, size) // size ≥ 1 for any Dense

	out := Normalized{
		Cost:    cost,
		Size:    size,
		Rows:    rows,
		Cols:    cols,
		PadRows: size - rows,
		PadCols: size - cols,
	}
	if dir == Maximize {
		out.Max = maxWeight(w)
	}

	var (
		i        int
		src, dst []float64
	)
	for i = 0; i < size; i++ {
		dst, _ = cost.RowView(i)
		if dir == Maximize {
			floats.AddConst(out.Max, dst) // padding value everywhere first
		}
		if i >= rows {
			continue
		}
		src, _ = w.RowView(i)
		copy(dst[:cols], src)
		if dir == Maximize {
			// M − w, computed as −w + M.
			floats.Scale(-1, dst[:cols])
			floats.AddConst(out.Max, dst[:cols])
		}
	}

	return out
}

// maxWeight returns the largest entry of w.
func maxWeight(w *matrix.Dense) float64 {
	var (
		best float64
		row  []float64
		i    int
	)
	for i = 0; i < w.Rows(); i++ {
		row, _ = w.RowView(i)
		if v := floats.Max(row); i == 0 || v > best {
			best = v
		}
	}

	return best
}
