// SPDX-License-Identifier: MIT

package hungarian

import (
	"math"

	"github.com/katalvlaran/assignment/matrix"
)

// assignPotentials runs the shortest-augmenting-path form of Kuhn–Munkres
// (Jonker–Volgenant style) over row potentials u and column potentials v.
//
// Rows are inserted one at a time. For each new row a Dijkstra-like sweep over
// reduced costs c[i][j] − u[i] − v[j] grows a tree of tight columns until a free
// column is reached; potentials are shifted by the sweep minimum so that every
// tree edge stays tight, and the path is flipped.
//
// Arrays are 1-indexed; column 0 is a virtual root holding the row being inserted.
// Ties go to the lowest column because only strict improvements replace the
// current candidate.
//
// Complexity: O(n³) time, O(n) extra space.
func assignPotentials(cost *matrix.Dense) Assignment {
	n := cost.Rows()
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i], _ = cost.RowView(i) // read-only
	}

	var (
		u    = make([]float64, n+1) // row potentials
		v    = make([]float64, n+1) // column potentials
		p    = make([]int, n+1)     // p[j] = row matched to column j (0 = free)
		way  = make([]int, n+1)     // way[j] = previous column on the shortest path
		minv = make([]float64, n+1) // minv[j] = smallest reduced cost reaching column j
		used = make([]bool, n+1)    // columns already in the tree

		j0, j1, i0 int
		delta, cur float64
	)
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		for {
			used[j0] = true
			i0 = p[j0]
			delta = math.Inf(1)
			j1 = 0
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = rows[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path back to the root.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	out := make(Assignment, n)
	for j = 1; j <= n; j++ {
		out[p[j]-1] = j - 1
	}

	return out
}
