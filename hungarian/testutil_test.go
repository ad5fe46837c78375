// Shared fixtures and the brute-force oracle used across the *_test.go files
// of this package.

package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/matrix"
)

const (
	// epsTotal compares totals of float-valued random instances.
	epsTotal = 1e-6

	// seedDet keeps random instances reproducible.
	seedDet = int64(20240601)

	// oracleMaxSize bounds brute-force enumeration (6! = 720 permutations).
	oracleMaxSize = 6
)

var (
	// scenario3 has three optimal permutations of total 12.
	scenario3 = [][]float64{
		{4, 2, 8},
		{4, 3, 7},
		{3, 1, 6},
	}

	// scenario4 has a unique optimum of 49: 0→3, 1→0, 2→1, 3→2.
	scenario4 = [][]float64{
		{10, 19, 8, 15},
		{10, 18, 7, 17},
		{13, 16, 9, 14},
		{12, 19, 8, 18},
	}

	methods = []hungarian.Method{hungarian.CoverMethod, hungarian.PotentialsMethod}
)

// mustDense builds a *matrix.Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomRows returns an r×c matrix. integral=true draws from {0..9} to provoke
// many ties; otherwise values are uniform in [-50, 50).
func randomRows(rng *rand.Rand, r, c int, integral bool) [][]float64 {
	out := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			if integral {
				out[i][j] = float64(rng.Intn(10))
			} else {
				out[i][j] = rng.Float64()*100 - 50
			}
		}
	}

	return out
}

// shiftNonNegative returns a copy of rows with every value raised by the
// negated minimum, so that the smallest entry becomes 0.
func shiftNonNegative(rows [][]float64) [][]float64 {
	low := math.Inf(1)
	for _, row := range rows {
		for _, v := range row {
			low = math.Min(low, v)
		}
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v - low
		}
	}

	return out
}

// bruteForce returns the best achievable total over every one-to-one pairing of
// min(r, c) agents with tasks.
func bruteForce(rows [][]float64, dir hungarian.Direction) float64 {
	r, c := len(rows), len(rows[0])
	best := math.Inf(1)
	if dir == hungarian.Maximize {
		best = math.Inf(-1)
	}

	var total float64
	if r <= c {
		for _, p := range combin.Permutations(c, r) {
			total = 0
			for i, j := range p {
				total += rows[i][j]
			}
			best = better(best, total, dir)
		}

		return best
	}
	for _, p := range combin.Permutations(r, c) {
		total = 0
		for j, i := range p {
			total += rows[i][j]
		}
		best = better(best, total, dir)
	}

	return best
}

func better(best, total float64, dir hungarian.Direction) float64 {
	if dir == hungarian.Maximize {
		return math.Max(best, total)
	}

	return math.Min(best, total)
}

// requireValidResult checks the structural guarantees of a MatchingResult.
func requireValidResult(t testing.TB, rows [][]float64, res hungarian.MatchingResult) {
	t.Helper()
	r, c := len(rows), len(rows[0])
	require.Len(t, res.Pairs, min(r, c))

	var (
		usedCol = make(map[int]bool, c)
		sum     float64
		prevRow = -1
	)
	for _, p := range res.Pairs {
		require.Greater(t, p.Row, prevRow, "pairs must be ordered by row")
		require.Less(t, p.Row, r)
		require.Less(t, p.Col, c)
		require.False(t, usedCol[p.Col], "column %d used twice", p.Col)
		usedCol[p.Col] = true
		require.Equal(t, rows[p.Row][p.Col], p.Weight)
		require.Equal(t, res.RowLabels[p.Row], p.Agent)
		require.Equal(t, res.ColLabels[p.Col], p.Task)
		prevRow = p.Row
		sum += p.Weight
	}
	require.InDelta(t, sum, res.TotalWeight, epsTotal)
}

// foreignMatrix is a read-mostly matrix.Matrix that is not a *matrix.Dense.
type foreignMatrix [][]float64

var _ matrix.Matrix = foreignMatrix(nil)

func (f foreignMatrix) Rows() int { return len(f) }
func (f foreignMatrix) Cols() int {
	if len(f) == 0 {
		return 0
	}

	return len(f[0])
}
func (f foreignMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= f.Rows() || j < 0 || j >= f.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return f[i][j], nil
}
func (f foreignMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= f.Rows() || j < 0 || j >= f.Cols() {
		return matrix.ErrOutOfRange
	}
	f[i][j] = v

	return nil
}
func (f foreignMatrix) Clone() matrix.Matrix {
	cp := make(foreignMatrix, len(f))
	for i := range f {
		cp[i] = append([]float64(nil), f[i]...)
	}

	return cp
}
