package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/assignment/hungarian"
)

// MethodSuite runs the same structural checks against one Method.
type MethodSuite struct {
	suite.Suite
	method hungarian.Method
	rng    *rand.Rand
}

func (s *MethodSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(seedDet + int64(s.method)))
}

func (s *MethodSuite) assign(rows [][]float64) hungarian.Assignment {
	a, err := hungarian.Assign(mustDense(s.T(), rows), hungarian.WithMethod(s.method))
	require.NoError(s.T(), err)
	require.True(s.T(), a.IsPermutation(), "%v", a)

	return a
}

// TestDiagonalDominant: a strictly cheapest diagonal must be chosen.
func (s *MethodSuite) TestDiagonalDominant() {
	const n = 8
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 100 + float64(i*n+j)
		}
		rows[i][i] = 1
	}
	a := s.assign(rows)
	for i, j := range a {
		require.Equal(s.T(), i, j)
	}
}

// TestPermutedDiagonal: zeros placed on a fixed permutation are recovered.
func (s *MethodSuite) TestPermutedDiagonal() {
	const n = 15
	perm := s.rng.Perm(n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1 + float64(s.rng.Intn(50))
		}
		rows[i][perm[i]] = 0
	}
	a := s.assign(rows)
	require.Equal(s.T(), hungarian.Assignment(perm), a)
}

// TestConstantRowsAndColumns: adding a constant to a row or column shifts
// every assignment equally, so the optimal total shifts by the same amount.
func (s *MethodSuite) TestConstantRowsAndColumns() {
	const n = 6
	rows := randomRows(s.rng, n, n, false)
	rows = shiftNonNegative(rows)
	base := bruteForce(rows, hungarian.Minimize)

	shifted := make([][]float64, n)
	for i := range rows {
		shifted[i] = append([]float64(nil), rows[i]...)
		shifted[i][2] += 10 // column 2
	}
	for j := range shifted[4] {
		shifted[4][j] += 3 // row 4
	}

	a := s.assign(shifted)
	got, err := a.Cost(mustDense(s.T(), shifted))
	require.NoError(s.T(), err)
	require.InDelta(s.T(), base+13, got, epsTotal)
}

// TestLargeTieHeavy: a 40×40 instance with values in {0, 1} still yields a
// permutation whose cost matches the other method.
func (s *MethodSuite) TestLargeTieHeavy() {
	const n = 40
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(s.rng.Intn(2))
		}
	}
	a := s.assign(rows)
	got, _ := a.Cost(mustDense(s.T(), rows))

	other := hungarian.PotentialsMethod
	if s.method == hungarian.PotentialsMethod {
		other = hungarian.CoverMethod
	}
	b, err := hungarian.Assign(mustDense(s.T(), rows), hungarian.WithMethod(other))
	require.NoError(s.T(), err)
	want, _ := b.Cost(mustDense(s.T(), rows))
	require.Equal(s.T(), want, got)
}

func TestCoverMethodSuite(t *testing.T) {
	suite.Run(t, &MethodSuite{method: hungarian.CoverMethod})
}

func TestPotentialsMethodSuite(t *testing.T) {
	suite.Run(t, &MethodSuite{method: hungarian.PotentialsMethod})
}
