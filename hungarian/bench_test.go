package hungarian_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/assignment/hungarian"
)

// BenchmarkAssign measures both methods on dense random instances.
// Inputs are built outside the timer.
func BenchmarkAssign(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		rows := shiftNonNegative(randomRows(rand.New(rand.NewSource(seedDet)), n, n, false))
		cost := mustDense(b, rows)
		for _, m := range methods {
			b.Run(fmt.Sprintf("%s/n=%d", m, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := hungarian.Assign(cost, hungarian.WithMethod(m)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkSolveRectangular measures the full pipeline with padding.
func BenchmarkSolveRectangular(b *testing.B) {
	rows := randomRows(rand.New(rand.NewSource(seedDet)), 50, 120, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hungarian.Solve(rows, nil, nil, hungarian.Maximize); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAssignProduct measures both methods on adjustment-heavy input where
// almost every pair is found after a δ adjustment.
func BenchmarkAssignProduct(b *testing.B) {
	for _, n := range []int{64, 256, 512} {
		cost := mustDense(b, productRows(rand.New(rand.NewSource(seedDet)), n))
		for _, m := range methods {
			b.Run(fmt.Sprintf("%s/n=%d", m, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := hungarian.Assign(cost, hungarian.WithMethod(m)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
