// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// FromGonum copies any gonum matrix into a new *Dense under the default numeric
// policy. Empty gonum matrices are rejected with ErrInvalidDimensions.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, validatorErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Gonum returns a *mat.Dense holding a copy of m's values.
// Complexity: O(r*c).
func (m *Dense) Gonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
