// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/assignment/matrix"
)

// Unassigned marks a row without a column in a partial Assignment.
// A completed solve never contains it.
const Unassigned = -1

// Direction tells whether raw weights are costs (Minimize) or benefits (Maximize).
type Direction int

const (
	// Minimize treats weights as costs; lower totals are better.
	Minimize Direction = iota

	// Maximize treats weights as benefits; higher totals are better.
	Maximize
)

// String returns "min" or "max", the matchingType value of a serialized result.
func (d Direction) String() string {
	switch d {
	case Minimize:
		return "min"
	case Maximize:
		return "max"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is Minimize or Maximize.
func (d Direction) Valid() bool { return d == Minimize || d == Maximize }

// ParseDirection accepts min|minimize|max|maximize, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimize":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	default:
		return Minimize, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// MarshalText encodes the direction as "min" or "max".
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText decodes anything ParseDirection accepts.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// Method selects the algorithm Assign runs on the square cost matrix.
type Method int

const (
	// CoverMethod is the reduction / zero-cover / adjustment formulation.
	CoverMethod Method = iota

	// PotentialsMethod is the shortest-augmenting-path formulation with dual potentials.
	PotentialsMethod
)

// String returns the CLI name of the method.
func (m Method) String() string {
	switch m {
	case CoverMethod:
		return "cover"
	case PotentialsMethod:
		return "potentials"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "cover" or "potentials", case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cover":
		return CoverMethod, nil
	case "potentials":
		return PotentialsMethod, nil
	default:
		return CoverMethod, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// Assignment maps row i to column a[i] of a square cost matrix.
type Assignment []int

// IsPermutation reports whether a is a bijection on {0..len(a)-1}.
// Complexity: O(n).
func (a Assignment) IsPermutation() bool {
	seen := make([]bool, len(a))
	for _, j := range a {
		if j < 0 || j >= len(a) || seen[j] {
			return false
		}
		seen[j] = true
	}

	return true
}

// Cost sums m[i][a[i]] over all rows. Unassigned rows contribute nothing.
// Returns ErrNonSquare wrapped when m and a disagree on the order.
// Complexity: O(n).
func (a Assignment) Cost(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil || m.Rows() != len(a) {
		return 0, fmt.Errorf("Assignment.Cost: %w", ErrNonSquare)
	}

	var (
		total float64
		v     float64
		err   error
	)
	for i, j := range a {
		if j == Unassigned {
			continue
		}
		if v, err = m.At(i, j); err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// Normalized is the square cost matrix handed to the solver, together with the
// padding and transform that produced it.
type Normalized struct {
	Cost    *matrix.Dense // Size×Size, real block in the top-left corner
	Size    int           // max(Rows, Cols)
	Rows    int           // original agent count
	Cols    int           // original task count
	PadRows int           // Size − Rows synthetic agents
	PadCols int           // Size − Cols synthetic tasks
	Max     float64       // M used for Maximize; 0 for Minimize
}

// MatchingPair is one realized agent→task pairing with its original weight.
type MatchingPair struct {
	Agent  string  `json:"row" yaml:"row"`
	Task   string  `json:"col" yaml:"col"`
	Row    int     `json:"rowIndex" yaml:"rowIndex"`
	Col    int     `json:"colIndex" yaml:"colIndex"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// MatchingResult is the outcome of Solve. Pairs are ordered by ascending Row and
// never reference padded rows or columns; TotalWeight sums the original weights.
type MatchingResult struct {
	Pairs       []MatchingPair `json:"pairs" yaml:"pairs"`
	TotalWeight float64        `json:"totalWeight" yaml:"totalWeight"`
	Direction   Direction      `json:"matchingType" yaml:"matchingType"`
	RowLabels   []string       `json:"rowLabels" yaml:"rowLabels"`
	ColLabels   []string       `json:"colLabels" yaml:"colLabels"`
}
