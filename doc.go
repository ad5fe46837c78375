// Package assignment is the module root of a linear assignment toolkit built
// around the Kuhn–Munkres (Hungarian) method.
//
// What it solves:
//
//	Given n agents, m tasks and a weight for every (agent, task) pair, pick a
//	one-to-one pairing of min(n, m) agents with tasks whose summed weight is
//	minimal (costs) or maximal (benefits).
//
// Packages:
//
//	matrix/      - dense row-major float64 matrix, validators, gonum interop
//	hungarian/   - normalization (padding, max→min) and the two solvers:
//	               zero-cover reduction and shortest augmenting paths
//	instance/    - problem files in YAML, JSON or CSV
//	report/      - terminal table, CSV export and JSON renderings of a result
//	cli/         - the cobra command tree behind cmd/assign
//	examples/    - small runnable programs
//
// Quick example:
//
//	res, err := hungarian.Solve(
//	    [][]float64{{4, 2, 8}, {4, 3, 7}, {3, 1, 6}},
//	    nil, nil, hungarian.Minimize,
//	)
//	// res.TotalWeight == 12; labels default to "Row 1".. and "Col 1"..
//
// Every call is a fresh, synchronous solve over private copies of the input;
// concurrent calls are safe.
package assignment
