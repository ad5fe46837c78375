// SPDX-License-Identifier: MIT

// Package instance reads assignment problems from files.
//
// A Problem carries agent labels (rows), task labels (columns), the weight
// matrix and the optimization direction. Two encodings are supported.
//
// YAML or JSON (JSON is read by the YAML decoder):
//
//	direction: min
//	agents: [Alicia, Roberto]
//	tasks: [Proyecto A, Proyecto B]
//	weights:
//	  - [10, 19]
//	  - [10, 18]
//
// CSV: a header row "<corner>,task1,task2,..." then one row per agent,
// "agent,w1,w2,...". The corner cell is ignored and empty weight cells read
// as 0. CSV carries no direction, so Problem.Direction stays empty (minimize)
// unless the caller sets it.
//
// Example returns the four-person project sample and Default the 3×3
// worker/task sample; both solve through Problem.Solve.
package instance
