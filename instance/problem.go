// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/assignment/hungarian"
)

// Problem is one assignment instance as stored on disk.
// Empty Agents or Tasks mean "generate default labels".
type Problem struct {
	Direction string      `yaml:"direction,omitempty" json:"direction,omitempty"`
	Agents    []string    `yaml:"agents,omitempty" json:"agents,omitempty"`
	Tasks     []string    `yaml:"tasks,omitempty" json:"tasks,omitempty"`
	Weights   [][]float64 `yaml:"weights" json:"weights"`
}

// ParsedDirection resolves p.Direction; an empty string means Minimize.
func (p *Problem) ParsedDirection() (hungarian.Direction, error) {
	if strings.TrimSpace(p.Direction) == "" {
		return hungarian.Minimize, nil
	}

	return hungarian.ParseDirection(p.Direction)
}

// Solve runs hungarian.Solve on the instance.
// Errors are those of ParsedDirection and hungarian.Solve.
func (p *Problem) Solve(opts ...hungarian.Option) (hungarian.MatchingResult, error) {
	dir, err := p.ParsedDirection()
	if err != nil {
		return hungarian.MatchingResult{}, err
	}

	return hungarian.Solve(p.Weights, labelsOrNil(p.Agents), labelsOrNil(p.Tasks), dir, opts...)
}

// WriteYAML encodes p as a YAML document that ReadYAML accepts.
func (p *Problem) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("instance: encode yaml: %w", err)
	}

	return enc.Close()
}

// labelsOrNil maps an empty label list to nil so the solver generates labels.
func labelsOrNil(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}

	return labels
}

// Example returns the project-assignment sample: four people, four projects,
// minimize. Its optimum is 49.
func Example() *Problem {
	return &Problem{
		Direction: hungarian.Minimize.String(),
		Agents:    []string{"Alicia", "Roberto", "Carlos", "Diana"},
		Tasks:     []string{"Proyecto A", "Proyecto B", "Proyecto C", "Proyecto D"},
		Weights: [][]float64{
			{10, 19, 8, 15},
			{10, 18, 7, 17},
			{13, 16, 9, 14},
			{12, 19, 8, 18},
		},
	}
}

// Default returns the 3×3 worker/task sample shown before any input is given.
// Its minimum is 12.
func Default() *Problem {
	return &Problem{
		Direction: hungarian.Minimize.String(),
		Agents:    []string{"Trabajador 1", "Trabajador 2", "Trabajador 3"},
		Tasks:     []string{"Tarea A", "Tarea B", "Tarea C"},
		Weights: [][]float64{
			{4, 2, 8},
			{4, 3, 7},
			{3, 1, 6},
		},
	}
}
