// SPDX-License-Identifier: MIT

package instance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load opens path and decodes it by extension:
// .yaml, .yml and .json go through ReadYAML, .csv through ReadCSV.
func Load(path string) (*Problem, error) {
	var read func(io.Reader) (*Problem, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		read = ReadYAML
	case ".csv":
		read = ReadCSV
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// ReadYAML decodes a single YAML (or JSON) document. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(p.Weights) == 0 {
		return nil, ErrEmpty
	}

	return &p, nil
}

// ReadCSV decodes the header-plus-rows layout described in the package doc.
// Cells are trimmed; a non-numeric weight is ErrBadCell with its 1-based
// record and field position.
func ReadCSV(r io.Reader) (*Problem, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(records) < 2 {
		return nil, ErrEmpty
	}

	header := records[0]
	p := &Problem{
		Tasks:   trimAll(header[1:]),
		Weights: make([][]float64, 0, len(records)-1),
	}

	var (
		rec  []string
		row  []float64
		cell string
		v    float64
	)
	for line := 1; line < len(records); line++ {
		rec = records[line]
		p.Agents = append(p.Agents, strings.TrimSpace(rec[0]))
		row = make([]float64, len(rec)-1)
		for j := 1; j < len(rec); j++ {
			if cell = strings.TrimSpace(rec[j]); cell == "" {
				continue // empty reads as 0
			}
			if v, err = strconv.ParseFloat(cell, 64); err != nil {
				return nil, fmt.Errorf("%w: record %d field %d %q", ErrBadCell, line+1, j+1, cell)
			}
			row[j-1] = v
		}
		p.Weights = append(p.Weights, row)
	}

	return p, nil
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}

	return out
}
