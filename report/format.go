// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/assignment/hungarian"
)

// ErrUnknownFormat indicates an output format other than table, csv or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the rendering used by Write.
type Format int

const (
	FormatTable Format = iota
	FormatCSV
	FormatJSON
)

// String returns the CLI name of f.
func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts table, csv or json, case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatTable, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders res to w in format f.
func Write(w io.Writer, res hungarian.MatchingResult, f Format) error {
	switch f {
	case FormatTable:
		_, err := io.WriteString(w, Table(res)+"\n\n"+Grid(res)+"\n")

		return err
	case FormatCSV:
		return WriteCSV(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// formatWeight prints v in its shortest round-trip decimal form.
func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// totalLabel names the total for the direction of res.
func totalLabel(res hungarian.MatchingResult) string {
	if res.Direction == hungarian.Maximize {
		return "Total benefit"
	}

	return "Total cost"
}
