// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/assignment/hungarian"
)

var csvHeader = []string{"Assignment", "Row", "Column", "Weight"}

// WriteCSV writes the export layout. Fields containing commas or quotes are
// quoted by encoding/csv.
func WriteCSV(w io.Writer, res hungarian.MatchingResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: csv header: %w", err)
	}
	for k, p := range res.Pairs {
		rec := []string{"Assignment " + strconv.Itoa(k+1), p.Agent, p.Task, formatWeight(p.Weight)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: csv pair %d: %w", k+1, err)
		}
	}
	if err := cw.Write([]string{"", "", "Total:", formatWeight(res.TotalWeight)}); err != nil {
		return fmt.Errorf("report: csv total: %w", err)
	}
	cw.Flush()

	return cw.Error()
}
