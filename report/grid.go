// SPDX-License-Identifier: MIT

package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/assignment/hungarian"
)

// gridMark flags an assigned cell of the grid.
const gridMark = "✓"

var (
	markStyle  = cellStyle.Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color("2"))
	labelStyle = cellStyle.Bold(true)
)

// Grid renders res as the agent × task assignment matrix: the header row holds
// an empty corner and the column labels, each body row starts with its row
// label and carries a mark on the assigned cell and blanks elsewhere.
// Rows and columns dropped by padding simply stay unmarked.
func Grid(res hungarian.MatchingResult) string {
	rows := make([][]string, len(res.RowLabels))
	for i, label := range res.RowLabels {
		rows[i] = make([]string, len(res.ColLabels)+1)
		rows[i][0] = label
	}
	for _, p := range res.Pairs {
		rows[p.Row][p.Col+1] = gridMark
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return markStyle
			}
		}).
		Headers(append([]string{""}, res.ColLabels...)...).
		Rows(rows...)

	return t.String()
}
