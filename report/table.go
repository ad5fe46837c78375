// SPDX-License-Identifier: MIT

package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/assignment/hungarian"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	weightStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	minStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	maxStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

const weightCol = 3

// Table renders res as a bordered table with one line per pair, followed by
// the total line. Colors degrade to plain text when the output is not a terminal.
func Table(res hungarian.MatchingResult) string {
	rows := make([][]string, len(res.Pairs))
	for k, p := range res.Pairs {
		rows[k] = []string{strconv.Itoa(k + 1), p.Agent, p.Task, formatWeight(p.Weight)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == weightCol:
				return weightStyle
			default:
				return cellStyle
			}
		}).
		Headers(csvHeader...).
		Rows(rows...)

	total := minStyle
	if res.Direction == hungarian.Maximize {
		total = maxStyle
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.String(),
		total.Render(totalLabel(res)+": "+formatWeight(res.TotalWeight)),
	)
}
