// SPDX-License-Identifier: MIT

// Package report renders a hungarian.MatchingResult.
//
// Formats:
//
//   - FormatTable: a bordered terminal table followed by a total line
//     ("Total cost" when minimizing, "Total benefit" when maximizing), then the
//     assignment grid of Grid: agents down, tasks across, "✓" on each pair.
//   - FormatCSV: the export layout "Assignment,Row,Column,Weight", one
//     "Assignment k" record per pair and a final ",,Total:,<total>" record.
//   - FormatJSON: the result object with keys pairs, totalWeight, matchingType,
//     rowLabels and colLabels, indented by two spaces.
//
// Numbers are printed in the shortest form that round-trips ("12", "2.5").
package report
