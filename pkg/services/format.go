package services

import (
	"fmt"
	"strings"

	"github.com/thinktank-analytics/thinktank-engine/pkg/models"
)

// maxRenderedRows caps how many rows of a result table appear inline in
// chat; the full table stays available through CSV export.
const maxRenderedRows = 20

// formatResult renders a masked result table plus its provenance.
func formatResult(table *models.Table, sqlText, explanation, resultID string) string {
	var body string
	if len(table.Rows) == 1 && len(table.Columns) == 1 {
		body = fmt.Sprintf("Result: %s", formatCell(table.Rows[0][0]))
	} else {
		body = "Results:\n" + renderTable(table)
	}

	return fmt.Sprintf("%s\n\n%s\n\nQuery:\n%s\n\nResult ID: %s",
		body, explanation, sqlText, resultID)
}

// renderTable lays the table out as aligned plain text.
func renderTable(table *models.Table) string {
	rows := table.Rows
	truncated := false
	if len(rows) > maxRenderedRows {
		rows = rows[:maxRenderedRows]
		truncated = true
	}

	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
	}
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(table.Columns))
		for c := range table.Columns {
			var v any
			if c < len(row) {
				v = row[c]
			}
			cells[r][c] = formatCell(v)
			if len(cells[r][c]) > widths[c] {
				widths[c] = len(cells[r][c])
			}
		}
	}

	var sb strings.Builder
	writeRow := func(vals []string) {
		for i, v := range vals {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(v)
			if i < len(vals)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-len(v)))
			}
		}
		sb.WriteString("\n")
	}
	writeRow(table.Columns)
	for _, row := range cells {
		writeRow(row)
	}
	if truncated {
		fmt.Fprintf(&sb, "... %d more rows\n", len(table.Rows)-maxRenderedRows)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatCell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
