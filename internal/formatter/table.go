// Package formatter renders aligned Markdown tables.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth is the width of the shortest separator cell ("---").
const minColumnWidth = 3

// Table renders header and rows as a Markdown table with a separator row.
// Columns are padded by display width so wide runes stay aligned.
// Rows shorter than the header are padded with empty cells. Line breaks
// inside a cell become <br> so every row stays on one line.
func Table(header []string, rows [][]string) []string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return nil
	}

	table := make([][]string, 0, len(rows)+1)
	table = append(table, trimCells(header))

	for _, row := range rows {
		table = append(table, trimCells(row))
	}

	// Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for _, row := range table {
		for i := 0; i < len(row); i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	result := make([]string, 0, len(table)+1)
	result = append(result, renderRow(table[0], colWidths))
	result = append(result, renderSeparator(colWidths))

	for _, row := range table[1:] {
		result = append(result, renderRow(row, colWidths))
	}

	return result
}

// cellEscaper keeps a cell on one row: pipes would split the cell and
// line breaks would split the row.
var cellEscaper = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
)

func trimCells(row []string) []string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = cellEscaper.Replace(strings.TrimSpace(cell))
	}

	return cells
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(content)

		// Pad with spaces based on display width
		padding := width - runewidth.StringWidth(content)
		if padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func renderSeparator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
