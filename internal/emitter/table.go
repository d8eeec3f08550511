package emitter

import (
	"fmt"
	"io"

	"newsseed/internal/formatter"
	"newsseed/internal/models"
)

var tableHeader = []string{"Field", "Value"}

// renderTable writes each article as a two-column Markdown table under its
// own heading.
func renderTable(w io.Writer, articles []models.Article, collection string) error {
	for i, article := range articles {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "## %s[%d]\n\n", collection, i); err != nil {
			return err
		}

		fields := article.Fields()

		rows := make([][]string, len(fields))
		for j, field := range fields {
			rows[j] = []string{field.Name, field.Value}
		}

		for _, line := range formatter.Table(tableHeader, rows) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}
