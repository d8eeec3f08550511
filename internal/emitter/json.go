package emitter

import (
	"encoding/json"
	"io"

	"newsseed/internal/models"
)

// renderJSON writes the articles as a two-space indented JSON array.
func renderJSON(w io.Writer, articles []models.Article, _ string) error {
	if articles == nil {
		articles = []models.Article{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(articles)
}
