package emitter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"newsseed/internal/models"
)

func renderYAML(w io.Writer, articles []models.Article, _ string) error {
	if articles == nil {
		articles = []models.Article{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return enc.Close()
}
