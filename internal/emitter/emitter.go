// Package emitter writes sample articles as text for manual entry into a
// database console.
package emitter

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"newsseed/internal/models"
)

// Notice is printed once, before the rendered articles.
const Notice = "Test data prepared. Add this manually through Firebase Console."

// DefaultCollection is the target used when no collection is configured.
const DefaultCollection = "articles"

// Format names an output rendering.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatSQL   Format = "sql"
	FormatTable Format = "table"
)

// Emitter construction errors.
var (
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrInvalidCollection = errors.New("collection must be a plain identifier")
)

// Collection names are inlined into SQL text, so only bare identifiers pass.
var collectionPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type renderFunc func(w io.Writer, articles []models.Article, collection string) error

var renderers = map[Format]renderFunc{
	FormatJSON:  renderJSON,
	FormatYAML:  renderYAML,
	FormatSQL:   renderSQL,
	FormatTable: renderTable,
}

// ValidateCollection reports whether name can be used as a collection or
// table identifier.
func ValidateCollection(name string) error {
	if !collectionPattern.MatchString(name) {
		return fmt.Errorf("%w: got %q", ErrInvalidCollection, name)
	}

	return nil
}

// Formats returns the supported format names, default first.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatSQL), string(FormatTable)}
}

// Emitter renders articles in a single format.
type Emitter struct {
	render     renderFunc
	format     Format
	collection string
}

// New creates an emitter for the named format. An empty format selects JSON
// and an empty collection selects DefaultCollection. Collections that are not
// plain identifiers are rejected with ErrInvalidCollection.
func New(format, collection string) (*Emitter, error) {
	f := Format(strings.ToLower(strings.TrimSpace(format)))
	if f == "" {
		f = FormatJSON
	}

	render, ok := renderers[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}

	if collection == "" {
		collection = DefaultCollection
	}

	if err := ValidateCollection(collection); err != nil {
		return nil, err
	}

	return &Emitter{
		render:     render,
		format:     f,
		collection: collection,
	}, nil
}

// Format returns the emitter's output format.
func (e *Emitter) Format() Format {
	return e.format
}

// Emit writes Notice followed by the rendered articles to w.
func (e *Emitter) Emit(w io.Writer, articles []models.Article) error {
	if _, err := fmt.Fprintln(w, Notice); err != nil {
		return fmt.Errorf("failed to write notice: %w", err)
	}

	if err := e.render(w, articles, e.collection); err != nil {
		return fmt.Errorf("failed to render %s: %w", e.format, err)
	}

	return nil
}
