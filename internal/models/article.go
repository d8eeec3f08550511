// Package models defines the records emitted by the seed tool.
package models

import (
	"time"
)

// TimestampLayout is the wire layout for article timestamps: UTC, millisecond
// precision, trailing Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Article represents a sample news article destined for the articles collection.
type Article struct {
	Title        string    `json:"title"        yaml:"title"`
	Description  string    `json:"description"  yaml:"description"`
	Content      string    `json:"content"      yaml:"content"`
	Author       string    `json:"author"       yaml:"author"`
	ThumbnailURL string    `json:"thumbnailURL" yaml:"thumbnailURL"`
	PublishedAt  Timestamp `json:"publishedAt"  yaml:"publishedAt"`
	CreatedAt    Timestamp `json:"createdAt"    yaml:"createdAt"`
	UpdatedAt    Timestamp `json:"updatedAt"    yaml:"updatedAt"`
}

// Field is a single named value of an article, in declaration order.
type Field struct {
	Name  string
	Value string
}

// Fields returns the article's fields as strings, in declaration order.
// Names match the JSON keys.
func (a Article) Fields() []Field {
	return []Field{
		{Name: "title", Value: a.Title},
		{Name: "description", Value: a.Description},
		{Name: "content", Value: a.Content},
		{Name: "author", Value: a.Author},
		{Name: "thumbnailURL", Value: a.ThumbnailURL},
		{Name: "publishedAt", Value: a.PublishedAt.String()},
		{Name: "createdAt", Value: a.CreatedAt.String()},
		{Name: "updatedAt", Value: a.UpdatedAt.String()},
	}
}

// Timestamp is a point in time rendered with TimestampLayout.
type Timestamp struct {
	time.Time
}

// MustParseTimestamp parses an RFC3339 literal and panics on failure.
// It is meant for hardcoded values only.
func MustParseTimestamp(value string) Timestamp {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("models: invalid timestamp literal " + value + ": " + err.Error())
	}

	return Timestamp{Time: t}
}

// String formats the timestamp in UTC using TimestampLayout.
func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Timestamp) MarshalYAML() (any, error) {
	return t.String(), nil
}
