package emitter

import (
	"fmt"
	"io"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"newsseed/internal/models"
)

// sqlColumns lines up with models.Article.Fields.
var sqlColumns = []string{
	"title",
	"description",
	"content",
	"author",
	"thumbnail_url",
	"published_at",
	"created_at",
	"updated_at",
}

// renderSQL writes one INSERT statement per article with values inlined,
// ready to paste into a SQL console. Literals follow standard SQL quoting
// (PostgreSQL, SQLite): only single quotes are escaped, backslashes are kept
// as-is. MySQL needs NO_BACKSLASH_ESCAPES for the output to load verbatim.
func renderSQL(w io.Writer, articles []models.Article, collection string) error {
	for i, article := range articles {
		fields := article.Fields()

		values := make([]any, len(fields))
		for j, field := range fields {
			values[j] = quoteLiteral(field.Value)
		}

		stmt := sq.Insert(collection).Columns(sqlColumns...).Values(values...)

		// DebugSqlizer hides builder errors inside its output
		if _, _, err := stmt.ToSql(); err != nil {
			return fmt.Errorf("article[%d]: %w", i, err)
		}

		if _, err := fmt.Fprintf(w, "%s;\n", sq.DebugSqlizer(stmt)); err != nil {
			return err
		}
	}

	return nil
}

// quoteLiteral doubles single quotes; DebugSqlizer adds the surrounding ones.
func quoteLiteral(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
