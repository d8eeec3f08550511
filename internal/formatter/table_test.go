package formatter

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:   "Basic table formatting",
			header: []string{"Header 1", "Header 2"},
			rows:   [][]string{{"val 1", "val 2"}},
			expected: `| Header 1 | Header 2 |
| -------- | -------- |
| val 1    | val 2    |`,
		},
		{
			name:   "Minimum separator width",
			header: []string{"A", "B"},
			rows:   [][]string{{"x", "y"}},
			expected: `| A   | B   |
| --- | --- |
| x   | y   |`,
		},
		{
			name:   "Trim spaces in cells",
			header: []string{"  Col A  ", "Col B"},
			rows:   [][]string{{"   val A   ", "val B"}},
			expected: `| Col A | Col B |
| ----- | ----- |
| val A | val B |`,
		},
		{
			name:   "Short rows padded",
			header: []string{"field", "value"},
			rows:   [][]string{{"title"}},
			expected: `| field | value |
| ----- | ----- |
| title |       |`,
		},
		{
			name:   "Wide characters",
			header: []string{"field", "value"},
			rows:   [][]string{{"title", "火災"}, {"author", "ab"}},
			expected: `| field  | value |
| ------ | ----- |
| title  | 火災  |
| author | ab    |`,
		},
		{
			name:   "Pipes escaped",
			header: []string{"field", "value"},
			rows:   [][]string{{"title", "a|b"}},
			expected: `| field | value |
| ----- | ----- |
| title | a\|b  |`,
		},
		{
			name:   "Line breaks become br",
			header: []string{"field", "value"},
			rows:   [][]string{{"title", "line1\nline2 | x"}, {"body", "a\r\nb\rc"}},
			expected: `| field | value               |
| ----- | ------------------- |
| title | line1<br>line2 \| x |
| body  | a<br>b<br>c         |`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(Table(tt.header, tt.rows), "\n")
			if got != tt.expected {
				t.Errorf("Table() mismatch:\nExpected:\n%s\nGot:\n%s", tt.expected, got)
			}
		})
	}
}

func TestTable_Empty(t *testing.T) {
	if got := Table(nil, nil); got != nil {
		t.Errorf("Expected nil for empty table, got %v", got)
	}
}

func TestTable_MultiLineCellsStayOnOneRow(t *testing.T) {
	lines := Table([]string{"field", "value"}, [][]string{{"content", "first\nsecond\nthird"}})

	if len(lines) != 3 {
		t.Fatalf("Expected header, separator and one row, got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	width := len(lines[0])
	for i, line := range lines {
		if strings.ContainsAny(line, "\r\n") {
			t.Errorf("Line %d contains a line break: %q", i, line)
		}

		if len(line) != width {
			t.Errorf("Line %d width %d differs from header width %d", i, len(line), width)
		}
	}
}
