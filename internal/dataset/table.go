package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a column's values.
type Kind int

const (
	// KindText is the default column kind; missing values fill with a placeholder.
	KindText Kind = iota
	// KindInt marks columns whose non-missing values are all base-10 integers;
	// missing values fill with 0.
	KindInt
)

// String returns a human-readable kind name for error messages and logs.
func (k Kind) String() string {
	if k == KindInt {
		return "int"
	}
	return "text"
}

// Table is an ordered, string-valued table with per-column kinds.
// Rows and Columns are exported for direct iteration; mutating them without
// keeping Kinds in sync is the caller's responsibility.
type Table struct {
	Columns []string
	Kinds   []Kind
	Rows    [][]string
}

// New builds a Table from a header and rows, inferring each column's kind.
// A column is KindInt when it has at least one non-missing value and every
// non-missing value parses as a base-10 integer.
// Returns an error if any row's width differs from the header's.
func New(columns []string, rows [][]string) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", i+1, len(row), len(columns))
		}
	}

	kinds := make([]Kind, len(columns))
	for c := range columns {
		kinds[c] = inferKind(rows, c)
	}

	return &Table{Columns: columns, Kinds: kinds, Rows: rows}, nil
}

// NewWithKinds builds a Table with explicit column kinds, bypassing inference.
// Used by the cleaner, which knows derived category columns are integers.
func NewWithKinds(columns []string, kinds []Kind, rows [][]string) (*Table, error) {
	if len(kinds) != len(columns) {
		return nil, fmt.Errorf("got %d kinds for %d columns", len(kinds), len(columns))
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", i+1, len(row), len(columns))
		}
	}
	return &Table{Columns: columns, Kinds: kinds, Rows: rows}, nil
}

func inferKind(rows [][]string, col int) Kind {
	seen := false
	for _, row := range rows {
		v := row[col]
		if v == "" {
			continue
		}
		if _, err := strconv.Atoi(v); err != nil {
			return KindText
		}
		seen = true
	}
	if !seen {
		return KindText
	}
	return KindInt
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// DropDuplicates removes rows that are identical in every field, keeping the
// first occurrence. Row order is otherwise preserved.
func (t *Table) DropDuplicates() {
	seen := make(map[string]struct{}, len(t.Rows))
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	t.Rows = kept
}

// FillMissing replaces empty fields in place: integer columns get "0", text
// columns get the placeholder.
func (t *Table) FillMissing(placeholder string) {
	for _, row := range t.Rows {
		for c, v := range row {
			if v != "" {
				continue
			}
			if t.Kinds[c] == KindInt {
				row[c] = "0"
			} else {
				row[c] = placeholder
			}
		}
	}
}
