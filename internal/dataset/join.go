package dataset

import "fmt"

// Suffixes applied to colliding non-key column names during a join.
const (
	leftSuffix  = "_left"
	rightSuffix = "_right"
)

// InnerJoin joins two tables on the named key column using inner-join
// semantics: only rows whose key appears in both tables are emitted, in left
// row order. If a key value matches multiple right rows, one output row is
// produced per match.
//
// The result carries the left table's columns followed by the right table's
// non-key columns. A non-key column name present in both inputs is kept from
// both sides, renamed with "_left" and "_right" suffixes.
func InnerJoin(left, right *Table, key string) (*Table, error) {
	leftKey := left.ColumnIndex(key)
	if leftKey == -1 {
		return nil, fmt.Errorf("left table has no column %q", key)
	}
	rightKey := right.ColumnIndex(key)
	if rightKey == -1 {
		return nil, fmt.Errorf("right table has no column %q", key)
	}

	rightNames := make(map[string]struct{}, len(right.Columns))
	for i, c := range right.Columns {
		if i == rightKey {
			continue
		}
		rightNames[c] = struct{}{}
	}

	columns := make([]string, 0, len(left.Columns)+len(right.Columns)-1)
	kinds := make([]Kind, 0, cap(columns))
	for i, c := range left.Columns {
		name := c
		if _, collides := rightNames[c]; collides && i != leftKey {
			name = c + leftSuffix
		}
		columns = append(columns, name)
		kinds = append(kinds, left.Kinds[i])
	}
	for i, c := range right.Columns {
		if i == rightKey {
			continue
		}
		name := c
		if left.ColumnIndex(c) != -1 && c != key {
			name = c + rightSuffix
		}
		columns = append(columns, name)
		kinds = append(kinds, right.Kinds[i])
	}

	// Index right rows by key value, preserving right row order per key.
	byKey := make(map[string][]int, len(right.Rows))
	for i, row := range right.Rows {
		k := row[rightKey]
		byKey[k] = append(byKey[k], i)
	}

	var rows [][]string
	for _, lrow := range left.Rows {
		matches, ok := byKey[lrow[leftKey]]
		if !ok {
			continue
		}
		for _, ri := range matches {
			row := make([]string, 0, len(columns))
			row = append(row, lrow...)
			rrow := right.Rows[ri]
			for c, v := range rrow {
				if c == rightKey {
					continue
				}
				row = append(row, v)
			}
			rows = append(rows, row)
		}
	}

	return &Table{Columns: columns, Kinds: kinds, Rows: rows}, nil
}
