package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dsml-pipelines/msgprep/internal/dataset"
	"github.com/dsml-pipelines/msgprep/pkg/msgprep"
)

// CleanOptions control category expansion and missing-value filling.
type CleanOptions struct {
	// Delimiter separates category tokens in the raw categories column.
	Delimiter string

	// Placeholder fills missing text fields after cleaning.
	Placeholder string

	// Strict additionally validates every row's category names against the
	// schema derived from the first row. Token counts are always validated.
	Strict bool
}

// CategorySchema is the ordered set of category names derived from the first
// row of the joined dataset. Each token contributes its name minus the fixed
// 2-character "-<digit>" suffix.
type CategorySchema struct {
	Names []string
}

// deriveSchema builds the category schema from one encoded value.
func deriveSchema(encoded, delimiter string) (CategorySchema, error) {
	tokens := strings.Split(encoded, delimiter)
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		if len(tok) < 3 || tok[len(tok)-2] != '-' {
			return CategorySchema{}, fmt.Errorf(
				"token %d (%q) is not in <name>-<digit> form: %w",
				i+1, tok, msgprep.ErrMalformedData)
		}
		names[i] = tok[:len(tok)-2]
	}
	return CategorySchema{Names: names}, nil
}

// CleanData expands the raw categories column into one binary column per
// category, drops exact duplicate rows, and fills missing values (0 for
// integer columns, the placeholder for text columns).
//
// The category schema is derived once from the first row. Every row is then
// validated against it: a diverging token count always fails, and in strict
// mode a diverging category name fails too, instead of silently misaligning
// values with the derived headers.
//
// Each category value is the token's final character parsed as an integer and
// thresholded: greater than zero becomes 1, anything else 0. Encodings such
// as "aid-2" therefore collapse to 1.
func CleanData(t *dataset.Table, opts CleanOptions) (*dataset.Table, error) {
	rawIdx := t.ColumnIndex(msgprep.CategoriesColumn)
	if rawIdx == -1 {
		return nil, fmt.Errorf("joined dataset has no %q column: %w",
			msgprep.CategoriesColumn, msgprep.ErrSchemaMismatch)
	}
	if t.NumRows() == 0 {
		return nil, fmt.Errorf("joined dataset is empty, cannot derive category schema: %w",
			msgprep.ErrMalformedData)
	}

	schema, err := deriveSchema(t.Rows[0][rawIdx], opts.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("derive category schema: %w", err)
	}

	// Message columns (minus the raw categories column) keep their order;
	// derived category columns are appended after them.
	columns := make([]string, 0, len(t.Columns)-1+len(schema.Names))
	kinds := make([]dataset.Kind, 0, cap(columns))
	for i, c := range t.Columns {
		if i == rawIdx {
			continue
		}
		columns = append(columns, c)
		kinds = append(kinds, t.Kinds[i])
	}
	for _, name := range schema.Names {
		columns = append(columns, name)
		kinds = append(kinds, dataset.KindInt)
	}

	rows := make([][]string, 0, t.NumRows())
	for r, row := range t.Rows {
		out := make([]string, 0, len(columns))
		for i, v := range row {
			if i == rawIdx {
				continue
			}
			out = append(out, v)
		}

		values, err := expandRow(row[rawIdx], schema, opts, r+1)
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
		rows = append(rows, out)
	}

	cleaned, err := dataset.NewWithKinds(columns, kinds, rows)
	if err != nil {
		return nil, err
	}

	cleaned.DropDuplicates()
	cleaned.FillMissing(opts.Placeholder)
	return cleaned, nil
}

// expandRow converts one encoded category string into binary values aligned
// with the schema. rowNum is 1-based over data rows, for error messages.
func expandRow(encoded string, schema CategorySchema, opts CleanOptions, rowNum int) ([]string, error) {
	tokens := strings.Split(encoded, opts.Delimiter)
	if len(tokens) != len(schema.Names) {
		return nil, fmt.Errorf("row %d has %d category tokens, schema has %d: %w",
			rowNum, len(tokens), len(schema.Names), msgprep.ErrSchemaMismatch)
	}

	values := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("row %d: category token %d is empty: %w",
				rowNum, i+1, msgprep.ErrMalformedData)
		}
		if opts.Strict {
			name := tok[:len(tok)-1]
			name = strings.TrimSuffix(name, "-")
			if name != schema.Names[i] {
				return nil, fmt.Errorf("row %d: category token %d is %q, schema expects %q: %w",
					rowNum, i+1, tok, schema.Names[i], msgprep.ErrSchemaMismatch)
			}
		}

		// The encoded value is the token's final character.
		n, err := strconv.Atoi(tok[len(tok)-1:])
		if err != nil {
			return nil, fmt.Errorf("row %d: category token %q has non-numeric value: %w",
				rowNum, tok, msgprep.ErrMalformedData)
		}
		if n > 0 {
			values[i] = "1"
		} else {
			values[i] = "0"
		}
	}

	return values, nil
}
