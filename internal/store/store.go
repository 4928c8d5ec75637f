// Package store persists cleaned datasets into a SQLite database file.
//
// The destination table is unconditionally replaced on every save: repeated
// runs with identical input always leave identical stored contents.
package store

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dsml-pipelines/msgprep/internal/dataset"
	"github.com/dsml-pipelines/msgprep/pkg/msgprep"
)

// maxHostParams is SQLite's default host-parameter limit; insert batches are
// sized so one statement never exceeds it.
const maxHostParams = 999

// identPattern restricts table names to plain SQL identifiers, since table
// and column names cannot be bound as parameters.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteStore writes tables into one SQLite database file.
type SQLiteStore struct {
	db *sqlx.DB
}

// Connect opens (creating if necessary) the SQLite database at path and
// verifies the connection. Failures wrap msgprep.ErrStorageFailed.
func Connect(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", msgprep.ErrStorageFailed, path, err)
	}

	// A single connection avoids SQLITE_BUSY between the DDL and the inserts.
	db.SetMaxOpenConns(1)

	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save writes the table's rows into the named table, dropping any existing
// table of that name first. DDL and inserts run in a single transaction, so
// a failed save leaves the previous table contents intact.
func (s *SQLiteStore) Save(ctx context.Context, t *dataset.Table, tableName string) error {
	if !identPattern.MatchString(tableName) {
		return fmt.Errorf("table name %q is not a valid SQL identifier: %w",
			tableName, msgprep.ErrInvalidConfig)
	}
	for _, c := range t.Columns {
		if strings.Contains(c, `"`) {
			return fmt.Errorf("column name %q contains a quote: %w", c, msgprep.ErrInvalidConfig)
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", msgprep.ErrStorageFailed, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, tableName)); err != nil {
		return fmt.Errorf("%w: drop existing table %s: %w", msgprep.ErrStorageFailed, tableName, err)
	}

	if _, err := tx.ExecContext(ctx, createTableSQL(t, tableName)); err != nil {
		return fmt.Errorf("%w: create table %s: %w", msgprep.ErrStorageFailed, tableName, err)
	}

	if err := insertRows(ctx, tx, t, tableName); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", msgprep.ErrStorageFailed, err)
	}
	return nil
}

func createTableSQL(t *dataset.Table, tableName string) string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sqlType := "TEXT"
		if t.Kinds[i] == dataset.KindInt {
			sqlType = "INTEGER"
		}
		defs[i] = fmt.Sprintf(`"%s" %s`, c, sqlType)
	}
	return fmt.Sprintf(`CREATE TABLE "%s" (%s)`, tableName, strings.Join(defs, ", "))
}

func insertRows(ctx context.Context, tx *sqlx.Tx, t *dataset.Table, tableName string) error {
	if t.NumRows() == 0 {
		return nil
	}

	cols := len(t.Columns)
	rowsPerBatch := maxHostParams / cols
	if rowsPerBatch < 1 {
		rowsPerBatch = 1
	}

	quoted := make([]string, cols)
	for i, c := range t.Columns {
		quoted[i] = `"` + c + `"`
	}
	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?,", cols), ",") + ")"
	prefix := fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES `, tableName, strings.Join(quoted, ", "))

	for start := 0; start < t.NumRows(); start += rowsPerBatch {
		end := start + rowsPerBatch
		if end > t.NumRows() {
			end = t.NumRows()
		}
		batch := t.Rows[start:end]

		placeholders := make([]string, len(batch))
		args := make([]interface{}, 0, len(batch)*cols)
		for i, row := range batch {
			placeholders[i] = rowPlaceholder
			for c, v := range row {
				arg, err := bindValue(v, t.Kinds[c])
				if err != nil {
					return fmt.Errorf("row %d, column %s: %w", start+i+1, t.Columns[c], err)
				}
				args = append(args, arg)
			}
		}

		stmt := prefix + strings.Join(placeholders, ", ")
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("%w: insert rows %d-%d: %w", msgprep.ErrStorageFailed, start+1, end, err)
		}
	}

	return nil
}

// bindValue converts a cell to its SQL binding: integer columns bind as
// int64 so SQLite stores them with INTEGER affinity.
func bindValue(v string, kind dataset.Kind) (interface{}, error) {
	if kind != dataset.KindInt {
		return v, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: value %q in integer column", msgprep.ErrMalformedData, v)
	}
	return n, nil
}
