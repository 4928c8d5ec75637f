// Package dataset provides a small in-memory tabular data structure for the
// msgprep pipeline.
//
// A Table holds an ordered column list, string-valued rows, and a per-column
// kind (integer or text). All cell values are strings as read from CSV; the
// kind drives type-aware behavior such as missing-value filling (integer
// columns fill with 0, text columns with a placeholder) and the SQL column
// types chosen by the store.
//
// Missing values are represented as empty strings, matching what
// encoding/csv produces for empty fields.
//
// The package deliberately implements only the relational operations the
// pipeline needs: an inner equi-join, exact-duplicate removal, and
// missing-value filling. It is not a dataframe library.
package dataset
