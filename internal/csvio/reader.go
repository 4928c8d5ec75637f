// Package csvio reads delimited text files into dataset tables.
//
// Files must carry a header row. Parsing is strict: every data row must have
// the same field count as the header (enforced by encoding/csv), and a parse
// failure is reported with the offending row number wrapped in
// msgprep.ErrMalformedData so the CLI can map it to a data exit code.
package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dsml-pipelines/msgprep/internal/dataset"
	"github.com/dsml-pipelines/msgprep/pkg/msgprep"
)

// readBufSize keeps disk reads large; input datasets are tens of thousands
// of rows.
const readBufSize = 1 << 20

// ReadTable parses a CSV file with a header row into a dataset.Table.
// File-access errors propagate unwrapped; parse errors wrap
// msgprep.ErrMalformedData.
func ReadTable(path string) (*dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return readTable(bufio.NewReaderSize(f, readBufSize), path)
}

func readTable(r io.Reader, path string) (*dataset.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: missing header row: %w", path, msgprep.ErrMalformedData)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, wrapParseError(err))
	}

	var rows [][]string
	rowNum := 1 // header already counted
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, rowNum, wrapParseError(err))
		}
		rows = append(rows, row)
	}

	tbl, err := dataset.New(header, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, wrapParseError(err))
	}
	return tbl, nil
}

func wrapParseError(err error) error {
	if errors.Is(err, msgprep.ErrMalformedData) {
		return err
	}
	return fmt.Errorf("%w: %w", msgprep.ErrMalformedData, err)
}
