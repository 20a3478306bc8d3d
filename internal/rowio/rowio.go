// Package rowio reads tabular input rows and writes result rows.
//
// CSV input goes through encoding/csv; tab mode reads raw lines split
// on tabs, with no quoting and no multiline values. The first row of a
// run fixes the column width; later rows with a different width are
// reported per record via ErrWidth rather than aborting the reader.
package rowio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ErrWidth reports a row whose column count differs from the first
// row's. The offending row is still returned alongside it.
var ErrWidth = errors.New("inconsistent number of columns")

// Reader yields successive rows from the input.
type Reader struct {
	csv   *csv.Reader
	lines *bufio.Scanner
	width int
}

// NewReader wraps r. tab selects tab-separated line mode.
func NewReader(r io.Reader, tab bool) *Reader {
	if tab {
		return &Reader{lines: bufio.NewScanner(r)}
	}

	cr := csv.NewReader(r)
	// First record sets the expected field count; csv.Reader then
	// reports mismatches itself.
	cr.FieldsPerRecord = 0

	return &Reader{csv: cr}
}

// Read returns the next row, io.EOF at end of input, or the row plus
// ErrWidth on a column count mismatch.
func (r *Reader) Read() ([]string, error) {
	if r.lines != nil {
		return r.readTab()
	}

	row, err := r.csv.Read()
	if errors.Is(err, csv.ErrFieldCount) {
		return row, ErrWidth
	}

	return row, err
}

func (r *Reader) readTab() ([]string, error) {
	if !r.lines.Scan() {
		if err := r.lines.Err(); err != nil {
			return nil, err
		}

		return nil, io.EOF
	}

	row := strings.Split(r.lines.Text(), "\t")

	if r.width == 0 {
		r.width = len(row)
	} else if len(row) != r.width {
		return row, ErrWidth
	}

	return row, nil
}

// Writer writes result rows as CSV, flushing after every row so
// earlier rows are durable if a later record aborts the run.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write emits one row and flushes it.
func (w *Writer) Write(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return err
	}

	w.csv.Flush()

	return w.csv.Error()
}
