package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvperc/montecarlo"
)

// Fixed column names.
const (
	ColumnP      = "p"
	ColumnStdErr = "stderr"
)

var (
	// ErrEmptyColumn is returned when the value column has no name.
	ErrEmptyColumn = errors.New("export: empty value column name")

	// ErrMalformedTable is returned by ReadCSV for an unexpected layout.
	ErrMalformedTable = errors.New("export: malformed table")
)

// Option configures WriteCSV.
type Option func(*options)

type options struct {
	stderr bool
	format byte
	prec   int
}

// WithStdErr adds the standard error of each row as a third column.
func WithStdErr() Option {
	return func(o *options) { o.stderr = true }
}

// WithPrecision formats values with prec decimal places instead of the
// shortest exact representation. Negative prec restores the default.
func WithPrecision(prec int) Option {
	return func(o *options) {
		if prec < 0 {
			o.format, o.prec = 'g', -1
			return
		}
		o.format, o.prec = 'f', prec
	}
}

// WriteCSV writes a header line and one line per row, in row order.
func WriteCSV(w io.Writer, column string, rows []montecarlo.Row, opts ...Option) error {
	column = strings.TrimSpace(column)
	if column == "" {
		return ErrEmptyColumn
	}
	o := options{format: 'g', prec: -1}
	for _, opt := range opts {
		opt(&o)
	}

	cw := csv.NewWriter(w)
	header := []string{ColumnP, column}
	if o.stderr {
		header = append(header, ColumnStdErr)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}

	record := make([]string, len(header))
	for i, r := range rows {
		record[0] = strconv.FormatFloat(r.P, o.format, o.prec, 64)
		record[1] = strconv.FormatFloat(r.Mean, o.format, o.prec, 64)
		if o.stderr {
			record[2] = strconv.FormatFloat(r.StdErr, o.format, o.prec, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV and returns its value column
// name and rows. Trials is left 0; StdErr is filled when present.
func ReadCSV(r io.Reader) (column string, rows []montecarlo.Row, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return "", nil, fmt.Errorf("ReadCSV: %w", err)
	}
	if len(records) == 0 {
		return "", nil, fmt.Errorf("ReadCSV: no header: %w", ErrMalformedTable)
	}

	header := records[0]
	withErr := len(header) == 3 && header[2] == ColumnStdErr
	if (len(header) != 2 && !withErr) || header[0] != ColumnP || header[1] == "" {
		return "", nil, fmt.Errorf("ReadCSV: header %q: %w", header, ErrMalformedTable)
	}

	rows = make([]montecarlo.Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return "", nil, fmt.Errorf("ReadCSV: line %d has %d fields: %w", i+2, len(rec), ErrMalformedTable)
		}
		vals := make([]float64, len(rec))
		for j, f := range rec {
			if vals[j], err = strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
				return "", nil, fmt.Errorf("ReadCSV: line %d: %w", i+2, err)
			}
		}
		row := montecarlo.Row{P: vals[0], Mean: vals[1]}
		if withErr {
			row.StdErr = vals[2]
		}
		rows = append(rows, row)
	}
	return header[1], rows, nil
}
