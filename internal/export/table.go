// Package export reads address tables from CSV and Excel files and writes
// processed results as CSV, JSON, Excel and plain-text reports.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat is returned for input files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported input file format, expected .csv, .xlsx or .xls")
	// ErrLegacyExcel is returned for .xls workbooks.
	ErrLegacyExcel = errors.New("legacy .xls workbooks are not supported, save the file as .xlsx")
	// ErrEmptyFile is returned when the input has no header row.
	ErrEmptyFile = errors.New("input file has no header row")
	// ErrColumnNotFound is returned when a requested column is absent.
	ErrColumnNotFound = errors.New("column not found")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a header row plus data rows. Rows may be shorter than Headers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, bool) {
	for i, h := range t.Headers {
		if h == name {
			return i, true
		}
	}
	return -1, false
}

// Require checks that every named column exists.
func (t *Table) Require(names ...string) error {
	for _, name := range names {
		if _, ok := t.Column(name); !ok {
			return errors.Wrapf(ErrColumnNotFound, "%q (available columns: %s)", name, strings.Join(t.Headers, ", "))
		}
	}
	return nil
}

// Cell returns the value at row, col or "" when the row is short.
func (t *Table) Cell(row, col int) string {
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Values returns the non-empty cells of column col in row order.
func (t *Table) Values(col int) []string {
	values := make([]string, 0, len(t.Rows))
	for i := range t.Rows {
		if v := t.Cell(i, col); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// ReadFile reads a table from a .csv or .xlsx file.
func ReadFile(path string) (*Table, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open input file")
	}
	defer f.Close()
	return ReadTable(f, path)
}

// ReadTable reads a table from r, choosing the decoder from name's extension.
// Names without a spreadsheet extension are read as CSV.
func ReadTable(r io.Reader, name string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xls":
		return nil, ErrLegacyExcel
	case ".xlsx":
		return readExcel(r)
	default:
		return readCSV(r)
	}
}

func checkExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
		return nil
	case ".xls":
		return ErrLegacyExcel
	default:
		return errors.Wrap(ErrUnsupportedFormat, path)
	}
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}
	return newTable(records)
}

func readExcel(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}
	return newTable(rows)
}

func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, ErrEmptyFile
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = string(bytes.TrimPrefix([]byte(h), utf8BOM))
		}
		headers[i] = strings.TrimSpace(h)
	}
	return &Table{Headers: headers, Rows: records[1:]}, nil
}
