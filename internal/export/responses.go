package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/types/api/responses"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ResponseHeaders are the columns of uploaded-batch attachments.
var ResponseHeaders = []string{"original", "formatted", "valid", "confidence", "errors"}

type responseRecord struct {
	original   string
	formatted  string
	valid      string
	confidence float64
	errors     string
}

func newResponseRecord(r responses.AddressResponse) responseRecord {
	rec := responseRecord{
		formatted: r.Formatted,
		errors:    strings.Join(r.Errors, "; "),
	}
	if r.Original != nil {
		rec.original = *r.Original
	}
	if r.Confidence != nil {
		rec.confidence = *r.Confidence
	}
	valid, _ := json.Marshal(r.Valid)
	rec.valid = string(valid)
	return rec
}

func (r responseRecord) record() []string {
	return []string{r.original, r.formatted, r.valid, formatConfidence(r.confidence), r.errors}
}

func (r responseRecord) cells() []interface{} {
	return []interface{}{r.original, r.formatted, r.valid, r.confidence, r.errors}
}

// WriteResponsesCSV writes API results as CSV under ResponseHeaders.
func WriteResponsesCSV(w io.Writer, results []responses.AddressResponse) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ResponseHeaders); err != nil {
		return errors.Wrap(err, "failed to write headers")
	}
	for _, r := range results {
		if err := writer.Write(newResponseRecord(r).record()); err != nil {
			return errors.Wrap(err, "failed to write record")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// WriteResponsesExcel writes API results as a single-sheet workbook.
func WriteResponsesExcel(w io.Writer, results []responses.AddressResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	rows := make([][]interface{}, 0, len(results))
	for _, r := range results {
		rows = append(rows, newResponseRecord(r).cells())
	}
	if err := writeSheet(f, defaultSheet, ResponseHeaders, rows, style); err != nil {
		return err
	}
	return errors.Wrap(f.Write(w), "failed to write workbook")
}
