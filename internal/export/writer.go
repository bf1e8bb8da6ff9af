package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	addressesSheet = "Addresses"
	summarySheet   = "Summary"
	defaultSheet   = "Sheet1"
)

// CSVHeaders are the column names of CSV output.
var CSVHeaders = []string{
	"original_address", "street_number", "street_name", "street_type",
	"city", "state", "zip_code", "unit", "po_box", "formatted_address",
	"confidence_score", "validation_status", "issues", "address_type",
}

// ExcelHeaders are the column names of the Addresses sheet.
var ExcelHeaders = []string{
	"Original Address", "Street Number", "Street Name", "Street Type",
	"City", "State", "ZIP Code", "Unit", "PO Box", "Formatted Address",
	"Confidence Score", "Validation Status", "Issues", "Address Type",
}

// resultDocument is the JSON output layout.
type resultDocument struct {
	Results   []business.FormattedAddress `json:"results"`
	Summary   ProcessingStats             `json:"summary"`
	Timestamp string                      `json:"timestamp"`
}

// WriteResults writes results to path in format, creating parent
// directories as needed.
func WriteResults(path, format string, results []business.FormattedAddress, generated time.Time) error {
	var write func(io.Writer) error
	switch format {
	case constants.FormatCSV:
		write = func(w io.Writer) error { return WriteCSV(w, results) }
	case constants.FormatJSON:
		write = func(w io.Writer) error { return WriteJSON(w, results, generated) }
	case constants.FormatExcel:
		write = func(w io.Writer) error { return WriteExcel(w, results) }
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
	return writeFile(path, write)
}

// WriteReportFile writes the validation report to path.
func WriteReportFile(path string, results []business.FormattedAddress, generated time.Time) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteReport(w, results, generated)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "failed to close output file")
}

func resultRow(r business.FormattedAddress) []string {
	status := "Invalid"
	if r.Valid {
		status = "Valid"
	}
	return []string{
		r.Original,
		r.Parsed.StreetNumber,
		r.Parsed.StreetName,
		r.Parsed.StreetType,
		r.Parsed.City,
		r.Parsed.State,
		r.Parsed.ZipCode,
		r.Parsed.Unit,
		r.Parsed.POBox,
		r.SingleLine,
		formatConfidence(r.Confidence),
		status,
		strings.Join(r.Issues, "; "),
		r.AddressType,
	}
}

func formatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// WriteCSV writes one row per result under CSVHeaders.
func WriteCSV(w io.Writer, results []business.FormattedAddress) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeaders); err != nil {
		return errors.Wrap(err, "failed to write headers")
	}
	for _, r := range results {
		if err := writer.Write(resultRow(r)); err != nil {
			return errors.Wrap(err, "failed to write record")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// WriteJSON writes {results, summary, timestamp}.
func WriteJSON(w io.Writer, results []business.FormattedAddress, generated time.Time) error {
	if results == nil {
		results = []business.FormattedAddress{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	doc := resultDocument{
		Results:   results,
		Summary:   CalculateStats(results),
		Timestamp: generated.Format(time.RFC3339),
	}
	return errors.Wrap(encoder.Encode(doc), "failed to encode JSON")
}

// WriteExcel writes an Addresses sheet and a Summary sheet.
func WriteExcel(w io.Writer, results []business.FormattedAddress) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, addressesSheet); err != nil {
		return errors.Wrap(err, "failed to rename sheet")
	}
	headerStyle, err := headerStyle(f)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(results))
	for _, r := range results {
		cells := resultRow(r)
		row := make([]interface{}, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		row[10] = r.Confidence
		rows = append(rows, row)
	}
	if err := writeSheet(f, addressesSheet, ExcelHeaders, rows, headerStyle); err != nil {
		return err
	}

	stats := CalculateStats(results)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Wrap(err, "failed to create summary sheet")
	}
	summary := [][]interface{}{
		{"Total Processed", stats.TotalProcessed},
		{"Successful", stats.Successful},
		{"Failed", stats.Failed},
		{"Success Rate (%)", stats.SuccessRate},
		{"Average Confidence", stats.AverageConfidence},
	}
	if err := writeSheet(f, summarySheet, []string{"Metric", "Value"}, summary, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return errors.Wrap(f.Write(w), "failed to write workbook")
}

func headerStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to create header style")
	}
	return style, nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}, style int) error {
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "failed to write %s headers", sheet)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return errors.Wrapf(err, "failed to style %s headers", sheet)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write %s row %d", sheet, i+1)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	return errors.Wrapf(f.SetColWidth(sheet, "A", lastCol, 20), "failed to size %s columns", sheet)
}

// WriteReport writes a plain-text validation report.
func WriteReport(w io.Writer, results []business.FormattedAddress, generated time.Time) error {
	stats := CalculateStats(results)

	var b strings.Builder
	b.WriteString("Address Cleanser Validation Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generated.Format(time.DateTime))
	b.WriteString("SUMMARY STATISTICS\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "Total Addresses Processed: %d\n", stats.TotalProcessed)
	fmt.Fprintf(&b, "Successful Validations: %d\n", stats.Successful)
	fmt.Fprintf(&b, "Failed Validations: %d\n", stats.Failed)
	fmt.Fprintf(&b, "Success Rate: %v%%\n", stats.SuccessRate)
	fmt.Fprintf(&b, "Average Confidence Score: %v%%\n\n", stats.AverageConfidence)
	b.WriteString("DETAILED RESULTS\n")
	b.WriteString("================\n")

	for i, r := range results {
		valid := "No"
		if r.Valid {
			valid = "Yes"
		}
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, r.Original)
		fmt.Fprintf(&b, "   Formatted: %s\n", r.SingleLine)
		fmt.Fprintf(&b, "   Valid: %s\n", valid)
		fmt.Fprintf(&b, "   Confidence: %.1f%%\n", r.Confidence)
		if len(r.Issues) > 0 {
			fmt.Fprintf(&b, "   Issues: %s\n", strings.Join(r.Issues, ", "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write report")
}
