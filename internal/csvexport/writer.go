package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"procura/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var supplierColumns = []string{
	"Supplier",
	"Order Count",
	"Spend",
	"Share (%)",
}

var productColumns = []string{
	"Product",
	"Total Quantity",
	"Spend",
}

// Writer wraps csv.Writer for exporting a period report as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteReport writes the full report: a summary block, the per-supplier
// breakdown, and the top product ranking, separated by blank rows.
func (w *Writer) WriteReport(rep *domain.PeriodReport) error {
	summary := [][]string{
		{"Period Start", rep.PeriodStart.Format("2006-01-02")},
		{"Period End", rep.PeriodEnd.Format("2006-01-02")},
		{"Order Count", strconv.Itoa(rep.OrderCount)},
		{"Total Spend", rep.TotalSpend.StringFixed(2)},
		{"Average Spend", rep.AverageSpend.StringFixed(2)},
	}
	for _, row := range summary {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	if err := w.blank(); err != nil {
		return err
	}
	if err := w.csv.Write(supplierColumns); err != nil {
		return err
	}
	for i := range rep.Suppliers {
		s := &rep.Suppliers[i]
		row := []string{
			s.SupplierName,
			strconv.Itoa(s.OrderCount),
			s.Spend.StringFixed(2),
			s.Percentage.StringFixed(2),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	if err := w.blank(); err != nil {
		return err
	}
	if err := w.csv.Write(productColumns); err != nil {
		return err
	}
	for i := range rep.TopProducts {
		p := &rep.TopProducts[i]
		row := []string{
			p.ProductName,
			p.TotalQuantity.String(),
			p.Spend.StringFixed(2),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) blank() error {
	return w.csv.Write([]string{""})
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a company name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_company_name}_purchases_{from}_{to}.csv
func BuildFilename(companyName string, from, to time.Time) string {
	sanitized := SanitizeFilename(companyName)
	return fmt.Sprintf("%s_purchases_%s_%s.csv",
		sanitized, from.Format("2006-01-02"), to.Format("2006-01-02"))
}
