package xlsxreport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"procura/internal/domain"
	"procura/internal/port"
)

const sheetName = "Purchase Report"

// renderer produces an XLSX workbook from a computed period report.
// It only formats values; every number comes from the report as-is.
type renderer struct{}

// NewRenderer creates the XLSX report renderer.
func NewRenderer() port.ReportRenderer {
	return &renderer{}
}

func (r *renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *renderer) FileExtension() string {
	return "xlsx"
}

func (r *renderer) Render(rep *domain.PeriodReport, company *domain.Company) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsxreport.Render: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsxreport.Render: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsxreport.Render: %w", err)
	}

	set := func(cell string, value interface{}) {
		_ = f.SetCellValue(sheetName, cell, value)
	}

	// Header block
	set("A1", company.Name)
	_ = f.SetCellStyle(sheetName, "A1", "A1", bold)
	set("A2", "Purchase Report")
	set("A3", fmt.Sprintf("%s to %s",
		rep.PeriodStart.Format("2006-01-02"), rep.PeriodEnd.Format("2006-01-02")))

	// Summary block
	set("A5", "Order Count")
	set("B5", rep.OrderCount)
	set("A6", "Total Spend")
	set("B6", rep.TotalSpend.StringFixed(2))
	set("A7", "Average Spend")
	set("B7", rep.AverageSpend.StringFixed(2))

	// Supplier breakdown
	row := 9
	set(fmt.Sprintf("A%d", row), "Supplier")
	set(fmt.Sprintf("B%d", row), "Order Count")
	set(fmt.Sprintf("C%d", row), "Spend")
	set(fmt.Sprintf("D%d", row), "Share (%)")
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), bold)
	for i := range rep.Suppliers {
		s := &rep.Suppliers[i]
		row++
		set(fmt.Sprintf("A%d", row), s.SupplierName)
		set(fmt.Sprintf("B%d", row), s.OrderCount)
		set(fmt.Sprintf("C%d", row), s.Spend.StringFixed(2))
		set(fmt.Sprintf("D%d", row), s.Percentage.StringFixed(2))
	}

	// Top products
	row += 2
	set(fmt.Sprintf("A%d", row), "Product")
	set(fmt.Sprintf("B%d", row), "Total Quantity")
	set(fmt.Sprintf("C%d", row), "Spend")
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), bold)
	for i := range rep.TopProducts {
		p := &rep.TopProducts[i]
		row++
		set(fmt.Sprintf("A%d", row), p.ProductName)
		set(fmt.Sprintf("B%d", row), p.TotalQuantity.String())
		set(fmt.Sprintf("C%d", row), p.Spend.StringFixed(2))
	}

	_ = f.SetColWidth(sheetName, "A", "A", 32)
	_ = f.SetColWidth(sheetName, "B", "D", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsxreport.Render: %w", err)
	}
	return buf.Bytes(), nil
}
