package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"procura/internal/csvexport"
	"procura/internal/service"
)

// ReportHandler handles period report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parsePeriod extracts the required from/to date range from query params.
// The to date is extended to the end of its day so the range is inclusive.
func parsePeriod(c *gin.Context) (from, to time.Time, err error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("'from' and 'to' query parameters are required")
	}

	from, err = time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
	}
	to, err = time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
	}

	to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return from, to, nil
}

// Period handles GET /api/v1/reports/period
// @Summary      Period purchase report
// @Description  Spend totals, per-supplier breakdown with percentages, and top products for a date range
// @Tags         reports
// @Produce      json
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success      200 {object} APIResponse{data=domain.PeriodReport}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/period [get]
func (h *ReportHandler) Period(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.reportService.PeriodReport(c.Request.Context(), companyID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// ExportCSV handles GET /api/v1/reports/period/export
// @Summary      Export period report as CSV
// @Description  Streams the period report as a UTF-8 BOM prefixed CSV download
// @Tags         reports
// @Produce      text/csv
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success      200 {string} string "CSV content"
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/period/export [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.reportService.PeriodReport(c.Request.Context(), companyID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(companyID.String(), from, to)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteReport(report); err != nil {
		return
	}
	w.Flush()
}

// Document handles GET /api/v1/reports/period/document
// @Summary      Download period report document
// @Description  Renders the period report as an XLSX workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success      200 {string} string "XLSX content"
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/period/document [get]
func (h *ReportHandler) Document(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	from, to, err := parsePeriod(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	rendered, err := h.reportService.RenderDocument(c.Request.Context(), companyID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, rendered.FileName))
	if rendered.ArchiveURL != "" {
		c.Header("X-Archive-Location", rendered.ArchiveURL)
	}
	c.Data(http.StatusOK, rendered.ContentType, rendered.Data)
}
