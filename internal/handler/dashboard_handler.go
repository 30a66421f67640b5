package handler

import (
	"github.com/gin-gonic/gin"

	"procura/internal/service"
)

// DashboardHandler handles the dashboard stats endpoint.
type DashboardHandler struct {
	reportService service.ReportService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportService service.ReportService) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// Get handles GET /api/v1/dashboard
// @Summary      Dashboard statistics
// @Description  Order count, total spend, and pending count for the current calendar month
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.DashboardStats}
// @Failure      401 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	stats, err := h.reportService.Dashboard(c.Request.Context(), companyID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
