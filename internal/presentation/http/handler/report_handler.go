package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/thangam/billing-api/internal/application/service"
	"github.com/thangam/billing-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report-related HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales handles the date-range sales report
func (h *ReportHandler) Sales(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(c, "start_date and end_date are required")
		return
	}

	report, err := h.reportService.SumInRange(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report generated successfully", report)
}
