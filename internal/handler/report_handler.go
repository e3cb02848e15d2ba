package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/service"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/response"
)

// ReportService defines the export the handler depends on.
type ReportService interface {
	ComplaintReport(ctx context.Context, format service.ReportFormat) (*service.Report, error)
}

// ReportHandler streams rendered complaint reports.
type ReportHandler struct {
	service ReportService
}

// NewReportHandler creates a new handler.
func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Complaints godoc
// @Summary Export complaint register
// @Description Download all complaints as CSV or PDF
// @Tags Reports
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/complaints [get]
func (h *ReportHandler) Complaints(c *gin.Context) {
	format := service.ReportFormat(c.DefaultQuery("format", string(service.ReportFormatCSV)))

	report, err := h.service.ComplaintReport(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	c.Data(http.StatusOK, report.ContentType, report.Content)
}
