package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/export"
)

func newReportService(complaints []models.Complaint) *ReportService {
	repo := &mockComplaintRepo{complaints: complaints}
	return NewReportService(repo, export.NewCSVExporter(), export.NewPDFExporter(), zap.NewNop())
}

func sampleReportComplaints() []models.Complaint {
	resolvedAt := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	return []models.Complaint{
		{
			Title:       "Leaking tap",
			StudentName: "John Doe",
			Category:    "plumbing",
			Priority:    models.ComplaintPriorityHigh,
			Status:      models.ComplaintStatusResolved,
			AssignedTo:  "Maintenance Crew",
			CreatedAt:   time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC),
			ResolvedAt:  &resolvedAt,
		},
		{
			Title:       "Broken fan",
			StudentName: "Jane Roe",
			Category:    "electrical",
			Priority:    models.ComplaintPriorityMedium,
			Status:      models.ComplaintStatusPending,
			CreatedAt:   time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC),
		},
	}
}

func TestReportServiceComplaintReportCSV(t *testing.T) {
	svc := newReportService(sampleReportComplaints())

	report, err := svc.ComplaintReport(context.Background(), ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", report.ContentType)
	assert.True(t, strings.HasSuffix(report.FileName, ".csv"))

	body := string(report.Content)
	assert.Contains(t, body, "Title,Student,Category,Priority,Status")
	assert.Contains(t, body, "Leaking tap,John Doe,plumbing,high,resolved,Maintenance Crew,2026-08-18,2026-08-20")
	assert.Contains(t, body, "Broken fan,Jane Roe,electrical,medium,pending,,2026-08-25,")
}

func TestReportServiceComplaintReportPDF(t *testing.T) {
	svc := newReportService(sampleReportComplaints())

	report, err := svc.ComplaintReport(context.Background(), ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", report.ContentType)
	assert.True(t, strings.HasSuffix(report.FileName, ".pdf"))
	assert.True(t, strings.HasPrefix(string(report.Content), "%PDF"))
}

func TestReportServiceComplaintReportBadFormat(t *testing.T) {
	svc := newReportService(nil)

	_, err := svc.ComplaintReport(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
