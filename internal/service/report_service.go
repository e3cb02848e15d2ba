package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/export"
)

// ReportFormat selects the rendering of a complaint report.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

// Report is a rendered export ready to stream to the client.
type Report struct {
	FileName    string
	ContentType string
	Content     []byte
}

type reportComplaintLister interface {
	List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error)
}

// ReportService renders the complaint register as CSV or PDF for offline
// review.
type ReportService struct {
	complaints reportComplaintLister
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
}

// NewReportService constructs a ReportService instance.
func NewReportService(complaints reportComplaintLister, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{complaints: complaints, csv: csv, pdf: pdf, logger: logger}
}

var complaintReportHeaders = []string{
	"Title", "Student", "Category", "Priority", "Status", "Assigned To", "Filed", "Resolved",
}

// ComplaintReport renders all complaints in the requested format.
func (s *ReportService) ComplaintReport(ctx context.Context, format ReportFormat) (*Report, error) {
	if format != ReportFormatCSV && format != ReportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	complaints, err := s.complaints.List(ctx, models.ComplaintFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list complaints")
	}

	dataset := export.Dataset{Headers: complaintReportHeaders, Rows: make([]map[string]string, 0, len(complaints))}
	for _, c := range complaints {
		resolved := ""
		if c.ResolvedAt != nil {
			resolved = c.ResolvedAt.Format("2006-01-02")
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Title":       c.Title,
			"Student":     c.StudentName,
			"Category":    c.Category,
			"Priority":    string(c.Priority),
			"Status":      string(c.Status),
			"Assigned To": c.AssignedTo,
			"Filed":       c.CreatedAt.Format("2006-01-02"),
			"Resolved":    resolved,
		})
	}

	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case ReportFormatCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		return &Report{
			FileName:    fmt.Sprintf("complaints-%s.csv", stamp),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	default:
		content, err := s.pdf.Render(dataset, "Complaint Register")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		return &Report{
			FileName:    fmt.Sprintf("complaints-%s.pdf", stamp),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	}
}
