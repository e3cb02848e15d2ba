package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/dto"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
)

type complaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id string) (*models.Complaint, error)
	List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error)
	Update(ctx context.Context, complaint *models.Complaint) error
}

// ComplaintService covers the complaint lifecycle from filing to closure.
type ComplaintService struct {
	repo      complaintRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewComplaintService constructs a ComplaintService instance.
func NewComplaintService(repo complaintRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ComplaintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ComplaintService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create files a new complaint owned by the caller. The owner comes from
// the token, never from the payload.
func (s *ComplaintService) Create(ctx context.Context, claims *models.JWTClaims, req dto.CreateComplaintRequest) (*models.Complaint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title, category and description are required")
	}

	priority := models.ComplaintPriority(req.Priority)
	if priority == "" {
		priority = models.ComplaintPriorityMedium
	}
	if !priority.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid priority")
	}

	complaint := &models.Complaint{
		StudentID:   claims.UserID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
		RoomNumber:  req.RoomNumber,
		Priority:    priority,
		Status:      models.ComplaintStatusPending,
		Images:      req.Images,
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create complaint")
	}

	s.invalidateStats(ctx)
	s.logger.Info("complaint filed",
		zap.String("complaint_id", complaint.ID),
		zap.String("student_id", complaint.StudentID),
		zap.String("priority", string(complaint.Priority)))
	return complaint, nil
}

// List returns complaints visible to the caller: admins see everything,
// students only their own.
func (s *ComplaintService) List(ctx context.Context, claims *models.JWTClaims) ([]models.Complaint, error) {
	filter := models.ComplaintFilter{}
	if claims.Role != models.RoleAdmin {
		filter.StudentID = claims.UserID
	}

	complaints, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list complaints")
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	return complaints, nil
}

// Filter returns complaints matching the query, scoped to the caller's own
// records unless the caller is an admin.
func (s *ComplaintService) Filter(ctx context.Context, claims *models.JWTClaims, query dto.ComplaintFilterQuery) ([]models.Complaint, error) {
	filter := models.ComplaintFilter{
		Status:   query.Status,
		Category: query.Category,
		Priority: query.Priority,
	}
	if claims.Role != models.RoleAdmin {
		filter.StudentID = claims.UserID
	}

	complaints, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to filter complaints")
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	return complaints, nil
}

// Update applies a partial triage update. Each transition into resolved or
// closed stamps the resolution timestamp; it is never cleared, even if the
// complaint is later reopened.
func (s *ComplaintService) Update(ctx context.Context, id string, req dto.UpdateComplaintRequest) (*models.Complaint, error) {
	complaint, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load complaint")
	}

	if req.Status != nil {
		status := models.ComplaintStatus(*req.Status)
		if !status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid status")
		}
		complaint.Status = status
		if status == models.ComplaintStatusResolved || status == models.ComplaintStatusClosed {
			now := time.Now().UTC()
			complaint.ResolvedAt = &now
		}
	}
	if req.Priority != nil {
		priority := models.ComplaintPriority(*req.Priority)
		if !priority.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid priority")
		}
		complaint.Priority = priority
	}
	if req.AssignedTo != nil {
		complaint.AssignedTo = *req.AssignedTo
	}
	if req.AdminNotes != nil {
		complaint.AdminNotes = *req.AdminNotes
	}

	if err := s.repo.Update(ctx, complaint); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update complaint")
	}

	s.invalidateStats(ctx)
	return complaint, nil
}

func (s *ComplaintService) invalidateStats(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, statsCachePattern); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}
}
