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

type leaveRepository interface {
	Create(ctx context.Context, leave *models.Leave) error
	GetByID(ctx context.Context, id string) (*models.Leave, error)
	List(ctx context.Context, studentID string) ([]models.Leave, error)
	Update(ctx context.Context, leave *models.Leave) error
}

// LeaveService covers the absence request lifecycle.
type LeaveService struct {
	repo      leaveRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLeaveService constructs a LeaveService instance.
func NewLeaveService(repo leaveRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *LeaveService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &LeaveService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create files a new leave request owned by the caller.
func (s *LeaveService) Create(ctx context.Context, claims *models.JWTClaims, req dto.CreateLeaveRequest) (*models.Leave, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "start date, end date and reason are required")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid start date")
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid end date")
	}

	leave := &models.Leave{
		StudentID:        claims.UserID,
		StartDate:        startDate,
		EndDate:          endDate,
		Reason:           req.Reason,
		Destination:      req.Destination,
		ContactNumber:    req.ContactNumber,
		EmergencyContact: req.EmergencyContact,
		Status:           models.LeaveStatusPending,
	}
	if err := s.repo.Create(ctx, leave); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create leave request")
	}

	s.invalidateStats(ctx)
	s.logger.Info("leave requested",
		zap.String("leave_id", leave.ID),
		zap.String("student_id", leave.StudentID))
	return leave, nil
}

// List returns leave requests visible to the caller: admins see everything,
// students only their own.
func (s *LeaveService) List(ctx context.Context, claims *models.JWTClaims) ([]models.Leave, error) {
	studentID := ""
	if claims.Role != models.RoleAdmin {
		studentID = claims.UserID
	}

	leaves, err := s.repo.List(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list leave requests")
	}
	if leaves == nil {
		leaves = []models.Leave{}
	}
	return leaves, nil
}

// Update reviews a leave request, setting its status and remarks.
func (s *LeaveService) Update(ctx context.Context, id string, req dto.UpdateLeaveRequest) (*models.Leave, error) {
	leave, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "leave request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load leave request")
	}

	if req.Status != nil {
		status := models.LeaveStatus(*req.Status)
		if !status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid status")
		}
		leave.Status = status
	}
	if req.AdminRemarks != nil {
		leave.AdminRemarks = *req.AdminRemarks
	}

	if err := s.repo.Update(ctx, leave); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update leave request")
	}

	s.invalidateStats(ctx)
	return leave, nil
}

func (s *LeaveService) invalidateStats(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, statsCachePattern); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}
}

// parseDate accepts the plain date produced by HTML date inputs as well as
// full RFC3339 timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
