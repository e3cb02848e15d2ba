package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/dto"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
)

type announcementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	ListActive(ctx context.Context, limit int) ([]models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

const announcementListLimit = 20

// AnnouncementService manages admin broadcasts.
type AnnouncementService struct {
	repo      announcementRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs an AnnouncementService instance.
func NewAnnouncementService(repo announcementRepository, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AnnouncementService{repo: repo, validator: validate, logger: logger}
}

// Create publishes a new announcement authored by the caller.
func (s *AnnouncementService) Create(ctx context.Context, claims *models.JWTClaims, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title and message are required")
	}

	category := models.AnnouncementCategory(req.Category)
	if category == "" {
		category = models.AnnouncementCategoryGeneral
	}
	if !category.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid category")
	}
	audience := models.AnnouncementAudience(req.TargetAudience)
	if audience == "" {
		audience = models.AnnouncementAudienceAll
	}
	if !audience.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid audience")
	}

	announcement := &models.Announcement{
		Title:          req.Title,
		Message:        req.Message,
		Category:       category,
		TargetAudience: audience,
		CreatedBy:      claims.UserID,
	}

	if req.ExpiresAt != "" {
		expiresAt, err := parseDate(req.ExpiresAt)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid expiry date")
		}
		announcement.ExpiresAt = &expiresAt
	}

	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create announcement")
	}

	s.logger.Info("announcement published",
		zap.String("announcement_id", announcement.ID),
		zap.String("category", string(announcement.Category)))
	return announcement, nil
}

// List returns current announcements, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.repo.ListActive(ctx, announcementListLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list announcements")
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	return announcements, nil
}

// Delete removes an announcement by identifier.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete announcement")
	}
	return nil
}
