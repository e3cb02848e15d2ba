package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/dto"
	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
	appErrors "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/pkg/errors"
)

const (
	statsCacheKey     = "stats:dashboard"
	statsCachePattern = "stats:*"
)

type statsRepository interface {
	ComplaintStatusCounts(ctx context.Context) (map[string]int, error)
	ComplaintPriorityCounts(ctx context.Context) (map[string]int, error)
	ComplaintCategoryBreakdown(ctx context.Context) ([]models.CategoryCount, error)
	CountStudents(ctx context.Context) (int, error)
	LeaveStatusCounts(ctx context.Context) (map[string]int, error)
}

// StatsService aggregates the admin dashboard numbers, caching the result
// until the next complaint or leave write invalidates it.
type StatsService struct {
	repo   statsRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewStatsService constructs a StatsService instance.
func NewStatsService(repo statsRepository, cache *CacheService, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{repo: repo, cache: cache, logger: logger}
}

// Dashboard returns the aggregated counts for the admin dashboard.
func (s *StatsService) Dashboard(ctx context.Context) (*dto.StatsResponse, error) {
	var cached dto.StatsResponse
	if hit, _ := s.cache.Get(ctx, statsCacheKey, &cached); hit {
		return &cached, nil
	}

	statusCounts, err := s.repo.ComplaintStatusCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count complaints by status")
	}
	priorityCounts, err := s.repo.ComplaintPriorityCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count complaints by priority")
	}
	breakdown, err := s.repo.ComplaintCategoryBreakdown(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to break down complaint categories")
	}
	students, err := s.repo.CountStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	leaveCounts, err := s.repo.LeaveStatusCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count leave requests")
	}

	if breakdown == nil {
		breakdown = []models.CategoryCount{}
	}

	stats := &dto.StatsResponse{
		Complaints: dto.ComplaintStats{
			Total:      sumCounts(statusCounts),
			Pending:    statusCounts[string(models.ComplaintStatusPending)],
			InProgress: statusCounts[string(models.ComplaintStatusInProgress)],
			Resolved:   statusCounts[string(models.ComplaintStatusResolved)],
			Urgent:     priorityCounts[string(models.ComplaintPriorityUrgent)],
			High:       priorityCounts[string(models.ComplaintPriorityHigh)],
		},
		Students: students,
		Leaves: dto.LeaveStats{
			Total:   sumCounts(leaveCounts),
			Pending: leaveCounts[string(models.LeaveStatusPending)],
		},
		CategoryBreakdown: breakdown,
	}

	if err := s.cache.Set(ctx, statsCacheKey, stats, 0); err != nil {
		s.logger.Warn("failed to cache stats", zap.Error(err))
	}

	return stats, nil
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, count := range counts {
		total += count
	}
	return total
}
