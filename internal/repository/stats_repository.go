package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
)

// StatsRepository runs the aggregate count queries behind GET /stats.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates the repository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type labelCount struct {
	Label string `db:"label"`
	Count int    `db:"count"`
}

// ComplaintStatusCounts returns complaint counts keyed by status.
func (r *StatsRepository) ComplaintStatusCounts(ctx context.Context) (map[string]int, error) {
	const query = `SELECT status AS label, COUNT(*) AS count FROM complaints GROUP BY status`
	return r.countsByLabel(ctx, query, "complaint status counts")
}

// ComplaintPriorityCounts returns complaint counts keyed by priority.
func (r *StatsRepository) ComplaintPriorityCounts(ctx context.Context) (map[string]int, error) {
	const query = `SELECT priority AS label, COUNT(*) AS count FROM complaints GROUP BY priority`
	return r.countsByLabel(ctx, query, "complaint priority counts")
}

// ComplaintCategoryBreakdown returns per-category complaint counts.
func (r *StatsRepository) ComplaintCategoryBreakdown(ctx context.Context) ([]models.CategoryCount, error) {
	const query = `SELECT category, COUNT(*) AS count FROM complaints GROUP BY category ORDER BY count DESC, category ASC`
	var breakdown []models.CategoryCount
	if err := r.db.SelectContext(ctx, &breakdown, query); err != nil {
		return nil, fmt.Errorf("complaint category breakdown: %w", err)
	}
	return breakdown, nil
}

// CountStudents returns the number of student accounts.
func (r *StatsRepository) CountStudents(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users WHERE role = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, models.RoleStudent); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}

// LeaveStatusCounts returns leave counts keyed by status.
func (r *StatsRepository) LeaveStatusCounts(ctx context.Context) (map[string]int, error) {
	const query = `SELECT status AS label, COUNT(*) AS count FROM leaves GROUP BY status`
	return r.countsByLabel(ctx, query, "leave status counts")
}

func (r *StatsRepository) countsByLabel(ctx context.Context, query, op string) (map[string]int, error) {
	var rows []labelCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}
	return counts, nil
}
