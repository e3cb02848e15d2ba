package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
)

// AnnouncementRepository provides persistence for announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = uuid.NewString()
	}
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO announcements (id, title, message, category, target_audience, created_by, expires_at, created_at)
VALUES (:id, :title, :message, :category, :target_audience, :created_by, :expires_at, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, announcement); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

// ListActive returns unexpired announcements, newest first, capped at limit,
// with the creator's name joined in.
func (r *AnnouncementRepository) ListActive(ctx context.Context, limit int) ([]models.Announcement, error) {
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`SELECT a.id, a.title, a.message, a.category, a.target_audience, a.created_by, a.expires_at, a.created_at, u.name AS created_by_name
FROM announcements a
JOIN users u ON u.id = a.created_by
WHERE a.expires_at IS NULL OR a.expires_at >= NOW()
ORDER BY a.created_at DESC
LIMIT %d`, limit)

	var announcements []models.Announcement
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

// Delete removes an announcement. sql.ErrNoRows signals an unknown id.
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete announcement rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
