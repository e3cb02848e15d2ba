package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
)

// ComplaintRepository provides persistence for complaints.
type ComplaintRepository struct {
	db *sqlx.DB
}

// NewComplaintRepository creates the repository.
func NewComplaintRepository(db *sqlx.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

const complaintColumns = `c.id, c.student_id, c.title, c.category, c.description, c.location, c.room_number, c.priority, c.status, c.assigned_to, c.images, c.admin_notes, c.resolved_at, c.created_at, c.updated_at`

// Create inserts a new complaint.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	if complaint.ID == "" {
		complaint.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = now
	}
	complaint.UpdatedAt = now
	if complaint.Images == nil {
		complaint.Images = []string{}
	}

	const query = `INSERT INTO complaints (id, student_id, title, category, description, location, room_number, priority, status, assigned_to, images, admin_notes, resolved_at, created_at, updated_at)
VALUES (:id, :student_id, :title, :category, :description, :location, :room_number, :priority, :status, :assigned_to, :images, :admin_notes, :resolved_at, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, complaint); err != nil {
		return fmt.Errorf("create complaint: %w", err)
	}
	return nil
}

// GetByID returns a complaint by identifier.
func (r *ComplaintRepository) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	query := fmt.Sprintf(`SELECT %s FROM complaints c WHERE c.id = $1 LIMIT 1`, complaintColumns)
	var complaint models.Complaint
	if err := r.db.GetContext(ctx, &complaint, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get complaint: %w", err)
	}
	return &complaint, nil
}

// List returns complaints matching the filter, newest first, with the owning
// student's name and email joined in.
func (r *ComplaintRepository) List(ctx context.Context, filter models.ComplaintFilter) ([]models.Complaint, error) {
	var conditions []string
	var args []interface{}

	if filter.StudentID != "" {
		conditions = append(conditions, fmt.Sprintf("c.student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("c.category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}
	if filter.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("c.priority = $%d", len(args)+1))
		args = append(args, filter.Priority)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s, u.name AS student_name, u.email AS student_email
FROM complaints c
JOIN users u ON u.id = c.student_id%s
ORDER BY c.created_at DESC`, complaintColumns, whereClause)

	var complaints []models.Complaint
	if err := r.db.SelectContext(ctx, &complaints, query, args...); err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// Update persists the mutable triage fields of a complaint.
func (r *ComplaintRepository) Update(ctx context.Context, complaint *models.Complaint) error {
	complaint.UpdatedAt = time.Now().UTC()
	const query = `UPDATE complaints SET status = :status, priority = :priority, assigned_to = :assigned_to, admin_notes = :admin_notes, resolved_at = :resolved_at, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, complaint); err != nil {
		return fmt.Errorf("update complaint: %w", err)
	}
	return nil
}
