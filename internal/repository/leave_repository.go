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

// LeaveRepository provides persistence for leave requests.
type LeaveRepository struct {
	db *sqlx.DB
}

// NewLeaveRepository creates the repository.
func NewLeaveRepository(db *sqlx.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

const leaveColumns = `l.id, l.student_id, l.start_date, l.end_date, l.reason, l.destination, l.contact_number, l.emergency_contact, l.status, l.admin_remarks, l.created_at`

// Create inserts a new leave request.
func (r *LeaveRepository) Create(ctx context.Context, leave *models.Leave) error {
	if leave.ID == "" {
		leave.ID = uuid.NewString()
	}
	if leave.CreatedAt.IsZero() {
		leave.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO leaves (id, student_id, start_date, end_date, reason, destination, contact_number, emergency_contact, status, admin_remarks, created_at)
VALUES (:id, :student_id, :start_date, :end_date, :reason, :destination, :contact_number, :emergency_contact, :status, :admin_remarks, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, leave); err != nil {
		return fmt.Errorf("create leave: %w", err)
	}
	return nil
}

// GetByID returns a leave request by identifier.
func (r *LeaveRepository) GetByID(ctx context.Context, id string) (*models.Leave, error) {
	query := fmt.Sprintf(`SELECT %s FROM leaves l WHERE l.id = $1 LIMIT 1`, leaveColumns)
	var leave models.Leave
	if err := r.db.GetContext(ctx, &leave, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get leave: %w", err)
	}
	return &leave, nil
}

// List returns leave requests, newest first, scoped to a student when
// studentID is non-empty, with the owner's name and email joined in.
func (r *LeaveRepository) List(ctx context.Context, studentID string) ([]models.Leave, error) {
	query := fmt.Sprintf(`SELECT %s, u.name AS student_name, u.email AS student_email
FROM leaves l
JOIN users u ON u.id = l.student_id`, leaveColumns)
	var args []interface{}
	if studentID != "" {
		query += " WHERE l.student_id = $1"
		args = append(args, studentID)
	}
	query += " ORDER BY l.created_at DESC"

	var leaves []models.Leave
	if err := r.db.SelectContext(ctx, &leaves, query, args...); err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	return leaves, nil
}

// Update persists the mutable review fields of a leave request.
func (r *LeaveRepository) Update(ctx context.Context, leave *models.Leave) error {
	const query = `UPDATE leaves SET status = :status, admin_remarks = :admin_remarks WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, leave); err != nil {
		return fmt.Errorf("update leave: %w", err)
	}
	return nil
}
