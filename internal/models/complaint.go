package models

import (
	"time"

	"github.com/lib/pq"
)

// ComplaintStatus tracks the lifecycle of a maintenance complaint.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
	ComplaintStatusClosed     ComplaintStatus = "closed"
	ComplaintStatusRejected   ComplaintStatus = "rejected"
)

// Valid reports whether the status belongs to the fixed enum. Transitions
// themselves are unrestricted.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusInProgress, ComplaintStatusResolved,
		ComplaintStatusClosed, ComplaintStatusRejected:
		return true
	}
	return false
}

// ComplaintPriority orders triage urgency.
type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "low"
	ComplaintPriorityMedium ComplaintPriority = "medium"
	ComplaintPriorityHigh   ComplaintPriority = "high"
	ComplaintPriorityUrgent ComplaintPriority = "urgent"
)

// Valid reports whether the priority belongs to the fixed enum.
func (p ComplaintPriority) Valid() bool {
	switch p {
	case ComplaintPriorityLow, ComplaintPriorityMedium, ComplaintPriorityHigh, ComplaintPriorityUrgent:
		return true
	}
	return false
}

// Complaint represents a student-filed maintenance report. StudentName and
// StudentEmail are populated from the users join on list queries.
type Complaint struct {
	ID          string            `db:"id" json:"id"`
	StudentID   string            `db:"student_id" json:"studentId"`
	Title       string            `db:"title" json:"title"`
	Category    string            `db:"category" json:"category"`
	Description string            `db:"description" json:"description"`
	Location    string            `db:"location" json:"location"`
	RoomNumber  string            `db:"room_number" json:"roomNumber"`
	Priority    ComplaintPriority `db:"priority" json:"priority"`
	Status      ComplaintStatus   `db:"status" json:"status"`
	AssignedTo  string            `db:"assigned_to" json:"assignedTo"`
	Images      pq.StringArray    `db:"images" json:"images"`
	AdminNotes  string            `db:"admin_notes" json:"adminNotes"`
	ResolvedAt  *time.Time        `db:"resolved_at" json:"resolvedAt,omitempty"`
	CreatedAt   time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updatedAt"`

	StudentName  string `db:"student_name" json:"studentName,omitempty"`
	StudentEmail string `db:"student_email" json:"studentEmail,omitempty"`
}

// ComplaintFilter captures listing criteria. An empty StudentID means no
// ownership scoping (admin view).
type ComplaintFilter struct {
	StudentID string
	Status    string
	Category  string
	Priority  string
}

// CategoryCount is one row of the per-category complaint breakdown.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
}
