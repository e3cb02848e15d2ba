package models

import "time"

// LeaveStatus tracks approval of an absence request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Valid reports whether the status belongs to the fixed enum.
func (s LeaveStatus) Valid() bool {
	return s == LeaveStatusPending || s == LeaveStatusApproved || s == LeaveStatusRejected
}

// Leave represents a student's request for temporary absence. Date ordering
// is deliberately not enforced; admins see the raw dates.
type Leave struct {
	ID               string      `db:"id" json:"id"`
	StudentID        string      `db:"student_id" json:"studentId"`
	StartDate        time.Time   `db:"start_date" json:"startDate"`
	EndDate          time.Time   `db:"end_date" json:"endDate"`
	Reason           string      `db:"reason" json:"reason"`
	Destination      string      `db:"destination" json:"destination"`
	ContactNumber    string      `db:"contact_number" json:"contactNumber"`
	EmergencyContact string      `db:"emergency_contact" json:"emergencyContact"`
	Status           LeaveStatus `db:"status" json:"status"`
	AdminRemarks     string      `db:"admin_remarks" json:"adminRemarks"`
	CreatedAt        time.Time   `db:"created_at" json:"createdAt"`

	StudentName  string `db:"student_name" json:"studentName,omitempty"`
	StudentEmail string `db:"student_email" json:"studentEmail,omitempty"`
}
