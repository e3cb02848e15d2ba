package dto

import "github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"

// ComplaintStats aggregates complaint counts for the admin dashboard.
type ComplaintStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Urgent     int `json:"urgent"`
	High       int `json:"high"`
}

// LeaveStats aggregates leave request counts.
type LeaveStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

// StatsResponse is the GET /stats payload.
type StatsResponse struct {
	Complaints        ComplaintStats         `json:"complaints"`
	Students          int                    `json:"students"`
	Leaves            LeaveStats             `json:"leaves"`
	CategoryBreakdown []models.CategoryCount `json:"categoryBreakdown"`
}
