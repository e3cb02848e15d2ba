package dto

// CreateLeaveRequest is the payload for POST /leave. Dates arrive as
// strings because the date picker submits plain YYYY-MM-DD values.
type CreateLeaveRequest struct {
	StartDate        string `json:"startDate" validate:"required"`
	EndDate          string `json:"endDate" validate:"required"`
	Reason           string `json:"reason" validate:"required"`
	Destination      string `json:"destination"`
	ContactNumber    string `json:"contactNumber"`
	EmergencyContact string `json:"emergencyContact"`
}

// UpdateLeaveRequest is the partial payload for PUT /leave/:id.
type UpdateLeaveRequest struct {
	Status       *string `json:"status"`
	AdminRemarks *string `json:"adminRemarks"`
}
