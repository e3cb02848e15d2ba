package dto

// CreateComplaintRequest is the payload for POST /complaint.
type CreateComplaintRequest struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location"`
	RoomNumber  string   `json:"roomNumber"`
	Priority    string   `json:"priority"`
	Images      []string `json:"images"`
}

// UpdateComplaintRequest is the partial payload for PUT /complaint/:id.
// Nil fields are left untouched.
type UpdateComplaintRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *string `json:"assignedTo"`
	AdminNotes *string `json:"adminNotes"`
}

// ComplaintFilterQuery mirrors the /complaints/filter query parameters.
type ComplaintFilterQuery struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Priority string `form:"priority"`
}
