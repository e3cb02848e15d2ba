package dto

// CreateAnnouncementRequest is the payload for POST /announcement.
// ExpiresAt is optional and accepts RFC3339 or YYYY-MM-DD.
type CreateAnnouncementRequest struct {
	Title          string `json:"title" validate:"required"`
	Message        string `json:"message" validate:"required"`
	Category       string `json:"category"`
	TargetAudience string `json:"targetAudience"`
	ExpiresAt      string `json:"expiresAt"`
}
