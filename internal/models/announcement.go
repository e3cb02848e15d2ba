package models

import "time"

// AnnouncementCategory labels the kind of broadcast.
type AnnouncementCategory string

const (
	AnnouncementCategoryGeneral     AnnouncementCategory = "general"
	AnnouncementCategoryUrgent      AnnouncementCategory = "urgent"
	AnnouncementCategoryEvent       AnnouncementCategory = "event"
	AnnouncementCategoryMaintenance AnnouncementCategory = "maintenance"
)

// Valid reports whether the category belongs to the fixed enum.
func (c AnnouncementCategory) Valid() bool {
	switch c {
	case AnnouncementCategoryGeneral, AnnouncementCategoryUrgent,
		AnnouncementCategoryEvent, AnnouncementCategoryMaintenance:
		return true
	}
	return false
}

// AnnouncementAudience defines who an announcement addresses. Attribution
// only; it does not gate visibility.
type AnnouncementAudience string

const (
	AnnouncementAudienceAll      AnnouncementAudience = "all"
	AnnouncementAudienceStudents AnnouncementAudience = "students"
	AnnouncementAudienceStaff    AnnouncementAudience = "staff"
)

// Valid reports whether the audience belongs to the fixed enum.
func (a AnnouncementAudience) Valid() bool {
	return a == AnnouncementAudienceAll || a == AnnouncementAudienceStudents || a == AnnouncementAudienceStaff
}

// Announcement is an admin-authored broadcast with optional expiry.
// CreatedByName is joined from users on list queries.
type Announcement struct {
	ID             string               `db:"id" json:"id"`
	Title          string               `db:"title" json:"title"`
	Message        string               `db:"message" json:"message"`
	Category       AnnouncementCategory `db:"category" json:"category"`
	TargetAudience AnnouncementAudience `db:"target_audience" json:"targetAudience"`
	CreatedBy      string               `db:"created_by" json:"createdBy"`
	ExpiresAt      *time.Time           `db:"expires_at" json:"expiresAt,omitempty"`
	CreatedAt      time.Time            `db:"created_at" json:"createdAt"`

	CreatedByName string `db:"created_by_name" json:"createdByName,omitempty"`
}
