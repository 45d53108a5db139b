package models

import "time"

// Application records a user applying to a posting. The (post, user) pair is
// the primary key: a user may apply to a given posting only once.
// AppliedAt is assigned at creation and never changes afterwards.
type Application struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	AppliedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
	StatusID  uint      `gorm:"not null" json:"status_id"`
	Status    Status    `json:"status"`
}
