package views

import (
	"time"

	"github.com/limvik/wanted-pre-onboarding-backend/models"
)

// ApplicationView is the wire shape of an application. Creation requests
// carry only PostID and UserID; the server-assigned fields are omitted from
// the JSON while absent.
type ApplicationView struct {
	PostID    uint       `json:"postId"`
	UserID    uint       `json:"userId"`
	AppliedAt *time.Time `json:"appliedAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Status    string     `json:"status,omitempty"`
}

// ApplicationViewOf maps a stored application to its wire shape.
func ApplicationViewOf(app models.Application) ApplicationView {
	appliedAt := app.AppliedAt
	updatedAt := app.UpdatedAt
	return ApplicationView{
		PostID:    app.PostID,
		UserID:    app.UserID,
		AppliedAt: &appliedAt,
		UpdatedAt: &updatedAt,
		Status:    app.Status.Name,
	}
}
