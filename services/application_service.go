package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/limvik/wanted-pre-onboarding-backend/models"
)

// ApplicationService creates applications. Before the insert it checks, in
// order, that the posting exists and that the (post, user) pair is new.
type ApplicationService struct {
	db *gorm.DB
}

// NewApplicationService creates an ApplicationService backed by the given database.
func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// SaveApplication validates and persists a new application. The server
// assigns both timestamps and the initial "received" status.
func (s *ApplicationService) SaveApplication(app *models.Application) (*models.Application, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.validate(tx, app); err != nil {
			return err
		}

		now := time.Now()
		app.AppliedAt = now
		app.UpdatedAt = now
		app.StatusID = models.StatusReceived

		if err := tx.Omit(clause.Associations).Create(app).Error; err != nil {
			return err
		}
		return tx.First(&app.Status, app.StatusID).Error
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) validate(tx *gorm.DB, app *models.Application) error {
	var postCount int64
	if err := tx.Model(&models.Post{}).Where("id = ?", app.PostID).Count(&postCount).Error; err != nil {
		return err
	}
	if postCount == 0 {
		return &PostNotFoundError{ID: app.PostID}
	}

	var appCount int64
	err := tx.Model(&models.Application{}).
		Where("post_id = ? AND user_id = ?", app.PostID, app.UserID).
		Count(&appCount).Error
	if err != nil {
		return err
	}
	if appCount > 0 {
		return &ApplicationConflictError{PostID: app.PostID, UserID: app.UserID}
	}
	return nil
}
