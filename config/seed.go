package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/limvik/wanted-pre-onboarding-backend/models"
)

// DefaultCompanyID is the company postings are attributed to when a create
// request carries no company of its own.
const DefaultCompanyID uint = 1

// SeedBaseData inserts the fixed lookup rows and demo records the service
// expects: the application status pipeline, the default company, the skill
// catalog, and demo users. All inserts are idempotent.
func SeedBaseData(db *gorm.DB) error {
	statuses := []models.Status{
		{ID: models.StatusReceived, Name: "received"},
		{ID: 2, Name: "in review"},
		{ID: 3, Name: "interview"},
		{ID: 4, Name: "accepted"},
		{ID: 5, Name: "rejected"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&statuses).Error; err != nil {
		return err
	}

	company := models.Company{ID: DefaultCompanyID, Name: "Wantedlab Inc.", BusinessNumber: "299-86-00021"}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&company).Error; err != nil {
		return err
	}

	skills := []models.Skill{
		{Name: "java"}, {Name: "javascript"}, {Name: "python"}, {Name: "go"},
		{Name: "react"}, {Name: "spring"}, {Name: "django"}, {Name: "node.js"},
		{Name: "mysql"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&skills).Error; err != nil {
		return err
	}

	demo := []struct {
		id       uint
		email    string
		password string
	}{
		{1, "applicant1@example.com", "password1"},
		{2, "applicant2@example.com", "password2"},
	}
	users := make([]models.User, 0, len(demo))
	for _, d := range demo {
		hash, err := hashPassword(d.password)
		if err != nil {
			return err
		}
		users = append(users, models.User{ID: d.id, Email: d.email, PasswordHash: hash})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash seed password: %w", err)
	}
	return string(hash), nil
}
