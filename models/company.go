package models

// Company owns job postings.
type Company struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:255;not null" json:"name"`
	BusinessNumber string `gorm:"size:32;uniqueIndex" json:"business_number"`
}
