package models

// Post represents a job posting published by a company.
type Post struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	PositionName   string  `gorm:"size:255;not null" json:"position_name"`
	JobDescription string  `gorm:"type:mediumtext;not null" json:"job_description"`
	Reward         int64   `gorm:"not null" json:"reward"`
	CompanyID      uint    `gorm:"index;not null" json:"company_id"`
	Company        Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"company"`
	Address        Address `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"address"`
}
