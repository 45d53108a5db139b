package models

// StatusReceived is the status every new application starts in.
const StatusReceived uint = 1

// Status is a fixed lookup value describing where an application stands in
// the hiring pipeline.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:32;uniqueIndex;not null" json:"name"`
}
