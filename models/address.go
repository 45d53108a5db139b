package models

// Address is the work location of a posting. It shares the post's id and
// lives and dies with its post.
type Address struct {
	PostID uint   `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	Street string `gorm:"size:255" json:"street"`
	City   string `gorm:"size:64" json:"city"`
	State  string `gorm:"size:64" json:"state"`
}
