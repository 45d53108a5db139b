package models

// Skill is a named tag from the skill catalog, e.g. "java" or "react".
type Skill struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
}

// PositionSkill links a posting to a required skill. The (post, skill) pair
// is the primary key, so a posting can carry a given skill at most once.
type PositionSkill struct {
	PostID  uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	SkillID uint `gorm:"primaryKey;autoIncrement:false" json:"skill_id"`
}
