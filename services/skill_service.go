package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/limvik/wanted-pre-onboarding-backend/models"
)

// SkillService looks up skills from the catalog.
type SkillService struct {
	db *gorm.DB
}

// NewSkillService creates a SkillService backed by the given database.
func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// GetSkillByName returns the skill with the exact given name.
// An unregistered name yields a SkillUnknownError.
func (s *SkillService) GetSkillByName(name string) (models.Skill, error) {
	var skill models.Skill
	if err := s.db.Where("name = ?", name).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Skill{}, &SkillUnknownError{Name: name}
		}
		return models.Skill{}, err
	}
	return skill, nil
}

// GetSkillsByNames resolves every requested name against the catalog,
// failing on the first unknown one.
func (s *SkillService) GetSkillsByNames(names []string) ([]models.Skill, error) {
	skills := make([]models.Skill, 0, len(names))
	for _, name := range names {
		skill, err := s.GetSkillByName(name)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

// GetSkillsByPosition bulk-loads the skills referenced by a posting's links.
func (s *SkillService) GetSkillsByPosition(links []models.PositionSkill) ([]models.Skill, error) {
	if len(links) == 0 {
		return []models.Skill{}, nil
	}
	ids := make([]uint, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.SkillID)
	}
	var skills []models.Skill
	if err := s.db.Find(&skills, ids).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
