package services

import (
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/limvik/wanted-pre-onboarding-backend/models"
)

// PostService owns the posting aggregate: the post row, its address and its
// skill links. Every write runs as one transaction so a failure never leaves
// orphaned rows.
type PostService struct {
	db *gorm.DB
}

// NewPostService creates a PostService backed by the given database.
func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// GetPosts returns all postings, newest first.
func (s *PostService) GetPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("Company").Preload("Address").Order("id DESC").Find(&posts).Error
	return posts, err
}

// GetPostsByKeyword returns the union of postings whose position name or job
// description contains the keyword and postings tagged with a skill exactly
// named after it, deduplicated by post id and ordered newest first.
func (s *PostService) GetPostsByKeyword(keyword string) ([]models.Post, error) {
	posts, err := s.getPostsBySkillName(keyword)
	if err != nil {
		return nil, err
	}

	var textMatches []models.Post
	pattern := "%" + keyword + "%"
	err = s.db.Preload("Company").Preload("Address").
		Where("position_name LIKE ? OR job_description LIKE ?", pattern, pattern).
		Find(&textMatches).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(posts))
	for _, p := range posts {
		seen[p.ID] = true
	}
	for _, p := range textMatches {
		if !seen[p.ID] {
			seen[p.ID] = true
			posts = append(posts, p)
		}
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (s *PostService) getPostsBySkillName(name string) ([]models.Post, error) {
	var skill models.Skill
	if err := s.db.Where("name = ?", name).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Post{}, nil
		}
		return nil, err
	}

	var postIDs []uint
	err := s.db.Model(&models.PositionSkill{}).Where("skill_id = ?", skill.ID).Pluck("post_id", &postIDs).Error
	if err != nil {
		return nil, err
	}
	if len(postIDs) == 0 {
		return []models.Post{}, nil
	}

	var posts []models.Post
	err = s.db.Preload("Company").Preload("Address").Find(&posts, postIDs).Error
	return posts, err
}

// GetPost returns the posting with the given id or a PostNotFoundError.
func (s *PostService) GetPost(id uint) (models.Post, error) {
	var post models.Post
	err := s.db.Preload("Company").Preload("Address").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Post{}, &PostNotFoundError{ID: id}
		}
		return models.Post{}, err
	}
	return post, nil
}

// GetPostIDsByCompany returns the ids of every posting owned by a company,
// in ascending id order.
func (s *PostService) GetPostIDsByCompany(companyID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Post{}).Where("company_id = ?", companyID).Order("id").Pluck("id", &ids).Error
	return ids, err
}

// GetPositionSkills returns the skill links of a posting.
func (s *PostService) GetPositionSkills(postID uint) ([]models.PositionSkill, error) {
	var links []models.PositionSkill
	err := s.db.Where("post_id = ?", postID).Find(&links).Error
	return links, err
}

// CreatePost persists the post, its address keyed by the generated post id,
// and one skill link per given skill, atomically.
func (s *PostService) CreatePost(post *models.Post, skills []models.Skill) (*models.Post, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}

		post.Address.PostID = post.ID
		if err := tx.Create(&post.Address).Error; err != nil {
			return err
		}

		if len(skills) > 0 {
			links := make([]models.PositionSkill, 0, len(skills))
			for _, skill := range skills {
				links = append(links, models.PositionSkill{PostID: post.ID, SkillID: skill.ID})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		return tx.First(&post.Company, post.CompanyID).Error
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ModifyPost updates an existing posting. Skill reconciliation is additive
// only: requested skills the post does not carry yet are linked, but links
// absent from the request are kept as they are.
func (s *PostService) ModifyPost(post *models.Post, skills []models.Skill) (*models.Post, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Post
		if err := tx.First(&existing, post.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &PostNotFoundError{ID: post.ID}
			}
			return err
		}

		// Requests without a company keep the posting with its current owner.
		if post.CompanyID == 0 {
			post.CompanyID = existing.CompanyID
		}

		var existingSkillIDs []uint
		err := tx.Model(&models.PositionSkill{}).Where("post_id = ?", post.ID).Pluck("skill_id", &existingSkillIDs).Error
		if err != nil {
			return err
		}
		linked := make(map[uint]bool, len(existingSkillIDs))
		for _, id := range existingSkillIDs {
			linked[id] = true
		}

		var newLinks []models.PositionSkill
		for _, skill := range skills {
			if !linked[skill.ID] {
				newLinks = append(newLinks, models.PositionSkill{PostID: post.ID, SkillID: skill.ID})
			}
		}

		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}

		post.Address.PostID = post.ID
		if err := tx.Save(&post.Address).Error; err != nil {
			return err
		}

		if len(newLinks) > 0 {
			if err := tx.Create(&newLinks).Error; err != nil {
				return err
			}
		}

		return tx.First(&post.Company, post.CompanyID).Error
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a posting together with its address, skill links and
// applications. A missing id yields a PostNotFoundError.
func (s *PostService) DeletePost(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &PostNotFoundError{ID: id}
			}
			return err
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.PositionSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
