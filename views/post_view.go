package views

import "github.com/limvik/wanted-pre-onboarding-backend/models"

// CompanyView is the wire shape of a posting's company.
type CompanyView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AddressView is the wire shape of a posting's work location.
type AddressView struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
}

// SkillView is the wire shape of a required skill.
type SkillView struct {
	Name string `json:"name"`
}

// PostView is the wire shape of a posting, used both inbound and outbound.
// The list shape leaves JobDescription and OtherPostsByCompany unset; the
// detail shape fills them, and both are dropped from the JSON when empty.
type PostView struct {
	ID                  uint        `json:"id"`
	Company             CompanyView `json:"company"`
	Address             AddressView `json:"address"`
	PositionName        string      `json:"positionName"`
	Reward              int64       `json:"reward"`
	Skills              []SkillView `json:"skills"`
	JobDescription      string      `json:"jobDescription,omitempty"`
	OtherPostsByCompany []uint      `json:"otherPostsByCompany,omitempty"`
}

// PostListOf builds the list shape of a posting.
func PostListOf(post models.Post, skills []models.Skill) PostView {
	return PostView{
		ID:           post.ID,
		Company:      CompanyView{ID: post.Company.ID, Name: post.Company.Name},
		Address:      AddressView{Street: post.Address.Street, City: post.Address.City, State: post.Address.State},
		PositionName: post.PositionName,
		Reward:       post.Reward,
		Skills:       SkillViewsOf(skills),
	}
}

// PostDetailOf builds the detail shape of a posting, including its job
// description and the other postings of the same company.
func PostDetailOf(post models.Post, skills []models.Skill, otherPosts []uint) PostView {
	view := PostListOf(post, skills)
	view.JobDescription = post.JobDescription
	view.OtherPostsByCompany = otherPosts
	return view
}

// SkillViewsOf maps catalog skills to their wire shape.
func SkillViewsOf(skills []models.Skill) []SkillView {
	views := make([]SkillView, 0, len(skills))
	for _, skill := range skills {
		views = append(views, SkillView{Name: skill.Name})
	}
	return views
}
