package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limvik/wanted-pre-onboarding-backend/config"
	"github.com/limvik/wanted-pre-onboarding-backend/models"
)

func TestCreatePostPersistsWholeAggregate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	post := newPost("Backend Developer", "We build hiring infrastructure with go.", 500000)
	created, err := svc.CreatePost(&post, []models.Skill{skillByName(t, db, "go"), skillByName(t, db, "mysql")})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Wantedlab Inc.", created.Company.Name)

	var address models.Address
	require.NoError(t, db.First(&address, created.ID).Error)
	assert.Equal(t, "Seoul", address.City)

	links, err := svc.GetPositionSkills(created.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestGetPostsOrderedByIDDescending(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	var ids []uint
	for i := 1; i <= 3; i++ {
		post := newPost(fmt.Sprintf("Engineer %d", i), "description", 100)
		created, err := svc.CreatePost(&post, nil)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	posts, err := svc.GetPosts()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []uint{ids[2], ids[1], ids[0]}, []uint{posts[0].ID, posts[1].ID, posts[2].ID})
}

func TestGetPostsByKeywordUnionIsDeduplicated(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	textOnly := newPost("Backend Developer", "Looking for a java engineer.", 100)
	_, err := svc.CreatePost(&textOnly, nil)
	require.NoError(t, err)

	tagOnly := newPost("Server Developer", "JVM based backend role.", 100)
	_, err = svc.CreatePost(&tagOnly, []models.Skill{skillByName(t, db, "java")})
	require.NoError(t, err)

	both := newPost("Java Platform Engineer", "We love java here.", 100)
	_, err = svc.CreatePost(&both, []models.Skill{skillByName(t, db, "java")})
	require.NoError(t, err)

	unrelated := newPost("Frontend Developer", "React position.", 100)
	_, err = svc.CreatePost(&unrelated, []models.Skill{skillByName(t, db, "react")})
	require.NoError(t, err)

	posts, err := svc.GetPostsByKeyword("java")
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// newest first, every match exactly once
	assert.Equal(t, both.ID, posts[0].ID)
	assert.Equal(t, tagOnly.ID, posts[1].ID)
	assert.Equal(t, textOnly.ID, posts[2].ID)
}

func TestGetPostNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	_, err := svc.GetPost(999999)
	var notFound *PostNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(999999), notFound.ID)
	assert.Contains(t, err.Error(), "999999")
}

func TestModifyPostAddsOnlyMissingSkills(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	skills := NewSkillService(db)

	post := newPost("Backend Developer", "Spring based role.", 100)
	created, err := svc.CreatePost(&post, []models.Skill{skillByName(t, db, "spring")})
	require.NoError(t, err)

	update := newPost("Backend Developer", "Spring and frontend role.", 150)
	update.ID = created.ID
	_, err = svc.ModifyPost(&update, []models.Skill{
		skillByName(t, db, "spring"),
		skillByName(t, db, "javascript"),
	})
	require.NoError(t, err)

	links, err := svc.GetPositionSkills(created.ID)
	require.NoError(t, err)
	linked, err := skills.GetSkillsByPosition(links)
	require.NoError(t, err)

	names := make([]string, 0, len(linked))
	for _, s := range linked {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"spring", "javascript"}, names)
}

func TestModifyPostNeverRemovesLinkedSkills(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	post := newPost("Backend Developer", "Spring based role.", 100)
	created, err := svc.CreatePost(&post, []models.Skill{skillByName(t, db, "spring")})
	require.NoError(t, err)

	// The request drops "spring" entirely, but reconciliation is additive only.
	update := newPost("Backend Developer", "Now also javascript.", 100)
	update.ID = created.ID
	_, err = svc.ModifyPost(&update, []models.Skill{skillByName(t, db, "javascript")})
	require.NoError(t, err)

	links, err := svc.GetPositionSkills(created.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestModifyPostNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	update := newPost("Ghost", "does not exist", 100)
	update.ID = 424242
	_, err := svc.ModifyPost(&update, nil)

	var notFound *PostNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(424242), notFound.ID)
}

func TestDeletePostCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	post := newPost("Backend Developer", "description", 100)
	created, err := svc.CreatePost(&post, []models.Skill{skillByName(t, db, "go")})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(created.ID))

	var addressCount, linkCount int64
	require.NoError(t, db.Model(&models.Address{}).Where("post_id = ?", created.ID).Count(&addressCount).Error)
	require.NoError(t, db.Model(&models.PositionSkill{}).Where("post_id = ?", created.ID).Count(&linkCount).Error)
	assert.Zero(t, addressCount)
	assert.Zero(t, linkCount)

	err = svc.DeletePost(created.ID)
	var notFound *PostNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetPostIDsByCompany(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)

	var ids []uint
	for i := 0; i < 3; i++ {
		post := newPost("Engineer", "description", 100)
		created, err := svc.CreatePost(&post, nil)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	got, err := svc.GetPostIDsByCompany(config.DefaultCompanyID)
	require.NoError(t, err)
	assert.Equal(t, ids, got) // ascending id order
}
