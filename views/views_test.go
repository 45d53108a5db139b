package views

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limvik/wanted-pre-onboarding-backend/models"
)

func TestPostDetailViewRoundTrip(t *testing.T) {
	view := PostView{
		ID:                  4,
		Company:             CompanyView{ID: 1, Name: "Wantedlab Inc."},
		Address:             AddressView{Street: "518 Teheran-ro", City: "Seoul", State: "KR"},
		PositionName:        "Backend Developer",
		Reward:              1500000,
		Skills:              []SkillView{{Name: "java"}, {Name: "spring"}},
		JobDescription:      "We build hiring infrastructure.",
		OtherPostsByCompany: []uint{1, 2, 3},
	}

	b, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded PostView
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, view, decoded)
}

func TestPostListViewOmitsDetailOnlyFields(t *testing.T) {
	post := models.Post{
		ID:             7,
		PositionName:   "Backend Developer",
		JobDescription: "hidden in list shape",
		Reward:         100,
		Company:        models.Company{ID: 1, Name: "Wantedlab Inc."},
		Address:        models.Address{Street: "s", City: "c", State: "st"},
	}

	b, err := json.Marshal(PostListOf(post, nil))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "jobDescription")
	assert.NotContains(t, raw, "otherPostsByCompany")
	assert.Contains(t, raw, "positionName")
	assert.Contains(t, raw, "skills")
}

func TestPostDetailViewOmitsEmptyOptionalFields(t *testing.T) {
	post := models.Post{ID: 7, Reward: 100}

	b, err := json.Marshal(PostDetailOf(post, nil, nil))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "jobDescription")
	assert.NotContains(t, raw, "otherPostsByCompany")
}

func TestApplicationViewRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second).UTC()
	app := models.Application{
		PostID:    3,
		UserID:    9,
		AppliedAt: now,
		UpdatedAt: now,
		Status:    models.Status{ID: 1, Name: "received"},
	}

	b, err := json.Marshal(ApplicationViewOf(app))
	require.NoError(t, err)

	var decoded ApplicationView
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, uint(3), decoded.PostID)
	assert.Equal(t, uint(9), decoded.UserID)
	assert.Equal(t, "received", decoded.Status)
	require.NotNil(t, decoded.AppliedAt)
	assert.True(t, decoded.AppliedAt.Equal(now))
}

func TestApplicationRequestOmitsServerAssignedFields(t *testing.T) {
	b, err := json.Marshal(ApplicationView{PostID: 3, UserID: 9})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "appliedAt")
	assert.NotContains(t, raw, "updatedAt")
	assert.NotContains(t, raw, "status")
}
