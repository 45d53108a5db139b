package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/limvik/wanted-pre-onboarding-backend/config"
	"github.com/limvik/wanted-pre-onboarding-backend/models"
	"github.com/limvik/wanted-pre-onboarding-backend/services"
	"github.com/limvik/wanted-pre-onboarding-backend/utils"
	"github.com/limvik/wanted-pre-onboarding-backend/views"
)

const (
	postListCachePrefix   = "cache:posts:list:"
	postDetailCachePrefix = "cache:post:detail:"
)

// PostController serves the posting aggregate over HTTP.
type PostController struct {
	posts  *services.PostService
	skills *services.SkillService
}

// NewPostController creates a new PostController instance.
func NewPostController(posts *services.PostService, skills *services.SkillService) *PostController {
	return &PostController{posts: posts, skills: skills}
}

// ListPosts returns all postings, or the keyword search result when a
// search parameter is present. Only the unfiltered list is cached.
func (p *PostController) ListPosts(ctx *gin.Context) {
	search := strings.TrimSpace(ctx.Query("search"))

	if search == "" {
		if b, ok := utils.CacheGetBytes(postListCachePrefix + "all"); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	var posts []models.Post
	var err error
	if search == "" {
		posts, err = p.posts.GetPosts()
	} else {
		posts, err = p.posts.GetPostsByKeyword(search)
	}
	if err != nil {
		utils.FailServer(ctx, err)
		return
	}

	postViews := make([]views.PostView, 0, len(posts))
	for _, post := range posts {
		skills, err := p.skillsOf(post.ID)
		if err != nil {
			utils.FailServer(ctx, err)
			return
		}
		postViews = append(postViews, views.PostListOf(post, skills))
	}

	if search == "" {
		utils.CacheSetJSON(postListCachePrefix+"all", postViews, 0)
	}
	ctx.JSON(http.StatusOK, postViews)
}

// GetPost returns the detail view of a single posting.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := parsePostID(ctx)
	if !ok {
		return
	}

	cacheKey := postDetailCachePrefix + strconv.FormatUint(uint64(id), 10)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	post, err := p.posts.GetPost(id)
	if err != nil {
		respondPostError(ctx, err)
		return
	}

	view, err := p.detailViewOf(post)
	if err != nil {
		utils.FailServer(ctx, err)
		return
	}

	utils.CacheSetJSON(cacheKey, view, 0)
	ctx.JSON(http.StatusOK, view)
}

// CreatePost persists a new posting with its address and skill links.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req views.PostView
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request", "request body is not a valid post")
		return
	}

	// Sanitize before validating, so a description that is only markup is
	// rejected rather than stored empty.
	req.JobDescription = utils.Sanitize(req.JobDescription)
	if !hasText(req.PositionName) || !hasText(req.JobDescription) {
		utils.Fail(ctx, http.StatusUnprocessableEntity, "invalid job posting", services.ErrPostNotValid.Error())
		return
	}

	skills, err := p.resolveSkills(ctx, req.Skills)
	if err != nil {
		return
	}

	post := postOf(req, 0)
	// Requests without a company attribute the posting to the default company.
	if post.CompanyID == 0 {
		post.CompanyID = config.DefaultCompanyID
	}
	created, err := p.posts.CreatePost(&post, skills)
	if err != nil {
		respondPostError(ctx, err)
		return
	}

	view, err := p.detailViewOf(*created)
	if err != nil {
		utils.FailServer(ctx, err)
		return
	}

	p.invalidateCaches()
	ctx.Header("Location", fmt.Sprintf("/api/v1/posts/%d", created.ID))
	ctx.JSON(http.StatusCreated, view)
}

// UpdatePost modifies an existing posting. Skills are reconciled additively:
// requested skills missing from the posting are linked, existing links stay.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parsePostID(ctx)
	if !ok {
		return
	}

	var req views.PostView
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request", "request body is not a valid post")
		return
	}

	req.JobDescription = utils.Sanitize(req.JobDescription)
	if !hasText(req.PositionName) || !hasText(req.JobDescription) {
		utils.Fail(ctx, http.StatusUnprocessableEntity, "invalid job posting", services.ErrPostNotValid.Error())
		return
	}

	skills, err := p.resolveSkills(ctx, req.Skills)
	if err != nil {
		return
	}

	post := postOf(req, id)
	modified, err := p.posts.ModifyPost(&post, skills)
	if err != nil {
		respondPostError(ctx, err)
		return
	}

	view, err := p.detailViewOf(*modified)
	if err != nil {
		utils.FailServer(ctx, err)
		return
	}

	p.invalidateCaches()
	ctx.JSON(http.StatusOK, view)
}

// DeletePost removes a posting and everything hanging off it.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parsePostID(ctx)
	if !ok {
		return
	}

	if err := p.posts.DeletePost(id); err != nil {
		respondPostError(ctx, err)
		return
	}

	p.invalidateCaches()
	ctx.Status(http.StatusNoContent)
}

// detailViewOf assembles the detail shape: current skill set plus the other
// postings of the same company, excluding this one.
func (p *PostController) detailViewOf(post models.Post) (views.PostView, error) {
	skills, err := p.skillsOf(post.ID)
	if err != nil {
		return views.PostView{}, err
	}

	companyPostIDs, err := p.posts.GetPostIDsByCompany(post.CompanyID)
	if err != nil {
		return views.PostView{}, err
	}
	var otherPosts []uint
	for _, postID := range companyPostIDs {
		if postID != post.ID {
			otherPosts = append(otherPosts, postID)
		}
	}

	return views.PostDetailOf(post, skills, otherPosts), nil
}

func (p *PostController) skillsOf(postID uint) ([]models.Skill, error) {
	links, err := p.posts.GetPositionSkills(postID)
	if err != nil {
		return nil, err
	}
	return p.skills.GetSkillsByPosition(links)
}

// resolveSkills maps requested skill names to catalog entries, writing the
// error response itself when a name is unknown.
func (p *PostController) resolveSkills(ctx *gin.Context, skillViews []views.SkillView) ([]models.Skill, error) {
	names := make([]string, 0, len(skillViews))
	for _, sv := range skillViews {
		names = append(names, sv.Name)
	}
	skills, err := p.skills.GetSkillsByNames(names)
	if err != nil {
		var unknown *services.SkillUnknownError
		if errors.As(err, &unknown) {
			utils.Fail(ctx, http.StatusUnprocessableEntity, "invalid job posting", unknown.Error())
		} else {
			utils.FailServer(ctx, err)
		}
		return nil, err
	}
	return skills, nil
}

// invalidateCaches drops every cached posting response. Detail views embed
// otherPostsByCompany, so a write to one posting can change the cached detail
// of its siblings, not just its own.
func (p *PostController) invalidateCaches() {
	utils.InvalidateByPrefix(postListCachePrefix)
	utils.InvalidateByPrefix(postDetailCachePrefix)
}

// postOf maps an inbound view to the persistence model.
func postOf(req views.PostView, id uint) models.Post {
	return models.Post{
		ID:             id,
		PositionName:   strings.TrimSpace(req.PositionName),
		JobDescription: req.JobDescription,
		Reward:         req.Reward,
		CompanyID:      req.Company.ID,
		Address: models.Address{
			PostID: id,
			Street: req.Address.Street,
			City:   req.Address.City,
			State:  req.Address.State,
		},
	}
}

// respondPostError maps service errors on the posting aggregate to Problems.
func respondPostError(ctx *gin.Context, err error) {
	var notFound *services.PostNotFoundError
	if errors.As(err, &notFound) {
		utils.Fail(ctx, http.StatusNotFound, "post not found", notFound.Error())
		return
	}
	utils.FailServer(ctx, err)
}

func parsePostID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request", "post id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
