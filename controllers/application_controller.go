package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/limvik/wanted-pre-onboarding-backend/models"
	"github.com/limvik/wanted-pre-onboarding-backend/services"
	"github.com/limvik/wanted-pre-onboarding-backend/utils"
	"github.com/limvik/wanted-pre-onboarding-backend/views"
)

// ApplicationController serves application creation over HTTP.
type ApplicationController struct {
	applications *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController instance.
func NewApplicationController(applications *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applications: applications}
}

// CreateApplication records a user applying to a posting. The posting must
// exist and the user must not have applied to it before.
func (a *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req views.ApplicationView
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request", "request body is not a valid application")
		return
	}

	app := models.Application{PostID: req.PostID, UserID: req.UserID}
	saved, err := a.applications.SaveApplication(&app)
	if err != nil {
		respondApplicationError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/v1/applications/%d", saved.PostID))
	ctx.JSON(http.StatusCreated, views.ApplicationViewOf(*saved))
}

// respondApplicationError maps service errors on applications to Problems.
func respondApplicationError(ctx *gin.Context, err error) {
	var notFound *services.PostNotFoundError
	if errors.As(err, &notFound) {
		utils.Fail(ctx, http.StatusNotFound, "post not found", notFound.Error())
		return
	}
	var conflict *services.ApplicationConflictError
	if errors.As(err, &conflict) {
		utils.Fail(ctx, http.StatusConflict, "already applied to this post", conflict.Error())
		return
	}
	utils.FailServer(ctx, err)
}
