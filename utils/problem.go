package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Problem is the uniform error body for every failed API request.
type Problem struct {
	Title  string   `json:"title"`
	Status int      `json:"status"`
	Errors []string `json:"errors"`
}

// Fail writes a Problem response with the given status, title and messages.
func Fail(ctx *gin.Context, status int, title string, errs ...string) {
	ctx.AbortWithStatusJSON(status, Problem{
		Title:  title,
		Status: status,
		Errors: errs,
	})
}

// FailServer writes a generic 500 Problem and logs the underlying error.
func FailServer(ctx *gin.Context, err error) {
	if Sugar != nil {
		Sugar.Errorw("internal server error",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"error", err,
		)
	}
	Fail(ctx, http.StatusInternalServerError, "internal server error", "an unexpected error occurred")
}
