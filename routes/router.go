package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/limvik/wanted-pre-onboarding-backend/config"
	"github.com/limvik/wanted-pre-onboarding-backend/controllers"
	"github.com/limvik/wanted-pre-onboarding-backend/middleware"
	"github.com/limvik/wanted-pre-onboarding-backend/services"
	"github.com/limvik/wanted-pre-onboarding-backend/utils"
)

// SetupRouter wires routes, middlewares, services, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	r.Use(middleware.RequestID())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	postService := services.NewPostService(db)
	skillService := services.NewSkillService(db)
	applicationService := services.NewApplicationService(db)

	postController := controllers.NewPostController(postService, skillService)
	applicationController := controllers.NewApplicationController(applicationService)

	api := r.Group("/api/v1")

	postsGroup := api.Group("/posts")
	postsGroup.GET("", postController.ListPosts)
	postsGroup.GET("/:id", postController.GetPost)

	postWrites := postsGroup.Group("")
	postWrites.Use(middleware.RateLimitMiddleware())
	postWrites.POST("", postController.CreatePost)
	postWrites.PATCH("/:id", postController.UpdatePost)
	postWrites.DELETE("/:id", postController.DeletePost)

	applicationsGroup := api.Group("/applications")
	applicationsGroup.Use(middleware.RateLimitMiddleware())
	applicationsGroup.POST("", applicationController.CreateApplication)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Fail(ctx, http.StatusNotFound, "route not found", "no such route: "+ctx.Request.URL.Path)
	})

	return r
}
