package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/limvik/wanted-pre-onboarding-backend/config"
	"github.com/limvik/wanted-pre-onboarding-backend/models"
	"github.com/limvik/wanted-pre-onboarding-backend/routes"
	"github.com/limvik/wanted-pre-onboarding-backend/utils"
	"github.com/limvik/wanted-pre-onboarding-backend/views"
)

// newTestServer builds the real router on an isolated in-memory database.
// Redis stays unconfigured, so the response cache is disabled in tests.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	config.Set(config.AppConfig{
		AppPort:            "0",
		GinMode:            "test",
		GinPath:            filepath.Join(t.TempDir(), "gin.log"),
		LogLevel:           "error",
		LogMaxSizeMB:       1,
		LogMaxBackups:      1,
		LogMaxAgeDays:      1,
		RateLimitPerMinute: 100000,
		AllowedOrigins:     []string{"*"},
	})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.Post{},
		&models.Address{},
		&models.Skill{},
		&models.PositionSkill{},
		&models.User{},
		&models.Status{},
		&models.Application{},
	))
	require.NoError(t, config.SeedBaseData(db))

	return routes.SetupRouter(db)
}

// newCachedTestServer is newTestServer with the response cache backed by an
// in-process redis, torn down after the test.
func newCachedTestServer(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()

	r := newTestServer(t)

	mr := miniredis.RunT(t)
	utils.SetRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { utils.SetRedis(nil) })
	return r, mr
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postPayload(position, description string, skillNames ...string) map[string]any {
	skills := make([]map[string]string, 0, len(skillNames))
	for _, name := range skillNames {
		skills = append(skills, map[string]string{"name": name})
	}
	return map[string]any{
		"positionName":   position,
		"jobDescription": description,
		"reward":         500000,
		"address":        map[string]string{"street": "518 Teheran-ro", "city": "Seoul", "state": "KR"},
		"skills":         skills,
	}
}

func createPost(t *testing.T, r *gin.Engine, position, description string, skillNames ...string) views.PostView {
	t.Helper()

	w := performJSON(t, r, http.MethodPost, "/api/v1/posts", postPayload(position, description, skillNames...))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view views.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) utils.Problem {
	t.Helper()

	var problem utils.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	return problem
}
