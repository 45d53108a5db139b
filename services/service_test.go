package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/limvik/wanted-pre-onboarding-backend/config"
	"github.com/limvik/wanted-pre-onboarding-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func skillByName(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()
	skill, err := NewSkillService(db).GetSkillByName(name)
	require.NoError(t, err)
	return skill
}

func newPost(position, description string, reward int64) models.Post {
	return models.Post{
		PositionName:   position,
		JobDescription: description,
		Reward:         reward,
		CompanyID:      config.DefaultCompanyID,
		Address:        models.Address{Street: "518 Teheran-ro", City: "Seoul", State: "KR"},
	}
}
