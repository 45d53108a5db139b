package main

import (
	"github.com/limvik/wanted-pre-onboarding-backend/config"
	"github.com/limvik/wanted-pre-onboarding-backend/models"
	"github.com/limvik/wanted-pre-onboarding-backend/routes"
	"github.com/limvik/wanted-pre-onboarding-backend/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.Company{},
		&models.Post{},
		&models.Address{},
		&models.Skill{},
		&models.PositionSkill{},
		&models.User{},
		&models.Status{},
		&models.Application{},
	)

	if err := config.SeedBaseData(db); err != nil {
		utils.Sugar.Fatalf("seeding base data failed: %v", err)
	}

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
