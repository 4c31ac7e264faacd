package main

import (
	"fmt"
	"os"

	"tally/internal/config"
	"tally/internal/database"
	"tally/internal/logger"

	_ "tally/internal/docs" // Import swagger docs
)

// @title           Tally API
// @version         1.0
// @description     Tally syncs bank transactions, learns how they are categorized, predicts recurring income and bills, and tracks budgets against real spending.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	router := setupRouter(dbManager.DB(), appConfig)

	log.Infof("Starting Tally backend server on port %s (timezone %s)", appConfig.Port, appConfig.Location)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
