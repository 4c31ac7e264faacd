package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// PipelineAPIKey guards the import route used by the bank-sync job.
	// Empty disables the pipeline routes.
	PipelineAPIKey string

	// Location is used for calendar arithmetic: weekday checks when
	// predicting paydays and month boundaries when rolling budgets over.
	Location *time.Location
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "tally"),
		DBPassword: getEnv("DB_PASSWORD", "tally"),
		DBName:     getEnv("DB_NAME", "tally"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:      getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		PipelineAPIKey: getEnv("PIPELINE_API_KEY", ""),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "15m")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 15m\n", expStr)
		expDur = 15 * time.Minute
	}
	config.JWTExpirationDur = expDur

	tz := getEnv("APP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: unknown APP_TIMEZONE '%s', falling back to UTC\n", tz)
		loc = time.UTC
	}
	config.Location = loc

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
