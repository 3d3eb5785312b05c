package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Scorer   ScorerConfig
	Quota    QuotaConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port        string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ScorerConfig struct {
	Provider string
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

type QuotaConfig struct {
	MinTextLength int
	// Enforcement selects how the gate interacts with concurrent submits:
	// "advisory" tolerates at most one quota overshoot, "exact" reserves a
	// slot on a Redis counter before scoring.
	Enforcement string
}

type JWTConfig struct {
	Secret     string
	Expiration int
}

const (
	EnforcementAdvisory = "advisory"
	EnforcementExact    = "exact"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION", "3600"))
	minTextLen, _ := strconv.Atoi(getEnv("MIN_TEXT_LENGTH", "100"))
	scorerTimeout, _ := strconv.Atoi(getEnv("SCORER_TIMEOUT_SECONDS", "30"))

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "aiwritecheck"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Scorer: ScorerConfig{
			Provider: getEnv("SCORER_PROVIDER", "placeholder"),
			Endpoint: getEnv("SCORER_ENDPOINT", ""),
			APIKey:   getEnv("SCORER_API_KEY", ""),
			Timeout:  time.Duration(scorerTimeout) * time.Second,
		},
		Quota: QuotaConfig{
			MinTextLength: minTextLen,
			Enforcement:   getEnv("QUOTA_ENFORCEMENT", EnforcementAdvisory),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "change-me-in-production"),
			Expiration: jwtExp,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
