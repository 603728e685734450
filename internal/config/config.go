package config

import (
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port         string
	Env          string
	DatabaseURL  string
	JWTSecret    string
	TokenTTL     time.Duration
	CORSOrigin   string
	RevenueDelay time.Duration
}

// Load reads configuration from the environment. Every value has a demo-safe
// default so the server starts with nothing set.
func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		Env:          getenv("APP_ENV", "development"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    getenv("JWT_SECRET", "demo-secret-change-me"),
		TokenTTL:     time.Duration(getenvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
		CORSOrigin:   getenv("CORS_ORIGIN", "http://localhost:3000"),
		RevenueDelay: time.Duration(getenvInt("REVENUE_DELAY_MS", 3000)) * time.Millisecond,
	}
}

// OpenDB connects to postgres. Only called when DATABASE_URL is set.
func OpenDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
