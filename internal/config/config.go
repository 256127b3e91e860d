package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"projecthub/internal/constants"
)

type Config struct {
	ServerAddr     string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	JWTSecret      string
	AccessTokenTTL time.Duration
	GinMode        string
}

func Load() *Config {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		ServerAddr:     getEnv("SERVER_ADDR", ":8000"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "projecthub"),
		DBPassword:     getEnv("DB_PASSWORD", "projecthub"),
		DBName:         getEnv("DB_NAME", "projecthub"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		JWTSecret:      getEnv("JWT_SECRET", "default-secret-key-change-me"),
		AccessTokenTTL: getDurationMinutes("ACCESS_TOKEN_EXPIRE_MINUTES", constants.AccessTokenTTL),
		GinMode:        getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationMinutes(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		return defaultValue
	}
	return time.Duration(minutes) * time.Minute
}
