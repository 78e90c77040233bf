package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime configuration, loaded from a .env file with
// environment variables as fallback.
type Config struct {
	Port              string
	DataDir           string
	JWTSecret         string
	TokenExpiry       time.Duration
	AdminEmail        string
	AdminPasswordHash string
	AllowedOrigin     string
	DigestCron        string

	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	expiryHours, err := strconv.Atoi(getEnv("TOKEN_EXPIRY_HOURS", "72"))
	if err != nil {
		expiryHours = 72
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DataDir:           getEnv("DATA_DIR", "./data"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenExpiry:       time.Duration(expiryHours) * time.Hour,
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		DigestCron:        getEnv("DIGEST_CRON", "0 8 * * *"),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPSender:        getEnv("SMTP_SENDER", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
