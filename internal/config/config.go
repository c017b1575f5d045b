package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	MeiliSearchHost string
	MeiliMasterKey  string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string

	SendgridAPIKey string
	MailFrom       string
	MailFromName   string

	SessionTTL       time.Duration
	RateLimitSession time.Duration
	SyncSchedule     string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		MeiliSearchHost: getEnv("MEILISEARCH_HOST", "http://localhost:7700"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "alumni_tracker"),

		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       getEnv("MAIL_FROM", "noreply@alumni-tracker.local"),
		MailFromName:   getEnv("MAIL_FROM_NAME", "SSU Alumni Tracker"),

		// Reconciliation schedule, cron syntax. Empty disables the job.
		SyncSchedule: getEnv("SYNC_SCHEDULE", "@hourly"),
	}

	var err error
	cfg.SessionTTL, err = parseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.RateLimitSession, err = parseDuration(getEnv("RATE_LIMIT_SESSION", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SESSION: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
