package config

import (
	"fmt"
	"os"
)

// Config carries every environment-derived setting. It is loaded once in main
// and handed to the pieces that need it; request handlers never read the
// environment themselves.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	ClientOrigin string

	Environment string
	LogLevel    string

	UploadDir      string
	StorageBackend string // "local" or "r2"
	R2             R2Config

	AdminEmail    string
	AdminPassword string
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),

		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		R2: R2Config{
			AccountID:       os.Getenv("CLOUDFLARE_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("CLOUDFLARE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("CLOUDFLARE_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("CLOUDFLARE_BUCKET_NAME"),
			PublicURL:       os.Getenv("CLOUDFLARE_PUBLIC_URL"),
			Region:          "auto",
		},

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "pest_report"),
			getEnv("DB_PORT", "5432"),
		)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
