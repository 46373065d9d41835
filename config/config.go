package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go-talent-backend/pkg/storage"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	LogLevel    string
	// JWT
	JWTSecretKey  string
	JWTTTLMinutes int
	// SecureCookies marks the auth_token cookie Secure (HTTPS only)
	SecureCookies bool
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitUploadThreshold int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
	// Upload limits
	MaxUploadBytes int64
	// Blob storage for profile pictures
	Storage StorageConfig
}

// StorageConfig selects and configures the blob store backend.
type StorageConfig struct {
	Driver   string           `env:"STORAGE_DRIVER" envDefault:"local"`
	LocalDir string           `env:"STORAGE_LOCAL_DIR" envDefault:"./file_uploads"`
	S3       storage.S3Config `envPrefix:"S3_"`
}

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

func LoadConfig() (*Config, error) {
	// Load .env file (only present locally; ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		// JWT
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		SecureCookies: getEnvBool("SECURE_COOKIES", true),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),  // 10 uploads per window
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),   // 10 login attempts per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		MaxUploadBytes:           int64(getEnvInt("MAX_UPLOAD_BYTES", 5<<20)),   // 5 MiB
	}

	if err := env.Parse(&cfg.Storage); err != nil {
		return nil, fmt.Errorf("parse storage config: %w", err)
	}

	switch cfg.Storage.Driver {
	case StorageDriverLocal:
	case StorageDriverS3:
		if cfg.Storage.S3.Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory counters.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
