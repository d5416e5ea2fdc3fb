package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort    string
	GinMode       string
	LogLevel      string
	MongoURI      string
	MongoDatabase string
	RedisURI      string

	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	OTPExpiry         time.Duration
	ResetTokenExpiry  time.Duration

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	S3PublicURL string

	ImageMaxWidth  int
	LocalUploadDir string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	ContactInbox string

	CleanupWorkers     int
	RateLimitPerMinute int

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),

		AccessTokenSecret: getEnvRequired("ACCESS_TOKEN_SECRET"),
		AccessTokenExpiry: parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "24h")),
		OTPExpiry:         parseDuration(getEnv("OTP_EXPIRY", "10m")),
		ResetTokenExpiry:  parseDuration(getEnv("RESET_TOKEN_EXPIRY", "15m")),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:    getEnv("S3_BUCKET", "tour-media"),
		S3UseSSL:    getEnv("S3_USE_SSL", "false") == "true",
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),

		ImageMaxWidth:  parseInt(getEnv("IMAGE_MAX_WIDTH", "1920")),
		LocalUploadDir: getEnv("LOCAL_UPLOAD_DIR", "uploads"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     parseInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@example.com"),
		ContactInbox: getEnv("CONTACT_INBOX", "enquiries@example.com"),

		CleanupWorkers:     parseInt(getEnv("CLEANUP_WORKERS", "2")),
		RateLimitPerMinute: parseInt(getEnv("RATE_LIMIT_PER_MINUTE", "5")),

		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and panics if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, panics on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseInt parses an integer setting, panics on error
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid integer format: %s", s)
	}
	return n
}
