package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort   string
	DatabasePath string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	OpenAITimeout time.Duration

	CORSAllowedOrigins string
	RateLimitAuthRPS   float64
	SignupThrottleTTL  time.Duration
}

var cfg *Config

func Load() *Config {
	cfg = &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./data/data.db"),

		JWTSecret:   getEnv("JWT_SECRET", "hello-saas-default-secret-change-in-production"),
		JWTIssuer:   getEnv("JWT_ISSUER", "hello-saas"),
		JWTAudience: getEnv("JWT_AUDIENCE", "hello-saas-web"),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAITimeout: time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second,

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		SignupThrottleTTL:  time.Duration(getEnvInt("SIGNUP_THROTTLE_TTL_MINUTES", 60)) * time.Minute,
	}
	return cfg
}

func Get() *Config {
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
