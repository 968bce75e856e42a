package config

import (
	"os"
	"time"
)

// Config carries every environment-driven setting. It is built once in main
// and passed into component constructors; nothing else reads the process
// environment. Missing upstream credentials degrade to stub behavior rather
// than failing startup.
type Config struct {
	Port string

	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	// Auth
	JWTSecret string

	// Completion API (OpenAI-compatible endpoint; Groq by default)
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	// Diagnosis service
	MLServerURL string

	// Cache
	RedisURL string

	// Upstream call budgets
	CompletionTimeout time.Duration
	DiagnosisTimeout  time.Duration
}

const (
	DefaultLLMBaseURL = "https://api.groq.com/openai/v1"
	DefaultLLMModel   = "llama-3.1-8b-instant"
)

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET_KEY"),

		LLMAPIKey:  os.Getenv("GROQ_API_KEY"),
		LLMBaseURL: getEnv("GROQ_BASE_URL", DefaultLLMBaseURL),
		LLMModel:   getEnv("GROQ_MODEL", DefaultLLMModel),

		MLServerURL: os.Getenv("ML_SERVER_URL"),

		RedisURL: os.Getenv("REDIS_URL"),

		CompletionTimeout: 60 * time.Second,
		DiagnosisTimeout:  30 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
