package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	// StorageBucket is the S3 bucket holding uploaded ticket media.
	StorageBucket = "epos-support-agent"

	// TicketTable is the DynamoDB table holding ticket records.
	TicketTable = "epos-support-agent"
)

type Config struct {
	// Groq API
	GroqAPIKey     string
	GroqAPIBaseURL string

	// AWS
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSSessionToken    string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	// Environment-specific settings file, e.g. .env.dev or .env.production.
	// A missing file is fine; system environment variables still apply.
	envFile := ".env." + getEnv("APP_ENV", "dev")
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, using system environment variables", envFile)
	}

	cfg := &Config{
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		GroqAPIBaseURL: getEnv("GROQ_API_BASE_URL", "https://api.groq.com/openai/v1"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSSessionToken:    getEnv("AWS_SESSION_TOKEN", ""),

		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if c.AWSRegion == "" {
		return fmt.Errorf("AWS_REGION is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
