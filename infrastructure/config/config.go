package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Postgres configuration
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables. Database
// connection parameters are required: a missing one is a startup error,
// never a silent default.
func LoadConfig() (*Config, error) {
	port, err := requireEnvInt("POSTGRES_PORT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     port,
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "verify-full"),

		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: os.Getenv("DYNAMODB_TABLE"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadIngestConfig loads the configuration subset needed by the serverless
// ingest function, which talks to DynamoDB only.
func LoadIngestConfig() (*Config, error) {
	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable: os.Getenv("DYNAMODB_TABLE"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DynamoDBTable == "" {
		return nil, fmt.Errorf("DYNAMODB_TABLE is required")
	}

	return cfg, nil
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	required := map[string]string{
		"POSTGRES_HOST":     c.PostgresHost,
		"POSTGRES_USER":     c.PostgresUser,
		"POSTGRES_PASSWORD": c.PostgresPassword,
		"POSTGRES_DB":       c.PostgresDB,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", key)
		}
	}
	return nil
}

// DatabaseURL renders the Postgres connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// requireEnvInt gets a required integer environment variable
func requireEnvInt(key string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return intVal, nil
}
