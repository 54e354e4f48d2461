package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI     string
	DatabaseName string

	HTTPAddr       string
	RequestTimeout time.Duration
	ConnectTimeout time.Duration

	LogLevel string
	GinMode  string

	// EnvFileErr is set when the env file could not be read. Callers log it once a logger exists.
	EnvFileErr error
}

// Load reads the optional env file and then the process environment.
// A missing env file is not an error; variables may come from the shell.
func Load(envFile string) (*Config, error) {
	cfg := &Config{}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			cfg.EnvFileErr = err
		}
	}

	loadEnvString(&cfg.MongoURI, "MONGO_URI", "mongodb://127.0.0.1:27017")
	loadEnvString(&cfg.DatabaseName, "DATABASE_NAME", "my_library_db")
	loadEnvString(&cfg.HTTPAddr, "HTTP_ADDR", ":8007")
	loadEnvString(&cfg.LogLevel, "LOG_LEVEL", "info")
	loadEnvString(&cfg.GinMode, "GIN_MODE", "release")

	if err := loadEnvDuration(&cfg.RequestTimeout, "REQUEST_TIMEOUT", 20*time.Second); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&cfg.ConnectTimeout, "CONNECT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvString(target *string, key, defaultValue string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %w", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var problems []string

	if c.MongoURI == "" {
		problems = append(problems, "MONGO_URI must not be empty")
	}
	if c.DatabaseName == "" {
		problems = append(problems, "DATABASE_NAME must not be empty")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}
	if c.ConnectTimeout <= 0 {
		problems = append(problems, "CONNECT_TIMEOUT must be positive")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	validGinModes := []string{"debug", "release", "test"}
	if !contains(validGinModes, c.GinMode) {
		problems = append(problems, fmt.Sprintf("GIN_MODE must be one of: %s", strings.Join(validGinModes, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
