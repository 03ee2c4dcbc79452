package config

import (
	"os"
	"strconv"

	"laborlens/internal/errors"
)

// Data source kinds accepted by DATA_SOURCE.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceDemo     = "demo"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	UI       UIConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig selects and parameterizes the observation source
type DataConfig struct {
	Source string
	File   string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// UIConfig holds dashboard presentation defaults
type UIConfig struct {
	// DefaultYearFloor is the preferred lower bound of the year range
	// selector. Applied only when it falls inside the observed span.
	DefaultYearFloor int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   loadServerConfig(),
		Data:     loadDataConfig(),
		Database: loadDatabaseConfig(),
		UI:       loadUIConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		Source: getEnvOrDefault("DATA_SOURCE", SourceFile),
		File:   getEnvOrDefault("DATA_FILE", "BLS_data.csv"),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:          os.Getenv("DATABASE_URL"),
		MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 8),
		MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 4),
	}
}

func loadUIConfig() UIConfig {
	return UIConfig{
		DefaultYearFloor: getEnvIntOrDefault("DEFAULT_YEAR_FLOOR", 2019),
	}
}

func validateConfig(config *Config) error {
	switch config.Data.Source {
	case SourceFile:
		if config.Data.File == "" {
			return errors.ConfigInvalid("DATA_FILE is required when DATA_SOURCE=file")
		}
	case SourcePostgres:
		if config.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
	case SourceDemo:
		// synthetic source needs no parameters
	default:
		return errors.ConfigInvalid("DATA_SOURCE must be one of file, postgres, demo")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
