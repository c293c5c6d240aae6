package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// driverRequirements lists the fields each store driver needs
var driverRequirements = map[string][]string{
	DriverPostgres: {"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"},
	DriverSQLite:   {"SQLITE_PATH"},
	DriverFile:     {"FILE_STORE_PATH"},
}

// ValidateConfig checks if the configuration meets the requirements for the selected store
func ValidateConfig(cfg *Config) error {
	fields, ok := driverRequirements[cfg.StoreDriver]
	if !ok {
		return ValidationError{Field: "STORE_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.StoreDriver)}
	}

	var errors []string

	for _, field := range fields {
		if value := fieldValue(cfg, field); value == "" {
			errors = append(errors, ValidationError{Field: field, Message: "is required"}.Error())
		}
	}

	if cfg.StoreDriver == DriverPostgres && IsProduction() && cfg.DBPassword == "" {
		errors = append(errors, ValidationError{Field: "DB_PASSWORD", Message: "db_password secret is required in production"}.Error())
	}
	if cfg.BatchConcurrency < 1 {
		errors = append(errors, ValidationError{Field: "BATCH_CONCURRENCY", Message: "must be at least 1"}.Error())
	}
	if cfg.CacheTTL < 0 {
		errors = append(errors, ValidationError{Field: "CACHE_TTL", Message: "must not be negative"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}

func fieldValue(cfg *Config, field string) string {
	switch field {
	case "DB_HOST":
		return cfg.DBHost
	case "DB_PORT":
		return cfg.DBPort
	case "DB_USER":
		return cfg.DBUser
	case "DB_NAME":
		return cfg.DBName
	case "SQLITE_PATH":
		return cfg.SQLitePath
	case "FILE_STORE_PATH":
		return cfg.FilePath
	}
	return ""
}
