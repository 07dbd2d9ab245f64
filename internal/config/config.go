// Package config provides configuration structures and validation for the
// application. It handles environment-based configuration for the HTTP
// server, the Postgres store, logging, and the loop classification sets used
// by the dashboard aggregation.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/advance-ledger/internal/domain/shared"
)

// Config holds the complete application configuration. Each field represents
// a subsystem's configuration and is validated during startup.
type Config struct {
	Application    ApplicationConfig
	Logging        LoggingConfig
	Server         ServerConfig
	Postgres       PostgresConfig
	Classification ClassificationConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// PostgresConfig contains PostgreSQL configuration
type PostgresConfig struct {
	URL             string        // Database connection string
	MaxConns        int32         // Maximum number of open connections
	MinConns        int32         // Maximum number of idle connections
	ConnMaxLifetime time.Duration // Maximum lifetime of a connection
	ConnMaxIdleTime time.Duration // Maximum idle time of a connection
	MigrationsPath  string        // Path to migration files
}

// ClassificationConfig contains the comma-separated loop partition sets.
// The dashboard's notion of which bill categories and funding sources belong
// to the personal vs business loop is data, not code.
type ClassificationConfig struct {
	PersonalCategories    string
	BusinessCategories    string
	PersonalIncomeSources string
	ReimbursementSources  string
}

// Sets parses the comma-separated values into the domain classification
func (c ClassificationConfig) Sets() shared.Classification {
	return shared.Classification{
		PersonalCategories:    splitCategories(c.PersonalCategories),
		BusinessCategories:    splitCategories(c.BusinessCategories),
		PersonalIncomeSources: splitSources(c.PersonalIncomeSources),
		ReimbursementSources:  splitSources(c.ReimbursementSources),
	}
}

func splitCategories(raw string) []shared.Category {
	var categories []shared.Category
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			categories = append(categories, shared.Category(part))
		}
	}
	return categories
}

func splitSources(raw string) []shared.Source {
	var sources []shared.Source
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			sources = append(sources, shared.Source(part))
		}
	}
	return sources
}

// validate performs validation of all configuration values, ensuring they
// meet minimum requirements and logical constraints
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate PostgreSQL config
	if c.Postgres.URL == "" {
		validationErrors = append(validationErrors, "POSTGRES_URL is required")
	}
	if c.Postgres.MaxConns <= 0 {
		validationErrors = append(validationErrors, "POSTGRES_MAX_CONNS must be greater than 0")
	}
	if c.Postgres.MinConns <= 0 {
		validationErrors = append(validationErrors, "POSTGRES_MIN_CONNS must be greater than 0")
	}
	if c.Postgres.ConnMaxLifetime <= 0 {
		validationErrors = append(validationErrors, "POSTGRES_MAX_CONN_LIFETIME must be greater than 0")
	}
	if c.Postgres.ConnMaxIdleTime <= 0 {
		validationErrors = append(validationErrors, "POSTGRES_MAX_CONN_IDLE_TIME must be greater than 0")
	}

	// Validate Classification config
	if len(splitCategories(c.Classification.PersonalCategories)) == 0 {
		validationErrors = append(validationErrors, "CLASSIFICATION_PERSONAL_CATEGORIES is required")
	}
	if len(splitCategories(c.Classification.BusinessCategories)) == 0 {
		validationErrors = append(validationErrors, "CLASSIFICATION_BUSINESS_CATEGORIES is required")
	}
	if len(splitSources(c.Classification.PersonalIncomeSources)) == 0 {
		validationErrors = append(validationErrors, "CLASSIFICATION_PERSONAL_INCOME_SOURCES is required")
	}
	if len(splitSources(c.Classification.ReimbursementSources)) == 0 {
		validationErrors = append(validationErrors, "CLASSIFICATION_REIMBURSEMENT_SOURCES is required")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
