// Package config provides configuration management for the inventory tool.
package config

import "time"

// Config is the root configuration structure for the inventory tool.
type Config struct {
	Source     SourceConfig     `mapstructure:"source"`
	Roles      []string         `mapstructure:"roles" validate:"min=1,unique,dive,required"`
	Connection ConnectionConfig `mapstructure:"connection"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	HTTP       HTTPConfig       `mapstructure:"http"`
}

// Source types.
const (
	SourceFile = "file"
	SourceN9E  = "n9e"
)

// SourceConfig selects where the machine list comes from.
type SourceConfig struct {
	Type string           `mapstructure:"type" validate:"oneof=file n9e"`
	File FileSourceConfig `mapstructure:"file"`
	N9E  N9EConfig        `mapstructure:"n9e"`
}

// FileSourceConfig contains configuration for the tab-separated machine list.
type FileSourceConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// N9EConfig contains configuration for N9E (Nightingale) API.
type N9EConfig struct {
	Endpoint    string        `mapstructure:"endpoint" validate:"omitempty,url"`
	Token       string        `mapstructure:"token"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Queries     []string      `mapstructure:"queries"`     // Target filter queries (e.g., "items=hpc"), merged in order
	Concurrency int           `mapstructure:"concurrency" validate:"gte=1,lte=32"`
}

// ConnectionConfig holds the SSH connection variables written to [all:vars].
type ConnectionConfig struct {
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
}

// OutputConfig contains configurations for inventory generation.
type OutputConfig struct {
	Path    string   `mapstructure:"path" validate:"required"`
	Formats []string `mapstructure:"formats" validate:"min=1,dive,oneof=ini yaml excel html"`
}

// LoggingConfig contains configurations for logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// HTTPConfig contains HTTP client configurations including retry settings.
type HTTPConfig struct {
	Retry RetryConfig `mapstructure:"retry"`
}

// RetryConfig defines retry behavior for HTTP requests.
type RetryConfig struct {
	MaxRetries int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	BaseDelay  time.Duration `mapstructure:"base_delay"`
}
