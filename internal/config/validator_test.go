// Package config provides configuration management for the inventory tool.
package config

import (
	"strings"
	"testing"
	"time"
)

// newValidConfig creates a valid configuration for testing.
func newValidConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Type: SourceFile,
			File: FileSourceConfig{Path: "machine_list.tsv"},
			N9E: N9EConfig{
				Timeout:     30 * time.Second,
				Concurrency: 4,
			},
		},
		Roles: []string{"mgmt", "login", "gpu", "cpu"},
		Connection: ConnectionConfig{
			User:     "vagrant",
			Password: "vagrant",
		},
		Output: OutputConfig{
			Path:    "inventory",
			Formats: []string{"ini"},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		HTTP: HTTPConfig{
			Retry: RetryConfig{
				MaxRetries: 3,
				BaseDelay:  1 * time.Second,
			},
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := newValidConfig()

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error = %v, want nil for valid config", err)
	}
}

func TestValidate_EmptyRoles(t *testing.T) {
	cfg := newValidConfig()
	cfg.Roles = nil

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for empty roles")
	}
	if !strings.Contains(err.Error(), "roles") {
		t.Errorf("error should mention 'roles', got: %s", err.Error())
	}
}

func TestValidate_DuplicateRoles(t *testing.T) {
	cfg := newValidConfig()
	cfg.Roles = []string{"gpu", "cpu", "gpu"}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for duplicate roles")
	}
	if !strings.Contains(err.Error(), "unique") {
		t.Errorf("error should mention 'unique', got: %s", err.Error())
	}
}

func TestValidate_RoleWithWhitespace(t *testing.T) {
	cfg := newValidConfig()
	cfg.Roles = []string{"gpu", " cpu"}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for padded role keyword")
	}
	if !strings.Contains(err.Error(), "roles[1]") {
		t.Errorf("error should mention 'roles[1]', got: %s", err.Error())
	}
}

func TestValidate_UnknownFormat(t *testing.T) {
	cfg := newValidConfig()
	cfg.Output.Formats = []string{"ini", "pdf"}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for unknown format")
	}
	if !strings.Contains(err.Error(), "output.formats[1]") {
		t.Errorf("error should mention 'output.formats[1]', got: %s", err.Error())
	}
}

func TestValidate_InvalidSourceType(t *testing.T) {
	cfg := newValidConfig()
	cfg.Source.Type = "ldap"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for unknown source type")
	}
	if !strings.Contains(err.Error(), "source.type") {
		t.Errorf("error should mention 'source.type', got: %s", err.Error())
	}
}

func TestValidate_N9ESourceRequiresEndpointAndToken(t *testing.T) {
	cfg := newValidConfig()
	cfg.Source.Type = SourceN9E

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for n9e source without endpoint")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	fields := map[string]bool{}
	for _, e := range verrs {
		fields[e.Field] = true
	}
	if !fields["source.n9e.endpoint"] || !fields["source.n9e.token"] {
		t.Errorf("expected endpoint and token errors, got: %s", err.Error())
	}
}

func TestValidate_N9ESourceInvalidURL(t *testing.T) {
	cfg := newValidConfig()
	cfg.Source.Type = SourceN9E
	cfg.Source.N9E.Endpoint = "not-a-url"
	cfg.Source.N9E.Token = "t"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for invalid URL")
	}
	if !strings.Contains(err.Error(), "invalid URL format") {
		t.Errorf("error should mention invalid URL, got: %s", err.Error())
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := newValidConfig()
	cfg.Logging.Level = "trace"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should return error for invalid log level")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("error should mention 'logging.level', got: %s", err.Error())
	}
}

func TestFormatFieldName(t *testing.T) {
	tests := []struct {
		namespace string
		want      string
	}{
		{"Config.Source.N9E.Endpoint", "source.n9e.endpoint"},
		{"Config.Roles", "roles"},
		{"Roles", "roles"},
	}
	for _, tt := range tests {
		if got := formatFieldName(tt.namespace); got != tt.want {
			t.Errorf("formatFieldName(%q) = %q, want %q", tt.namespace, got, tt.want)
		}
	}
}
