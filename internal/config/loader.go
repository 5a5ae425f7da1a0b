// Package config provides configuration management for the inventory tool.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"inventory-tool/internal/model"
)

// Load reads configuration from the optional YAML file and environment variables.
// An empty configPath means defaults plus environment only.
// Environment variables take precedence over file values.
// Environment variable format: INVENTORY_<SECTION>_<KEY> (e.g., INVENTORY_SOURCE_FILE_PATH)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values for all configuration options.
func setDefaults(v *viper.Viper) {
	// Source defaults
	v.SetDefault("source.type", SourceFile)
	v.SetDefault("source.file.path", "machine_list.tsv")
	v.SetDefault("source.n9e.endpoint", "")
	v.SetDefault("source.n9e.token", "")
	v.SetDefault("source.n9e.queries", []string{})
	v.SetDefault("source.n9e.timeout", 30*time.Second)
	v.SetDefault("source.n9e.concurrency", 4)

	v.SetDefault("roles", model.DefaultRoles())

	v.SetDefault("connection.user", "vagrant")
	v.SetDefault("connection.password", "vagrant")

	// Output defaults
	v.SetDefault("output.path", "inventory")
	v.SetDefault("output.formats", []string{"ini"})

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	// HTTP retry defaults
	v.SetDefault("http.retry.max_retries", 3)
	v.SetDefault("http.retry.base_delay", 1*time.Second)
}
