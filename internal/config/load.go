package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the yaml config at path, layers environment variables over the
// secret-bearing fields, validates and applies defaults. A .env file in the
// working directory is loaded first so containerized and local runs resolve
// env vars the same way.
func Load(path string) (*Config, error) {
	// Missing .env is fine; explicit env always wins over it.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides replaces credential and endpoint fields from the
// environment. Connection targets stay overridable so the same config file
// works across deployments.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Store.Host, "DB_HOST")
	setInt(&cfg.Store.Port, "DB_PORT")
	setString(&cfg.Store.Name, "DB_NAME")
	setString(&cfg.Store.User, "DB_USER")
	setString(&cfg.Store.Password, "DB_PASSWORD")
	setString(&cfg.Store.SSLMode, "DB_SSLMODE")
	setString(&cfg.Summarizer.APIURL, "SUMMARIZER_API_URL")
	setString(&cfg.Summarizer.APIKey, "SUMMARIZER_API_KEY")
	setString(&cfg.Archive.Root, "ARCHIVE_ROOT")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
