// Package config provides configuration loading and validation for the
// extraction service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinIOConfig holds the object storage connection settings. The bucket stores
// uploaded CV files under content-addressed keys.
type MinIOConfig struct {
	Endpoint        string `json:"endpoint" validate:"required"`
	AccessKeyID     string `json:"access_key_id" validate:"required"`
	SecretAccessKey string `json:"secret_access_key" validate:"required"`
	UseSSL          bool   `json:"use_ssl"`
	Bucket          string `json:"bucket" validate:"required"`
	Region          string `json:"region,omitempty"`
}

// LogConfig controls log level and output format.
type LogConfig struct {
	Level      string `json:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Format     string `json:"format,omitempty" validate:"omitempty,oneof=json pretty"`
	TimeFormat string `json:"time_format,omitempty"`
}

// Config represents the service configuration, loadable from a JSON file with
// environment variable overrides applied on top.
type Config struct {
	Port           int          `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	DatabaseURL    string       `json:"database_url,omitempty"`
	MinIO          *MinIOConfig `json:"minio,omitempty"`
	AllowedOrigins []string     `json:"allowed_origins,omitempty"`
	MaxUploadBytes int64        `json:"max_upload_bytes,omitempty" validate:"omitempty,min=1"`
	MinTextLength  int          `json:"min_text_length,omitempty" validate:"omitempty,min=1"`
	Log            LogConfig    `json:"log,omitempty"`
}

// Defaults applied when neither the config file nor the environment provides a
// value.
const (
	DefaultPort           = 8000
	DefaultMaxUploadBytes = 10 << 20
	DefaultMinTextLength  = 20
)

// LoadConfig loads configuration from a JSON file (if path is non-empty),
// applies environment overrides, and fills in defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables. Environment wins
// over the file so deployments can patch a shared config.
func (c *Config) applyEnv() {
	if v := os.Getenv("CV_PARSER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("CV_PARSER_ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("CV_PARSER_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("CV_PARSER_MIN_TEXT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MinTextLength = n
		}
	}
	if v := os.Getenv("CV_PARSER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CV_PARSER_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		if c.MinIO == nil {
			c.MinIO = &MinIOConfig{}
		}
		c.MinIO.Endpoint = endpoint
	}
	if c.MinIO != nil {
		if v := os.Getenv("MINIO_ACCESS_KEY_ID"); v != "" {
			c.MinIO.AccessKeyID = v
		}
		if v := os.Getenv("MINIO_SECRET_ACCESS_KEY"); v != "" {
			c.MinIO.SecretAccessKey = v
		}
		if v := os.Getenv("MINIO_BUCKET"); v != "" {
			c.MinIO.Bucket = v
		}
		if v := os.Getenv("MINIO_USE_SSL"); v != "" {
			c.MinIO.UseSSL = v == "true" || v == "1"
		}
	}
}

// applyDefaults fills zero values after file and environment merging.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.MinTextLength == 0 {
		c.MinTextLength = DefaultMinTextLength
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.MinIO != nil && c.MinIO.Bucket == "" {
		c.MinIO.Bucket = "cvs"
	}
}

// Validate checks the configuration using struct tags. The MinIO section is
// only validated when present; extraction works without object storage.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
