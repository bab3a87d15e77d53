// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFile is returned by Load for an unknown file extension.
	ErrUnsupportedFile = errors.New("config: unsupported file type")

	// ErrInvalid wraps every validation and environment parsing failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete runtime configuration.
type Config struct {
	Merge  MergeConfig  `yaml:"merge" toml:"merge"`
	Output OutputConfig `yaml:"output" toml:"output"`
	Server ServerConfig `yaml:"server" toml:"server"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// MergeConfig bounds the work a single request may cause.
type MergeConfig struct {
	// MaxObjects caps the merged universe. Zero disables the ceiling.
	MaxObjects int `yaml:"max_objects" toml:"max_objects" validate:"gte=0"`
	// BatchLimit caps the number of pairs in one batch request.
	BatchLimit int `yaml:"batch_limit" toml:"batch_limit" validate:"gte=1,lte=10000"`
	// Concurrency caps parallel merges inside one batch.
	Concurrency int `yaml:"concurrency" toml:"concurrency" validate:"gte=1,lte=1024"`
}

// OutputConfig selects the CLI output encoding.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format" validate:"oneof=json yaml yml"`
}

// ServerConfig configures the HTTP daemon.
type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr" validate:"required"`
	// RateLimit is the sustained requests per second. Zero disables limiting.
	RateLimit float64 `yaml:"rate_limit" toml:"rate_limit" validate:"gte=0"`
	Burst     int     `yaml:"burst" toml:"burst" validate:"gte=0"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes    int64    `yaml:"max_body_bytes" toml:"max_body_bytes" validate:"gte=1"`
	ReadTimeout     Duration `yaml:"read_timeout" toml:"read_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// Duration is a time.Duration read from strings such as "5s" in every file format.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Merge: MergeConfig{
			MaxObjects:  512,
			BatchLimit:  64,
			Concurrency: 4,
		},
		Output: OutputConfig{Format: "json"},
		Server: ServerConfig{
			Addr:            ":8080",
			Burst:           20,
			MaxBodyBytes:    1 << 20,
			ReadTimeout:     Duration{10 * time.Second},
			ShutdownTimeout: Duration{5 * time.Second},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
// The result is not validated; call Validate after every override is applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: env file %q: %w", path, err)
	}

	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
