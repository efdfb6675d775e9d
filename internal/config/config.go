package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-sparql2html/internal/fileutil"
	"github.com/alnah/go-sparql2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxVariableLength = 128  // SPARQL variable name
	MaxHeaderLength   = 100  // Header label
	MaxPathLength     = 4096 // PATH_MAX on Linux
)

// appName is the directory searched under the user config directory.
const appName = "go-sparql2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Headers HeadersConfig `yaml:"headers"`
	Render  RenderConfig  `yaml:"render"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
}

// ColumnsConfig maps table cells to SPARQL variables.
type ColumnsConfig struct {
	Link        string `yaml:"link"`        // Anchor href (default: "homepage")
	Text        string `yaml:"text"`        // Anchor text (default: "name")
	Description string `yaml:"description"` // Second cell (default: "description")
}

// HeadersConfig defines header row labels.
type HeadersConfig struct {
	Text        string `yaml:"text"`        // default: "Name"
	Description string `yaml:"description"` // default: "Description"
}

// RenderConfig defines HTML compatibility switches.
type RenderConfig struct {
	EscapeHTML   bool `yaml:"escapeHTML"`   // Escape interpolated values
	LegacyHeader bool `yaml:"legacyHeader"` // Close header row with </td>
}

// InputConfig defines input limits.
type InputConfig struct {
	MaxBytes int64 `yaml:"maxBytes"` // 0 = library default
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level      string `yaml:"level"`      // debug, info, warn, error (default: warn)
	File       string `yaml:"file"`       // Empty = stderr
	MaxSizeMB  int    `yaml:"maxSizeMB"`  // Rotation size
	MaxBackups int    `yaml:"maxBackups"` // Rotated files kept
	MaxAgeDays int    `yaml:"maxAgeDays"` // Rotated file age
	Compress   bool   `yaml:"compress"`   // Gzip rotated files
}

// DefaultConfig returns the default configuration: homepage/name/description
// columns, raw interpolation, warn-level logs.
func DefaultConfig() *Config {
	return &Config{
		Columns: ColumnsConfig{
			Link:        "homepage",
			Text:        "name",
			Description: "description",
		},
		Headers: HeadersConfig{
			Text:        "Name",
			Description: "Description",
		},
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers
// who construct or merge Config manually.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"columns.link", c.Columns.Link, MaxVariableLength},
		{"columns.text", c.Columns.Text, MaxVariableLength},
		{"columns.description", c.Columns.Description, MaxVariableLength},
		{"headers.text", c.Headers.Text, MaxHeaderLength},
		{"headers.description", c.Headers.Description, MaxHeaderLength},
		{"log.file", c.Log.File, MaxPathLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for _, f := range []struct{ name, value string }{
		{"columns.link", c.Columns.Link},
		{"columns.text", c.Columns.Text},
		{"columns.description", c.Columns.Description},
	} {
		if strings.HasPrefix(f.value, "?") || strings.HasPrefix(f.value, "$") {
			return fmt.Errorf("%w: %s: %q (omit the leading ? or $)", ErrInvalidValue, f.name, f.value)
		}
	}

	if c.Input.MaxBytes < 0 {
		return fmt.Errorf("%w: input.maxBytes: must be >= 0, got %d", ErrInvalidValue, c.Input.MaxBytes)
	}

	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("%w: log.level: %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
		}
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation values must be >= 0", ErrInvalidValue)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate paths for a config name, in lookup order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
