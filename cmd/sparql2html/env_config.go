package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-sparql2html/internal/config"
)

// ErrInvalidEnv is returned when a SPARQL2HTML_* value cannot be parsed.
var ErrInvalidEnv = errors.New("invalid environment variable")

// envPrefix marks variables read by the CLI.
const envPrefix = "SPARQL2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SPARQL2HTML_CONFIG: config file name or path
	LinkVar    string // SPARQL2HTML_LINK_VAR: link href variable
	TextVar    string // SPARQL2HTML_TEXT_VAR: link text variable
	DescVar    string // SPARQL2HTML_DESC_VAR: description variable
	Escape     *bool  // SPARQL2HTML_ESCAPE: HTML-escape values (nil = unset)
	LogLevel   string // SPARQL2HTML_LOG_LEVEL: debug, info, warn, error
	LogFile    string // SPARQL2HTML_LOG_FILE: rotating log file path
}

// knownEnvVars lists valid SPARQL2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SPARQL2HTML_CONFIG":    true,
	"SPARQL2HTML_LINK_VAR":  true,
	"SPARQL2HTML_TEXT_VAR":  true,
	"SPARQL2HTML_DESC_VAR":  true,
	"SPARQL2HTML_ESCAPE":    true,
	"SPARQL2HTML_LOG_LEVEL": true,
	"SPARQL2HTML_LOG_FILE":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath: getenv("SPARQL2HTML_CONFIG"),
		LinkVar:    getenv("SPARQL2HTML_LINK_VAR"),
		TextVar:    getenv("SPARQL2HTML_TEXT_VAR"),
		DescVar:    getenv("SPARQL2HTML_DESC_VAR"),
		LogLevel:   getenv("SPARQL2HTML_LOG_LEVEL"),
		LogFile:    getenv("SPARQL2HTML_LOG_FILE"),
	}

	if v := getenv("SPARQL2HTML_ESCAPE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: SPARQL2HTML_ESCAPE=%q (want true or false)", ErrInvalidEnv, v)
		}
		cfg.Escape = &b
	}

	return cfg, nil
}

// warnUnknownEnvVars prints warnings for unrecognized SPARQL2HTML_* variables,
// sorted by name.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies set environment values over the config file.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.LinkVar != "" {
		cfg.Columns.Link = env.LinkVar
	}
	if env.TextVar != "" {
		cfg.Columns.Text = env.TextVar
	}
	if env.DescVar != "" {
		cfg.Columns.Description = env.DescVar
	}
	if env.Escape != nil {
		cfg.Render.EscapeHTML = *env.Escape
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
}
