package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-sparql2html/internal/config"
)

func getenvFrom(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Reading SPARQL2HTML_* variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		env, err := loadEnvConfig(getenvFrom(map[string]string{
			"SPARQL2HTML_CONFIG":    "work",
			"SPARQL2HTML_LINK_VAR":  "freebaseURI",
			"SPARQL2HTML_TEXT_VAR":  "actorName",
			"SPARQL2HTML_DESC_VAR":  "comment",
			"SPARQL2HTML_ESCAPE":    "true",
			"SPARQL2HTML_LOG_LEVEL": "debug",
			"SPARQL2HTML_LOG_FILE":  "/tmp/s.log",
		}))
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}
		if env.ConfigPath != "work" || env.LinkVar != "freebaseURI" || env.TextVar != "actorName" || env.DescVar != "comment" {
			t.Errorf("env = %+v", env)
		}
		if env.Escape == nil || !*env.Escape {
			t.Errorf("Escape = %v, want true", env.Escape)
		}
		if env.LogLevel != "debug" || env.LogFile != "/tmp/s.log" {
			t.Errorf("log = %q, %q", env.LogLevel, env.LogFile)
		}
	})

	t.Run("unset", func(t *testing.T) {
		t.Parallel()

		env, err := loadEnvConfig(getenvFrom(nil))
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}
		if env.Escape != nil {
			t.Errorf("Escape = %v, want nil", *env.Escape)
		}
		if *env != (envConfig{}) {
			t.Errorf("env = %+v, want zero", env)
		}
	})

	t.Run("escape false", func(t *testing.T) {
		t.Parallel()

		env, err := loadEnvConfig(getenvFrom(map[string]string{"SPARQL2HTML_ESCAPE": "0"}))
		if err != nil {
			t.Fatalf("loadEnvConfig() error = %v", err)
		}
		if env.Escape == nil || *env.Escape {
			t.Errorf("Escape = %v, want false", env.Escape)
		}
	})

	t.Run("invalid escape", func(t *testing.T) {
		t.Parallel()

		_, err := loadEnvConfig(getenvFrom(map[string]string{"SPARQL2HTML_ESCAPE": "yes please"}))
		if !errors.Is(err, ErrInvalidEnv) {
			t.Errorf("error = %v, want ErrInvalidEnv", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HOME=/root",
		"SPARQL2HTML_LINK_VAR=homepage",
		"SPARQL2HTML_TXT_VAR=name",
		"SPARQL2HTML_ESCAPED=1",
		"SPARQL2HTML_CONFIG=a=b",
	})

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("warnings = %q, want 2 lines", out)
	}
	if !strings.Contains(lines[0], "SPARQL2HTML_ESCAPED") || !strings.Contains(lines[1], "SPARQL2HTML_TXT_VAR") {
		t.Errorf("warnings = %q, want sorted unknown names", out)
	}
	if strings.Contains(out, "HOME") || strings.Contains(out, "LINK_VAR") || strings.Contains(out, "CONFIG") {
		t.Errorf("warnings = %q, want only unknown SPARQL2HTML_ names", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env values override the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		escape := true
		cfg := config.DefaultConfig()
		cfg.Columns.Link = "fromFile"
		applyEnvConfig(&envConfig{
			LinkVar:  "fromEnv",
			DescVar:  "comment",
			Escape:   &escape,
			LogLevel: "info",
			LogFile:  "x.log",
		}, cfg)

		if cfg.Columns.Link != "fromEnv" {
			t.Errorf("Link = %q, want fromEnv", cfg.Columns.Link)
		}
		if cfg.Columns.Text != "name" {
			t.Errorf("Text = %q, want default kept", cfg.Columns.Text)
		}
		if cfg.Columns.Description != "comment" {
			t.Errorf("Description = %q", cfg.Columns.Description)
		}
		if !cfg.Render.EscapeHTML {
			t.Error("EscapeHTML = false, want true")
		}
		if cfg.Log.Level != "info" || cfg.Log.File != "x.log" {
			t.Errorf("Log = %+v", cfg.Log)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Render.EscapeHTML = true
		cfg.Columns.Text = "label"
		applyEnvConfig(&envConfig{}, cfg)

		if !cfg.Render.EscapeHTML || cfg.Columns.Text != "label" {
			t.Errorf("cfg changed by empty env: %+v", cfg)
		}
	})
}
