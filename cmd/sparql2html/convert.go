package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	sparql2html "github.com/alnah/go-sparql2html"
	"github.com/alnah/go-sparql2html/internal/config"
	"github.com/alnah/go-sparql2html/internal/fileutil"
	"github.com/alnah/go-sparql2html/internal/hints"
	"github.com/alnah/go-sparql2html/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrOpenInput   = errors.New("failed to open input file")
	ErrWriteFile   = errors.New("failed to write output file")
	ErrSetupLogger = errors.New("failed to set up logging")
)

// filePermissions is rw-r--r--.
const filePermissions = 0o644

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, in io.Reader, out io.Writer) error
}

// Compile-time interface implementation check.
var _ Converter = (*sparql2html.Converter)(nil)

// runConvert resolves configuration, converts one document and writes it.
func runConvert(ctx context.Context, flags *convertFlags, env *Environment) error {
	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, flags.common.verbose, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	conv, err := sparql2html.NewConverter(converterOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(flags.input, env.Stdin)
	if err != nil {
		return err
	}
	defer func() { _ = closeIn() }()

	logger.Debug("converting", "input", displayPath(flags.input, "stdin"), "output", displayPath(flags.output, "stdout"))

	vars := []string{cfg.Columns.Link, cfg.Columns.Text, cfg.Columns.Description}
	if err := convertTo(ctx, conv, in, flags.output, env.Stdout); err != nil {
		return withHint(err, vars)
	}
	return nil
}

// resolveConfig loads the config file and applies env vars then flags.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *convertFlags, env *Environment) (*config.Config, error) {
	envCfg, err := loadEnvConfig(env.Getenv)
	if err != nil {
		return nil, err
	}
	warnUnknownEnvVars(env.Stderr, env.Environ())

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Columns
	if flags.columns.link != "" {
		cfg.Columns.Link = flags.columns.link
	}
	if flags.columns.text != "" {
		cfg.Columns.Text = flags.columns.text
	}
	if flags.columns.description != "" {
		cfg.Columns.Description = flags.columns.description
	}

	// Headers
	if flags.headers.text != "" {
		cfg.Headers.Text = flags.headers.text
	}
	if flags.headers.description != "" {
		cfg.Headers.Description = flags.headers.description
	}

	// Render switches
	if flags.render.escapeSet {
		cfg.Render.EscapeHTML = flags.render.escape
	}
	if flags.render.legacyHeaderSet {
		cfg.Render.LegacyHeader = flags.render.legacyHeader
	}

	// Input
	if flags.maxInput != 0 {
		cfg.Input.MaxBytes = flags.maxInput
	}

	// Logging
	if flags.log.level != "" {
		cfg.Log.Level = flags.log.level
	}
	if flags.log.file != "" {
		cfg.Log.File = flags.log.file
	}
	if flags.common.verbose {
		cfg.Log.Level = "debug"
	}
}

// newLogger builds the diagnostic logger. Verbose mode always logs to
// stderr, in addition to any configured file. Zero rotation values keep
// the logging defaults.
func newLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*slog.Logger, func() error, error) {
	logCfg := logging.DefaultConfig()
	logCfg.FilePath = cfg.Log.File
	logCfg.Compress = cfg.Log.Compress
	logCfg.Console = verbose
	if cfg.Log.Level != "" {
		logCfg.Level = cfg.Log.Level
	}
	if cfg.Log.MaxSizeMB > 0 {
		logCfg.MaxSizeMB = cfg.Log.MaxSizeMB
	}
	if cfg.Log.MaxBackups > 0 {
		logCfg.MaxBackups = cfg.Log.MaxBackups
	}
	if cfg.Log.MaxAgeDays > 0 {
		logCfg.MaxAgeDays = cfg.Log.MaxAgeDays
	}

	logger, cleanup, err := logging.New(logCfg, stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSetupLogger, err)
	}
	return logger, cleanup, nil
}

// converterOptions translates resolved config into library options.
func converterOptions(cfg *config.Config, logger *slog.Logger) []sparql2html.Option {
	opts := []sparql2html.Option{
		sparql2html.WithColumns(sparql2html.Columns{
			Link:        cfg.Columns.Link,
			Text:        cfg.Columns.Text,
			Description: cfg.Columns.Description,
		}),
		sparql2html.WithHeaders(sparql2html.Headers{
			Text:        cfg.Headers.Text,
			Description: cfg.Headers.Description,
		}),
		sparql2html.WithEscapeHTML(cfg.Render.EscapeHTML),
		sparql2html.WithLegacyHeader(cfg.Render.LegacyHeader),
		sparql2html.WithLogger(logger),
	}
	if cfg.Input.MaxBytes > 0 {
		opts = append(opts, sparql2html.WithMaxInputSize(cfg.Input.MaxBytes))
	}
	return opts
}

// openInput returns stdin for "" or "-", otherwise the opened file.
func openInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if fileutil.IsStdio(path) {
		return stdin, func() error { return nil }, nil
	}

	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	return f, f.Close, nil
}

// convertTo writes to stdout for "" or "-". Otherwise the document is
// buffered and the file is written atomically, so a failed conversion
// leaves no output file behind.
func convertTo(ctx context.Context, conv Converter, in io.Reader, path string, stdout io.Writer) error {
	if fileutil.IsStdio(path) {
		return conv.Convert(ctx, in, stdout)
	}

	var buf bytes.Buffer
	if err := conv.Convert(ctx, in, &buf); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	return nil
}

// displayPath names a path for logs, substituting stdio for "" and "-".
func displayPath(path, stdio string) string {
	if fileutil.IsStdio(path) {
		return stdio
	}
	return path
}
