package sparql2html

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/alnah/go-sparql2html/internal/schema"
)

// shapeValidator checks decoded JSON against the results shape.
type shapeValidator interface {
	ValidateEnvelope(doc any) error
	ValidateBinding(binding any) error
}

// Compile-time interface implementation check.
var _ shapeValidator = (*schema.Validator)(nil)

// Converter renders SPARQL JSON results as an HTML table.
// Create with NewConverter and use Convert for stream conversion.
// A Converter holds only immutable configuration and is safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	validator shapeValidator
	renderer  *renderer
	log       *slog.Logger
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithColumns, WithEscapeHTML).
// Returns ErrInvalidColumns or ErrInvalidHeaders for invalid options.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			columns:      DefaultColumns(),
			headers:      DefaultHeaders(),
			maxInputSize: DefaultMaxInputSize,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.columns.Validate(); err != nil {
		return nil, err
	}
	if err := c.cfg.headers.Validate(); err != nil {
		return nil, err
	}

	v, err := schema.NewValidator(c.cfg.columns.Vars()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidColumns, err)
	}
	c.validator = v

	c.renderer = &renderer{
		columns:      c.cfg.columns,
		headers:      c.cfg.headers,
		escape:       c.cfg.escapeHTML,
		legacyHeader: c.cfg.legacyHeader,
	}

	c.log = c.cfg.logger
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}

	return c, nil
}

// Convert reads a complete SPARQL JSON results document from in and writes
// the HTML document to out.
//
// Output is all-or-nothing: out receives a single write, and only after
// decoding and rendering succeeded. The context cancels the blocking read.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := c.readAll(ctx, in)
	if err != nil {
		return err
	}
	c.log.Debug("input read", "bytes", len(data))

	rs, err := c.Decode(data)
	if err != nil {
		return err
	}
	c.log.Debug("results decoded",
		"bindings", len(rs.Results.Bindings),
		"vars", rs.Head.Vars,
	)

	doc, err := c.Render(rs)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := out.Write(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	c.log.Debug("document written", "bytes", len(doc))

	return nil
}

// ConvertString converts an in-memory document.
func (c *Converter) ConvertString(input string) (string, error) {
	var buf bytes.Buffer
	if err := c.Convert(context.Background(), strings.NewReader(input), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// readAll reads in to EOF, bounded by the configured maximum size.
// Supports context cancellation via goroutine + select since io.Reader
// has no cancellation of its own; on cancellation the reader goroutine is
// left to finish on its own.
func (c *Converter) readAll(ctx context.Context, in io.Reader) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}

	// One byte past the maximum detects oversized input.
	limit := c.cfg.maxInputSize
	if limit < math.MaxInt64 {
		limit++
	}

	done := make(chan result, 1)

	go func() {
		data, err := io.ReadAll(io.LimitReader(in, limit))
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, r.err)
		}
		if int64(len(r.data)) > c.cfg.maxInputSize {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, c.cfg.maxInputSize)
		}
		return r.data, nil
	}
}
