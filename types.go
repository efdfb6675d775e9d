package sparql2html

import (
	"fmt"
	"log/slog"
	"strings"
)

// ResultSet is a decoded SPARQL 1.1 JSON results document.
type ResultSet struct {
	Head    Head    `json:"head"`
	Results Results `json:"results"`
}

// Head lists the projected query variables.
type Head struct {
	Vars []string `json:"vars,omitempty"`
	Link []string `json:"link,omitempty"`
}

// Results holds the solution sequence.
type Results struct {
	Ordered  bool      `json:"ordered,omitempty"`
	Distinct bool      `json:"distinct,omitempty"`
	Bindings []Binding `json:"bindings"`
}

// Binding maps variable names to their bound values for one solution.
type Binding map[string]ValueNode

// ValueNode is one RDF term as serialized in SPARQL JSON results.
// Only Value is used for rendering.
type ValueNode struct {
	Type     string `json:"type,omitempty"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Default column variables and header labels.
const (
	DefaultLinkVar           = "homepage"
	DefaultTextVar           = "name"
	DefaultDescriptionVar    = "description"
	DefaultTextHeader        = "Name"
	DefaultDescriptionHeader = "Description"
)

// DefaultMaxInputSize limits the input document (64 MiB).
const DefaultMaxInputSize int64 = 64 << 20

// Columns selects the variables rendered in each row.
type Columns struct {
	Link        string // href of the anchor in the first cell
	Text        string // text of the anchor in the first cell
	Description string // second cell
}

// DefaultColumns returns homepage, name and description.
func DefaultColumns() Columns {
	return Columns{
		Link:        DefaultLinkVar,
		Text:        DefaultTextVar,
		Description: DefaultDescriptionVar,
	}
}

// Vars returns the variables in rendering order.
func (c Columns) Vars() []string {
	return []string{c.Link, c.Text, c.Description}
}

// Validate checks that every column names a variable.
func (c Columns) Validate() error {
	for _, f := range []struct{ field, value string }{
		{"link", c.Link},
		{"text", c.Text},
		{"description", c.Description},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s variable is empty", ErrInvalidColumns, f.field)
		}
	}
	return nil
}

// Headers holds the header row labels.
type Headers struct {
	Text        string
	Description string
}

// DefaultHeaders returns Name and Description.
func DefaultHeaders() Headers {
	return Headers{Text: DefaultTextHeader, Description: DefaultDescriptionHeader}
}

// Validate rejects labels containing line breaks, which would split the
// one-line-per-row layout.
func (h Headers) Validate() error {
	if strings.ContainsAny(h.Text+h.Description, "\r\n") {
		return fmt.Errorf("%w: labels must be single-line", ErrInvalidHeaders)
	}
	return nil
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	columns      Columns
	headers      Headers
	escapeHTML   bool
	legacyHeader bool
	maxInputSize int64
	logger       *slog.Logger
}

// WithColumns sets the variables rendered as link, link text and description.
func WithColumns(c Columns) Option {
	return func(conv *Converter) {
		conv.cfg.columns = c
	}
}

// WithHeaders sets the header row labels.
func WithHeaders(h Headers) Option {
	return func(conv *Converter) {
		conv.cfg.headers = h
	}
}

// WithEscapeHTML enables HTML-escaping of every interpolated value.
// Disabled by default: values are interpolated raw, as existing fixtures
// expect.
func WithEscapeHTML(enabled bool) Option {
	return func(conv *Converter) {
		conv.cfg.escapeHTML = enabled
	}
}

// WithLegacyHeader closes the header row with "</td>" instead of "</tr>",
// for byte-compatible output with existing fixtures.
func WithLegacyHeader(enabled bool) Option {
	return func(conv *Converter) {
		conv.cfg.legacyHeader = enabled
	}
}

// WithMaxInputSize sets the maximum accepted input size in bytes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxInputSize(n int64) Option {
	if n <= 0 {
		panic("sparql2html: WithMaxInputSize must be positive")
	}
	return func(conv *Converter) {
		conv.cfg.maxInputSize = n
	}
}

// WithLogger sets the logger used for debug diagnostics.
// A nil logger discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(conv *Converter) {
		conv.cfg.logger = l
	}
}
