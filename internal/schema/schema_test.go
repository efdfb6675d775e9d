package schema_test

// Notes:
// - Documents are decoded with UseNumber, matching how the converter feeds
//   the validator.
// - Error message wording comes from the jsonschema library; tests only
//   assert on sentinels, variable names and instance paths.

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-sparql2html/internal/schema"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return v
}

func newValidator(t *testing.T) *schema.Validator {
	t.Helper()
	v, err := schema.NewValidator("homepage", "name", "description")
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}
	return v
}

// ---------------------------------------------------------------------------
// TestNewValidator - Schema compilation
// ---------------------------------------------------------------------------

func TestNewValidator(t *testing.T) {
	t.Parallel()

	t.Run("no variables", func(t *testing.T) {
		t.Parallel()

		_, err := schema.NewValidator()
		if !errors.Is(err, schema.ErrNoVariables) {
			t.Fatalf("error = %v, want ErrNoVariables", err)
		}
	})

	t.Run("duplicate variables compile", func(t *testing.T) {
		t.Parallel()

		v, err := schema.NewValidator("name", "name", "description")
		if err != nil {
			t.Fatalf("NewValidator() error = %v", err)
		}
		doc := decode(t, `{"name":{"value":"x"},"description":{"value":"y"}}`)
		if err := v.ValidateBinding(doc); err != nil {
			t.Errorf("ValidateBinding() error = %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateEnvelope - results.bindings path
// ---------------------------------------------------------------------------

func TestValidateEnvelope(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	tests := []struct {
		name     string
		doc      string
		wantErr  bool
		wantPath string
	}{
		{"empty bindings", `{"results":{"bindings":[]}}`, false, ""},
		{"with head", `{"head":{"vars":["name"]},"results":{"bindings":[{}]}}`, false, ""},
		{"extra fields ignored", `{"results":{"bindings":[],"ordered":true},"x":1}`, false, ""},
		{"missing bindings", `{"results":{}}`, true, "/results"},
		{"missing results", `{}`, true, "/"},
		{"results not object", `{"results":[]}`, true, "/results"},
		{"bindings not array", `{"results":{"bindings":{}}}`, true, "/results/bindings"},
		{"binding not object", `{"results":{"bindings":["x"]}}`, true, "/results/bindings/0"},
		{"root array", `[]`, true, "/"},
		{"root null", `null`, true, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.ValidateEnvelope(decode(t, tt.doc))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ValidateEnvelope() error = %v", err)
				}
				return
			}
			if !errors.Is(err, schema.ErrEnvelope) {
				t.Fatalf("error = %v, want ErrEnvelope", err)
			}
			if !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("error = %q, want path %q", err, tt.wantPath)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateBinding - Required variables per row
// ---------------------------------------------------------------------------

func TestValidateBinding(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	tests := []struct {
		name       string
		doc        string
		wantVar    string
		wantDetail string
	}{
		{
			name: "complete",
			doc:  `{"homepage":{"value":"http://a.com"},"name":{"value":"Acme"},"description":{"value":"Wind"}}`,
		},
		{
			name: "extra variables and fields",
			doc:  `{"homepage":{"type":"uri","value":"http://a.com"},"name":{"type":"literal","xml:lang":"en","value":"Acme"},"description":{"value":""},"other":{"value":"x"}}`,
		},
		{
			name:       "missing homepage",
			doc:        `{"name":{"value":"Acme"},"description":{"value":"Wind"}}`,
			wantVar:    "homepage",
			wantDetail: "missing",
		},
		{
			name:       "missing description",
			doc:        `{"homepage":{"value":"http://a.com"},"name":{"value":"Acme"}}`,
			wantVar:    "description",
			wantDetail: "missing",
		},
		{
			name:       "first missing in order wins",
			doc:        `{"homepage":{"value":"http://a.com"}}`,
			wantVar:    "name",
			wantDetail: "missing",
		},
		{
			name:       "node not object",
			doc:        `{"homepage":"http://a.com","name":{"value":"Acme"},"description":{"value":"Wind"}}`,
			wantVar:    "homepage",
			wantDetail: "not an object",
		},
		{
			name:       "node without value",
			doc:        `{"homepage":{"value":"http://a.com"},"name":{"type":"literal"},"description":{"value":"Wind"}}`,
			wantVar:    "name",
			wantDetail: "missing value",
		},
		{
			name:       "numeric value",
			doc:        `{"homepage":{"value":"http://a.com"},"name":{"value":"Acme"},"description":{"value":42}}`,
			wantVar:    "description",
			wantDetail: "not a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.ValidateBinding(decode(t, tt.doc))
			if tt.wantVar == "" {
				if err != nil {
					t.Fatalf("ValidateBinding() error = %v", err)
				}
				return
			}

			if !errors.Is(err, schema.ErrBinding) {
				t.Fatalf("error = %v, want ErrBinding", err)
			}
			var fe *schema.FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %T, want *schema.FieldError", err)
			}
			if fe.Variable != tt.wantVar {
				t.Errorf("Variable = %q, want %q", fe.Variable, tt.wantVar)
			}
			if !strings.Contains(fe.Detail, tt.wantDetail) {
				t.Errorf("Detail = %q, want containing %q", fe.Detail, tt.wantDetail)
			}
		})
	}
}
