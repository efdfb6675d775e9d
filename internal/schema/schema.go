// Package schema checks the shape of SPARQL JSON results documents.
//
// Two schemas are compiled: an envelope schema for the results.bindings path
// and a row schema requiring each configured variable to carry a string
// value. Documents must be decoded with json.Decoder.UseNumber (or
// jsonschema.UnmarshalJSON) before validation.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Sentinel errors for shape validation.
var (
	ErrEnvelope    = errors.New("invalid results envelope")
	ErrBinding     = errors.New("invalid binding")
	ErrNoVariables = errors.New("at least one variable is required")
)

const (
	draft       = "https://json-schema.org/draft/2020-12/schema"
	envelopeURL = "sparql-results-envelope.json"
	rowURL      = "sparql-results-binding.json"
)

// printer renders jsonschema error kinds in English.
var printer = message.NewPrinter(language.English)

// FieldError reports the first variable of a binding that failed validation.
type FieldError struct {
	Variable string
	Detail   string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: variable %q", ErrBinding, e.Variable)
	}
	return fmt.Sprintf("%v: variable %q: %s", ErrBinding, e.Variable, e.Detail)
}

func (e *FieldError) Unwrap() error { return ErrBinding }

// Validator holds the compiled envelope and binding schemas.
type Validator struct {
	envelope *jsonschema.Schema
	row      *jsonschema.Schema
	vars     []string
}

// NewValidator compiles schemas requiring each of vars in every binding.
func NewValidator(vars ...string) (*Validator, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}

	c := jsonschema.NewCompiler()

	if err := c.AddResource(envelopeURL, envelopeDoc()); err != nil {
		return nil, fmt.Errorf("adding envelope schema: %w", err)
	}
	if err := c.AddResource(rowURL, rowDoc(vars)); err != nil {
		return nil, fmt.Errorf("adding binding schema: %w", err)
	}

	envelope, err := c.Compile(envelopeURL)
	if err != nil {
		return nil, fmt.Errorf("compiling envelope schema: %w", err)
	}
	row, err := c.Compile(rowURL)
	if err != nil {
		return nil, fmt.Errorf("compiling binding schema: %w", err)
	}

	return &Validator{
		envelope: envelope,
		row:      row,
		vars:     append([]string(nil), vars...),
	}, nil
}

// ValidateEnvelope checks that doc is an object with a results.bindings
// array of objects.
func (v *Validator) ValidateEnvelope(doc any) error {
	if err := v.envelope.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrEnvelope, describe(err))
	}
	return nil
}

// ValidateBinding checks one binding. The returned error is a *FieldError
// naming the first offending variable in configured order.
func (v *Validator) ValidateBinding(binding any) error {
	err := v.row.Validate(binding)
	if err == nil {
		return nil
	}

	obj, _ := binding.(map[string]any)
	for _, name := range v.vars {
		if msg := checkValueNode(obj, name); msg != "" {
			return &FieldError{Variable: name, Detail: msg}
		}
	}

	// The schema only constrains configured variables, so this is unreachable
	// unless the binding itself is not an object.
	return &FieldError{Variable: v.vars[0], Detail: describe(err)}
}

func checkValueNode(obj map[string]any, name string) string {
	node, ok := obj[name]
	if !ok {
		return "missing"
	}
	m, ok := node.(map[string]any)
	if !ok {
		return "not an object"
	}
	value, ok := m["value"]
	if !ok {
		return "missing value"
	}
	if _, ok := value.(string); !ok {
		return "value is not a string"
	}
	return ""
}

func envelopeDoc() map[string]any {
	return map[string]any{
		"$schema":  draft,
		"type":     "object",
		"required": []any{"results"},
		"properties": map[string]any{
			"results": map[string]any{
				"type":     "object",
				"required": []any{"bindings"},
				"properties": map[string]any{
					"bindings": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "object"},
					},
				},
			},
		},
	}
}

func rowDoc(vars []string) map[string]any {
	required := make([]any, 0, len(vars))
	props := make(map[string]any, len(vars))
	for _, name := range vars {
		if _, seen := props[name]; seen {
			continue
		}
		required = append(required, name)
		props[name] = map[string]any{
			"type":     "object",
			"required": []any{"value"},
			"properties": map[string]any{
				"value": map[string]any{"type": "string"},
			},
		}
	}
	return map[string]any{
		"$schema":    draft,
		"type":       "object",
		"required":   required,
		"properties": props,
	}
}

// describe flattens a validation error into "path: message" pairs.
func describe(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var msgs []string
	collect(ve, &msgs)
	if len(msgs) == 0 {
		return err.Error()
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// collect gathers leaf errors (those without causes).
func collect(ve *jsonschema.ValidationError, msgs *[]string) {
	if ve.ErrorKind != nil && len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		*msgs = append(*msgs, path+": "+ve.ErrorKind.LocalizedString(printer))
	}
	for _, cause := range ve.Causes {
		collect(cause, msgs)
	}
}
