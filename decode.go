package sparql2html

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode parses data as a SPARQL JSON results document and checks that every
// binding carries the configured column variables.
//
// Errors wrap ErrMalformedInput for invalid JSON, ErrSchemaMismatch when
// results.bindings is absent or mistyped, and ErrMissingField when a binding
// lacks a column variable. Fields outside that minimal shape are ignored.
func (c *Converter) Decode(data []byte) (*ResultSet, error) {
	raw, err := parseJSON(data)
	if err != nil {
		return nil, err
	}

	if err := c.validator.ValidateEnvelope(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	// Shape is guaranteed by the envelope schema from here on.
	doc := raw.(map[string]any)
	results := doc["results"].(map[string]any)
	bindings := results["bindings"].([]any)

	for i, b := range bindings {
		if err := c.validator.ValidateBinding(b); err != nil {
			return nil, fmt.Errorf("%w: binding %d: %v", ErrMissingField, i, err)
		}
	}

	return toResultSet(doc, results, bindings), nil
}

// parseJSON decodes exactly one JSON value, keeping numbers as json.Number.
func parseJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return v, nil
}

func toResultSet(doc, results map[string]any, bindings []any) *ResultSet {
	rs := &ResultSet{}

	if head, ok := doc["head"].(map[string]any); ok {
		rs.Head.Vars = stringSlice(head["vars"])
		rs.Head.Link = stringSlice(head["link"])
	}

	rs.Results.Ordered, _ = results["ordered"].(bool)
	rs.Results.Distinct, _ = results["distinct"].(bool)
	rs.Results.Bindings = make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		rs.Results.Bindings = append(rs.Results.Bindings, toBinding(b.(map[string]any)))
	}

	return rs
}

func toBinding(m map[string]any) Binding {
	b := make(Binding, len(m))
	for name, node := range m {
		obj, ok := node.(map[string]any)
		if !ok {
			continue
		}
		b[name] = ValueNode{
			Type:     str(obj["type"]),
			Value:    str(obj["value"]),
			Datatype: str(obj["datatype"]),
			Lang:     str(obj["xml:lang"]),
		}
	}
	return b
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
