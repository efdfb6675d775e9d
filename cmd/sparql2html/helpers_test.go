package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fixtures and environment
// ---------------------------------------------------------------------------

const (
	validResults = `{"head":{"vars":["homepage","name","description"]},"results":{"bindings":[
{"homepage":{"type":"uri","value":"http://a.com"},"name":{"type":"literal","value":"Acme"},"description":{"type":"literal","value":"Wind power"}}]}}`

	htmlPreamble = "<html><head>\n" +
		"<style type='text/css'>* { font-family: arial,helvetica; }</style>\n" +
		"</head><body>\n" +
		"<table border='1' style='border: 1px solid; border-collapse: collapse;'>\n"

	htmlClosing = "</table></body></html>\n"

	acmeRow = "<tr><td><a href='http://a.com'>Acme</a></td><td>Wind power</td></tr>\n"

	validHTML = htmlPreamble +
		"<tr><th>Name</th><th>Description</th></tr>\n" +
		acmeRow +
		htmlClosing
)

// testEnv is an Environment backed by buffers and a fixed variable map.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(stdin string, vars map[string]string) *testEnv {
	var stdout, stderr bytes.Buffer
	return &testEnv{
		Environment: &Environment{
			Stdin:  strings.NewReader(stdin),
			Stdout: &stdout,
			Stderr: &stderr,
			Getenv: func(k string) string { return vars[k] },
			Environ: func() []string {
				out := make([]string, 0, len(vars))
				for k, v := range vars {
					out = append(out, k+"="+v)
				}
				return out
			},
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// writeFile writes content under t.TempDir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
