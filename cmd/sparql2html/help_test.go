package main

import (
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Per-command help
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no topic", nil, ExitSuccess, "Commands:", ""},
		{"convert", []string{"convert"}, ExitSuccess, "--legacy-header", ""},
		{"config", []string{"config"}, ExitSuccess, "Usage: sparql2html config", ""},
		{"version", []string{"version"}, ExitSuccess, "Usage: sparql2html version", ""},
		{"help", []string{"help"}, ExitSuccess, "Usage: sparql2html help", ""},
		{"unknown", []string{"render"}, ExitUsage, "", "Unknown command: render"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("", nil)
			if code := runHelp(tt.args, env.Environment); code != tt.wantCode {
				t.Errorf("runHelp() = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(env.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", env.stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", env.stderr.String(), tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvertUsage_ListsEveryFlag - Help stays in sync with the FlagSet
// ---------------------------------------------------------------------------

func TestConvertUsage_ListsEveryFlag(t *testing.T) {
	t.Parallel()

	env := newTestEnv("", nil)
	printConvertUsage(env.Stdout)
	usage := env.stdout.String()

	fs := newConvertFlagSet("convert", &convertFlags{})
	fs.VisitAll(func(f *flag.Flag) {
		if !strings.Contains(usage, "--"+f.Name) {
			t.Errorf("usage does not mention --%s", f.Name)
		}
	})
}
