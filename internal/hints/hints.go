// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// appConfigDir is the directory name used under the user config directory.
const appConfigDir = "go-sparql2html"

// ForMalformedInput returns a hint for input that is not valid JSON.
// Endpoints often answer with XML or HTML unless JSON is requested.
func ForMalformedInput() string {
	return format("request application/sparql-results+json from the endpoint (or add format=json)")
}

// ForSchemaMismatch returns a hint for JSON without results.bindings.
func ForSchemaMismatch() string {
	return format("only SELECT results carry results.bindings; ASK and CONSTRUCT output is not supported")
}

// ForMissingField returns hints for a binding without a required variable.
// vars lists the variables the converter expects, in link, text, description order.
func ForMissingField(vars []string) string {
	var hints []string
	if len(vars) > 0 {
		hints = append(hints, "the query must SELECT ?"+strings.Join(vars, " ?"))
	}
	hints = append(hints, "remap columns with --link-var, --text-var, --desc-var")
	return formatHints(hints)
}

// ForInputTooLarge returns a hint about raising the input limit.
func ForInputTooLarge() string {
	return format("raise the limit with --max-input or add LIMIT to the query")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if filepath.Base(filepath.Dir(p)) == appConfigDir {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
