package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sparql2html [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render SPARQL JSON query results as an HTML table.")
	fmt.Fprintln(w, "With no command, convert reads stdin and writes stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert SPARQL JSON results to HTML (default)")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sparql2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sparql2html [convert] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a SPARQL SELECT result (application/sparql-results+json) to HTML.")
	fmt.Fprintln(w)
	printSharedFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SPARQL2HTML_CONFIG, SPARQL2HTML_LINK_VAR, SPARQL2HTML_TEXT_VAR,")
	fmt.Fprintln(w, "  SPARQL2HTML_DESC_VAR, SPARQL2HTML_ESCAPE, SPARQL2HTML_LOG_LEVEL,")
	fmt.Fprintln(w, "  SPARQL2HTML_LOG_FILE")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general, 2 usage/config, 3 I/O,")
	fmt.Fprintln(w, "  4 malformed JSON, 5 not a SPARQL results document, 6 missing variable")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sparql2html config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration convert would use, after applying the config")
	fmt.Fprintln(w, "file, SPARQL2HTML_* variables and flags.")
	fmt.Fprintln(w)
	printSharedFlags(w)
}

// printSharedFlags prints the flags accepted by convert and config.
func printSharedFlags(w io.Writer) {
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Read JSON from file (- = stdin)")
	fmt.Fprintln(w, "  -o, --output <path>       Write HTML to file (- = stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --max-input <n>       Maximum input size in bytes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Columns:")
	fmt.Fprintln(w, "      --link-var <s>        Variable used as link href (default: homepage)")
	fmt.Fprintln(w, "      --text-var <s>        Variable used as link text (default: name)")
	fmt.Fprintln(w, "      --desc-var <s>        Variable used as description (default: description)")
	fmt.Fprintln(w, "      --name-header <s>     First column header (default: Name)")
	fmt.Fprintln(w, "      --desc-header <s>     Second column header (default: Description)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --escape              HTML-escape interpolated values")
	fmt.Fprintln(w, "      --legacy-header       Close the header row with </td>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "      --log-level <s>       Level: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-file <path>     Write logs to a rotating file")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging to stderr")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sparql2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sparql2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
