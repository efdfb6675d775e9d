package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUnexpectedArgs is returned when positional arguments are given.
// Input is read from --input or stdin, never from a positional path.
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	verbose bool
}

// columnFlags holds SPARQL variable mapping flags.
type columnFlags struct {
	link        string
	text        string
	description string
}

// headerFlags holds header label flags.
type headerFlags struct {
	text        string
	description string
}

// renderFlags holds HTML output switches. The *Set fields record whether
// the flag appeared on the command line, since false is a valid override.
type renderFlags struct {
	escape          bool
	escapeSet       bool
	legacyHeader    bool
	legacyHeaderSet bool
}

// logFlags holds diagnostic logging flags.
type logFlags struct {
	level string
	file  string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	input    string
	output   string
	maxInput int64
	columns  columnFlags
	headers  headerFlags
	render   renderFlags
	log      logFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")
}

// addColumnFlags adds column mapping flags to a FlagSet.
func addColumnFlags(fs *flag.FlagSet, f *columnFlags) {
	fs.StringVar(&f.link, "link-var", "", "variable used as link href (default: homepage)")
	fs.StringVar(&f.text, "text-var", "", "variable used as link text (default: name)")
	fs.StringVar(&f.description, "desc-var", "", "variable used as description (default: description)")
}

// addHeaderFlags adds header label flags to a FlagSet.
func addHeaderFlags(fs *flag.FlagSet, f *headerFlags) {
	fs.StringVar(&f.text, "name-header", "", "first column header (default: Name)")
	fs.StringVar(&f.description, "desc-header", "", "second column header (default: Description)")
}

// addRenderFlags adds HTML output flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.escape, "escape", false, "HTML-escape interpolated values")
	fs.BoolVar(&f.legacyHeader, "legacy-header", false, "close the header row with </td>")
}

// addLogFlags adds logging flags to a FlagSet.
func addLogFlags(fs *flag.FlagSet, f *logFlags) {
	fs.StringVar(&f.level, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.file, "log-file", "", "write logs to a rotating file")
}

// newConvertFlagSet builds the flag set shared by convert and config.
func newConvertFlagSet(name string, f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.input, "input", "i", "", "read JSON from file (- = stdin)")
	fs.StringVarP(&f.output, "output", "o", "", "write HTML to file (- = stdout)")
	fs.Int64Var(&f.maxInput, "max-input", 0, "maximum input size in bytes (0 = default)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addColumnFlags(fs, &f.columns)
	addHeaderFlags(fs, &f.headers)
	addRenderFlags(fs, &f.render)
	addLogFlags(fs, &f.log)

	return fs
}

// parseConvertFlags parses flags for the convert or config command.
// Parse errors and usage are printed to stderr.
func parseConvertFlags(cmd string, args []string, stderr io.Writer) (*convertFlags, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(cmd, f)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		if cmd == "config" {
			printConfigUsage(stderr)
			return
		}
		printConvertUsage(stderr)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v (use --input)", ErrUnexpectedArgs, fs.Args())
	}

	f.render.escapeSet = fs.Changed("escape")
	f.render.legacyHeaderSet = fs.Changed("legacy-header")

	return f, nil
}

// flagExit maps a flag parsing error to an exit code. pflag prints its own
// parse errors; ErrUnexpectedArgs is printed here.
func flagExit(err error, stderr io.Writer) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if errors.Is(err, ErrUnexpectedArgs) {
		fmt.Fprintf(stderr, "sparql2html: %v\n", err)
	}
	return ExitUsage
}
