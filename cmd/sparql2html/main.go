package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(hasVerboseFlag(os.Args[1:]), env.Stderr)))

	os.Exit(runMain(os.Args, env))
}

// maxprocsLogger prints GOMAXPROCS adjustments in verbose mode only.
func maxprocsLogger(verbose bool, w io.Writer) func(string, ...interface{}) {
	if !verbose {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
// Checked before flag parsing so GOMAXPROCS is set first.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose", "--verbose=true":
			return true
		}
	}
	return false
}

// runMain dispatches to a command and returns the process exit code.
// args includes the program name. With no command, convert runs on stdin.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, cmdArgs := "convert", []string{}
	if len(args) > 1 {
		if isCommand(args[1]) {
			cmd, cmdArgs = args[1], args[2:]
		} else if isFlag(args[1]) {
			cmdArgs = args[1:]
		} else {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[1])
			printUsage(env.Stderr)
			return ExitUsage
		}
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "sparql2html %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(cmdArgs, env)
	}

	flags, err := parseConvertFlags(cmd, cmdArgs, env.Stderr)
	if err != nil {
		return flagExit(err, env.Stderr)
	}
	if cmd == "config" {
		return report(env, runConfig(flags, env))
	}
	return report(env, runConvert(ctx, flags, env))
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	switch s {
	case "convert", "config", "version", "help":
		return true
	}
	return false
}

// isFlag reports whether s looks like a flag.
func isFlag(s string) bool {
	return strings.HasPrefix(s, "-")
}

// report prints err and returns its exit code.
func report(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "sparql2html: %v\n", err)
	return exitCodeFor(err)
}
