package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// command runs one subcommand.
type command func(ctx context.Context, args []string, env *Environment) error

// commands maps subcommand names to their implementation.
var commands = map[string]command{
	"parse":     runParse,
	"serialize": runSerialize,
	"fmt":       runFmt,
	"export":    runExport,
	"comments":  runComments,
}

func main() {
	// GOMAXPROCS sizes the fmt fan-out, so it is set before any command runs.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verboseRequested(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	name, rest := args[1], args[2:]

	var err error
	switch name {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdtree %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	default:
		cmd, ok := commands[name]
		if !ok {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", name)
			printUsage(env.Stderr)
			return ExitUsage
		}
		err = cmd(ctx, rest, env)
	}

	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, "error:", err)
	return exitCodeFor(err)
}

// verboseRequested reports whether -v or --verbose appears in args.
func verboseRequested(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
