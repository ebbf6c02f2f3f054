package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtree <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  parse       Convert Markdown to a JSON document tree")
	fmt.Fprintln(w, "  serialize   Convert a JSON document tree to Markdown")
	fmt.Fprintln(w, "  fmt         Rewrite Markdown files in canonical form")
	fmt.Fprintln(w, "  export      Render Markdown to standalone HTML")
	fmt.Fprintln(w, "  comments    List comment anchors of a Markdown file")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdtree help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug events")
}

// printParseUsage prints usage for the parse command.
func printParseUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtree parse [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to a document tree. Reads stdin when file is absent or \"-\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: json, yaml")
	fmt.Fprintln(w, "      --compact             Print JSON on one line")
	fmt.Fprintln(w, "  -W, --workspace <dir>     Workspace root for image lookup")
	printCommonUsage(w)
}

// printSerializeUsage prints usage for the serialize command.
func printSerializeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtree serialize [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a JSON document tree to Markdown. Reads stdin when file is absent or \"-\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	printCommonUsage(w)
}

// printFmtUsage prints usage for the fmt command.
func printFmtUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtree fmt [paths...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite Markdown files in canonical form. Directories are walked.")
	fmt.Fprintln(w, "Without paths, every Markdown file of the workspace is formatted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --check               List files that would change, write nothing (exit 4)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -W, --workspace <dir>     Workspace root for image lookup")
	printCommonUsage(w)
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtree export [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown, or a .json document tree, to standalone HTML.")
	fmt.Fprintln(w, "Comment markers become highlights; their ids are dropped.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: input with .html, or stdout)")
	fmt.Fprintln(w, "      --title <s>           Page title (default: first heading)")
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file appended after the style")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "  -W, --workspace <dir>     Workspace root for image lookup")
	printCommonUsage(w)
}

// printCommentsUsage prints usage for the comments command.
func printCommentsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtree comments [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the comment ids anchored in a Markdown file, in document order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --next                Print the id for a new comment")
	fmt.Fprintln(w, "      --texts               Print the text each comment anchors")
	fmt.Fprintln(w, "      --remove <id>         Print the document without comment id")
	fmt.Fprintln(w, "  -o, --output <path>       Output file for --remove (default: stdout)")
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "parse":
		printParseUsage(env.Stdout)
	case "serialize":
		printSerializeUsage(env.Stdout)
	case "fmt":
		printFmtUsage(env.Stdout)
	case "export":
		printExportUsage(env.Stdout)
	case "comments":
		printCommentsUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdtree version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdtree help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
