package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// Output formats of the parse command.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// parseFlags holds flags for the parse command.
type parseFlags struct {
	common    commonFlags
	output    string
	format    string
	compact   bool
	workspace string
}

// serializeFlags holds flags for the serialize command.
type serializeFlags struct {
	common commonFlags
	output string
}

// fmtFlags holds flags for the fmt command.
type fmtFlags struct {
	common    commonFlags
	check     bool
	workers   int
	workspace string
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	common    commonFlags
	output    string
	title     string
	style     string
	css       string
	assetPath string
	workspace string
}

// commentsFlags holds flags for the comments command.
type commentsFlags struct {
	common commonFlags
	next   bool
	texts  bool
	remove string
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug events")
}

// addWorkspaceFlag adds the workspace root flag to a FlagSet.
func addWorkspaceFlag(fs *flag.FlagSet, root *string) {
	fs.StringVarP(root, "workspace", "W", "", "workspace root for image lookup")
}

// newFlagSet creates a FlagSet whose errors and usage go to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// buildParseFlagSet registers the parse command flags into f.
func buildParseFlagSet(w io.Writer, f *parseFlags) *flag.FlagSet {
	fs := newFlagSet("parse", w, printParseUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.format, "format", "f", formatJSON, "output format: json, yaml")
	fs.BoolVar(&f.compact, "compact", false, "print JSON on one line")
	addWorkspaceFlag(fs, &f.workspace)
	addCommonFlags(fs, &f.common)
	return fs
}

// buildSerializeFlagSet registers the serialize command flags into f.
func buildSerializeFlagSet(w io.Writer, f *serializeFlags) *flag.FlagSet {
	fs := newFlagSet("serialize", w, printSerializeUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	addCommonFlags(fs, &f.common)
	return fs
}

// buildFmtFlagSet registers the fmt command flags into f.
func buildFmtFlagSet(w io.Writer, f *fmtFlags) *flag.FlagSet {
	fs := newFlagSet("fmt", w, printFmtUsage)
	fs.BoolVar(&f.check, "check", false, "list files that would change, write nothing")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addWorkspaceFlag(fs, &f.workspace)
	addCommonFlags(fs, &f.common)
	return fs
}

// buildExportFlagSet registers the export command flags into f.
func buildExportFlagSet(w io.Writer, f *exportFlags) *flag.FlagSet {
	fs := newFlagSet("export", w, printExportUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file")
	fs.StringVar(&f.title, "title", "", "page title (default: first heading)")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	addWorkspaceFlag(fs, &f.workspace)
	addCommonFlags(fs, &f.common)
	return fs
}

// buildCommentsFlagSet registers the comments command flags into f.
func buildCommentsFlagSet(w io.Writer, f *commentsFlags) *flag.FlagSet {
	fs := newFlagSet("comments", w, printCommentsUsage)
	fs.BoolVar(&f.next, "next", false, "print the id for a new comment")
	fs.BoolVar(&f.texts, "texts", false, "print the text each comment anchors")
	fs.StringVar(&f.remove, "remove", "", "print the document without comment `id`")
	fs.StringVarP(&f.output, "output", "o", "", "output file for --remove (default: stdout)")
	addCommonFlags(fs, &f.common)
	return fs
}
