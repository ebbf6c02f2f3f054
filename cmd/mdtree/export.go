package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdtree "github.com/alnah/go-mdtree"
	"github.com/alnah/go-mdtree/internal/fileutil"
	"github.com/alnah/go-mdtree/internal/hints"
)

// runExport renders a Markdown file, or a JSON tree, to standalone HTML.
func runExport(ctx context.Context, args []string, env *Environment) error {
	f := &exportFlags{}
	fs := buildExportFlagSet(env.Stderr, f)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}
	mergeExportFlags(f, s)

	src, err := readSource(fs.Args(), env)
	if err != nil {
		return err
	}

	idx, err := s.index(ctx, s.workspaceRoot(f.workspace))
	if err != nil {
		return err
	}
	conv, err := s.converter(idx)
	if err != nil {
		return err
	}

	doc, err := exportDocument(conv, src)
	if err != nil {
		return err
	}

	extraCSS, err := resolveExtraCSS(s.cfg.Export.CSS)
	if err != nil {
		return err
	}

	html, err := conv.ExportHTML(ctx, doc, mdtree.ExportOptions{
		Title:     f.title,
		SourceDir: src.dir,
		CSS:       extraCSS,
	})
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	out := exportOutputPath(f.output, src.path)
	if err := writeOutput(out, html, env); err != nil {
		return err
	}
	if out != "" && !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", out)
	}
	return nil
}

// mergeExportFlags applies export flags over the config. CLI wins.
func mergeExportFlags(f *exportFlags, s *session) {
	if f.style != "" {
		s.cfg.Export.Style = f.style
	}
	if f.css != "" {
		s.cfg.Export.CSS = f.css
	}
	if f.assetPath != "" {
		s.cfg.Export.AssetPath = f.assetPath
	}
}

// exportDocument parses src, or decodes it when it is a .json tree.
func exportDocument(conv *mdtree.Converter, src *source) (*mdtree.Node, error) {
	if strings.EqualFold(filepath.Ext(src.path), ".json") {
		doc, err := mdtree.DecodeJSON(src.content)
		if err != nil {
			return nil, fmt.Errorf("decoding tree: %w%s", err, hints.ForInvalidDocument())
		}
		return doc, nil
	}
	return conv.Parse(mdtree.Input{Markdown: string(src.content), SourceDir: src.dir}), nil
}

// resolveExtraCSS returns value when it is CSS, or the content of the file
// it names.
func resolveExtraCSS(value string) (string, error) {
	if value == "" || fileutil.IsCSS(value) {
		return value, nil
	}
	content, err := os.ReadFile(value) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("reading CSS file: %w", err)
	}
	return string(content), nil
}

// exportOutputPath picks the HTML destination: the flag, else the input
// path with an .html extension, else stdout.
func exportOutputPath(flagOutput, inputPath string) string {
	if flagOutput != "" {
		return flagOutput
	}
	if inputPath == "" {
		return ""
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
}
