package main

import (
	"context"
	"fmt"

	mdtree "github.com/alnah/go-mdtree"
	"github.com/alnah/go-mdtree/internal/yamlutil"
)

// runParse converts Markdown to a Document Tree and prints it.
func runParse(ctx context.Context, args []string, env *Environment) error {
	f := &parseFlags{}
	fs := buildParseFlagSet(env.Stderr, f)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if f.format != formatJSON && f.format != formatYAML {
		return fmt.Errorf("%w: %q (supported: json, yaml)", ErrInvalidFormat, f.format)
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

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

	doc := conv.Parse(mdtree.Input{Markdown: string(src.content), SourceDir: src.dir})

	data, err := encodeTree(doc, f.format, !f.compact)
	if err != nil {
		return err
	}
	return writeOutput(f.output, data, env)
}

// encodeTree renders doc as JSON or YAML, always ending with a newline.
func encodeTree(doc *mdtree.Node, format string, indent bool) ([]byte, error) {
	if format == formatYAML {
		data, err := yamlutil.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encoding tree: %w", err)
		}
		return data, nil
	}

	data, err := mdtree.EncodeJSON(doc, indent)
	if err != nil {
		return nil, fmt.Errorf("encoding tree: %w", err)
	}
	return append(data, '\n'), nil
}
