package main

import (
	"context"
	"fmt"

	mdtree "github.com/alnah/go-mdtree"
	"github.com/alnah/go-mdtree/internal/hints"
)

// runSerialize reads a JSON tree and prints its Markdown.
func runSerialize(_ context.Context, args []string, env *Environment) error {
	f := &serializeFlags{}
	fs := buildSerializeFlagSet(env.Stderr, f)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	src, err := readSource(fs.Args(), env)
	if err != nil {
		return err
	}

	doc, err := mdtree.DecodeJSON(src.content)
	if err != nil {
		return fmt.Errorf("decoding tree: %w%s", err, hints.ForInvalidDocument())
	}

	// Serializing never touches styles, so the export settings of the
	// config do not apply here.
	conv, err := mdtree.NewConverter(mdtree.WithLogger(s.log.Logger))
	if err != nil {
		return err
	}
	return writeOutput(f.output, []byte(conv.Serialize(doc)), env)
}
