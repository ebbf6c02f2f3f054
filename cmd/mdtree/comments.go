package main

import (
	"context"
	"fmt"
	"strings"

	mdtree "github.com/alnah/go-mdtree"
)

// runComments lists the comment ids of a Markdown file. With --next it
// prints the id a new thread should take, with --texts the anchored text of
// every id, and with --remove the document without one comment.
func runComments(_ context.Context, args []string, env *Environment) error {
	f := &commentsFlags{}
	fs := buildCommentsFlagSet(env.Stderr, f)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if countTrue(f.next, f.texts, f.remove != "") > 1 {
		return fmt.Errorf("%w: --next, --texts and --remove are exclusive", ErrUsage)
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	src, err := readSource(fs.Args(), env)
	if err != nil {
		return err
	}

	conv, err := mdtree.NewConverter(mdtree.WithLogger(s.log.Logger))
	if err != nil {
		return err
	}
	doc := conv.Parse(mdtree.Input{Markdown: string(src.content), SourceDir: src.dir})
	ids := mdtree.CommentIDs(doc)

	switch {
	case f.next:
		fmt.Fprintln(env.Stdout, mdtree.NextCommentID(ids))
	case f.texts:
		printCommentTexts(env, ids, mdtree.CommentTexts(doc))
	case f.remove != "":
		if !containsID(ids, f.remove) {
			s.log.Warn("comment not found", "id", f.remove)
		}
		return writeOutput(f.output, []byte(conv.Serialize(mdtree.RemoveComment(doc, f.remove))), env)
	default:
		for _, id := range ids {
			fmt.Fprintln(env.Stdout, id)
		}
	}
	return nil
}

// printCommentTexts prints "id<TAB>text" lines in document order.
func printCommentTexts(env *Environment, ids []string, texts map[string]string) {
	for _, id := range ids {
		fmt.Fprintf(env.Stdout, "%s\t%s\n", id, oneLine(texts[id]))
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
