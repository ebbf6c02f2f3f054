package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	mdtree "github.com/alnah/go-mdtree"
	"github.com/alnah/go-mdtree/internal/fileutil"
)

// Formatter is the part of mdtree.Converter the fmt command needs.
type Formatter interface {
	Parse(input mdtree.Input) *mdtree.Node
	Serialize(doc *mdtree.Node) string
}

// Compile-time interface implementation check.
var _ Formatter = (*mdtree.Converter)(nil)

// FileToFormat is a single file to process.
type FileToFormat struct {
	Path string // as given or discovered
	Dir  string // absolute directory, for relative images
}

// FormatResult holds the outcome of a single file.
type FormatResult struct {
	Path     string
	Changed  bool
	Err      error
	Duration time.Duration
}

// formatBatch processes files concurrently. The Formatter is shared: a
// Converter is safe for concurrent use. Results keep the order of files.
func formatBatch(ctx context.Context, conv Formatter, files []FileToFormat, workers int, check bool) []FormatResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]FormatResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = FormatResult{Path: files[idx].Path, Err: ctx.Err()}
					continue
				}
				results[idx] = formatFile(conv, files[idx], check)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// formatFile parses and re-serializes one file, rewriting it in place
// unless check is set.
func formatFile(conv Formatter, f FileToFormat, check bool) FormatResult {
	start := time.Now()
	result := FormatResult{Path: f.Path}

	content, err := os.ReadFile(f.Path) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	out := conv.Serialize(conv.Parse(mdtree.Input{Markdown: string(content), SourceDir: f.Dir}))
	result.Changed = out != string(content)

	if result.Changed && !check {
		if err := fileutil.WriteFileAtomic(f.Path, []byte(out), filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary counts the outcomes of a batch.
type ResultSummary struct {
	Changed   int
	Unchanged int
	Failed    int
}

// countResults tallies a batch.
func countResults(results []FormatResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Changed:
			summary.Changed++
		default:
			summary.Unchanged++
		}
	}
	return summary
}

// reportResults logs every result. In check mode the paths that would
// change are printed to stdout, one per line, for scripts.
func reportResults(results []FormatResult, check bool, s *session, env *Environment) ResultSummary {
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.log.FileError(r.Path, r.Err)
		case check && r.Changed:
			fmt.Fprintln(env.Stdout, r.Path)
		case r.Changed:
			s.log.FileFormatted(r.Path, true)
		default:
			s.log.FileSkipped(r.Path, "already canonical")
		}
	}
	return countResults(results)
}
