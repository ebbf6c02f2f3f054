// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"os"
	"strings"
)

// EnvWorkspace is the environment variable naming the workspace root.
const EnvWorkspace = "MDTREE_WORKSPACE"

// ForWorkspace returns hints for a workspace root that cannot be indexed.
// Suggests the environment variable only when it is not already the source
// of the bad root.
func ForWorkspace(root string) string {
	var hints []string

	if os.Getenv(EnvWorkspace) == "" {
		hints = append(hints, "pass --workspace or set "+EnvWorkspace)
	} else if os.Getenv(EnvWorkspace) == root {
		hints = append(hints, EnvWorkspace+" points to "+root)
	}
	hints = append(hints, "the root must be a readable directory")

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/go-mdtree/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidDocument returns a hint for JSON input that is not a document tree.
func ForInvalidDocument() string {
	return format("input must be a JSON tree as printed by 'mdtree parse'")
}

// ForNotFormatted returns a hint listing how to fix unformatted files.
func ForNotFormatted(count int) string {
	if count <= 0 {
		return ""
	}
	noun := "file"
	if count > 1 {
		noun = "files"
	}
	return format(fmt.Sprintf("run 'mdtree fmt' to rewrite %d %s", count, noun))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// filepathSlash normalizes separators so Windows paths match too.
func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
