package convert

// FileIndex resolves a file name to a path somewhere in the workspace.
// Implementations must be safe for concurrent reads; the converter never
// mutates them.
type FileIndex interface {
	Lookup(name string) (path string, ok bool)
}

// FileIndexFunc adapts a function to the FileIndex interface.
type FileIndexFunc func(name string) (string, bool)

// Lookup calls f(name).
func (f FileIndexFunc) Lookup(name string) (string, bool) {
	return f(name)
}
