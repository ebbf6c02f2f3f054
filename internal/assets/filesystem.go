package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// styleDir is the folder, under an asset directory or the embedded FS,
// that holds {name}.css export stylesheets.
const styleDir = "styles"

// FilesystemLoader serves HTML export stylesheets from a user directory,
// the one named by WithAssetPath or the asset_path config key.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader opens dir as an asset directory. Every failure wraps
// ErrInvalidBasePath so the CLI can report a bad asset_path as a usage error.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	root, err := openAssetDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return &FilesystemLoader{root: root}, nil
}

func openAssetDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("asset path is empty")
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		root = real
	}

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("asset directory %s does not exist", root)
	case err != nil:
		return "", err
	case !info.IsDir():
		return "", fmt.Errorf("asset path %s is a file, want a directory", root)
	}
	if _, err := os.ReadDir(root); err != nil {
		return "", fmt.Errorf("asset directory %s is unreadable: %v", root, err)
	}
	return root, nil
}

// LoadStyle returns the stylesheet stored at styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path, err := f.stylePath(name)
	if err != nil {
		return "", err
	}

	css, err := os.ReadFile(path) // #nosec G304 -- confined to root by stylePath
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q not in %s", ErrStyleNotFound, name, filepath.Join(f.root, styleDir))
	case err != nil:
		return "", fmt.Errorf("%w: style %q: %v", ErrAssetRead, name, err)
	}
	return string(css), nil
}

// stylePath maps name to its file under root and rejects a location that,
// once symlinks are followed, lies outside root. A file that does not
// exist keeps its joined path and fails at read time.
func (f *FilesystemLoader) stylePath(name string) (string, error) {
	path := filepath.Join(f.root, styleDir, name+".css")
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	}

	rel, err := filepath.Rel(f.root, path)
	if err != nil || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: style %q resolves outside %s", ErrPathTraversal, name, f.root)
	}
	return path, nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
