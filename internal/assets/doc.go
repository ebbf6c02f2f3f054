// Package assets provides the CSS styles used by HTML export.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a directory on disk
//	    └── AssetResolver     - custom directory first, embedded fallback
//
// A custom directory holds styles/{name}.css. Style names are validated
// before any path is built, and FilesystemLoader resolves symlinks so a
// style can never be read from outside its base directory.
package assets
