package tool

// FilesystemBackend abstracts the filesystem operations the tool exposes.
type FilesystemBackend interface {
	// ReadFile returns the complete contents of the named file.
	ReadFile(path string) (string, error)
	// WriteFile writes content to the named file, creating missing parent
	// directories and overwriting an existing file.
	WriteFile(path, content string) error
	// ListDir returns the names of the direct children of the named directory.
	ListDir(path string) ([]string, error)
	// DeleteFile removes the named regular file.
	DeleteFile(path string) error
	// MoveFile relocates a regular file, creating the destination's parents.
	MoveFile(src, dst string) error
	// Name returns the backend identifier (e.g. "local").
	Name() string
}
