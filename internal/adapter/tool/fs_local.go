package tool

import "filekit/internal/fsops"

// LocalFilesystemBackend performs file I/O on the local filesystem.
type LocalFilesystemBackend struct{}

// NewLocalFilesystemBackend creates a local filesystem backend.
func NewLocalFilesystemBackend() *LocalFilesystemBackend {
	return &LocalFilesystemBackend{}
}

func (b *LocalFilesystemBackend) Name() string { return "local" }

func (b *LocalFilesystemBackend) ReadFile(path string) (string, error) {
	return fsops.Read(path)
}

func (b *LocalFilesystemBackend) WriteFile(path, content string) error {
	return fsops.Write(path, content)
}

func (b *LocalFilesystemBackend) ListDir(path string) ([]string, error) {
	return fsops.List(path)
}

func (b *LocalFilesystemBackend) DeleteFile(path string) error {
	return fsops.Delete(path)
}

func (b *LocalFilesystemBackend) MoveFile(src, dst string) error {
	return fsops.Move(src, dst)
}
