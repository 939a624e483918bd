// Package fsops provides thin wrappers around the platform filesystem API
// with a closed, typed error vocabulary.
//
// Every operation is synchronous, stateless, and independent: it validates
// its target, delegates to the platform primitive, and maps the failure to
// one of the domain sentinels (ErrNotFound, ErrNotADirectory,
// ErrIsADirectory, ErrIOFailure) wrapped in an *domain.FSError. No failure
// is retried or recovered internally.
//
// Concurrent calls targeting the same path are not coordinated; two
// concurrent writers, or a delete racing a read, produce whatever the
// platform permits. Callers needing cancellation or timeouts must wrap
// these calls in their own concurrency primitives.
package fsops

import (
	"os"
	"path/filepath"

	"filekit/internal/domain"
)

// Read returns the complete contents of the file at path as a UTF-8 string.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.NewFSError("fsops.Read", path, domain.ErrNotFound, nil)
		}
		return "", domain.NewFSError("fsops.Read", path, domain.ErrIOFailure, err)
	}
	return string(data), nil
}

// Write persists content to path as UTF-8 text, creating any missing parent
// directories and replacing an existing file's contents entirely.
func Write(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.NewFSError("fsops.Write", path, domain.ErrIOFailure, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return domain.NewFSError("fsops.Write", path, domain.ErrIOFailure, err)
	}
	return nil
}

// List returns the names of the direct children of the directory at path.
// Names are entry names, not full paths, one level deep. The platform
// happens to return them in lexical order; callers must not rely on any
// particular ordering.
func List(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFSError("fsops.List", path, domain.ErrNotFound, nil)
		}
		return nil, domain.NewFSError("fsops.List", path, domain.ErrIOFailure, err)
	}
	if !info.IsDir() {
		return nil, domain.NewFSError("fsops.List", path, domain.ErrNotADirectory, nil)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, domain.NewFSError("fsops.List", path, domain.ErrIOFailure, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Delete removes the regular file at path. Directories are never deleted.
func Delete(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewFSError("fsops.Delete", path, domain.ErrNotFound, nil)
		}
		return domain.NewFSError("fsops.Delete", path, domain.ErrIOFailure, err)
	}
	if info.IsDir() {
		return domain.NewFSError("fsops.Delete", path, domain.ErrIsADirectory, nil)
	}

	if err := os.Remove(path); err != nil {
		return domain.NewFSError("fsops.Delete", path, domain.ErrIOFailure, err)
	}
	return nil
}

// Move relocates the regular file at src to dst, creating dst's parent
// directories if missing. An existing destination file is overwritten
// (POSIX rename semantics).
func Move(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewMoveError("fsops.Move", src, dst, domain.ErrNotFound, nil)
		}
		return domain.NewMoveError("fsops.Move", src, dst, domain.ErrIOFailure, err)
	}
	if info.IsDir() {
		return domain.NewMoveError("fsops.Move", src, dst, domain.ErrIsADirectory, nil)
	}

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.NewMoveError("fsops.Move", src, dst, domain.ErrIOFailure, err)
		}
	}

	if err := os.Rename(src, dst); err != nil {
		return domain.NewMoveError("fsops.Move", src, dst, domain.ErrIOFailure, err)
	}
	return nil
}

// Exists reports whether path exists. A false result with a non-nil error
// means existence could not be determined.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, domain.NewFSError("fsops.Exists", path, domain.ErrIOFailure, err)
}
