// Package filekit is a filesystem base-tool kit: five wrapper operations
// around the platform filesystem API with a closed, typed error vocabulary,
// plus an optional sandboxed agent-tool surface over them.
package filekit

import (
	"filekit/internal/domain"
	"filekit/internal/fsops"
)

// Error kinds surfaced by the file operations. Match with errors.Is.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrNotADirectory = domain.ErrNotADirectory
	ErrIsADirectory  = domain.ErrIsADirectory
	ErrIOFailure     = domain.ErrIOFailure

	// ErrPathOutsideSandbox is returned by the tool surface when a path
	// escapes the workspace root.
	ErrPathOutsideSandbox = domain.ErrPathOutsideSandbox
)

// FSError is the structured error wrapping every operation failure: the
// sentinel kind, the offending path(s), and the platform cause if any.
type FSError = domain.FSError

// ErrorCode is a machine-parseable error category.
type ErrorCode = domain.ErrorCode

// ErrorCodeOf returns the machine-parseable code for err.
func ErrorCodeOf(err error) ErrorCode { return domain.ErrorCodeOf(err) }

// ReadFile returns the complete contents of the file at path as UTF-8 text.
// Fails with ErrNotFound if path does not exist, ErrIOFailure otherwise.
func ReadFile(path string) (string, error) { return fsops.Read(path) }

// WriteFile persists content to path as UTF-8 text, creating missing parent
// directories and replacing an existing file's contents entirely.
// Fails with ErrIOFailure.
func WriteFile(path, content string) error { return fsops.Write(path, content) }

// ListDir returns the names of the direct children of the directory at
// path, one level deep. Ordering is not meaningful. Fails with ErrNotFound,
// ErrNotADirectory, or ErrIOFailure.
func ListDir(path string) ([]string, error) { return fsops.List(path) }

// DeleteFile removes the regular file at path. Fails with ErrNotFound,
// ErrIsADirectory (directories are never deleted), or ErrIOFailure.
func DeleteFile(path string) error { return fsops.Delete(path) }

// MoveFile relocates the regular file at src to dst, creating dst's missing
// parent directories. An existing destination is overwritten (POSIX rename
// semantics). Fails with ErrNotFound or ErrIsADirectory for src,
// ErrIOFailure otherwise.
func MoveFile(src, dst string) error { return fsops.Move(src, dst) }

// FileExists reports whether path exists.
func FileExists(path string) (bool, error) { return fsops.Exists(path) }
