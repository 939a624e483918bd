package domain

import (
	"errors"
	"fmt"
)

// Filesystem error kinds. Every failure surfaced by fsops is exactly one
// of these, wrapped in an *FSError. Match with errors.Is.
var (
	ErrNotFound      = fmt.Errorf("not found")
	ErrNotADirectory = fmt.Errorf("not a directory")
	ErrIsADirectory  = fmt.Errorf("is a directory")
	ErrIOFailure     = fmt.Errorf("i/o failure")
)

// Sentinel errors for the surrounding layers.
var (
	ErrPathOutsideSandbox = fmt.Errorf("path is outside sandbox boundary")
	ErrToolNotFound       = fmt.Errorf("tool not found")
	ErrInvalidInput       = fmt.Errorf("invalid input")
	ErrAuditWrite         = fmt.Errorf("audit log write failed")
	ErrConfigLoad         = fmt.Errorf("failed to load configuration")
)

// FSError wraps a sentinel kind with the offending path(s) and, where
// applicable, the underlying platform error.
type FSError struct {
	Op    string // operation name (e.g. "fsops.Read")
	Path  string // primary path the operation was invoked on
	Dest  string // destination path; set only for move
	Err   error  // sentinel kind (ErrNotFound, ErrIOFailure, ...)
	Cause error  // underlying platform error; nil for pre-checked failures
}

func (e *FSError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Op, e.Path)
	if e.Dest != "" {
		msg += " -> " + e.Dest
	}
	msg += ": " + e.Err.Error()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel kind and the platform cause, so callers
// can branch on either with errors.Is.
func (e *FSError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewFSError creates an FSError for a single-path operation.
func NewFSError(op, path string, kind, cause error) *FSError {
	return &FSError{Op: op, Path: path, Err: kind, Cause: cause}
}

// NewMoveError creates an FSError carrying both source and destination.
func NewMoveError(op, src, dst string, kind, cause error) *FSError {
	return &FSError{Op: op, Path: src, Dest: dst, Err: kind, Cause: cause}
}

// DomainError wraps a sentinel error with operation context. Used by the
// non-filesystem layers (sandbox, registry, audit).
type DomainError struct {
	Op     string // operation name (e.g. "Sandbox.ValidatePath")
	Err    error  // underlying sentinel
	Detail string // human-readable detail
}

func (e *DomainError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewDomainError creates a new DomainError.
func NewDomainError(op string, err error, detail string) *DomainError {
	return &DomainError{Op: op, Err: err, Detail: detail}
}

// WrapOp adds operation context to an error using fmt.Errorf wrapping.
// Returns nil if err is nil, enabling idiomatic use: return domain.WrapOp("op", err)
func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ErrorCode is a machine-parseable error category for monitoring and alerting.
type ErrorCode string

// Error codes. Every sentinel maps to exactly one code.
const (
	CodeUnknown            ErrorCode = "UNKNOWN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeNotADirectory      ErrorCode = "NOT_A_DIRECTORY"
	CodeIsADirectory       ErrorCode = "IS_A_DIRECTORY"
	CodeIOFailure          ErrorCode = "IO_FAILURE"
	CodePathOutsideSandbox ErrorCode = "PATH_OUTSIDE_SANDBOX"
	CodeToolNotFound       ErrorCode = "TOOL_NOT_FOUND"
	CodeInvalidInput       ErrorCode = "INVALID_INPUT"
	CodeAuditWrite         ErrorCode = "AUDIT_WRITE"
	CodeConfigLoad         ErrorCode = "CONFIG_LOAD"
)

// errorCodeMap maps sentinel errors to their machine-parseable codes.
var errorCodeMap = map[error]ErrorCode{
	ErrNotFound:           CodeNotFound,
	ErrNotADirectory:      CodeNotADirectory,
	ErrIsADirectory:       CodeIsADirectory,
	ErrIOFailure:          CodeIOFailure,
	ErrPathOutsideSandbox: CodePathOutsideSandbox,
	ErrToolNotFound:       CodeToolNotFound,
	ErrInvalidInput:       CodeInvalidInput,
	ErrAuditWrite:         CodeAuditWrite,
	ErrConfigLoad:         CodeConfigLoad,
}

// ErrorCodeOf returns the machine-parseable error code for the given error.
// It walks the error chain with errors.Is, so wrapped FSErrors and
// DomainErrors resolve to the code of their sentinel kind.
// Returns CodeUnknown if no matching sentinel is found.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	// Fast path: direct sentinel lookup.
	if code, ok := errorCodeMap[err]; ok {
		return code
	}

	for sentinel, code := range errorCodeMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}

	return CodeUnknown
}
