package tool

import (
	"errors"
	"fmt"
	"testing"

	"filekit/internal/domain"
)

func TestClassifyToolErrorNil(t *testing.T) {
	if classifyToolError(nil) {
		t.Error("nil error should be non-retryable")
	}
}

func TestClassifyToolErrorTransientCauses(t *testing.T) {
	causes := []string{
		"resource temporarily unavailable",
		"open /ws/a.txt: interrupted system call",
		"remove /ws/b: device or resource busy",
		"Text File Busy",
		"too many open files",
	}
	for _, msg := range causes {
		err := domain.NewFSError("fsops.Write", "/ws/a.txt", domain.ErrIOFailure, errors.New(msg))
		if !classifyToolError(err) {
			t.Errorf("cause %q should be retryable", msg)
		}
	}
}

func TestClassifyToolErrorPermanentKinds(t *testing.T) {
	permanents := []error{
		domain.NewFSError("fsops.Read", "/ws/missing", domain.ErrNotFound, nil),
		domain.NewFSError("fsops.List", "/ws/a.txt", domain.ErrNotADirectory, nil),
		domain.NewFSError("fsops.Delete", "/ws/dir", domain.ErrIsADirectory, nil),
		domain.ErrPathOutsideSandbox,
		fmt.Errorf("wrap: %w", domain.ErrInvalidInput),
		errors.New("permission denied"),
	}
	for _, err := range permanents {
		if classifyToolError(err) {
			t.Errorf("%v should not be retryable", err)
		}
	}
}
