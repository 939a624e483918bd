package tool

import (
	"strings"
)

// retryablePatterns are substrings in error messages that indicate transient
// platform failures. Checked case-insensitively. The typed filesystem kinds
// (not found, wrong type) are permanent and never retryable; only a subset
// of the raw causes behind an i/o failure is worth retrying.
var retryablePatterns = []string{
	"resource temporarily unavailable", // EAGAIN
	"interrupted system call",          // EINTR
	"device or resource busy",          // EBUSY
	"text file busy",
	"too many open files",
	"try again",
}

// classifyToolError returns true if the error is transient and the tool call
// may succeed on retry. Returns false for nil, permanent, or unknown errors.
func classifyToolError(err error) bool {
	if err == nil {
		return false
	}

	lower := strings.ToLower(err.Error())
	for _, p := range retryablePatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}

	return false
}
