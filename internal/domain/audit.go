package domain

import (
	"context"
	"time"
)

// AuditEventType classifies audit log entries.
type AuditEventType string

const (
	AuditFileWrite    AuditEventType = "file_write"
	AuditFileDelete   AuditEventType = "file_delete"
	AuditFileMove     AuditEventType = "file_move"
	AuditAccessDenied AuditEventType = "access_denied"
	AuditToolExec     AuditEventType = "tool_exec"
)

// AuditEvent represents a single auditable action.
type AuditEvent struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Type      AuditEventType    `json:"type"`
	Detail    map[string]string `json:"detail,omitempty"`

	Actor    string `json:"actor,omitempty"`
	Resource string `json:"resource,omitempty"`
	Action   string `json:"action,omitempty"`
	Outcome  string `json:"outcome,omitempty"`
}

// AuditLogger records auditable actions.
type AuditLogger interface {
	Log(ctx context.Context, event AuditEvent) error
	Close() error
}
