package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"filekit/internal/domain"
	"filekit/internal/security"
)

// FilesystemTool exposes sandboxed file read/write/list/delete/move
// operations through the tool interface.
type FilesystemTool struct {
	backend    FilesystemBackend
	sandbox    *security.Sandbox
	logger     *slog.Logger
	audit      domain.AuditLogger // nil = no audit trail
	mutLimiter *RateLimiter       // nil = unlimited mutations
}

// NewFilesystemTool creates a sandboxed filesystem tool backed by the given FilesystemBackend.
func NewFilesystemTool(backend FilesystemBackend, sandbox *security.Sandbox, logger *slog.Logger) *FilesystemTool {
	return &FilesystemTool{backend: backend, sandbox: sandbox, logger: logger}
}

// EnableAudit records mutating operations and denied accesses to the given logger.
func (t *FilesystemTool) EnableAudit(a domain.AuditLogger) {
	t.audit = a
}

// EnableRateLimit caps mutating actions (write, delete, move) to limit calls per window.
func (t *FilesystemTool) EnableRateLimit(limit int, window time.Duration) {
	t.mutLimiter = NewRateLimiter(limit, window)
}

func (t *FilesystemTool) Name() string { return "filesystem" }
func (t *FilesystemTool) Description() string {
	return "Read, write, list, delete, and move files within the workspace"
}

func (t *FilesystemTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"action": {"type": "string", "enum": ["read", "write", "list", "delete", "move"], "description": "The file operation to perform"},
				"path": {"type": "string", "description": "File or directory path (source path for move)"},
				"content": {"type": "string", "description": "Content to write (only for write action)"},
				"destination": {"type": "string", "description": "Destination path (only for move action)"}
			},
			"required": ["action"]
		}`),
	}
}

type filesystemParams struct {
	Action      string `json:"action"`
	Path        string `json:"path"`
	Content     string `json:"content,omitempty"`
	Destination string `json:"destination,omitempty"`
}

func (t *FilesystemTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.filesystem", t.logger, params,
		Dispatch(func(p filesystemParams) string { return p.Action }, ActionMap[filesystemParams]{
			"read":   t.readFile,
			"write":  t.writeFile,
			"list":   t.listDir,
			"delete": t.deleteFile,
			"move":   t.moveFile,
		}),
	)
}

func (t *FilesystemTool) resolvePath(ctx context.Context, path string) (string, error) {
	if path == "" || path == "." {
		return t.sandbox.Root(), nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(t.sandbox.Root(), path)
	}
	resolved, err := t.sandbox.ValidatePath(path)
	if err != nil {
		t.auditDenied(ctx, path, err)
	}
	return resolved, err
}

func (t *FilesystemTool) allowMutation() error {
	if t.mutLimiter != nil && !t.mutLimiter.Allow() {
		return fmt.Errorf("mutation rate limit exceeded (max calls per window reached)")
	}
	return nil
}

func (t *FilesystemTool) readFile(ctx context.Context, p filesystemParams) (any, error) {
	resolved, err := t.resolvePath(ctx, p.Path)
	if err != nil {
		return nil, err
	}

	content, err := t.backend.ReadFile(resolved)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("filesystem read", "path", resolved, "size", len(content))
	return TextResult(content), nil
}

func (t *FilesystemTool) writeFile(ctx context.Context, p filesystemParams) (any, error) {
	if err := RequireFields("path", p.Path); err != nil {
		return nil, err
	}
	if err := t.allowMutation(); err != nil {
		return nil, err
	}

	resolved, err := t.resolvePath(ctx, p.Path)
	if err != nil {
		return nil, err
	}

	if err := t.backend.WriteFile(resolved, p.Content); err != nil {
		return nil, err
	}

	t.logger.Debug("filesystem write", "path", resolved, "size", len(p.Content))
	t.auditMutation(ctx, domain.AuditFileWrite, resolved, map[string]string{
		"bytes": fmt.Sprintf("%d", len(p.Content)),
	})
	return TextResult(fmt.Sprintf("wrote %d bytes to %s", len(p.Content), p.Path)), nil
}

func (t *FilesystemTool) listDir(ctx context.Context, p filesystemParams) (any, error) {
	resolved, err := t.resolvePath(ctx, p.Path)
	if err != nil {
		return nil, err
	}

	names, err := t.backend.ListDir(resolved)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}

	return TextResult(sb.String()), nil
}

func (t *FilesystemTool) deleteFile(ctx context.Context, p filesystemParams) (any, error) {
	if err := RequireFields("path", p.Path); err != nil {
		return nil, err
	}
	if err := t.allowMutation(); err != nil {
		return nil, err
	}

	resolved, err := t.resolvePath(ctx, p.Path)
	if err != nil {
		return nil, err
	}

	if err := t.backend.DeleteFile(resolved); err != nil {
		return nil, err
	}

	t.logger.Debug("filesystem delete", "path", resolved)
	t.auditMutation(ctx, domain.AuditFileDelete, resolved, nil)
	return TextResult(fmt.Sprintf("deleted %s", p.Path)), nil
}

func (t *FilesystemTool) moveFile(ctx context.Context, p filesystemParams) (any, error) {
	if err := RequireFields("path", p.Path, "destination", p.Destination); err != nil {
		return nil, err
	}
	if err := t.allowMutation(); err != nil {
		return nil, err
	}

	src, err := t.resolvePath(ctx, p.Path)
	if err != nil {
		return nil, err
	}
	dst, err := t.resolvePath(ctx, p.Destination)
	if err != nil {
		return nil, err
	}

	if err := t.backend.MoveFile(src, dst); err != nil {
		return nil, err
	}

	t.logger.Debug("filesystem move", "source", src, "destination", dst)
	t.auditMutation(ctx, domain.AuditFileMove, src, map[string]string{"destination": dst})
	return TextResult(fmt.Sprintf("moved %s to %s", p.Path, p.Destination)), nil
}

func (t *FilesystemTool) auditMutation(ctx context.Context, typ domain.AuditEventType, resource string, detail map[string]string) {
	if t.audit == nil {
		return
	}
	err := t.audit.Log(ctx, domain.AuditEvent{
		Type:     typ,
		Resource: resource,
		Action:   string(typ),
		Outcome:  "success",
		Detail:   detail,
	})
	if err != nil {
		t.logger.Warn("audit write failed", "error", err)
	}
}

func (t *FilesystemTool) auditDenied(ctx context.Context, path string, cause error) {
	if t.audit == nil {
		return
	}
	err := t.audit.Log(ctx, domain.AuditEvent{
		Type:     domain.AuditAccessDenied,
		Resource: path,
		Outcome:  "denied",
		Detail:   map[string]string{"error": cause.Error()},
	})
	if err != nil {
		t.logger.Warn("audit write failed", "error", err)
	}
}
