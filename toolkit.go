package filekit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"filekit/internal/adapter/tool"
	"filekit/internal/domain"
	"filekit/internal/infra/config"
	"filekit/internal/infra/logger"
	"filekit/internal/infra/tracer"
	"filekit/internal/security"
)

// Config is the toolkit configuration. Load one with LoadConfig or start
// from DefaultConfig.
type Config = config.Config

// DefaultConfig returns the default toolkit configuration.
func DefaultConfig() *Config { return config.Defaults() }

// LoadConfig reads YAML configuration from path, merged over defaults.
// A missing file returns the defaults.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// Tool surface contracts.
type (
	Tool       = domain.Tool
	ToolSchema = domain.ToolSchema
	ToolCall   = domain.ToolCall
	ToolResult = domain.ToolResult
)

// Toolkit wires the filesystem tool, sandbox, audit trail, logging, and
// tracing into a ready-to-use tool registry for in-process callers.
type Toolkit struct {
	logger   *slog.Logger
	registry *tool.Registry

	logClose    func() error
	audit       *security.FileAuditLogger
	traceCancel func(context.Context) error
}

// New creates a Toolkit from cfg. Pass nil for defaults.
func New(ctx context.Context, cfg *Config) (*Toolkit, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, domain.NewDomainError("filekit.New", domain.ErrConfigLoad, err.Error())
	}

	log, logClose, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, err
	}

	traceShutdown, err := tracer.Setup(ctx, cfg.Tracer)
	if err != nil {
		_ = logClose()
		return nil, err
	}

	kit := &Toolkit{
		logger:      log,
		registry:    tool.NewRegistry(log),
		logClose:    logClose,
		traceCancel: traceShutdown,
	}

	sandbox, err := security.NewSandbox(cfg.Tools.SandboxRoot)
	if err != nil {
		_ = kit.Close(ctx)
		return nil, err
	}

	fs := tool.NewFilesystemTool(tool.NewLocalFilesystemBackend(), sandbox, log)

	if cfg.Security.Audit.Enabled {
		audit, err := security.NewFileAuditLogger(cfg.Security.Audit.Path)
		if err != nil {
			_ = kit.Close(ctx)
			return nil, err
		}
		kit.audit = audit
		fs.EnableAudit(audit)
	}

	if cfg.Tools.RateLimit > 0 {
		fs.EnableRateLimit(cfg.Tools.RateLimit, cfg.Tools.RateLimitWindow)
	}

	if err := kit.registry.Register(fs); err != nil {
		_ = kit.Close(ctx)
		return nil, err
	}

	log.Info("toolkit ready", "sandbox_root", sandbox.Root(), "backend", cfg.Tools.FilesystemBackend)
	return kit, nil
}

// Schemas returns the schemas of all registered tools.
func (k *Toolkit) Schemas() []ToolSchema { return k.registry.Schemas() }

// Get retrieves a registered tool by name.
func (k *Toolkit) Get(name string) (Tool, error) { return k.registry.Get(name) }

// Execute runs a tool call and returns its result. The result carries the
// call's ID; tool-level failures come back in the result, not as an error.
func (k *Toolkit) Execute(ctx context.Context, call ToolCall) (*ToolResult, error) {
	t, err := k.registry.Get(call.Name)
	if err != nil {
		return nil, err
	}

	result, err := t.Execute(ctx, call.Arguments)
	if err != nil {
		return nil, err
	}
	result.ToolCallID = call.ID
	return result, nil
}

// Close releases the toolkit's resources: audit log, tracer, log output.
func (k *Toolkit) Close(ctx context.Context) error {
	var errs []error
	if k.audit != nil {
		if err := k.audit.Close(); err != nil {
			errs = append(errs, err)
		}
		k.audit = nil
	}
	if k.traceCancel != nil {
		if err := k.traceCancel(ctx); err != nil {
			errs = append(errs, err)
		}
		k.traceCancel = nil
	}
	if k.logClose != nil {
		if err := k.logClose(); err != nil {
			errs = append(errs, err)
		}
		k.logClose = nil
	}
	return errors.Join(errs...)
}

// RawParams is a convenience for building tool arguments from a value.
func RawParams(v any) (json.RawMessage, error) {
	return json.Marshal(v)
}
