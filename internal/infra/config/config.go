package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level toolkit configuration.
type Config struct {
	Tools    ToolsConfig    `yaml:"tools"`
	Logger   LoggerConfig   `yaml:"logger"`
	Tracer   TracerConfig   `yaml:"tracer"`
	Security SecurityConfig `yaml:"security"`
}

// ToolsConfig holds tool surface settings.
type ToolsConfig struct {
	SandboxRoot       string        `yaml:"sandbox_root"`
	FilesystemBackend string        `yaml:"filesystem_backend"`
	RateLimit         int           `yaml:"rate_limit"`        // mutating calls per window; 0 = unlimited
	RateLimitWindow   time.Duration `yaml:"rate_limit_window"` // default 1m
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// TracerConfig holds tracing settings.
type TracerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
}

// SecurityConfig holds audit settings.
type SecurityConfig struct {
	Audit AuditConfig `yaml:"audit"`
}

// AuditConfig holds audit trail settings.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Tools: ToolsConfig{
			SandboxRoot:       ".",
			FilesystemBackend: "local",
			RateLimit:         0,
			RateLimitWindow:   time.Minute,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Tracer: TracerConfig{
			Enabled:  false,
			Exporter: "noop",
		},
		Security: SecurityConfig{
			Audit: AuditConfig{
				Enabled: false,
				Path:    "audit.jsonl",
			},
		},
	}
}

// Load reads YAML config from path, merged over Defaults().
// A missing file returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets environment variables override file settings.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FILEKIT_SANDBOX_ROOT"); v != "" {
		cfg.Tools.SandboxRoot = v
	}
	if v := os.Getenv("FILEKIT_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
}

// Validate checks the configuration for inconsistencies.
func Validate(cfg *Config) error {
	switch cfg.Logger.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logger.format: unsupported format %q", cfg.Logger.Format)
	}
	switch cfg.Tracer.Exporter {
	case "", "noop", "stdout":
	default:
		return fmt.Errorf("tracer.exporter: unsupported exporter %q", cfg.Tracer.Exporter)
	}
	if cfg.Tools.RateLimit < 0 {
		return fmt.Errorf("tools.rate_limit: must be >= 0, got %d", cfg.Tools.RateLimit)
	}
	if cfg.Tools.RateLimit > 0 && cfg.Tools.RateLimitWindow <= 0 {
		return fmt.Errorf("tools.rate_limit_window: must be > 0 when rate_limit is set")
	}
	if cfg.Security.Audit.Enabled && cfg.Security.Audit.Path == "" {
		return fmt.Errorf("security.audit.path: required when audit is enabled")
	}
	if cfg.Tools.FilesystemBackend != "" && cfg.Tools.FilesystemBackend != "local" {
		return fmt.Errorf("tools.filesystem_backend: unknown backend %q", cfg.Tools.FilesystemBackend)
	}
	if cfg.Tools.SandboxRoot != "" {
		if _, err := filepath.Abs(cfg.Tools.SandboxRoot); err != nil {
			return fmt.Errorf("tools.sandbox_root: %w", err)
		}
	}
	return nil
}
