// Package middleware emits middleware wiring snippets keyed by kind. Each
// kind has hardcoded default options; a user-supplied JSON blob overrides
// individual keys, and a malformed blob falls back to the defaults with a
// warning instead of failing the command.
package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnsupportedType indicates a middleware kind with no registered
// defaults/renderer.
var ErrUnsupportedType = errors.New("unsupported middleware type")

// Config is a middleware kind plus its resolved option map.
type Config struct {
	Type    string
	Options map[string]any
}

// defaults is the per-kind option table. Keys here are the complete option
// surface; JSON overrides may only replace values, not invent new knobs.
var defaults = map[string]map[string]any{
	"auth": {
		"secretEnv": "JWT_SECRET",
		"algorithm": "HS256",
		"expiresIn": "7d",
	},
	"cors": {
		"origin":      "*",
		"methods":     "GET,POST,PUT,DELETE,OPTIONS",
		"credentials": false,
	},
	"rate-limit": {
		"max":    float64(100),
		"window": float64(60000),
	},
	"cache": {
		"ttl":     float64(60),
		"maxSize": float64(1000),
	},
	"validation": {
		"stripUnknown": true,
		"abortEarly":   false,
	},
	"helmet": {
		"contentSecurityPolicy": true,
		"frameguard":            true,
		"hsts":                  true,
	},
	"compression": {
		"threshold": float64(1024),
		"level":     float64(6),
	},
}

// SupportedTypes returns the middleware kind names, sorted.
func SupportedTypes() []string {
	types := make([]string, 0, len(defaults))
	for t := range defaults {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Resolve builds a Config for the given kind. rawJSON overrides defaults
// key by key; a parse failure keeps the defaults and returns a warning
// string (empty when nothing went wrong).
func Resolve(kind, rawJSON string) (*Config, string, error) {
	base, ok := defaults[kind]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedType, kind, strings.Join(SupportedTypes(), ", "))
	}

	opts := make(map[string]any, len(base))
	for k, v := range base {
		opts[k] = v
	}

	warning := ""
	if strings.TrimSpace(rawJSON) != "" {
		var overrides map[string]any
		if err := json.Unmarshal([]byte(rawJSON), &overrides); err != nil {
			warning = fmt.Sprintf("invalid --config JSON (%v); using %s defaults", err, kind)
		} else {
			for k, v := range overrides {
				opts[k] = v
			}
		}
	}

	return &Config{Type: kind, Options: opts}, warning, nil
}

// Manager writes middleware snippet files into a project tree.
type Manager struct {
	root   string
	logger *slog.Logger
}

// NewManager creates a Manager rooted at the project directory.
func NewManager(root string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{root: root, logger: logger}
}

// Add resolves the kind's configuration and writes its wiring snippet to
// src/middleware/<kind>.ts. The returned warning is non-empty when a
// malformed JSON override was ignored.
func (m *Manager) Add(kind, rawJSON string) (string, string, error) {
	cfg, warning, err := Resolve(kind, rawJSON)
	if err != nil {
		return "", "", err
	}
	if warning != "" {
		m.logger.Warn("middleware config override rejected", "type", kind, "warning", warning)
	}

	content, err := render(cfg)
	if err != nil {
		return "", warning, err
	}

	relPath := filepath.Join("src", "middleware", fileName(kind))
	full := filepath.Join(m.root, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", warning, fmt.Errorf("mkdir for %s: %w", relPath, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return "", warning, fmt.Errorf("write %s: %w", relPath, err)
	}

	m.logger.Info("middleware added", "type", kind, "file", relPath)
	return relPath, warning, nil
}

// fileName maps a kind to its generated file name ("rate-limit" →
// "rate-limit.ts").
func fileName(kind string) string {
	return kind + ".ts"
}

// render emits the wiring snippet: the factory import, the resolved options
// object, and the app.use registration helper.
func render(cfg *Config) (string, error) {
	optJSON, err := json.MarshalIndent(cfg.Options, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s options: %w", cfg.Type, err)
	}

	factory := factoryName(cfg.Type)
	var b strings.Builder
	fmt.Fprintf(&b, "import { %s } from '@voltjs/core/middleware';\n", factory)
	b.WriteString("import type { App } from '@voltjs/core';\n\n")
	fmt.Fprintf(&b, "export const %sOptions = %s as const;\n\n", factory, string(optJSON))
	fmt.Fprintf(&b, "export const register = (app: App) => app.use(%s(%sOptions));\n", factory, factory)
	return b.String(), nil
}

// factoryName maps a kind to the framework's middleware factory identifier.
func factoryName(kind string) string {
	switch kind {
	case "rate-limit":
		return "rateLimit"
	default:
		return kind
	}
}
