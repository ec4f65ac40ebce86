// Package deploy emits cloud deployment manifests keyed by target name:
// vercel.json, serverless.yml for AWS Lambda, and wrangler.toml for
// Cloudflare Workers.
package deploy

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

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedType indicates a deployment target with no registered
// renderer.
var ErrUnsupportedType = errors.New("unsupported deployment target")

// Spec describes one "volt deploy <target>" invocation.
type Spec struct {
	Target      string
	ProjectName string
	Region      string
	Env         map[string]string
}

// targetRenderer maps a Spec to one or more manifest files.
type targetRenderer func(spec *Spec) (map[string]string, error)

var targetRenderers = map[string]targetRenderer{
	"vercel":  renderVercel,
	"lambda":  renderLambda,
	"workers": renderWorkers,
}

// SupportedTargets returns the deployment target names, sorted.
func SupportedTargets() []string {
	targets := make([]string, 0, len(targetRenderers))
	for t := range targetRenderers {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}

// Manager writes deployment manifests into a project tree.
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

// Setup renders and writes the manifest files for the given target. An
// unknown target fails before anything is written.
func (m *Manager) Setup(spec *Spec) ([]string, error) {
	render, ok := targetRenderers[spec.Target]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedType, spec.Target, strings.Join(SupportedTargets(), ", "))
	}
	if spec.ProjectName == "" {
		spec.ProjectName = filepath.Base(m.root)
	}

	files, err := render(spec)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for name := range files {
		written = append(written, name)
	}
	sort.Strings(written)

	for _, name := range written {
		if err := os.WriteFile(filepath.Join(m.root, name), []byte(files[name]), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}

	m.logger.Info("deployment manifests written", "target", spec.Target, "files", len(written))
	return written, nil
}

func renderVercel(spec *Spec) (map[string]string, error) {
	manifest := map[string]any{
		"version": 2,
		"name":    spec.ProjectName,
		"builds": []map[string]any{
			{"src": "src/index.ts", "use": "@vercel/node"},
		},
		"routes": []map[string]any{
			{"src": "/(.*)", "dest": "src/index.ts"},
		},
	}
	if len(spec.Env) > 0 {
		manifest["env"] = spec.Env
	}
	if spec.Region != "" {
		manifest["regions"] = []string{spec.Region}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal vercel.json: %w", err)
	}
	return map[string]string{"vercel.json": string(data) + "\n"}, nil
}

// serverlessManifest models serverless.yml for the Lambda target.
type serverlessManifest struct {
	Service   string `yaml:"service"`
	Framework string `yaml:"frameworkVersion"`
	Provider  struct {
		Name        string            `yaml:"name"`
		Runtime     string            `yaml:"runtime"`
		Region      string            `yaml:"region"`
		Environment map[string]string `yaml:"environment,omitempty"`
	} `yaml:"provider"`
	Functions map[string]serverlessFunction `yaml:"functions"`
}

type serverlessFunction struct {
	Handler string              `yaml:"handler"`
	Events  []map[string]any    `yaml:"events"`
}

func renderLambda(spec *Spec) (map[string]string, error) {
	region := spec.Region
	if region == "" {
		region = "us-east-1"
	}

	var m serverlessManifest
	m.Service = spec.ProjectName
	m.Framework = "4"
	m.Provider.Name = "aws"
	m.Provider.Runtime = "nodejs22.x"
	m.Provider.Region = region
	m.Provider.Environment = spec.Env
	m.Functions = map[string]serverlessFunction{
		"app": {
			Handler: "dist/index.handler",
			Events: []map[string]any{
				{"httpApi": map[string]any{"path": "/{proxy+}", "method": "ANY"}},
			},
		},
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("marshal serverless.yml: %w", err)
	}
	return map[string]string{"serverless.yml": string(data)}, nil
}

func renderWorkers(spec *Spec) (map[string]string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "name = %q\n", spec.ProjectName)
	b.WriteString("main = \"src/index.ts\"\n")
	b.WriteString("compatibility_date = \"2025-01-01\"\n")
	if len(spec.Env) > 0 {
		b.WriteString("\n[vars]\n")
		keys := make([]string, 0, len(spec.Env))
		for k := range spec.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s = %q\n", k, spec.Env[k])
		}
	}
	return map[string]string{"wrangler.toml": b.String()}, nil
}
