// Package devtools wraps the development-time subprocesses a generated
// project relies on: the dev server, the production build, the linter, the
// test runner, and the dependency audit. Each tool is invoked exactly once
// per command; there is no retry and no timeout, so a hung subprocess
// blocks the CLI until it exits.
package devtools

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/shell"
)

// Tools runs development subprocesses in a project directory.
type Tools struct {
	exec   *shell.Executor
	logger *slog.Logger
}

// New creates Tools rooted at the project directory.
func New(root string, logger *slog.Logger) *Tools {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tools{exec: shell.NewExecutor(root, logger), logger: logger}
}

// DevOptions configures the dev server.
type DevOptions struct {
	Port  int
	Host  string
	Watch bool
}

// Dev starts the development server with inherited standard streams and
// blocks until it exits.
func (t *Tools) Dev(ctx context.Context, opts DevOptions) error {
	if !shell.Available("npx") {
		return fmt.Errorf("npx not found on PATH; install Node.js first")
	}
	if opts.Port == 0 {
		opts.Port = config.DefaultDevPort
	}
	if opts.Host == "" {
		opts.Host = config.DefaultDevHost
	}

	args := []string{"tsx"}
	if opts.Watch {
		args = append(args, "watch")
	}
	args = append(args, "src/index.ts")

	t.logger.Info("starting dev server", "host", opts.Host, "port", opts.Port, "watch", opts.Watch)
	env := map[string]string{
		"PORT": strconv.Itoa(opts.Port),
		"HOST": opts.Host,
	}
	return t.exec.RunStreamEnv(ctx, env, "npx", args...)
}

// BuildOptions configures the production build.
type BuildOptions struct {
	Target string // "node" (default) or "bun"
	Output string // output directory, default "dist"
	Minify bool
}

// Build compiles the project for production.
func (t *Tools) Build(ctx context.Context, opts BuildOptions) error {
	if opts.Output == "" {
		opts.Output = "dist"
	}

	if opts.Target == "bun" {
		if !shell.Available("bun") {
			return fmt.Errorf("bun not found on PATH")
		}
		args := []string{"build", "src/index.ts", "--outdir", opts.Output, "--target", "bun"}
		if opts.Minify {
			args = append(args, "--minify")
		}
		return t.exec.RunStream(ctx, "bun", args...)
	}

	if !shell.Available("npx") {
		return fmt.Errorf("npx not found on PATH; install Node.js first")
	}
	args := []string{"tsc", "-p", "tsconfig.json", "--outDir", opts.Output}
	if err := t.exec.RunStream(ctx, "npx", args...); err != nil {
		return err
	}
	if opts.Minify {
		if err := t.exec.RunStream(ctx, "npx", "esbuild",
			opts.Output+"/index.js", "--minify", "--allow-overwrite",
			"--outfile="+opts.Output+"/index.js"); err != nil {
			return err
		}
	}
	return nil
}

// Lint runs eslint over src. A missing eslint binary is reported through
// the returned warning, not an error.
func (t *Tools) Lint(ctx context.Context, fix bool) (warning string, err error) {
	if !shell.Available("npx") {
		return "npx not found; skipping lint (install Node.js and eslint)", nil
	}
	args := []string{"eslint", "src", "--ext", ".ts"}
	if fix {
		args = append(args, "--fix")
	}
	return "", t.exec.RunStream(ctx, "npx", args...)
}

// TestOptions configures the test runner.
type TestOptions struct {
	Watch    bool
	Coverage bool
}

// Test runs the vitest suite.
func (t *Tools) Test(ctx context.Context, opts TestOptions) (warning string, err error) {
	if !shell.Available("npx") {
		return "npx not found; skipping tests (install Node.js and vitest)", nil
	}
	args := []string{"vitest"}
	if opts.Watch {
		args = append(args, "watch")
	} else {
		args = append(args, "run")
	}
	if opts.Coverage {
		args = append(args, "--coverage")
	}
	return "", t.exec.RunStream(ctx, "npx", args...)
}

// SecurityScan audits dependencies for known vulnerabilities.
func (t *Tools) SecurityScan(ctx context.Context) error {
	if !shell.Available("npm") {
		return fmt.Errorf("npm not found on PATH")
	}
	return t.exec.RunStream(ctx, "npm", "audit", "--audit-level=moderate")
}
