// Package shell wraps subprocess invocation for the external tools the CLI
// drives: git, the npm package manager, linters, and test runners. It offers
// a synchronous capture mode for short commands and a streaming mode with
// inherited standard streams for long-running ones (dev server, watchers).
package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Result holds the outcome of a captured subprocess run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs external commands. Every invocation is attempted exactly
// once; a hung subprocess blocks the calling command.
type Executor struct {
	workDir string
	logger  *slog.Logger
}

// NewExecutor creates an Executor rooted at workDir. An empty workDir means
// the process working directory. A nil logger discards output.
func NewExecutor(workDir string, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{workDir: workDir, logger: logger}
}

// Run executes name with args and captures stdout/stderr. A non-zero exit
// code is returned as an error alongside the captured output.
func (e *Executor) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	e.logger.Debug("exec", "cmd", name, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if err != nil {
		return res, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(res.Stderr))
	}
	return res, nil
}

// RunStream executes name with args with the parent's standard streams
// inherited. It blocks until the process exits and returns an error on a
// non-zero exit code or spawn failure. Used for the dev server, watch modes,
// and anything whose output belongs on the user's terminal.
func (e *Executor) RunStream(ctx context.Context, name string, args ...string) error {
	return e.RunStreamEnv(ctx, nil, name, args...)
}

// RunStreamEnv is RunStream with extra environment variables layered on top
// of the parent environment.
func (e *Executor) RunStreamEnv(ctx context.Context, env map[string]string, name string, args ...string) error {
	e.logger.Debug("exec stream", "cmd", name, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.workDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Available reports whether the named binary is on PATH. Missing optional
// dev tools are warnings for the callers, never fatal errors.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
