package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/shell"
)

// InitOptions configures project initialization.
type InitOptions struct {
	Root   string                // Target directory (absolute or relative).
	Config *config.ProjectConfig // Fully-resolved configuration.
	Force  bool                  // Reuse an existing directory without failing.

	// OnFile, when set, is called once per written file with its
	// project-relative path. Calls happen on the Init goroutine.
	OnFile func(relPath string)
}

// InitResult summarizes the outcome of project initialization.
type InitResult struct {
	Root         string
	CreatedDirs  []string
	CreatedFiles []string
	Warnings     []string // Non-fatal failures: git init, npm install.
}

// Initializer scaffolds new Volt projects.
type Initializer interface {
	// Init creates a project at opts.Root. Directory and file IO errors
	// abort the whole operation; git and install failures become warnings.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

type projectInitializer struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewInitializer creates an Initializer. A nil logger discards output.
func NewInitializer(logger *slog.Logger) Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{logger: logger, now: time.Now}
}

// Init creates a new Volt project with the given options.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	cfg := opts.Config
	if cfg == nil || cfg.Name == "" {
		return nil, ErrEmptyName
	}
	root := filepath.Clean(opts.Root)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i.logger.Info("initializing project",
		"root", root,
		"runtime", cfg.Runtime,
		"database", cfg.Database,
		"template", cfg.Template,
	)

	if info, err := os.Stat(root); err == nil && info.IsDir() && !opts.Force {
		entries, _ := os.ReadDir(root)
		if len(entries) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrTargetExists, root)
		}
	}

	result := &InitResult{Root: root}

	// Directory skeleton first; file writes assume their parents exist.
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create project root: %w", err)
	}
	for _, dir := range projectDirs(cfg) {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}

	files, err := renderAll(cfg, i.now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("render project files: %w", err)
	}

	if err := writeAll(root, files, opts.OnFile); err != nil {
		return nil, err
	}
	for _, f := range files {
		result.CreatedFiles = append(result.CreatedFiles, f.Path)
	}

	if !cfg.SkipGit {
		if err := i.initGit(ctx, root); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("git init: %s", err))
			i.logger.Warn("git initialization failed", "error", err)
		}
	}

	if !cfg.SkipInstall {
		if err := i.installDeps(ctx, root); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dependency install: %s (run \"npm install\" manually)", err))
			i.logger.Warn("dependency install failed", "error", err)
		}
	}

	i.logger.Info("project initialized",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// writeAll fans out one goroutine per file and joins them, propagating the
// first failure. Safe because renderAll guarantees disjoint paths. Each
// completed write is reported through onFile on the calling goroutine, so
// callers need no locking in the callback.
func writeAll(root string, files []FileSpec, onFile func(string)) error {
	var wg sync.WaitGroup
	errs := make([]error, len(files))
	done := make(chan string, len(files))

	for n, f := range files {
		wg.Add(1)
		go func(n int, f FileSpec) {
			defer wg.Done()
			path := filepath.Join(root, f.Path)
			if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
				errs[n] = fmt.Errorf("write %s: %w", f.Path, err)
			}
			done <- f.Path
		}(n, f)
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	for path := range done {
		if onFile != nil {
			onFile(path)
		}
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// initGit runs the three-step VCS bootstrap: init, stage, commit.
func (i *projectInitializer) initGit(ctx context.Context, root string) error {
	if !shell.Available("git") {
		return fmt.Errorf("git not found on PATH")
	}
	exec := shell.NewExecutor(root, i.logger)
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", "Initial commit from volt"},
	}
	for _, args := range steps {
		if _, err := exec.Run(ctx, "git", args...); err != nil {
			return err
		}
	}
	return nil
}

// installDeps runs the package-manager install.
func (i *projectInitializer) installDeps(ctx context.Context, root string) error {
	if !shell.Available("npm") {
		return fmt.Errorf("npm not found on PATH")
	}
	exec := shell.NewExecutor(root, i.logger)
	_, err := exec.Run(ctx, "npm", "install")
	return err
}
