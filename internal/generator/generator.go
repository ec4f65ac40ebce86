// Package generator emits resource modules for generated Volt projects:
// types, validation schemas, business-logic actions, an HTTP route table,
// and the optional socket handlers and SQL files selected by feature flags.
package generator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// ErrEmptyName indicates no module name was supplied.
var ErrEmptyName = errors.New("module name must not be empty")

// Result lists the files one Generate call wrote, project-relative.
type Result struct {
	Module string
	Files  []string
}

// Generator renders module file sets into a project tree.
type Generator struct {
	root   string
	logger *slog.Logger
}

// New creates a Generator rooted at the project directory. A nil logger
// discards output.
func New(root string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{root: root, logger: logger}
}

// Generate renders the file set for one module spec. Invocations are
// independent: output is keyed only by the ModuleSpec, and re-running overwrites
// without diffing.
func (g *Generator) Generate(spec *config.ModuleSpec) (*Result, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrEmptyName
	}
	n := newNames(spec.Name)
	moduleDir := filepath.Join("src", "modules", n.Raw)

	g.logger.Info("generating module",
		"module", n.Raw,
		"prefix", "/"+n.Plural,
		"routes", spec.Routes,
	)

	files := map[string]string{
		filepath.Join(moduleDir, "types.ts"):   renderTypes(n),
		filepath.Join(moduleDir, "schema.ts"):  renderSchema(n),
		filepath.Join(moduleDir, "config.ts"):  renderConfig(n, spec),
		filepath.Join(moduleDir, "actions.ts"): renderActions(n),
		filepath.Join(moduleDir, "routes.ts"):  renderRoutes(n, spec),
		filepath.Join(moduleDir, "index.ts"):   renderIndex(n, spec),
	}

	if spec.Routes == config.RoutesGraphQL {
		files[filepath.Join(moduleDir, "resolvers.ts")] = renderResolvers(n)
	}
	if spec.HasFeature(config.FeatureWebSocket) {
		files[filepath.Join(moduleDir, "sockets.ts")] = renderSockets(n)
	}
	withDatabase := spec.HasFeature(config.FeatureDatabase) ||
		(spec.Database != "" && spec.Database != config.DatabaseNone)
	if withDatabase {
		prefix, err := g.nextMigrationPrefix()
		if err != nil {
			return nil, err
		}
		files[filepath.Join(moduleDir, "schema.sql")] = renderSchemaSQL(n)
		files[filepath.Join("migrations", fmt.Sprintf("%s_create_%s.sql", prefix, n.Plural))] = renderMigrationSQL(n)
		files[filepath.Join("seeds", fmt.Sprintf("%s_%s.sql", prefix, n.Plural))] = renderSeedSQL(n)
	}
	if spec.WithTests {
		files[filepath.Join(moduleDir, n.Raw+".test.ts")] = renderModuleTest(n)
	}
	if spec.WithDocs {
		files[filepath.Join(moduleDir, "README.md")] = renderModuleDocs(n, spec)
	}

	result := &Result{Module: n.Raw}
	for path, content := range files {
		full := filepath.Join(g.root, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir for %s: %w", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		result.Files = append(result.Files, path)
	}
	sort.Strings(result.Files)

	g.logger.Info("module generated", "module", n.Raw, "files", len(result.Files))
	return result, nil
}

// List returns the module names present under src/modules, sorted.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, "src", "modules"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read modules directory: %w", err)
	}
	var modules []string
	for _, e := range entries {
		if e.IsDir() {
			modules = append(modules, e.Name())
		}
	}
	sort.Strings(modules)
	return modules, nil
}

// nextMigrationPrefix returns the next zero-padded numeric filename prefix.
// Numeric prefixes establish migration order: the runner applies files in
// lexicographic filename order.
func (g *Generator) nextMigrationPrefix() (string, error) {
	entries, err := os.ReadDir(filepath.Join(g.root, "migrations"))
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("read migrations directory: %w", err)
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			count++
		}
	}
	return fmt.Sprintf("%03d", count+1), nil
}
