package database

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// AdapterSpec describes one "volt database setup" invocation.
type AdapterSpec struct {
	Type           config.Database
	Host           string
	Port           int
	Username       string
	DatabaseName   string
	WithMigrations bool
	WithSeeds      bool
}

// applyDefaults fills unset connection fields with the engine's
// conventional development values.
func (s *AdapterSpec) applyDefaults() {
	if s.Host == "" {
		s.Host = "localhost"
	}
	if s.Username == "" {
		s.Username = defaultUser(s.Type)
	}
	if s.DatabaseName == "" {
		s.DatabaseName = "app"
	}
	if s.Port == 0 {
		s.Port = defaultPort(s.Type)
	}
}

func defaultPort(t config.Database) int {
	switch t {
	case config.DatabaseMySQL:
		return 3306
	case config.DatabaseMongoDB:
		return 27017
	case config.DatabaseRedis:
		return 6379
	default:
		return 5432
	}
}

func defaultUser(t config.Database) string {
	switch t {
	case config.DatabaseMySQL:
		return "root"
	default:
		return "postgres"
	}
}

// rendered is the file set one adapter renderer produces.
type rendered struct {
	setupFile   string // src/db/index.ts content
	adapterFile string // optional extra file content
	adapterPath string // project-relative path of the extra file
	envFragment string // optional variables appended to .env.example
}

// adapterRenderer maps an AdapterSpec to generated file contents.
type adapterRenderer func(spec *AdapterSpec) rendered

// adapterRenderers is the dispatch table keyed by engine type. Lookup
// failure is a hard error, never a silent no-op.
var adapterRenderers = map[config.Database]adapterRenderer{
	config.DatabasePostgreSQL: renderPostgres,
	config.DatabaseMySQL:      renderMySQL,
	config.DatabaseSQLite:     renderSQLite,
	config.DatabaseMongoDB:    renderMongo,
	config.DatabaseRedis:      renderRedis,
	config.DatabaseDrizzle:    renderDrizzle,
}

// SupportedTypes returns the adapter type names, sorted.
func SupportedTypes() []string {
	types := make([]string, 0, len(adapterRenderers))
	for t := range adapterRenderers {
		types = append(types, string(t))
	}
	sort.Strings(types)
	return types
}

// Manager writes adapter setup files into a project tree.
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

// Setup renders and writes the adapter files for the given spec. An
// unsupported type fails before anything is written.
func (m *Manager) Setup(spec *AdapterSpec) ([]string, error) {
	render, ok := adapterRenderers[spec.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedType, spec.Type, strings.Join(SupportedTypes(), ", "))
	}
	spec.applyDefaults()

	out := render(spec)
	var written []string

	setupPath := filepath.Join("src", "db", "index.ts")
	if err := m.write(setupPath, out.setupFile); err != nil {
		return written, err
	}
	written = append(written, setupPath)

	if out.adapterFile != "" {
		if err := m.write(out.adapterPath, out.adapterFile); err != nil {
			return written, err
		}
		written = append(written, out.adapterPath)
	}

	if out.envFragment != "" {
		if err := m.appendEnvExample(out.envFragment); err != nil {
			return written, err
		}
		written = append(written, ".env.example")
	}

	if spec.WithMigrations {
		if err := os.MkdirAll(filepath.Join(m.root, "migrations"), 0o755); err != nil {
			return written, fmt.Errorf("mkdir migrations: %w", err)
		}
	}
	if spec.WithSeeds {
		if err := os.MkdirAll(filepath.Join(m.root, "seeds"), 0o755); err != nil {
			return written, fmt.Errorf("mkdir seeds: %w", err)
		}
	}

	m.logger.Info("database adapter configured", "type", spec.Type, "files", len(written))
	return written, nil
}

func (m *Manager) write(relPath, content string) error {
	full := filepath.Join(m.root, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", relPath, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

// appendEnvExample appends new variable names to the tracked .env.example,
// creating it if missing. Values stay blank: the example file never carries
// secrets.
func (m *Manager) appendEnvExample(fragment string) error {
	path := filepath.Join(m.root, ".env.example")
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read .env.example: %w", err)
	}

	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	for _, line := range strings.Split(strings.TrimSpace(fragment), "\n") {
		name, _, _ := strings.Cut(line, "=")
		if name == "" || strings.Contains(content, name+"=") {
			continue
		}
		content += name + "=\n"
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write .env.example: %w", err)
	}
	return nil
}
