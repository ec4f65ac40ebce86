package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// downMarker splits each migration file into its up and down halves.
const downMarker = "-- DOWN"

// Migration is one parsed migration file.
type Migration struct {
	Filename string
	Up       string
	Down     string
}

// Split separates migration file content on the -- DOWN marker. Content
// without a marker is all-up with an empty down half.
func Split(content string) (up, down string) {
	up, down, _ = strings.Cut(content, downMarker)
	return strings.TrimSpace(up), strings.TrimSpace(down)
}

// LoadMigrations reads every .sql file in dir, sorted lexicographically by
// filename. That sort is the only ordering guarantee migrations have; the
// generator's numeric prefixes (001_, 002_) rely on it.
func LoadMigrations(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		up, down := Split(string(data))
		migrations = append(migrations, Migration{Filename: name, Up: up, Down: down})
	}
	return migrations, nil
}

// Runner applies migrations and seeds against the project's database.
type Runner struct {
	root   string
	logger *slog.Logger
	out    io.Writer
}

// NewRunner creates a Runner rooted at the project directory. Output (dry
// runs, progress lines) goes to out.
func NewRunner(root string, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{root: root, logger: logger, out: out}
}

// databaseURL resolves DATABASE_URL, loading the project's .env first.
// A missing .env is fine; the variable may come from the environment.
func (r *Runner) databaseURL() (string, error) {
	_ = godotenv.Load(filepath.Join(r.root, ".env"))
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return "", ErrNoDatabaseURL
	}
	return url, nil
}

// connect opens a pgx pool for the project database. The built-in runner
// drives postgres only; other engines use the generated runner script.
func (r *Runner) connect(ctx context.Context) (*pgxpool.Pool, error) {
	url, err := r.databaseURL()
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(url, "postgres://") && !strings.HasPrefix(url, "postgresql://") {
		return nil, ErrNotPostgres
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func ensureMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
    id SERIAL PRIMARY KEY,
    filename TEXT NOT NULL UNIQUE,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`)
	if err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(ctx context.Context, pool *pgxpool.Pool) (map[string]bool, error) {
	rows, err := pool.Query(ctx, `SELECT filename FROM schema_migrations;`)
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan filename: %w", err)
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

// Preview prints the up halves of all pending migrations in order without
// touching the database.
func (r *Runner) Preview() error {
	migrations, err := LoadMigrations(filepath.Join(r.root, "migrations"))
	if err != nil {
		return err
	}
	if len(migrations) == 0 {
		fmt.Fprintln(r.out, "No migrations found.")
		return nil
	}
	for _, m := range migrations {
		fmt.Fprintf(r.out, "-- %s\n%s\n\n", m.Filename, m.Up)
	}
	return nil
}

// Up applies all pending migrations in filename order.
func (r *Runner) Up(ctx context.Context) error {
	migrations, err := LoadMigrations(filepath.Join(r.root, "migrations"))
	if err != nil {
		return err
	}
	if len(migrations) == 0 {
		fmt.Fprintln(r.out, "No migrations found.")
		return nil
	}

	pool, err := r.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return err
	}
	applied, err := appliedMigrations(ctx, pool)
	if err != nil {
		return err
	}

	ran := 0
	for _, m := range migrations {
		if applied[m.Filename] {
			continue
		}
		if _, err := pool.Exec(ctx, m.Up); err != nil {
			return fmt.Errorf("apply %s: %w", m.Filename, err)
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO schema_migrations (filename) VALUES ($1);`, m.Filename); err != nil {
			return fmt.Errorf("record %s: %w", m.Filename, err)
		}
		fmt.Fprintf(r.out, "applied %s\n", m.Filename)
		r.logger.Info("migration applied", "file", m.Filename)
		ran++
	}
	if ran == 0 {
		fmt.Fprintln(r.out, "Already up to date.")
	}
	return nil
}

// Down reverts the most recently applied migration using its down half.
func (r *Runner) Down(ctx context.Context) error {
	migrations, err := LoadMigrations(filepath.Join(r.root, "migrations"))
	if err != nil {
		return err
	}

	pool, err := r.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return err
	}
	applied, err := appliedMigrations(ctx, pool)
	if err != nil {
		return err
	}

	// Walk backwards through filename order to find the newest applied one.
	for i := len(migrations) - 1; i >= 0; i-- {
		m := migrations[i]
		if !applied[m.Filename] {
			continue
		}
		if m.Down == "" {
			return fmt.Errorf("migration %s has no %s section", m.Filename, downMarker)
		}
		if _, err := pool.Exec(ctx, m.Down); err != nil {
			return fmt.Errorf("revert %s: %w", m.Filename, err)
		}
		if _, err := pool.Exec(ctx,
			`DELETE FROM schema_migrations WHERE filename = $1;`, m.Filename); err != nil {
			return fmt.Errorf("unrecord %s: %w", m.Filename, err)
		}
		fmt.Fprintf(r.out, "reverted %s\n", m.Filename)
		r.logger.Info("migration reverted", "file", m.Filename)
		return nil
	}

	fmt.Fprintln(r.out, "Nothing to revert.")
	return nil
}

// Reset reverts every applied migration in reverse filename order, then
// re-applies all of them.
func (r *Runner) Reset(ctx context.Context) error {
	migrations, err := LoadMigrations(filepath.Join(r.root, "migrations"))
	if err != nil {
		return err
	}

	pool, err := r.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return err
	}
	applied, err := appliedMigrations(ctx, pool)
	if err != nil {
		return err
	}

	for i := len(migrations) - 1; i >= 0; i-- {
		m := migrations[i]
		if !applied[m.Filename] || m.Down == "" {
			continue
		}
		if _, err := pool.Exec(ctx, m.Down); err != nil {
			return fmt.Errorf("revert %s: %w", m.Filename, err)
		}
		if _, err := pool.Exec(ctx,
			`DELETE FROM schema_migrations WHERE filename = $1;`, m.Filename); err != nil {
			return fmt.Errorf("unrecord %s: %w", m.Filename, err)
		}
		fmt.Fprintf(r.out, "reverted %s\n", m.Filename)
	}

	pool.Close()
	return r.Up(ctx)
}

// Seed executes every seeds/*.sql file in filename order. The environment
// name selects a subdirectory when one exists (seeds/production/), falling
// back to the flat seeds/ directory.
func (r *Runner) Seed(ctx context.Context, environment string) error {
	dir := filepath.Join(r.root, "seeds")
	if environment != "" {
		envDir := filepath.Join(dir, environment)
		if info, err := os.Stat(envDir); err == nil && info.IsDir() {
			dir = envDir
		}
	}

	seeds, err := LoadMigrations(dir)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		fmt.Fprintln(r.out, "No seed files found.")
		return nil
	}

	pool, err := r.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	for _, s := range seeds {
		if _, err := pool.Exec(ctx, s.Up); err != nil {
			return fmt.Errorf("seed %s: %w", s.Filename, err)
		}
		fmt.Fprintf(r.out, "seeded %s\n", s.Filename)
		r.logger.Info("seed applied", "file", s.Filename)
	}
	return nil
}
