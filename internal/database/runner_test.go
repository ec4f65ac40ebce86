package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantUp   string
		wantDown string
	}{
		{
			name:     "with marker",
			content:  "CREATE TABLE users (id int);\n\n-- DOWN\n\nDROP TABLE users;\n",
			wantUp:   "CREATE TABLE users (id int);",
			wantDown: "DROP TABLE users;",
		},
		{
			name:     "no marker is all up",
			content:  "CREATE TABLE users (id int);\n",
			wantUp:   "CREATE TABLE users (id int);",
			wantDown: "",
		},
		{
			name:     "empty",
			content:  "",
			wantUp:   "",
			wantDown: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, down := Split(tt.content)
			if up != tt.wantUp {
				t.Errorf("up = %q, want %q", up, tt.wantUp)
			}
			if down != tt.wantDown {
				t.Errorf("down = %q, want %q", down, tt.wantDown)
			}
		})
	}
}

func TestLoadMigrationsOrdering(t *testing.T) {
	dir := t.TempDir()

	// Written out of order on purpose: only the filename sort counts.
	files := map[string]string{
		"002_add_index.sql":   "CREATE INDEX i ON users (name);\n-- DOWN\nDROP INDEX i;",
		"001_create_users.sql": "CREATE TABLE users (id int);\n-- DOWN\nDROP TABLE users;",
		"010_add_orders.sql":  "CREATE TABLE orders (id int);\n-- DOWN\nDROP TABLE orders;",
		"notes.txt":           "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	migrations, err := LoadMigrations(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, m := range migrations {
		got = append(got, m.Filename)
	}
	want := []string{"001_create_users.sql", "002_add_index.sql", "010_add_orders.sql"}
	if len(got) != len(want) {
		t.Fatalf("loaded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("migration[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if migrations[0].Down != "DROP TABLE users;" {
		t.Errorf("down half = %q", migrations[0].Down)
	}
}

func TestLoadMigrationsMissingDir(t *testing.T) {
	migrations, err := LoadMigrations(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
	if migrations != nil {
		t.Errorf("migrations = %v, want nil", migrations)
	}
}

func TestPreviewListsPendingWithoutConnecting(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "migrations")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "CREATE TABLE users (id int);\n-- DOWN\nDROP TABLE users;"
	if err := os.WriteFile(filepath.Join(dir, "001_create_users.sql"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := NewRunner(root, &buf, nil).Preview(); err != nil {
		t.Fatalf("Preview: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "001_create_users.sql") {
		t.Errorf("preview missing filename:\n%s", out)
	}
	if !strings.Contains(out, "CREATE TABLE users") {
		t.Errorf("preview missing up SQL:\n%s", out)
	}
	if strings.Contains(out, "DROP TABLE") {
		t.Errorf("preview leaked the down half:\n%s", out)
	}
}

func TestDatabaseURLRequiresEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("DATABASE_URL", "")

	var buf strings.Builder
	r := NewRunner(root, &buf, nil)
	if _, err := r.databaseURL(); err == nil {
		t.Error("expected an error without DATABASE_URL")
	}
}

func TestDatabaseURLFromDotenv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("DATABASE_URL", "") // register restore
	os.Unsetenv("DATABASE_URL") // godotenv only fills genuinely unset vars
	env := "DATABASE_URL=postgres://localhost:5432/app\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	r := NewRunner(root, &buf, nil)
	url, err := r.databaseURL()
	if err != nil {
		t.Fatalf("databaseURL: %v", err)
	}
	if url != "postgres://localhost:5432/app" {
		t.Errorf("url = %q", url)
	}
}
