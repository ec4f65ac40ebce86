package database

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voltjs/volt-cli/internal/config"
)

func TestSetupUnsupportedTypeWritesNothing(t *testing.T) {
	root := t.TempDir()

	written, err := NewManager(root, nil).Setup(&AdapterSpec{Type: "oracle"})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
	if len(written) != 0 {
		t.Errorf("written = %v, want none", written)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("directory not empty after failed setup: %v", entries)
	}
}

func TestSetupPostgres(t *testing.T) {
	root := t.TempDir()

	written, err := NewManager(root, nil).Setup(&AdapterSpec{
		Type:           config.DatabasePostgreSQL,
		WithMigrations: true,
		WithSeeds:      true,
	})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	setup, err := os.ReadFile(filepath.Join(root, "src", "db", "index.ts"))
	if err != nil {
		t.Fatalf("missing src/db/index.ts: %v", err)
	}
	if !strings.Contains(string(setup), "DATABASE_URL") {
		t.Error("setup file should read DATABASE_URL")
	}

	for _, dir := range []string{"migrations", "seeds"} {
		if info, err := os.Stat(filepath.Join(root, dir)); err != nil || !info.IsDir() {
			t.Errorf("missing %s directory", dir)
		}
	}
	if len(written) == 0 {
		t.Error("no written files reported")
	}
}

func TestSetupEveryTypeRenders(t *testing.T) {
	for _, name := range SupportedTypes() {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			_, err := NewManager(root, nil).Setup(&AdapterSpec{Type: config.Database(name)})
			if err != nil {
				t.Fatalf("Setup(%s): %v", name, err)
			}
			if _, err := os.Stat(filepath.Join(root, "src", "db", "index.ts")); err != nil {
				t.Errorf("missing setup file: %v", err)
			}
		})
	}
}

func TestSetupAppendsEnvExampleOnce(t *testing.T) {
	root := t.TempDir()
	seed := "PORT=\n"
	if err := os.WriteFile(filepath.Join(root, ".env.example"), []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(root, nil)
	for i := 0; i < 2; i++ {
		if _, err := m.Setup(&AdapterSpec{Type: config.DatabasePostgreSQL}); err != nil {
			t.Fatalf("Setup run %d: %v", i+1, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(root, ".env.example"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)
	if !strings.HasPrefix(content, "PORT=") {
		t.Error("existing variables must survive")
	}
	if got := strings.Count(content, "DATABASE_URL="); got != 1 {
		t.Errorf("DATABASE_URL appended %d times, want 1:\n%s", got, content)
	}
	for _, line := range strings.Split(content, "\n") {
		if name, value, ok := strings.Cut(line, "="); ok && name != "" && value != "" {
			t.Errorf("value leaked into .env.example: %s", line)
		}
	}
}

func TestSupportedTypesSorted(t *testing.T) {
	types := SupportedTypes()
	if len(types) != 6 {
		t.Fatalf("types = %v, want 6 entries", types)
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Errorf("types not sorted: %v", types)
		}
	}
}
