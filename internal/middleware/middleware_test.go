package middleware

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	cfg, warning, err := Resolve("cors", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if warning != "" {
		t.Errorf("unexpected warning: %q", warning)
	}
	if cfg.Options["origin"] != "*" {
		t.Errorf("origin = %v", cfg.Options["origin"])
	}
}

func TestResolveOverridesMerge(t *testing.T) {
	cfg, warning, err := Resolve("rate-limit", `{"max": 500}`)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if warning != "" {
		t.Errorf("unexpected warning: %q", warning)
	}
	if cfg.Options["max"] != float64(500) {
		t.Errorf("max = %v, want 500", cfg.Options["max"])
	}
	// Untouched keys keep their defaults.
	if cfg.Options["window"] != float64(60000) {
		t.Errorf("window = %v, want 60000", cfg.Options["window"])
	}
}

func TestResolveMalformedJSONFallsBackWithWarning(t *testing.T) {
	cfg, warning, err := Resolve("auth", `{not json`)
	if err != nil {
		t.Fatalf("malformed JSON must not be an error: %v", err)
	}
	if warning == "" {
		t.Fatal("expected a warning for malformed JSON")
	}
	if cfg.Options["algorithm"] != "HS256" {
		t.Errorf("defaults not applied: %v", cfg.Options)
	}
}

func TestResolveUnsupportedType(t *testing.T) {
	_, _, err := Resolve("bodyparser", "")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestAddWritesSnippet(t *testing.T) {
	root := t.TempDir()

	written, warning, err := NewManager(root, nil).Add("rate-limit", `{"max": 50}`)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if warning != "" {
		t.Errorf("unexpected warning: %q", warning)
	}
	if written != filepath.Join("src", "middleware", "rate-limit.ts") {
		t.Errorf("written = %q", written)
	}

	raw, err := os.ReadFile(filepath.Join(root, written))
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)
	if !strings.Contains(content, "rateLimit") {
		t.Error("kebab-case kind should map to a camelCase factory")
	}
	if !strings.Contains(content, `"max": 50`) {
		t.Errorf("override missing from options:\n%s", content)
	}
}

func TestAddUnsupportedTypeWritesNothing(t *testing.T) {
	root := t.TempDir()

	_, _, err := NewManager(root, nil).Add("bodyparser", "")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("directory not empty after failed add: %v", entries)
	}
}

func TestSupportedTypes(t *testing.T) {
	types := SupportedTypes()
	want := []string{"auth", "cache", "compression", "cors", "helmet", "rate-limit", "validation"}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %s, want %s", i, types[i], want[i])
		}
	}
}
