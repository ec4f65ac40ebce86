package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &ProjectConfig{
		Name:     "shop-api",
		Runtime:  RuntimeNode,
		Database: DatabasePostgreSQL,
		Template: TemplateAPI,
		Features: []string{"auth", "cors"},
	}
	m := NewManifest(cfg, "v0.9.2", "2026-08-29T00:00:00Z")
	if err := m.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if loaded.Name != "shop-api" {
		t.Errorf("name = %q", loaded.Name)
	}
	if loaded.Database != DatabasePostgreSQL {
		t.Errorf("database = %q", loaded.Database)
	}
	if len(loaded.Features) != 2 {
		t.Errorf("features = %v", loaded.Features)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(t.TempDir())
	if !errors.Is(err, ErrManifestNotFound) {
		t.Errorf("err = %v, want ErrManifestNotFound", err)
	}
}

func TestLoadManifestMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadManifest(dir)
	if !errors.Is(err, ErrInvalidManifest) {
		t.Errorf("err = %v, want ErrInvalidManifest", err)
	}
}

func TestManifestValidateRejectsUnknownEnums(t *testing.T) {
	m := &Manifest{Name: "x", Runtime: "deno", Database: DatabaseNone, Template: TemplateAPI}
	if err := m.Validate(); !errors.Is(err, ErrInvalidManifest) {
		t.Errorf("err = %v, want ErrInvalidManifest", err)
	}
	m = &Manifest{Name: "", Runtime: RuntimeNode, Database: DatabaseNone, Template: TemplateAPI}
	if err := m.Validate(); !errors.Is(err, ErrInvalidManifest) {
		t.Errorf("empty name: err = %v, want ErrInvalidManifest", err)
	}
}
