package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the project manifest written into every generated project.
const ManifestFile = "volt.yaml"

// Manifest is the volt.yaml project manifest. It records what "volt init"
// generated so later commands (module create, database setup, config
// validate) know the project's shape without re-prompting.
type Manifest struct {
	Name      string   `yaml:"name"`
	Version   string   `yaml:"version"`
	Runtime   Runtime  `yaml:"runtime"`
	Database  Database `yaml:"database"`
	Template  Template `yaml:"template"`
	Features  []string `yaml:"features,omitempty"`
	CreatedAt string   `yaml:"created_at"`
}

// NewManifest builds a Manifest from a resolved ProjectConfig.
func NewManifest(cfg *ProjectConfig, version, createdAt string) *Manifest {
	return &Manifest{
		Name:      cfg.Name,
		Version:   version,
		Runtime:   cfg.Runtime,
		Database:  cfg.Database,
		Template:  cfg.Template,
		Features:  cfg.Features,
		CreatedAt: createdAt,
	}
}

// LoadManifest reads and parses volt.yaml from the given project root.
func LoadManifest(root string) (*Manifest, error) {
	path := filepath.Join(root, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, fmt.Errorf("read %s: %w", ManifestFile, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return &m, nil
}

// Save writes the manifest as volt.yaml under the given project root.
func (m *Manifest) Save(root string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ManifestFile, err)
	}
	path := filepath.Join(root, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ManifestFile, err)
	}
	return nil
}

// Validate checks the manifest's enum-valued fields.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidManifest)
	}
	if !m.Runtime.IsValid() {
		return fmt.Errorf("%w: unknown runtime %q", ErrInvalidManifest, m.Runtime)
	}
	if !m.Database.IsValid() {
		return fmt.Errorf("%w: unknown database %q", ErrInvalidManifest, m.Database)
	}
	if !m.Template.IsValid() {
		return fmt.Errorf("%w: unknown template %q", ErrInvalidManifest, m.Template)
	}
	return nil
}
