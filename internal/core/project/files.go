package project

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/template"
	"github.com/voltjs/volt-cli/pkg/version"
)

// FileSpec is one generated file: a project-relative path and its content.
// Paths are disjoint by construction; that disjointness is what makes the
// concurrent write fan-out safe.
type FileSpec struct {
	Path    string
	Content string
}

// projectDirs returns the directory skeleton for a new project.
func projectDirs(cfg *config.ProjectConfig) []string {
	dirs := []string{
		"src",
		filepath.Join("src", "modules"),
		filepath.Join("src", "middleware"),
		"tests",
	}
	if cfg.Database != config.DatabaseNone {
		dirs = append(dirs, filepath.Join("src", "db"), "migrations", "seeds")
	}
	return dirs
}

// renderAll maps a resolved configuration to the complete generated file
// set. Each renderer is pure over cfg and targets a distinct path.
func renderAll(cfg *config.ProjectConfig, createdAt string) ([]FileSpec, error) {
	pkgJSON, err := template.RenderPackageJSON(cfg)
	if err != nil {
		return nil, err
	}
	tsconfig, err := template.RenderTSConfig(cfg)
	if err != nil {
		return nil, err
	}

	env := template.RenderEnv(cfg)
	manifest, err := manifestYAML(cfg, createdAt)
	if err != nil {
		return nil, err
	}

	files := []FileSpec{
		{Path: "package.json", Content: pkgJSON},
		{Path: "tsconfig.json", Content: tsconfig},
		{Path: filepath.Join("src", "index.ts"), Content: template.RenderEntry(cfg)},
		{Path: filepath.Join("src", "volt.config.ts"), Content: template.RenderFrameworkConfig(cfg)},
		{Path: ".env", Content: env},
		{Path: ".env.example", Content: template.RedactEnv(env)},
		{Path: ".gitignore", Content: template.RenderGitignore(cfg)},
		{Path: "README.md", Content: template.RenderReadme(cfg)},
		{Path: config.ManifestFile, Content: manifest},
	}

	if cfg.Runtime == config.RuntimeNode {
		files = append(files, FileSpec{Path: "Dockerfile", Content: template.RenderDockerfile(cfg)})
		compose, err := template.RenderDockerCompose(cfg)
		if err != nil {
			return nil, err
		}
		if compose != "" {
			files = append(files, FileSpec{Path: "docker-compose.yml", Content: compose})
		}
	}

	if cfg.Database != config.DatabaseNone {
		files = append(files, FileSpec{
			Path:    filepath.Join("src", "db", "index.ts"),
			Content: template.RenderDatabaseStub(cfg),
		})
	}
	if cfg.HasFeature(config.FeatureAuth) {
		files = append(files, FileSpec{
			Path:    filepath.Join("src", "middleware", "auth.ts"),
			Content: template.RenderAuthStub(cfg),
		})
	}
	// Test scaffolding ships with every template.
	files = append(files,
		FileSpec{Path: filepath.Join("tests", "setup.ts"), Content: template.RenderTestSetup(cfg)},
		FileSpec{Path: filepath.Join("tests", "app.test.ts"), Content: template.RenderSmokeTest(cfg)},
	)

	return files, nil
}

// PlannedFileCount reports how many files Init will write for cfg, without
// touching the filesystem. Drives determinate progress display.
func PlannedFileCount(cfg *config.ProjectConfig) (int, error) {
	files, err := renderAll(cfg, "")
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

// manifestYAML renders the volt.yaml manifest content.
func manifestYAML(cfg *config.ProjectConfig, createdAt string) (string, error) {
	m := config.NewManifest(cfg, version.GetVersion(), createdAt)
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", config.ManifestFile, err)
	}
	return string(data), nil
}
