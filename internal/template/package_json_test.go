package template

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/voltjs/volt-cli/internal/config"
)

func decodePackageJSON(t *testing.T, cfg *config.ProjectConfig) map[string]any {
	t.Helper()
	raw, err := RenderPackageJSON(cfg)
	if err != nil {
		t.Fatalf("RenderPackageJSON: %v", err)
	}
	var pkg map[string]any
	if err := json.Unmarshal([]byte(raw), &pkg); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, raw)
	}
	return pkg
}

func TestRenderPackageJSONCore(t *testing.T) {
	cfg := &config.ProjectConfig{Name: "demo", Runtime: config.RuntimeNode, Database: config.DatabaseNone}
	config.ApplyDefaults(cfg)
	pkg := decodePackageJSON(t, cfg)

	if pkg["name"] != "demo" {
		t.Errorf("name = %v", pkg["name"])
	}
	deps, _ := pkg["dependencies"].(map[string]any)
	if _, ok := deps[config.FrameworkPackage]; !ok {
		t.Errorf("missing framework dependency %s in %v", config.FrameworkPackage, deps)
	}
	scripts, _ := pkg["scripts"].(map[string]any)
	for _, s := range []string{"dev", "build", "test"} {
		if _, ok := scripts[s]; !ok {
			t.Errorf("missing script %q", s)
		}
	}
}

func TestRenderPackageJSONDatabaseDeps(t *testing.T) {
	tests := []struct {
		db   config.Database
		want string
	}{
		{config.DatabasePostgreSQL, "pg"},
		{config.DatabaseMySQL, "mysql2"},
		{config.DatabaseSQLite, "better-sqlite3"},
		{config.DatabaseMongoDB, "mongodb"},
		{config.DatabaseRedis, "ioredis"},
		{config.DatabaseDrizzle, "drizzle-orm"},
	}
	for _, tt := range tests {
		t.Run(string(tt.db), func(t *testing.T) {
			cfg := &config.ProjectConfig{Name: "demo", Database: tt.db}
			config.ApplyDefaults(cfg)
			pkg := decodePackageJSON(t, cfg)
			deps, _ := pkg["dependencies"].(map[string]any)
			if _, ok := deps[tt.want]; !ok {
				t.Errorf("missing driver %q for %s: %v", tt.want, tt.db, deps)
			}
		})
	}
}

func TestRenderTSConfigPerRuntime(t *testing.T) {
	for _, rt := range config.Runtimes {
		t.Run(string(rt), func(t *testing.T) {
			cfg := &config.ProjectConfig{Name: "demo", Runtime: rt}
			config.ApplyDefaults(cfg)
			raw, err := RenderTSConfig(cfg)
			if err != nil {
				t.Fatalf("RenderTSConfig: %v", err)
			}
			var ts map[string]any
			if err := json.Unmarshal([]byte(raw), &ts); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if _, ok := ts["compilerOptions"]; !ok {
				t.Error("missing compilerOptions")
			}
		})
	}
}

func TestRenderEntryPerRuntime(t *testing.T) {
	tests := []struct {
		runtime config.Runtime
		want    string
	}{
		{config.RuntimeNode, "app.listen"},
		{config.RuntimeVercelEdge, "export default"},
		{config.RuntimeAWSLambda, "toLambdaHandler"},
		{config.RuntimeCloudflareWorkers, "fetch"},
	}
	for _, tt := range tests {
		t.Run(string(tt.runtime), func(t *testing.T) {
			cfg := &config.ProjectConfig{Name: "demo", Runtime: tt.runtime}
			config.ApplyDefaults(cfg)
			entry := RenderEntry(cfg)
			if !strings.Contains(entry, tt.want) {
				t.Errorf("entry for %s missing %q:\n%s", tt.runtime, tt.want, entry)
			}
		})
	}
}

func TestRenderEntryMiddlewareWiring(t *testing.T) {
	cfg := &config.ProjectConfig{
		Name:     "demo",
		Features: []string{config.FeatureCORS, config.FeatureAuth, "made-up-tag"},
	}
	config.ApplyDefaults(cfg)
	entry := RenderEntry(cfg)

	if !strings.Contains(entry, "cors") {
		t.Error("cors feature should register cors middleware")
	}
	// An unknown tag selects no template branch and renders nothing.
	if strings.Contains(entry, "made-up-tag") {
		t.Error("unknown feature tag leaked into the entry point")
	}
}

func TestRenderDockerComposeSkipsFilelessEngines(t *testing.T) {
	for _, db := range []config.Database{config.DatabaseNone, config.DatabaseSQLite} {
		cfg := &config.ProjectConfig{Name: "demo", Database: db}
		config.ApplyDefaults(cfg)
		out, err := RenderDockerCompose(cfg)
		if err != nil {
			t.Fatalf("RenderDockerCompose(%s): %v", db, err)
		}
		if out != "" {
			t.Errorf("expected no compose file for %s", db)
		}
	}

	cfg := &config.ProjectConfig{Name: "demo", Database: config.DatabasePostgreSQL}
	config.ApplyDefaults(cfg)
	out, err := RenderDockerCompose(cfg)
	if err != nil {
		t.Fatalf("RenderDockerCompose: %v", err)
	}
	if !strings.Contains(out, "postgres") {
		t.Errorf("compose file missing postgres service:\n%s", out)
	}
}
