package deploy

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSetupUnsupportedTargetWritesNothing(t *testing.T) {
	root := t.TempDir()

	_, err := NewManager(root, nil).Setup(&Spec{Target: "heroku"})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("directory not empty after failed setup: %v", entries)
	}
}

func TestSetupVercel(t *testing.T) {
	root := t.TempDir()

	written, err := NewManager(root, nil).Setup(&Spec{
		Target:      "vercel",
		ProjectName: "shop-api",
		Region:      "fra1",
		Env:         map[string]string{"NODE_ENV": "production"},
	})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if len(written) != 1 || written[0] != "vercel.json" {
		t.Fatalf("written = %v", written)
	}

	raw, err := os.ReadFile(filepath.Join(root, "vercel.json"))
	if err != nil {
		t.Fatal(err)
	}
	var manifest map[string]any
	if err := json.Unmarshal(raw, &manifest); err != nil {
		t.Fatalf("vercel.json is not valid JSON: %v", err)
	}
	if manifest["name"] != "shop-api" {
		t.Errorf("name = %v", manifest["name"])
	}
	regions, _ := manifest["regions"].([]any)
	if len(regions) != 1 || regions[0] != "fra1" {
		t.Errorf("regions = %v", manifest["regions"])
	}
}

func TestSetupLambda(t *testing.T) {
	root := t.TempDir()

	written, err := NewManager(root, nil).Setup(&Spec{Target: "lambda", ProjectName: "shop-api"})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if len(written) != 1 || written[0] != "serverless.yml" {
		t.Fatalf("written = %v", written)
	}

	raw, err := os.ReadFile(filepath.Join(root, "serverless.yml"))
	if err != nil {
		t.Fatal(err)
	}
	var manifest map[string]any
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		t.Fatalf("serverless.yml is not valid YAML: %v", err)
	}
	if manifest["service"] != "shop-api" {
		t.Errorf("service = %v", manifest["service"])
	}
	provider, _ := manifest["provider"].(map[string]any)
	if provider["region"] != "us-east-1" {
		t.Errorf("default region = %v", provider["region"])
	}
}

func TestSetupWorkers(t *testing.T) {
	root := t.TempDir()

	_, err := NewManager(root, nil).Setup(&Spec{
		Target:      "workers",
		ProjectName: "shop-api",
		Env:         map[string]string{"B_VAR": "2", "A_VAR": "1"},
	})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(root, "wrangler.toml"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)
	if !strings.Contains(content, `name = "shop-api"`) {
		t.Errorf("missing name:\n%s", content)
	}
	// Vars render sorted so re-runs produce identical files.
	if strings.Index(content, "A_VAR") > strings.Index(content, "B_VAR") {
		t.Errorf("vars not sorted:\n%s", content)
	}
}

func TestSetupDefaultsProjectNameFromRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "my-service")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := NewManager(root, nil).Setup(&Spec{Target: "workers"}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	raw, _ := os.ReadFile(filepath.Join(root, "wrangler.toml"))
	if !strings.Contains(string(raw), `name = "my-service"`) {
		t.Errorf("project name not derived from root:\n%s", raw)
	}
}
