package template

import (
	"encoding/json"
	"fmt"

	"github.com/voltjs/volt-cli/internal/config"
)

// tsConfig models the generated tsconfig.json.
type tsConfig struct {
	CompilerOptions map[string]any `json:"compilerOptions"`
	Include         []string       `json:"include"`
	Exclude         []string       `json:"exclude"`
}

// RenderTSConfig renders the TypeScript compiler configuration. Edge and
// worker runtimes compile against their platform lib instead of node types.
func RenderTSConfig(cfg *config.ProjectConfig) (string, error) {
	opts := map[string]any{
		"target":           "ES2022",
		"module":           "ESNext",
		"moduleResolution": "bundler",
		"strict":           true,
		"esModuleInterop":  true,
		"skipLibCheck":     true,
		"outDir":           "dist",
		"rootDir":          "src",
		"declaration":      true,
		"sourceMap":        true,
	}

	switch cfg.Runtime {
	case config.RuntimeNode, config.RuntimeAWSLambda:
		opts["lib"] = []string{"ES2022"}
		opts["types"] = []string{"node"}
	case config.RuntimeVercelEdge:
		opts["lib"] = []string{"ES2022", "WebWorker"}
	case config.RuntimeCloudflareWorkers:
		opts["lib"] = []string{"ES2022", "WebWorker"}
		opts["types"] = []string{"@cloudflare/workers-types"}
	}

	tc := tsConfig{
		CompilerOptions: opts,
		Include:         []string{"src/**/*"},
		Exclude:         []string{"node_modules", "dist"},
	}

	data, err := json.MarshalIndent(tc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tsconfig.json: %w", err)
	}
	return string(data) + "\n", nil
}
