// Package template maps a resolved project configuration to generated file
// contents. Every function here is pure: the same configuration always
// renders the same text, and no renderer touches the filesystem.
package template

import (
	"encoding/json"
	"fmt"

	"github.com/voltjs/volt-cli/internal/config"
)

// PackageJSON models the generated package manifest. Field order follows
// npm convention (name first, scripts before dependencies).
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Type            string            `json:"type"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// RenderPackageJSON renders the npm package manifest for a new project.
func RenderPackageJSON(cfg *config.ProjectConfig) (string, error) {
	pkg := PackageJSON{
		Name:        cfg.Name,
		Version:     "0.1.0",
		Description: fmt.Sprintf("%s — a Volt %s project", cfg.Name, cfg.Template),
		Type:        "module",
		Main:        "dist/index.js",
		Scripts: map[string]string{
			"dev":   "tsx watch src/index.ts",
			"build": "tsc -p tsconfig.json",
			"start": "node dist/index.js",
			"lint":  "eslint src --ext .ts",
			"test":  "vitest run",
		},
		Dependencies: map[string]string{
			config.FrameworkPackage: config.FrameworkVersion,
		},
		DevDependencies: map[string]string{
			"typescript":          "^5.6.0",
			"tsx":                 "^4.19.0",
			"eslint":              "^9.12.0",
			"vitest":              "^2.1.0",
			"@types/node":         "^22.7.0",
			"@typescript-eslint/eslint-plugin": "^8.8.0",
			"@typescript-eslint/parser":        "^8.8.0",
		},
	}

	switch cfg.Database {
	case config.DatabasePostgreSQL:
		pkg.Dependencies["pg"] = "^8.13.0"
		pkg.DevDependencies["@types/pg"] = "^8.11.0"
	case config.DatabaseMySQL:
		pkg.Dependencies["mysql2"] = "^3.11.0"
	case config.DatabaseSQLite:
		pkg.Dependencies["better-sqlite3"] = "^11.3.0"
	case config.DatabaseMongoDB:
		pkg.Dependencies["mongodb"] = "^6.9.0"
	case config.DatabaseRedis:
		pkg.Dependencies["ioredis"] = "^5.4.0"
	case config.DatabaseDrizzle:
		pkg.Dependencies["drizzle-orm"] = "^0.35.0"
		pkg.Dependencies["pg"] = "^8.13.0"
		pkg.DevDependencies["drizzle-kit"] = "^0.26.0"
	}

	if cfg.HasFeature(config.FeatureAuth) {
		pkg.Dependencies["jsonwebtoken"] = "^9.0.2"
		pkg.DevDependencies["@types/jsonwebtoken"] = "^9.0.7"
	}
	if cfg.HasFeature(config.FeatureWebSocket) {
		pkg.Dependencies["ws"] = "^8.18.0"
		pkg.DevDependencies["@types/ws"] = "^8.5.12"
	}
	if cfg.HasFeature(config.FeatureCache) && cfg.Database != config.DatabaseRedis {
		pkg.Dependencies["ioredis"] = "^5.4.0"
	}
	if cfg.HasFeature(config.FeatureDocs) {
		pkg.Dependencies["@voltjs/openapi"] = config.FrameworkVersion
	}
	if cfg.HasFeature(config.FeatureMonitoring) {
		pkg.Dependencies["prom-client"] = "^15.1.0"
	}

	switch cfg.Runtime {
	case config.RuntimeVercelEdge:
		pkg.Scripts["dev"] = "vercel dev"
		pkg.Scripts["deploy"] = "vercel deploy --prod"
	case config.RuntimeAWSLambda:
		pkg.Scripts["deploy"] = "serverless deploy"
		pkg.DevDependencies["serverless"] = "^4.4.0"
		pkg.DevDependencies["@types/aws-lambda"] = "^8.10.0"
	case config.RuntimeCloudflareWorkers:
		pkg.Scripts["dev"] = "wrangler dev"
		pkg.Scripts["deploy"] = "wrangler deploy"
		pkg.DevDependencies["wrangler"] = "^3.80.0"
	}

	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal package.json: %w", err)
	}
	return string(data) + "\n", nil
}
