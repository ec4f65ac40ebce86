package template

import (
	"fmt"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// RenderFrameworkConfig renders src/volt.config.ts, the framework
// configuration consumed by createApp.
func RenderFrameworkConfig(cfg *config.ProjectConfig) string {
	var b strings.Builder

	b.WriteString("import type { VoltConfig } from '@voltjs/core';\n\n")
	b.WriteString("export const config: VoltConfig = {\n")
	fmt.Fprintf(&b, "  name: '%s',\n", cfg.Name)
	fmt.Fprintf(&b, "  runtime: '%s',\n", cfg.Runtime)

	if cfg.Database != config.DatabaseNone {
		b.WriteString("  database: {\n")
		fmt.Fprintf(&b, "    adapter: '%s',\n", cfg.Database)
		b.WriteString("    url: process.env.DATABASE_URL!,\n")
		b.WriteString("  },\n")
	}

	b.WriteString("  logging: {\n")
	b.WriteString("    level: process.env.LOG_LEVEL ?? 'info',\n")
	b.WriteString("    pretty: process.env.NODE_ENV !== 'production',\n")
	b.WriteString("  },\n")

	if cfg.HasFeature(config.FeatureWebSocket) {
		b.WriteString("  websocket: {\n")
		b.WriteString("    path: '/ws',\n")
		b.WriteString("    heartbeatInterval: 30_000,\n")
		b.WriteString("  },\n")
	}

	if cfg.HasFeature(config.FeatureDocs) {
		b.WriteString("  openapi: {\n")
		b.WriteString("    path: '/docs',\n")
		fmt.Fprintf(&b, "    title: '%s API',\n", cfg.Name)
		b.WriteString("    version: '0.1.0',\n")
		b.WriteString("  },\n")
	}

	b.WriteString("};\n")
	return b.String()
}

// RenderGitignore renders the project .gitignore.
func RenderGitignore(cfg *config.ProjectConfig) string {
	var b strings.Builder
	b.WriteString("node_modules/\ndist/\n.env\n*.log\ncoverage/\n")
	switch cfg.Runtime {
	case config.RuntimeVercelEdge:
		b.WriteString(".vercel/\n")
	case config.RuntimeAWSLambda:
		b.WriteString(".serverless/\n")
	case config.RuntimeCloudflareWorkers:
		b.WriteString(".wrangler/\n")
	}
	if cfg.Database == config.DatabaseSQLite {
		b.WriteString("*.db\n")
	}
	return b.String()
}
