package template

import (
	"fmt"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// RenderEntry renders src/index.ts. The runtime target selects the
// entry-point wrapper; feature tags select middleware registration blocks.
func RenderEntry(cfg *config.ProjectConfig) string {
	var b strings.Builder

	b.WriteString("import { createApp } from '@voltjs/core';\n")
	if imports := middlewareImports(cfg); imports != "" {
		b.WriteString(imports)
	}
	b.WriteString("import { config } from './volt.config.js';\n\n")

	b.WriteString("const app = createApp(config);\n\n")
	b.WriteString(middlewareRegistrations(cfg))

	b.WriteString("app.get('/', () => ({ name: '" + cfg.Name + "', status: 'ok' }));\n")
	b.WriteString("app.get('/health', () => ({ status: 'healthy', uptime: process.uptime() }));\n\n")

	switch cfg.Runtime {
	case config.RuntimeVercelEdge:
		b.WriteString("// Vercel Edge entry point\n")
		b.WriteString("export const config_ = { runtime: 'edge' };\n")
		b.WriteString("export default app.fetch;\n")
	case config.RuntimeAWSLambda:
		b.WriteString("// AWS Lambda entry point\n")
		b.WriteString("import { toLambdaHandler } from '@voltjs/core/adapters';\n")
		b.WriteString("export const handler = toLambdaHandler(app);\n")
	case config.RuntimeCloudflareWorkers:
		b.WriteString("// Cloudflare Workers entry point\n")
		b.WriteString("export default {\n")
		b.WriteString("  fetch: (request: Request, env: unknown, ctx: ExecutionContext) =>\n")
		b.WriteString("    app.fetch(request, env, ctx),\n")
		b.WriteString("};\n")
	default:
		b.WriteString("const port = Number(process.env.PORT ?? 3000);\n")
		b.WriteString("const host = process.env.HOST ?? 'localhost';\n\n")
		b.WriteString("app.listen({ port, host }, () => {\n")
		b.WriteString("  console.log(`⚡ " + cfg.Name + " listening on http://${host}:${port}`);\n")
		b.WriteString("});\n")
	}

	return b.String()
}

// middlewareImports returns the import lines implied by the feature set.
func middlewareImports(cfg *config.ProjectConfig) string {
	var names []string
	for _, f := range cfg.Features {
		switch f {
		case config.FeatureAuth:
			names = append(names, "auth")
		case config.FeatureCORS:
			names = append(names, "cors")
		case config.FeatureCompression:
			names = append(names, "compression")
		case config.FeatureRateLimit:
			names = append(names, "rateLimit")
		case config.FeatureCache:
			names = append(names, "cache")
		case config.FeatureCircuitBreaker:
			names = append(names, "circuitBreaker")
		case config.FeatureMonitoring:
			names = append(names, "metrics")
		}
	}
	if len(names) == 0 {
		return ""
	}
	return fmt.Sprintf("import { %s } from '@voltjs/core/middleware';\n", strings.Join(names, ", "))
}

// middlewareRegistrations returns the app.use blocks implied by the
// feature set. Unknown feature tags select nothing.
func middlewareRegistrations(cfg *config.ProjectConfig) string {
	var b strings.Builder
	for _, f := range cfg.Features {
		switch f {
		case config.FeatureCORS:
			b.WriteString("app.use(cors({ origin: '*' }));\n")
		case config.FeatureCompression:
			b.WriteString("app.use(compression());\n")
		case config.FeatureAuth:
			b.WriteString("app.use(auth({ secret: process.env.JWT_SECRET! }));\n")
		case config.FeatureRateLimit:
			b.WriteString("app.use(rateLimit({ max: Number(process.env.RATE_LIMIT_MAX ?? 100) }));\n")
		case config.FeatureCache:
			b.WriteString("app.use(cache({ ttl: 60 }));\n")
		case config.FeatureCircuitBreaker:
			b.WriteString("app.use(circuitBreaker({ threshold: 5, resetTimeout: 30_000 }));\n")
		case config.FeatureMonitoring:
			b.WriteString("app.use(metrics({ path: '/metrics' }));\n")
		}
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}
