package generator

import (
	"fmt"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// routeDef is one generated HTTP route binding. Every module gets exactly
// these five, regardless of feature flags.
type routeDef struct {
	Method   string
	Path     string
	Action   string
	CacheTTL int // seconds; 0 = uncached
	RateMax  int // requests per minute
}

// moduleRoutes returns the fixed five-route table for a module.
func moduleRoutes() []routeDef {
	return []routeDef{
		{Method: "GET", Path: "/", Action: "list", CacheTTL: 30, RateMax: 100},
		{Method: "GET", Path: "/:id", Action: "getById", CacheTTL: 60, RateMax: 100},
		{Method: "POST", Path: "/", Action: "create", RateMax: 20},
		{Method: "PUT", Path: "/:id", Action: "update", RateMax: 20},
		{Method: "DELETE", Path: "/:id", Action: "remove", RateMax: 10},
	}
}

// renderRoutes renders routes.ts: the five operations bound to method+path
// pairs with per-route cache and rate-limit settings. Missing-id lookups
// translate the action layer's null/false sentinel into a 404 with a fixed
// error body.
func renderRoutes(n names, spec *config.ModuleSpec) string {
	var b strings.Builder
	b.WriteString("import type { Context, RouteTable } from '@voltjs/core';\n")
	fmt.Fprintf(&b, "import { create%sActions } from './actions.js';\n", n.Pascal)
	fmt.Fprintf(&b, "import { create%sSchema, update%sSchema, list%sQuerySchema } from './schema.js';\n\n",
		n.Pascal, n.Pascal, n.Pascal)

	fmt.Fprintf(&b, "const notFoundBody = { error: '%s not found' };\n\n", n.Raw)

	fmt.Fprintf(&b, "export const %sRoutes = (actions: ReturnType<typeof create%sActions>): RouteTable => [\n",
		n.Camel, n.Pascal)

	for _, r := range moduleRoutes() {
		fmt.Fprintf(&b, "  {\n    method: '%s',\n    path: '%s',\n", r.Method, r.Path)
		switch r.Action {
		case "list":
			fmt.Fprintf(&b, "    schema: { query: list%sQuerySchema },\n", n.Pascal)
			b.WriteString("    handler: async (ctx: Context) => actions.list(ctx.query),\n")
		case "getById":
			b.WriteString("    handler: async (ctx: Context) => {\n")
			fmt.Fprintf(&b, "      const %s = await actions.getById(ctx.params.id);\n", n.Camel)
			fmt.Fprintf(&b, "      return %s ?? ctx.notFound(notFoundBody);\n", n.Camel)
			b.WriteString("    },\n")
		case "create":
			fmt.Fprintf(&b, "    schema: { body: create%sSchema },\n", n.Pascal)
			b.WriteString("    handler: async (ctx: Context) => ctx.created(await actions.create(ctx.body)),\n")
		case "update":
			fmt.Fprintf(&b, "    schema: { body: update%sSchema },\n", n.Pascal)
			b.WriteString("    handler: async (ctx: Context) => {\n")
			fmt.Fprintf(&b, "      const %s = await actions.update(ctx.params.id, ctx.body);\n", n.Camel)
			fmt.Fprintf(&b, "      return %s ?? ctx.notFound(notFoundBody);\n", n.Camel)
			b.WriteString("    },\n")
		case "remove":
			b.WriteString("    handler: async (ctx: Context) => {\n")
			b.WriteString("      const removed = await actions.remove(ctx.params.id);\n")
			b.WriteString("      return removed ? ctx.noContent() : ctx.notFound(notFoundBody);\n")
			b.WriteString("    },\n")
		}
		if r.CacheTTL > 0 {
			fmt.Fprintf(&b, "    cache: { ttl: %d },\n", r.CacheTTL)
		}
		fmt.Fprintf(&b, "    rateLimit: { max: %d, window: 60_000 },\n", r.RateMax)
		b.WriteString("  },\n")
	}
	b.WriteString("];\n")
	return b.String()
}

// renderResolvers renders resolvers.ts for graphql-style modules: the same
// five operations exposed as a resolver map instead of REST handlers.
func renderResolvers(n names) string {
	var b strings.Builder
	fmt.Fprintf(&b, "import { create%sActions } from './actions.js';\n\n", n.Pascal)
	fmt.Fprintf(&b, "export const %sResolvers = (actions: ReturnType<typeof create%sActions>) => ({\n",
		n.Camel, n.Pascal)
	b.WriteString("  Query: {\n")
	fmt.Fprintf(&b, "    %s: (_: unknown, args: { limit: number; offset: number }) => actions.list(args),\n", n.Plural)
	fmt.Fprintf(&b, "    %s: (_: unknown, args: { id: string }) => actions.getById(args.id),\n", n.Camel)
	b.WriteString("  },\n")
	b.WriteString("  Mutation: {\n")
	fmt.Fprintf(&b, "    create%s: (_: unknown, args: { input: unknown }) => actions.create(args.input as never),\n", n.Pascal)
	fmt.Fprintf(&b, "    update%s: (_: unknown, args: { id: string; input: unknown }) => actions.update(args.id, args.input as never),\n", n.Pascal)
	fmt.Fprintf(&b, "    delete%s: (_: unknown, args: { id: string }) => actions.remove(args.id),\n", n.Pascal)
	b.WriteString("  },\n")
	b.WriteString("});\n")
	return b.String()
}

// renderIndex renders index.ts, wiring config and routes (and sockets when
// the websocket feature is selected) into a module registration call.
func renderIndex(n names, spec *config.ModuleSpec) string {
	var b strings.Builder
	b.WriteString("import { defineModule } from '@voltjs/core';\n")
	fmt.Fprintf(&b, "import { %sConfig } from './config.js';\n", n.Camel)
	fmt.Fprintf(&b, "import { create%sActions } from './actions.js';\n", n.Pascal)
	fmt.Fprintf(&b, "import { %sRoutes } from './routes.js';\n", n.Camel)
	if spec.HasFeature(config.FeatureWebSocket) {
		fmt.Fprintf(&b, "import { %sSockets } from './sockets.js';\n", n.Camel)
	}
	if spec.Routes == config.RoutesGraphQL {
		fmt.Fprintf(&b, "import { %sResolvers } from './resolvers.js';\n", n.Camel)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "export const %sModule = defineModule({\n", n.Camel)
	fmt.Fprintf(&b, "  config: %sConfig,\n", n.Camel)
	fmt.Fprintf(&b, "  setup: ({ collection, events }) => {\n")
	fmt.Fprintf(&b, "    const actions = create%sActions(collection, events);\n", n.Pascal)
	b.WriteString("    return {\n")
	fmt.Fprintf(&b, "      routes: %sRoutes(actions),\n", n.Camel)
	if spec.Routes == config.RoutesGraphQL {
		fmt.Fprintf(&b, "      resolvers: %sResolvers(actions),\n", n.Camel)
	}
	if spec.HasFeature(config.FeatureWebSocket) {
		fmt.Fprintf(&b, "      sockets: %sSockets(actions),\n", n.Camel)
	}
	b.WriteString("    };\n")
	b.WriteString("  },\n")
	b.WriteString("});\n")
	return b.String()
}
