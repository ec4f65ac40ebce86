package generator

import (
	"fmt"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// names bundles the identifier forms derived from a module name.
type names struct {
	Raw    string // e.g. "user"
	Pascal string // "User"
	Camel  string // "user"
	Plural string // "users", also the route prefix and table name
}

func newNames(module string) names {
	return names{
		Raw:    module,
		Pascal: PascalCase(module),
		Camel:  CamelCase(module),
		Plural: strings.ToLower(Pluralize(module)),
	}
}

// renderTypes renders types.ts: the entity plus its input/query shapes.
func renderTypes(n names) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export interface %s {\n", n.Pascal)
	b.WriteString("  id: string;\n")
	b.WriteString("  name: string;\n")
	b.WriteString("  description?: string;\n")
	b.WriteString("  createdAt: string;\n")
	b.WriteString("  updatedAt: string;\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "export interface Create%sInput {\n", n.Pascal)
	b.WriteString("  name: string;\n")
	b.WriteString("  description?: string;\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "export type Update%sInput = Partial<Create%sInput>;\n\n", n.Pascal, n.Pascal)

	fmt.Fprintf(&b, "export interface List%sQuery {\n", n.Pascal)
	b.WriteString("  limit: number;\n")
	b.WriteString("  offset: number;\n")
	b.WriteString("}\n")
	return b.String()
}

// renderSchema renders schema.ts, the validation layer. Field constraints:
// name 2–100 chars, description up to 500, list query limit 1–100
// (default 10) and offset >= 0 (default 0).
func renderSchema(n names) string {
	var b strings.Builder
	b.WriteString("import { schema } from '@voltjs/core/validation';\n\n")

	fmt.Fprintf(&b, "export const create%sSchema = schema.object({\n", n.Pascal)
	b.WriteString("  name: schema.string().min(2).max(100),\n")
	b.WriteString("  description: schema.string().max(500).optional(),\n")
	b.WriteString("});\n\n")

	fmt.Fprintf(&b, "export const update%sSchema = create%sSchema.partial();\n\n", n.Pascal, n.Pascal)

	fmt.Fprintf(&b, "export const list%sQuerySchema = schema.object({\n", n.Pascal)
	b.WriteString("  limit: schema.number().int().min(1).max(100).default(10),\n")
	b.WriteString("  offset: schema.number().int().min(0).default(0),\n")
	b.WriteString("});\n")
	return b.String()
}

// renderConfig renders config.ts. The route prefix is always the pluralized
// module name.
func renderConfig(n names, spec *config.ModuleSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export const %sConfig = {\n", n.Camel)
	fmt.Fprintf(&b, "  name: '%s',\n", n.Raw)
	fmt.Fprintf(&b, "  prefix: '/%s',\n", n.Plural)
	fmt.Fprintf(&b, "  tags: ['%s'],\n", n.Plural)
	if len(spec.Middleware) > 0 {
		fmt.Fprintf(&b, "  middleware: ['%s'],\n", strings.Join(spec.Middleware, "', '"))
	}
	if len(spec.AuthRoles) > 0 {
		fmt.Fprintf(&b, "  roles: ['%s'],\n", strings.Join(spec.AuthRoles, "', '"))
	}
	b.WriteString("};\n")
	return b.String()
}

// renderActions renders actions.ts: the five business-logic operations over
// an injected collection. Lookups that miss return null rather than throw;
// the route layer maps that to a 404.
func renderActions(n names) string {
	var b strings.Builder
	b.WriteString("import type { Collection, EventBus } from '@voltjs/core';\n")
	fmt.Fprintf(&b, "import type { %s, Create%sInput, Update%sInput, List%sQuery } from './types.js';\n\n",
		n.Pascal, n.Pascal, n.Pascal, n.Pascal)

	fmt.Fprintf(&b, "export const create%sActions = (collection: Collection<%s>, events: EventBus) => ({\n",
		n.Pascal, n.Pascal)

	fmt.Fprintf(&b, "  async list(query: List%sQuery): Promise<%s[]> {\n", n.Pascal, n.Pascal)
	b.WriteString("    return collection.list({ limit: query.limit, offset: query.offset });\n")
	b.WriteString("  },\n\n")

	fmt.Fprintf(&b, "  async getById(id: string): Promise<%s | null> {\n", n.Pascal)
	b.WriteString("    return (await collection.get(id)) ?? null;\n")
	b.WriteString("  },\n\n")

	fmt.Fprintf(&b, "  async create(input: Create%sInput): Promise<%s> {\n", n.Pascal, n.Pascal)
	b.WriteString("    const now = new Date().toISOString();\n")
	fmt.Fprintf(&b, "    const %s: %s = {\n", n.Camel, n.Pascal)
	b.WriteString("      id: crypto.randomUUID(),\n")
	b.WriteString("      ...input,\n")
	b.WriteString("      createdAt: now,\n")
	b.WriteString("      updatedAt: now,\n")
	b.WriteString("    };\n")
	fmt.Fprintf(&b, "    await collection.put(%s.id, %s);\n", n.Camel, n.Camel)
	fmt.Fprintf(&b, "    events.emit('created', %s);\n", n.Camel)
	fmt.Fprintf(&b, "    return %s;\n", n.Camel)
	b.WriteString("  },\n\n")

	fmt.Fprintf(&b, "  async update(id: string, input: Update%sInput): Promise<%s | null> {\n", n.Pascal, n.Pascal)
	b.WriteString("    const existing = await collection.get(id);\n")
	b.WriteString("    if (!existing) {\n")
	b.WriteString("      return null;\n")
	b.WriteString("    }\n")
	b.WriteString("    const updated = { ...existing, ...input, updatedAt: new Date().toISOString() };\n")
	b.WriteString("    await collection.put(id, updated);\n")
	b.WriteString("    events.emit('updated', updated);\n")
	b.WriteString("    return updated;\n")
	b.WriteString("  },\n\n")

	b.WriteString("  async remove(id: string): Promise<boolean> {\n")
	b.WriteString("    const existing = await collection.get(id);\n")
	b.WriteString("    if (!existing) {\n")
	b.WriteString("      return false;\n")
	b.WriteString("    }\n")
	b.WriteString("    await collection.delete(id);\n")
	b.WriteString("    events.emit('deleted', existing);\n")
	b.WriteString("    return true;\n")
	b.WriteString("  },\n")
	b.WriteString("});\n")
	return b.String()
}
