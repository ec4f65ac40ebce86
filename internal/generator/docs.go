package generator

import (
	"fmt"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// renderModuleTest renders a vitest suite covering the five actions and the
// not-found sentinel behavior.
func renderModuleTest(n names) string {
	var b strings.Builder
	b.WriteString("import { describe, expect, it } from 'vitest';\n")
	b.WriteString("import { memoryCollection, memoryEvents } from '@voltjs/core/testing';\n")
	fmt.Fprintf(&b, "import { create%sActions } from './actions.js';\n\n", n.Pascal)

	fmt.Fprintf(&b, "describe('%s actions', () => {\n", n.Raw)
	b.WriteString("  const setup = () => create" + n.Pascal + "Actions(memoryCollection(), memoryEvents());\n\n")

	b.WriteString("  it('creates and lists', async () => {\n")
	b.WriteString("    const actions = setup();\n")
	fmt.Fprintf(&b, "    await actions.create({ name: 'first %s' });\n", n.Raw)
	b.WriteString("    const all = await actions.list({ limit: 10, offset: 0 });\n")
	b.WriteString("    expect(all).toHaveLength(1);\n")
	b.WriteString("  });\n\n")

	b.WriteString("  it('returns null for a missing id', async () => {\n")
	b.WriteString("    const actions = setup();\n")
	b.WriteString("    expect(await actions.getById('missing')).toBeNull();\n")
	b.WriteString("    expect(await actions.update('missing', {})).toBeNull();\n")
	b.WriteString("    expect(await actions.remove('missing')).toBe(false);\n")
	b.WriteString("  });\n")
	b.WriteString("});\n")
	return b.String()
}

// renderModuleDocs renders the module's README.
func renderModuleDocs(n names, spec *config.ModuleSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s module\n\n", n.Raw)
	fmt.Fprintf(&b, "REST resource mounted at `/%s`.\n\n", n.Plural)
	b.WriteString("| Method | Path | Action |\n|---|---|---|\n")
	for _, r := range moduleRoutes() {
		fmt.Fprintf(&b, "| %s | /%s%s | %s |\n", r.Method, n.Plural, strings.TrimSuffix(r.Path, "/"), r.Action)
	}
	b.WriteString("\n## Events\n\n")
	fmt.Fprintf(&b, "`created`, `updated`, `deleted` — each carries the affected %s entity.\n", n.Raw)
	if spec.HasFeature(config.FeatureWebSocket) {
		b.WriteString("\n## Socket events\n\n")
		fmt.Fprintf(&b, "`%s:join`, `%s:update` (rate limited).\n", n.Plural, n.Plural)
	}
	return b.String()
}
