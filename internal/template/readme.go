package template

import (
	"fmt"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// RenderReadme renders the human-readable project summary (README.md):
// directory layout, next steps, and the enabled feature list.
func RenderReadme(cfg *config.ProjectConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	fmt.Fprintf(&b, "A [Volt](https://voltjs.dev) %s project targeting the `%s` runtime.\n\n", cfg.Template, cfg.Runtime)

	b.WriteString("## Project layout\n\n```\n")
	b.WriteString("src/\n")
	b.WriteString("  index.ts        application entry point\n")
	b.WriteString("  volt.config.ts  framework configuration\n")
	b.WriteString("  modules/        resource modules (volt module create <name>)\n")
	b.WriteString("  middleware/     custom middleware\n")
	if cfg.Database != config.DatabaseNone {
		b.WriteString("  db/             database adapter\n")
		b.WriteString("migrations/       SQL migrations (ordered by filename prefix)\n")
		b.WriteString("seeds/            SQL seed data\n")
	}
	b.WriteString("tests/            test suites\n")
	b.WriteString("```\n\n")

	b.WriteString("## Next steps\n\n")
	step := 1
	if cfg.SkipInstall {
		fmt.Fprintf(&b, "%d. Install dependencies: `npm install`\n", step)
		step++
	}
	if cfg.Database != config.DatabaseNone {
		fmt.Fprintf(&b, "%d. Configure `DATABASE_URL` in `.env`\n", step)
		step++
		fmt.Fprintf(&b, "%d. Apply migrations: `volt database migrate`\n", step)
		step++
	}
	fmt.Fprintf(&b, "%d. Start the dev server: `volt dev`\n", step)
	step++
	fmt.Fprintf(&b, "%d. Generate a resource: `volt module create users`\n\n", step)

	if len(cfg.Features) > 0 {
		b.WriteString("## Enabled features\n\n")
		for _, f := range cfg.Features {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Scripts\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	b.WriteString("| `volt dev` | start the development server with reload |\n")
	b.WriteString("| `volt build` | compile for production |\n")
	b.WriteString("| `volt lint` | run eslint |\n")
	b.WriteString("| `volt test` | run the test suite |\n")

	return b.String()
}
