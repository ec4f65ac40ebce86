package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show annotated usage examples",
	RunE:  runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

const examplesDoc = `# Volt CLI examples

## Scaffold a project

` + "```bash" + `
volt init my-api --runtime node --template api --database postgresql --features auth,cors
` + "```" + `

Creates the project directory with package.json, tsconfig.json, entry
point, environment files and a volt.yaml manifest, then runs git init
and npm install (skippable with --skip-git / --skip-install).

## Generate a module

` + "```bash" + `
volt module create user --features database,websocket --with-tests
` + "```" + `

Writes src/modules/user with five CRUD routes, socket handlers, SQL
schema plus migration and seed files, and a vitest suite.

## Wire a database

` + "```bash" + `
volt database setup postgresql
volt database migrate --dry-run
volt database migrate
volt database seed --environment development
` + "```" + `

Migrations run in filename order against DATABASE_URL from .env; the
text below a "-- DOWN" marker is used by migrate --down.

## Add middleware

` + "```bash" + `
volt middleware add rate-limit --config '{"max": 500}'
` + "```" + `

Overrides merge over the type's defaults. Malformed JSON falls back to
defaults with a warning.

## Configure a deploy target

` + "```bash" + `
volt deploy vercel --project-name my-api
volt deploy lambda --region eu-west-1
volt deploy workers
` + "```" + `

## Day-to-day

` + "```bash" + `
volt dev --port 4000
volt test --coverage
volt build --minify
volt security:scan
` + "```" + `
`

func runExamples(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to the raw markdown rather than failing the command.
		fmt.Fprintln(out, examplesDoc)
		return nil
	}
	rendered, err := renderer.Render(examplesDoc)
	if err != nil {
		fmt.Fprintln(out, examplesDoc)
		return nil
	}
	fmt.Fprint(out, rendered)
	return nil
}
