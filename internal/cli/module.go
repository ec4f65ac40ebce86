package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/generator"
	"github.com/voltjs/volt-cli/internal/ui"
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Generate and inspect Volt modules",
}

var moduleCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Generate a module with routes, schema and actions",
	Long: `Generate a module under src/modules/<name>.

Every module gets typed models, a validation schema, an action layer and
five CRUD routes. The websocket feature adds socket handlers; a database
selection adds SQL schema, migration and seed files.`,
	Args: cobra.ExactArgs(1),
	RunE: runModuleCreate,
}

var moduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules in the current project",
	RunE:  runModuleList,
}

func init() {
	moduleCreateCmd.Flags().StringP("features", "f", "", "comma-separated feature tags (auth, websocket, database, ...)")
	moduleCreateCmd.Flags().String("middleware", "", "comma-separated middleware to attach to every route")
	moduleCreateCmd.Flags().String("auth-roles", "", "comma-separated roles guarding mutating routes")
	moduleCreateCmd.Flags().StringP("database", "d", "", "database engine for the SQL files (implies the database feature)")
	moduleCreateCmd.Flags().String("routes", string(config.DefaultRoutes), "route style (crud, rest, graphql)")
	moduleCreateCmd.Flags().Bool("with-tests", false, "emit a vitest suite for the module")
	moduleCreateCmd.Flags().Bool("with-docs", false, "emit a README for the module")

	moduleCmd.AddCommand(moduleCreateCmd)
	moduleCmd.AddCommand(moduleListCmd)
	rootCmd.AddCommand(moduleCmd)
}

func runModuleCreate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	out := cmd.OutOrStdout()

	spec := &config.ModuleSpec{
		Name:       args[0],
		Features:   config.ParseFeatures(getStringFlag(cmd, "features")),
		Middleware: config.ParseFeatures(getStringFlag(cmd, "middleware")),
		AuthRoles:  config.ParseFeatures(getStringFlag(cmd, "auth-roles")),
		Database:   config.Database(getStringFlag(cmd, "database")),
		Routes:     config.RouteStyle(getStringFlag(cmd, "routes")),
		WithTests:  getBoolFlag(cmd, "with-tests"),
		WithDocs:   getBoolFlag(cmd, "with-docs"),
	}
	if spec.Database != "" && !spec.Database.IsValid() {
		return fmt.Errorf("invalid --database value %q: must be one of: mysql, postgresql, sqlite, mongodb, redis, drizzle, none", spec.Database)
	}
	if !spec.Routes.IsValid() {
		return fmt.Errorf("invalid --routes value %q: must be one of: crud, rest, graphql", spec.Routes)
	}

	spin := ui.NewProgress(ui.DefaultTheme()).Spinner(fmt.Sprintf("Generating module %q...", spec.Name))
	result, err := generator.New(".", logger).Generate(spec)
	spin.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.SuccessCard(
		fmt.Sprintf("Module %q created", result.Module),
		strings.Join(result.Files, "\n"),
	))
	return nil
}

func runModuleList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	modules, err := generator.List(".")
	if err != nil {
		return err
	}
	if len(modules) == 0 {
		fmt.Fprintln(out, "No modules found. Create one with: volt module create <name>")
		return nil
	}
	for _, m := range modules {
		fmt.Fprintf(out, "  %s\n", m)
	}
	return nil
}
