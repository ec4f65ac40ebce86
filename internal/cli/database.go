package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/database"
	"github.com/voltjs/volt-cli/internal/ui"
)

var databaseCmd = &cobra.Command{
	Use:     "database",
	Aliases: []string{"db"},
	Short:   "Set up database adapters and run migrations",
}

var databaseSetupCmd = &cobra.Command{
	Use:   "setup <type>",
	Short: "Write the adapter boilerplate for a database engine",
	Long: fmt.Sprintf(`Write the connection and adapter boilerplate for a database engine.

Supported types: %s.
An unsupported type is an error and writes nothing.`, strings.Join(database.SupportedTypes(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runDatabaseSetup,
}

var databaseMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply, revert or replay SQL migrations",
	Long: `Apply pending migrations from the migrations directory against
DATABASE_URL.

Files run in lexicographic filename order; the text below a "-- DOWN"
marker is the revert script. --down reverts the most recent applied
migration, --reset reverts everything and replays from scratch, and
--dry-run lists pending files without connecting.`,
	RunE: runDatabaseMigrate,
}

var databaseSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run seed SQL files against DATABASE_URL",
	RunE:  runDatabaseSeed,
}

func init() {
	databaseSetupCmd.Flags().String("host", "", "database host")
	databaseSetupCmd.Flags().Int("port", 0, "database port")
	databaseSetupCmd.Flags().StringP("username", "u", "", "database user")
	databaseSetupCmd.Flags().String("database-name", "", "database name")
	databaseSetupCmd.Flags().Bool("with-migrations", true, "include the migrations runner script")
	databaseSetupCmd.Flags().Bool("with-seeds", true, "include the seeds directory")

	databaseMigrateCmd.Flags().Bool("up", false, "apply pending migrations (default)")
	databaseMigrateCmd.Flags().Bool("down", false, "revert the most recent applied migration")
	databaseMigrateCmd.Flags().Bool("reset", false, "revert everything, then replay all migrations")
	databaseMigrateCmd.Flags().Bool("dry-run", false, "list pending migrations without connecting")

	databaseSeedCmd.Flags().StringP("environment", "e", "", "seed subdirectory to run (seeds/<env>)")

	databaseCmd.AddCommand(databaseSetupCmd)
	databaseCmd.AddCommand(databaseMigrateCmd)
	databaseCmd.AddCommand(databaseSeedCmd)
	rootCmd.AddCommand(databaseCmd)
}

func runDatabaseSetup(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	out := cmd.OutOrStdout()

	spec := &database.AdapterSpec{
		Type:           config.Database(args[0]),
		Host:           getStringFlag(cmd, "host"),
		Port:           getIntFlag(cmd, "port"),
		Username:       getStringFlag(cmd, "username"),
		DatabaseName:   getStringFlag(cmd, "database-name"),
		WithMigrations: getBoolFlag(cmd, "with-migrations"),
		WithSeeds:      getBoolFlag(cmd, "with-seeds"),
	}

	written, err := database.NewManager(".", logger).Setup(spec)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.SuccessCard(
		fmt.Sprintf("Database adapter %q ready", spec.Type),
		strings.Join(written, "\n"),
	))
	return nil
}

func runDatabaseMigrate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	out := cmd.OutOrStdout()
	runner := database.NewRunner(".", out, logger)

	down := getBoolFlag(cmd, "down")
	reset := getBoolFlag(cmd, "reset")
	dryRun := getBoolFlag(cmd, "dry-run")
	if down && reset {
		return fmt.Errorf("--down and --reset are mutually exclusive")
	}

	switch {
	case dryRun:
		return runner.Preview()
	case reset:
		return runner.Reset(cmd.Context())
	case down:
		return runner.Down(cmd.Context())
	default:
		return runner.Up(cmd.Context())
	}
}

func runDatabaseSeed(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	out := cmd.OutOrStdout()
	runner := database.NewRunner(".", out, logger)

	return runner.Seed(cmd.Context(), getStringFlag(cmd, "environment"))
}
