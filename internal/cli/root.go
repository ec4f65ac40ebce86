// Package cli wires the volt command tree. Each command file registers
// itself on the root command in its init function.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltjs/volt-cli/pkg/version"
)

// logLevelEnv is the environment variable the logger reads its level from.
// The global --verbose/--quiet flags mutate it once at startup.
const logLevelEnv = "VOLT_LOG_LEVEL"

var rootCmd = &cobra.Command{
	Use:   "volt",
	Short: "Scaffolding CLI for the Volt web framework",
	Long: `volt generates and manages projects built on the Volt TypeScript
web framework: project scaffolding, resource modules, database adapters,
deployment manifests, middleware wiring, and dev/build/test workflows.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		quiet, _ := cmd.Flags().GetBool("quiet")
		switch {
		case verbose:
			os.Setenv(logLevelEnv, "debug")
		case quiet:
			os.Setenv(logLevelEnv, "error")
		}
	},
}

// Execute runs the root command. A returned error means the process should
// exit with code 1.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate("volt " + version.Detailed() + "\n")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Only log errors")
}

// newLogger builds the slog logger shared by command handlers. The level
// comes from the environment variable set in PersistentPreRun.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv(logLevelEnv) {
	case "debug":
		level = slog.LevelDebug
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getStringMapFlag retrieves a string-to-string flag value from the command.
func getStringMapFlag(cmd *cobra.Command, name string) map[string]string {
	val, err := cmd.Flags().GetStringToString(name)
	if err != nil {
		return nil
	}
	return val
}

// getIntFlag retrieves an int flag value from the command.
func getIntFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0
	}
	return val
}
