package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/devtools"
	"github.com/voltjs/volt-cli/internal/ui"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the project's development server",
	RunE:  runDev,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project for production",
	RunE:  runBuild,
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the project sources",
	RunE:  runLint,
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the project's test suite",
	RunE:  runTest,
}

var securityScanCmd = &cobra.Command{
	Use:   "security:scan",
	Short: "Audit npm dependencies for known vulnerabilities",
	RunE:  runSecurityScan,
}

func init() {
	devCmd.Flags().IntP("port", "p", config.DefaultDevPort, "port the dev server listens on")
	devCmd.Flags().String("host", config.DefaultDevHost, "host the dev server binds to")
	devCmd.Flags().Bool("watch", true, "restart on file changes")

	buildCmd.Flags().Bool("minify", false, "minify the production bundle")
	buildCmd.Flags().String("target", "node", "build toolchain (node or bun)")
	buildCmd.Flags().StringP("output", "o", "dist", "build output directory")

	lintCmd.Flags().Bool("fix", false, "apply automatic fixes")

	testCmd.Flags().Bool("watch", false, "re-run tests on file changes")
	testCmd.Flags().Bool("coverage", false, "collect coverage")

	rootCmd.AddCommand(devCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(securityScanCmd)
}

func tools() *devtools.Tools {
	return devtools.New(".", newLogger())
}

func runDev(cmd *cobra.Command, args []string) error {
	return tools().Dev(cmd.Context(), devtools.DevOptions{
		Port:  getIntFlag(cmd, "port"),
		Host:  getStringFlag(cmd, "host"),
		Watch: getBoolFlag(cmd, "watch"),
	})
}

func runBuild(cmd *cobra.Command, args []string) error {
	return tools().Build(cmd.Context(), devtools.BuildOptions{
		Target: getStringFlag(cmd, "target"),
		Output: getStringFlag(cmd, "output"),
		Minify: getBoolFlag(cmd, "minify"),
	})
}

func runLint(cmd *cobra.Command, args []string) error {
	warning, err := tools().Lint(cmd.Context(), getBoolFlag(cmd, "fix"))
	if warning != "" {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Warn(warning))
	}
	return err
}

func runTest(cmd *cobra.Command, args []string) error {
	warning, err := tools().Test(cmd.Context(), devtools.TestOptions{
		Watch:    getBoolFlag(cmd, "watch"),
		Coverage: getBoolFlag(cmd, "coverage"),
	})
	if warning != "" {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Warn(warning))
	}
	return err
}

func runSecurityScan(cmd *cobra.Command, args []string) error {
	return tools().SecurityScan(cmd.Context())
}
