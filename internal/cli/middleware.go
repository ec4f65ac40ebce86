package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltjs/volt-cli/internal/middleware"
	"github.com/voltjs/volt-cli/internal/ui"
)

var middlewareCmd = &cobra.Command{
	Use:   "middleware",
	Short: "Add and list middleware configurations",
}

var middlewareAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Write a configured middleware file",
	Long: fmt.Sprintf(`Write a configured middleware file under src/middleware.

Supported types: %s.
--config takes a JSON object merged over the type's defaults; malformed
JSON falls back to defaults with a warning rather than failing.`, strings.Join(middleware.SupportedTypes(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runMiddlewareAdd,
}

var middlewareListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported middleware types and their defaults",
	RunE:  runMiddlewareList,
}

func init() {
	middlewareAddCmd.Flags().StringP("config", "c", "", "JSON object of option overrides")

	middlewareCmd.AddCommand(middlewareAddCmd)
	middlewareCmd.AddCommand(middlewareListCmd)
	rootCmd.AddCommand(middlewareCmd)
}

func runMiddlewareAdd(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	out := cmd.OutOrStdout()

	written, warning, err := middleware.NewManager(".", logger).Add(args[0], getStringFlag(cmd, "config"))
	if err != nil {
		return err
	}
	if warning != "" {
		fmt.Fprintln(out, ui.Warn(warning))
	}

	fmt.Fprintln(out, ui.SuccessCard(
		fmt.Sprintf("Middleware %q added", args[0]),
		written,
	))
	return nil
}

func runMiddlewareList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, kind := range middleware.SupportedTypes() {
		fmt.Fprintf(out, "  %s\n", kind)
	}
	return nil
}
