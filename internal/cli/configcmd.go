package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/template"
	"github.com/voltjs/volt-cli/internal/ui"
	"github.com/voltjs/volt-cli/pkg/version"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the volt.yaml project manifest",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a fresh volt.yaml for the current project",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate volt.yaml",
	RunE:  runConfigValidate,
}

var configEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "Regenerate .env.example from .env",
	Long: `Regenerate .env.example from the local .env.

Variable names are kept, values are blanked. Comments and blank lines
survive so the example stays readable.`,
	RunE: runConfigEnv,
}

func init() {
	configInitCmd.Flags().StringP("name", "n", "", "project name (defaults to the directory name)")
	configInitCmd.Flags().Bool("force", false, "overwrite an existing volt.yaml")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configEnvCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	name := getStringFlag(cmd, "name")
	if name == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		name = filepath.Base(cwd)
	}

	if !getBoolFlag(cmd, "force") {
		if _, err := os.Stat(config.ManifestFile); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.ManifestFile)
		}
	}

	cfg := &config.ProjectConfig{Name: name}
	config.ApplyDefaults(cfg)
	manifest := config.NewManifest(cfg, version.GetVersion(), time.Now().UTC().Format(time.RFC3339))
	if err := manifest.Save("."); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.SuccessCard("Manifest written", config.ManifestFile))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	manifest, err := config.LoadManifest(".")
	if err != nil {
		return err
	}
	if err := manifest.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.SuccessCard("Manifest valid", ui.KeyValueLines([]ui.KV{
		{Key: "Project", Value: manifest.Name},
		{Key: "Runtime", Value: string(manifest.Runtime)},
		{Key: "Template", Value: string(manifest.Template)},
		{Key: "Database", Value: string(manifest.Database)},
	})))
	return nil
}

func runConfigEnv(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	raw, err := os.ReadFile(".env")
	if err != nil {
		return fmt.Errorf("failed to read .env: %w", err)
	}
	example := template.RedactEnv(string(raw))
	if err := os.WriteFile(".env.example", []byte(example), 0o644); err != nil {
		return fmt.Errorf("failed to write .env.example: %w", err)
	}

	fmt.Fprintln(out, ui.SuccessCard("Environment template updated", ".env.example"))
	return nil
}
