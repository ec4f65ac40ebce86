package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/voltjs/volt-cli/internal/cli/wizard"
	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/core/project"
	"github.com/voltjs/volt-cli/internal/ui"
	"github.com/voltjs/volt-cli/pkg/version"
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Scaffold a new Volt project",
	Long: `Scaffold a new Volt project directory.

Fields not pinned by flags are collected interactively; in a
non-interactive session they fall back to defaults (node runtime,
api template, no database).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringP("runtime", "r", "", "target runtime (node, vercel-edge, aws-lambda, cloudflare-workers)")
	initCmd.Flags().StringP("database", "d", "", "database engine (mysql, postgresql, sqlite, mongodb, redis, drizzle, none)")
	initCmd.Flags().StringP("template", "t", "", "project template (api, fullstack, microservice)")
	initCmd.Flags().StringP("features", "f", "", "comma-separated feature tags (auth, cors, websocket, ...)")
	initCmd.Flags().Bool("skip-git", false, "skip git repository initialization")
	initCmd.Flags().Bool("skip-install", false, "skip npm dependency installation")
	initCmd.Flags().Bool("force", false, "scaffold into an existing non-empty directory")
	initCmd.Flags().Bool("non-interactive", false, "never prompt; unset fields use defaults")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	out := cmd.OutOrStdout()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		name = "volt-app"
	}

	flags := flagValues{
		Runtime:  getStringFlag(cmd, "runtime"),
		Database: getStringFlag(cmd, "database"),
		Template: getStringFlag(cmd, "template"),
	}
	if cmd.Flags().Changed("features") {
		flags.Features = config.ParseFeatures(getStringFlag(cmd, "features"))
		flags.FeaturesSet = true
	}
	force := getBoolFlag(cmd, "force")
	interactive := interactiveSession(cmd)

	root, err := filepath.Abs(name)
	if err != nil {
		return fmt.Errorf("failed to resolve target path: %w", err)
	}

	// An occupied target needs explicit consent before anything else
	// happens, wizard included.
	if !force && dirOccupied(root) {
		if !interactive {
			return fmt.Errorf("%w: %s (use --force to scaffold anyway)", project.ErrTargetExists, root)
		}
		ok, err := wizard.Confirm("Directory is not empty", fmt.Sprintf("Scaffold into %s anyway?", root))
		if err != nil {
			if err == wizard.ErrCancelled {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		force = true
	}

	var provide answerProvider
	if interactive {
		provide = wizardProvider
	}

	cfg, err := resolveProjectConfig(name, flags, provide)
	if err != nil {
		if err == wizard.ErrCancelled {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		return err
	}
	cfg.SkipGit = getBoolFlag(cmd, "skip-git")
	cfg.SkipInstall = getBoolFlag(cmd, "skip-install")

	fmt.Fprintln(out, ui.Banner(version.GetVersion()))

	total, err := project.PlannedFileCount(cfg)
	if err != nil {
		return err
	}
	bar := ui.NewProgress(ui.DefaultTheme()).Start("Writing project files", total)
	result, err := project.NewInitializer(logger).Init(cmd.Context(), project.InitOptions{
		Root:   root,
		Config: cfg,
		Force:  force,
		OnFile: func(string) { bar.Increment(1) },
	})
	bar.Done()
	if err != nil {
		return err
	}

	pairs := []ui.KV{
		{Key: "Project", Value: cfg.Name},
		{Key: "Runtime", Value: string(cfg.Runtime)},
		{Key: "Template", Value: string(cfg.Template)},
		{Key: "Database", Value: string(cfg.Database)},
		{Key: "Files", Value: fmt.Sprintf("%d created", len(result.CreatedFiles))},
	}
	if len(cfg.Features) > 0 {
		pairs = append(pairs, ui.KV{Key: "Features", Value: strings.Join(cfg.Features, ", ")})
	}
	fmt.Fprintln(out, ui.SuccessCard("Project ready", ui.KeyValueLines(pairs)))

	for _, w := range result.Warnings {
		fmt.Fprintln(out, ui.Warn(w))
	}

	fmt.Fprintf(out, "\nNext steps:\n  cd %s\n  volt dev\n", cfg.Name)
	return nil
}

// interactiveSession reports whether prompting is allowed: stdin must be a
// terminal and --non-interactive must be absent.
func interactiveSession(cmd *cobra.Command) bool {
	if getBoolFlag(cmd, "non-interactive") {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// dirOccupied reports whether path exists and contains at least one entry.
func dirOccupied(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	return len(entries) > 0
}
