package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltjs/volt-cli/internal/config"
	"github.com/voltjs/volt-cli/internal/deploy"
	"github.com/voltjs/volt-cli/internal/ui"
)

var deployCmd = &cobra.Command{
	Use:   "deploy <target>",
	Short: "Write deploy configuration for a hosting target",
	Long: fmt.Sprintf(`Write deploy configuration files for a hosting target.

Supported targets: %s.
An unsupported target is an error and writes nothing.`, strings.Join(deploy.SupportedTargets(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runDeploy,
}

func init() {
	deployCmd.Flags().String("project-name", "", "project name (defaults to the manifest name)")
	deployCmd.Flags().String("region", "", "target region for region-aware hosts")
	deployCmd.Flags().StringToString("env", nil, "environment variables baked into the manifest (KEY=VALUE, repeatable)")

	rootCmd.AddCommand(deployCmd)
}

// deploySpecFromFlags builds the deploy spec from the command flags. The
// project name falls back to the manifest, then to the stock name.
func deploySpecFromFlags(cmd *cobra.Command, target string) *deploy.Spec {
	projectName := getStringFlag(cmd, "project-name")
	if projectName == "" {
		if manifest, err := config.LoadManifest("."); err == nil {
			projectName = manifest.Name
		} else {
			projectName = "volt-app"
		}
	}

	return &deploy.Spec{
		Target:      target,
		ProjectName: projectName,
		Region:      getStringFlag(cmd, "region"),
		Env:         getStringMapFlag(cmd, "env"),
	}
}

func runDeploy(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	out := cmd.OutOrStdout()

	spec := deploySpecFromFlags(cmd, args[0])
	written, err := deploy.NewManager(".", logger).Setup(spec)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.SuccessCard(
		fmt.Sprintf("Deploy target %q configured", spec.Target),
		strings.Join(written, "\n"),
	))
	return nil
}
