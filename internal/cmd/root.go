// Package cmd provides the CLI commands for vce-deploy.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vce-tools/vce-deploy/internal/fileutil"
	"github.com/vce-tools/vce-deploy/internal/inject"
	"github.com/vce-tools/vce-deploy/internal/ui"
)

const version = "0.1.0"

// DefaultOutputPath is where the generated manifest is written, relative
// to the pipeline working directory. Overwritten on each run.
const DefaultOutputPath = "deployment/run-service-generated.yaml"

var (
	injectDryRun bool
	injectOutput string
)

// rootCmd renders the manifest. Injection is the root command rather
// than a subcommand so the pipeline invocation stays a flat four-arg
// call.
var rootCmd = &cobra.Command{
	Use:   "vce-deploy <template_path> <config_profile> <short_sha> <project_id>",
	Short: "Render a Cloud Run service manifest from a config profile",
	Long: `vce-deploy - Cloud Run manifest renderer for VCE

Merges a named config profile with a manifest template, replacing
{{TOKEN}} placeholders with resolved values (service name, image,
resources, scaling, service account), and writes the generated manifest
for the deploy pipeline.

Profiles live at deployment/config/<profile>.yml. Only the cloud_run
section is consumed; missing fields fall back to built-in defaults. The
container image is always derived from <project_id> and <short_sha> and
cannot be overridden by a profile.

Examples:
  # Render the staging manifest
  vce-deploy deployment/run-service.template.yaml staging abc1234 fastly-soc

  # Preview without writing anything
  vce-deploy -n deployment/run-service.template.yaml staging abc1234 fastly-soc

  # List available profiles
  vce-deploy profiles`,
	Version:       version,
	Args:          cobra.ExactArgs(4),
	RunE:          runInject,
	SilenceErrors: true,
}

func runInject(cmd *cobra.Command, args []string) error {
	// Past arg validation: failures from here are processing errors, not
	// usage errors, so suppress the usage dump.
	cmd.SilenceUsage = true

	templatePath, profileName, shortSHA, projectID := args[0], args[1], args[2], args[3]

	rendered, err := inject.Inject(templatePath, profileName, shortSHA, projectID)
	if err != nil {
		return err
	}

	if injectDryRun {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if err := fileutil.WriteFileAtomic(injectOutput, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("write %s: %w", injectOutput, err)
	}

	ui.Success("Generated %s from %s", injectOutput, profileName)
	return nil
}

// Execute runs the root command. All errors surface here as a single
// printed line and exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&injectDryRun, "dry-run", "n", false, "Print the rendered manifest without writing it")
	rootCmd.Flags().StringVarP(&injectOutput, "output", "o", DefaultOutputPath, "Path for the generated manifest")

	rootCmd.SetVersionTemplate("vce-deploy version {{.Version}}\n")
}
