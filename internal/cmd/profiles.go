package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vce-tools/vce-deploy/internal/profile"
)

// profilesCmd lists the config profiles available in the working tree.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List available config profiles",
	Long: `List config profiles found under deployment/config.

Canonical profiles (staging, production) are marked; any other .yml file
in the directory is also usable by name.`,
	Args:          cobra.NoArgs,
	RunE:          runProfiles,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	names, err := profile.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found under %s\n", profile.Dir)
		return nil
	}

	for _, name := range names {
		if slices.Contains(profile.CanonicalProfiles, name) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (canonical, environment: %s)\n", name, profile.Environment(name))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (environment: %s)\n", name, profile.Environment(name))
		}
	}

	return nil
}
