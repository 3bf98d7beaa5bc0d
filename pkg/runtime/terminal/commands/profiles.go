package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/billsplit/pkg/services/config"
	"github.com/spf13/cobra"
)

func NewProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the named profiles in a profiles file",
		Args:  cobra.NoArgs,
		RunE:  runProfiles,
	}
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("profiles")
	if err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("--profiles is required")
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return err
	}

	profiles := registry.GetProfiles()
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n%s\n", path, strings.Join(profiles, "\n"))
	return nil
}
