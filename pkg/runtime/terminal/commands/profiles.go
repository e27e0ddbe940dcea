package commands

import (
	"fmt"

	"github.com/de-tools/sales-report/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	settings SettingsProvider
}

func NewProfilesCmd(settings SettingsProvider) *cobra.Command {
	pc := &ProfilesCmd{settings: settings}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List named profiles from the profiles file",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	path := pc.settings().Profiles

	registry, err := config.NewProfileRegistry(path)
	if err != nil {
		return err
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in: %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n", path)
	for _, p := range profiles {
		fmt.Fprintln(cmd.OutOrStdout(), p.String())
	}
	return nil
}
