package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheickthiam/portfolio/internal/app"
)

func SeedCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample experiences and projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				experiences, projects, err := a.SeedService.Seed(cmd.Context(), reset)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d experiences and %d projects\n", experiences, projects)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing experiences and projects first")
	return cmd
}

func RepairProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair-profile",
		Short: "Create the profile if missing and restore empty fields from defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				profile, changed, err := a.ProfileService.Repair(cmd.Context())
				if err != nil {
					return err
				}
				if changed {
					fmt.Fprintf(cmd.OutOrStdout(), "Profile %s repaired\n", profile.ID)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Profile %s is healthy\n", profile.ID)
				}
				return nil
			})
		},
	}
}
