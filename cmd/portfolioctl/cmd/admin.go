package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheickthiam/portfolio/internal/app"
	"github.com/cheickthiam/portfolio/internal/service"
)

func CreateAdminCmd() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the admin account (refuses when one exists)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				if email == "" {
					email = a.Cfg.AdminEmail
				}
				if password == "" {
					password = a.Cfg.AdminPassword
				}
				if name == "" {
					name = a.Cfg.AdminName
				}

				admin, err := a.AuthService.CreateAdmin(cmd.Context(), email, password, name)
				if errors.Is(err, service.ErrAdminExists) {
					fmt.Fprintln(cmd.OutOrStdout(), "An admin account already exists, nothing to do.")
					return nil
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Admin created: %s (%s)\n", admin.Email, admin.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (default ADMIN_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (default ADMIN_PASSWORD)")
	cmd.Flags().StringVar(&name, "name", "", "admin display name (default ADMIN_NAME)")
	return cmd
}
