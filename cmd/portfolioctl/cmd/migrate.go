package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/cheickthiam/portfolio/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations (SQL drivers only)",
	}

	cmd.AddCommand(migrateSubCmd("up", "Apply all pending migrations", func(d *sqlx.DB, driver string) (string, error) {
		err := db.RunMigrations(d.DB, driver)
		return "Migrations applied", err
	}))
	cmd.AddCommand(migrateSubCmd("down", "Roll back the latest migration", func(d *sqlx.DB, driver string) (string, error) {
		err := db.MigrateDown(d.DB, driver)
		return "Rolled back one migration", err
	}))
	cmd.AddCommand(migrateSubCmd("status", "Print the current schema version", func(d *sqlx.DB, driver string) (string, error) {
		version, err := db.MigrationStatus(d.DB, driver)
		return fmt.Sprintf("Schema version: %d", version), err
	}))
	return cmd
}

func migrateSubCmd(use, short string, run func(*sqlx.DB, string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.DBDriver == db.DriverMongo {
				return db.ErrNoMigrations
			}

			database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			msg, err := run(database, cfg.DBDriver)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
