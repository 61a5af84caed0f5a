package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cheickthiam/portfolio/cmd/portfolioctl/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := &cobra.Command{
		Use:          "portfolioctl",
		Short:        "Operator tools for the portfolio backend",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.CreateAdminCmd())
	rootCmd.AddCommand(cmd.SeedCmd())
	rootCmd.AddCommand(cmd.RepairProfileCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
