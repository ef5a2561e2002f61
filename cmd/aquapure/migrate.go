package main

import (
	"github.com/DanielPopoola/aquapure/internal/infrastructure/persistence/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := postgres.Connect(ctx, &a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := postgres.Migrate(ctx, db)
			if err != nil {
				return err
			}

			a.logger.Info("migrations complete", "applied", len(applied))
			return nil
		},
	}
}
