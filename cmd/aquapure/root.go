package main

import (
	"log/slog"

	"github.com/DanielPopoola/aquapure/internal/config"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "aquapure",
		Short:         "AquaPure product catalog and image service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = cfg.Logger.NewLogger(cfg.Primary.Env)
			slog.SetDefault(a.logger)
			return nil
		},
	}

	root.AddCommand(newServeCommand(a))
	root.AddCommand(newMigrateCommand(a))

	return root
}
