package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/chargepoint/internal/migrations"
	"github.com/JaimeStill/chargepoint/pkg/database"
	"github.com/JaimeStill/chargepoint/pkg/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the database schema",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.Up
			if len(args) == 1 {
				d, err := database.ParseDirection(args[0])
				if err != nil {
					return err
				}
				direction = d
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := logging.New(&cfg.Logging)
			return database.Migrate(&cfg.Database, migrations.FS, migrations.Dir, direction, logger)
		},
	}
}
