package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/chargepoint/pkg/database"
)

func newSeedCmd() *cobra.Command {
	var (
		file string
		list bool
	)

	cmd := &cobra.Command{
		Use:   "seed [seeder...]",
		Short: "Populate the database with seed data",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				fmt.Fprintln(out, "Available seeders:")
				for _, s := range listSeeders() {
					fmt.Fprintf(out, "  - %s: %s\n", s.Name(), s.Description())
				}
				return nil
			}

			selected, err := selectSeeders(args)
			if err != nil {
				return err
			}
			if file != "" {
				if s, ok := getSeeder("stations"); ok {
					s.(*StationSeeder).SetFile(file)
				}
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := openDB(cmd.Context(), &cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := runSeeders(cmd.Context(), db, selected); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			fmt.Fprintln(out, "seeding completed successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "external station seed file (overrides embedded)")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list available seeders")

	return cmd
}

// selectSeeders resolves names to seeders; no names selects all of them.
func selectSeeders(names []string) ([]Seeder, error) {
	if len(names) == 0 {
		return listSeeders(), nil
	}
	out := make([]Seeder, 0, len(names))
	for _, name := range names {
		s, ok := getSeeder(name)
		if !ok {
			return nil, fmt.Errorf("seeder not found: %s", name)
		}
		out = append(out, s)
	}
	return out, nil
}

func openDB(ctx context.Context, cfg *database.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}
