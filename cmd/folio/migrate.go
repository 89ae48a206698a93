package main

import (
	"context"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap(context.Background())
		if err != nil {
			return err
		}
		defer db.Close()

		dir := filepath.Join(cfg.Paths.Root, "migrations")
		if err := migrate.Apply(db, dir); err != nil {
			return err
		}
		color.Green("✓ migrations up to date")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List pending migrations without applying them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap(context.Background())
		if err != nil {
			return err
		}
		defer db.Close()

		pending, err := migrate.Pending(db, filepath.Join(cfg.Paths.Root, "migrations"))
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			color.Green("✓ no pending migrations")
			return nil
		}
		color.Yellow("%d pending:", len(pending))
		for _, name := range pending {
			color.Yellow("  • %s", name)
		}
		return nil
	},
}
