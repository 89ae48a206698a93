package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/config"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/database"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/logger"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/vault"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Content-managed portfolio site",
	Long: `folio serves a database-driven portfolio site and manages its schema.

Examples:

  folio migrate
  folio seed --email admin@example.com --password changeme
  folio serve
`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(seedCmd)
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// bootstrap loads config, starts the logger, resolves secrets, and opens
// the database.  Every subcommand goes through here.
func bootstrap(ctx context.Context) (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := logger.New(cfg.Paths.Root, runningInTTY()); err != nil {
		return nil, nil, fmt.Errorf("start logger: %w", err)
	}

	if config.HasVaultRefs(cfg) {
		vc, err := vault.New(ctx, zap.S().Infof)
		if err != nil {
			return nil, nil, fmt.Errorf("vault client: %w", err)
		}
		if err := config.ResolveSecrets(ctx, vc); err != nil {
			return nil, nil, err
		}
		cfg = config.Get()
	}

	dsn := fmt.Sprintf(cfg.Database.DSN, cfg.Database.Password)
	db, err := database.Open(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, db, nil
}
