package main

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/auth"
	"github.com/amchibidi13/artful-data-folio-sub000/internal/store"
)

var (
	seedEmail    string
	seedPassword string
	seedRole     string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert an admin user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedEmail == "" || seedPassword == "" {
			return errors.New("--email and --password are required")
		}
		if len(seedPassword) < 8 {
			return errors.New("password must be at least 8 characters")
		}

		ctx := context.Background()
		_, db, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		hash, err := auth.HashPassword(seedPassword)
		if err != nil {
			return err
		}
		id, err := store.New(db).CreateAdminUser(ctx, store.AdminUser{
			Email:        seedEmail,
			PasswordHash: hash,
			Role:         seedRole,
		})
		if err != nil {
			return err
		}
		color.Green("✓ admin user %s created (id %d)", seedEmail, id)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedEmail, "email", "", "Login email for the new admin")
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "Password (min 8 characters)")
	seedCmd.Flags().StringVar(&seedRole, "role", "admin", "Role to assign")
}
