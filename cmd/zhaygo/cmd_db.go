package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhaygo/backend/config"
	"github.com/zhaygo/backend/database/migrations"
	"github.com/zhaygo/backend/database/seeders"
	"github.com/zhaygo/backend/pkg/database"
)

// bootDB loads config and opens the database connection.
func bootDB(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect(ctx)
}

// zhaygo migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := bootDB(ctx); err != nil {
			return err
		}
		defer database.Close(ctx)

		fmt.Println("Running migrations…")
		return migrations.Run(ctx, database.DB())
	},
}

// zhaygo seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := bootDB(ctx); err != nil {
			return err
		}
		defer database.Close(ctx)

		fmt.Println("Running seeders…")
		return seeders.Run(ctx, database.DB())
	},
}
