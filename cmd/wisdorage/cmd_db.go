package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/wisdorage/config"
	"github.com/shashiranjanraj/wisdorage/database/indexes"
	"github.com/shashiranjanraj/wisdorage/database/seeders"
	"github.com/shashiranjanraj/wisdorage/pkg/store"
)

// bootStore loads config and opens the store connection.
func bootStore() error {
	if err := config.Load(); err != nil {
		return err
	}
	return store.Connect()
}

// wisdorage seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all store seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootStore(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, store.DB())
	},
}

// wisdorage indexes
var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the query indexes the API relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootStore(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		fmt.Println("Creating indexes…")
		return indexes.Ensure(ctx, store.DB())
	},
}
