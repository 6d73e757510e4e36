package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wisdorage",
	Short: "Wisdorage — used-book marketplace API",
	Long:  "Wisdorage is the backend API for the Wisdorage used-book marketplace. Use this CLI to run the server and manage the store.",
}

func init() {
	// Server
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Store
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(indexesCmd)
}
