// Package main is the entry point for the tooltip API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tooltip-api",
	Short: "Team-builder tooltip API server",
	Long:  `tooltip-api serves resolved ability tooltips, unit listings, and item listings for the team-builder frontend.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
