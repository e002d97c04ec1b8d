// Package main provides the entry point for the hireflow HTTP API server and its tooling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hireflow",
	Short: "Hireflow recruitment API server",
	Long: `Hireflow serves the job posting, applicant tracking, interview, messaging and
hiring analytics API, and ships commands to seed sample data, export the analytics
workbook and print hiring reports.

Configuration comes from an optional JSON file (--config), then environment variables
(a .env file is loaded if present), then built-in defaults.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (environment variables override it)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend: memory, postgres or sqlite (defaults to STORE_BACKEND)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
