package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/observability"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample fixture into the configured backend",
	Long: `Write the bundled sample users, jobs, applications, interviews, conversations and
profiles into the configured backend. Records that already exist are skipped, so the
command can be run repeatedly.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if settings.Backend == config.BackendMemory {
		log.Warn("[seed] memory backend selected; seeded data is discarded on exit")
	}

	repos, closeStore, err := openRepositories(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer closeStore()

	sum, err := loadFixture(cmd.Context(), repos)
	if err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintSeedSummary(sum)
	return nil
}
