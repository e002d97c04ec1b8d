package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/hiring"
	"github.com/jonathan/hireflow/internal/server"
)

var (
	servePort int
	serveSeed bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the hiring REST API. Expired job postings are
closed on the JOB_SWEEP_SCHEDULE cron schedule while the server runs.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT or 8080)")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "Load the sample fixture before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if servePort != 0 {
		settings.Port = servePort
	}
	if serveSeed {
		settings.Seed = true
	}

	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}
	passwordCfg, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to load password config: %w", err)
	}

	svc, closeStore, err := openService(ctx, false)
	if err != nil {
		return err
	}
	defer closeStore()

	sweeper, err := hiring.NewSweeper(svc, settings.SweepSchedule)
	if err != nil {
		return err
	}
	sweeper.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sweeper.Stop(stopCtx)
	}()

	if settings.AuthDisabled {
		log.Warn("[server] authentication is disabled")
	}

	srv, err := server.New(svc, server.Config{
		Port:         settings.Port,
		AuthDisabled: settings.AuthDisabled,
		JWT:          jwtCfg,
		Password:     passwordCfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
