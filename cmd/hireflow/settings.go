package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/hiring"
	"github.com/jonathan/hireflow/internal/seed"
	"github.com/jonathan/hireflow/internal/server"
	"github.com/jonathan/hireflow/internal/store"
	"github.com/jonathan/hireflow/internal/store/sqlstore"
)

var (
	configPath  string
	backendFlag string

	// settings is resolved once per invocation by loadSettings.
	settings config.Config
	log      = logrus.New()
)

// loadSettings layers flags over environment over the config file over defaults,
// then configures logging.
func loadSettings(cmd *cobra.Command, _ []string) error {
	var fileCfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if backendFlag != "" {
		envCfg.Backend = backendFlag
	}

	merged := envCfg.MergeWithDefaults(fileCfg)
	if err := merged.Validate(); err != nil {
		return err
	}
	settings = merged

	configureLogging(log, settings)
	server.SetLogger(log)
	hiring.SetLogger(log)

	log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"backend": settings.Backend,
	}).Debug("[config] settings resolved")
	return nil
}

func configureLogging(l *logrus.Logger, cfg config.Config) {
	l.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		l.SetLevel(level)
	}
	if cfg.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// openRepositories connects the configured backend. The returned func releases it.
func openRepositories(ctx context.Context, cfg config.Config) (*store.Repositories, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return database.NewRepositories(), database.Close, nil

	case config.BackendSQLite:
		gdb, err := sqlstore.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return sqlstore.NewRepositories(gdb), closeFn, nil

	default:
		return store.NewMemory(), func() {}, nil
	}
}

// loadFixture writes the bundled sample data into repos.
func loadFixture(ctx context.Context, repos *store.Repositories) (seed.Summary, error) {
	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return seed.Summary{}, err
	}
	fx, err := seed.Default()
	if err != nil {
		return seed.Summary{}, err
	}
	return seed.Load(ctx, repos, fx, passwords.HashPassword)
}

// openService opens the backend and wraps it in a hiring service. An in-memory backend
// starts empty, so it is seeded when seedMemory is set.
func openService(ctx context.Context, seedMemory bool) (*hiring.Service, func(), error) {
	repos, closeFn, err := openRepositories(ctx, settings)
	if err != nil {
		return nil, nil, err
	}
	if settings.Seed || (seedMemory && settings.Backend == config.BackendMemory) {
		sum, err := loadFixture(ctx, repos)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("failed to seed: %w", err)
		}
		log.WithField("records", sum.Total()).Info("[seed] sample data loaded")
	}
	return hiring.NewService(repos), closeFn, nil
}
