package cmd

import (
	"context"
	"fmt"

	"github.com/cheickthiam/portfolio/internal/app"
	"github.com/cheickthiam/portfolio/internal/config"
	"github.com/cheickthiam/portfolio/internal/db"
	"github.com/cheickthiam/portfolio/internal/logger"
)

// loadConfig reads the same environment as the server.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Options{Env: cfg.AppEnv, SentryDSN: cfg.SentryDSN})
	return cfg, nil
}

// withApp opens the database, wires the services without object storage
// and runs fn.
func withApp(ctx context.Context, fn func(*app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conn := db.New(cfg.DBDriver, cfg.DBConnection, cfg.MongoDatabase)
	err = conn.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	a, err := app.Assemble(cfg, conn, nil)
	if err != nil {
		_ = conn.Close(ctx)
		return err
	}
	defer func() { _ = a.Close() }()

	return fn(a)
}
