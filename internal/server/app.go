// Package server wires configuration, logging, the database pool and the
// sample service into one App shared by every Lambda entry point.
package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkalns/samplestore/internal/apierr"
	"github.com/mkalns/samplestore/internal/logging"
	"github.com/mkalns/samplestore/internal/server/config"
	"github.com/mkalns/samplestore/internal/server/db"
	"github.com/mkalns/samplestore/internal/server/repositories/repomanager"
	"github.com/mkalns/samplestore/internal/server/services"
)

type App struct {
	Config  *config.Config
	Logger  logging.Logger
	DB      *sql.DB
	Repos   repomanager.RepositoryManager
	Samples *services.SampleService
}

// NewApp performs the cold-start initialization. Lambda handlers call it
// once from main and reuse the App across invocations, so the pool opened
// here lives for the lifetime of the execution environment.
func NewApp(ctx context.Context) (*App, error) {
	cfg := config.LoadConfig()
	logger := logging.NewJSON()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager(apierr.NewClassifier(logger))
	samples := services.NewSampleService(pool, repos, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		DB:      pool,
		Repos:   repos,
		Samples: samples,
	}, nil
}

// Close releases the database pool. Entry points that terminate normally,
// such as the migrator, call it; Lambda handlers never do.
func (app *App) Close() error {
	return app.DB.Close()
}
