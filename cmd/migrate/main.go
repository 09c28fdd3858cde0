// Schema migrator. Runs the embedded goose migrations against the
// configured database and exits.
package main

import (
	"context"
	"log"

	"github.com/mkalns/samplestore/internal/server"
)

func main() {
	ctx := context.Background()

	app, err := server.NewApp(ctx)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer app.Close()

	if err := app.Repos.RunMigrations(ctx, app.DB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	app.Logger.Info(ctx, "migrations applied")
}
