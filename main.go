package main

import (
	"context"
	"log"

	"transitdash/adapters/postgres"
	"transitdash/internal/config"
	"transitdash/internal/errors"
	"transitdash/internal/store"
	"transitdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load .env file if present (development convenience)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)

	ctx := context.Background()

	// All datasets load before the first view evaluation. Files that
	// cannot be read become empty tables; the views degrade per column.
	datasets, err := store.Load(ctx, store.Sources(appConfig.Paths))
	if err != nil {
		log.Fatalf("Failed to load datasets: %v", err)
	}

	if err := auditLoad(ctx, appConfig, datasets); err != nil {
		log.Printf("Warning: load audit skipped: %v", err)
	}

	server, err := ui.NewServer(datasets)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if err := server.Run(appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// auditLoad records the startup load reports when a database is
// configured. The dashboard works identically without one.
func auditLoad(ctx context.Context, appConfig *config.Config, datasets *store.Store) error {
	if appConfig.Database.URL == "" {
		return nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return errors.Wrap(err, "failed to connect to audit database")
	}
	defer db.Close()

	repo, err := postgres.NewLoadReportRepository(db)
	if err != nil {
		return errors.Wrap(err, "failed to initialize load report repository")
	}
	return repo.SaveAll(ctx, datasets.Reports())
}
