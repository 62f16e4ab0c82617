package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/tourism-portal/internal/config"
	"github.com/tourism-portal/internal/pkg/logger"
	"github.com/tourism-portal/internal/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", string(postgres.MigrateUp), "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply, 0 means all")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level, "migrate")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	dir := postgres.MigrationDirection(*direction)
	if dir != postgres.MigrateUp && dir != postgres.MigrateDown {
		log.Fatal("Unknown migration direction", zap.String("direction", *direction))
	}
	if *steps < 0 {
		log.Fatal("Steps must not be negative", zap.Int("steps", *steps))
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := postgres.Migrate(db, dir, *steps, log); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
}
