package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"Backend-NMIT-Records/src/config"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/seeder"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	perClass := flag.Int("students", cfg.Seed.StudentsPerClass, "students per class")
	seed := flag.Uint64("seed", 0, "faker seed (0 = random)")
	flag.Parse()

	lg, err := logger.New(cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	logger.SetDefault(lg)
	defer lg.Sync()

	ctx := context.Background()
	store, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("error connecting to the database: %w", err)
	}
	defer store.Disconnect(ctx)

	if err := store.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("error creating indexes: %w", err)
	}

	res, err := seeder.Seed(ctx, store, seeder.NewGenerator(*seed), *perClass)
	if err != nil {
		return err
	}
	lg.Info("🌱 Seeding finished", "skipped", res.SkippedBranches)
	return nil
}
