package main

// Apply database migrations:
//   go run ./cmd/migrate
// Show applied/pending state without applying:
//   go run ./cmd/migrate -status

import (
	"context"
	"flag"
	"log"
	"os"

	"cvbuilder/internal/shared/config"
	"cvbuilder/internal/shared/storage/db"
)

func main() {
	statusOnly := flag.Bool("status", false, "print migration status instead of applying")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if *statusOnly {
		if err := db.MigrationStatus(ctx, sqlDB); err != nil {
			log.Printf("failed to read migration status: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
}
