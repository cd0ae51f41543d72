package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmartell/amorcito-api/internal/config"
	"github.com/dmartell/amorcito-api/internal/database"
	"github.com/dmartell/amorcito-api/internal/database/postgres"
)

// Resets the progress row back to a fresh state. Catalogs are static
// files and are left untouched.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(),
		2, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := postgres.NewProgressRepository(pool)
	p, err := repo.Reset(ctx)
	if err != nil {
		log.Fatalf("Failed to reset progress: %v", err)
	}

	log.Printf("Progress reset: %d puntos, %d estrellas\n", p.Points, p.Stars)
}
