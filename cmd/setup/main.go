package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/dmartell/amorcito-api/internal/catalog"
	"github.com/dmartell/amorcito-api/internal/config"
	"github.com/dmartell/amorcito-api/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 1. Connect to default 'postgres' database to create the new database
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(context.Background(), defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	// 2. Check if database exists
	var exists bool
	err = conn.QueryRow(context.Background(), "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		_, err = conn.Exec(context.Background(), fmt.Sprintf("CREATE DATABASE %s", cfg.DBName))
		if err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}

	// Close connection to postgres db
	conn.Close(context.Background())

	// 3. Connect to the new database and run migrations
	pool, err := database.NewPool(context.Background(), cfg.GetDBConnString(),
		4, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	// 4. Verify catalog files are present and readable
	fmt.Printf("Checking catalog files in %s...\n", cfg.DataDir)
	missing := 0
	for _, name := range catalog.Files() {
		path := filepath.Join(cfg.DataDir, name)
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("  MISSING %s\n", path)
			missing++
		}
	}
	if missing > 0 {
		fmt.Printf("%d catalog file(s) missing; the API serves empty lists for those.\n", missing)
	} else {
		provider := catalog.NewProvider(cfg.DataDir)
		fmt.Printf("  cartas: %d\n", len(provider.Letters()))
		fmt.Printf("  razones: %d\n", len(provider.Reasons()))
		fmt.Printf("  premios: %d\n", len(provider.Prizes()))
		fmt.Printf("  canciones: %d\n", len(provider.Songs()))
		fmt.Printf("  frases: %d\n", len(provider.Phrases()))
	}

	fmt.Println("Setup complete.")
}
