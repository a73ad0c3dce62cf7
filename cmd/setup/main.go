// Command setup creates the configured database if it does not exist,
// applies the embedded migrations and optionally seeds the securities catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/StockDesk_Go/internal/config"
	"github.com/osse101/StockDesk_Go/internal/database"
	"github.com/osse101/StockDesk_Go/internal/database/postgres"
	"github.com/osse101/StockDesk_Go/internal/securities"
	"github.com/osse101/StockDesk_Go/internal/validation"
)

func main() {
	seedPath := flag.String("seed", "", "path to a securities seed catalog (e.g. configs/securities.json)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	// Connect to the maintenance database to create the target one
	adminConnString := (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:     cfg.DBHost + ":" + cfg.DBPort,
		Path:     "/postgres",
		RawQuery: "sslmode=disable",
	}).String()
	conn, err := pgx.Connect(ctx, adminConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	_ = conn.Close(ctx)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	if *seedPath == "" {
		return
	}

	data, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed catalog: %v", err)
	}
	svc := securities.NewService(postgres.NewSecurityRepository(pool), nil)
	result, err := securities.Seed(ctx, svc, validation.NewSchemaValidator(), data)
	if err != nil {
		log.Fatalf("Failed to seed securities: %v", err)
	}
	fmt.Printf("Seeded securities: %d created, %d already present.\n", result.Created, result.Skipped)
}
