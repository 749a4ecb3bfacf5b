package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/avenmore/focusquest/internal/database"
	"github.com/avenmore/focusquest/internal/database/postgres"
	"github.com/avenmore/focusquest/internal/domain"
)

// setup creates the database if missing, applies migrations, and seeds
// a demo user so the API is usable immediately after a fresh install.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	ctx := context.Background()

	// Connect to the default 'postgres' database to create the new one
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", dbname)
		if _, err = conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbname)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", dbname)
	}
	conn.Close(ctx)

	targetConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	fmt.Println("Running migrations...")
	if err := database.Migrate(targetConnString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	// Seed a demo user for local testing if one isn't there yet
	pool, err := pgxpool.New(ctx, targetConnString)
	if err != nil {
		log.Fatalf("Unable to open pool: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	if _, err := userRepo.GetUserByUsername(ctx, demoUsername); err == nil {
		fmt.Printf("Demo user %q already exists.\n", demoUsername)
		return
	}

	demo, err := userRepo.CreateUser(ctx, demoUsername)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	// Paid tier so local testing gets the full daily attempt allowance
	subRepo := postgres.NewSubscriptionRepository(pool)
	if err := subRepo.SetTier(ctx, demo.ID, domain.TierPaid); err != nil {
		log.Fatalf("Failed to set demo user tier: %v", err)
	}

	fmt.Printf("Created demo user %q (%s).\n", demo.Username, demo.ID)
}

const demoUsername = "demo"
