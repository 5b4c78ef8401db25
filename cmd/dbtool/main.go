package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"rail-booking-service/internal/adapters/repositories"
	"rail-booking-service/internal/config"
	"rail-booking-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/network.json")
	initAndSeed(db, seedPath)
}

func initAndSeed(db *sql.DB, seedPath string) {
	log.Println("Initializing ledger schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding rail network...")
	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
