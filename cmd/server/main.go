package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"rail-booking-service/internal/adapters/cache"
	"rail-booking-service/internal/adapters/graph"
	"rail-booking-service/internal/adapters/repositories"
	"rail-booking-service/internal/api"
	"rail-booking-service/internal/config"
	"rail-booking-service/internal/platform/db"
	"rail-booking-service/internal/platform/graphdb"
	"rail-booking-service/internal/ports"
)

// main is the application composition root.
// It wires the relational ledger (Postgres), the schedule graph store
// (Neo4j), and the optional view cache (Redis) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	neo4jURI := os.Getenv("NEO4J_URI")
	if strings.TrimSpace(neo4jURI) == "" {
		log.Fatal("NEO4J_URI is required")
	}
	neo4jUser := config.Get("NEO4J_USER", "neo4j")
	neo4jPass := os.Getenv("NEO4J_PASSWORD")

	port := config.Get("PORT", "8080")

	ledgerDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer ledgerDB.Close()

	// Schema creation is idempotent; running it on startup keeps local
	// runs working without a separate dbtool invocation.
	if err := repositories.InitSchema(ledgerDB); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	driver, err := graphdb.Open(ctx, neo4jURI, neo4jUser, neo4jPass)
	if err != nil {
		log.Fatal(err)
	}
	defer driver.Close(ctx)

	ledger := repositories.NewPostgresLedger(ledgerDB)
	schedules := graph.NewNeo4jScheduleStore(driver)

	// The view cache is optional: without REDIS_ADDR every composite read
	// goes straight to the two stores.
	var views ports.TrainViewCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("verify redis connection: %v", err)
		}
		defer client.Close()
		views = cache.NewRedisTrainViewCache(client, 5*time.Minute)
		log.Printf("view cache enabled addr=%s", addr)
	}

	router := api.NewRouter(api.Stores{
		Stations:    ledger,
		Connections: ledger,
		Trains:      ledger,
		Users:       ledger,
		Tickets:     ledger,
		Purchases:   ledger,
		Schedules:   schedules,
		Views:       views,
	})

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
