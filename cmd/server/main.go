package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"pickup-route-service/internal/adapters/cache"
	"pickup-route-service/internal/adapters/repositories"
	"pickup-route-service/internal/api"
	"pickup-route-service/internal/config"
	"pickup-route-service/internal/platform/db"
	"pickup-route-service/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires the scenario store and plan cache behind ports and starts the HTTP server.
func main() {
	config.Load()

	seedPath := config.Get("SEED_PATH", "data/seeds/scenarios.json")
	port := config.Get("PORT", "8080")

	conn, dialect, err := db.OpenStore(config.Get("DATABASE_URL", ""), config.Get("DB_PATH", "data/app.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed demo scenarios on startup for local runs.
	if err := initAndSeed(conn, dialect, seedPath); err != nil {
		log.Fatal(err)
	}

	planCache, err := openPlanCache(conn, dialect)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteScenarioRepository(conn)
	if dialect == db.Postgres {
		repo = repositories.NewPostgresScenarioRepository(conn)
	}
	router := api.NewRouter(repo, planCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      time.Duration(config.GetInt("WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openPlanCache prefers Redis when REDIS_URL is set and falls back to the
// plan_cache table of the scenario store.
func openPlanCache(conn *sql.DB, dialect db.Dialect) (ports.PlanCache, error) {
	url := config.Get("REDIS_URL", "")
	if url == "" {
		log.Println("plan_cache=sql")
		return cache.NewSQLPlanCache(conn, dialect), nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("open plan cache: parse REDIS_URL: %w", err)
	}

	ttl := config.GetDuration("PLAN_CACHE_TTL", time.Hour)
	log.Printf("plan_cache=redis addr=%s ttl=%s", opts.Addr, ttl)
	return cache.NewRedisPlanCache(redis.NewClient(opts), ttl), nil
}

func initAndSeed(conn *sql.DB, dialect db.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
