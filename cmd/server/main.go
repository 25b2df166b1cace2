package main

import (
	"context"
	"log"
	"os"

	"github.com/david/farm-grant-matcher/internal/api"
	"github.com/david/farm-grant-matcher/internal/catalog"
	"github.com/david/farm-grant-matcher/internal/engine"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	ctx := context.Background()

	snap, err := catalog.LoadEmbedded(ctx)
	if err != nil {
		log.Fatalf("Failed to load embedded catalog: %v", err)
	}
	provider := catalog.NewSwappable(snap)

	// The database is optional: without DATABASE_URL the server runs
	// entirely from the embedded catalog and the admin refresh endpoint
	// is disabled.
	var pool *pgxpool.Pool
	if os.Getenv("DATABASE_URL") != "" {
		pool, err = catalog.Connect(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := catalog.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("Schema setup failed: %v", err)
		}

		if dbSnap, err := catalog.LoadFromDB(ctx, pool); err != nil {
			log.Printf("Database catalog unavailable (%v), serving embedded catalog", err)
		} else {
			provider.Publish(dbSnap)
			log.Printf("Loaded %d grants from database", dbSnap.Len())
		}
	}

	opts := []engine.Option{}
	if path := os.Getenv("SCORE_CONFIG"); path != "" {
		cfg, err := loadScoreConfig(path)
		if err != nil {
			log.Fatalf("Failed to load score config: %v", err)
		}
		opts = append(opts, engine.WithScoreConfig(cfg))
	}

	eng := engine.New(provider, opts...)

	srv := api.NewServer(eng, provider, pool)
	log.Printf("Server starting on port %s (catalog size %d)...", port, provider.Snapshot().Len())
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}

// loadScoreConfig reads ranking weight overrides from a YAML file. Missing
// keys keep their defaults.
func loadScoreConfig(path string) (engine.ScoreConfig, error) {
	cfg := engine.DefaultScoreConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
