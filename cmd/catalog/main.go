package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"roomstager/internal/catalog"
	"roomstager/internal/config"
)

// Seeds the furniture catalog: creates the items table and inserts the
// built-in sample data set.
func main() {
	var (
		databaseURL = flag.String("database-url", "", "PostgreSQL connection string (defaults to DATABASE_URL)")
		drop        = flag.Bool("drop", false, "Drop the items table before seeding")
	)
	flag.Parse()

	url := *databaseURL
	if url == "" {
		cfg := config.FromEnv()
		url = cfg.DatabaseURL
	}
	if url == "" {
		log.Fatal("a database URL is required (flag -database-url or env DATABASE_URL)")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if *drop {
		if _, err := pool.Exec(ctx, `DROP TABLE IF EXISTS items`); err != nil {
			log.Fatalf("drop items table: %v", err)
		}
		log.Println("dropped items table")
	}

	if err := catalog.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	store := catalog.NewPostgresStore(pool)
	items := catalog.SampleItems()

	inserted := 0
	for _, item := range items {
		if err := store.InsertItem(ctx, item); err != nil {
			log.Printf("insert %q (%s/%s): %v", item.Name, item.RoomType, item.CostRange, err)
			continue
		}
		inserted++
	}

	if inserted == 0 {
		log.Println("no items inserted")
		os.Exit(1)
	}
	log.Printf("seeded %d of %d catalog items", inserted, len(items))
}
