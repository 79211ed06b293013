package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Item represents one furniture row in the catalog.
type Item struct {
	Name      string  `json:"name"`
	RoomType  string  `json:"room_type"`
	CostRange string  `json:"cost_range"`
	PriceMin  float64 `json:"price_min"`
	PriceMax  float64 `json:"price_max"`
	Link      string  `json:"link,omitempty"`
}

// MaxPromptItems caps how many catalog names feed into prompt construction.
const MaxPromptItems = 10

// Store defines the read path the request pipeline relies on plus the write
// path used by the seeding tool. Lookups are exact-match on both keys and
// return an empty slice, never an error, when nothing matches.
type Store interface {
	ItemsFor(ctx context.Context, roomType, costRange string) ([]Item, error)
	NamesFor(ctx context.Context, roomType, costRange string, limit int) ([]string, error)
	InsertItem(ctx context.Context, item Item) error
	Close()
}

// NewStore selects a backing store based on whether a database URL is provided.
// Without one, a pre-seeded in-memory catalog keeps the pipeline usable.
func NewStore(ctx context.Context, databaseURL string) (Store, error) {
	if databaseURL == "" {
		return NewInMemoryStore(SampleItems()), nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog: create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("catalog: ping database: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the items table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS items (
        id SERIAL PRIMARY KEY,
        name TEXT NOT NULL,
        room_type TEXT NOT NULL,
        cost_range TEXT NOT NULL,
        price_min DOUBLE PRECISION NOT NULL,
        price_max DOUBLE PRECISION NOT NULL,
        link TEXT
    )`)
	if err != nil {
		return fmt.Errorf("catalog: create items table: %w", err)
	}

	return nil
}
