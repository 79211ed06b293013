package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads and writes catalog items in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing pool. Used by the seeding tool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ItemsFor returns all items matching the room type and cost range in
// insertion order.
func (s *PostgresStore) ItemsFor(ctx context.Context, roomType, costRange string) ([]Item, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, room_type, cost_range, price_min, price_max, COALESCE(link, '')
         FROM items WHERE room_type = $1 AND cost_range = $2 ORDER BY id`,
		roomType, costRange)
	if err != nil {
		return nil, fmt.Errorf("catalog: query items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.Name, &item.RoomType, &item.CostRange, &item.PriceMin, &item.PriceMax, &item.Link); err != nil {
			return nil, fmt.Errorf("catalog: scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read items: %w", err)
	}

	return items, nil
}

// NamesFor returns up to limit item names for the key, in insertion order.
func (s *PostgresStore) NamesFor(ctx context.Context, roomType, costRange string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = MaxPromptItems
	}

	rows, err := s.pool.Query(ctx,
		`SELECT name FROM items WHERE room_type = $1 AND cost_range = $2 ORDER BY id LIMIT $3`,
		roomType, costRange, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: query names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("catalog: scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: read names: %w", err)
	}

	return names, nil
}

// InsertItem appends a new item row.
func (s *PostgresStore) InsertItem(ctx context.Context, item Item) error {
	if _, err := s.pool.Exec(ctx,
		`INSERT INTO items (name, room_type, cost_range, price_min, price_max, link) VALUES ($1, $2, $3, $4, $5, $6)`,
		item.Name, item.RoomType, item.CostRange, item.PriceMin, item.PriceMax, item.Link); err != nil {
		return fmt.Errorf("catalog: insert item: %w", err)
	}

	return nil
}

// Close releases database resources.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
