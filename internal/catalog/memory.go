package catalog

import (
	"context"
	"sync"
)

// InMemoryStore is a thread-safe catalog used when a database is not
// configured. Reads dominate; writes only happen during seeding.
type InMemoryStore struct {
	mu    sync.RWMutex
	items []Item
}

// NewInMemoryStore constructs a store holding the given items.
func NewInMemoryStore(items []Item) *InMemoryStore {
	store := &InMemoryStore{items: make([]Item, 0, len(items))}
	store.items = append(store.items, items...)
	return store
}

// ItemsFor returns matching items in insertion order.
func (s *InMemoryStore) ItemsFor(_ context.Context, roomType, costRange string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []Item{}
	for _, item := range s.items {
		if item.RoomType == roomType && item.CostRange == costRange {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// NamesFor returns up to limit matching item names in insertion order.
func (s *InMemoryStore) NamesFor(ctx context.Context, roomType, costRange string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = MaxPromptItems
	}

	items, err := s.ItemsFor(ctx, roomType, costRange)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, item := range items {
		if len(names) == limit {
			break
		}
		names = append(names, item.Name)
	}
	return names, nil
}

// InsertItem appends an item.
func (s *InMemoryStore) InsertItem(_ context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	return nil
}

// Close satisfies the Store interface.
func (s *InMemoryStore) Close() {}
