package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsForMissReturnsEmpty(t *testing.T) {
	store := NewInMemoryStore(SampleItems())

	items, err := store.ItemsFor(context.Background(), "Garage", "Low")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Mismatched casing is a miss as well: lookup is exact-match.
	items, err = store.ItemsFor(context.Background(), "Living Room", "low")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemsForPreservesInsertionOrder(t *testing.T) {
	store := NewInMemoryStore(nil)
	ctx := context.Background()

	rows := []Item{
		{Name: "Sofa", RoomType: "Living Room", CostRange: "Medium", PriceMin: 20000, PriceMax: 25000},
		{Name: "Rug", RoomType: "Living Room", CostRange: "Medium", PriceMin: 3000, PriceMax: 4000},
		{Name: "TV Stand", RoomType: "Living Room", CostRange: "Medium", PriceMin: 8000, PriceMax: 10000},
		{Name: "Lamp", RoomType: "Living Room", CostRange: "Low", PriceMin: 1000, PriceMax: 2000},
	}
	for _, row := range rows {
		require.NoError(t, store.InsertItem(ctx, row))
	}

	items, err := store.ItemsFor(ctx, "Living Room", "Medium")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Sofa", items[0].Name)
	assert.Equal(t, "Rug", items[1].Name)
	assert.Equal(t, "TV Stand", items[2].Name)
}

func TestNamesForCapsAtLimit(t *testing.T) {
	store := NewInMemoryStore(SampleItems())

	names, err := store.NamesFor(context.Background(), "Living Room", "High", 3)
	require.NoError(t, err)
	assert.Len(t, names, 3)

	all, err := store.NamesFor(context.Background(), "Living Room", "High", MaxPromptItems)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(all), MaxPromptItems)
	assert.Equal(t, names, all[:3])
}

func TestNamesForMissReturnsEmpty(t *testing.T) {
	store := NewInMemoryStore(SampleItems())

	names, err := store.NamesFor(context.Background(), "Ballroom", "High", MaxPromptItems)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSampleItemsCanonicalCasing(t *testing.T) {
	for _, item := range SampleItems() {
		assert.Contains(t, []string{"Low", "Medium", "High"}, item.CostRange,
			"item %q has non-canonical cost range %q", item.Name, item.CostRange)
	}
}
