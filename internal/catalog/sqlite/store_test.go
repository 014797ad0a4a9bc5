package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/sqlitedb"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func TestStore_SeedsOnFirstBoot(t *testing.T) {
	store := openTestStore(t)

	locs, err := store.Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locs, 3)

	// Ordered by display name.
	assert.Equal(t, "downtown", locs[0].ID) // Downtown Austin
	assert.Equal(t, "east", locs[1].ID)     // East Austin
	assert.Equal(t, "soco", locs[2].ID)     // South Congress
	assert.Equal(t, 825, locs[0].TaxRateBps)
}

func TestStore_LocationByID(t *testing.T) {
	store := openTestStore(t)

	loc, err := store.LocationByID(context.Background(), "downtown")
	require.NoError(t, err)
	assert.Equal(t, "Downtown Austin", loc.Name)
	assert.Equal(t, 12, loc.PickupEtaMins)
	assert.InDelta(t, 0.0825, loc.TaxRate(), 1e-9)
}

func TestStore_LocationByIDUnknown(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LocationByID(context.Background(), "nowhere")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStore_MenuByLocation(t *testing.T) {
	store := openTestStore(t)

	items, err := store.MenuByLocation(context.Background(), "downtown")
	require.NoError(t, err)
	require.NotEmpty(t, items)

	byID := make(map[string]catalog.MenuItem)
	for _, it := range items {
		byID[it.ID] = it
	}

	// Downtown carries the kouign-amann but not the olive levain.
	kouign, ok := byID["kouign-amann"]
	require.True(t, ok)
	assert.Equal(t, 525, kouign.PriceCents)
	assert.Equal(t, []string{"new"}, kouign.Tags)

	_, ok = byID["olive-levain"]
	assert.False(t, ok)

	// Sorted by name.
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Name, items[i].Name)
	}
}

func TestStore_MenuUnknownLocationIsEmpty(t *testing.T) {
	store := openTestStore(t)

	items, err := store.MenuByLocation(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = NewStore(db)
	require.NoError(t, err)

	// Constructing a second store over the same database must not reseed.
	store, err := NewStore(db)
	require.NoError(t, err)

	locs, err := store.Locations(context.Background())
	require.NoError(t, err)
	assert.Len(t, locs, 3)
}
