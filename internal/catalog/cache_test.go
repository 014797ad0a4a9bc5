package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/cache"
)

type countingStore struct {
	locations     []Location
	menus         map[string][]MenuItem
	locationCalls int
	menuCalls     int
}

func (s *countingStore) Locations(ctx context.Context) ([]Location, error) {
	s.locationCalls++
	return s.locations, nil
}

func (s *countingStore) LocationByID(ctx context.Context, id string) (Location, error) {
	s.locationCalls++
	for _, loc := range s.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return Location{}, ErrNotFound
}

func (s *countingStore) MenuByLocation(ctx context.Context, locationID string) ([]MenuItem, error) {
	s.menuCalls++
	return s.menus[locationID], nil
}

func newCountingStore() *countingStore {
	return &countingStore{
		locations: []Location{
			{ID: "downtown", Name: "Downtown Austin", PickupEtaMins: 12, TaxRateBps: 825},
		},
		menus: map[string][]MenuItem{
			"downtown": {{ID: "cortado", Name: "Cortado", PriceCents: 425}},
		},
	}
}

func TestCachedStore_SecondReadHitsCache(t *testing.T) {
	store := newCountingStore()
	cached := NewCachedStore(store, cache.NewMemoryCache("test"), time.Minute)
	ctx := context.Background()

	first, err := cached.LocationByID(ctx, "downtown")
	require.NoError(t, err)
	second, err := cached.LocationByID(ctx, "downtown")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.locationCalls)

	_, err = cached.MenuByLocation(ctx, "downtown")
	require.NoError(t, err)
	_, err = cached.MenuByLocation(ctx, "downtown")
	require.NoError(t, err)
	assert.Equal(t, 1, store.menuCalls)
}

func TestCachedStore_NotFoundIsNeverCached(t *testing.T) {
	store := newCountingStore()
	cached := NewCachedStore(store, cache.NewMemoryCache("test"), time.Minute)
	ctx := context.Background()

	_, err := cached.LocationByID(ctx, "nowhere")
	require.ErrorIs(t, err, ErrNotFound)

	// A location added later must become visible: the earlier miss was not
	// cached as a negative entry.
	store.locations = append(store.locations, Location{ID: "nowhere", Name: "Pop-up"})
	loc, err := cached.LocationByID(ctx, "nowhere")
	require.NoError(t, err)
	assert.Equal(t, "Pop-up", loc.Name)
}

func TestCachedStore_RefreshOverwrites(t *testing.T) {
	store := newCountingStore()
	cached := NewCachedStore(store, cache.NewMemoryCache("test"), time.Minute)
	ctx := context.Background()

	_, err := cached.LocationByID(ctx, "downtown")
	require.NoError(t, err)

	store.locations[0].PickupEtaMins = 20
	require.NoError(t, cached.Refresh(ctx))

	loc, err := cached.LocationByID(ctx, "downtown")
	require.NoError(t, err)
	assert.Equal(t, 20, loc.PickupEtaMins)
}
