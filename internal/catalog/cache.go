package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/cache"
)

// Store is the read interface of the catalog. Implemented by the SQLite
// store and by CachedStore wrapping it.
type Store interface {
	Locations(ctx context.Context) ([]Location, error)
	LocationByID(ctx context.Context, id string) (Location, error)
	MenuByLocation(ctx context.Context, locationID string) ([]MenuItem, error)
}

// CachedStore puts a cache in front of a Store. It is an explicit object
// owned by whoever constructs the server — there is no package-global
// catalog state anywhere. Entries expire after ttl; Refresh forces a
// re-read of the location set before its TTL runs out.
//
// The cache is an optimization only: on any cache error the underlying
// store is consulted, and only positive results are cached, so a cache
// outage can never turn into a wrong NotFound.
type CachedStore struct {
	store Store
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedStore(store Store, c cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{store: store, cache: c, ttl: ttl}
}

func (c *CachedStore) Locations(ctx context.Context) ([]Location, error) {
	key := c.cache.GenerateKey("locations", "all")

	var locs []Location
	if hit(ctx, c.cache, key, &locs) {
		return locs, nil
	}

	locs, err := c.store.Locations(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, locs)
	return locs, nil
}

func (c *CachedStore) LocationByID(ctx context.Context, id string) (Location, error) {
	key := c.cache.GenerateKey("location", id)

	var loc Location
	if hit(ctx, c.cache, key, &loc) {
		return loc, nil
	}

	loc, err := c.store.LocationByID(ctx, id)
	if err != nil {
		return Location{}, err
	}
	c.put(ctx, key, loc)
	return loc, nil
}

func (c *CachedStore) MenuByLocation(ctx context.Context, locationID string) ([]MenuItem, error) {
	key := c.cache.GenerateKey("menu", locationID)

	var items []MenuItem
	if hit(ctx, c.cache, key, &items) {
		return items, nil
	}

	items, err := c.store.MenuByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, items)
	return items, nil
}

// Refresh re-reads the location set from the underlying store and
// overwrites the cached copies, resetting their TTL.
func (c *CachedStore) Refresh(ctx context.Context) error {
	locs, err := c.store.Locations(ctx)
	if err != nil {
		return err
	}
	c.put(ctx, c.cache.GenerateKey("locations", "all"), locs)
	for _, loc := range locs {
		c.put(ctx, c.cache.GenerateKey("location", loc.ID), loc)
	}
	return nil
}

func (c *CachedStore) put(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, string(raw), c.ttl); err != nil {
		slog.DebugContext(ctx, "catalog cache write failed", "key", key, "error", err)
	}
}

func hit(ctx context.Context, c cache.Cache, key string, out any) bool {
	raw, err := c.Get(ctx, key)
	if err != nil {
		slog.DebugContext(ctx, "catalog cache read failed", "key", key, "error", err)
		return false
	}
	if raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}
