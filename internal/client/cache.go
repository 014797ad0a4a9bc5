package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jcmexdev/saltyeast-pickup/internal/httpx"
)

// historyLimit caps the order history. Saving a 26th order evicts the
// oldest entry.
const historyLimit = 25

// OrderCache is the durable local copy of the last-placed order and a
// bounded history, kept for offline display continuity. It is a projection,
// never the source of truth: when a server is reachable its responses
// overwrite cached entries wholesale, and only the offline simulation ever
// mutates entries locally.
type OrderCache struct {
	mu        sync.Mutex
	path      string
	lastOrder *httpx.OrderResponse
	history   []httpx.OrderResponse
}

// cacheFile is the on-disk JSON shape.
type cacheFile struct {
	LastOrder    *httpx.OrderResponse  `json:"last_order"`
	OrderHistory []httpx.OrderResponse `json:"order_history"`
}

// OpenOrderCache loads the cache from path. A missing file is a fresh
// cache, not an error.
func OpenOrderCache(path string) (*OrderCache, error) {
	c := &OrderCache{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("order cache: read %q: %w", path, err)
	}

	var file cacheFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("order cache: decode %q: %w", path, err)
	}
	c.lastOrder = file.LastOrder
	c.history = file.OrderHistory
	return c, nil
}

// Save records an order as the most recent one. The history is deduplicated
// by order id — re-saving an existing order replaces the old entry and
// moves it to the front — and capped at historyLimit entries.
func (c *OrderCache) Save(o httpx.OrderResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]httpx.OrderResponse, 0, len(c.history)+1)
	next = append(next, o)
	for _, existing := range c.history {
		if existing.OrderID != o.OrderID {
			next = append(next, existing)
		}
	}
	if len(next) > historyLimit {
		next = next[:historyLimit]
	}

	c.history = next
	c.lastOrder = &o
	return c.persistLocked()
}

// UpdateStatus rewrites the status of a cached order in place. Used only by
// the offline simulation; server-backed reconciliation goes through Save.
func (c *OrderCache) UpdateStatus(orderID, status string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.history {
		if c.history[i].OrderID == orderID {
			c.history[i].Status = status
		}
	}
	if c.lastOrder != nil && c.lastOrder.OrderID == orderID {
		updated := *c.lastOrder
		updated.Status = status
		c.lastOrder = &updated
	}
	return c.persistLocked()
}

// Get returns the cached order for the id, if present.
func (c *OrderCache) Get(orderID string) (httpx.OrderResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range c.history {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return httpx.OrderResponse{}, false
}

// LastOrder returns the most recently saved order, or nil.
func (c *OrderCache) LastOrder() *httpx.OrderResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastOrder == nil {
		return nil
	}
	o := *c.lastOrder
	return &o
}

// History returns a copy of the order history, most recent first.
func (c *OrderCache) History() []httpx.OrderResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]httpx.OrderResponse, len(c.history))
	copy(out, c.history)
	return out
}

// persistLocked writes the cache to disk via a temp file and rename, so a
// crash mid-write never leaves a truncated cache behind. Caller holds mu.
func (c *OrderCache) persistLocked() error {
	raw, err := json.MarshalIndent(cacheFile{
		LastOrder:    c.lastOrder,
		OrderHistory: c.history,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("order cache: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("order cache: create dir: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("order cache: write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("order cache: rename %q: %w", tmp, err)
	}
	return nil
}
