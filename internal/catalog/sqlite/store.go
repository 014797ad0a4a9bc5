// Package sqlite is the SQLite-backed catalog store: locations, items, and
// per-location availability. The catalog is reference data — the ordering
// core only ever reads it, and the tables are seeded once on first boot.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
)

const schema = `
CREATE TABLE IF NOT EXISTS locations (
    id              TEXT PRIMARY KEY,
    name            TEXT    NOT NULL,
    address         TEXT    NOT NULL,
    hours_label     TEXT    NOT NULL,
    is_open_now     INTEGER NOT NULL,
    pickup_eta_mins INTEGER NOT NULL,

    -- Tax rate in integer basis points (rate × 10000). Stored as an integer
    -- so no floating-point representation ever touches persisted money math.
    tax_rate_bps    INTEGER NOT NULL,

    image_url       TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url   TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL DEFAULT '',

    -- JSON array of tag strings, e.g. ["popular","vegan"].
    tags        TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS item_availability (
    location_id TEXT    NOT NULL REFERENCES locations(id),
    item_id     TEXT    NOT NULL REFERENCES items(id),
    price_cents INTEGER NOT NULL,
    is_active   INTEGER NOT NULL DEFAULT 1,
    PRIMARY KEY (location_id, item_id)
);
`

// Store reads catalog data from SQLite.
type Store struct {
	db *sql.DB
}

// NewStore applies the catalog schema and seeds the tables when they are
// empty. The db handle is shared with the order repository; Store does not
// own or close it.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("sqlite: apply catalog schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedIfEmpty(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Locations returns every store, ordered by display name.
func (s *Store) Locations(ctx context.Context) ([]catalog.Location, error) {
	const q = `
		SELECT id, name, address, hours_label, is_open_now, pickup_eta_mins, tax_rate_bps, image_url
		FROM   locations
		ORDER  BY name ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list locations: %w", err)
	}
	defer rows.Close()

	var locs []catalog.Location
	for rows.Next() {
		var loc catalog.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.HoursLabel,
			&loc.IsOpenNow, &loc.PickupEtaMins, &loc.TaxRateBps, &loc.ImageURL); err != nil {
			return nil, fmt.Errorf("sqlite: scan location: %w", err)
		}
		locs = append(locs, loc)
	}
	return locs, rows.Err()
}

// LocationByID returns one location or catalog.ErrNotFound.
func (s *Store) LocationByID(ctx context.Context, id string) (catalog.Location, error) {
	const q = `
		SELECT id, name, address, hours_label, is_open_now, pickup_eta_mins, tax_rate_bps, image_url
		FROM   locations
		WHERE  id = ?`

	var loc catalog.Location
	err := s.db.QueryRowContext(ctx, q, id).Scan(&loc.ID, &loc.Name, &loc.Address,
		&loc.HoursLabel, &loc.IsOpenNow, &loc.PickupEtaMins, &loc.TaxRateBps, &loc.ImageURL)
	if err == sql.ErrNoRows {
		return catalog.Location{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Location{}, fmt.Errorf("sqlite: load location %q: %w", id, err)
	}
	return loc, nil
}

// MenuByLocation returns the active menu for one location, ordered by item
// name. Inactive availability rows are filtered out here; an unknown
// location simply yields an empty menu.
func (s *Store) MenuByLocation(ctx context.Context, locationID string) ([]catalog.MenuItem, error) {
	const q = `
		SELECT i.id, i.name, i.description, i.image_url, i.category, i.tags, a.price_cents
		FROM   item_availability a
		JOIN   items i ON i.id = a.item_id
		WHERE  a.location_id = ? AND a.is_active = 1
		ORDER  BY i.name ASC`

	rows, err := s.db.QueryContext(ctx, q, locationID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load menu for %q: %w", locationID, err)
	}
	defer rows.Close()

	var items []catalog.MenuItem
	for rows.Next() {
		var it catalog.MenuItem
		var tags string
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL,
			&it.Category, &tags, &it.PriceCents); err != nil {
			return nil, fmt.Errorf("sqlite: scan menu item: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &it.Tags); err != nil {
			return nil, fmt.Errorf("sqlite: decode tags for item %q: %w", it.ID, err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// seedIfEmpty loads the initial catalog on first boot. Idempotent: a
// non-empty locations table means seeding already happened.
func (s *Store) seedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&count); err != nil {
		return fmt.Errorf("sqlite: count locations: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for _, loc := range catalog.SeedLocations() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO locations (id, name, address, hours_label, is_open_now, pickup_eta_mins, tax_rate_bps, image_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			loc.ID, loc.Name, loc.Address, loc.HoursLabel, loc.IsOpenNow,
			loc.PickupEtaMins, loc.TaxRateBps, loc.ImageURL)
		if err != nil {
			return fmt.Errorf("sqlite: seed location %q: %w", loc.ID, err)
		}
	}

	for _, it := range catalog.SeedItems() {
		tags, err := json.Marshal(it.Tags)
		if err != nil {
			return fmt.Errorf("sqlite: encode tags for item %q: %w", it.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO items (id, name, description, image_url, category, tags)
			VALUES (?, ?, ?, ?, ?, ?)`,
			it.ID, it.Name, it.Description, it.ImageURL, it.Category, string(tags))
		if err != nil {
			return fmt.Errorf("sqlite: seed item %q: %w", it.ID, err)
		}
	}

	for _, a := range catalog.SeedAvailability() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO item_availability (location_id, item_id, price_cents, is_active)
			VALUES (?, ?, ?, ?)`,
			a.LocationID, a.ItemID, a.PriceCents, a.IsActive)
		if err != nil {
			return fmt.Errorf("sqlite: seed availability %s/%s: %w", a.LocationID, a.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit seed tx: %w", err)
	}
	return nil
}
