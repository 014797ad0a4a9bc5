// Package sqlite is the SQLite-backed order repository. Orders and their
// line snapshots are written in one transaction at placement; after that
// the only write is the status reconciliation on reads.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/saltyeast-pickup/internal/order"
	"github.com/jcmexdev/saltyeast-pickup/internal/quote"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id                    TEXT PRIMARY KEY,
    status                TEXT    NOT NULL,
    location_id           TEXT    NOT NULL,
    pickup_mode           TEXT    NOT NULL,

    -- Caller-supplied RFC3339 string, empty for ASAP orders. Stored
    -- verbatim because the pickup label echoes it verbatim.
    scheduled_pickup_time TEXT    NOT NULL DEFAULT '',

    occasion              TEXT    NOT NULL DEFAULT '',
    pickup_label          TEXT    NOT NULL,
    subtotal_cents        INTEGER NOT NULL,
    tax_cents             INTEGER NOT NULL,
    total_cents           INTEGER NOT NULL,
    customer_name         TEXT    NOT NULL,
    customer_email        TEXT    NOT NULL,
    customer_phone        TEXT    NOT NULL,

    -- Wall-clock creation time (RFC3339 stored as TEXT, SQLite idiom).
    -- Status derivation is a pure function of this column's age.
    created_at            TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS order_lines (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id         TEXT    NOT NULL REFERENCES orders(id),
    item_id          TEXT    NOT NULL,

    -- Immutable snapshot of the item name at order time. Deliberately not a
    -- foreign key into items: historical orders must survive catalog edits.
    name_snapshot    TEXT    NOT NULL,

    quantity         INTEGER NOT NULL,
    unit_price_cents INTEGER NOT NULL,
    line_total_cents INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_lines_order_id ON order_lines(order_id);
`

// Repository is the SQLite implementation of order.Repository.
type Repository struct {
	db *sql.DB
}

// NewRepository applies the order schema. The db handle is shared with the
// catalog store; Repository does not own or close it.
func NewRepository(db *sql.DB) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("sqlite: apply order schema: %w", err)
	}
	return &Repository{db: db}, nil
}

// Create inserts the order and all of its lines in a single transaction.
func (r *Repository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin create order tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
			(id, status, location_id, pickup_mode, scheduled_pickup_time, occasion,
			 pickup_label, subtotal_cents, tax_cents, total_cents,
			 customer_name, customer_email, customer_phone, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, string(o.Status), o.LocationID, string(o.PickupMode),
		o.ScheduledPickupTime, o.Occasion, o.PickupLabel,
		o.SubtotalCents, o.TaxCents, o.TotalCents,
		o.Contact.Name, o.Contact.Email, o.Contact.Phone,
		o.CreatedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: insert order %q: %w", o.ID, err)
	}

	for _, line := range o.Lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines
				(order_id, item_id, name_snapshot, quantity, unit_price_cents, line_total_cents)
			VALUES
				(?, ?, ?, ?, ?, ?)`,
			o.ID, line.ItemID, line.Name, line.Quantity, line.UnitPriceCents, line.LineTotalCents,
		)
		if err != nil {
			return fmt.Errorf("sqlite: insert line for order %q: %w", o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit order %q: %w", o.ID, err)
	}
	return nil
}

// Get loads one order with its lines. Returns order.ErrNotFound for an
// unknown id.
func (r *Repository) Get(ctx context.Context, id string) (*order.Order, error) {
	const q = `
		SELECT id, status, location_id, pickup_mode, scheduled_pickup_time, occasion,
		       pickup_label, subtotal_cents, tax_cents, total_cents,
		       customer_name, customer_email, customer_phone, created_at
		FROM   orders
		WHERE  id = ?`

	var o order.Order
	var status, mode, createdAt string
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&o.ID, &status, &o.LocationID, &mode, &o.ScheduledPickupTime, &o.Occasion,
		&o.PickupLabel, &o.SubtotalCents, &o.TaxCents, &o.TotalCents,
		&o.Contact.Name, &o.Contact.Email, &o.Contact.Phone, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, order.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load order %q: %w", id, err)
	}

	o.Status = order.Status(status)
	o.PickupMode = quote.PickupMode(mode)
	o.CreatedAt, err = parseRFC3339(createdAt)
	if err != nil {
		return nil, err
	}

	o.Lines, err = r.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ReconcileStatus persists a derived status. Single-row write; no
// concurrency token needed because derivation is idempotent.
func (r *Repository) ReconcileStatus(ctx context.Context, id string, status order.Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("sqlite: reconcile status for %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reconcile status for %q: %w", id, err)
	}
	if affected == 0 {
		return order.ErrNotFound
	}
	return nil
}

func (r *Repository) lines(ctx context.Context, orderID string) ([]order.Line, error) {
	const q = `
		SELECT item_id, name_snapshot, quantity, unit_price_cents, line_total_cents
		FROM   order_lines
		WHERE  order_id = ?
		ORDER  BY id ASC`

	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load lines for %q: %w", orderID, err)
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var l order.Line
		if err := rows.Scan(&l.ItemID, &l.Name, &l.Quantity, &l.UnitPriceCents, &l.LineTotalCents); err != nil {
			return nil, fmt.Errorf("sqlite: scan line for %q: %w", orderID, err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
