package order

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no order exists for the requested id.
var ErrNotFound = errors.New("order not found")

// Repository is the port for order persistence. The service depends on this
// abstraction, not on SQLite directly, so tests can substitute an in-memory
// implementation.
type Repository interface {
	// Create persists a new order together with its line snapshots.
	Create(ctx context.Context, o *Order) error

	// Get loads an order and its lines by id. Returns ErrNotFound when the
	// id is unknown.
	Get(ctx context.Context, id string) (*Order, error)

	// ReconcileStatus writes a freshly derived status back to the stored
	// order. Idempotent: re-deriving the same elapsed time yields the same
	// status, so concurrent reconciliations converge rather than conflict.
	ReconcileStatus(ctx context.Context, id string, status Status) error
}
