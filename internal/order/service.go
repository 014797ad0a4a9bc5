package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
	"github.com/jcmexdev/saltyeast-pickup/internal/quote"
)

// LocationSource resolves location ids to catalog locations. Implemented by
// the catalog store (usually wrapped in its cache).
type LocationSource interface {
	LocationByID(ctx context.Context, id string) (catalog.Location, error)
}

// PlaceInput is a validated order request: the quote input plus the
// customer contact. Field-level validation happens at the HTTP boundary
// before this type is ever built.
type PlaceInput struct {
	LocationID string
	Quote      quote.Input
	Contact    Contact
}

// Service implements order placement and reads.
type Service struct {
	repo      Repository
	locations LocationSource

	// now is the clock used for creation timestamps and status derivation.
	// Injectable so tests can pin time.
	now func() time.Time
}

func NewService(repo Repository, locations LocationSource) *Service {
	return &Service{
		repo:      repo,
		locations: locations,
		now:       time.Now,
	}
}

// Place prices the request through the quote engine — the exact function
// the preview endpoint uses, so the charged total always matches the
// previewed one — and persists the order with a pending status.
//
// Order ids are random UUIDs with an "ord_" prefix. A timestamp-derived id
// would collide under concurrent creation within one clock tick; UUIDs keep
// the uniqueness invariant without coordination.
func (s *Service) Place(ctx context.Context, in PlaceInput) (*Order, error) {
	loc, err := s.locations.LocationByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}

	q, err := quote.Compute(loc, in.Quote)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, len(in.Quote.Lines))
	for i, l := range in.Quote.Lines {
		lines[i] = Line{
			ItemID:         l.ItemID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			LineTotalCents: l.UnitPriceCents * l.Quantity,
		}
	}

	o := &Order{
		ID:                  "ord_" + uuid.NewString(),
		Status:              StatusPending,
		LocationID:          q.LocationID,
		PickupMode:          q.PickupMode,
		ScheduledPickupTime: q.ScheduledPickupTime,
		Occasion:            q.Occasion,
		PickupLabel:         q.PickupLabel,
		SubtotalCents:       q.SubtotalCents,
		TaxCents:            q.TaxCents,
		TotalCents:          q.TotalCents,
		Contact:             in.Contact,
		CreatedAt:           s.now().UTC(),
		Lines:               lines,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	slog.InfoContext(ctx, "order placed",
		"order_id", o.ID,
		"location_id", o.LocationID,
		"total_cents", o.TotalCents,
	)
	return o, nil
}

// Get loads an order and applies the lazy status transition: derive the
// status from the order's age, and when it moved, write it back before
// returning. Derivation and write-back are separate steps so the pure
// computation stays testable without persistence.
//
// A failed write-back is logged but does not fail the read — the next read
// re-derives the same (or a later) status, so the store converges anyway.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	derived := DeriveStatus(o.Status, o.CreatedAt, s.now())
	if derived != o.Status {
		if err := s.repo.ReconcileStatus(ctx, o.ID, derived); err != nil {
			slog.WarnContext(ctx, "status write-back failed",
				"order_id", o.ID,
				"derived_status", string(derived),
				"error", err,
			)
		}
		o.Status = derived
	}
	return o, nil
}
