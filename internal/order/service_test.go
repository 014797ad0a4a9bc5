package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
	"github.com/jcmexdev/saltyeast-pickup/internal/quote"
)

type memRepo struct {
	orders map[string]*Order
}

func newMemRepo() *memRepo {
	return &memRepo{orders: make(map[string]*Order)}
}

func (r *memRepo) Create(ctx context.Context, o *Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *memRepo) Get(ctx context.Context, id string) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memRepo) ReconcileStatus(ctx context.Context, id string, status Status) error {
	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}

type memLocations map[string]catalog.Location

func (m memLocations) LocationByID(ctx context.Context, id string) (catalog.Location, error) {
	loc, ok := m[id]
	if !ok {
		return catalog.Location{}, catalog.ErrNotFound
	}
	return loc, nil
}

func testLocations() memLocations {
	return memLocations{
		"downtown": {ID: "downtown", PickupEtaMins: 12, TaxRateBps: 825},
	}
}

func placeInput() PlaceInput {
	return PlaceInput{
		LocationID: "downtown",
		Quote: quote.Input{
			PickupMode: quote.ModeASAP,
			Lines: []quote.Line{
				{ItemID: "country-loaf", Name: "Country Sourdough", Quantity: 2, UnitPriceCents: 900},
			},
		},
		Contact: Contact{Name: "Rowan Hale", Email: "rowan@example.com", Phone: "512-555-0137"},
	}
}

func TestPlace_PricesThroughQuoteEngine(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, testLocations())

	o, err := svc.Place(context.Background(), placeInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(o.ID, "ord_"))
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 1800, o.SubtotalCents)
	assert.Equal(t, 149, o.TaxCents) // 1800 × 0.0825 = 148.5 → 149
	assert.Equal(t, 1949, o.TotalCents)
	assert.Equal(t, "ASAP · 12-18 min", o.PickupLabel)

	require.Len(t, o.Lines, 1)
	assert.Equal(t, 1800, o.Lines[0].LineTotalCents)

	stored, err := repo.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.TotalCents, stored.TotalCents)
}

func TestPlace_UniqueIDs(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, testLocations())

	seen := make(map[string]bool)
	for range 50 {
		o, err := svc.Place(context.Background(), placeInput())
		require.NoError(t, err)
		assert.False(t, seen[o.ID], "duplicate order id %s", o.ID)
		seen[o.ID] = true
	}
}

func TestPlace_UnknownLocation(t *testing.T) {
	svc := NewService(newMemRepo(), testLocations())

	in := placeInput()
	in.LocationID = "nowhere"
	_, err := svc.Place(context.Background(), in)
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestPlace_InvalidQuoteInput(t *testing.T) {
	svc := NewService(newMemRepo(), testLocations())

	in := placeInput()
	in.Quote.Lines = nil
	_, err := svc.Place(context.Background(), in)
	require.ErrorIs(t, err, quote.ErrInvalidInput)
}

func TestGet_DerivesAndReconcilesStatus(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, testLocations())

	created := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	o, err := svc.Place(context.Background(), placeInput())
	require.NoError(t, err)

	// 35s after creation the order reads as confirmed, and the stored
	// status is updated as a side effect.
	svc.now = func() time.Time { return created.Add(35 * time.Second) }
	got, err := svc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)
	assert.Equal(t, StatusConfirmed, repo.orders[o.ID].Status)

	// 200s after creation: ready.
	svc.now = func() time.Time { return created.Add(200 * time.Second) }
	got, err = svc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusReady, got.Status)
}

func TestGet_CanceledStaysCanceled(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, testLocations())

	created := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	o, err := svc.Place(context.Background(), placeInput())
	require.NoError(t, err)
	require.NoError(t, repo.ReconcileStatus(context.Background(), o.ID, StatusCanceled))

	svc.now = func() time.Time { return created.Add(500 * time.Second) }
	got, err := svc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, got.Status)
}

func TestGet_UnknownOrder(t *testing.T) {
	svc := NewService(newMemRepo(), testLocations())

	_, err := svc.Get(context.Background(), "ord_missing")
	require.ErrorIs(t, err, ErrNotFound)
}
