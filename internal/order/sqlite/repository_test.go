package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/saltyeast-pickup/internal/order"
	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/sqlitedb"
	"github.com/jcmexdev/saltyeast-pickup/internal/quote"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(db)
	require.NoError(t, err)
	return repo
}

func sampleOrder(id string) *order.Order {
	return &order.Order{
		ID:            id,
		Status:        order.StatusPending,
		LocationID:    "downtown",
		PickupMode:    quote.ModeASAP,
		Occasion:      "brunch",
		PickupLabel:   "ASAP · 12-18 min",
		SubtotalCents: 1800,
		TaxCents:      149,
		TotalCents:    1949,
		Contact:       order.Contact{Name: "Rowan Hale", Email: "rowan@example.com", Phone: "512-555-0137"},
		CreatedAt:     time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		Lines: []order.Line{
			{ItemID: "country-loaf", Name: "Country Sourdough", Quantity: 2, UnitPriceCents: 900, LineTotalCents: 1800},
		},
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	want := sampleOrder("ord_test1")
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.Get(ctx, "ord_test1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.PickupMode, got.PickupMode)
	assert.Equal(t, want.PickupLabel, got.PickupLabel)
	assert.Equal(t, want.TotalCents, got.TotalCents)
	assert.Equal(t, want.Contact, got.Contact)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, want.Lines, got.Lines)
}

func TestRepository_GetUnknownID(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.Get(context.Background(), "ord_missing")
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestRepository_ReconcileStatus(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleOrder("ord_test1")))
	require.NoError(t, repo.ReconcileStatus(ctx, "ord_test1", order.StatusPreparing))

	got, err := repo.Get(ctx, "ord_test1")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, got.Status)
}

func TestRepository_ReconcileStatusUnknownID(t *testing.T) {
	repo := openTestRepo(t)

	err := repo.ReconcileStatus(context.Background(), "ord_missing", order.StatusReady)
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestRepository_LineOrderPreserved(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	o := sampleOrder("ord_test1")
	o.Lines = []order.Line{
		{ItemID: "cortado", Name: "Cortado", Quantity: 1, UnitPriceCents: 425, LineTotalCents: 425},
		{ItemID: "croissant-butter", Name: "Cultured Butter Croissant", Quantity: 3, UnitPriceCents: 450, LineTotalCents: 1350},
		{ItemID: "honey-cake", Name: "Burnt Honey Layer Cake", Quantity: 1, UnitPriceCents: 850, LineTotalCents: 850},
	}
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.Get(ctx, "ord_test1")
	require.NoError(t, err)
	assert.Equal(t, o.Lines, got.Lines)
}
