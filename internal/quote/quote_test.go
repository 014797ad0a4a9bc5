package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
)

func austinLocation() catalog.Location {
	return catalog.Location{
		ID:            "downtown",
		Name:          "Downtown Austin",
		PickupEtaMins: 12,
		TaxRateBps:    825,
	}
}

func TestCompute_TaxRounding(t *testing.T) {
	// 1000 × 0.0825 = 82.5 → rounds half away from zero to 83.
	q, err := Compute(austinLocation(), Input{
		PickupMode: ModeASAP,
		Lines: []Line{
			{ItemID: "country-loaf", Name: "Country Sourdough", Quantity: 1, UnitPriceCents: 1000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1000, q.SubtotalCents)
	assert.Equal(t, 83, q.TaxCents)
	assert.Equal(t, 1083, q.TotalCents)
	assert.Equal(t, 825, q.TaxRateBps)
}

func TestCompute_TotalIsSubtotalPlusTax(t *testing.T) {
	lineSets := [][]Line{
		{{ItemID: "a", Name: "A", Quantity: 1, UnitPriceCents: 450}},
		{{ItemID: "a", Name: "A", Quantity: 3, UnitPriceCents: 525}, {ItemID: "b", Name: "B", Quantity: 2, UnitPriceCents: 350}},
		{{ItemID: "a", Name: "A", Quantity: 7, UnitPriceCents: 0}},
		{{ItemID: "a", Name: "A", Quantity: 1, UnitPriceCents: 1}, {ItemID: "b", Name: "B", Quantity: 1, UnitPriceCents: 999999}},
	}

	for _, lines := range lineSets {
		q, err := Compute(austinLocation(), Input{PickupMode: ModeASAP, Lines: lines})
		require.NoError(t, err)
		assert.Equal(t, q.SubtotalCents+q.TaxCents, q.TotalCents)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	in := Input{
		PickupMode: ModeASAP,
		Occasion:   "brunch",
		Lines: []Line{
			{ItemID: "croissant-butter", Name: "Cultured Butter Croissant", Quantity: 2, UnitPriceCents: 450},
			{ItemID: "oat-latte", Name: "Oat Milk Latte", Quantity: 1, UnitPriceCents: 550},
		},
	}

	first, err := Compute(austinLocation(), in)
	require.NoError(t, err)
	second, err := Compute(austinLocation(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_ASAPLabel(t *testing.T) {
	q, err := Compute(austinLocation(), Input{
		PickupMode: ModeASAP,
		Lines:      []Line{{ItemID: "a", Name: "A", Quantity: 1, UnitPriceCents: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ASAP · 12-18 min", q.PickupLabel)
}

func TestCompute_ScheduledLabelEchoesTime(t *testing.T) {
	q, err := Compute(austinLocation(), Input{
		PickupMode:          ModeScheduled,
		ScheduledPickupTime: "2026-09-01T09:30:00Z",
		Lines:               []Line{{ItemID: "a", Name: "A", Quantity: 1, UnitPriceCents: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01T09:30:00Z", q.PickupLabel)
	assert.Equal(t, "2026-09-01T09:30:00Z", q.ScheduledPickupTime)
}

func TestCompute_InvalidInput(t *testing.T) {
	valid := Line{ItemID: "a", Name: "A", Quantity: 1, UnitPriceCents: 100}

	tests := []struct {
		name string
		in   Input
	}{
		{
			name: "empty lines",
			in:   Input{PickupMode: ModeASAP},
		},
		{
			name: "zero quantity",
			in:   Input{PickupMode: ModeASAP, Lines: []Line{{ItemID: "a", Name: "A", Quantity: 0, UnitPriceCents: 100}}},
		},
		{
			name: "negative quantity",
			in:   Input{PickupMode: ModeASAP, Lines: []Line{{ItemID: "a", Name: "A", Quantity: -2, UnitPriceCents: 100}}},
		},
		{
			name: "negative price",
			in:   Input{PickupMode: ModeASAP, Lines: []Line{{ItemID: "a", Name: "A", Quantity: 1, UnitPriceCents: -1}}},
		},
		{
			name: "scheduled without time",
			in:   Input{PickupMode: ModeScheduled, Lines: []Line{valid}},
		},
		{
			name: "unknown mode",
			in:   Input{PickupMode: "delivery", Lines: []Line{valid}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compute(austinLocation(), tt.in)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, q, "no partial quote on failure")
		})
	}
}

func TestPickupLabel_ScheduledFallback(t *testing.T) {
	assert.Equal(t, "Scheduled pickup", PickupLabel(ModeScheduled, "", 12))
}
