package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
	"github.com/jcmexdev/saltyeast-pickup/internal/httpx"
	"github.com/jcmexdev/saltyeast-pickup/internal/quote"
)

// Demo is the offline backend used when no API base URL is configured.
// It serves the embedded seed catalog and prices carts through the same
// quote engine the server uses, so offline totals match what the server
// would have charged. Demo orders live in a map owned by this instance —
// one Demo per session, injected where it is needed, no package globals.
type Demo struct {
	mu        sync.Mutex
	orders    map[string]httpx.OrderResponse
	locations map[string]catalog.Location
	now       func() time.Time
}

func NewDemo() *Demo {
	locs := make(map[string]catalog.Location)
	for _, loc := range catalog.SeedLocations() {
		locs[loc.ID] = loc
	}
	return &Demo{
		orders:    make(map[string]httpx.OrderResponse),
		locations: locs,
		now:       time.Now,
	}
}

func (d *Demo) Locations(ctx context.Context) ([]httpx.LocationDTO, error) {
	locs := catalog.SeedLocations()
	out := make([]httpx.LocationDTO, len(locs))
	for i, loc := range locs {
		out[i] = httpx.LocationDTO{
			ID:            loc.ID,
			Name:          loc.Name,
			Address:       loc.Address,
			HoursLabel:    loc.HoursLabel,
			IsOpenNow:     loc.IsOpenNow,
			PickupEtaMins: loc.PickupEtaMins,
			TaxRateBps:    loc.TaxRateBps,
			ImageURL:      loc.ImageURL,
		}
	}
	return out, nil
}

func (d *Demo) Menu(ctx context.Context, locationID string) (httpx.MenuResponse, error) {
	priceByItem := make(map[string]int)
	for _, a := range catalog.SeedAvailability() {
		if a.LocationID == locationID && a.IsActive {
			priceByItem[a.ItemID] = a.PriceCents
		}
	}

	var items []httpx.MenuItemDTO
	for _, it := range catalog.SeedItems() {
		price, ok := priceByItem[it.ID]
		if !ok {
			continue
		}
		items = append(items, httpx.MenuItemDTO{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    it.ImageURL,
			Category:    it.Category,
			Tags:        it.Tags,
			PriceCents:  price,
		})
	}
	return httpx.MenuResponse{LocationID: locationID, Items: items}, nil
}

func (d *Demo) Quote(ctx context.Context, req httpx.QuoteRequest) (httpx.QuoteResponse, error) {
	loc, ok := d.locations[req.LocationID]
	if !ok {
		return httpx.QuoteResponse{}, fmt.Errorf("%w: unknown location %q", ErrNotFound, req.LocationID)
	}

	q, err := quote.Compute(loc, quoteInputFromDTO(req))
	if err != nil {
		return httpx.QuoteResponse{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return httpx.QuoteResponse{
		LocationID:          q.LocationID,
		PickupMode:          string(q.PickupMode),
		ScheduledPickupTime: req.ScheduledPickupTime,
		Occasion:            req.Occasion,
		PickupLabel:         q.PickupLabel,
		SubtotalCents:       q.SubtotalCents,
		TaxCents:            q.TaxCents,
		TotalCents:          q.TotalCents,
		TaxRate:             float64(q.TaxRateBps) / 10000,
	}, nil
}

func (d *Demo) CreateOrder(ctx context.Context, req httpx.CreateOrderRequest) (httpx.OrderResponse, error) {
	q, err := d.Quote(ctx, req.QuoteRequest)
	if err != nil {
		return httpx.OrderResponse{}, err
	}

	lines := make([]httpx.OrderLineDTO, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = httpx.OrderLineDTO{
			ItemID:         l.ItemID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			LineTotalCents: l.UnitPriceCents * l.Quantity,
		}
	}

	o := httpx.OrderResponse{
		OrderID:             "demo_" + uuid.NewString(),
		Status:              "pending",
		LocationID:          q.LocationID,
		PickupMode:          q.PickupMode,
		ScheduledPickupTime: q.ScheduledPickupTime,
		Occasion:            q.Occasion,
		PickupLabel:         q.PickupLabel,
		SubtotalCents:       q.SubtotalCents,
		TaxCents:            q.TaxCents,
		TotalCents:          q.TotalCents,
		CreatedAt:           d.now().UTC().Format(time.RFC3339),
		Lines:               lines,
	}

	d.mu.Lock()
	d.orders[o.OrderID] = o
	d.mu.Unlock()
	return o, nil
}

func (d *Demo) Order(ctx context.Context, id string) (httpx.OrderResponse, error) {
	d.mu.Lock()
	o, ok := d.orders[id]
	d.mu.Unlock()

	if !ok {
		return httpx.OrderResponse{}, fmt.Errorf("%w: unknown order %q", ErrNotFound, id)
	}
	return o, nil
}

func quoteInputFromDTO(req httpx.QuoteRequest) quote.Input {
	lines := make([]quote.Line, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = quote.Line{
			ItemID:         l.ItemID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		}
	}
	in := quote.Input{
		PickupMode: quote.PickupMode(req.PickupMode),
		Lines:      lines,
	}
	if req.ScheduledPickupTime != nil {
		in.ScheduledPickupTime = *req.ScheduledPickupTime
	}
	if req.Occasion != nil {
		in.Occasion = *req.Occasion
	}
	return in
}
