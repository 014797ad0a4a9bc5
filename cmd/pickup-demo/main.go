// pickup-demo drives the client data layer end to end: list locations,
// fetch a menu, quote a cart, place an order, then watch its status until
// the order is ready for pickup.
//
// With PICKUP_API_URL set it exercises a running pickup-server; without it
// the whole flow runs offline against the embedded seed catalog, with the
// status progression simulated locally.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jcmexdev/saltyeast-pickup/internal/client"
	"github.com/jcmexdev/saltyeast-pickup/internal/httpx"
	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/config"
)

func main() {
	cfg := config.LoadClient()
	ctx := context.Background()

	var backend client.Backend
	var remote *client.API

	api, err := client.NewAPI(cfg)
	switch {
	case err == nil:
		fmt.Printf("using remote API at %s\n", cfg.BaseURL)
		backend, remote = api, api
	case errors.Is(err, client.ErrNoRemote):
		fmt.Println("no PICKUP_API_URL configured — running in offline demo mode")
		backend = client.NewDemo()
	default:
		log.Fatalf("client setup failed: %v", err)
	}

	cache, err := client.OpenOrderCache(cfg.CachePath)
	if err != nil {
		log.Fatalf("order cache open failed: %v", err)
	}

	locations, err := backend.Locations(ctx)
	if err != nil {
		fail("list locations", err)
	}
	fmt.Printf("%d locations:\n", len(locations))
	for _, loc := range locations {
		fmt.Printf("  %-10s %s (%s)\n", loc.ID, loc.Name, loc.HoursLabel)
	}

	loc := pickOpenLocation(locations)
	menu, err := backend.Menu(ctx, loc.ID)
	if err != nil {
		fail("fetch menu", err)
	}
	if len(menu.Items) < 2 {
		log.Fatalf("menu for %s has fewer than two items", loc.ID)
	}
	fmt.Printf("\nmenu at %s: %d items\n", loc.Name, len(menu.Items))

	lines := []httpx.QuoteLineDTO{
		{ItemID: menu.Items[0].ID, Name: menu.Items[0].Name, Quantity: 2, UnitPriceCents: menu.Items[0].PriceCents},
		{ItemID: menu.Items[1].ID, Name: menu.Items[1].Name, Quantity: 1, UnitPriceCents: menu.Items[1].PriceCents},
	}

	quoteReq := httpx.QuoteRequest{
		LocationID: loc.ID,
		PickupMode: "asap",
		Lines:      lines,
	}
	q, err := backend.Quote(ctx, quoteReq)
	if err != nil {
		fail("quote cart", err)
	}
	fmt.Printf("\nquote: subtotal %s, tax %s, total %s — %s\n",
		cents(q.SubtotalCents), cents(q.TaxCents), cents(q.TotalCents), q.PickupLabel)

	placed, err := backend.CreateOrder(ctx, httpx.CreateOrderRequest{
		QuoteRequest: quoteReq,
		Contact: httpx.ContactDTO{
			Name:  "Rowan Hale",
			Email: "rowan@example.com",
			Phone: "512-555-0137",
		},
	})
	if err != nil {
		fail("place order", err)
	}
	if err := cache.Save(placed); err != nil {
		log.Printf("warning: could not persist order cache: %v", err)
	}
	fmt.Printf("\norder %s placed — status %s, total %s\n", placed.OrderID, placed.Status, cents(placed.TotalCents))

	watchUntilReady(remote, cache, placed.OrderID)

	fmt.Printf("\norder history (%d):\n", len(cache.History()))
	for _, o := range cache.History() {
		fmt.Printf("  %s  %-10s %s\n", o.OrderID, o.Status, cents(o.TotalCents))
	}
}

// watchUntilReady runs the status watcher until the order reaches ready (or
// a terminal state), printing each transition.
func watchUntilReady(remote *client.API, cache *client.OrderCache, orderID string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	onUpdate := func(o httpx.OrderResponse) {
		fmt.Printf("  status: %s\n", o.Status)
		if o.Status == "ready" || o.Status == "completed" || o.Status == "canceled" {
			cancel()
		}
	}

	fmt.Println("\nwatching order status:")
	var watcher *client.Watcher
	if remote != nil {
		watcher = client.NewWatcher(remote, cache, onUpdate)
	} else {
		watcher = client.NewWatcher(nil, cache, onUpdate)
	}
	watcher.Watch(ctx, orderID)
}

func pickOpenLocation(locations []httpx.LocationDTO) httpx.LocationDTO {
	for _, loc := range locations {
		if loc.IsOpenNow {
			return loc
		}
	}
	return locations[0]
}

func cents(v int) string {
	return fmt.Sprintf("$%d.%02d", v/100, v%100)
}

func fail(what string, err error) {
	if client.Retryable(err) {
		fmt.Fprintf(os.Stderr, "%s failed (transient, retry): %v\n", what, err)
	} else {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
	}
	os.Exit(1)
}
