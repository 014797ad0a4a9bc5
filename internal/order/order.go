// Package order owns the order lifecycle: the persistent Order entity, the
// status progression shared by the server's time-derived reads and the
// client's offline simulation, and the service that places and reads orders.
package order

import (
	"time"

	"github.com/jcmexdev/saltyeast-pickup/internal/quote"
)

// Contact is who picks the order up. No accounts, no auth — just enough to
// call a name at the counter.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Line is one order line. Name and unit price are snapshots taken at order
// time: once the line exists they never change, even if the catalog item
// is renamed or repriced later.
type Line struct {
	ItemID         string
	Name           string
	Quantity       int
	UnitPriceCents int
	LineTotalCents int
}

// Order is the persistent entity. It is created exactly once at placement;
// Status is the only field that ever changes afterwards.
type Order struct {
	ID                  string
	Status              Status
	LocationID          string
	PickupMode          quote.PickupMode
	ScheduledPickupTime string
	Occasion            string
	PickupLabel         string
	SubtotalCents       int
	TaxCents            int
	TotalCents          int
	Contact             Contact
	CreatedAt           time.Time
	Lines               []Line
}
