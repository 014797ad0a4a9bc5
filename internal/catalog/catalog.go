// Package catalog holds the read-only reference data of the bakery: the
// physical locations and the menu items each of them sells. Everything in
// here is owned by the catalog store; the ordering core only ever reads it.
package catalog

// Location is one physical bakery store.
//
// TaxRateBps is the sales tax rate in integer basis points (rate × 10000),
// e.g. 825 bps = 8.25%. Rates are kept as integers everywhere they are
// stored or put on the wire so no float drift can creep in.
type Location struct {
	ID            string
	Name          string
	Address       string
	HoursLabel    string
	IsOpenNow     bool
	PickupEtaMins int
	TaxRateBps    int
	ImageURL      string
}

// TaxRate converts the stored basis points back to a fractional rate
// (825 → 0.0825) for quote arithmetic.
func (l Location) TaxRate() float64 {
	return float64(l.TaxRateBps) / 10000
}

// Item is a menu item as the bakery defines it, independent of location.
type Item struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Category    string
	Tags        []string
}

// Availability links an item to a location with location-specific pricing.
// An inactive row hides the item from that location's menu; this boolean is
// the only piece of inventory handling in the system.
type Availability struct {
	LocationID string
	ItemID     string
	PriceCents int
	IsActive   bool
}

// MenuItem is the per-location view of an item: the item joined with its
// availability row for one store. This is what GET /menu serves.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Category    string
	Tags        []string
	PriceCents  int
}
