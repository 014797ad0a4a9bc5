package httpx

// Wire DTOs. Fields are snake_case on the wire and mapped to the internal
// domain types by the handlers; domain packages never see these shapes.

type LocationDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	HoursLabel    string `json:"hours_label"`
	IsOpenNow     bool   `json:"is_open_now"`
	PickupEtaMins int    `json:"pickup_eta_mins"`

	// Tax rate in integer basis points (rate × 10000) so the wire never
	// carries a float that could drift.
	TaxRateBps int `json:"tax_rate_bps"`

	ImageURL string `json:"image_url"`
}

type LocationsResponse struct {
	Locations []LocationDTO `json:"locations"`
}

type MenuItemDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	PriceCents  int      `json:"price_cents"`
}

type MenuResponse struct {
	LocationID string        `json:"location_id"`
	Items      []MenuItemDTO `json:"items"`
}

type QuoteLineDTO struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int    `json:"unit_price_cents"`
}

type QuoteRequest struct {
	LocationID          string         `json:"location_id"`
	PickupMode          string         `json:"pickup_mode"`
	ScheduledPickupTime *string        `json:"scheduled_pickup_time"`
	Occasion            *string        `json:"occasion"`
	Lines               []QuoteLineDTO `json:"lines"`
}

type QuoteResponse struct {
	LocationID          string  `json:"location_id"`
	PickupMode          string  `json:"pickup_mode"`
	ScheduledPickupTime *string `json:"scheduled_pickup_time"`
	Occasion            *string `json:"occasion"`
	PickupLabel         string  `json:"pickup_label"`
	SubtotalCents       int     `json:"subtotal_cents"`
	TaxCents            int     `json:"tax_cents"`
	TotalCents          int     `json:"total_cents"`
	TaxRate             float64 `json:"tax_rate"`
}

type ContactDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateOrderRequest struct {
	QuoteRequest
	Contact ContactDTO `json:"contact"`
}

type OrderLineDTO struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int    `json:"unit_price_cents"`
	LineTotalCents int    `json:"line_total_cents"`
}

type OrderResponse struct {
	OrderID             string         `json:"order_id"`
	Status              string         `json:"status"`
	LocationID          string         `json:"location_id"`
	PickupMode          string         `json:"pickup_mode"`
	ScheduledPickupTime *string        `json:"scheduled_pickup_time"`
	Occasion            *string        `json:"occasion"`
	PickupLabel         string         `json:"pickup_label"`
	SubtotalCents       int            `json:"subtotal_cents"`
	TaxCents            int            `json:"tax_cents"`
	TotalCents          int            `json:"total_cents"`
	CreatedAt           string         `json:"created_at"`
	Lines               []OrderLineDTO `json:"lines"`
}

// FieldError is one entry in the structured validation error list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// nullable maps the internal empty-string convention for optional fields to
// an explicit JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// deref maps an optional wire field back to the internal convention.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
