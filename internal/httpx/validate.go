package httpx

import (
	"fmt"
	"net/mail"
	"time"
)

// Boundary validation. Every rule here runs before any quote or order logic
// is touched, and every violation is reported with the field that caused it
// rather than a single opaque message.

var validOccasions = map[string]bool{
	"brunch":   true,
	"coffee":   true,
	"gifts":    true,
	"catering": true,
}

func validateQuoteRequest(req QuoteRequest) []FieldError {
	var errs []FieldError

	if req.LocationID == "" {
		errs = append(errs, FieldError{Field: "location_id", Message: "must not be empty"})
	}

	switch req.PickupMode {
	case "asap":
	case "scheduled":
		if req.ScheduledPickupTime == nil || *req.ScheduledPickupTime == "" {
			errs = append(errs, FieldError{Field: "scheduled_pickup_time", Message: "required when pickup_mode is scheduled"})
		}
	default:
		errs = append(errs, FieldError{Field: "pickup_mode", Message: "must be asap or scheduled"})
	}

	if req.ScheduledPickupTime != nil && *req.ScheduledPickupTime != "" {
		if _, err := time.Parse(time.RFC3339, *req.ScheduledPickupTime); err != nil {
			errs = append(errs, FieldError{Field: "scheduled_pickup_time", Message: "must be a valid RFC3339 date-time"})
		}
	}

	if req.Occasion != nil && *req.Occasion != "" && !validOccasions[*req.Occasion] {
		errs = append(errs, FieldError{Field: "occasion", Message: "must be one of brunch, coffee, gifts, catering"})
	}

	if len(req.Lines) == 0 {
		errs = append(errs, FieldError{Field: "lines", Message: "at least one line is required"})
	}
	for i, line := range req.Lines {
		field := func(name string) string { return fmt.Sprintf("lines[%d].%s", i, name) }
		if line.ItemID == "" {
			errs = append(errs, FieldError{Field: field("item_id"), Message: "must not be empty"})
		}
		if line.Name == "" {
			errs = append(errs, FieldError{Field: field("name"), Message: "must not be empty"})
		}
		if line.Quantity <= 0 {
			errs = append(errs, FieldError{Field: field("quantity"), Message: "must be a positive integer"})
		}
		if line.UnitPriceCents < 0 {
			errs = append(errs, FieldError{Field: field("unit_price_cents"), Message: "must not be negative"})
		}
	}

	return errs
}

func validateCreateOrderRequest(req CreateOrderRequest) []FieldError {
	errs := validateQuoteRequest(req.QuoteRequest)

	if req.Contact.Name == "" {
		errs = append(errs, FieldError{Field: "contact.name", Message: "must not be empty"})
	}
	if _, err := mail.ParseAddress(req.Contact.Email); err != nil {
		errs = append(errs, FieldError{Field: "contact.email", Message: "must be a valid email address"})
	}
	if len(req.Contact.Phone) < 7 {
		errs = append(errs, FieldError{Field: "contact.phone", Message: "must be at least 7 characters"})
	}

	return errs
}
