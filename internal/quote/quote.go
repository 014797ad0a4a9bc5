// Package quote computes pickup quotes: subtotal, tax, total, and the
// human-readable pickup label. Compute is pure and deterministic — the
// standalone quote preview, order placement, and the client's offline demo
// mode all call the same function, so a previewed total can never drift
// from the total an order is charged.
package quote

import (
	"errors"
	"fmt"
	"math"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
)

// ErrInvalidInput marks a quote input that violates its constraints:
// an empty line list, a non-positive quantity, a negative unit price, or
// scheduled mode without a scheduled time.
var ErrInvalidInput = errors.New("invalid quote input")

// PickupMode is how the customer wants to collect the order.
type PickupMode string

const (
	ModeASAP      PickupMode = "asap"
	ModeScheduled PickupMode = "scheduled"
)

// scheduledFallbackLabel is used when a scheduled order carries no time
// string. Compute rejects that combination, but the label function is also
// used on pre-validated display paths, so it stays total.
const scheduledFallbackLabel = "Scheduled pickup"

// Line is one cart line: an immutable snapshot of the item's name and unit
// price at the moment the quote is requested.
type Line struct {
	ItemID         string
	Name           string
	Quantity       int
	UnitPriceCents int
}

// Input is everything a quote depends on besides the location itself.
type Input struct {
	PickupMode          PickupMode
	ScheduledPickupTime string
	Occasion            string
	Lines               []Line
}

// Quote is the computed result. Quotes are ephemeral: never persisted,
// recomputed on demand.
type Quote struct {
	LocationID          string
	PickupMode          PickupMode
	ScheduledPickupTime string
	Occasion            string
	PickupLabel         string
	SubtotalCents       int
	TaxCents            int
	TotalCents          int
	TaxRateBps          int
}

// Compute prices the given lines at the given location.
//
// subtotal = Σ unit_price × quantity, tax = subtotal × rate rounded to the
// nearest cent with halves away from zero (1000 × 0.0825 = 82.5 → 83),
// total = subtotal + tax.
func Compute(loc catalog.Location, in Input) (Quote, error) {
	if len(in.Lines) == 0 {
		return Quote{}, fmt.Errorf("%w: at least one line is required", ErrInvalidInput)
	}
	if in.PickupMode != ModeASAP && in.PickupMode != ModeScheduled {
		return Quote{}, fmt.Errorf("%w: unknown pickup mode %q", ErrInvalidInput, in.PickupMode)
	}
	if in.PickupMode == ModeScheduled && in.ScheduledPickupTime == "" {
		return Quote{}, fmt.Errorf("%w: scheduled pickup requires a scheduled time", ErrInvalidInput)
	}

	subtotalCents := 0
	for i, line := range in.Lines {
		if line.Quantity <= 0 {
			return Quote{}, fmt.Errorf("%w: line %d: quantity must be positive", ErrInvalidInput, i)
		}
		if line.UnitPriceCents < 0 {
			return Quote{}, fmt.Errorf("%w: line %d: unit price must not be negative", ErrInvalidInput, i)
		}
		subtotalCents += line.UnitPriceCents * line.Quantity
	}

	taxCents := int(math.Round(float64(subtotalCents) * loc.TaxRate()))

	return Quote{
		LocationID:          loc.ID,
		PickupMode:          in.PickupMode,
		ScheduledPickupTime: in.ScheduledPickupTime,
		Occasion:            in.Occasion,
		PickupLabel:         PickupLabel(in.PickupMode, in.ScheduledPickupTime, loc.PickupEtaMins),
		SubtotalCents:       subtotalCents,
		TaxCents:            taxCents,
		TotalCents:          subtotalCents + taxCents,
		TaxRateBps:          loc.TaxRateBps,
	}, nil
}

// PickupLabel renders the pickup line shown to the customer. Scheduled
// orders echo the caller-supplied time string verbatim; ASAP orders show a
// window starting at the store's ETA and closing six minutes later.
func PickupLabel(mode PickupMode, scheduledTime string, etaMins int) string {
	if mode == ModeScheduled {
		if scheduledTime == "" {
			return scheduledFallbackLabel
		}
		return scheduledTime
	}
	return fmt.Sprintf("ASAP · %d-%d min", etaMins, etaMins+6)
}
