package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
	"github.com/jcmexdev/saltyeast-pickup/internal/order"
	"github.com/jcmexdev/saltyeast-pickup/internal/quote"
)

// Handler serves the pickup API: catalog reads, quote previews, and the
// order lifecycle.
type Handler struct {
	catalog catalog.Store
	orders  *order.Service
}

func NewHandler(catalogStore catalog.Store, orders *order.Service) *Handler {
	return &Handler{catalog: catalogStore, orders: orders}
}

// ListLocations returns every store.
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.catalog.Locations(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	out := make([]LocationDTO, len(locs))
	for i, loc := range locs {
		out[i] = LocationDTO{
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
	writeJSON(w, http.StatusOK, LocationsResponse{Locations: out})
}

// GetMenu returns the active menu for the location named by the locationId
// query parameter.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get("locationId")
	if locationID == "" {
		writeError(w, http.StatusBadRequest, "location_id_required", "locationId is required")
		return
	}

	items, err := h.catalog.MenuByLocation(r.Context(), locationID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	out := make([]MenuItemDTO, len(items))
	for i, it := range items {
		out[i] = MenuItemDTO{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    it.ImageURL,
			Category:    it.Category,
			Tags:        it.Tags,
			PriceCents:  it.PriceCents,
		}
	}
	writeJSON(w, http.StatusOK, MenuResponse{LocationID: locationID, Items: out})
}

// CreateQuote prices a cart without creating anything.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if fieldErrs := validateQuoteRequest(req); len(fieldErrs) > 0 {
		writeValidationError(w, "Invalid quote payload", fieldErrs)
		return
	}

	loc, err := h.catalog.LocationByID(r.Context(), req.LocationID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	q, err := quote.Compute(loc, quoteInput(req))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, QuoteResponse{
		LocationID:          q.LocationID,
		PickupMode:          string(q.PickupMode),
		ScheduledPickupTime: nullable(q.ScheduledPickupTime),
		Occasion:            nullable(q.Occasion),
		PickupLabel:         q.PickupLabel,
		SubtotalCents:       q.SubtotalCents,
		TaxCents:            q.TaxCents,
		TotalCents:          q.TotalCents,
		TaxRate:             float64(q.TaxRateBps) / 10000,
	})
}

// CreateOrder validates, prices, and persists a new order.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if fieldErrs := validateCreateOrderRequest(req); len(fieldErrs) > 0 {
		writeValidationError(w, "Invalid order payload", fieldErrs)
		return
	}

	o, err := h.orders.Place(r.Context(), order.PlaceInput{
		LocationID: req.LocationID,
		Quote:      quoteInput(req.QuoteRequest),
		Contact: order.Contact{
			Name:  req.Contact.Name,
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		},
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, orderToResponse(o))
}

// GetOrder returns one order with its status freshly derived from the
// order's age (the service reconciles the stored status as a side effect).
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "order_id_required", "")
		return
	}

	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, orderToResponse(o))
}

// Health is the liveness endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pickup-server"})
}

// writeDomainError maps typed domain failures to wire status codes.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "location_not_found", err.Error())
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, quote.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

func quoteInput(req QuoteRequest) quote.Input {
	lines := make([]quote.Line, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = quote.Line{
			ItemID:         l.ItemID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		}
	}
	return quote.Input{
		PickupMode:          quote.PickupMode(req.PickupMode),
		ScheduledPickupTime: deref(req.ScheduledPickupTime),
		Occasion:            deref(req.Occasion),
		Lines:               lines,
	}
}

// orderToResponse converts the internal order entity to the HTTP response format.
func orderToResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineDTO, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineDTO{
			ItemID:         l.ItemID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			LineTotalCents: l.LineTotalCents,
		}
	}
	return OrderResponse{
		OrderID:             o.ID,
		Status:              string(o.Status),
		LocationID:          o.LocationID,
		PickupMode:          string(o.PickupMode),
		ScheduledPickupTime: nullable(o.ScheduledPickupTime),
		Occasion:            nullable(o.Occasion),
		PickupLabel:         o.PickupLabel,
		SubtotalCents:       o.SubtotalCents,
		TaxCents:            o.TaxCents,
		TotalCents:          o.TotalCents,
		CreatedAt:           o.CreatedAt.UTC().Format(time.RFC3339),
		Lines:               lines,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}

func writeValidationError(w http.ResponseWriter, msg string, fields []FieldError) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "validation_failed",
		Message: msg,
		Fields:  fields,
	})
}
