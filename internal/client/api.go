// Package client is the app-side data layer: a small JSON API client, a
// durable optimistic cache of placed orders, and a status watcher that
// keeps the cache reconciled with the server — or simulates progression
// when no server is configured.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jcmexdev/saltyeast-pickup/internal/httpx"
	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/config"
)

// Error taxonomy. Timeout and network failures are transient and worth
// retrying; invalid input and not-found are not.
var (
	// ErrNoRemote means no API base URL is configured. Not a failure: the
	// caller is expected to fall back to offline demo mode.
	ErrNoRemote = errors.New("no remote endpoint configured")

	ErrTimeout  = errors.New("request timed out")
	ErrNetwork  = errors.New("network request failed")
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid request")
)

// Retryable reports whether the error is transient and a retry could
// succeed. Foreground flows surface these with an explicit retry action;
// background polling swallows them silently.
func Retryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrNetwork)
}

// Backend is what the app talks to: the remote API when one is configured,
// the offline Demo otherwise. Chosen once at startup.
type Backend interface {
	Locations(ctx context.Context) ([]httpx.LocationDTO, error)
	Menu(ctx context.Context, locationID string) (httpx.MenuResponse, error)
	Quote(ctx context.Context, req httpx.QuoteRequest) (httpx.QuoteResponse, error)
	CreateOrder(ctx context.Context, req httpx.CreateOrderRequest) (httpx.OrderResponse, error)
	Order(ctx context.Context, id string) (httpx.OrderResponse, error)
}

// API calls the pickup server over HTTP. Wire shapes are the same DTO types
// the server serves, so client and server cannot drift apart.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI returns the remote backend, or ErrNoRemote when cfg.BaseURL is
// empty.
func NewAPI(cfg config.Client) (*API, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNoRemote
	}
	return &API{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (a *API) Locations(ctx context.Context) ([]httpx.LocationDTO, error) {
	var out httpx.LocationsResponse
	if err := a.do(ctx, http.MethodGet, "/locations", nil, &out); err != nil {
		return nil, err
	}
	return out.Locations, nil
}

func (a *API) Menu(ctx context.Context, locationID string) (httpx.MenuResponse, error) {
	var out httpx.MenuResponse
	path := "/menu?locationId=" + url.QueryEscape(locationID)
	if err := a.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return httpx.MenuResponse{}, err
	}
	return out, nil
}

func (a *API) Quote(ctx context.Context, req httpx.QuoteRequest) (httpx.QuoteResponse, error) {
	var out httpx.QuoteResponse
	if err := a.do(ctx, http.MethodPost, "/quote", req, &out); err != nil {
		return httpx.QuoteResponse{}, err
	}
	return out, nil
}

func (a *API) CreateOrder(ctx context.Context, req httpx.CreateOrderRequest) (httpx.OrderResponse, error) {
	var out httpx.OrderResponse
	if err := a.do(ctx, http.MethodPost, "/orders", req, &out); err != nil {
		return httpx.OrderResponse{}, err
	}
	return out, nil
}

func (a *API) Order(ctx context.Context, id string) (httpx.OrderResponse, error) {
	var out httpx.OrderResponse
	if err := a.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return httpx.OrderResponse{}, err
	}
	return out, nil
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return classifyHTTPError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: invalid JSON response", ErrNetwork)
		}
	}
	return nil
}

func classifyTransportError(err error) error {
	// http.Client wraps the deadline error inside a *url.Error; a client-side
	// Timeout() also counts.
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &urlErr) && urlErr.Timeout()) {
		return ErrTimeout
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func classifyHTTPError(resp *http.Response) error {
	var body httpx.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalid, msg)
	default:
		return fmt.Errorf("%w: %s", ErrNetwork, msg)
	}
}
