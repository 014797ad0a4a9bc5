package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/jcmexdev/saltyeast-pickup/internal/httpx"
	"github.com/jcmexdev/saltyeast-pickup/internal/order"
)

const (
	defaultPollInterval = 8 * time.Second
	defaultStepInterval = 4500 * time.Millisecond
)

// orderFetcher is the one read the watcher needs from the remote backend.
type orderFetcher interface {
	Order(ctx context.Context, id string) (httpx.OrderResponse, error)
}

// Watcher keeps one order's cached status current while its detail view is
// open. Exactly one of two modes runs, chosen once at Watch time:
//
//   - remote configured: poll the server every pollInterval and overwrite
//     the cached order wholesale with each successful response; transient
//     errors are swallowed and retried on the next tick.
//   - no remote: advance the cached status one progression step every
//     stepInterval, never past ready and never touching terminal orders.
//
// Watch returns when ctx is cancelled (view closed) — all timers stop with
// it, so nothing keeps mutating the cache after cancellation.
type Watcher struct {
	fetch    orderFetcher // nil selects simulation mode
	cache    *OrderCache
	onUpdate func(httpx.OrderResponse)

	pollInterval time.Duration
	stepInterval time.Duration
}

// NewWatcher builds a watcher. fetch may be nil, which selects offline
// simulation. onUpdate, when non-nil, is invoked after every cache update.
func NewWatcher(fetch orderFetcher, cache *OrderCache, onUpdate func(httpx.OrderResponse)) *Watcher {
	return &Watcher{
		fetch:        fetch,
		cache:        cache,
		onUpdate:     onUpdate,
		pollInterval: defaultPollInterval,
		stepInterval: defaultStepInterval,
	}
}

// Watch blocks until ctx is cancelled or, in simulation mode, until the
// order can advance no further.
func (w *Watcher) Watch(ctx context.Context, orderID string) {
	if w.fetch != nil {
		w.poll(ctx, orderID)
		return
	}
	w.simulate(ctx, orderID)
}

func (w *Watcher) poll(ctx context.Context, orderID string) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			latest, err := w.fetch.Order(ctx, orderID)
			if err != nil {
				// Keep the cached value; retry silently on the next tick.
				slog.DebugContext(ctx, "order poll failed", "order_id", orderID, "error", err)
				continue
			}
			if err := w.cache.Save(latest); err != nil {
				slog.WarnContext(ctx, "order cache save failed", "order_id", orderID, "error", err)
			}
			w.notify(latest)
		}
	}
}

func (w *Watcher) simulate(ctx context.Context, orderID string) {
	ticker := time.NewTicker(w.stepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o, ok := w.cache.Get(orderID)
			if !ok {
				return
			}

			current := order.Status(o.Status)
			next := order.Next(current)
			if next == current {
				// Terminal or already ready: nothing left to simulate.
				return
			}

			if err := w.cache.UpdateStatus(orderID, string(next)); err != nil {
				slog.WarnContext(ctx, "order cache update failed", "order_id", orderID, "error", err)
			}
			o.Status = string(next)
			w.notify(o)
		}
	}
}

func (w *Watcher) notify(o httpx.OrderResponse) {
	if w.onUpdate != nil {
		w.onUpdate(o)
	}
}
