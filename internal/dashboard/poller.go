package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"tableside/internal/client"
	"tableside/internal/models"
)

// DefaultInterval is the order list refresh period.
const DefaultInterval = 10 * time.Second

// ErrUpdateInFlight is returned when an advance is requested for an
// order whose own status update is still pending.
var ErrUpdateInFlight = errors.New("status update already in flight for this order")

// Poller periodically refreshes the order list and advances orders
// through the status workflow on request.
type Poller struct {
	client   *client.OrderClient
	interval time.Duration

	// OnOrders receives every refreshed order list.
	OnOrders func([]models.Order)
	// OnError receives fetch and update failures. The previous order
	// list is left as-is; a failed poll never clears the dashboard.
	OnError func(error)

	mu       sync.Mutex
	updating string // id of the single order with an update in flight
}

// NewPoller creates a poller over the given API client. A non-positive
// interval falls back to DefaultInterval.
func NewPoller(c *client.OrderClient, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		client:   c,
		interval: interval,
	}
}

// Run fetches the order list immediately, then on every tick until the
// context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

// Refresh fetches the order list once and reports it to OnOrders.
func (p *Poller) Refresh(ctx context.Context) {
	p.refresh(ctx)
}

func (p *Poller) refresh(ctx context.Context) {
	orders, err := p.client.ListOrders(ctx)
	if err != nil {
		if p.OnError != nil {
			p.OnError(err)
		}
		return
	}
	if p.OnOrders != nil {
		p.OnOrders(orders)
	}
}

// Advance moves an order to its single allowed next status. A completed
// order has no next status and the call is a no-op. A second advance
// for the same order while its own request is in flight is suppressed;
// updates to different orders are not serialized.
func (p *Poller) Advance(ctx context.Context, order models.Order) error {
	next, ok := order.Status.Next()
	if !ok {
		return nil
	}

	p.mu.Lock()
	if p.updating == order.ID {
		p.mu.Unlock()
		return ErrUpdateInFlight
	}
	p.updating = order.ID
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		if p.updating == order.ID {
			p.updating = ""
		}
		p.mu.Unlock()
	}()

	if _, err := p.client.UpdateOrderStatus(ctx, order.ID, next); err != nil {
		if p.OnError != nil {
			p.OnError(err)
		}
		return err
	}

	// Refresh immediately so the dashboard shows the new status without
	// waiting for the next tick.
	p.refresh(ctx)
	return nil
}

// Updating reports the id of the order with a status update in flight,
// or the empty string.
func (p *Poller) Updating() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.updating
}
