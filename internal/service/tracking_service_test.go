package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bistro/internal/domain"
	"bistro/internal/service"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTracking_CheckoutEmptyCart(t *testing.T) {
	cart := service.NewCartService(service.NoopEmitter{})
	tr := service.NewTrackingService(cart, service.NoopEmitter{}, zap.NewNop(), time.Second, 15*time.Second)

	_, err := tr.Checkout(context.Background())
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestTracking_CheckoutSnapshotsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	em := &service.MockEmitter{}
	cart := service.NewCartService(em)
	tr := service.NewTrackingService(cart, em, zap.NewNop(), time.Second, 15*time.Second, service.WithClock(clock.Now))
	defer tr.Stop()

	cart.AddToCart(ctx, boeuf, 2)
	order, err := tr.Checkout(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.InDelta(t, 37.0, order.Total, 1e-9)
	assert.Zero(t, cart.Count())
	assert.Equal(t, 1, tr.Active())

	stored, ok := tr.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.ID, stored.ID)

	updates := em.Named(service.EventTrackingUpdate)
	require.Len(t, updates, 1)
	assert.Equal(t, domain.DeliveryPreparing, updates[0].Data.(domain.TrackingSnapshot).Status)

	clock.Advance(12 * time.Second)
	snap, ok := tr.Snapshot(order.ID)
	require.True(t, ok)
	assert.Equal(t, domain.DeliveryOnTheWay, snap.Status)

	_, ok = tr.Snapshot("unknown")
	assert.False(t, ok)
}

func TestTracking_TrackTwiceFails(t *testing.T) {
	ctx := context.Background()
	tr := service.NewTrackingService(service.NewCartService(service.NoopEmitter{}), service.NoopEmitter{}, zap.NewNop(), time.Second, 15*time.Second)
	defer tr.Stop()

	order := domain.Order{ID: "o-1"}
	require.NoError(t, tr.Track(ctx, order))
	assert.Error(t, tr.Track(ctx, order))
}

func TestTracking_SchedulerDeliversAndStops(t *testing.T) {
	ctx := context.Background()
	em := &service.MockEmitter{}
	cart := service.NewCartService(service.NoopEmitter{})
	tr := service.NewTrackingService(cart, em, zap.NewNop(), time.Second, time.Second)
	tr.Start()
	defer tr.Stop()

	cart.AddToCart(ctx, croque, 1)
	order, err := tr.Checkout(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		for _, e := range em.Named(service.EventTrackingUpdate) {
			if snap := e.Data.(domain.TrackingSnapshot); snap.OrderID == order.ID && snap.Delivered {
				return true
			}
		}
		return false
	}, 5*time.Second, 50*time.Millisecond)

	assert.Eventually(t, func() bool { return tr.Active() == 0 }, time.Second, 20*time.Millisecond)
	snap, ok := tr.Snapshot(order.ID)
	require.True(t, ok)
	assert.Equal(t, domain.DeliveryDelivered, snap.Status)
}

func TestTracking_StopIdempotent(t *testing.T) {
	tr := service.NewTrackingService(service.NewCartService(service.NoopEmitter{}), service.NoopEmitter{}, zap.NewNop(), time.Second, time.Second)
	tr.Stop()
	tr.Start()
	tr.Stop()
	tr.Stop()
}

func TestTracking_FailedCheckoutRestoresCart(t *testing.T) {
	ctx := context.Background()
	cart := service.NewCartService(service.NoopEmitter{})
	tr := service.NewTrackingService(cart, service.NoopEmitter{}, zap.NewNop(), time.Second, 15*time.Second,
		service.WithOrderIDs(func() string { return "taken" }))
	defer tr.Stop()

	require.NoError(t, tr.Track(ctx, domain.Order{ID: "taken"}))

	cart.AddToCart(ctx, boeuf, 2)
	_, err := tr.Checkout(ctx)
	require.Error(t, err)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestTracking_DeliveredOrdersArePruned(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	tr := service.NewTrackingService(service.NewCartService(service.NoopEmitter{}), service.NoopEmitter{}, zap.NewNop(),
		time.Second, 15*time.Second, service.WithClock(clock.Now))
	defer tr.Stop()

	const orders = 40
	ids := make([]string, orders)
	for i := range ids {
		ids[i] = fmt.Sprintf("o-%d", i)
		require.NoError(t, tr.Track(ctx, domain.Order{ID: ids[i]}))
	}
	clock.Advance(time.Minute)
	tr.Start()

	require.Eventually(t, func() bool { return tr.Active() == 0 }, 5*time.Second, 20*time.Millisecond)

	readable := 0
	for _, id := range ids {
		if _, ok := tr.Snapshot(id); ok {
			readable++
		}
	}
	assert.Equal(t, 32, readable)
}
