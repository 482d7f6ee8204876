package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"bistro/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Tracking Service: checkout and simulated delivery
// ─────────────────────────────────────────────────────────────

// TrackingService turns the cart into an order and pushes simulated
// delivery updates on a cron schedule until the order is delivered.
type TrackingService struct {
	cart     *CartService
	emitter  EventEmitter
	log      *zap.Logger
	interval time.Duration
	duration time.Duration
	now      func() time.Time
	newID    func() string

	mu       sync.Mutex
	orders   map[string]*trackedOrder
	finished []string // delivered order IDs, oldest first
	guard    trackerGuard
	sched    *cron.Cron
}

// maxFinishedOrders is how many delivered orders stay readable through
// Snapshot and Order.
const maxFinishedOrders = 32

type trackedOrder struct {
	order     domain.Order
	entryID   cron.EntryID
	delivered bool
}

// TrackingOption customises a TrackingService.
type TrackingOption func(*TrackingService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) TrackingOption {
	return func(s *TrackingService) { s.now = now }
}

// WithOrderIDs replaces the uuid order ID generator.
func WithOrderIDs(newID func() string) TrackingOption {
	return func(s *TrackingService) { s.newID = newID }
}

func NewTrackingService(
	cart *CartService,
	emitter EventEmitter,
	log *zap.Logger,
	interval, duration time.Duration,
	opts ...TrackingOption,
) *TrackingService {
	s := &TrackingService{
		cart:     cart,
		emitter:  emitter,
		log:      log.Named("tracking"),
		interval: interval,
		duration: duration,
		now:      time.Now,
		newID:    uuid.NewString,
		orders:   make(map[string]*trackedOrder),
		sched:    cron.New(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start begins firing scheduled updates.
func (s *TrackingService) Start() {
	s.sched.Start()
}

// Stop halts the scheduler and waits for a running update to finish.
// Calling it twice is safe.
func (s *TrackingService) Stop() {
	<-s.sched.Stop().Done()
}

// Checkout places an order from the current cart, empties the cart and
// starts tracking the order.
func (s *TrackingService) Checkout(ctx context.Context) (*domain.Order, error) {
	snap := s.cart.Take(ctx)
	if snap.Count == 0 {
		return nil, ErrEmptyCart
	}

	order := domain.Order{
		ID:       s.newID(),
		Lines:    snap.Lines,
		Total:    snap.Total,
		PlacedAt: s.now(),
	}
	if err := s.Track(ctx, order); err != nil {
		s.cart.PutBack(ctx, snap.Lines)
		return nil, err
	}
	return &order, nil
}

// Track starts emitting updates for order. It fails if the order is
// already being tracked.
func (s *TrackingService) Track(ctx context.Context, order domain.Order) error {
	if !s.guard.TryLock(order.ID) {
		return fmt.Errorf("order %s is already being tracked", order.ID)
	}

	if order.PlacedAt.IsZero() {
		order.PlacedAt = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &trackedOrder{order: order}
	schedule := fmt.Sprintf("@every %s", s.interval)
	id, err := s.sched.AddFunc(schedule, func() { s.tick(ctx, order.ID) })
	if err != nil {
		s.guard.Unlock(order.ID)
		return fmt.Errorf("schedule tracking: %w", err)
	}
	t.entryID = id
	s.orders[order.ID] = t

	s.log.Info("tracking started", zap.String("order", order.ID), zap.Int("lines", len(order.Lines)))
	s.emitter.Emit(ctx, EventTrackingUpdate, s.snapshotLocked(t))
	return nil
}

// Snapshot returns the delivery state for orderID right now.
func (s *TrackingService) Snapshot(orderID string) (domain.TrackingSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.orders[orderID]
	if !ok {
		return domain.TrackingSnapshot{}, false
	}
	return s.snapshotLocked(t), true
}

// Order returns a tracked order by id.
func (s *TrackingService) Order(orderID string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.orders[orderID]
	if !ok {
		return domain.Order{}, false
	}
	return t.order, true
}

// Active reports how many orders are still on their way.
func (s *TrackingService) Active() int {
	return s.guard.Len()
}

func (s *TrackingService) tick(ctx context.Context, orderID string) {
	s.mu.Lock()
	t, ok := s.orders[orderID]
	if !ok || t.delivered {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked(t)
	if snap.Delivered {
		t.delivered = true
		s.sched.Remove(t.entryID)
		s.guard.Unlock(orderID)
		s.retireLocked(orderID)
	}
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventTrackingUpdate, snap)
	if snap.Delivered {
		s.log.Info("order delivered", zap.String("order", orderID))
	}
}

// retireLocked keeps the most recent delivered orders and forgets older ones.
func (s *TrackingService) retireLocked(orderID string) {
	s.finished = append(s.finished, orderID)
	for len(s.finished) > maxFinishedOrders {
		delete(s.orders, s.finished[0])
		s.finished = s.finished[1:]
	}
}

func (s *TrackingService) snapshotLocked(t *trackedOrder) domain.TrackingSnapshot {
	return SimulateDelivery(t.order.ID, s.now().Sub(t.order.PlacedAt), s.duration)
}
