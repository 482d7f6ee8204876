package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"bistro/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Cart Service: in-memory cart lines keyed by title
// ─────────────────────────────────────────────────────────────

// CartService owns the cart. Lines keep insertion order and there is at most
// one line per title. No operation fails: unknown titles are no-ops.
type CartService struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	emitter EventEmitter
}

func NewCartService(emitter EventEmitter) *CartService {
	return &CartService{emitter: emitter}
}

// AddToCart adds quantity of the item. A quantity below 1 counts as omitted
// and defaults to 1. An existing line for the same title is incremented;
// otherwise a new line starts at quantity.
func (s *CartService) AddToCart(ctx context.Context, item domain.ItemPayload, quantity int) domain.CartSnapshot {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	s.merge(domain.CartLine{
		Title:    item.Title,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: quantity,
	})
	return s.commit(ctx)
}

// RemoveFromCart deletes the line for title, if any.
func (s *CartService) RemoveFromCart(ctx context.Context, title string) domain.CartSnapshot {
	s.mu.Lock()
	if i := s.indexOf(title); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
	return s.commit(ctx)
}

// UpdateQuantity moves the line's quantity by delta, never below 1.
// Lines at or below zero are then dropped, which the clamp currently makes
// unreachable.
func (s *CartService) UpdateQuantity(ctx context.Context, title string, delta int) domain.CartSnapshot {
	s.mu.Lock()
	if i := s.indexOf(title); i >= 0 {
		s.lines[i].Quantity = max(1, addQuantity(s.lines[i].Quantity, delta))
	}
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.Quantity > 0 {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	return s.commit(ctx)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) domain.CartSnapshot {
	s.mu.Lock()
	s.lines = nil
	return s.commit(ctx)
}

// Take empties the cart and returns what it held, in one step. Lines added
// concurrently end up either in the returned snapshot or in the cart.
func (s *CartService) Take(ctx context.Context) domain.CartSnapshot {
	s.mu.Lock()
	taken := s.snapshot()
	if len(s.lines) == 0 {
		s.mu.Unlock()
		return taken
	}
	s.lines = nil
	s.commit(ctx)
	return taken
}

// PutBack merges lines into the cart, as AddToCart would, after a failed
// checkout.
func (s *CartService) PutBack(ctx context.Context, lines []domain.CartLine) domain.CartSnapshot {
	s.mu.Lock()
	for _, l := range lines {
		if l.Quantity > 0 {
			s.merge(l)
		}
	}
	return s.commit(ctx)
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartService) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartLine{}, s.lines...)
}

// Contains reports whether a line exists for title.
func (s *CartService) Contains(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(title) >= 0
}

// Total is the sum of parsed price times quantity over all lines.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.lines)
}

// Count is the sum of quantities; zero means the cart is empty.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return count(s.lines)
}

// Snapshot returns lines, count and total in one read.
func (s *CartService) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// commit must be called with s.mu held; it releases the lock before emitting.
func (s *CartService) commit(ctx context.Context) domain.CartSnapshot {
	snap := s.snapshot()
	s.mu.Unlock()
	s.emitter.Emit(ctx, EventCartChanged, snap)
	return snap
}

func (s *CartService) snapshot() domain.CartSnapshot {
	t := total(s.lines)
	return domain.CartSnapshot{
		Lines:          append([]domain.CartLine{}, s.lines...),
		Count:          count(s.lines),
		Total:          t,
		FormattedTotal: FormatTotal(t),
	}
}

// merge must be called with s.mu held.
func (s *CartService) merge(line domain.CartLine) {
	if i := s.indexOf(line.Title); i >= 0 {
		s.lines[i].Quantity = addQuantity(s.lines[i].Quantity, line.Quantity)
		return
	}
	s.lines = append(s.lines, line)
}

// addQuantity adds delta to q, saturating at the int range.
func addQuantity(q, delta int) int {
	switch {
	case delta > 0 && q > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && q < math.MinInt-delta:
		return math.MinInt
	}
	return q + delta
}

func (s *CartService) indexOf(title string) int {
	for i, l := range s.lines {
		if l.Title == title {
			return i
		}
	}
	return -1
}

// FormatTotal renders a total the way the cart screen shows it.
func FormatTotal(total float64) string {
	return fmt.Sprintf("$%.2f", total)
}

func total(lines []domain.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += ParsePrice(l.Price) * float64(l.Quantity)
	}
	return sum
}

func count(lines []domain.CartLine) int {
	n := 0
	for _, l := range lines {
		n = addQuantity(n, l.Quantity)
	}
	return n
}
