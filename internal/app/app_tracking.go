package app

import (
	"fmt"

	"bistro/internal/domain"
)

// ============================================================
// Checkout & Tracking
// ============================================================

// Checkout places the cart as an order and starts the delivery simulation.
// Updates arrive as tracking:update events.
func (a *App) Checkout() (*domain.Order, error) {
	return a.svc.Tracking.Checkout(a.ctx)
}

func (a *App) GetTracking(orderID string) (*domain.TrackingSnapshot, error) {
	snap, ok := a.svc.Tracking.Snapshot(orderID)
	if !ok {
		return nil, fmt.Errorf("order %s not found", orderID)
	}
	return &snap, nil
}
