package service

import "sync"

// ExportedTrackerGuard is an exported alias so _test packages can test the guard.
type ExportedTrackerGuard = trackerGuard

// trackerGuard ensures only one tracker runs per order ID.
type trackerGuard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

// TryLock marks orderID as tracked. Returns false if it already is.
func (g *trackerGuard) TryLock(orderID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running == nil {
		g.running = make(map[string]struct{})
	}
	if _, ok := g.running[orderID]; ok {
		return false
	}
	g.running[orderID] = struct{}{}
	return true
}

// Unlock releases orderID. Unlocking an unknown ID is a no-op.
func (g *trackerGuard) Unlock(orderID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.running, orderID)
}

// Len returns how many orders are being tracked.
func (g *trackerGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.running)
}
