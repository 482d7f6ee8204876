package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/internal/service"
)

// ─────────────────────────────────────────────────────────────
// Shared fakes
// ─────────────────────────────────────────────────────────────

var errStoreDown = errors.New("store unavailable")

// memSettings is an in-memory domain.SettingsStore with switchable failures.
type memSettings struct {
	mu        sync.Mutex
	data      map[string]string
	failRead  bool
	failWrite bool
}

func newMemSettings() *memSettings {
	return &memSettings{data: map[string]string{}}
}

func (m *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRead {
		return "", false, errStoreDown
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memSettings) SetMany(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite {
		return errStoreDown
	}
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *memSettings) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite {
		return errStoreDown
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memSettings) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// ─────────────────────────────────────────────────────────────
// trackerGuard tests
// ─────────────────────────────────────────────────────────────

func TestTrackerGuard_TryLock(t *testing.T) {
	var g service.ExportedTrackerGuard

	if !g.TryLock("order-1") {
		t.Fatal("expected first TryLock to succeed")
	}
	if g.TryLock("order-1") {
		t.Fatal("expected second TryLock for same order to fail")
	}
	if !g.TryLock("order-2") {
		t.Fatal("expected TryLock for different order to succeed")
	}
	assert.Equal(t, 2, g.Len())

	g.Unlock("order-1")
	g.Unlock("order-2")
	g.Unlock("never-locked")
	assert.Equal(t, 0, g.Len())

	if !g.TryLock("order-1") {
		t.Fatal("expected TryLock to succeed after unlock")
	}
}

// ─────────────────────────────────────────────────────────────
// MockEmitter tests
// ─────────────────────────────────────────────────────────────

func TestMockEmitter_RecordsEvents(t *testing.T) {
	m := &service.MockEmitter{}
	ctx := context.Background()

	m.Emit(ctx, "test:event", map[string]string{"foo": "bar"})
	m.Emit(ctx, "test:event2", nil)
	m.Emit(ctx, "test:event", "again")

	if len(m.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(m.Events))
	}
	if m.Events[0].Event != "test:event" {
		t.Errorf("expected 'test:event', got %q", m.Events[0].Event)
	}
	named := m.Named("test:event")
	assert.Len(t, named, 2)
	assert.Equal(t, "again", named[1].Data)
}

func TestNoopEmitter(t *testing.T) {
	var e service.EventEmitter = service.NoopEmitter{}
	e.Emit(context.Background(), "anything", nil)
}
