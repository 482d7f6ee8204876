package app

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"bistro/internal/domain"
	"bistro/internal/storage"
)

type countingRestorer struct {
	calls atomic.Int32
}

func (c *countingRestorer) Restore(context.Context) domain.SessionState {
	c.calls.Add(1)
	return domain.SessionState{Status: domain.SessionSignedOut}
}

func fsnotifyWrite(name string) fsnotify.Event {
	return fsnotify.Event{Name: name, Op: fsnotify.Write}
}

func TestSessionWatcher_RestoresAfterExternalWrite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bistro.db")
	db, err := storage.New(dbPath)
	require.NoError(t, err)
	defer db.Close()

	restorer := &countingRestorer{}
	w, err := newSessionWatcher(context.Background(), dbPath, restorer, zaptest.NewLogger(t))
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	settings := storage.NewSettingsStore(db)
	for i := 0; i < 5; i++ {
		require.NoError(t, settings.SetMany(context.Background(), map[string]string{"userEmail": "a@b.c"}))
	}

	assert.Eventually(t, func() bool { return restorer.calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
}

func TestSessionWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := &sessionWatcher{dbFile: "bistro.db"}

	assert.True(t, w.relevant(fsnotifyWrite(filepath.Join(dir, "bistro.db-wal"))))
	assert.False(t, w.relevant(fsnotifyWrite(filepath.Join(dir, "notes.txt"))))
}

func TestSessionWatcher_StopIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bistro.db")
	w, err := newSessionWatcher(context.Background(), dbPath, &countingRestorer{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	w.Start()
	w.Stop()
	assert.NotPanics(t, w.Stop)
}
