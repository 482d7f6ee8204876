package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"bistro/internal/domain"
)

// sessionDebounce coalesces the burst of writes SQLite makes per commit.
const sessionDebounce = 200 * time.Millisecond

// sessionRestorer is the part of SessionService the watcher needs.
type sessionRestorer interface {
	Restore(ctx context.Context) domain.SessionState
}

// sessionWatcher re-reads the session when the database file changes on
// disk, so a login or logout made by the standalone MCP process shows up in
// the GUI. Restore emits session:changed only when the state differs.
type sessionWatcher struct {
	ctx     context.Context
	dbFile  string
	session sessionRestorer
	log     *zap.Logger
	fsw     *fsnotify.Watcher

	mu     sync.Mutex
	timer  *time.Timer
	stopCh chan struct{}
	done   chan struct{}
}

func newSessionWatcher(ctx context.Context, dbPath string, session sessionRestorer, log *zap.Logger) (*sessionWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: the -wal and -shm files come and go.
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(dbPath), err)
	}
	return &sessionWatcher{
		ctx:     ctx,
		dbFile:  filepath.Base(dbPath),
		session: session,
		log:     log.Named("session-watcher"),
		fsw:     fsw,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// Start begins the event loop. Should be called once.
func (w *sessionWatcher) Start() {
	go w.loop()
}

// Stop terminates the loop and releases the watcher.
func (w *sessionWatcher) Stop() {
	w.mu.Lock()
	select {
	case <-w.stopCh:
		w.mu.Unlock()
		return
	default:
		close(w.stopCh)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.fsw.Close()
	<-w.done
}

func (w *sessionWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-w.stopCh:
			return
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *sessionWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	return strings.HasPrefix(filepath.Base(ev.Name), w.dbFile)
}

func (w *sessionWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.stopCh:
		return
	default:
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(sessionDebounce, func() {
		state := w.session.Restore(w.ctx)
		w.log.Debug("session re-read", zap.String("status", string(state.Status)))
	})
}
