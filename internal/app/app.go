package app

import (
	"context"
	"runtime"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"bistro/internal/config"
	"bistro/internal/secret"
	"bistro/internal/storage"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context
	cfg *config.Config
	log *zap.Logger

	db      *storage.DB
	svc     *Services
	watcher *sessionWatcher
}

// wailsEmitter pushes service events to the frontend.
type wailsEmitter struct{}

func (wailsEmitter) Emit(ctx context.Context, event string, data any) {
	wailsRuntime.EventsEmit(ctx, event, data)
}

// New creates a new App. Storage and services are opened in Startup.
func New(cfg *config.Config, log *zap.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	db, err := storage.New(a.cfg.DBPath())
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open database: %v", err)
		return
	}
	a.db = db
	a.svc = NewServices(a.cfg, a.log, db, secret.Platform(runtime.GOOS), wailsEmitter{})

	session := a.svc.Session.Restore(ctx)
	a.log.Info("session restored", zap.String("status", string(session.Status)))

	size := a.svc.Window.LoadWindowSize(ctx)
	wailsRuntime.WindowSetSize(ctx, size.Width, size.Height)

	a.svc.Tracking.Start()

	// Pick up logins and logouts made by the standalone MCP process
	watcher, err := newSessionWatcher(ctx, db.Path(), a.svc.Session, a.log)
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to watch session store: %v", err)
	} else {
		a.watcher = watcher
		a.watcher.Start()
	}
}

// BeforeClose saves the window size. Returning false lets the window close.
func (a *App) BeforeClose(ctx context.Context) bool {
	if a.svc == nil {
		return false
	}
	w, h := wailsRuntime.WindowGetSize(ctx)
	if err := a.svc.Window.SaveWindowSize(ctx, w, h); err != nil {
		a.log.Warn("save window size", zap.Error(err))
	}
	return false
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.svc != nil {
		a.svc.Tracking.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
	_ = a.log.Sync()
}
