package app

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"bistro/internal/config"
	mcpserver "bistro/internal/mcp"
	"bistro/internal/secret"
	"bistro/internal/service"
	"bistro/internal/storage"
)

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with no GUI.
// The session is shared with a running GUI through the database file. Cart,
// favorites and orders live in this process only.
func ServeMCP(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	db, err := storage.New(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	svc := NewServices(cfg, log, db, secret.Platform(runtime.GOOS), service.NoopEmitter{})
	session := svc.Session.Restore(ctx)
	log.Info("session restored", zap.String("status", string(session.Status)))

	svc.Tracking.Start()
	defer svc.Tracking.Stop()

	srv := mcpserver.New(mcpserver.Deps{
		Log:       log,
		Catalog:   svc.Catalog,
		Cart:      svc.Cart,
		Favorites: svc.Favorites,
		Session:   svc.Session,
		Tracking:  svc.Tracking,
	})
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
