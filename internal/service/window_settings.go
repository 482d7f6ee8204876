package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"bistro/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Window Size Persistence
// ─────────────────────────────────────────────────────────────
//
// Saves and restores the main Wails window size between sessions, in the
// same settings store as the session keys.

// WindowSize holds the saved window dimensions.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// WindowSettingsService persists window size between sessions.
type WindowSettingsService struct {
	store domain.SettingsStore
	log   *zap.Logger
}

func NewWindowSettingsService(store domain.SettingsStore, log *zap.Logger) *WindowSettingsService {
	return &WindowSettingsService{store: store, log: log.Named("window")}
}

const (
	settingWindowWidth  = "window_width"
	settingWindowHeight = "window_height"
	DefaultWindowWidth  = 430
	DefaultWindowHeight = 900
	MinWindowWidth      = 320
	MinWindowHeight     = 560
)

// LoadWindowSize returns the saved window dimensions, or defaults when
// nothing usable is stored.
func (s *WindowSettingsService) LoadWindowSize(ctx context.Context) WindowSize {
	w := s.loadInt(ctx, settingWindowWidth, DefaultWindowWidth)
	h := s.loadInt(ctx, settingWindowHeight, DefaultWindowHeight)
	if w < MinWindowWidth {
		w = DefaultWindowWidth
	}
	if h < MinWindowHeight {
		h = DefaultWindowHeight
	}
	return WindowSize{Width: w, Height: h}
}

// SaveWindowSize persists the current window dimensions.
func (s *WindowSettingsService) SaveWindowSize(ctx context.Context, width, height int) error {
	return s.store.SetMany(ctx, map[string]string{
		settingWindowWidth:  strconv.Itoa(width),
		settingWindowHeight: strconv.Itoa(height),
	})
}

func (s *WindowSettingsService) loadInt(ctx context.Context, key string, def int) int {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn("load window setting", zap.String("key", key), zap.Error(err))
		return def
	}
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
