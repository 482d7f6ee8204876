package logging

import (
	"os"

	"go.uber.org/zap"
)

// WailsLogger routes the Wails runtime log calls into zap.
// It satisfies github.com/wailsapp/wails/v2/pkg/logger.Logger.
type WailsLogger struct {
	log *zap.SugaredLogger
}

func NewWailsLogger(l *zap.Logger) *WailsLogger {
	return &WailsLogger{log: l.Named("wails").WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (w *WailsLogger) Print(message string)   { w.log.Info(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error(message) }

// Fatal logs, flushes and exits with status 1.
func (w *WailsLogger) Fatal(message string) {
	w.log.Error(message)
	_ = w.log.Sync()
	os.Exit(1)
}
