package grade

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that drops every record. Enabled
// reports false, so call sites skip attribute evaluation when logging
// is off and passes pay nothing for their Debug lines.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the silent default logger.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. Loads and stores go through the
// atomic pointer, so SetLogger may race with executions on other
// goroutines without a lock.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for grade and its sub-packages.
// By default, grade produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use. Passing nil restores the
// silent default.
//
// Log levels used by grade:
//   - [slog.LevelDebug]: per-pass diagnostics (batch sizes, pass kinds)
//
// Example:
//
//	// Log to stderr at the default level:
//	grade.SetLogger(slog.Default())
//
//	// Include per-pass diagnostics:
//	grade.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by grade. Executions load it
// once per call, so a logger swapped mid-pass takes effect on the next
// pass.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
