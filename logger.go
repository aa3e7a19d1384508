package rasterkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so Debug calls in
// the fill loops return before building their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// loggerPtr holds the package logger. FillPolygons workers read it while
// another goroutine may be replacing it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silent)
}

// SetLogger installs the logger that fills and clipping report to.
// rasterkit is silent until SetLogger is called; SetLogger(nil) makes it
// silent again. It may be called while other goroutines are drawing.
//
// Every record is emitted at [slog.LevelDebug] and prefixed "rasterkit:":
//   - boundary fill: seed, pixels written and pixels visited
//   - scanline fill: vertices, rows, pixels and skipped odd-parity rows
//   - fill circle and parallel fill: pixel and band counts
//
// A Painter logs rejected segments to its own logger (see [WithLogger]),
// which defaults to the logger installed here at construction.
//
//	rasterkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
