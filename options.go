package rasterkit

import "log/slog"

// PainterOption configures a Painter during creation.
//
// Example:
//
//	p := rasterkit.NewPainter(pm, rasterkit.WithClip(rasterkit.Rect(50, 150, 250, 450)))
type PainterOption func(*painterOptions)

// painterOptions holds optional configuration for Painter creation.
type painterOptions struct {
	clip   *ClipRect
	logger *slog.Logger
}

// WithClip sets the initial clip rectangle of a Painter. Without it the
// Painter clips to the canvas bounds.
func WithClip(r ClipRect) PainterOption {
	return func(o *painterOptions) {
		o.clip = &r
	}
}

// WithLogger sets the logger a Painter reports rejected segments and fill
// statistics to. Without it the package logger is used.
func WithLogger(l *slog.Logger) PainterOption {
	return func(o *painterOptions) {
		o.logger = l
	}
}

// FillOption configures FillPolygons.
type FillOption func(*fillOptions)

// fillOptions holds FillPolygons configuration.
type fillOptions struct {
	workers    int
	bandHeight int
}

// WithWorkers sets the number of worker goroutines. Zero or negative uses
// GOMAXPROCS.
func WithWorkers(n int) FillOption {
	return func(o *fillOptions) {
		o.workers = n
	}
}

// WithBandHeight sets how many scanlines each work item covers. Zero or
// negative uses the default of 32.
func WithBandHeight(h int) FillOption {
	return func(o *fillOptions) {
		o.bandHeight = h
	}
}
