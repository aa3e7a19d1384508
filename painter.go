package rasterkit

import (
	"image"
	"log/slog"
)

// PainterStats counts what a Painter has done since it was created.
type PainterStats struct {
	// Pixels is the number of pixel writes, including repeated writes.
	Pixels int
	// Rejected is the number of line segments ClipLine rejected entirely.
	Rejected int
}

// Painter draws clipped outlines and fills onto a Canvas.
//
// Lines and circle outlines are limited to the Painter's clip rectangle,
// which never extends past the canvas. Fills are limited by the canvas only,
// because they are bounded by the outlines (BoundaryFill) or the polygon
// (ScanlineFill).
//
// A Painter is not safe for concurrent use.
type Painter struct {
	canvas Canvas
	clip   ClipRect
	logger *slog.Logger
	stats  PainterStats
}

// NewPainter creates a Painter drawing onto c.
func NewPainter(c Canvas, opts ...PainterOption) *Painter {
	var o painterOptions
	for _, opt := range opts {
		opt(&o)
	}

	p := &Painter{
		canvas: c,
		clip:   canvasClip(c),
		logger: o.logger,
	}
	if o.clip != nil {
		p.SetClip(*o.clip)
	}
	if p.logger == nil {
		p.logger = Logger()
	}
	return p
}

// Canvas returns the canvas the Painter draws onto.
func (p *Painter) Canvas() Canvas {
	return p.canvas
}

// Clip returns the active clip rectangle.
func (p *Painter) Clip() ClipRect {
	return p.clip
}

// SetClip replaces the active clip rectangle. The part of r outside the
// canvas is dropped, so every pixel the Painter counts lands on the canvas.
func (p *Painter) SetClip(r ClipRect) {
	p.clip = r.Intersect(canvasClip(p.canvas))
}

// canvasClip is the inclusive pixel rectangle of c.
func canvasClip(c Canvas) ClipRect {
	return ClipRect{XMax: float64(c.Width() - 1), YMax: float64(c.Height() - 1)}
}

// Stats returns the cumulative statistics.
func (p *Painter) Stats() PainterStats {
	return p.stats
}

// Plot writes a single pixel if it lies inside the clip rectangle.
func (p *Painter) Plot(pt Point, col Color) {
	if !p.clip.Contains(pt) {
		return
	}
	p.canvas.Set(pt, col)
	p.stats.Pixels++
}

// DrawLine clips the segment to the clip rectangle and rasterizes what is
// left. A fully rejected segment draws nothing.
func (p *Painter) DrawLine(p0, p1 Point, col Color) {
	c0, c1, ok := ClipLine(p0, p1, p.clip)
	if !ok {
		p.stats.Rejected++
		p.logger.Debug("rasterkit: segment rejected", "p0", p0, "p1", p1)
		return
	}
	for pt := range Line(c0, c1) {
		p.canvas.Set(pt, col)
		p.stats.Pixels++
	}
}

// DrawPolygon draws the closed outline of poly.
func (p *Painter) DrawPolygon(poly Polygon, col Color) {
	for a, b := range poly.Edges() {
		p.DrawLine(a, b, col)
	}
}

// DrawCircle draws a circle outline, skipping pixels outside the clip
// rectangle.
func (p *Painter) DrawCircle(center Point, radius int, col Color) {
	for pt := range Circle(center, radius) {
		p.Plot(pt, col)
	}
}

// BoundaryFill runs BoundaryFill on the Painter's canvas.
func (p *Painter) BoundaryFill(seed Point, fill, border Color) int {
	n := BoundaryFill(p.canvas, seed, fill, border)
	p.stats.Pixels += n
	return n
}

// BoundaryFillRect runs BoundaryFillRect on the Painter's canvas.
func (p *Painter) BoundaryFillRect(seed Point, fill, border Color, r image.Rectangle) int {
	n := BoundaryFillRect(p.canvas, seed, fill, border, r)
	p.stats.Pixels += n
	return n
}

// ScanlineFill runs ScanlineFill on the Painter's canvas.
func (p *Painter) ScanlineFill(poly Polygon, fill Color) int {
	n := ScanlineFill(p.canvas, poly, fill)
	p.stats.Pixels += n
	return n
}

// FillCircle runs FillCircle on the Painter's canvas.
func (p *Painter) FillCircle(center Point, radius int, fill Color) int {
	n := FillCircle(p.canvas, center, radius, fill)
	p.stats.Pixels += n
	return n
}

// FillPolygons runs FillPolygons on the Painter's canvas.
func (p *Painter) FillPolygons(jobs []FillJob, opts ...FillOption) int {
	n := FillPolygons(p.canvas, jobs, opts...)
	p.stats.Pixels += n
	return n
}
