// Package rasterkit provides integer 2D rasterization primitives for Go.
//
// # Overview
//
// rasterkit draws directly into a pixel buffer instead of delegating to a
// graphics API. It implements the classic algorithms:
//
//   - Liang–Barsky line clipping against an axis-aligned rectangle ([ClipLine])
//   - Bresenham line rasterization ([Line], [LineStepper])
//   - midpoint circle rasterization with 8-way symmetry ([Circle])
//   - 4-connected boundary fill with an explicit frontier ([BoundaryFill])
//   - even-odd scanline polygon fill ([ScanlineFill], [FillPolygons])
//
// # Quick Start
//
//	pm := rasterkit.NewPixmap(800, 600)
//	pm.Clear(rasterkit.RGB(0, 0, 0))
//
//	border := rasterkit.RGB(1, 0, 1)
//	for p := range rasterkit.Circle(rasterkit.Pt(100, 300), 50) {
//	    pm.Set(p, border)
//	}
//	rasterkit.BoundaryFill(pm, rasterkit.Pt(100, 300), rasterkit.RGB(0.2, 0.4, 1), border)
//
//	_ = pm.SavePNG("planet.png")
//
// # Coordinate System
//
// Canvas coordinates are integer pixel positions with the origin at the
// top-left pixel; X increases right and Y increases down. Callers that work in
// a bottom-left origin flip Y before drawing.
//
// # Colors
//
// [Color] equality is approximate: two colors are equal when every component
// differs by less than [ColorEpsilon]. A [Pixmap] stores 8 bits per channel, so
// a color read back from it is the quantized value of the color written.
package rasterkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
