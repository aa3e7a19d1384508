package rasterkit

// Canvas is a fixed-size grid of colors addressed by integer pixel positions.
//
// Valid positions satisfy 0 <= X < Width() and 0 <= Y < Height(). Set
// overwrites a pixel without blending and ignores out-of-range positions.
// Get returns the last color written at a position (subject to the
// implementation's quantization) and the zero Color when out of range.
//
// All rasterization functions in this package write through a Canvas, and
// BoundaryFill also reads from it. A Canvas is not safe for concurrent
// writers unless the writers touch disjoint pixels.
type Canvas interface {
	Width() int
	Height() int
	Set(p Point, c Color)
	Get(p Point) Color
}

// SpanFiller is an optional interface a Canvas can implement for optimized
// horizontal span writes. FillSpan sets every pixel from x0 to x1 inclusive
// on row y; the range is already clamped to the canvas by the caller.
type SpanFiller interface {
	FillSpan(x0, x1, y int, c Color)
}

// fillSpan writes the inclusive span [x0, x1] on row y, clamped to c.
// It returns the number of pixels written.
func fillSpan(c Canvas, x0, x1, y int, col Color) int {
	if y < 0 || y >= c.Height() {
		return 0
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > c.Width()-1 {
		x1 = c.Width() - 1
	}
	if x0 > x1 {
		return 0
	}

	if sf, ok := c.(SpanFiller); ok {
		sf.FillSpan(x0, x1, y, col)
		return x1 - x0 + 1
	}

	for x := x0; x <= x1; x++ {
		c.Set(Point{X: x, Y: y}, col)
	}
	return x1 - x0 + 1
}
