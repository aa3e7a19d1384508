package rasterkit

import (
	"iter"
	"slices"
)

var (
	testBlack   = RGB(0, 0, 0)
	testWhite   = RGB(1, 1, 1)
	testMagenta = RGB(1, 0, 1)
	testBlue    = RGB(0.2, 0.4, 1)
	testRed     = RGB(1, 0, 0)
)

// collect drains seq into a slice.
func collect(seq iter.Seq[Point]) []Point {
	var pts []Point
	for p := range seq {
		pts = append(pts, p)
	}
	return pts
}

// pointSet returns the distinct points of pts.
func pointSet(pts []Point) map[Point]struct{} {
	set := make(map[Point]struct{}, len(pts))
	for _, p := range pts {
		set[p] = struct{}{}
	}
	return set
}

// sortedUnique returns the distinct points of pts in x-then-y order.
func sortedUnique(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for p := range pointSet(pts) {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
	return out
}

// countColor counts the pixels of c approximately equal to col.
func countColor(c Canvas, col Color) int {
	n := 0
	for y := range c.Height() {
		for x := range c.Width() {
			if c.Get(Pt(x, y)).Equal(col) {
				n++
			}
		}
	}
	return n
}

// newTestPixmap returns a pixmap cleared to black.
func newTestPixmap(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Clear(testBlack)
	return pm
}
