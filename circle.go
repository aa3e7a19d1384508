// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterkit

import (
	"iter"
	"math"

	"github.com/gogpu/rasterkit/internal/cache"
)

// Circle returns the boundary pixels of a circle as a lazy sequence, using
// the midpoint algorithm.
//
// Only the octant from (0, r) to the diagonal is stepped; every step yields
// its eight mirror images (±x, ±y) and (±y, ±x) offset by center. The
// decision variable starts at 1-r. While x < y, x advances; a negative
// decision keeps y, otherwise y moves inward. Points are yielded after each
// update, so the final step may land on or just past the diagonal.
//
// Mirror images coincide on the axes and on the diagonal, so some pixels are
// yielded more than once. Writing them twice with the same color is
// harmless; use CirclePoints for a duplicate-free slice.
//
// A negative radius is treated as zero, which yields only the center.
func Circle(center Point, radius int) iter.Seq[Point] {
	radius = max(radius, 0)
	return func(yield func(Point) bool) {
		x, y := 0, radius
		d := 1 - radius
		if !yieldOctants(center, x, y, yield) {
			return
		}
		for x < y {
			x++
			if d < 0 {
				d += 2*x + 1
			} else {
				y--
				d += 2*(x-y) + 1
			}
			if !yieldOctants(center, x, y, yield) {
				return
			}
		}
	}
}

// yieldOctants yields the eight symmetric images of (x, y) around c.
func yieldOctants(c Point, x, y int, yield func(Point) bool) bool {
	return yield(Point{c.X + x, c.Y + y}) &&
		yield(Point{c.X - x, c.Y + y}) &&
		yield(Point{c.X + x, c.Y - y}) &&
		yield(Point{c.X - x, c.Y - y}) &&
		yield(Point{c.X + y, c.Y + x}) &&
		yield(Point{c.X - y, c.Y + x}) &&
		yield(Point{c.X + y, c.Y - x}) &&
		yield(Point{c.X - y, c.Y - x})
}

// CirclePoints collects the distinct boundary pixels of a circle in the
// order Circle first yields them.
func CirclePoints(center Point, radius int) []Point {
	seen := make(map[Point]struct{})
	var pts []Point
	for p := range Circle(center, radius) {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}
	return pts
}

// maxCachedRadius is the largest radius whose half-width table is cached.
// Larger discs compute the widths of their visible rows directly.
const maxCachedRadius = 1 << 12

// discSpans holds the half-width table of recently filled radii.
var discSpans = cache.New[int, []int](cache.DefaultCapacity)

// halfWidth returns floor(sqrt(r²-dy²)), the half-width of the disc row dy
// away from the center. It is exact while r² fits a float64 mantissa.
func halfWidth(radius, dy int) int {
	r, d := float64(radius), float64(dy)
	return int(math.Sqrt(r*r - d*d))
}

// halfWidths returns halfWidth(radius, dy) for dy in 0..radius. The slice is
// shared; do not modify.
func halfWidths(radius int) []int {
	return discSpans.GetOrCreate(radius, func() []int {
		hw := make([]int, radius+1)
		for dy := range hw {
			hw[dy] = halfWidth(radius, dy)
		}
		return hw
	})
}

// FillCircle fills a solid disc by writing one horizontal span per row.
// Row dy (from -r to r) spans floor(sqrt(r²-dy²)) pixels on each side of the
// center. Only rows inside the canvas are visited, so the cost is bounded by
// the canvas, not by the radius. A negative radius is treated as zero. It
// returns the number of pixels written.
func FillCircle(c Canvas, center Point, radius int, fill Color) int {
	radius = max(radius, 0)
	dy0 := max(-radius, -center.Y)
	dy1 := min(radius, c.Height()-1-center.Y)

	var hw []int
	if radius <= maxCachedRadius && dy0 <= dy1 {
		hw = halfWidths(radius)
	}

	n := 0
	for dy := dy0; dy <= dy1; dy++ {
		var half int
		if hw != nil {
			half = hw[abs(dy)]
		} else {
			half = halfWidth(radius, dy)
		}
		n += fillSpan(c, center.X-half, center.X+half, center.Y+dy, fill)
	}
	Logger().Debug("rasterkit: fill circle", "center", center, "radius", radius, "pixels", n)
	return n
}
