// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterkit

import (
	"math"
	"slices"
)

// ScanlineFill fills poly with the even-odd rule, one integer scanline at a
// time.
//
// For each row y from the lowest to the highest vertex, every non-horizontal
// edge (a, b) with min(a.y, b.y) <= y < max(a.y, b.y) contributes the
// intersection x = a.x + (y-a.y)·(b.x-a.x)/(b.y-a.y). The half-open test
// counts a vertex shared by two edges once. Sorted intersections are paired
// (0–1, 2–3, …) and each pair fills the pixels whose centers lie in
// [x_left, x_right], endpoints included.
//
// A scanline with an odd number of intersections is degenerate and skipped.
// Polygons with fewer than three vertices are ignored. Rows and spans are
// clamped to the canvas. ScanlineFill returns the number of pixels written;
// calling it again with the same arguments leaves the canvas unchanged.
func ScanlineFill(c Canvas, poly Polygon, fill Color) int {
	if !poly.Valid() {
		return 0
	}
	ymin, ymax := poly.yRange()
	return scanlineRows(c, poly, fill, max(ymin, 0), min(ymax, c.Height()-1))
}

// yRange returns the smallest and largest vertex y.
func (poly Polygon) yRange() (ymin, ymax int) {
	ymin, ymax = poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		ymin = min(ymin, p.Y)
		ymax = max(ymax, p.Y)
	}
	return ymin, ymax
}

// scanlineRows fills rows y0..y1 (inclusive) of poly. FillPolygons calls it
// with disjoint row bands.
func scanlineRows(c Canvas, poly Polygon, fill Color, y0, y1 int) int {
	var xs []float64
	n, skipped := 0, 0
	for y := y0; y <= y1; y++ {
		xs = intersections(poly, y, xs[:0])
		if len(xs)%2 != 0 {
			skipped++
			Logger().Debug("rasterkit: odd scanline intersections, row skipped",
				"y", y, "count", len(xs))
			continue
		}
		for i := 0; i+1 < len(xs); i += 2 {
			left := int(math.Ceil(xs[i]))
			right := int(math.Floor(xs[i+1]))
			if left > right {
				continue
			}
			n += fillSpan(c, left, right, y, fill)
		}
	}
	if n > 0 || skipped > 0 {
		Logger().Debug("rasterkit: scanline fill",
			"vertices", len(poly), "rows", y1-y0+1, "pixels", n, "skipped", skipped)
	}
	return n
}

// intersections appends the sorted x positions where row y crosses the
// polygon's edges to buf.
func intersections(poly Polygon, y int, buf []float64) []float64 {
	for a, b := range poly.Edges() {
		if a.Y == b.Y {
			continue
		}
		if min(a.Y, b.Y) > y || y >= max(a.Y, b.Y) {
			continue
		}
		x := float64(a.X) + float64(y-a.Y)*float64(b.X-a.X)/float64(b.Y-a.Y)
		buf = append(buf, x)
	}
	slices.Sort(buf)
	return buf
}
