// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterkit

import "math"

// ClipRect is an axis-aligned clip rectangle with inclusive bounds.
type ClipRect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Rect creates a ClipRect from its bounds, swapping inverted pairs so that
// XMin <= XMax and YMin <= YMax.
func Rect(xmin, xmax, ymin, ymax float64) ClipRect {
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	if ymin > ymax {
		ymin, ymax = ymax, ymin
	}
	return ClipRect{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// Contains reports whether p lies on or inside the rectangle.
func (r ClipRect) Contains(p Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// Width returns XMax - XMin.
func (r ClipRect) Width() float64 {
	return r.XMax - r.XMin
}

// Height returns YMax - YMin.
func (r ClipRect) Height() float64 {
	return r.YMax - r.YMin
}

// Intersect returns the overlap of r and s. Disjoint rectangles yield an
// inverted rectangle, which contains no point and rejects every segment.
func (r ClipRect) Intersect(s ClipRect) ClipRect {
	return ClipRect{
		XMin: math.Max(r.XMin, s.XMin),
		XMax: math.Min(r.XMax, s.XMax),
		YMin: math.Max(r.YMin, s.YMin),
		YMax: math.Min(r.YMax, s.YMax),
	}
}

// Empty reports whether r contains no point.
func (r ClipRect) Empty() bool {
	return r.XMin > r.XMax || r.YMin > r.YMax
}

// Lerp interpolates every bound between r and other.
func (r ClipRect) Lerp(other ClipRect, t float64) ClipRect {
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	return ClipRect{
		XMin: lerp(r.XMin, other.XMin),
		XMax: lerp(r.XMax, other.XMax),
		YMin: lerp(r.YMin, other.YMin),
		YMax: lerp(r.YMax, other.YMax),
	}
}

// ClipLine clips the segment p0-p1 to r using the Liang–Barsky algorithm.
//
// The segment is parameterized as p0 + u·(p1-p0), u in [0, 1]. Each of the
// left, right, bottom and top half-planes narrows the visible interval
// [u1, u2]. The clipped endpoints are rounded to the nearest pixel.
//
// ok is false when no part of the segment lies inside r; the returned points
// are then meaningless and the segment must not be rasterized.
func ClipLine(p0, p1 Point, r ClipRect) (c0, c1 Point, ok bool) {
	x0, y0 := float64(p0.X), float64(p0.Y)
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - r.XMin, r.XMax - x0, y0 - r.YMin, r.YMax - y0}

	u1, u2 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			// Parallel to this boundary: entirely inside or outside its half-plane.
			if q[i] < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			u1 = math.Max(u1, t)
		} else {
			u2 = math.Min(u2, t)
		}
	}

	if u1 > u2 {
		return Point{}, Point{}, false
	}

	c0 = Point{X: int(math.Round(x0 + u1*dx)), Y: int(math.Round(y0 + u1*dy))}
	c1 = Point{X: int(math.Round(x0 + u2*dx)), Y: int(math.Round(y0 + u2*dy))}
	return c0, c1, true
}
