// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterkit

import "image"

// BoundaryFill colors the 4-connected region around seed that is bounded by
// pixels of the border color.
//
// A pixel is filled when it is neither the border color nor already the fill
// color (both compared with Color.Equal). Filled pixels push their four
// neighbours that lie inside the canvas onto an explicit LIFO frontier, so
// auxiliary memory grows with the filled area rather than with call depth.
// A visited set marks every pixel the first time it is examined; no pixel is
// examined or written twice, so the fill terminates after at most one pass
// over the canvas even when the fill color does not survive the Canvas
// round-trip (an out-of-range color, or a canvas coarser than ColorEpsilon).
//
// The outline must be fully written to c before BoundaryFill is called. A
// gap in the border lets the fill escape and recolor pixels outside the
// intended region.
//
// A seed outside the canvas, or one that is already the border or fill color,
// is a no-op. BoundaryFill returns the number of pixels written.
func BoundaryFill(c Canvas, seed Point, fill, border Color) int {
	return BoundaryFillRect(c, seed, fill, border, image.Rect(0, 0, c.Width(), c.Height()))
}

// BoundaryFillRect is BoundaryFill with the frontier limited to the
// half-open rectangle r (intersected with the canvas). Pixels outside r are
// neither read nor written, so a fill that escapes a broken outline stays
// inside r.
func BoundaryFillRect(c Canvas, seed Point, fill, border Color, r image.Rectangle) int {
	r = r.Intersect(image.Rect(0, 0, c.Width(), c.Height()))
	if !seed.In(r) {
		return 0
	}

	w := r.Dx()
	seen := newBitset(w * r.Dy())
	index := func(p Point) int { return (p.Y-r.Min.Y)*w + (p.X - r.Min.X) }

	frontier := make([]Point, 0, 64)
	frontier = append(frontier, seed)

	filled, visited := 0, 0
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		i := index(p)
		if seen.has(i) {
			continue
		}
		seen.set(i)
		visited++

		cur := c.Get(p)
		if cur.Equal(border) || cur.Equal(fill) {
			continue
		}
		c.Set(p, fill)
		filled++

		for _, n := range [4]Point{
			{p.X + 1, p.Y},
			{p.X - 1, p.Y},
			{p.X, p.Y + 1},
			{p.X, p.Y - 1},
		} {
			if n.In(r) && !seen.has(index(n)) {
				frontier = append(frontier, n)
			}
		}
	}

	Logger().Debug("rasterkit: boundary fill",
		"seed", seed, "pixels", filled, "visited", visited)
	return filled
}

// bitset is a fixed-size set of small non-negative integers.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) has(i int) bool {
	return b[i/64]&(1<<(i%64)) != 0
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << (i % 64)
}
