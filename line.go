// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterkit

import "iter"

// LineStepper walks the pixels of a line with the integer Bresenham
// algorithm. It is lazy, finite and not restartable: once Next has reported
// the end of the line it keeps returning false.
//
// A zero LineStepper is exhausted.
type LineStepper struct {
	cur, end Point
	dx, dy   int // absolute extents
	sx, sy   int // step directions, ±1
	err      int
	strict   bool // tie-breaking mode, see NewLineStepper
	done     bool
}

// NewLineStepper returns a stepper from p0 to p1, both inclusive.
//
// The error term starts at dx-dy; each step doubles it and advances x when
// it exceeds -dy and y when it is below dx. When p1 sorts before p0 (by x,
// then y) the comparisons become non-strict, which resolves ties toward the
// same pixels as the opposite direction. The pixel set of a line therefore
// does not depend on endpoint order, only the traversal order does.
func NewLineStepper(p0, p1 Point) *LineStepper {
	s := &LineStepper{
		cur:    p0,
		end:    p1,
		dx:     abs(p1.X - p0.X),
		dy:     abs(p1.Y - p0.Y),
		sx:     1,
		sy:     1,
		strict: !p1.less(p0),
	}
	if p0.X > p1.X {
		s.sx = -1
	}
	if p0.Y > p1.Y {
		s.sy = -1
	}
	s.err = s.dx - s.dy
	return s
}

// Next returns the next pixel of the line. ok is false once the end point
// has been returned.
func (s *LineStepper) Next() (p Point, ok bool) {
	if s.done || (s.sx == 0 && s.sy == 0) {
		return Point{}, false
	}

	p = s.cur
	if p == s.end {
		s.done = true
		return p, true
	}

	e2 := 2 * s.err
	if s.strict {
		if e2 > -s.dy {
			s.err -= s.dy
			s.cur.X += s.sx
		}
		if e2 < s.dx {
			s.err += s.dx
			s.cur.Y += s.sy
		}
	} else {
		if e2 >= -s.dy {
			s.err -= s.dy
			s.cur.X += s.sx
		}
		if e2 <= s.dx {
			s.err += s.dx
			s.cur.Y += s.sy
		}
	}
	return p, true
}

// Line returns the pixels of the line from p0 to p1 as a lazy sequence.
// Both endpoints are included exactly once and consecutive points differ by
// at most one in each axis.
func Line(p0, p1 Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		s := NewLineStepper(p0, p1)
		for p, ok := s.Next(); ok; p, ok = s.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// LinePoints collects the pixels of the line from p0 to p1.
func LinePoints(p0, p1 Point) []Point {
	n := max(abs(p1.X-p0.X), abs(p1.Y-p0.Y)) + 1
	pts := make([]Point, 0, n)
	for p := range Line(p0, p1) {
		pts = append(pts, p)
	}
	return pts
}
