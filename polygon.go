package rasterkit

import (
	"image"
	"iter"
	"math"
)

// Polygon is a closed polygon. Edges join consecutive vertices and the last
// vertex back to the first. A polygon needs at least three vertices.
type Polygon []Point

// Valid reports whether the polygon has at least three vertices.
func (poly Polygon) Valid() bool {
	return len(poly) >= 3
}

// Edges returns the polygon's edges, including the closing edge.
// A polygon with fewer than two vertices has no edges.
func (poly Polygon) Edges() iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		n := len(poly)
		if n < 2 {
			return
		}
		for i := range n {
			if !yield(poly[i], poly[(i+1)%n]) {
				return
			}
		}
	}
}

// Bounds returns the smallest image.Rectangle containing every vertex.
// The rectangle is half-open, so Max is one past the largest coordinates.
func (poly Polygon) Bounds() image.Rectangle {
	if len(poly) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: poly[0].ImagePoint(), Max: poly[0].ImagePoint().Add(image.Pt(1, 1))}
	for _, p := range poly[1:] {
		r = r.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
	return r
}

// Centroid returns the integer mean of the vertices (truncated toward zero).
// For convex polygons it lies inside the polygon and serves as a
// boundary-fill seed.
func (poly Polygon) Centroid() Point {
	if len(poly) == 0 {
		return Point{}
	}
	var sx, sy int
	for _, p := range poly {
		sx += p.X
		sy += p.Y
	}
	return Point{X: sx / len(poly), Y: sy / len(poly)}
}

// Area returns the unsigned area given by the shoelace formula.
func (poly Polygon) Area() float64 {
	var twice int
	for a, b := range poly.Edges() {
		twice += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(float64(twice)) / 2
}

// Perimeter returns the total length of the polygon's edges.
func (poly Polygon) Perimeter() float64 {
	var sum float64
	for a, b := range poly.Edges() {
		sum += math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
	}
	return sum
}

// Transform returns a copy of the polygon with every vertex rotated by angle
// radians about the origin, scaled, truncated to integers and then
// translated by offset.
func (poly Polygon) Transform(angle, scale float64, offset Point) Polygon {
	sin, cos := math.Sincos(angle)
	out := make(Polygon, len(poly))
	for i, p := range poly {
		x, y := float64(p.X), float64(p.Y)
		out[i] = Point{
			X: int(scale*(x*cos-y*sin)) + offset.X,
			Y: int(scale*(x*sin+y*cos)) + offset.Y,
		}
	}
	return out
}

// ScaleAbout returns a copy of the polygon scaled by (sx, sy) about pivot.
// Offsets from the pivot are scaled and truncated toward zero. A negative
// factor mirrors: ScaleAbout(1, -1, Pt(0, y)) reflects across the row y.
func (poly Polygon) ScaleAbout(sx, sy float64, pivot Point) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		d := p.Sub(pivot)
		out[i] = pivot.Add(Point{X: int(float64(d.X) * sx), Y: int(float64(d.Y) * sy)})
	}
	return out
}

// Translate returns a copy of the polygon moved by d.
func (poly Polygon) Translate(d Point) Polygon {
	out := make(Polygon, len(poly))
	for i, p := range poly {
		out[i] = p.Add(d)
	}
	return out
}

// RegularPolygon returns n vertices spaced evenly on the circle of the given
// radius around center, starting at angle zero and turning toward +y. Vertex
// offsets are truncated toward zero. With many vertices it approximates a
// disc for ScanlineFill. n below 3 yields nil.
func RegularPolygon(center Point, radius float64, n int) Polygon {
	if n < 3 {
		return nil
	}
	poly := make(Polygon, n)
	for i := range poly {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		poly[i] = center.Add(Point{X: int(radius * cos), Y: int(radius * sin)})
	}
	return poly
}

// Contains reports whether ScanlineFill would paint p, that is whether the
// center of pixel p lies inside the polygon under the even-odd rule.
func (poly Polygon) Contains(p Point) bool {
	if !poly.Valid() {
		return false
	}
	xs := intersections(poly, p.Y, nil)
	if len(xs)%2 != 0 {
		return false
	}
	x := float64(p.X)
	for i := 0; i+1 < len(xs); i += 2 {
		if x >= xs[i] && x <= xs[i+1] {
			return true
		}
	}
	return false
}
