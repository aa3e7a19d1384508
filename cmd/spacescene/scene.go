package main

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/rasterkit"
)

// World dimensions. Scene coordinates are world coordinates with the origin
// at the bottom-left; the canvas has its origin at the top-left.
const (
	worldWidth  = 800
	worldHeight = 600
	starCount   = 200
	flameCount  = 15
)

var (
	colorBlack    = rasterkit.RGB(0, 0, 0)
	colorWhite    = rasterkit.RGB(1, 1, 1)
	colorRed      = rasterkit.RGB(1, 0, 0)
	colorSilver   = rasterkit.RGB(0.8, 0.8, 0.9)
	colorDarkGrey = rasterkit.RGB(0.3, 0.3, 0.3)
	colorBlue     = rasterkit.RGB(0.2, 0.4, 1)
	colorOrange   = rasterkit.RGB(0.9, 0.3, 0.1)

	// colorBoundary marks temporary outlines for boundary fill. It must not
	// occur anywhere else in the scene.
	colorBoundary = rasterkit.RGB(1, 0, 1)
)

// Rocket parts in model coordinates, nose pointing up.
var (
	rocketNose     = rasterkit.Polygon{rasterkit.Pt(0, 40), rasterkit.Pt(-15, 10), rasterkit.Pt(15, 10)}
	rocketBody     = rasterkit.Polygon{rasterkit.Pt(-15, 10), rasterkit.Pt(15, 10), rasterkit.Pt(15, -30), rasterkit.Pt(-15, -30)}
	rocketLeftFin  = rasterkit.Polygon{rasterkit.Pt(-15, 0), rasterkit.Pt(-15, -25), rasterkit.Pt(-25, -35)}
	rocketRightFin = rasterkit.Polygon{rasterkit.Pt(15, 0), rasterkit.Pt(15, -25), rasterkit.Pt(25, -35)}
	rocketExhaust  = rasterkit.Polygon{rasterkit.Pt(-10, -30), rasterkit.Pt(10, -30), rasterkit.Pt(15, -40), rasterkit.Pt(-15, -40)}
	exhaustBase    = [2]rasterkit.Point{rasterkit.Pt(-15, -40), rasterkit.Pt(15, -40)}
)

type planet struct {
	center rasterkit.Point
	radius int
	color  rasterkit.Color
}

var planets = []planet{
	{rasterkit.Pt(100, 300), 50, colorBlue},
	{rasterkit.Pt(700, 300), 80, colorOrange},
}

// scene holds what stays fixed between frames.
type scene struct {
	cfg   *Config
	stars []rasterkit.Point // world coordinates
}

func newScene(cfg *Config) *scene {
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	stars := make([]rasterkit.Point, starCount)
	for i := range stars {
		stars[i] = rasterkit.Pt(rng.IntN(worldWidth), rng.IntN(worldHeight))
	}
	return &scene{cfg: cfg, stars: stars}
}

// toCanvas flips a world point to canvas rows.
func toCanvas(p rasterkit.Point) rasterkit.Point {
	return rasterkit.Pt(p.X, worldHeight-1-p.Y)
}

// polygonToCanvas flips every vertex of a world polygon.
func polygonToCanvas(poly rasterkit.Polygon) rasterkit.Polygon {
	out := make(rasterkit.Polygon, len(poly))
	for i, p := range poly {
		out[i] = toCanvas(p)
	}
	return out
}

// cameraToCanvas flips a world camera rectangle to canvas rows.
func cameraToCanvas(r rasterkit.ClipRect) rasterkit.ClipRect {
	return rasterkit.Rect(r.XMin, r.XMax, worldHeight-1-r.YMax, worldHeight-1-r.YMin)
}

// render draws frame number idx onto world, which must be worldWidth ×
// worldHeight. Lines and stars are clipped to the camera; fills are not,
// since the projection step crops to the camera anyway.
func (s *scene) render(world *rasterkit.Pixmap, idx int, f Frame) rasterkit.PainterStats {
	world.Clear(colorBlack)

	// view clips to the camera. outline never clips: a boundary-fill border
	// cut by the camera would let the fill leak.
	view := rasterkit.NewPainter(world, rasterkit.WithClip(cameraToCanvas(f.Camera)))
	outline := rasterkit.NewPainter(world)

	for _, star := range s.stars {
		view.Plot(toCanvas(star), colorWhite)
	}

	s.drawPlanets(outline)
	s.drawRocket(view, outline, idx, f)

	a, b := view.Stats(), outline.Stats()
	return rasterkit.PainterStats{Pixels: a.Pixels + b.Pixels, Rejected: a.Rejected + b.Rejected}
}

func (s *scene) drawPlanets(p *rasterkit.Painter) {
	for _, pl := range planets {
		c := toCanvas(pl.center)
		if s.cfg.Planets == modeScanline {
			p.FillCircle(c, pl.radius, pl.color)
			continue
		}
		p.DrawCircle(c, pl.radius, colorBoundary)
		p.BoundaryFill(c, pl.color, colorBoundary)
		p.DrawCircle(c, pl.radius, pl.color)
	}
}

type rocketPart struct {
	poly  rasterkit.Polygon // canvas coordinates
	color rasterkit.Color
}

func (s *scene) drawRocket(view, outline *rasterkit.Painter, idx int, f Frame) {
	angle := f.Angle * math.Pi / 180
	place := func(model rasterkit.Polygon) rasterkit.Polygon {
		return polygonToCanvas(model.Transform(angle, f.Scale, f.Rocket))
	}

	base := place(rasterkit.Polygon{exhaustBase[0], exhaustBase[1]})
	s.drawFlames(view, base[0], base[1], f, idx)

	parts := []rocketPart{
		{place(rocketExhaust), colorDarkGrey},
		{place(rocketBody), colorSilver},
		{place(rocketNose), colorRed},
		{place(rocketLeftFin), colorRed},
		{place(rocketRightFin), colorRed},
	}

	if s.cfg.Rocket == modeBoundary {
		// Every outline goes down before any fill starts.
		for _, part := range parts {
			outline.DrawPolygon(part.poly, colorBoundary)
		}
		for _, part := range parts {
			// Small parts can have their centroid on or outside the
			// rasterized outline; the bounding box contains any leak.
			seed := part.poly.Centroid()
			if !part.poly.Contains(seed) {
				continue
			}
			outline.BoundaryFillRect(seed, part.color, colorBoundary, part.poly.Bounds())
		}
		for _, part := range parts {
			outline.DrawPolygon(part.poly, part.color)
		}
		return
	}

	if s.cfg.Parallel {
		jobs := make([]rasterkit.FillJob, len(parts))
		for i, part := range parts {
			jobs[i] = rasterkit.FillJob{Polygon: part.poly, Color: part.color}
		}
		outline.FillPolygons(jobs, rasterkit.WithWorkers(s.cfg.Workers), rasterkit.WithBandHeight(8))
		return
	}
	for _, part := range parts {
		outline.ScanlineFill(part.poly, part.color)
	}
}

// drawFlames draws random exhaust streaks from the segment baseL-baseR
// (canvas coordinates), pointing away from the rocket's heading.
func (s *scene) drawFlames(view *rasterkit.Painter, baseL, baseR rasterkit.Point, f Frame, idx int) {
	rng := rand.New(rand.NewPCG(s.cfg.Seed, uint64(idx)+1))

	// Heading minus 90° in world space; canvas y is flipped.
	rad := (f.Angle - 90) * math.Pi / 180
	dirX, dirY := math.Cos(rad), -math.Sin(rad)

	for range flameCount {
		t := rng.Float64()
		base := rasterkit.Pt(
			baseL.X+int(t*float64(baseR.X-baseL.X)),
			baseL.Y+int(t*float64(baseR.Y-baseL.Y)),
		)
		length := float64(10+rng.IntN(20)) * f.Scale
		tip := rasterkit.Pt(base.X+int(length*dirX), base.Y+int(length*dirY))
		col := rasterkit.RGB(1, 0.5+float64(rng.IntN(50))/100, 0)

		view.DrawLine(rasterkit.Pt(base.X-2, base.Y), tip, col)
		view.DrawLine(rasterkit.Pt(base.X+2, base.Y), tip, col)
	}
}
