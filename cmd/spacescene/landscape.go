package main

import (
	"fmt"

	"github.com/gogpu/rasterkit"
)

var (
	colorSky        = rasterkit.RGB(0.8, 0.9, 1)
	colorMountain   = rasterkit.RGB(0.2, 0.2, 0.2)
	colorReflection = rasterkit.RGB(0.15, 0.15, 0.15)
	colorLake       = rasterkit.RGB(0, 0, 0.5)
	colorSun        = rasterkit.RGB(1, 1, 0)
)

// Landscape geometry in world coordinates. The lake surface is the line
// y = horizonY.
const (
	horizonY     = 100
	sunRadius    = 40
	sunSegments  = 360
	sunZoomStart = 5.0
	sunZoomEnd   = 1.0
	// sunOnlyZoom is the zoom above which the sun is drawn alone.
	sunOnlyZoom = 1.2
)

var (
	sunCenter = rasterkit.Pt(500, 450)
	mountains = []rasterkit.Polygon{
		{rasterkit.Pt(100, 100), rasterkit.Pt(250, 300), rasterkit.Pt(400, 100)},
		{rasterkit.Pt(300, 100), rasterkit.Pt(450, 350), rasterkit.Pt(600, 100)},
	}
	lake = rasterkit.Polygon{rasterkit.Pt(0, 0), rasterkit.Pt(worldWidth, 0), rasterkit.Pt(worldWidth, horizonY), rasterkit.Pt(0, horizonY)}
)

// landscape is a mountain lake under a sun that shrinks from five times its
// size down to its resting radius.
type landscape struct {
	n           int
	reflections []rasterkit.Polygon
}

func newLandscape(n int) *landscape {
	refl := make([]rasterkit.Polygon, len(mountains))
	for i, m := range mountains {
		refl[i] = m.ScaleAbout(1, -1, rasterkit.Pt(0, horizonY))
	}
	return &landscape{n: n, reflections: refl}
}

func (l *landscape) Len() int { return l.n }

// zoom returns the sun scale for frame i, linear from sunZoomStart on the
// first frame to sunZoomEnd on the last.
func (l *landscape) zoom(i int) float64 {
	if l.n < 2 {
		return sunZoomEnd
	}
	t := float64(i) / float64(l.n-1)
	return sunZoomStart + (sunZoomEnd-sunZoomStart)*t
}

func (l *landscape) Draw(world *rasterkit.Pixmap, i int) shot {
	world.Clear(colorSky)
	p := rasterkit.NewPainter(world)

	z := l.zoom(i)
	if z <= sunOnlyZoom {
		// The horizon runs past the right edge; the painter clips it.
		p.DrawLine(toCanvas(rasterkit.Pt(0, horizonY)), toCanvas(rasterkit.Pt(worldWidth, horizonY)), colorBlack)
		for _, m := range mountains {
			p.ScanlineFill(polygonToCanvas(m), colorMountain)
		}
		p.ScanlineFill(polygonToCanvas(lake), colorLake)
		for _, r := range l.reflections {
			p.ScanlineFill(polygonToCanvas(r), colorReflection)
		}
	}
	drawSun(p, int(sunRadius*z))

	return shot{
		Camera: rasterkit.Rect(0, worldWidth-1, 0, worldHeight-1),
		Label:  fmt.Sprintf("frame %d/%d  sun zoom=%.2f", i+1, l.n, z),
		Stats:  p.Stats(),
	}
}

// drawSun fills a 360-gon approximation of the sun and outlines it with a
// midpoint circle of the same radius.
func drawSun(p *rasterkit.Painter, radius int) {
	c := toCanvas(sunCenter)
	p.ScanlineFill(rasterkit.RegularPolygon(c, float64(radius), sunSegments), colorSun)
	p.DrawCircle(c, radius, colorBlack)
}
