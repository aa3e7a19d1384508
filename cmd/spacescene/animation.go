package main

import (
	"math"

	"github.com/gogpu/rasterkit"
)

// Flight path control points, in world coordinates (origin bottom-left).
var (
	pathStart = rasterkit.Pt(100, 370)
	pathPeak  = rasterkit.Pt(400, 550)
	pathEnd   = rasterkit.Pt(700, 400)
)

// Frame is the animation state of one rendered frame. Every value the scene
// needs is carried here rather than in package state.
type Frame struct {
	// T is the flight parameter in [0, 1].
	T float64
	// Zoom is the post-landing zoom parameter in [0, 1]; zero during flight.
	Zoom float64

	Rocket rasterkit.Point // rocket origin, world coordinates
	Angle  float64         // rocket heading in degrees
	Scale  float64         // rocket scale factor

	// Camera is the visible world rectangle (y up).
	Camera rasterkit.ClipRect
}

// flightFrame returns the state at flight parameter t.
//
// The rocket follows the quadratic Bézier pathStart→pathPeak→pathEnd, spins
// through -360·t·(1-t) degrees, is largest at mid-flight, and the camera
// widens from a 100×200 window around the launch site to the whole world.
func flightFrame(t float64) Frame {
	t = min(max(t, 0), 1)
	u := 1 - t
	bezier := func(a, b, c int) int {
		return int(u*u*float64(a) + 2*u*t*float64(b) + t*t*float64(c))
	}
	return Frame{
		T:      t,
		Rocket: rasterkit.Pt(bezier(pathStart.X, pathPeak.X, pathEnd.X), bezier(pathStart.Y, pathPeak.Y, pathEnd.Y)),
		Angle:  -360 * t * (1 - t),
		Scale:  1 - math.Abs(0.5-t),
		Camera: rasterkit.Rect(50-50*t, 150+650*t, 250-250*t, 450+150*t),
	}
}

// zoomFrame returns the state after landing, with the camera closing in on
// the destination planet as z goes from 0 to 1.
func zoomFrame(z float64) Frame {
	z = min(max(z, 0), 1)
	f := flightFrame(1)
	f.Zoom = z
	w := 50 * (1 - z)
	f.Camera = rasterkit.Rect(600-w, 800+w, 200-w, 400+w)
	return f
}

// frames returns the whole animation: flight frames followed by zoom frames.
func frames(flight, zoom int) []Frame {
	out := make([]Frame, 0, flight+zoom)
	for i := range flight {
		t := 0.0
		if flight > 1 {
			t = float64(i) / float64(flight-1)
		}
		out = append(out, flightFrame(t))
	}
	for j := range zoom {
		out = append(out, zoomFrame(float64(j+1)/float64(zoom)))
	}
	return out
}
