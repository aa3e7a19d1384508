package rasterkit

import (
	"bytes"
	"fmt"
	"testing"
)

func rocketJobs() []FillJob {
	transform := func(p Polygon) Polygon { return p.Transform(0.4, 3, Pt(200, 150)) }
	return []FillJob{
		{transform(Polygon{{-15, 10}, {15, 10}, {15, -30}, {-15, -30}}), RGB(0.8, 0.8, 0.9)},
		{transform(Polygon{{0, 40}, {-15, 10}, {15, 10}}), testRed},
		{transform(Polygon{{-15, 0}, {-15, -25}, {-25, -35}}), testRed},
		{transform(Polygon{{15, 0}, {15, -25}, {25, -35}}), testRed},
		// Overlaps the body; must win where it is painted later.
		{transform(Polygon{{-10, -30}, {10, -30}, {15, -40}, {-15, -40}}), testBlue},
		{Polygon{{1, 1}, {2, 2}}, testWhite}, // invalid, skipped
	}
}

func TestFillPolygonsMatchesSequential(t *testing.T) {
	jobs := rocketJobs()

	seq := newTestPixmap(400, 300)
	want := 0
	for _, job := range jobs {
		want += ScanlineFill(seq, job.Polygon, job.Color)
	}

	for _, tc := range []struct{ workers, band int }{
		{1, 1}, {2, 7}, {4, 32}, {8, 300}, {0, 0},
	} {
		t.Run(fmt.Sprintf("workers=%d/band=%d", tc.workers, tc.band), func(t *testing.T) {
			par := newTestPixmap(400, 300)
			got := FillPolygons(par, jobs, WithWorkers(tc.workers), WithBandHeight(tc.band))
			if got != want {
				t.Errorf("FillPolygons wrote %d pixels, sequential wrote %d", got, want)
			}
			if !bytes.Equal(seq.Data(), par.Data()) {
				t.Error("parallel result differs from sequential ScanlineFill")
			}
		})
	}
}

func TestFillPolygonsEmpty(t *testing.T) {
	pm := newTestPixmap(10, 10)
	if n := FillPolygons(pm, nil); n != 0 {
		t.Errorf("no jobs wrote %d pixels", n)
	}
	off := []FillJob{{Polygon{{20, 20}, {30, 20}, {25, 30}}, testRed}}
	if n := FillPolygons(pm, off); n != 0 {
		t.Errorf("off-canvas job wrote %d pixels", n)
	}
}
