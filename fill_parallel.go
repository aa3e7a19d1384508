// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rasterkit

import "github.com/gogpu/rasterkit/internal/parallel"

// FillJob is one polygon and the color FillPolygons fills it with.
type FillJob struct {
	Polygon Polygon
	Color   Color
}

// FillPolygons fills every job with ScanlineFill semantics, spreading the
// work over a pool of goroutines.
//
// The rows covered by the jobs are split into bands; each band is a single
// work item that fills every job's spans inside the band, in job order.
// Bands share no rows, so workers never write the same pixel, and the
// result equals calling ScanlineFill for each job in order, including where
// jobs overlap. c must tolerate concurrent Set calls on different rows;
// Pixmap does.
//
// Invalid polygons are skipped. FillPolygons returns the total number of
// pixels written.
func FillPolygons(c Canvas, jobs []FillJob, opts ...FillOption) int {
	var o fillOptions
	for _, opt := range opts {
		opt(&o)
	}

	type span struct{ y0, y1 int }
	ranges := make([]span, len(jobs))
	lo, hi := c.Height(), -1
	for i, job := range jobs {
		if !job.Polygon.Valid() {
			ranges[i] = span{0, -1}
			continue
		}
		ymin, ymax := job.Polygon.yRange()
		ymin, ymax = max(ymin, 0), min(ymax, c.Height()-1)
		ranges[i] = span{ymin, ymax}
		if ymin <= ymax {
			lo, hi = min(lo, ymin), max(hi, ymax)
		}
	}

	bands := parallel.SplitRows(lo, hi, o.bandHeight)
	if len(bands) == 0 {
		return 0
	}

	counts := make([]int, len(bands))
	work := make([]func(), len(bands))
	for bi, b := range bands {
		work[bi] = func() {
			for i, job := range jobs {
				y0, y1 := max(ranges[i].y0, b.Y0), min(ranges[i].y1, b.Y1)
				if y0 > y1 {
					continue
				}
				counts[bi] += scanlineRows(c, job.Polygon, job.Color, y0, y1)
			}
		}
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	Logger().Debug("rasterkit: parallel fill",
		"jobs", len(jobs), "bands", len(bands), "workers", pool.Workers())
	pool.ExecuteAll(work)

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
