// Package cache provides a small thread-safe LRU cache.
//
// rasterkit keeps per-radius span tables here so that discs of the same
// size, redrawn every frame, are measured only once:
//
//	spans := cache.New[int, []int](64)
//	widths := spans.GetOrCreate(r, func() []int { return halfWidths(r) })
//
// Cached values are shared between callers and must be treated as
// read-only.
package cache
