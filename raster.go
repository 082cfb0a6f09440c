package korim

import "github.com/chewxy/math32"

// Rasterizer fills flattened closed polygons into pixel buffers using
// even-odd scanline conversion.
//
// A Rasterizer carries only scratch storage between calls; edge tables
// and samplers are built fresh per Fill. It is not safe for concurrent
// use, but distinct Rasterizers may target distinct buffers in
// parallel.
type Rasterizer struct {
	xs []float32 // per-row intersection scratch, reused across rows
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{xs: make([]float32, 0, 32)}
}

// Fill rasterizes the polygon into dst with the given paint.
//
// The polygon must already be flattened and transformed into device
// coordinates; the wrap-around edge from the last vertex to the first
// closes it. The transform is the current drawing transform, consumed
// by gradient paints when mapping device pixels back to paint space.
//
// Interiors are decided by the even-odd rule: a pixel is inside when a
// ray to it crosses an odd number of edges, regardless of direction.
// Rows and span endpoints are clamped to the buffer, so polygons
// extending past any buffer boundary fill their in-bounds part.
//
// Fill fails fast on malformed paints (ErrInvalidPaint) and
// non-invertible paint transforms (ErrSingularTransform) before any
// pixel is written.
func (r *Rasterizer) Fill(dst *PixelBuffer, polygon []Point, paint Paint, transform Matrix) error {
	s, err := newSampler(paint, transform)
	if err != nil {
		return err
	}
	if _, none := paint.(NonePaint); none {
		return nil
	}
	if len(polygon) < 3 {
		Logger().Debug("fill skipped", "vertices", len(polygon))
		return nil
	}

	table := NewEdgeTable(polygon)
	if table.Len() == 0 {
		return nil
	}

	_, minY, _, maxY := table.Bounds()
	y0 := max(int(math32.Floor(minY)), 0)
	y1 := min(int(math32.Ceil(maxY)), dst.height)
	Logger().Debug("fill", "edges", table.Len(), "rows", y1-y0)

	for y := y0; y < y1; y++ {
		// Sample at the pixel center so edges landing exactly on
		// integer rows resolve consistently.
		scanY := float32(y) + 0.5

		r.xs = table.AppendIntersections(r.xs[:0], scanY)
		if len(r.xs) < 2 {
			continue
		}
		sortAscending(r.xs)

		// Consecutive intersections alternate interior/exterior:
		// each (xs[2i], xs[2i+1]) pair is one interior span.
		for i := 0; i+1 < len(r.xs); i += 2 {
			x0 := clampInt(int(r.xs[i]), 0, dst.width)
			x1 := clampInt(int(r.xs[i+1]), 0, dst.width)
			if x1 <= x0 {
				continue
			}
			s.fill(dst, x0, y, x1-x0)
		}
	}
	return nil
}

// sortAscending sorts the intersection list with insertion sort.
// The lists are tiny and usually nearly sorted; insertion sort is also
// stable, so equal x values keep their edge-table order.
func sortAscending(xs []float32) {
	for i := 1; i < len(xs); i++ {
		j := i
		for j > 0 && xs[j] < xs[j-1] {
			xs[j], xs[j-1] = xs[j-1], xs[j]
			j--
		}
	}
}
