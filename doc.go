// Package korim implements a software scanline rasterizer that fills
// flattened vector shapes into in-memory pixel buffers.
//
// # Overview
//
// The package has four pieces, from the bottom up:
//
//   - PixelBuffer: a row-major buffer of packed 32-bit ARGB colors with
//     an explicit premultiplied/straight alpha state, compositing blits
//     and box-filter mipmap generation.
//   - Paint: a closed set of fill descriptions (none, solid, gradient,
//     image) consumed by the rasterizer.
//   - EdgeTable: directed non-horizontal edges built from a closed
//     polygon, answering per-row intersection queries.
//   - Rasterizer: the scanline fill driver, deriving horizontal spans
//     by the even-odd rule and streaming paint colors into the buffer.
//
// Callers supply an already-flattened closed polygon (curve
// linearization is out of scope), a Paint, and the current drawing
// transform:
//
//	buf := korim.NewPixelBuffer(256, 256)
//	r := korim.NewRasterizer()
//	poly := []korim.Point{{10, 10}, {200, 40}, {120, 220}}
//	err := r.Fill(buf, poly, korim.SolidPaint{Color: korim.ColorRGB(255, 0, 0)}, korim.Identity())
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increasing right, Y increasing down,
// angles in radians.
//
// # Concurrency
//
// All operations are synchronous and run to completion. Nothing locks
// internally: an operation assumes exclusive access to its target
// buffer for its full duration, and concurrent mutation of one buffer
// must be serialized by the caller.
package korim
