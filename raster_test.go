package korim

import "testing"

func rect(x0, y0, x1, y1 float32) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func fillSolid(t *testing.T, dst *PixelBuffer, polygon []Point, c Color) {
	t.Helper()
	if err := NewRasterizer().Fill(dst, polygon, SolidPaint{Color: c}, Identity()); err != nil {
		t.Fatalf("Fill: %v", err)
	}
}

func TestFillRectangle(t *testing.T) {
	buf := NewPixelBuffer(8, 8)
	red := Color(0xFFFF0000)

	fillSolid(t, buf, rect(2, 2, 6, 6), red)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := Transparent
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = red
			}
			if got := buf.Get(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestFillConvexPolygonInteriorAndExterior(t *testing.T) {
	buf := NewPixelBuffer(32, 32)
	bg := ColorRGB(9, 9, 9)
	buf.Clear(bg)
	c := ColorRGB(0, 0, 255)

	// Convex pentagon fully inside the buffer.
	poly := []Point{{16, 3}, {28, 12}, {24, 27}, {8, 27}, {4, 12}}
	fillSolid(t, buf, poly, c)

	interior := []Point{{16, 15}, {12, 20}, {20, 10}, {16, 5}}
	for _, p := range interior {
		if got := buf.Get(int(p.X), int(p.Y)); got != c {
			t.Errorf("interior (%v,%v) = %#08x, want fill color", p.X, p.Y, uint32(got))
		}
	}

	exterior := []Point{{0, 0}, {31, 0}, {0, 31}, {31, 31}, {1, 15}, {30, 20}}
	for _, p := range exterior {
		if got := buf.Get(int(p.X), int(p.Y)); got != bg {
			t.Errorf("exterior (%v,%v) = %#08x, want background", p.X, p.Y, uint32(got))
		}
	}
}

// A figure-eight built from two overlapping squares joined by a
// retraced connector: under even-odd parity the doubly covered overlap
// stays empty while each lobe fills.
func TestFillEvenOddFigureEight(t *testing.T) {
	buf := NewPixelBuffer(9, 9)
	c := ColorRGB(255, 255, 255)

	poly := []Point{
		{1, 1}, {5, 1}, {5, 5}, {1, 5}, {1, 1}, // first square
		{3, 3}, {7, 3}, {7, 7}, {3, 7}, // second square; wrap retraces (3,3)-(1,1)
	}
	fillSolid(t, buf, poly, c)

	// Overlap region [3,5) x [3,5) is covered twice: unfilled.
	for _, p := range [][2]int{{3, 3}, {4, 4}, {3, 4}, {4, 3}} {
		if got := buf.Get(p[0], p[1]); got != Transparent {
			t.Errorf("overlap (%d,%d) filled: %#08x", p[0], p[1], uint32(got))
		}
	}
	// Each lobe outside the overlap is filled.
	for _, p := range [][2]int{{1, 1}, {2, 2}, {1, 4}, {6, 6}, {5, 5}, {6, 4}} {
		if got := buf.Get(p[0], p[1]); got != c {
			t.Errorf("lobe (%d,%d) = %#08x, want fill color", p[0], p[1], uint32(got))
		}
	}
	// Exterior untouched.
	if got := buf.Get(8, 1); got != Transparent {
		t.Errorf("exterior filled: %#08x", uint32(got))
	}
}

// Fill ignores edge direction entirely: reversing the vertex order
// (flipping every winding sign) produces identical output.
func TestFillIgnoresWinding(t *testing.T) {
	cw := NewPixelBuffer(8, 8)
	ccw := NewPixelBuffer(8, 8)
	c := ColorRGB(77, 0, 77)

	fillSolid(t, cw, rect(1, 1, 7, 6), c)
	fillSolid(t, ccw, []Point{{1, 1}, {1, 6}, {7, 6}, {7, 1}}, c)

	for i, got := range cw.Pix() {
		if got != ccw.Pix()[i] {
			t.Fatalf("pixel %d differs between windings: %#08x vs %#08x",
				i, uint32(got), uint32(ccw.Pix()[i]))
		}
	}
}

// Polygons crossing the buffer's top or bottom edge fill their
// in-bounds rows; the out-of-range rows are clamped away, not the
// whole shape.
func TestFillClampsRowRange(t *testing.T) {
	buf := NewPixelBuffer(8, 8)
	c := ColorRGB(0, 200, 0)

	fillSolid(t, buf, rect(2, -4, 6, 12), c)

	for y := 0; y < 8; y++ {
		for x := 2; x < 6; x++ {
			if got := buf.Get(x, y); got != c {
				t.Errorf("pixel (%d,%d) = %#08x, want fill color", x, y, uint32(got))
			}
		}
		if got := buf.Get(1, y); got != Transparent {
			t.Errorf("pixel (1,%d) filled", y)
		}
	}
}

// Span endpoints beyond the left or right buffer edge clamp to
// [0, width].
func TestFillClampsSpans(t *testing.T) {
	buf := NewPixelBuffer(8, 4)
	c := ColorRGB(1, 2, 3)

	fillSolid(t, buf, rect(-5, 1, 13, 3), c)

	for x := 0; x < 8; x++ {
		if got := buf.Get(x, 1); got != c {
			t.Errorf("pixel (%d,1) = %#08x, want fill color", x, uint32(got))
		}
		if got := buf.Get(x, 0); got != Transparent {
			t.Errorf("pixel (%d,0) filled", x)
		}
	}
}

func TestFillNonePaintWritesNothing(t *testing.T) {
	buf := NewPixelBuffer(8, 8)
	bg := ColorRGB(5, 5, 5)
	buf.Clear(bg)

	if err := NewRasterizer().Fill(buf, rect(1, 1, 7, 7), NonePaint{}, Identity()); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	for _, c := range buf.Pix() {
		if c != bg {
			t.Fatal("NonePaint modified the buffer")
		}
	}
}

func TestFillDegenerateInput(t *testing.T) {
	buf := NewPixelBuffer(8, 8)
	r := NewRasterizer()

	// Fewer than three vertices: nothing to fill, no error.
	if err := r.Fill(buf, []Point{{1, 1}, {5, 5}}, SolidPaint{Color: ColorRGB(1, 1, 1)}, Identity()); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	// Zero-height polygon: all edges horizontal, empty table.
	if err := r.Fill(buf, []Point{{0, 3}, {4, 3}, {8, 3}}, SolidPaint{Color: ColorRGB(1, 1, 1)}, Identity()); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	for _, c := range buf.Pix() {
		if c != Transparent {
			t.Fatal("degenerate fill wrote pixels")
		}
	}
}

func TestFillFailsFastOnBadPaint(t *testing.T) {
	buf := NewPixelBuffer(8, 8)
	bad := GradientPaint{Transform: Identity()} // no stops
	err := NewRasterizer().Fill(buf, rect(0, 0, 8, 8), bad, Identity())
	if err == nil {
		t.Fatal("expected configure error")
	}
	for _, c := range buf.Pix() {
		if c != Transparent {
			t.Fatal("failed fill wrote pixels before erroring")
		}
	}
}

// A rasterizer may be reused across shapes; each Fill configures its
// own sampler and edge table.
func TestRasterizerReuse(t *testing.T) {
	buf := NewPixelBuffer(8, 8)
	r := NewRasterizer()
	a := ColorRGB(255, 0, 0)
	b := ColorRGB(0, 255, 0)

	if err := r.Fill(buf, rect(0, 0, 4, 8), SolidPaint{Color: a}, Identity()); err != nil {
		t.Fatal(err)
	}
	if err := r.Fill(buf, rect(4, 0, 8, 8), SolidPaint{Color: b}, Identity()); err != nil {
		t.Fatal(err)
	}
	if got := buf.Get(1, 1); got != a {
		t.Errorf("left half = %#08x", uint32(got))
	}
	if got := buf.Get(6, 6); got != b {
		t.Errorf("right half = %#08x", uint32(got))
	}
}
