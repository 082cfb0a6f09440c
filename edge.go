package korim

import "github.com/chewxy/math32"

// Edge is a directed, non-horizontal line segment prepared for
// scanline conversion. Endpoints are normalized so y0 <= y1; the
// winding sign records the original direction (+1 downward, -1 upward).
// The rasterizer fills strictly by even-odd parity and never consults
// the winding sign; it is kept as part of the edge's documented shape.
type Edge struct {
	x0, y0 float32
	x1, y1 float32
	dxdy   float32 // change in x per unit y, cached for intersection queries
	wind   int8
}

// newEdge normalizes two polygon vertices into an Edge.
// Returns ok=false for horizontal edges (a.Y == b.Y), which never
// bound a span and are excluded from the table.
func newEdge(a, b Point) (Edge, bool) {
	wind := int8(1)
	if a.Y > b.Y {
		a, b = b, a
		wind = -1
	}
	dy := b.Y - a.Y
	if dy == 0 {
		return Edge{}, false
	}
	return Edge{
		x0:   a.X,
		y0:   a.Y,
		x1:   b.X,
		y1:   b.Y,
		dxdy: (b.X - a.X) / dy,
		wind: wind,
	}, true
}

// Winding returns the edge's direction sign: +1 if the source edge
// pointed downward, -1 if upward.
func (e *Edge) Winding() int8 { return e.wind }

// ContainsRow reports whether the scan position y crosses this edge.
// The interval is half-open, [y0, y1), so a vertex shared by two edges
// is attributed to exactly one of them and crossings are never counted
// twice.
func (e *Edge) ContainsRow(y float32) bool {
	return y >= e.y0 && y < e.y1
}

// IntersectX returns the x coordinate where the edge crosses the scan
// position y. Vertical edges return x0 directly, avoiding a division
// by a zero x run.
func (e *Edge) IntersectX(y float32) float32 {
	if e.x0 == e.x1 {
		return e.x0
	}
	return e.x0 + (y-e.y0)*e.dxdy
}

// EdgeTable holds the directed edges of one flattened closed polygon.
// It is built fresh per fill and discarded afterward.
type EdgeTable struct {
	edges []Edge
}

// NewEdgeTable builds the edge table from ordered polygon vertices.
// The loop closes with a wrap-around edge from the last vertex back to
// the first; horizontal edges are dropped.
func NewEdgeTable(polygon []Point) *EdgeTable {
	t := &EdgeTable{edges: make([]Edge, 0, len(polygon))}
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%len(polygon)]
		if e, ok := newEdge(a, b); ok {
			t.edges = append(t.edges, e)
		}
	}
	return t
}

// Len returns the number of edges in the table.
func (t *EdgeTable) Len() int { return len(t.edges) }

// Bounds returns the bounding box over all edges.
// Valid only when Len() > 0.
func (t *EdgeTable) Bounds() (minX, minY, maxX, maxY float32) {
	minX = math32.MaxFloat32
	minY = math32.MaxFloat32
	maxX = -math32.MaxFloat32
	maxY = -math32.MaxFloat32
	for i := range t.edges {
		e := &t.edges[i]
		minY = math32.Min(minY, e.y0)
		maxY = math32.Max(maxY, e.y1)
		minX = math32.Min(minX, math32.Min(e.x0, e.x1))
		maxX = math32.Max(maxX, math32.Max(e.x0, e.x1))
	}
	return minX, minY, maxX, maxY
}

// AppendIntersections appends the x coordinate of every edge crossing
// the scan position y to xs, in table order, and returns the extended
// slice. The caller sorts; preserving table order here keeps that sort
// stable with respect to input order.
func (t *EdgeTable) AppendIntersections(xs []float32, y float32) []float32 {
	for i := range t.edges {
		e := &t.edges[i]
		if e.ContainsRow(y) {
			xs = append(xs, e.IntersectX(y))
		}
	}
	return xs
}
