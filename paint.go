package korim

// Paint describes how filled pixels are colored.
//
// This is a sealed interface: the variant set is fixed to NonePaint,
// SolidPaint, GradientPaint and ImagePaint, and only types in this
// package implement it. Dispatch happens once per shape when the
// rasterizer configures a sampler for the paint.
type Paint interface {
	// paintMarker is an unexported method that seals this interface.
	paintMarker()
}

// NonePaint disables filling; the rasterizer writes nothing.
type NonePaint struct{}

func (NonePaint) paintMarker() {}

// SolidPaint fills every covered pixel with a constant color.
type SolidPaint struct {
	Color Color
}

func (SolidPaint) paintMarker() {}

// GradientPaint fills with a linear color ramp between Start and End in
// paint space.
//
// Stops holds strictly ascending fractions in [0, 1] and Colors the
// color at each stop; the two slices must have equal, non-zero length.
// Pixels mapping before the first stop take the first color, pixels
// past the last stop take the last color.
type GradientPaint struct {
	Start  Point
	End    Point
	Stops  []float32
	Colors []Color

	// Transform maps paint space to user space. Must be invertible.
	Transform Matrix
}

func (GradientPaint) paintMarker() {}

// ImagePaint fills by sampling a source buffer.
//
// Transform maps source pixels to user space and must be invertible.
// With Smooth set, sampling interpolates over the fractional source
// coordinate; otherwise the coordinate truncates to the nearest texel,
// clamped to the source bounds.
type ImagePaint struct {
	Source    *PixelBuffer
	Transform Matrix
	Smooth    bool
}

func (ImagePaint) paintMarker() {}
