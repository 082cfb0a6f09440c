package korim

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Paint configuration errors.
var (
	// ErrInvalidPaint is returned for malformed paint descriptors:
	// empty or mismatched gradient stop lists, missing or empty image
	// sources.
	ErrInvalidPaint = errors.New("korim: invalid paint")

	// ErrSingularTransform is returned when a paint's effective
	// transform has a near-zero determinant and cannot be inverted.
	ErrSingularTransform = errors.New("korim: transform is not invertible")
)

// rampSize is the fixed resolution of the precomputed gradient ramp.
const rampSize = 256

// Gradient axis length bounds: the start-end distance is floored to
// avoid division by a near-zero run and capped to bound numeric range.
const (
	minGradientDist = 1
	maxGradientDist = 16000
)

// sampler streams colors for one shape into horizontal spans of a
// pixel buffer. A sampler is configured once per shape by newSampler
// and never reused across shapes without reconfiguration.
type sampler interface {
	// fill writes n consecutive colors starting at (x, y).
	fill(dst *PixelBuffer, x, y, n int)
}

// newSampler configures a sampler for the paint under the given drawing
// transform. All transform-dependent work (inverse transforms, the
// gradient color ramp) happens here, once per shape, so the per-pixel
// path stays cheap.
func newSampler(p Paint, transform Matrix) (sampler, error) {
	switch p := p.(type) {
	case NonePaint:
		return noneSampler{}, nil
	case SolidPaint:
		return solidSampler{color: p.Color}, nil
	case GradientPaint:
		return newGradientSampler(p, transform)
	case ImagePaint:
		return newImageSampler(p)
	default:
		return nil, fmt.Errorf("%w: unknown paint %T", ErrInvalidPaint, p)
	}
}

// noneSampler writes nothing; used when filling is disabled.
type noneSampler struct{}

func (noneSampler) fill(*PixelBuffer, int, int, int) {}

// solidSampler writes a constant color to every covered pixel.
type solidSampler struct {
	color Color
}

func (s solidSampler) fill(dst *PixelBuffer, x, y, n int) {
	row := dst.pix[dst.index(x, y):dst.index(x+n, y)]
	for i := range row {
		row[i] = s.color
	}
}

// gradientSampler maps device pixels onto a precomputed linear ramp.
//
// deviceToAxis is the whole sampling chain composed at configure time:
// the inverse of (drawing transform * paint transform), then a
// translation putting the gradient start at the origin, a scale by the
// reciprocal axis length, and a rotation aligning the start-end axis
// with the x axis. The transformed x coordinate, clamped to [0, 1],
// indexes the ramp.
type gradientSampler struct {
	deviceToAxis Matrix
	ramp         [rampSize]Color
}

func newGradientSampler(p GradientPaint, transform Matrix) (*gradientSampler, error) {
	if len(p.Stops) == 0 {
		return nil, fmt.Errorf("%w: gradient has no stops", ErrInvalidPaint)
	}
	if len(p.Colors) != len(p.Stops) {
		return nil, fmt.Errorf("%w: gradient has %d stops but %d colors",
			ErrInvalidPaint, len(p.Stops), len(p.Colors))
	}
	for i := 1; i < len(p.Stops); i++ {
		if p.Stops[i] <= p.Stops[i-1] {
			return nil, fmt.Errorf("%w: gradient stops must be strictly ascending", ErrInvalidPaint)
		}
	}

	inv, ok := transform.Multiply(p.Transform).Invert()
	if !ok {
		return nil, ErrSingularTransform
	}

	axis := p.End.Sub(p.Start)
	dist := axis.Length()
	if dist < minGradientDist {
		dist = minGradientDist
	} else if dist > maxGradientDist {
		dist = maxGradientDist
	}
	angle := math32.Atan2(axis.Y, axis.X)

	deviceToAxis := Rotate(-angle).
		Multiply(Scale(1/dist, 1/dist)).
		Multiply(Translate(-p.Start.X, -p.Start.Y)).
		Multiply(inv)

	s := &gradientSampler{deviceToAxis: deviceToAxis}
	buildRamp(&s.ramp, p.Stops, p.Colors)
	return s, nil
}

// buildRamp fills the ramp by piecewise-linear channel interpolation
// between consecutive stops. Indices before the first stop clamp to the
// first color, indices after the last stop clamp to the last color.
func buildRamp(ramp *[rampSize]Color, stops []float32, colors []Color) {
	last := len(stops) - 1
	seg := 0
	for i := range ramp {
		t := float32(i) / (rampSize - 1)
		for seg < last && stops[seg+1] <= t {
			seg++
		}
		switch {
		case t <= stops[0]:
			ramp[i] = colors[0]
		case seg >= last:
			ramp[i] = colors[last]
		default:
			span := stops[seg+1] - stops[seg]
			local := (t - stops[seg]) / span
			ramp[i] = lerpColor(colors[seg], colors[seg+1], uint32(local*256+0.5))
		}
	}
}

func (s *gradientSampler) fill(dst *PixelBuffer, x, y, n int) {
	row := dst.pix[dst.index(x, y):dst.index(x+n, y)]
	fy := float32(y)
	for i := range row {
		p := s.deviceToAxis.TransformPoint(Point{X: float32(x + i), Y: fy})
		t := p.X
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		row[i] = s.ramp[int(t*(rampSize-1)+0.5)]
	}
}

// imageSampler maps device pixels through the inverse paint transform
// into source-buffer coordinates.
type imageSampler struct {
	src    *PixelBuffer
	inv    Matrix
	smooth bool
}

func newImageSampler(p ImagePaint) (*imageSampler, error) {
	if p.Source == nil || p.Source.width <= 0 || p.Source.height <= 0 {
		return nil, fmt.Errorf("%w: image paint needs a non-empty source", ErrInvalidPaint)
	}
	inv, ok := p.Transform.Invert()
	if !ok {
		return nil, ErrSingularTransform
	}
	return &imageSampler{src: p.Source, inv: inv, smooth: p.Smooth}, nil
}

func (s *imageSampler) fill(dst *PixelBuffer, x, y, n int) {
	row := dst.pix[dst.index(x, y):dst.index(x+n, y)]
	fy := float32(y)
	for i := range row {
		p := s.inv.TransformPoint(Point{X: float32(x + i), Y: fy})
		if s.smooth {
			row[i] = sampleBilinear(s.src, p.X, p.Y)
		} else {
			row[i] = sampleNearest(s.src, p.X, p.Y)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sampleNearest truncates the source coordinate to integer texels,
// clamped to the source bounds.
func sampleNearest(src *PixelBuffer, fx, fy float32) Color {
	x := clampInt(int(fx), 0, src.width-1)
	y := clampInt(int(fy), 0, src.height-1)
	return src.pix[src.index(x, y)]
}

// sampleBilinear interpolates the four texels around the fractional
// source coordinate, clamping each lookup to the source bounds.
func sampleBilinear(src *PixelBuffer, fx, fy float32) Color {
	x0f := math32.Floor(fx)
	y0f := math32.Floor(fy)
	tx := uint32((fx - x0f) * 256)
	ty := uint32((fy - y0f) * 256)

	x0 := clampInt(int(x0f), 0, src.width-1)
	y0 := clampInt(int(y0f), 0, src.height-1)
	x1 := clampInt(x0+1, 0, src.width-1)
	y1 := clampInt(y0+1, 0, src.height-1)

	top := lerpColor(src.pix[src.index(x0, y0)], src.pix[src.index(x1, y0)], tx)
	bot := lerpColor(src.pix[src.index(x0, y1)], src.pix[src.index(x1, y1)], tx)
	return lerpColor(top, bot, ty)
}
