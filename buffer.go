package korim

import (
	"errors"
	"image"
)

// Buffer construction errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("korim: invalid dimensions")

	// ErrDataTooSmall is returned when provided pixel storage is smaller
	// than width*height.
	ErrDataTooSmall = errors.New("korim: pixel storage too small")
)

// PixelBuffer is a row-major buffer of packed 32-bit ARGB colors.
//
// The buffer carries an explicit alpha representation: every stored
// pixel is either straight alpha or premultiplied alpha, tracked by the
// Premultiplied flag. Transitions between the two states are the
// explicit Premultiply and Depremultiply operations; no other mutator
// changes the representation.
//
// PixelBuffers have identity semantics: two distinct buffers are never
// equal, even with identical dimensions and pixel data. Compare and key
// maps by *PixelBuffer pointer; mutating pixels does not disturb that
// identity.
//
// A PixelBuffer is not safe for concurrent use. Every operation assumes
// exclusive access to the buffer for its full duration.
type PixelBuffer struct {
	width         int
	height        int
	pix           []Color
	premultiplied bool
}

// NewPixelBuffer creates a straight-alpha buffer of the given
// dimensions with all pixels transparent. Dimensions must be positive.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// NewPixelBufferOf wraps existing pixel storage without copying.
// The storage must hold at least width*height entries; excess capacity
// is kept but never addressed.
func NewPixelBufferOf(pix []Color, width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) < width*height {
		return nil, ErrDataTooSmall
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    pix,
	}, nil
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// Premultiplied reports whether the stored pixels carry premultiplied
// alpha.
func (b *PixelBuffer) Premultiplied() bool { return b.premultiplied }

// Pix returns the backing pixel slice, row-major, length width*height.
// Writing through it is allowed but must respect the buffer's alpha
// representation.
func (b *PixelBuffer) Pix() []Color { return b.pix[:b.width*b.height] }

// Bounds returns the buffer rectangle anchored at the origin.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *PixelBuffer) index(x, y int) int { return y*b.width + x }

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the pixel at (x, y). Out-of-range coordinates return
// Transparent.
func (b *PixelBuffer) Get(x, y int) Color {
	if !b.inBounds(x, y) {
		return Transparent
	}
	return b.pix[b.index(x, y)]
}

// Set stores a pixel at (x, y). Out-of-range coordinates are ignored.
// The color must match the buffer's alpha representation.
func (b *PixelBuffer) Set(x, y int, c Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.pix[b.index(x, y)] = c
}

// Clear overwrites every pixel with c.
func (b *PixelBuffer) Clear(c Color) {
	pix := b.Pix()
	for i := range pix {
		pix[i] = c
	}
}

// Fill overwrites every pixel of the region with c. The region is
// clamped to the buffer bounds first.
func (b *PixelBuffer) Fill(c Color, region image.Rectangle) {
	r := region.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.pix[b.index(r.Min.X, y):b.index(r.Max.X, y)]
		for i := range row {
			row[i] = c
		}
	}
}

// clipBlit computes the overlap of src placed at (dx, dy) on b.
// Negative offsets shift the effective source sub-rectangle instead of
// failing.
func (b *PixelBuffer) clipBlit(src *PixelBuffer, dx, dy int) (sx0, sy0, dx0, dy0, w, h int) {
	sx0, sy0 = 0, 0
	dx0, dy0 = dx, dy
	if dx0 < 0 {
		sx0 = -dx0
		dx0 = 0
	}
	if dy0 < 0 {
		sy0 = -dy0
		dy0 = 0
	}
	w = min(src.width-sx0, b.width-dx0)
	h = min(src.height-sy0, b.height-dy0)
	return
}

// Put copies src onto b at offset (dx, dy), overwriting overlapping
// pixels without blending. The source region is clipped to b's bounds.
func (b *PixelBuffer) Put(src *PixelBuffer, dx, dy int) {
	sx0, sy0, dx0, dy0, w, h := b.clipBlit(src, dx, dy)
	if w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		srcRow := src.pix[src.index(sx0, sy0+y):src.index(sx0+w, sy0+y)]
		dstRow := b.pix[b.index(dx0, dy0+y):b.index(dx0+w, dy0+y)]
		copy(dstRow, srcRow)
	}
}

// Draw composites src over b at offset (dx, dy) using source-over alpha
// blending. Both buffers must share the same alpha representation; the
// blend arithmetic follows b's. The source region is clipped to b's
// bounds, with negative offsets shifting the source sub-rectangle.
func (b *PixelBuffer) Draw(src *PixelBuffer, dx, dy int) {
	sx0, sy0, dx0, dy0, w, h := b.clipBlit(src, dx, dy)
	if w <= 0 || h <= 0 {
		return
	}
	blend := blendOverStraight
	if b.premultiplied {
		blend = blendOverPremul
	}
	for y := 0; y < h; y++ {
		srcRow := src.pix[src.index(sx0, sy0+y):src.index(sx0+w, sy0+y)]
		dstRow := b.pix[b.index(dx0, dy0+y):b.index(dx0+w, dy0+y)]
		for i, s := range srcRow {
			dstRow[i] = blend(s, dstRow[i])
		}
	}
}

// SwapRows exchanges two full rows. Out-of-range rows are ignored.
func (b *PixelBuffer) SwapRows(y0, y1 int) {
	if y0 == y1 || y0 < 0 || y1 < 0 || y0 >= b.height || y1 >= b.height {
		return
	}
	tmp := make([]Color, b.width)
	row0 := b.pix[b.index(0, y0):b.index(b.width, y0)]
	row1 := b.pix[b.index(0, y1):b.index(b.width, y1)]
	copy(tmp, row0)
	copy(row0, row1)
	copy(row1, tmp)
}

// ExtractChannel reads one 8-bit lane of every pixel into a fresh
// slice, row-major, for mask workflows.
func (b *PixelBuffer) ExtractChannel(ch Channel) []uint8 {
	pix := b.Pix()
	out := make([]uint8, len(pix))
	for i, c := range pix {
		out[i] = c.Channel(ch)
	}
	return out
}

// WriteChannel stores one 8-bit lane of every pixel from data without
// disturbing the other lanes. Extra entries in data are ignored; a
// short slice updates only the pixels it covers.
func (b *PixelBuffer) WriteChannel(ch Channel, data []uint8) {
	pix := b.Pix()
	n := min(len(pix), len(data))
	for i := 0; i < n; i++ {
		pix[i] = pix[i].WithChannel(ch, data[i])
	}
}

// Premultiply converts every pixel to premultiplied alpha in place.
// It is a no-op if the buffer is already premultiplied. The conversion
// rounds to 8 bits per channel and does not round-trip exactly except
// for fully opaque or fully transparent pixels.
func (b *PixelBuffer) Premultiply() {
	if b.premultiplied {
		return
	}
	pix := b.Pix()
	for i, c := range pix {
		pix[i] = c.Premultiply()
	}
	b.premultiplied = true
}

// Depremultiply converts every pixel to straight alpha in place.
// It is a no-op if the buffer already holds straight alpha.
func (b *PixelBuffer) Depremultiply() {
	if !b.premultiplied {
		return
	}
	pix := b.Pix()
	for i, c := range pix {
		pix[i] = c.Depremultiply()
	}
	b.premultiplied = false
}

// SubBuffer copies the given region, clamped to the buffer bounds, into
// a fresh buffer in the same alpha representation. Returns nil if the
// clamped region is empty.
func (b *PixelBuffer) SubBuffer(region image.Rectangle) *PixelBuffer {
	r := region.Intersect(b.Bounds())
	if r.Empty() {
		return nil
	}
	out := NewPixelBuffer(r.Dx(), r.Dy())
	out.premultiplied = b.premultiplied
	for y := 0; y < out.height; y++ {
		srcRow := b.pix[b.index(r.Min.X, r.Min.Y+y):b.index(r.Max.X, r.Min.Y+y)]
		copy(out.pix[out.index(0, y):out.index(out.width, y)], srcRow)
	}
	return out
}

// Clone returns a deep copy of the buffer, preserving the alpha
// representation. The clone is a distinct identity.
func (b *PixelBuffer) Clone() *PixelBuffer {
	out := NewPixelBuffer(b.width, b.height)
	out.premultiplied = b.premultiplied
	copy(out.pix, b.Pix())
	return out
}
