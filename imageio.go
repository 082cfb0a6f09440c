package korim

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ColorModel implements image.Image. Straight-alpha buffers report
// color.NRGBA, premultiplied buffers color.RGBA.
func (b *PixelBuffer) ColorModel() color.Model {
	if b.premultiplied {
		return color.RGBAModel
	}
	return color.NRGBAModel
}

// At implements image.Image, honoring the buffer's alpha
// representation.
func (b *PixelBuffer) At(x, y int) color.Color {
	c := b.Get(x, y)
	if b.premultiplied {
		return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
	}
	return c.NRGBA()
}

// drawTarget adapts a straight-alpha PixelBuffer to draw.Image so the
// x/image/draw kernels can write into it.
type drawTarget struct {
	*PixelBuffer
}

func (t drawTarget) Set(x, y int, c color.Color) {
	t.PixelBuffer.Set(x, y, FromColor(c))
}

// FromImage copies an arbitrary image into a fresh straight-alpha
// buffer.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	b := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	xdraw.Draw(drawTarget{b}, b.Bounds(), img, bounds.Min, xdraw.Src)
	return b
}

// Image returns the buffer as a straight-alpha *image.NRGBA copy.
// Premultiplied buffers are converted through straight alpha; the
// buffer itself is not modified.
func (b *PixelBuffer) Image() *image.NRGBA {
	src := b
	if b.premultiplied {
		src = b.Clone()
		src.Depremultiply()
	}
	img := image.NewNRGBA(src.Bounds())
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			img.SetNRGBA(x, y, src.pix[src.index(x, y)].NRGBA())
		}
	}
	return img
}

// Resized returns the buffer rescaled to the given dimensions with
// bilinear filtering. Scaling runs in straight alpha (image.Image
// interop carries no premultiplied contract); the result is converted
// back to the receiver's representation.
func (b *PixelBuffer) Resized(width, height int) *PixelBuffer {
	src := b
	if b.premultiplied {
		src = b.Clone()
		src.Depremultiply()
	}
	dst := NewPixelBuffer(width, height)
	xdraw.BiLinear.Scale(drawTarget{dst}, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	if b.premultiplied {
		dst.Premultiply()
	}
	return dst
}
