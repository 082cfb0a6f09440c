package korim

// Mipmap returns the buffer downsampled by the given number of
// halvings. Each level halves width and height (flooring at 1 pixel)
// with a 2x2 box filter, reading from the previous level's pixels.
//
// Filtering runs on a private premultiplied working copy so that
// partially transparent pixels average correctly, and the result stays
// premultiplied regardless of the receiver's representation. Callers
// needing straight alpha must Depremultiply the result explicitly.
// The receiver itself is never modified.
func (b *PixelBuffer) Mipmap(levels int) *PixelBuffer {
	cur := b.Clone()
	cur.Premultiply()
	for ; levels > 0; levels-- {
		cur = downsample(cur)
	}
	return cur
}

// downsample produces a half-size premultiplied buffer via a 2x2 box
// filter with a +2 rounding bias. Odd trailing rows and columns repeat
// the edge sample, matching the clamped lookup.
func downsample(src *PixelBuffer) *PixelBuffer {
	dstW := max(1, src.width/2)
	dstH := max(1, src.height/2)
	dst := NewPixelBuffer(dstW, dstH)
	dst.premultiplied = true

	for dy := 0; dy < dstH; dy++ {
		sy := dy * 2
		sy1 := min(sy+1, src.height-1)
		for dx := 0; dx < dstW; dx++ {
			sx := dx * 2
			sx1 := min(sx+1, src.width-1)

			c0 := src.pix[src.index(sx, sy)]
			c1 := src.pix[src.index(sx1, sy)]
			c2 := src.pix[src.index(sx, sy1)]
			c3 := src.pix[src.index(sx1, sy1)]

			a := (uint32(c0.A()) + uint32(c1.A()) + uint32(c2.A()) + uint32(c3.A()) + 2) / 4
			r := (uint32(c0.R()) + uint32(c1.R()) + uint32(c2.R()) + uint32(c3.R()) + 2) / 4
			g := (uint32(c0.G()) + uint32(c1.G()) + uint32(c2.G()) + uint32(c3.G()) + 2) / 4
			bl := (uint32(c0.B()) + uint32(c1.B()) + uint32(c2.B()) + uint32(c3.B()) + 2) / 4

			dst.pix[dst.index(dx, dy)] = ColorARGB(uint8(a), uint8(r), uint8(g), uint8(bl))
		}
	}
	return dst
}
