package korim

import "image/color"

// Color is a packed 32-bit color in ARGB order: alpha in the top byte,
// then red, green, blue. Whether the RGB channels are premultiplied by
// alpha is not a property of the value itself; it is tracked by the
// PixelBuffer holding it.
type Color uint32

// Transparent is fully transparent black.
const Transparent Color = 0x00000000

// Channel identifies one 8-bit lane of a packed Color.
type Channel uint

const (
	// ChannelBlue is the low byte.
	ChannelBlue Channel = iota
	// ChannelGreen is bits 8-15.
	ChannelGreen
	// ChannelRed is bits 16-23.
	ChannelRed
	// ChannelAlpha is the top byte.
	ChannelAlpha
)

func (ch Channel) shift() uint { return uint(ch) * 8 }

// ColorARGB packs four 8-bit channels into a Color.
func ColorARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ColorRGB packs an opaque color from RGB channels.
func ColorRGB(r, g, b uint8) Color {
	return ColorARGB(255, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Channel returns the 8-bit lane selected by ch.
func (c Color) Channel(ch Channel) uint8 {
	return uint8(uint32(c) >> ch.shift())
}

// WithChannel returns c with the selected lane replaced by v, leaving
// the other three lanes untouched.
func (c Color) WithChannel(ch Channel, v uint8) Color {
	s := ch.shift()
	return Color(uint32(c)&^(0xff<<s) | uint32(v)<<s)
}

// FromColor converts a standard color.Color to a packed Color with
// straight (non-premultiplied) channels.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorARGB(n.A, n.R, n.G, n.B)
}

// NRGBA returns the color as a straight-alpha color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color, interpreting the channels as straight
// alpha (same semantics as color.NRGBA).
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// mul8 multiplies two 8-bit channel values with rounding.
func mul8(c, a uint32) uint32 {
	return (c*a + 127) / 255
}

// Premultiply scales the RGB channels by the alpha fraction.
// The conversion rounds to 8 bits and is lossy except for alpha 0 and 255.
func (c Color) Premultiply() Color {
	a := uint32(c.A())
	switch a {
	case 255:
		return c
	case 0:
		return Color(uint32(c) & 0xff000000)
	}
	r := mul8(uint32(c.R()), a)
	g := mul8(uint32(c.G()), a)
	b := mul8(uint32(c.B()), a)
	return Color(a<<24 | r<<16 | g<<8 | b)
}

// Depremultiply rescales premultiplied RGB channels back to straight
// alpha. Channels are clamped to 255 so that out-of-range premultiplied
// inputs cannot overflow neighboring lanes.
func (c Color) Depremultiply() Color {
	a := uint32(c.A())
	switch a {
	case 255:
		return c
	case 0:
		return Color(uint32(c) & 0xff000000)
	}
	r := min((uint32(c.R())*255+a/2)/a, 255)
	g := min((uint32(c.G())*255+a/2)/a, 255)
	b := min((uint32(c.B())*255+a/2)/a, 255)
	return Color(a<<24 | r<<16 | g<<8 | b)
}

// blendOverPremul composites src over dst where both colors carry
// premultiplied channels: out = src + dst*(1 - srcA).
func blendOverPremul(src, dst Color) Color {
	sa := uint32(src.A())
	if sa == 255 {
		return src
	}
	if sa == 0 {
		return dst
	}
	inv := 255 - sa
	a := sa + mul8(uint32(dst.A()), inv)
	r := uint32(src.R()) + mul8(uint32(dst.R()), inv)
	g := uint32(src.G()) + mul8(uint32(dst.G()), inv)
	b := uint32(src.B()) + mul8(uint32(dst.B()), inv)
	return ColorARGB(uint8(min(a, 255)), uint8(min(r, 255)), uint8(min(g, 255)), uint8(min(b, 255)))
}

// blendOverStraight composites src over dst with straight-alpha
// channels, the Porter-Duff source-over formula.
func blendOverStraight(src, dst Color) Color {
	sa := uint32(src.A())
	if sa == 255 {
		return src
	}
	if sa == 0 {
		return dst
	}
	da := uint32(dst.A())
	if da == 0 {
		return src
	}
	inv := 255 - sa
	dw := mul8(da, inv) // destination weight after src coverage
	outA := sa + dw
	if outA == 0 {
		return Transparent
	}
	r := (uint32(src.R())*sa + uint32(dst.R())*dw) / outA
	g := (uint32(src.G())*sa + uint32(dst.G())*dw) / outA
	b := (uint32(src.B())*sa + uint32(dst.B())*dw) / outA
	return ColorARGB(uint8(outA), uint8(min(r, 255)), uint8(min(g, 255)), uint8(min(b, 255)))
}

// lerp8 linearly interpolates between two 8-bit channel values.
// t is in [0, 256]: 0 yields c0, 256 yields c1.
func lerp8(c0, c1 uint8, t uint32) uint8 {
	return uint8((uint32(c0)*(256-t) + uint32(c1)*t) >> 8)
}

// lerpColor interpolates every channel of two colors independently.
func lerpColor(c0, c1 Color, t uint32) Color {
	return ColorARGB(
		lerp8(c0.A(), c1.A(), t),
		lerp8(c0.R(), c1.R(), t),
		lerp8(c0.G(), c1.G(), t),
		lerp8(c0.B(), c1.B(), t),
	)
}
