package filter

import (
	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
)

// ColorMatrix is a 4x5 color transformation:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channel values are in [0, 255]; the fifth column is a bias in the same
// range. Results are rounded and clamped.
type ColorMatrix [20]float32

// IdentityMatrix leaves every channel unchanged.
var IdentityMatrix = ColorMatrix{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// GrayscaleMatrix replaces R, G and B with the luma of the pixel.
var GrayscaleMatrix = ColorMatrix{
	pixel.LumaR, pixel.LumaG, pixel.LumaB, 0, 0,
	pixel.LumaR, pixel.LumaG, pixel.LumaB, 0, 0,
	pixel.LumaR, pixel.LumaG, pixel.LumaB, 0, 0,
	0, 0, 0, 1, 0,
}

// SepiaMatrix applies a warm brown tone.
var SepiaMatrix = ColorMatrix{
	0.393, 0.769, 0.189, 0, 0,
	0.349, 0.686, 0.168, 0, 0,
	0.272, 0.534, 0.131, 0, 0,
	0, 0, 0, 1, 0,
}

// NegativeMatrix inverts all four channels. Callers select which ones to
// keep with channel flags.
var NegativeMatrix = ColorMatrix{
	-1, 0, 0, 0, 255,
	0, -1, 0, 0, 255,
	0, 0, -1, 0, 255,
	0, 0, 0, -1, 255,
}

// Transform returns p transformed by m. Only channels selected by flags
// change.
func (m *ColorMatrix) Transform(p pixel.Pixel, flags pixel.ChannelFlags) pixel.Pixel {
	r, g, b, a := float32(p.R()), float32(p.G()), float32(p.B()), float32(p.A())
	out := pixel.Pixel{
		pixel.ClampU8(m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]),
		pixel.ClampU8(m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]),
		pixel.ClampU8(m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]),
		pixel.ClampU8(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]),
	}
	res := p
	res.SetWithFlags(out, flags)
	return res
}

// Color maps m over src.
func Color(src lens.View[pixel.Pixel], m ColorMatrix, flags pixel.ChannelFlags) lens.View[pixel.Pixel] {
	return lens.Map(src, func(p pixel.Pixel) pixel.Pixel {
		return m.Transform(p, flags)
	})
}

// Grayscale converts src to gray using luma weights. Alpha is kept.
func Grayscale(src lens.View[pixel.Pixel]) lens.View[pixel.Pixel] {
	return Color(src, GrayscaleMatrix, pixel.RGB)
}

// Sepia applies SepiaMatrix to src. Alpha is kept.
func Sepia(src lens.View[pixel.Pixel]) lens.View[pixel.Pixel] {
	return Color(src, SepiaMatrix, pixel.RGB)
}

// Negative inverts the channels of src selected by flags.
func Negative(src lens.View[pixel.Pixel], flags pixel.ChannelFlags) lens.View[pixel.Pixel] {
	return Color(src, NegativeMatrix, flags)
}
