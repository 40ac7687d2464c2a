// Package pixel defines the fixed 4-channel 8-bit RGBA pixel used throughout
// the image engine, the channel flag set used for masked writes, and a few
// color space helpers.
package pixel

import "fmt"

// Size is the number of bytes in one pixel.
const Size = 4

// Pixel is a non-premultiplied RGBA color, one byte per channel.
//
// A Pixel value is immutable by construction. A *Pixel obtained from an image
// buffer aliases the buffer's bytes, so writes through it are visible in the
// image.
type Pixel [Size]uint8

// RGBA returns a pixel with the given channels.
func RGBA(r, g, b, a uint8) Pixel { return Pixel{r, g, b, a} }

// Zero is the fully transparent black pixel.
var Zero Pixel

// R returns the red channel.
func (p Pixel) R() uint8 { return p[0] }

// G returns the green channel.
func (p Pixel) G() uint8 { return p[1] }

// B returns the blue channel.
func (p Pixel) B() uint8 { return p[2] }

// A returns the alpha channel.
func (p Pixel) A() uint8 { return p[3] }

// RF32 returns the red channel scaled to [0, 1].
func (p Pixel) RF32() float32 { return toF32(p[0]) }

// GF32 returns the green channel scaled to [0, 1].
func (p Pixel) GF32() float32 { return toF32(p[1]) }

// BF32 returns the blue channel scaled to [0, 1].
func (p Pixel) BF32() float32 { return toF32(p[2]) }

// AF32 returns the alpha channel scaled to [0, 1].
func (p Pixel) AF32() float32 { return toF32(p[3]) }

// F32 returns all four channels scaled to [0, 1].
func (p Pixel) F32() [4]float32 {
	return [4]float32{toF32(p[0]), toF32(p[1]), toF32(p[2]), toF32(p[3])}
}

// Channel returns the channel at index i (0 red, 3 alpha).
func (p Pixel) Channel(i int) uint8 { return p[i] }

func (p *Pixel) SetR(v uint8) { p[0] = v }
func (p *Pixel) SetG(v uint8) { p[1] = v }
func (p *Pixel) SetB(v uint8) { p[2] = v }
func (p *Pixel) SetA(v uint8) { p[3] = v }

// SetRF32 stores v*255, rounded and clamped to [0, 255].
func (p *Pixel) SetRF32(v float32) { p[0] = FromF32(v) }

// SetGF32 stores v*255, rounded and clamped to [0, 255].
func (p *Pixel) SetGF32(v float32) { p[1] = FromF32(v) }

// SetBF32 stores v*255, rounded and clamped to [0, 255].
func (p *Pixel) SetBF32(v float32) { p[2] = FromF32(v) }

// SetAF32 stores v*255, rounded and clamped to [0, 255].
func (p *Pixel) SetAF32(v float32) { p[3] = FromF32(v) }

// SetWithFlags copies the channels of v selected by flags into p.
// Unselected channels keep their current value.
func (p *Pixel) SetWithFlags(v Pixel, flags ChannelFlags) {
	for i, f := range channelOrder {
		if flags&f != 0 {
			p[i] = v[i]
		}
	}
}

// SetWithFlagsF32 is SetWithFlags for normalized channel values.
func (p *Pixel) SetWithFlagsF32(v [4]float32, flags ChannelFlags) {
	for i, f := range channelOrder {
		if flags&f != 0 {
			p[i] = FromF32(v[i])
		}
	}
}

// String formats the pixel as "rgba(r, g, b, a)".
func (p Pixel) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", p[0], p[1], p[2], p[3])
}

func toF32(v uint8) float32 { return float32(v) / 255.0 }

// FromF32 maps v in [0, 1] to [0, 255] with rounding.
// Values outside the range are clamped; NaN maps to 0.
func FromF32(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// ClampU8 rounds v to the nearest integer and clamps it to [0, 255].
func ClampU8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
