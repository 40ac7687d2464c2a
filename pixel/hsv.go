package pixel

import "math"

// HSV is a pixel in hue/saturation/value form.
// Hue is in degrees [0, 360), saturation and value in [0, 1].
type HSV struct {
	H, S, V float32
	A       uint8
}

// ToHSV converts p to HSV. Alpha is carried over unchanged.
func ToHSV(p Pixel) HSV {
	r, g, b := p.RF32(), p.GF32(), p.BF32()
	cmax := max(r, g, b)
	delta := cmax - min(r, g, b)

	var h float32
	switch {
	case delta == 0:
		h = 0
	case r == cmax:
		h = 60 * float32(math.Mod(float64((g-b)/delta), 6))
	case g == cmax:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float32
	if cmax != 0 {
		s = delta / cmax
	}
	return HSV{H: h, S: s, V: cmax, A: p.A()}
}

// Value returns the HSV value (brightest channel) of p in [0, 1].
func Value(p Pixel) float32 {
	return max(p.RF32(), p.GF32(), p.BF32())
}

// Rec. 601 luma weights.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luma returns the Rec. 601 weighted brightness of p in [0, 255].
func Luma(p Pixel) uint8 {
	return ClampU8(LumaR*float32(p.R()) + LumaG*float32(p.G()) + LumaB*float32(p.B()))
}
