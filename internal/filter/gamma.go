package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
)

// gammaLUT maps every byte value v to round(255 * (v/255)^gamma).
type gammaLUT [256]uint8

func newGammaLUT(gamma float64) *gammaLUT {
	var lut gammaLUT
	for i := range lut {
		lut[i] = pixel.FromF32(float32(math.Pow(float64(i)/255, gamma)))
	}
	return &lut
}

// Gamma raises the normalized value of every channel selected by flags to
// the power gamma. Gamma 1 is the identity; gamma 0 maps every selected
// channel to 255.
func Gamma(src lens.View[pixel.Pixel], gamma float64, flags pixel.ChannelFlags) (lens.View[pixel.Pixel], error) {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma < 0 {
		return nil, fmt.Errorf("%w: %v", ErrGamma, gamma)
	}
	lut := newGammaLUT(gamma)
	return lens.Map(src, func(p pixel.Pixel) pixel.Pixel {
		for i := range pixel.Size {
			if flags.Index(i) {
				p[i] = lut[p[i]]
			}
		}
		return p
	}), nil
}
