package filter

import (
	"fmt"

	"github.com/gogpu/img/kernel"
	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// checkBlurRadius reports whether a (2r+1)² window fits inside size.
func checkBlurRadius(size primitive.Size, radius int) error {
	d := 2*radius + 1
	if size.Width() < d || size.Height() < d {
		return fmt.Errorf("%w: radius %d, image %v", ErrRadiusTooBig, radius, size)
	}
	return nil
}

// BlurMean replaces the channels selected by flags with the mean of the
// (2r+1)² window around each pixel.
//
// The output is smaller than src by 2r on each axis: output pixel p is the
// window centered on source pixel p + (r, r). Pad the source first to keep
// the size.
func BlurMean(src lens.View[pixel.Pixel], radius int, flags pixel.ChannelFlags) (lens.View[pixel.Pixel], error) {
	k, err := kernel.NewMean(radius, flags)
	if err != nil {
		return nil, err
	}
	if err := checkBlurRadius(src.Size(), radius); err != nil {
		return nil, err
	}
	return lens.ApplyKernel[pixel.Pixel, pixel.Pixel](src, k)
}

// BlurGaussian is BlurMean with Gaussian weights of standard deviation
// sigma.
func BlurGaussian(src lens.View[pixel.Pixel], radius int, sigma float32, flags pixel.ChannelFlags) (lens.View[pixel.Pixel], error) {
	k, err := kernel.NewGaussian(radius, sigma, flags)
	if err != nil {
		return nil, err
	}
	if err := checkBlurRadius(src.Size(), radius); err != nil {
		return nil, err
	}
	return lens.ApplyKernel[pixel.Pixel, pixel.Pixel](src, k)
}
