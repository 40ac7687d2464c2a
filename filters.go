package img

import (
	"github.com/gogpu/img/internal/filter"
	"github.com/gogpu/img/internal/logging"
	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// DefaultKuwaharaRadius is the radius used by the CLI when none is given.
const DefaultKuwaharaRadius = filter.DefaultKuwaharaRadius

func logFilter(name string, v lens.View[pixel.Pixel]) {
	logging.Logger().Debug("img: filter", "name", name, "size", v.Size())
}

func run(name string, v lens.View[pixel.Pixel], err error, o options) (*Image, error) {
	if err != nil {
		return nil, err
	}
	logFilter(name, v)
	return fromView(v, o), nil
}

// Grayscale converts im to gray using Rec. 601 luma weights.
func Grayscale(im *Image, opts ...Option) *Image {
	v := filter.Grayscale(im.View())
	logFilter("grayscale", v)
	return fromView(v, applyOptions(opts))
}

// Sepia applies a sepia tone to im.
func Sepia(im *Image, opts ...Option) *Image {
	v := filter.Sepia(im.View())
	logFilter("sepia", v)
	return fromView(v, applyOptions(opts))
}

// Negative inverts the channels of im selected by flags.
func Negative(im *Image, flags pixel.ChannelFlags, opts ...Option) *Image {
	v := filter.Negative(im.View(), flags)
	logFilter("negative", v)
	return fromView(v, applyOptions(opts))
}

// Gamma raises the normalized channels selected by flags to the power
// gamma.
func Gamma(im *Image, gamma float64, flags pixel.ChannelFlags, opts ...Option) (*Image, error) {
	v, err := filter.Gamma(im.View(), gamma, flags)
	return run("gamma", v, err, applyOptions(opts))
}

// BlurMean box-blurs the channels selected by flags.
// The result is smaller than im by 2*radius on each axis; it fails with
// ErrRadiusTooBig when the window does not fit.
func BlurMean(im *Image, radius int, flags pixel.ChannelFlags, opts ...Option) (*Image, error) {
	v, err := filter.BlurMean(im.View(), radius, flags)
	return run("blur mean", v, err, applyOptions(opts))
}

// BlurGaussian blurs the channels selected by flags with Gaussian weights.
// The result is smaller than im by 2*radius on each axis.
func BlurGaussian(im *Image, radius int, sigma float32, flags pixel.ChannelFlags, opts ...Option) (*Image, error) {
	v, err := filter.BlurGaussian(im.View(), radius, sigma, flags)
	return run("blur gaussian", v, err, applyOptions(opts))
}

// Crop returns the size-sized part of im whose top-left corner is at.
func Crop(im *Image, size primitive.Size, at primitive.Point, opts ...Option) (*Image, error) {
	v, err := filter.Crop(im.View(), size, at)
	return run("crop", v, err, applyOptions(opts))
}

// Resize scales im to size using the interpolation set by
// WithInterpolation (Nearest by default).
func Resize(im *Image, size primitive.Size, opts ...Option) (*Image, error) {
	o := applyOptions(opts)
	v, err := filter.Resize(im.View(), size, o.interp)
	return run("resize", v, err, o)
}

// Canny marks the edges of every color channel of im: 255 on an edge, 0
// elsewhere. Alpha is kept.
func Canny(im *Image, opts ...Option) (*Image, error) {
	o := applyOptions(opts)
	v, err := filter.Canny(im.View(), o.exec())
	return run("canny", v, err, o)
}

// Kuwahara applies the Kuwahara filter with the given radius, which must be
// at least 1.
func Kuwahara(im *Image, radius int, opts ...Option) (*Image, error) {
	o := applyOptions(opts)
	v, err := filter.Kuwahara(im.View(), radius, o.exec())
	return run("kuwahara", v, err, o)
}
