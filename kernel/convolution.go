package kernel

import (
	"fmt"
	"math"

	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// Convolution computes a weighted sum of the pixels in a window.
//
// Weights are laid out row-major over the window and applied flipped: the
// weight at window point k reads the source at p + Middle() - k, so the
// top-left weight pairs with the bottom-right neighbor. For even windows the
// flip is taken about the margin so every read stays inside the window's
// footprint. Sums are taken over normalized channel values and
// written back with rounding and clamping. Only the R, G and B channels
// selected by the kernel's flags are replaced; the other channels and alpha
// are copied from the anchor pixel.
type Convolution struct {
	window  primitive.Size
	margin  primitive.Margin
	weights []float32
	flags   pixel.ChannelFlags
}

// NewConvolution returns a convolution kernel over window.
// It returns ErrWeightsLength when len(weights) != window.Area().
// The weights slice is copied.
func NewConvolution(window primitive.Size, weights []float32, flags pixel.ChannelFlags) (*Convolution, error) {
	if len(weights) != window.Area() {
		return nil, fmt.Errorf("%w: %d weights for %v", ErrWeightsLength, len(weights), window)
	}
	return &Convolution{
		window:  window,
		margin:  primitive.MarginFromWindow(window),
		weights: append([]float32(nil), weights...),
		flags:   flags & pixel.RGB,
	}, nil
}

// Window returns the kernel's window size.
func (k *Convolution) Window() primitive.Size { return k.window }

// Weights returns a copy of the weight table.
func (k *Convolution) Weights() []float32 { return append([]float32(nil), k.weights...) }

// Flags returns the channels the kernel writes.
func (k *Convolution) Flags() pixel.ChannelFlags { return k.flags }

func (k *Convolution) Margin() primitive.Margin { return k.margin }

func (k *Convolution) Apply(src lens.View[pixel.Pixel], p primitive.Point) (pixel.Pixel, error) {
	anchor, err := src.Look(p)
	if err != nil {
		return pixel.Pixel{}, err
	}
	x0, y0 := p.X()+k.margin.Right(), p.Y()+k.margin.Bottom()
	w := k.window.Width()

	var r, g, b float32
	for i, weight := range k.weights {
		q, err := primitive.NewPoint(x0-i%w, y0-i/w)
		if err != nil {
			return pixel.Pixel{}, err
		}
		px, err := src.Look(q)
		if err != nil {
			return pixel.Pixel{}, err
		}
		r += weight * px.RF32()
		g += weight * px.GF32()
		b += weight * px.BF32()
	}

	out := anchor
	out.SetWithFlagsF32([4]float32{r, g, b, 0}, k.flags)
	return out, nil
}

// NewGaussian returns a Gaussian blur over the (2*radius+1)² window.
//
// Weights are samples of the 2D normal density with standard deviation
// sigma, centered on the anchor. They are not renormalized, so they sum to
// slightly less than one when the window cuts off the tails.
func NewGaussian(radius int, sigma float32, flags pixel.ChannelFlags) (*Convolution, error) {
	if !(sigma > 0) || math.IsInf(float64(sigma), 0) {
		return nil, fmt.Errorf("%w: %v", ErrSigma, sigma)
	}
	window, err := primitive.SizeFromRadius(radius)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrRadius, radius, err)
	}
	return NewConvolution(window, GaussianWeights(radius, sigma), flags)
}

// GaussianWeights samples exp(-(x²+y²)/(2σ²)) / (2πσ²) for x, y in
// [-radius, radius], row-major.
func GaussianWeights(radius int, sigma float32) []float32 {
	d := 2*radius + 1
	s2 := 2 * float64(sigma) * float64(sigma)
	norm := 1 / (math.Pi * s2)
	weights := make([]float32, 0, d*d)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			weights = append(weights, float32(norm*math.Exp(-float64(x*x+y*y)/s2)))
		}
	}
	return weights
}
