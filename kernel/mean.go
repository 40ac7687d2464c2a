package kernel

import (
	"fmt"

	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// Mean is a box filter: every output channel is the arithmetic mean of that
// channel over the (2*radius+1)² window, rounded to the nearest integer.
//
// It is equivalent to a Convolution with all weights 1/area but sums in
// integers, so the result is exact.
type Mean struct {
	radius int
	window primitive.Size
	margin primitive.Margin
	flags  pixel.ChannelFlags
}

// NewMean returns a mean kernel. Radius must be non-negative.
func NewMean(radius int, flags pixel.ChannelFlags) (*Mean, error) {
	window, err := primitive.SizeFromRadius(radius)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrRadius, radius, err)
	}
	return &Mean{
		radius: radius,
		window: window,
		margin: primitive.MarginFromWindow(window),
		flags:  flags & pixel.RGB,
	}, nil
}

// Convolution returns the equivalent weighted kernel.
func (k *Mean) Convolution() *Convolution {
	weights := make([]float32, k.window.Area())
	for i := range weights {
		weights[i] = 1 / float32(len(weights))
	}
	c, _ := NewConvolution(k.window, weights, k.flags)
	return c
}

func (k *Mean) Margin() primitive.Margin { return k.margin }

func (k *Mean) Apply(src lens.View[pixel.Pixel], p primitive.Point) (pixel.Pixel, error) {
	anchor, err := src.Look(p)
	if err != nil {
		return pixel.Pixel{}, err
	}
	var sum [3]uint64
	for y := p.Y() - k.radius; y <= p.Y()+k.radius; y++ {
		for x := p.X() - k.radius; x <= p.X()+k.radius; x++ {
			q, err := primitive.NewPoint(x, y)
			if err != nil {
				return pixel.Pixel{}, err
			}
			px, err := src.Look(q)
			if err != nil {
				return pixel.Pixel{}, err
			}
			sum[0] += uint64(px.R())
			sum[1] += uint64(px.G())
			sum[2] += uint64(px.B())
		}
	}
	n := uint64(k.window.Area())
	mean := pixel.Pixel{
		uint8((sum[0] + n/2) / n),
		uint8((sum[1] + n/2) / n),
		uint8((sum[2] + n/2) / n),
	}
	out := anchor
	out.SetWithFlags(mean, k.flags)
	return out, nil
}
