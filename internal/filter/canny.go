package filter

import (
	"math"

	"github.com/gogpu/img/kernel"
	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// Canny parameters.
const (
	cannyBlurRadius = 2
	cannyBlurSigma  = 2

	// Edge strength thresholds, in gradient magnitude units.
	hysteresisLow  = 10
	hysteresisHigh = 20
)

var unitMargin, _ = primitive.UniformMargin(1)

// Canny detects edges in each color channel of src separately.
//
// The source is padded by two pixels and smoothed with a 5x5 Gaussian
// (sigma 2), then every channel goes through Sobel gradients, non-maximum
// suppression and hysteresis thresholding. Each stage is padded back by
// one pixel so the output has the size of src. Edge pixels are 255, the
// rest 0; alpha is kept.
//
// With a sequential Exec one channel chain is built and re-targeted through
// a lens.Swap for each channel; otherwise one chain per channel is built
// with lens.Channels for the caller to evaluate in parallel.
func Canny(src lens.View[pixel.Pixel], e Exec) (lens.View[pixel.Pixel], error) {
	m, err := primitive.UniformMargin(cannyBlurRadius)
	if err != nil {
		return nil, err
	}
	padded, err := lens.Border[pixel.Pixel](src, m, lens.PickPoint[pixel.Pixel]{})
	if err != nil {
		return nil, err
	}
	g, err := kernel.NewGaussian(cannyBlurRadius, cannyBlurSigma, pixel.RGB)
	if err != nil {
		return nil, err
	}
	blurred, err := lens.ApplyKernel[pixel.Pixel, pixel.Pixel](padded, g)
	if err != nil {
		return nil, err
	}
	snap := Materialize(e, blurred)

	if e.Sequential() {
		return cannySwap(snap)
	}
	return lens.Channels(snap, channelEdges, channelEdges, channelEdges, nil)
}

// cannySwap runs one channel chain over each color channel of snap in turn.
func cannySwap(snap *lens.Materialized[pixel.Pixel]) (lens.View[pixel.Pixel], error) {
	seam := lens.NewSwap(lens.Channel(snap, 0))
	chain, err := channelEdges(seam)
	if err != nil {
		return nil, err
	}

	out := make([]pixel.Pixel, snap.Size().Area())
	copy(out, snap.Items())
	for c := range 3 {
		seam.Set(lens.Channel(snap, c))
		for i, v := range lens.Materialize(chain).Items() {
			out[i][c] = v
		}
	}
	m, err := lens.FromSlice(snap.Size(), out)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// channelEdges builds the single-channel Canny chain. The result has the
// size of src.
func channelEdges(src lens.View[uint8]) (lens.View[uint8], error) {
	padded, err := lens.Border[uint8](src, unitMargin, lens.PickPoint[uint8]{})
	if err != nil {
		return nil, err
	}
	grad, err := lens.ApplyKernel[uint8, kernel.Gradient](padded, kernel.Sobel{})
	if err != nil {
		return nil, err
	}
	gradPadded, err := lens.Border[kernel.Gradient](grad, unitMargin, lens.PickPoint[kernel.Gradient]{})
	if err != nil {
		return nil, err
	}
	thin, err := suppress(gradPadded)
	if err != nil {
		return nil, err
	}
	thinPadded, err := lens.Border[float32](thin, unitMargin, lens.PickPoint[float32]{})
	if err != nil {
		return nil, err
	}
	return lens.ApplyKernel[float32, uint8](thinPadded, hysteresis{low: hysteresisLow, high: hysteresisHigh})
}

// polar is a gradient in magnitude/direction form.
type polar struct {
	mag, dir float32
}

func toPolar(g kernel.Gradient) polar {
	return polar{mag: g.Magnitude(), dir: g.Direction()}
}

// horizontal reports whether an edge with gradient direction dir is compared
// against its left and right neighbors rather than those above and below.
func horizontal(dir float32) bool {
	a := math.Mod(math.Abs(float64(dir)), math.Pi)
	if a > math.Pi/2 {
		a = math.Pi - a
	}
	return a < math.Pi/4
}

// suppress keeps a gradient magnitude only where it is strictly greater than
// both neighbors along the gradient direction. The result is smaller than
// src by one pixel on every side.
func suppress(src lens.View[kernel.Gradient]) (lens.View[float32], error) {
	size, err := src.Size().Shrink(unitMargin)
	if err != nil {
		return nil, err
	}
	return lens.Remap(lens.Map(src, toPolar), func(s lens.View[polar], p primitive.Point) (float32, error) {
		x, y := p.X()+1, p.Y()+1
		a, err := s.Look(primitive.Pt(x, y))
		if err != nil {
			return 0, err
		}
		bp, cp := primitive.Pt(x+1, y), primitive.Pt(x-1, y)
		if !horizontal(a.dir) {
			bp, cp = primitive.Pt(x, y+1), primitive.Pt(x, y-1)
		}
		b, err := s.Look(bp)
		if err != nil {
			return 0, err
		}
		c, err := s.Look(cp)
		if err != nil {
			return 0, err
		}
		if a.mag > b.mag && a.mag > c.mag {
			return a.mag, nil
		}
		return 0, nil
	}, size), nil
}

// hysteresis marks strong edges and weak edges touching a strong one.
type hysteresis struct {
	low, high float32
}

func (hysteresis) Margin() primitive.Margin { return unitMargin }

func (k hysteresis) Apply(src lens.View[float32], p primitive.Point) (uint8, error) {
	v, err := src.Look(p)
	if err != nil {
		return 0, err
	}
	switch {
	case v > k.high:
		return 255, nil
	case v < k.low:
		return 0, nil
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n, err := src.Look(primitive.Pt(p.X()+dx, p.Y()+dy))
			if err != nil {
				return 0, err
			}
			if n > k.high {
				return 255, nil
			}
		}
	}
	return 0, nil
}
