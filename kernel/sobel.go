package kernel

import (
	"math"

	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/primitive"
)

var (
	sobelX = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// Gradient is a 2D intensity gradient.
type Gradient struct {
	X, Y int
}

// Magnitude returns the Euclidean length of the gradient.
func (g Gradient) Magnitude() float32 {
	return float32(math.Hypot(float64(g.X), float64(g.Y)))
}

// Direction returns the gradient angle in radians, atan2(Y, X).
func (g Gradient) Direction() float32 {
	return float32(math.Atan2(float64(g.Y), float64(g.X)))
}

// Sobel computes the 3x3 Sobel gradient of a single channel.
type Sobel struct{}

var sobelMargin, _ = primitive.UniformMargin(1)

func (Sobel) Margin() primitive.Margin { return sobelMargin }

func (Sobel) Apply(src lens.View[uint8], p primitive.Point) (Gradient, error) {
	var g Gradient
	for j := range 3 {
		for i := range 3 {
			q, err := primitive.NewPoint(p.X()+i-1, p.Y()+j-1)
			if err != nil {
				return Gradient{}, err
			}
			v, err := src.Look(q)
			if err != nil {
				return Gradient{}, err
			}
			g.X += sobelX[j][i] * int(v)
			g.Y += sobelY[j][i] * int(v)
		}
	}
	return g, nil
}
