package kernel

import (
	"fmt"
	"math"

	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// Quadrant identifies one of the four (r+1)² sub-windows of a Kuwahara
// window. Neighboring quadrants share the anchor's row or column.
type Quadrant uint8

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return fmt.Sprintf("Quadrant(%d)", q)
	}
}

// origin returns the top-left corner of quadrant q around anchor p.
func (q Quadrant) origin(p primitive.Point, radius int) (int, int) {
	x, y := p.X(), p.Y()
	if q == TopLeft || q == BottomLeft {
		x -= radius
	}
	if q == TopLeft || q == TopRight {
		y -= radius
	}
	return x, y
}

func checkKuwaharaRadius(radius int) (primitive.Margin, error) {
	if radius < 1 || radius > primitive.DimensionMax/2 {
		return primitive.Margin{}, fmt.Errorf("%w: kuwahara radius %d", ErrRadius, radius)
	}
	return primitive.UniformMargin(radius)
}

// QuadrantSelection is the first Kuwahara stage. For every point it computes
// the sample standard deviation of a brightness channel over each quadrant
// and selects the quadrant where it is smallest. Ties go to the quadrant
// listed first.
type QuadrantSelection struct {
	radius int
	margin primitive.Margin
}

// NewQuadrantSelection returns the selection stage for radius >= 1.
func NewQuadrantSelection(radius int) (*QuadrantSelection, error) {
	m, err := checkKuwaharaRadius(radius)
	if err != nil {
		return nil, err
	}
	return &QuadrantSelection{radius: radius, margin: m}, nil
}

func (k *QuadrantSelection) Margin() primitive.Margin { return k.margin }

func (k *QuadrantSelection) Apply(src lens.View[float32], p primitive.Point) (Quadrant, error) {
	best, bestDev := TopLeft, float32(math.Inf(1))
	for q := TopLeft; q <= BottomRight; q++ {
		dev, err := k.stdDev(src, p, q)
		if err != nil {
			return 0, err
		}
		if dev < bestDev {
			best, bestDev = q, dev
		}
	}
	return best, nil
}

func (k *QuadrantSelection) stdDev(src lens.View[float32], p primitive.Point, q Quadrant) (float32, error) {
	x0, y0 := q.origin(p, k.radius)
	side := k.radius + 1
	var sum, sumSq float64
	for y := y0; y < y0+side; y++ {
		for x := x0; x < x0+side; x++ {
			pt, err := primitive.NewPoint(x, y)
			if err != nil {
				return 0, err
			}
			v, err := src.Look(pt)
			if err != nil {
				return 0, err
			}
			sum += float64(v)
			sumSq += float64(v) * float64(v)
		}
	}
	n := float64(side * side)
	variance := (sumSq - sum*sum/n) / (n - 1)
	return float32(math.Sqrt(max(variance, 0))), nil
}

// QuadrantMean is the second Kuwahara stage. Its source pairs every point's
// selected quadrant with its pixel; it emits the mean RGB of the selected
// quadrant's pixels, rounded down, with the anchor's alpha.
type QuadrantMean struct {
	radius int
	margin primitive.Margin
}

// NewQuadrantMean returns the mean stage for radius >= 1.
func NewQuadrantMean(radius int) (*QuadrantMean, error) {
	m, err := checkKuwaharaRadius(radius)
	if err != nil {
		return nil, err
	}
	return &QuadrantMean{radius: radius, margin: m}, nil
}

func (k *QuadrantMean) Margin() primitive.Margin { return k.margin }

func (k *QuadrantMean) Apply(src lens.View[lens.Pair[Quadrant, pixel.Pixel]], p primitive.Point) (pixel.Pixel, error) {
	anchor, err := src.Look(p)
	if err != nil {
		return pixel.Pixel{}, err
	}
	x0, y0 := anchor.First.origin(p, k.radius)
	side := k.radius + 1

	var r, g, b int
	for y := y0; y < y0+side; y++ {
		for x := x0; x < x0+side; x++ {
			pt, err := primitive.NewPoint(x, y)
			if err != nil {
				return pixel.Pixel{}, err
			}
			item, err := src.Look(pt)
			if err != nil {
				return pixel.Pixel{}, err
			}
			r += int(item.Second.R())
			g += int(item.Second.G())
			b += int(item.Second.B())
		}
	}
	n := side * side
	return pixel.RGBA(uint8(r/n), uint8(g/n), uint8(b/n), anchor.Second.A()), nil
}
