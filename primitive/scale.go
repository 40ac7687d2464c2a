package primitive

import (
	"fmt"
	"math"
)

// Scale is a pair of resize factors, each in [ScaleMin, ScaleMax].
type Scale struct {
	x, y float64
}

// NewScale validates both factors.
func NewScale(x, y float64) (Scale, error) {
	if err := checkFactor(x); err != nil {
		return Scale{}, fmt.Errorf("scale x: %w", err)
	}
	if err := checkFactor(y); err != nil {
		return Scale{}, fmt.Errorf("scale y: %w", err)
	}
	return Scale{x: x, y: y}, nil
}

func checkFactor(f float64) error {
	switch {
	case math.IsNaN(f):
		return ErrScaleNaN
	case math.IsInf(f, 0):
		return ErrScaleInfinite
	case f < ScaleMin:
		return ErrScaleTooSmall
	case f > ScaleMax:
		return ErrScaleTooBig
	}
	return nil
}

// ScaleBetween returns the scale that maps from onto to.
func ScaleBetween(from, to Size) (Scale, error) {
	return NewScale(float64(to.width)/float64(from.width), float64(to.height)/float64(from.height))
}

func (s Scale) X() float64 { return s.x }
func (s Scale) Y() float64 { return s.y }

// Inverse returns the reciprocal scale. Valid scales always have a valid
// inverse because the limits are reciprocal.
func (s Scale) Inverse() Scale {
	return Scale{x: 1 / s.x, y: 1 / s.y}
}

// ApplySize scales a size, rounding each side toward zero.
// Scaling 1x1 by 0.5 fails with ErrWidthZero instead of producing 0x0.
func (s Scale) ApplySize(size Size) (Size, error) {
	w := math.Floor(float64(size.width) * s.x)
	h := math.Floor(float64(size.height) * s.y)
	if w > DimensionMax {
		return Size{}, ErrWidthTooBig
	}
	if h > DimensionMax {
		return Size{}, ErrHeightTooBig
	}
	return NewSize(int(w), int(h))
}

// ApplyPoint scales a point, rounding each coordinate toward zero.
func (s Scale) ApplyPoint(p Point) (Point, error) {
	x := math.Floor(float64(p.x) * s.x)
	y := math.Floor(float64(p.y) * s.y)
	if x >= DimensionMax {
		return Point{}, ErrPointXTooBig
	}
	if y >= DimensionMax {
		return Point{}, ErrPointYTooBig
	}
	return Point{x: int(x), y: int(y)}, nil
}

// Compare orders scales componentwise.
func (s Scale) Compare(o Scale) Ordering {
	return compare2(s.x, s.y, o.x, o.y)
}

func (s Scale) String() string {
	return fmt.Sprintf("scale(%g, %g)", s.x, s.y)
}
