package primitive

import "fmt"

// Point is a non-negative 2D coordinate with both components below
// DimensionMax. The zero value is the origin.
type Point struct {
	x, y int
}

// NewPoint returns the point (x, y) or a validation error.
func NewPoint(x, y int) (Point, error) {
	switch {
	case x < 0:
		return Point{}, ErrPointXNegative
	case y < 0:
		return Point{}, ErrPointYNegative
	case x >= DimensionMax:
		return Point{}, ErrPointXTooBig
	case y >= DimensionMax:
		return Point{}, ErrPointYTooBig
	}
	return Point{x: x, y: y}, nil
}

// Pt is like NewPoint but panics on invalid input.
// Use it for literals whose validity is known at the call site.
func Pt(x, y int) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(fmt.Sprintf("primitive: Pt(%d, %d): %v", x, y, err))
	}
	return p
}

// PointFromIndex converts a row-major flat index into a point of size s.
// It returns ErrOutOfBounds when index is outside [0, s.Area()).
func PointFromIndex(index int, s Size) (Point, error) {
	if index < 0 || index >= s.Area() {
		return Point{}, ErrOutOfBounds
	}
	return Point{x: index % s.width, y: index / s.width}, nil
}

// X returns the horizontal coordinate.
func (p Point) X() int { return p.x }

// Y returns the vertical coordinate.
func (p Point) Y() int { return p.y }

// Index returns the row-major flat index y*width+x of p inside s.
// It returns ErrOutOfBounds when s does not contain p.
func (p Point) Index(s Size) (int, error) {
	if !s.Contains(p) {
		return 0, ErrOutOfBounds
	}
	return p.y*s.width + p.x, nil
}

// Translate moves p by o. It fails when the result is negative or too big.
func (p Point) Translate(o Offset) (Point, error) {
	return NewPoint(p.x+o.dx, p.y+o.dy)
}

// Add returns p moved right and down by q. It is Translate with a
// non-negative offset.
func (p Point) Add(q Point) (Point, error) {
	return NewPoint(p.x+q.x, p.y+q.y)
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Offset {
	return Offset{dx: p.x - q.x, dy: p.y - q.y}
}

// Compare orders points componentwise.
func (p Point) Compare(q Point) Ordering {
	return compare2(p.x, p.y, q.x, q.y)
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}
