package primitive

import "fmt"

// Offset is a signed displacement with components in
// (-DimensionMax, DimensionMax).
type Offset struct {
	dx, dy int
}

// NewOffset returns the displacement (dx, dy) or ErrOffsetTooBig.
func NewOffset(dx, dy int) (Offset, error) {
	if dx <= -DimensionMax || dx >= DimensionMax || dy <= -DimensionMax || dy >= DimensionMax {
		return Offset{}, ErrOffsetTooBig
	}
	return Offset{dx: dx, dy: dy}, nil
}

// OffsetOf returns the displacement from the origin to p.
func OffsetOf(p Point) Offset { return Offset{dx: p.x, dy: p.y} }

// DX returns the horizontal displacement.
func (o Offset) DX() int { return o.dx }

// DY returns the vertical displacement.
func (o Offset) DY() int { return o.dy }

// Neg returns the opposite displacement.
func (o Offset) Neg() Offset { return Offset{dx: -o.dx, dy: -o.dy} }

// Add sums two displacements. It fails when the result leaves the valid range.
func (o Offset) Add(q Offset) (Offset, error) {
	return NewOffset(o.dx+q.dx, o.dy+q.dy)
}

func (o Offset) String() string {
	return fmt.Sprintf("(%+d, %+d)", o.dx, o.dy)
}
