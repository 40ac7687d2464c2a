package primitive

import "fmt"

// Area is a Size positioned at a top-left Point.
type Area struct {
	size    Size
	topLeft Point
}

// NewArea positions size at topLeft. It fails when the bottom-right corner
// would fall outside the point range.
func NewArea(size Size, topLeft Point) (Area, error) {
	if size.width > DimensionMax-topLeft.x || size.height > DimensionMax-topLeft.y {
		return Area{}, ErrAreaTooBig
	}
	return Area{size: size, topLeft: topLeft}, nil
}

// AreaFromCroppedSize returns the area left inside size after removing the
// margin, positioned at the margin's top-left corner.
func AreaFromCroppedSize(size Size, m Margin) (Area, error) {
	inner, err := size.Shrink(m)
	if err != nil {
		return Area{}, err
	}
	return Area{size: inner, topLeft: m.TopLeft()}, nil
}

func (a Area) Size() Size { return a.size }

func (a Area) TopLeft() Point { return a.topLeft }

func (a Area) TopRight() Point {
	return Point{x: a.topLeft.x + a.size.width - 1, y: a.topLeft.y}
}

func (a Area) BottomLeft() Point {
	return Point{x: a.topLeft.x, y: a.topLeft.y + a.size.height - 1}
}

func (a Area) BottomRight() Point {
	return Point{x: a.topLeft.x + a.size.width - 1, y: a.topLeft.y + a.size.height - 1}
}

// Local translates p into the area's coordinate space.
// It returns ErrOutOfBounds when the area does not contain p.
func (a Area) Local(p Point) (Point, error) {
	local := Point{x: p.x - a.topLeft.x, y: p.y - a.topLeft.y}
	if local.x < 0 || local.y < 0 || !a.size.Contains(local) {
		return Point{}, ErrOutOfBounds
	}
	return local, nil
}

// Contains reports whether p lies inside the area.
func (a Area) Contains(p Point) bool {
	_, err := a.Local(p)
	return err == nil
}

func (a Area) String() string {
	return fmt.Sprintf("%v+%d+%d", a.size, a.topLeft.x, a.topLeft.y)
}
