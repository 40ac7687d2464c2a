package primitive

import "fmt"

// Size is a 2D extent with both sides in [1, DimensionMax].
//
// The zero value is not a valid Size; use NewSize.
type Size struct {
	width, height int
}

// NewSize returns a Size with the given width and height.
//
// Returns ErrWidthZero, ErrHeightZero, ErrWidthTooBig or ErrHeightTooBig
// when a side is out of range. Negative sides are reported as zero.
func NewSize(width, height int) (Size, error) {
	switch {
	case width > DimensionMax:
		return Size{}, ErrWidthTooBig
	case width <= 0:
		return Size{}, ErrWidthZero
	case height > DimensionMax:
		return Size{}, ErrHeightTooBig
	case height <= 0:
		return Size{}, ErrHeightZero
	}
	return Size{width: width, height: height}, nil
}

// MustSize is like NewSize but panics on invalid input.
// It is intended for constants and tests.
func MustSize(width, height int) Size {
	s, err := NewSize(width, height)
	if err != nil {
		panic(fmt.Sprintf("primitive: MustSize(%d, %d): %v", width, height, err))
	}
	return s
}

// SizeFromRadius returns the square window (2*radius+1) x (2*radius+1).
func SizeFromRadius(radius int) (Size, error) {
	if radius < 0 {
		return Size{}, ErrWidthZero
	}
	if radius > DimensionMax/2 {
		return Size{}, ErrWidthTooBig
	}
	d := 2*radius + 1
	return NewSize(d, d)
}

// Width returns the horizontal extent.
func (s Size) Width() int { return s.width }

// Height returns the vertical extent.
func (s Size) Height() int { return s.height }

// Area returns width*height.
func (s Size) Area() int { return s.width * s.height }

// Middle returns the center point, rounded down.
func (s Size) Middle() Point { return Point{x: s.width / 2, y: s.height / 2} }

// IsZero reports whether s is the zero (invalid) value.
func (s Size) IsZero() bool { return s.width == 0 && s.height == 0 }

// Contains reports whether p lies inside [0, width) x [0, height).
func (s Size) Contains(p Point) bool {
	return p.x < s.width && p.y < s.height
}

// Min returns the componentwise minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{width: min(s.width, o.width), height: min(s.height, o.height)}
}

// Compare orders sizes componentwise.
func (s Size) Compare(o Size) Ordering {
	return compare2(s.width, s.height, o.width, o.height)
}

// Shrink returns s with the margin removed from each edge.
// It fails when the result would have a zero side.
func (s Size) Shrink(m Margin) (Size, error) {
	h, v := m.Horizontal(), m.Vertical()
	if h >= s.width {
		return Size{}, ErrWidthZero
	}
	if v >= s.height {
		return Size{}, ErrHeightZero
	}
	return Size{width: s.width - h, height: s.height - v}, nil
}

// Extend returns s grown by the margin on each edge.
// It fails when the result would exceed DimensionMax.
func (s Size) Extend(m Margin) (Size, error) {
	if m.Horizontal() > DimensionMax-s.width {
		return Size{}, ErrWidthTooBig
	}
	if m.Vertical() > DimensionMax-s.height {
		return Size{}, ErrHeightTooBig
	}
	return Size{width: s.width + m.Horizontal(), height: s.height + m.Vertical()}, nil
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}
