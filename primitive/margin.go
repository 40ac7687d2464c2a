package primitive

import "fmt"

// Margin holds four non-negative edge widths.
//
// A kernel's margin is the part of its source that cannot be the center of a
// full window; a border's margin is the ring added around its source.
type Margin struct {
	top, right, bottom, left int
}

// NewMargin returns a margin with the given edges, in CSS order.
// Each edge must be in [0, DimensionMax].
func NewMargin(top, right, bottom, left int) (Margin, error) {
	for _, v := range [...]int{top, right, bottom, left} {
		if v < 0 || v > DimensionMax {
			return Margin{}, ErrMarginTooBig
		}
	}
	return Margin{top: top, right: right, bottom: bottom, left: left}, nil
}

// UniformMargin returns a margin with all four edges equal to n.
func UniformMargin(n int) (Margin, error) {
	return NewMargin(n, n, n, n)
}

// MarginFromWindow returns the margin of a window whose anchor is its center.
// For even sides the extra row or column goes to the top and left.
func MarginFromWindow(window Size) Margin {
	return Margin{
		top:    window.height / 2,
		right:  window.width - 1 - window.width/2,
		bottom: window.height - 1 - window.height/2,
		left:   window.width / 2,
	}
}

func (m Margin) Top() int    { return m.top }
func (m Margin) Right() int  { return m.right }
func (m Margin) Bottom() int { return m.bottom }
func (m Margin) Left() int   { return m.left }

// Horizontal returns left+right.
func (m Margin) Horizontal() int { return m.left + m.right }

// Vertical returns top+bottom.
func (m Margin) Vertical() int { return m.top + m.bottom }

// TopLeft returns the point (left, top), where an inner area starts.
func (m Margin) TopLeft() Point { return Point{x: m.left, y: m.top} }

// IsZero reports whether all edges are zero.
func (m Margin) IsZero() bool { return m == Margin{} }

func (m Margin) String() string {
	return fmt.Sprintf("margin(%d %d %d %d)", m.top, m.right, m.bottom, m.left)
}
