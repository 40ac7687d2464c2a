package lens

import (
	"fmt"

	"github.com/gogpu/img/primitive"
)

// BorderFill decides what a Border view yields in the ring it adds around
// its source.
type BorderFill[T any] interface {
	// Check reports whether the policy can serve a source of the given size.
	Check(src primitive.Size) error

	// Fill returns the item for outer, a point of the ring, given in the
	// border view's coordinates. inner is where the source starts.
	Fill(src View[T], outer primitive.Point, inner primitive.Area) (T, error)
}

// PickPoint fills the ring with the source item at a fixed point.
// PickPoint[T]{} uses the source origin.
type PickPoint[T any] struct {
	At primitive.Point
}

func (f PickPoint[T]) Check(src primitive.Size) error {
	if !src.Contains(f.At) {
		return fmt.Errorf("%w: %v not in %v", ErrBorderFill, f.At, src)
	}
	return nil
}

func (f PickPoint[T]) Fill(src View[T], _ primitive.Point, _ primitive.Area) (T, error) {
	return src.Look(f.At)
}

// ClampEdge fills the ring with the nearest source item, extending edge rows
// and columns outward.
type ClampEdge[T any] struct{}

func (ClampEdge[T]) Check(primitive.Size) error { return nil }

func (ClampEdge[T]) Fill(src View[T], outer primitive.Point, inner primitive.Area) (T, error) {
	tl, br := inner.TopLeft(), inner.BottomRight()
	x := min(max(outer.X(), tl.X()), br.X()) - tl.X()
	y := min(max(outer.Y(), tl.Y()), br.Y()) - tl.Y()
	return src.Look(primitive.Pt(x, y))
}

// Constant fills the ring with a fixed value.
type Constant[T any] struct {
	Value T
}

func (Constant[T]) Check(primitive.Size) error { return nil }

func (f Constant[T]) Fill(View[T], primitive.Point, primitive.Area) (T, error) {
	return f.Value, nil
}

type borderView[T any] struct {
	src   View[T]
	fill  BorderFill[T]
	inner primitive.Area
	size  primitive.Size
}

// Border extends src by m on every edge. Points of the inner area are
// delegated to src; points of the added ring are resolved by fill.
func Border[T any](src View[T], m primitive.Margin, fill BorderFill[T]) (View[T], error) {
	if err := fill.Check(src.Size()); err != nil {
		return nil, err
	}
	size, err := src.Size().Extend(m)
	if err != nil {
		return nil, fmt.Errorf("lens: border %v: %w", m, err)
	}
	inner, err := primitive.NewArea(src.Size(), m.TopLeft())
	if err != nil {
		return nil, fmt.Errorf("lens: border %v: %w", m, err)
	}
	return &borderView[T]{src: src, fill: fill, inner: inner, size: size}, nil
}

func (v *borderView[T]) Size() primitive.Size { return v.size }

func (v *borderView[T]) Look(p primitive.Point) (T, error) {
	if !v.size.Contains(p) {
		var zero T
		return zero, outOfBounds(p, v.size)
	}
	if local, err := v.inner.Local(p); err == nil {
		return v.src.Look(local)
	}
	return v.fill.Fill(v.src, p, v.inner)
}

// ValueBorder extends src by m, filling the added ring with value. It is an
// Overlay of src on a Value view of the extended size.
func ValueBorder[T any](src View[T], m primitive.Margin, value T) (View[T], error) {
	size, err := src.Size().Extend(m)
	if err != nil {
		return nil, fmt.Errorf("lens: border %v: %w", m, err)
	}
	return Overlay(Value(size, value), src, m.TopLeft())
}
