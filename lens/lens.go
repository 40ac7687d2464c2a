package lens

import (
	"iter"

	"github.com/gogpu/img/primitive"
)

// View is a lazily evaluated, size-bounded, point-indexed 2D source of T.
//
// Look must succeed for every point inside Size and fail with an error
// wrapping ErrOutOfBounds for every point outside it.
type View[T any] interface {
	Size() primitive.Size
	Look(p primitive.Point) (T, error)
}

type funcView[T any] struct {
	size primitive.Size
	fn   func(primitive.Point) T
}

// Func returns a view of size whose items are computed by fn.
// fn is only called for points inside size.
func Func[T any](size primitive.Size, fn func(primitive.Point) T) View[T] {
	return &funcView[T]{size: size, fn: fn}
}

func (v *funcView[T]) Size() primitive.Size { return v.size }

func (v *funcView[T]) Look(p primitive.Point) (T, error) {
	if !v.size.Contains(p) {
		var zero T
		return zero, outOfBounds(p, v.size)
	}
	return v.fn(p), nil
}

// All returns an iterator over every point of v and its item, in row-major
// order. It panics with ErrInvariant if v fails inside its domain.
func All[T any](v View[T]) iter.Seq2[primitive.Point, T] {
	return func(yield func(primitive.Point, T) bool) {
		size := v.Size()
		for y := range size.Height() {
			for x := range size.Width() {
				p := primitive.Pt(x, y)
				if !yield(p, Must(v, p)) {
					return
				}
			}
		}
	}
}

// Points returns an iterator over the points of size in row-major order.
func Points(size primitive.Size) iter.Seq[primitive.Point] {
	return func(yield func(primitive.Point) bool) {
		for y := range size.Height() {
			for x := range size.Width() {
				if !yield(primitive.Pt(x, y)) {
					return
				}
			}
		}
	}
}
