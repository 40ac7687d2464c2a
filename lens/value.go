package lens

import "github.com/gogpu/img/primitive"

type valueView[T any] struct {
	size primitive.Size
	v    T
}

// Value returns a view of size where every point yields v.
func Value[T any](size primitive.Size, v T) View[T] {
	return &valueView[T]{size: size, v: v}
}

func (v *valueView[T]) Size() primitive.Size { return v.size }

func (v *valueView[T]) Look(p primitive.Point) (T, error) {
	if !v.size.Contains(p) {
		var zero T
		return zero, outOfBounds(p, v.size)
	}
	return v.v, nil
}
