package kernel

import (
	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/primitive"
)

// Identity is the kernel with an empty window; it yields its source item.
type Identity[T any] struct{}

func (Identity[T]) Margin() primitive.Margin { return primitive.Margin{} }

func (Identity[T]) Apply(src lens.View[T], p primitive.Point) (T, error) {
	return src.Look(p)
}
