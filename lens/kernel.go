package lens

import (
	"fmt"

	"github.com/gogpu/img/primitive"
)

// Kernel is a local-neighborhood operator producing an Out from the window
// of In items around a point.
//
// Margin declares how far the window reaches from its anchor point in each
// direction. Apply is only ever called with points p such that the whole
// window, from p minus the top-left margin to p plus the bottom-right margin,
// lies inside src, so implementations may read it without checking.
type Kernel[In, Out any] interface {
	Margin() primitive.Margin
	Apply(src View[In], p primitive.Point) (Out, error)
}

type kernelView[In, Out any] struct {
	src    View[In]
	kernel Kernel[In, Out]
	origin primitive.Point
	size   primitive.Size
}

// ApplyKernel returns the view of k evaluated over src.
//
// The domain is src's domain shrunk by k's margin: points whose window would
// leave src are excluded, not clamped. Output point p is the kernel applied
// at source point p + (left, top).
//
// It returns ErrKernelTooBigX or ErrKernelTooBigY when src cannot hold a
// single window.
func ApplyKernel[In, Out any](src View[In], k Kernel[In, Out]) (View[Out], error) {
	m := k.Margin()
	ss := src.Size()
	if m.Horizontal() >= ss.Width() {
		return nil, fmt.Errorf("%w: margin %v, source %v", ErrKernelTooBigX, m, ss)
	}
	if m.Vertical() >= ss.Height() {
		return nil, fmt.Errorf("%w: margin %v, source %v", ErrKernelTooBigY, m, ss)
	}
	size, err := ss.Shrink(m)
	if err != nil {
		return nil, err
	}
	return &kernelView[In, Out]{src: src, kernel: k, origin: m.TopLeft(), size: size}, nil
}

func (v *kernelView[In, Out]) Size() primitive.Size { return v.size }

func (v *kernelView[In, Out]) Look(p primitive.Point) (Out, error) {
	if !v.size.Contains(p) {
		var zero Out
		return zero, outOfBounds(p, v.size)
	}
	anchor, err := p.Add(v.origin)
	if err != nil {
		var zero Out
		return zero, err
	}
	return v.kernel.Apply(v.src, anchor)
}
