package lens

import "github.com/gogpu/img/primitive"

// Swap is a view that forwards to a replaceable target.
//
// It lets a chain be built once over the Swap and then evaluated against
// several sources in turn, for example one color channel after another.
//
// Swap is not safe for concurrent use: Set must not be called while any
// goroutine may be looking through the Swap, including during a
// MaterializePar of a chain that contains it. Parallel pipelines should
// build one chain per source instead.
type Swap[T any] struct {
	target View[T]
}

// NewSwap returns a Swap initially forwarding to target.
func NewSwap[T any](target View[T]) *Swap[T] {
	return &Swap[T]{target: target}
}

// Set replaces the target. Views already built over the Swap see the new
// target on their next lookup; sizes they cached at construction do not
// change, so the new target should have the same size as the old one.
func (s *Swap[T]) Set(target View[T]) { s.target = target }

func (s *Swap[T]) Size() primitive.Size { return s.target.Size() }

func (s *Swap[T]) Look(p primitive.Point) (T, error) { return s.target.Look(p) }
