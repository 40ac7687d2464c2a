package lens

import (
	"errors"
	"fmt"

	"github.com/gogpu/img/primitive"
)

// ErrOutOfBounds is returned by Look for points outside a view's domain.
var ErrOutOfBounds = primitive.ErrOutOfBounds

// ErrInvariant marks a view that failed to produce an item for a point inside
// its own domain. It is only ever delivered through a panic.
var ErrInvariant = errors.New("lens: view failed inside its domain")

// Construction errors.
var (
	ErrOverlayStart  = errors.New("lens: overlay start out of bounds")
	ErrOverlayTooBig = errors.New("lens: overlay exceeds base")
	ErrKernelTooBigX = errors.New("lens: kernel wider than source")
	ErrKernelTooBigY = errors.New("lens: kernel taller than source")
	ErrBorderFill    = errors.New("lens: border fill point outside source")
)

func outOfBounds(p primitive.Point, s primitive.Size) error {
	return fmt.Errorf("lens: look %v in %v: %w", p, s, ErrOutOfBounds)
}

func invariant(p primitive.Point, s primitive.Size, err error) error {
	return fmt.Errorf("%w: look %v in %v: %w", ErrInvariant, p, s, err)
}

// Must returns v.Look(p) and panics with ErrInvariant if it fails.
// Use it only for points known to be inside v's domain.
func Must[T any](v View[T], p primitive.Point) T {
	item, err := v.Look(p)
	if err != nil {
		panic(invariant(p, v.Size(), err))
	}
	return item
}
