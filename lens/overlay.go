package lens

import (
	"fmt"

	"github.com/gogpu/img/primitive"
)

type overlayView[T any] struct {
	base View[T]
	over View[T]
	area primitive.Area
}

// Overlay places over on top of base with its top-left corner at start.
//
// Points inside the overlay rectangle read over, translated into its local
// coordinates; all other points read base. The domain is base's.
//
// It returns ErrOverlayStart when base does not contain start and
// ErrOverlayTooBig when the rectangle does not fit inside base.
func Overlay[T any](base, over View[T], start primitive.Point) (View[T], error) {
	bs, os := base.Size(), over.Size()
	if !bs.Contains(start) {
		return nil, fmt.Errorf("%w: %v not in %v", ErrOverlayStart, start, bs)
	}
	if start.X()+os.Width() > bs.Width() || start.Y()+os.Height() > bs.Height() {
		return nil, fmt.Errorf("%w: %v at %v does not fit %v", ErrOverlayTooBig, os, start, bs)
	}
	area, err := primitive.NewArea(os, start)
	if err != nil {
		return nil, err
	}
	return &overlayView[T]{base: base, over: over, area: area}, nil
}

func (v *overlayView[T]) Size() primitive.Size { return v.base.Size() }

func (v *overlayView[T]) Look(p primitive.Point) (T, error) {
	if local, err := v.area.Local(p); err == nil {
		return v.over.Look(local)
	}
	return v.base.Look(p)
}
