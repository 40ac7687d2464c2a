package lens

import "github.com/gogpu/img/primitive"

type mapView[T, U any] struct {
	src View[T]
	fn  func(T) U
}

// Map returns a view applying fn to every item of src.
// The domain is unchanged.
func Map[T, U any](src View[T], fn func(T) U) View[U] {
	return &mapView[T, U]{src: src, fn: fn}
}

func (v *mapView[T, U]) Size() primitive.Size { return v.src.Size() }

func (v *mapView[T, U]) Look(p primitive.Point) (U, error) {
	item, err := v.src.Look(p)
	if err != nil {
		var zero U
		return zero, err
	}
	return v.fn(item), nil
}

type mapErrView[T, U any] struct {
	src View[T]
	fn  func(T) (U, error)
}

// MapErr is Map for fallible functions. fn must not fail for items of
// points inside the domain, or the view breaks its contract.
func MapErr[T, U any](src View[T], fn func(T) (U, error)) View[U] {
	return &mapErrView[T, U]{src: src, fn: fn}
}

func (v *mapErrView[T, U]) Size() primitive.Size { return v.src.Size() }

func (v *mapErrView[T, U]) Look(p primitive.Point) (U, error) {
	item, err := v.src.Look(p)
	if err != nil {
		var zero U
		return zero, err
	}
	return v.fn(item)
}

type remapView[T, U any] struct {
	src  View[T]
	fn   func(View[T], primitive.Point) (U, error)
	size primitive.Size
}

// Remap returns a view with domain size whose item at p is fn(src, p).
//
// fn is only called for points inside size and decides which source points
// to read; it is how resampling (crop, resize) and neighborhood operators not
// expressed as kernels are built. fn must succeed for every such point.
func Remap[T, U any](src View[T], fn func(src View[T], p primitive.Point) (U, error), size primitive.Size) View[U] {
	return &remapView[T, U]{src: src, fn: fn, size: size}
}

func (v *remapView[T, U]) Size() primitive.Size { return v.size }

func (v *remapView[T, U]) Look(p primitive.Point) (U, error) {
	if !v.size.Contains(p) {
		var zero U
		return zero, outOfBounds(p, v.size)
	}
	return v.fn(v.src, p)
}

type clonedView[T any] struct {
	src View[*T]
}

// Cloned turns a view of pointers into a view of the values they point to.
// Each Look copies the item, so later writes through the pointer do not
// affect values already returned.
func Cloned[T any](src View[*T]) View[T] {
	return &clonedView[T]{src: src}
}

func (v *clonedView[T]) Size() primitive.Size { return v.src.Size() }

func (v *clonedView[T]) Look(p primitive.Point) (T, error) {
	ref, err := v.src.Look(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return *ref, nil
}
