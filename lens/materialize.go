package lens

import (
	"github.com/gogpu/img/internal/logging"
	"github.com/gogpu/img/internal/parallel"
	"github.com/gogpu/img/primitive"
)

// Materialized is an eagerly evaluated view backed by a slice in row-major
// order.
//
// The backing slice is never modified after construction, so a
// *Materialized may be shared freely between branches of a chain and
// between goroutines. Repeated lookups of a point always return the same
// item.
type Materialized[T any] struct {
	size primitive.Size
	data []T
}

// FromSlice wraps data as a materialized view of size, taking ownership of
// it. It fails with ErrOutOfBounds when len(data) != size.Area().
func FromSlice[T any](size primitive.Size, data []T) (*Materialized[T], error) {
	if len(data) != size.Area() {
		return nil, ErrOutOfBounds
	}
	return &Materialized[T]{size: size, data: data}, nil
}

func (m *Materialized[T]) Size() primitive.Size { return m.size }

func (m *Materialized[T]) Look(p primitive.Point) (T, error) {
	if !m.size.Contains(p) {
		var zero T
		return zero, outOfBounds(p, m.size)
	}
	return m.data[p.Y()*m.size.Width()+p.X()], nil
}

// At returns the item at p without checking the domain.
// The caller guarantees that Size().Contains(p); otherwise At returns the
// item of another point or panics.
func (m *Materialized[T]) At(p primitive.Point) T {
	return m.data[p.Y()*m.size.Width()+p.X()]
}

// Items returns the backing slice in row-major order.
// It is shared, and callers must not modify it.
func (m *Materialized[T]) Items() []T { return m.data }

// Materialize evaluates every point of src once, in row-major order, and
// returns the results as a shareable snapshot. A src that is already
// materialized is returned as is.
//
// Materialize panics with ErrInvariant if src fails inside its domain.
func Materialize[T any](src View[T]) *Materialized[T] {
	if m, ok := src.(*Materialized[T]); ok {
		return m
	}
	size := src.Size()
	data := make([]T, size.Area())
	if err := fill(src, data, 0, len(data)); err != nil {
		panic(err)
	}
	return &Materialized[T]{size: size, data: data}
}

// MaterializePar is Materialize evaluated on up to workers goroutines.
// If workers is 0 or negative, GOMAXPROCS is used.
//
// The flat index range [0, area) is split into contiguous chunks of
// ceil(area/workers) points, one goroutine per chunk. Each goroutine writes
// only its own chunk, and all of them have returned before MaterializePar
// does. The result is identical to Materialize(src).
//
// src must be safe for concurrent Look calls. Views built only from the
// combinators in this package are, except those reading a [Swap] whose
// target changes during the call.
func MaterializePar[T any](src View[T], workers int) *Materialized[T] {
	if m, ok := src.(*Materialized[T]); ok {
		return m
	}
	size := src.Size()
	n := size.Area()
	workers = parallel.Workers(workers)

	logging.Logger().Debug("lens: materialize",
		"size", size,
		"workers", workers,
		"chunk", parallel.ChunkSize(n, workers))

	data := make([]T, n)
	err := parallel.For(n, workers, func(start, end int) error {
		return fill(src, data, start, end)
	})
	if err != nil {
		panic(err)
	}
	return &Materialized[T]{size: size, data: data}
}

// fill evaluates the points with flat indices [start, end) into data.
func fill[T any](src View[T], data []T, start, end int) error {
	size := src.Size()
	w := size.Width()
	for i := start; i < end; i++ {
		p := primitive.Pt(i%w, i/w)
		item, err := src.Look(p)
		if err != nil {
			return invariant(p, size, err)
		}
		data[i] = item
	}
	return nil
}
