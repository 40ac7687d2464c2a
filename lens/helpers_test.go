package lens

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// cmpPoint compares points, whose fields are unexported.
var cmpPoint = cmp.Comparer(func(a, b primitive.Point) bool { return a == b })

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// checkView verifies that Look succeeds exactly inside Size, fails with
// ErrOutOfBounds outside it, and returns the same item on repeated lookups.
func checkView[T comparable](t *testing.T, v View[T]) {
	t.Helper()
	s := v.Size()
	for y := range s.Height() + 3 {
		for x := range s.Width() + 3 {
			p := primitive.Pt(x, y)
			first, err := v.Look(p)
			if !s.Contains(p) {
				if !errors.Is(err, ErrOutOfBounds) {
					t.Fatalf("Look(%v) outside %v error = %v, want ErrOutOfBounds", p, s, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("Look(%v) inside %v error = %v", p, s, err)
			}
			second, err := v.Look(p)
			if err != nil || second != first {
				t.Fatalf("Look(%v) = %v then %v, %v", p, first, second, err)
			}
		}
	}
}

// gradient returns a pixel view whose items encode their coordinates.
func gradient(w, h int) View[pixel.Pixel] {
	return Func(primitive.MustSize(w, h), func(p primitive.Point) pixel.Pixel {
		return pixel.RGBA(uint8(p.X()), uint8(p.Y()), uint8(p.X()*p.Y()), 255)
	})
}

// coords returns a view whose items are their own points.
func coords(w, h int) View[primitive.Point] {
	return Func(primitive.MustSize(w, h), func(p primitive.Point) primitive.Point { return p })
}

// brokenView fails at one point inside its domain.
type brokenView struct {
	size primitive.Size
	bad  primitive.Point
}

var errBroken = errors.New("broken")

func (v brokenView) Size() primitive.Size { return v.size }

func (v brokenView) Look(p primitive.Point) (int, error) {
	if !v.size.Contains(p) {
		return 0, outOfBounds(p, v.size)
	}
	if p == v.bad {
		return 0, errBroken
	}
	return p.X() + p.Y()*v.size.Width(), nil
}

// expectInvariantPanic runs fn and checks it panics with ErrInvariant.
func expectInvariantPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvariant) {
			t.Errorf("recovered %v, want ErrInvariant panic", r)
		}
	}()
	fn()
}
