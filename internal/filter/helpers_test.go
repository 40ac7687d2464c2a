package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// solid returns a w x h view of px.
func solid(w, h int, px pixel.Pixel) lens.View[pixel.Pixel] {
	return lens.Value(primitive.MustSize(w, h), px)
}

// pattern returns a view whose items encode their coordinates.
func pattern(w, h int) lens.View[pixel.Pixel] {
	return lens.Func(primitive.MustSize(w, h), func(p primitive.Point) pixel.Pixel {
		return pixel.RGBA(uint8(p.X()*10), uint8(p.Y()*10), uint8(p.X()+p.Y()), 255)
	})
}

// columns returns a view where column x has the gray level fn(x).
func columns(w, h int, fn func(x int) uint8) lens.View[pixel.Pixel] {
	return lens.Func(primitive.MustSize(w, h), func(p primitive.Point) pixel.Pixel {
		v := fn(p.X())
		return pixel.RGBA(v, v, v, 200)
	})
}

func items(v lens.View[pixel.Pixel]) []pixel.Pixel {
	return lens.Materialize(v).Items()
}
