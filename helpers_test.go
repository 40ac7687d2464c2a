package img

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// testImage returns a w x h image whose pixels encode their coordinates.
func testImage(w, h int) *Image {
	im := Empty(primitive.MustSize(w, h))
	im.PixelsMut(func(p primitive.Point, px *pixel.Pixel) {
		*px = pixel.RGBA(uint8(p.X()*7), uint8(p.Y()*11), uint8(p.X()+p.Y()), uint8(255-p.X()))
	})
	return im
}
