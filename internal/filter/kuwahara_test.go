package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

func TestKuwaharaRadiusZero(t *testing.T) {
	for _, r := range []int{0, -3} {
		if _, err := Kuwahara(solid(4, 4, pixel.Pixel{}), r, Exec{Workers: 1}); !errors.Is(err, ErrRadiusZero) {
			t.Errorf("Kuwahara(r=%d) error = %v, want %v", r, err, ErrRadiusZero)
		}
	}
}

func TestKuwaharaKeepsSize(t *testing.T) {
	for _, r := range []int{1, 2, DefaultKuwaharaRadius} {
		src := pattern(7, 3)
		v, err := Kuwahara(src, r, Exec{Workers: 1})
		if err != nil {
			t.Fatalf("Kuwahara(r=%d) error = %v", r, err)
		}
		if v.Size() != src.Size() {
			t.Errorf("Kuwahara(r=%d).Size() = %v, want %v", r, v.Size(), src.Size())
		}
	}
}

func TestKuwaharaPreservesStep(t *testing.T) {
	// Every pixel of a two-tone image has a flat quadrant on its own side of
	// the step, so the filter leaves the image unchanged.
	src := columns(12, 6, func(x int) uint8 {
		if x < 5 {
			return 10
		}
		return 200
	})
	v, err := Kuwahara(src, 2, Exec{Workers: 1})
	if err != nil {
		t.Fatalf("Kuwahara() error = %v", err)
	}
	diff(t, items(src), items(v))
}

func TestKuwaharaSpike(t *testing.T) {
	// All four quadrants of the spike contain it; every other pixel has a
	// flat quadrant away from it.
	flat, spike := pixel.RGBA(40, 40, 40, 255), pixel.RGBA(250, 250, 250, 255)
	src := lens.Func(primitive.MustSize(9, 9), func(p primitive.Point) pixel.Pixel {
		if p == primitive.Pt(4, 4) {
			return spike
		}
		return flat
	})
	v, err := Kuwahara(src, 1, Exec{Workers: 1})
	if err != nil {
		t.Fatalf("Kuwahara() error = %v", err)
	}
	for p, px := range lens.All(v) {
		want := flat
		if p == primitive.Pt(4, 4) {
			want = pixel.RGBA(92, 92, 92, 255)
		}
		if px != want {
			t.Errorf("Look(%v) = %v, want %v", p, px, want)
		}
	}
}

func TestKuwaharaSequentialMatchesParallel(t *testing.T) {
	src := pattern(13, 11)
	seq, err := Kuwahara(src, 2, Exec{Workers: 1})
	if err != nil {
		t.Fatalf("Kuwahara(seq) error = %v", err)
	}
	want := items(seq)
	for _, workers := range []int{0, 3, 64} {
		e := Exec{Workers: workers}
		par, err := Kuwahara(src, 2, e)
		if err != nil {
			t.Fatalf("Kuwahara(%d workers) error = %v", workers, err)
		}
		diff(t, want, Materialize(e, par).Items())
	}
}
