package lens

import (
	"errors"
	"testing"

	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

func TestFunc(t *testing.T) {
	v := coords(4, 3)
	checkView(t, v)
	got, _ := v.Look(primitive.Pt(3, 2))
	if got != primitive.Pt(3, 2) {
		t.Errorf("Look(3, 2) = %v", got)
	}
}

func TestValue(t *testing.T) {
	v := Value(primitive.MustSize(3, 5), pixel.RGBA(1, 2, 3, 4))
	checkView(t, v)
	for p, item := range All(v) {
		if item != pixel.RGBA(1, 2, 3, 4) {
			t.Errorf("Look(%v) = %v", p, item)
		}
	}
}

func TestAllRowMajor(t *testing.T) {
	var got []primitive.Point
	for p, item := range All(coords(3, 2)) {
		if p != item {
			t.Errorf("All yielded %v for %v", item, p)
		}
		got = append(got, p)
	}
	want := []primitive.Point{
		primitive.Pt(0, 0), primitive.Pt(1, 0), primitive.Pt(2, 0),
		primitive.Pt(0, 1), primitive.Pt(1, 1), primitive.Pt(2, 1),
	}
	diff(t, want, got, cmpPoint)
}

func TestMap(t *testing.T) {
	v := Map(gradient(5, 4), func(p pixel.Pixel) uint8 { return p.R() + p.G() })
	checkView(t, v)
	if got := Must(v, primitive.Pt(4, 3)); got != 7 {
		t.Errorf("Look(4, 3) = %d, want 7", got)
	}
}

func TestMapErr(t *testing.T) {
	errOdd := errors.New("odd")
	v := MapErr(coords(4, 4), func(p primitive.Point) (int, error) {
		if p.X() == 3 && p.Y() == 3 {
			return 0, errOdd
		}
		return p.X(), nil
	})
	if _, err := v.Look(primitive.Pt(3, 3)); !errors.Is(err, errOdd) {
		t.Errorf("Look(3, 3) error = %v, want %v", err, errOdd)
	}
	if got := Must(v, primitive.Pt(2, 3)); got != 2 {
		t.Errorf("Look(2, 3) = %d, want 2", got)
	}
}

func TestRemap(t *testing.T) {
	// Mirror horizontally into a smaller domain.
	src := coords(6, 4)
	v := Remap(src, func(s View[primitive.Point], p primitive.Point) (primitive.Point, error) {
		return s.Look(primitive.Pt(5-p.X(), p.Y()))
	}, primitive.MustSize(3, 4))
	checkView(t, v)
	if got := Must(v, primitive.Pt(0, 2)); got != primitive.Pt(5, 2) {
		t.Errorf("Look(0, 2) = %v, want (5, 2)", got)
	}
}

func TestCloned(t *testing.T) {
	items := []pixel.Pixel{pixel.RGBA(1, 0, 0, 0), pixel.RGBA(2, 0, 0, 0)}
	refs := Func(primitive.MustSize(2, 1), func(p primitive.Point) *pixel.Pixel { return &items[p.X()] })
	v := Cloned(refs)
	checkView(t, v)

	got := Must(v, primitive.Pt(1, 0))
	items[1].SetR(9)
	if got.R() != 2 {
		t.Errorf("cloned item changed with its source: %v", got)
	}
	if Must(v, primitive.Pt(1, 0)).R() != 9 {
		t.Error("Cloned should read the current source value")
	}
}

func TestMust(t *testing.T) {
	expectInvariantPanic(t, func() {
		Must[int](brokenView{size: primitive.MustSize(2, 2), bad: primitive.Pt(1, 1)}, primitive.Pt(1, 1))
	})
}
