package img

import (
	"errors"
	"testing"

	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

func TestColorFilters(t *testing.T) {
	im := testImage(4, 3)
	gray := Grayscale(im)
	for p, px := range gray.Pixels() {
		if px.R() != px.G() || px.G() != px.B() {
			t.Fatalf("Grayscale pixel %v = %v, want gray", p, px)
		}
	}
	neg := Negative(im, pixel.RGB)
	got := neg.PixelUnchecked(primitive.Pt(2, 1))
	if want := pixel.RGBA(255-14, 255-11, 255-3, 253); got != want {
		t.Errorf("Negative pixel (2,1) = %v, want %v", got, want)
	}
	if got := Sepia(im).Size(); got != im.Size() {
		t.Errorf("Sepia size = %v, want %v", got, im.Size())
	}
}

func TestGammaErrors(t *testing.T) {
	if _, err := Gamma(testImage(2, 2), -1, pixel.RGB); !errors.Is(err, ErrGamma) {
		t.Errorf("Gamma(-1) error = %v, want %v", err, ErrGamma)
	}
	out, err := Gamma(testImage(2, 2), 1, pixel.RGB)
	if err != nil {
		t.Fatalf("Gamma(1) error = %v", err)
	}
	diff(t, testImage(2, 2).Bytes(), out.Bytes())
}

func TestBlurMean(t *testing.T) {
	im := testImage(5, 5)
	out, err := BlurMean(im, 1, pixel.RGB)
	if err != nil {
		t.Fatalf("BlurMean() error = %v", err)
	}
	if want := primitive.MustSize(3, 3); out.Size() != want {
		t.Fatalf("Size() = %v, want %v", out.Size(), want)
	}
	if got, want := out.PixelUnchecked(primitive.Pt(0, 0)), pixel.RGBA(7, 11, 2, 254); got != want {
		t.Errorf("pixel (0,0) = %v, want %v", got, want)
	}

	if _, err := BlurMean(im, 3, pixel.RGB); !errors.Is(err, ErrRadiusTooBig) {
		t.Errorf("BlurMean(r=3) error = %v, want %v", err, ErrRadiusTooBig)
	}
	if _, err := BlurGaussian(im, 3, 1, pixel.RGB); !errors.Is(err, ErrRadiusTooBig) {
		t.Errorf("BlurGaussian(r=3) error = %v, want %v", err, ErrRadiusTooBig)
	}
}

func TestCrop(t *testing.T) {
	im := testImage(10, 10)
	out, err := Crop(im, primitive.MustSize(4, 4), primitive.Pt(3, 3))
	if err != nil {
		t.Fatalf("Crop() error = %v", err)
	}
	if want := primitive.MustSize(4, 4); out.Size() != want {
		t.Fatalf("Size() = %v, want %v", out.Size(), want)
	}
	for p, px := range out.Pixels() {
		q, _ := p.Add(primitive.Pt(3, 3))
		if want := im.PixelUnchecked(q); px != want {
			t.Errorf("pixel %v = %v, want %v", p, px, want)
		}
	}

	if _, err := Crop(im, primitive.MustSize(4, 4), primitive.Pt(7, 0)); !errors.Is(err, ErrCropOutOfBounds) {
		t.Errorf("Crop(7,0) error = %v, want %v", err, ErrCropOutOfBounds)
	}
}

func TestResizeOptions(t *testing.T) {
	im := testImage(8, 6)
	size := primitive.MustSize(4, 3)
	for _, mode := range []Interpolation{Nearest, Bilinear, CatmullRom} {
		out, err := Resize(im, size, WithInterpolation(mode))
		if err != nil {
			t.Fatalf("Resize(%v) error = %v", mode, err)
		}
		if out.Size() != size {
			t.Errorf("Resize(%v).Size() = %v, want %v", mode, out.Size(), size)
		}
	}
	out, _ := Resize(im, size)
	if got, want := out.PixelUnchecked(primitive.Pt(1, 1)), im.PixelUnchecked(primitive.Pt(2, 2)); got != want {
		t.Errorf("nearest pixel (1,1) = %v, want %v", got, want)
	}
}

func TestWorkersMatchSequential(t *testing.T) {
	im := testImage(23, 17)
	tests := []struct {
		name string
		run  func(opts ...Option) (*Image, error)
	}{
		{"canny", func(opts ...Option) (*Image, error) { return Canny(im, opts...) }},
		{"kuwahara", func(opts ...Option) (*Image, error) { return Kuwahara(im, 2, opts...) }},
		{"blur", func(opts ...Option) (*Image, error) { return BlurGaussian(im, 2, 1.5, pixel.RGB, opts...) }},
		{"resize", func(opts ...Option) (*Image, error) {
			return Resize(im, primitive.MustSize(40, 9), append(opts, WithInterpolation(Bilinear))...)
		}},
	}
	for _, tt := range tests {
		seq, err := tt.run()
		if err != nil {
			t.Fatalf("%s: error = %v", tt.name, err)
		}
		for _, workers := range []int{0, 3, 64} {
			par, err := tt.run(WithWorkers(workers))
			if err != nil {
				t.Fatalf("%s workers=%d: error = %v", tt.name, workers, err)
			}
			diff(t, seq.Bytes(), par.Bytes())
		}
	}
}

func TestKuwaharaRadiusZero(t *testing.T) {
	if _, err := Kuwahara(testImage(4, 4), 0); !errors.Is(err, ErrRadiusZero) {
		t.Errorf("Kuwahara(0) error = %v, want %v", err, ErrRadiusZero)
	}
}
