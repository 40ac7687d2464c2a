package filter

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// Crop returns the size-sized window of src whose top-left corner is at.
// It fails with ErrCropOutOfBounds unless the window lies inside src.
func Crop(src lens.View[pixel.Pixel], size primitive.Size, at primitive.Point) (lens.View[pixel.Pixel], error) {
	ss := src.Size()
	if at.X() > ss.Width()-size.Width() || at.Y() > ss.Height()-size.Height() {
		return nil, fmt.Errorf("%w: %v at %v in %v", ErrCropOutOfBounds, size, at, ss)
	}
	return lens.Remap(src, func(s lens.View[pixel.Pixel], p primitive.Point) (pixel.Pixel, error) {
		q, err := p.Add(at)
		if err != nil {
			return pixel.Pixel{}, err
		}
		return s.Look(q)
	}, size), nil
}

// Resize scales src to size.
//
// Nearest and Bilinear are lazy remaps: output point p samples the source at
// p scaled by the inverse factor, rounded down for Nearest. CatmullRom
// evaluates src once and resamples it with golang.org/x/image/draw.
func Resize(src lens.View[pixel.Pixel], size primitive.Size, mode Interpolation) (lens.View[pixel.Pixel], error) {
	scale, err := primitive.ScaleBetween(src.Size(), size)
	if err != nil {
		return nil, fmt.Errorf("filter: resize %v to %v: %w", src.Size(), size, err)
	}
	inv := scale.Inverse()

	switch mode {
	case Nearest:
		return lens.Remap(src, func(s lens.View[pixel.Pixel], p primitive.Point) (pixel.Pixel, error) {
			q, err := inv.ApplyPoint(p)
			if err != nil {
				return pixel.Pixel{}, err
			}
			return s.Look(clampPoint(q.X(), q.Y(), s.Size()))
		}, size), nil
	case Bilinear:
		return lens.Remap(src, func(s lens.View[pixel.Pixel], p primitive.Point) (pixel.Pixel, error) {
			return sampleBilinear(s, (float64(p.X())+0.5)*inv.X()-0.5, (float64(p.Y())+0.5)*inv.Y()-0.5)
		}, size), nil
	case CatmullRom:
		return resizeCatmullRom(src, size)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInterpolation, mode)
	}
}

// clampPoint returns (x, y) clamped into size.
func clampPoint(x, y int, size primitive.Size) primitive.Point {
	return primitive.Pt(min(max(x, 0), size.Width()-1), min(max(y, 0), size.Height()-1))
}

// sampleBilinear interpolates src at continuous pixel coordinates (fx, fy),
// where integer coordinates are pixel centers. Samples beyond the edge are
// clamped.
func sampleBilinear(src lens.View[pixel.Pixel], fx, fy float64) (pixel.Pixel, error) {
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	tx, ty := float32(fx-float64(x0)), float32(fy-float64(y0))
	size := src.Size()

	var corners [4]pixel.Pixel
	for i, q := range [4]primitive.Point{
		clampPoint(x0, y0, size),
		clampPoint(x0+1, y0, size),
		clampPoint(x0, y0+1, size),
		clampPoint(x0+1, y0+1, size),
	} {
		px, err := src.Look(q)
		if err != nil {
			return pixel.Pixel{}, err
		}
		corners[i] = px
	}

	var out pixel.Pixel
	for c := range pixel.Size {
		top := lerp(float32(corners[0][c]), float32(corners[1][c]), tx)
		bottom := lerp(float32(corners[2][c]), float32(corners[3][c]), tx)
		out[c] = pixel.ClampU8(lerp(top, bottom, ty))
	}
	return out, nil
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func resizeCatmullRom(src lens.View[pixel.Pixel], size primitive.Size) (lens.View[pixel.Pixel], error) {
	in := toNRGBA(src)
	out := image.NewNRGBA(image.Rect(0, 0, size.Width(), size.Height()))
	draw.CatmullRom.Scale(out, out.Bounds(), in, in.Bounds(), draw.Src, nil)

	items := make([]pixel.Pixel, size.Area())
	for i := range items {
		copy(items[i][:], out.Pix[i*pixel.Size:])
	}
	m, err := lens.FromSlice(size, items)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// toNRGBA evaluates src into a non-premultiplied standard image.
func toNRGBA(src lens.View[pixel.Pixel]) *image.NRGBA {
	size := src.Size()
	dst := image.NewNRGBA(image.Rect(0, 0, size.Width(), size.Height()))
	for p, px := range lens.All(src) {
		off := dst.PixOffset(p.X(), p.Y())
		copy(dst.Pix[off:off+pixel.Size], px[:])
	}
	return dst
}
