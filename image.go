package img

import (
	"fmt"
	"image"
	"iter"

	"golang.org/x/image/draw"

	"github.com/gogpu/img/internal/logging"
	"github.com/gogpu/img/lens"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

// Image is a fixed-format RGBA image: a size and exactly
// width*height*4 bytes in row-major order, non-premultiplied.
//
// Thread safety: Image is safe for concurrent read access. Writes through
// PixelMut or PixelsMut require external synchronization.
type Image struct {
	size primitive.Size
	buf  []byte
}

// New wraps buf as an image of the given size without copying.
// It returns ErrLengthMismatch unless len(buf) == size.Area()*4.
func New(size primitive.Size, buf []byte) (*Image, error) {
	if want := size.Area() * pixel.Size; len(buf) != want {
		return nil, fmt.Errorf("%w: %d bytes for %v, want %d", ErrLengthMismatch, len(buf), size, want)
	}
	return &Image{size: size, buf: buf}, nil
}

// Empty returns a zero-filled (transparent black) image.
func Empty(size primitive.Size) *Image {
	return &Image{size: size, buf: make([]byte, size.Area()*pixel.Size)}
}

// Size returns the image size.
func (im *Image) Size() primitive.Size { return im.size }

// Bytes returns the pixel buffer. Modifying it modifies the image.
func (im *Image) Bytes() []byte { return im.buf }

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	buf := make([]byte, len(im.buf))
	copy(buf, im.buf)
	return &Image{size: im.size, buf: buf}
}

func (im *Image) offset(p primitive.Point) int {
	return (p.Y()*im.size.Width() + p.X()) * pixel.Size
}

// Pixel returns the pixel at p, or an error wrapping
// primitive.ErrOutOfBounds.
func (im *Image) Pixel(p primitive.Point) (pixel.Pixel, error) {
	if !im.size.Contains(p) {
		return pixel.Pixel{}, fmt.Errorf("img: pixel %v in %v: %w", p, im.size, primitive.ErrOutOfBounds)
	}
	return im.PixelUnchecked(p), nil
}

// PixelMut returns a pointer aliasing the pixel at p in the buffer, or an
// error wrapping primitive.ErrOutOfBounds.
func (im *Image) PixelMut(p primitive.Point) (*pixel.Pixel, error) {
	if !im.size.Contains(p) {
		return nil, fmt.Errorf("img: pixel %v in %v: %w", p, im.size, primitive.ErrOutOfBounds)
	}
	return im.PixelMutUnchecked(p), nil
}

// PixelUnchecked returns the pixel at p without checking bounds.
// The caller guarantees that Size().Contains(p); otherwise the result is
// another pixel or the call panics.
func (im *Image) PixelUnchecked(p primitive.Point) pixel.Pixel {
	return pixel.Pixel(im.buf[im.offset(p):][:pixel.Size])
}

// PixelMutUnchecked is PixelMut without the bounds check, under the same
// precondition as PixelUnchecked.
func (im *Image) PixelMutUnchecked(p primitive.Point) *pixel.Pixel {
	return (*pixel.Pixel)(im.buf[im.offset(p):][:pixel.Size])
}

// Pixels returns an iterator over every point and pixel, row by row.
func (im *Image) Pixels() iter.Seq2[primitive.Point, pixel.Pixel] {
	return func(yield func(primitive.Point, pixel.Pixel) bool) {
		w := im.size.Width()
		for i := range im.size.Area() {
			p := primitive.Pt(i%w, i/w)
			if !yield(p, pixel.Pixel(im.buf[i*pixel.Size:][:pixel.Size])) {
				return
			}
		}
	}
}

// Rows returns an iterator over the row index and bytes of every row.
// The row slices alias the buffer.
func (im *Image) Rows() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		stride := im.size.Width() * pixel.Size
		for y := range im.size.Height() {
			if !yield(y, im.buf[y*stride:(y+1)*stride]) {
				return
			}
		}
	}
}

// PixelsMut calls fn with every point and a pointer to its pixel, row by
// row.
func (im *Image) PixelsMut(fn func(primitive.Point, *pixel.Pixel)) {
	w := im.size.Width()
	for i := range im.size.Area() {
		fn(primitive.Pt(i%w, i/w), (*pixel.Pixel)(im.buf[i*pixel.Size:][:pixel.Size]))
	}
}

// RefView returns a view whose items point into the image buffer.
func (im *Image) RefView() lens.View[*pixel.Pixel] {
	return lens.Func(im.size, im.PixelMutUnchecked)
}

// View returns a view of the image's pixels by value. It reads the buffer
// on every lookup, so later writes to the image are visible through it.
func (im *Image) View() lens.View[pixel.Pixel] {
	return lens.Cloned(im.RefView())
}

// FromView evaluates v on the calling goroutine into a new image.
func FromView(v lens.View[pixel.Pixel]) *Image {
	return fromMaterialized(lens.Materialize(v))
}

// FromViewPar evaluates v on up to workers goroutines into a new image.
// If workers is 0 or negative, GOMAXPROCS is used.
func FromViewPar(v lens.View[pixel.Pixel], workers int) *Image {
	return fromMaterialized(lens.MaterializePar(v, workers))
}

func fromView(v lens.View[pixel.Pixel], o options) *Image {
	logging.Logger().Debug("img: evaluate", "size", v.Size(), "workers", o.workers)
	if o.workers == 1 {
		return FromView(v)
	}
	return FromViewPar(v, o.workers)
}

func fromMaterialized(m *lens.Materialized[pixel.Pixel]) *Image {
	items := m.Items()
	buf := make([]byte, len(items)*pixel.Size)
	for i, px := range items {
		copy(buf[i*pixel.Size:], px[:])
	}
	return &Image{size: m.Size(), buf: buf}
}

// ToStd returns the image as an *image.NRGBA sharing the buffer.
func (im *Image) ToStd() *image.NRGBA {
	return &image.NRGBA{
		Pix:    im.buf,
		Stride: im.size.Width() * pixel.Size,
		Rect:   image.Rect(0, 0, im.size.Width(), im.size.Height()),
	}
}

// FromStd converts a standard library image into an Image, copying its
// pixels as non-premultiplied 8-bit RGBA. Images without an alpha channel
// become opaque.
func FromStd(src image.Image) (*Image, error) {
	b := src.Bounds()
	size, err := primitive.NewSize(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("img: image bounds %v: %w", b, err)
	}
	im := Empty(size)
	stride := size.Width() * pixel.Size

	// Fast path for NRGBA images
	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := range size.Height() {
			start := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
			copy(im.buf[y*stride:(y+1)*stride], nrgba.Pix[start:start+stride])
		}
		return im, nil
	}

	// Generic path: draw converts any color model to NRGBA
	dst := im.ToStd()
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return im, nil
}
