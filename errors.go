package img

import (
	"errors"

	"github.com/gogpu/img/internal/filter"
)

var (
	// ErrLengthMismatch is returned when a buffer does not hold exactly
	// width*height pixels.
	ErrLengthMismatch = errors.New("img: buffer length does not match size")

	// ErrUnsupportedFormat is returned for image formats that cannot be
	// read or written.
	ErrUnsupportedFormat = errors.New("img: unsupported format")

	// ErrIndexedColor is returned when decoding a palette-based PNG.
	ErrIndexedColor = errors.New("img: indexed color is not supported")

	// ErrBitDepth is returned when decoding a PNG with 16-bit channels.
	ErrBitDepth = errors.New("img: only 8-bit channels are supported")
)

// Filter errors.
var (
	ErrRadiusTooBig    = filter.ErrRadiusTooBig
	ErrRadiusZero      = filter.ErrRadiusZero
	ErrCropOutOfBounds = filter.ErrCropOutOfBounds
	ErrGamma           = filter.ErrGamma
	ErrInterpolation   = filter.ErrInterpolation
)
