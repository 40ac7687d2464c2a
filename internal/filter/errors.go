package filter

import "errors"

var (
	// ErrRadiusTooBig is returned when the blur window does not fit the image.
	ErrRadiusTooBig = errors.New("filter: radius too big for image")

	// ErrRadiusZero is returned when a filter needs a radius of at least one.
	ErrRadiusZero = errors.New("filter: radius must be at least 1")

	// ErrCropOutOfBounds is returned when the crop rectangle leaves the image.
	ErrCropOutOfBounds = errors.New("filter: crop area out of bounds")

	// ErrGamma is returned for a negative or non-finite gamma.
	ErrGamma = errors.New("filter: gamma must be finite and non-negative")

	// ErrInterpolation is returned for an unknown interpolation mode.
	ErrInterpolation = errors.New("filter: unknown interpolation mode")
)
