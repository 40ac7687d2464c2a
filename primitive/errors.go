package primitive

import "errors"

// Size construction errors.
var (
	ErrWidthZero     = errors.New("primitive: width is zero")
	ErrHeightZero    = errors.New("primitive: height is zero")
	ErrWidthTooBig   = errors.New("primitive: width too big")
	ErrHeightTooBig  = errors.New("primitive: height too big")
	ErrMarginTooBig  = errors.New("primitive: margin too big")
	ErrOffsetTooBig  = errors.New("primitive: offset too big")
	ErrAreaTooBig    = errors.New("primitive: area exceeds point range")
	ErrOutOfBounds   = errors.New("primitive: point out of bounds")
	ErrScaleNaN      = errors.New("primitive: scale factor is NaN")
	ErrScaleInfinite = errors.New("primitive: scale factor is infinite")
	ErrScaleTooSmall = errors.New("primitive: scale factor too small")
	ErrScaleTooBig   = errors.New("primitive: scale factor too big")
)

// Point construction errors.
var (
	ErrPointXNegative = errors.New("primitive: x is negative")
	ErrPointYNegative = errors.New("primitive: y is negative")
	ErrPointXTooBig   = errors.New("primitive: x too big")
	ErrPointYTooBig   = errors.New("primitive: y too big")
)
