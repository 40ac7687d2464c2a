package primitive

import "strconv"

// DimensionMax is the largest accepted image width or height.
//
// It is chosen so that width*height*4 (the byte length of an RGBA buffer)
// always fits in an int on the current platform.
const DimensionMax = 1<<(strconv.IntSize/2-2) - 1

// Scale factor limits. ScaleMax is the reciprocal of ScaleMin so that the
// inverse of any valid scale is valid too.
const (
	ScaleMin = 1e-4
	ScaleMax = 1 / ScaleMin
)
