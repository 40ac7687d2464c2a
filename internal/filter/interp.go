package filter

import (
	"fmt"
	"strings"
)

// Interpolation selects how Resize samples the source.
type Interpolation uint8

const (
	// Nearest picks the source pixel containing the sample point.
	Nearest Interpolation = iota

	// Bilinear blends the four source pixels around the sample point.
	Bilinear

	// CatmullRom uses a 4x4 cubic neighborhood via golang.org/x/image/draw.
	// It reads the whole source before producing any output.
	CatmullRom
)

func (m Interpolation) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case CatmullRom:
		return "catmullrom"
	default:
		return fmt.Sprintf("Interpolation(%d)", uint8(m))
	}
}

// ParseInterpolation parses the lower-case name of a mode.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	case "catmullrom", "catmull-rom", "bicubic":
		return CatmullRom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInterpolation, s)
	}
}
