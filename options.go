package img

import "github.com/gogpu/img/internal/filter"

// Interpolation selects how Resize samples the source image.
type Interpolation = filter.Interpolation

// Interpolation modes.
const (
	Nearest    = filter.Nearest
	Bilinear   = filter.Bilinear
	CatmullRom = filter.CatmullRom
)

// ParseInterpolation parses "nearest", "bilinear" or "catmullrom".
func ParseInterpolation(s string) (Interpolation, error) {
	return filter.ParseInterpolation(s)
}

// Option configures an operation.
//
// Example:
//
//	// Sequential (default)
//	out, err := img.Resize(im, size)
//
//	// On every CPU, with bilinear sampling
//	out, err := img.Resize(im, size, img.WithWorkers(0), img.WithInterpolation(img.Bilinear))
type Option func(*options)

type options struct {
	workers int
	interp  Interpolation
}

func defaultOptions() options {
	return options{
		workers: 1,
		interp:  Nearest,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) exec() filter.Exec {
	return filter.Exec{Workers: o.workers}
}

// WithWorkers sets how many goroutines evaluate the result.
// 1 (the default) evaluates on the calling goroutine; 0 or less uses
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithInterpolation sets the sampling mode used by Resize.
func WithInterpolation(m Interpolation) Option {
	return func(o *options) {
		o.interp = m
	}
}
