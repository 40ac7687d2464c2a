package lens

import (
	"errors"

	"github.com/gogpu/img/pixel"
)

// ChannelFunc builds the pipeline applied to one color channel.
// A nil ChannelFunc passes the channel through unchanged.
type ChannelFunc func(View[uint8]) (View[uint8], error)

// Channel returns the view of channel i (0 red, 3 alpha) of src.
func Channel(src View[pixel.Pixel], i int) View[uint8] {
	return Map(src, func(p pixel.Pixel) uint8 { return p[i] })
}

// Channels decomposes src into its four channels, runs one pipeline per
// channel and recombines the results into pixels.
//
// All four pipelines read the same snapshot of src. The resulting domain is
// the intersection of the pipeline domains, so pipelines that shrink their
// input should be padded back (see Border) to keep channels aligned.
func Channels(src *Materialized[pixel.Pixel], r, g, b, a ChannelFunc) (View[pixel.Pixel], error) {
	var errs [pixel.Size]error
	branch := func(i int, fn ChannelFunc) func(View[pixel.Pixel]) View[uint8] {
		return func(s View[pixel.Pixel]) View[uint8] {
			ch := Channel(s, i)
			if fn == nil {
				return ch
			}
			out, err := fn(ch)
			if err != nil {
				errs[i] = err
				return ch
			}
			return out
		}
	}

	q := Split4(src, branch(0, r), branch(1, g), branch(2, b), branch(3, a))
	if err := errors.Join(errs[:]...); err != nil {
		return nil, err
	}
	return Map(q, func(q Quad[uint8, uint8, uint8, uint8]) pixel.Pixel {
		return pixel.Pixel{q.First, q.Second, q.Third, q.Fourth}
	}), nil
}
