package pixel

import (
	"errors"
	"fmt"
	"strings"
)

// ChannelFlags selects a subset of the R, G, B and A channels.
type ChannelFlags uint8

// Channel flags. The bit layout matches the channel order RGBA read from the
// most significant bit down.
const (
	Red ChannelFlags = 1 << (3 - iota)
	Green
	Blue
	Alpha

	RGB = Red | Green | Blue
	All = RGB | Alpha
)

// channelOrder maps channel index to flag.
var channelOrder = [Size]ChannelFlags{Red, Green, Blue, Alpha}

// Channel flag parse errors.
var (
	ErrChannelEmpty    = errors.New("pixel: empty channel list")
	ErrChannelRepeated = errors.New("pixel: channel repeated")
	ErrChannelUnknown  = errors.New("pixel: unknown channel")
)

// ParseChannelFlags parses a channel list such as "RGB" or "AR".
//
// Each of R, G, B and A may appear at most once, in any order. Any other
// character, a repeated channel or an empty string is an error.
func ParseChannelFlags(s string) (ChannelFlags, error) {
	if s == "" {
		return 0, ErrChannelEmpty
	}
	var flags ChannelFlags
	for _, r := range s {
		var f ChannelFlags
		switch r {
		case 'R':
			f = Red
		case 'G':
			f = Green
		case 'B':
			f = Blue
		case 'A':
			f = Alpha
		default:
			return 0, fmt.Errorf("%w: %q", ErrChannelUnknown, r)
		}
		if flags&f != 0 {
			return 0, fmt.Errorf("%w: %q", ErrChannelRepeated, r)
		}
		flags |= f
	}
	return flags, nil
}

// Has reports whether all channels in o are selected.
func (f ChannelFlags) Has(o ChannelFlags) bool { return f&o == o }

// Index reports whether the channel at index i (0 red, 3 alpha) is selected.
func (f ChannelFlags) Index(i int) bool { return f&channelOrder[i] != 0 }

// String renders the flags in canonical RGBA order.
func (f ChannelFlags) String() string {
	var b strings.Builder
	for i, c := range "RGBA" {
		if f&channelOrder[i] != 0 {
			b.WriteRune(c)
		}
	}
	return b.String()
}
