package pixel

import (
	"errors"
	"testing"
)

func TestParseChannelFlags(t *testing.T) {
	tests := []struct {
		in      string
		want    ChannelFlags
		wantErr error
	}{
		{"R", Red, nil},
		{"RGB", RGB, nil},
		{"RGBA", All, nil},
		{"ABGR", All, nil},
		{"GA", Green | Alpha, nil},
		{"BR", Red | Blue, nil},
		{"", 0, ErrChannelEmpty},
		{"RR", 0, ErrChannelRepeated},
		{"RGBR", 0, ErrChannelRepeated},
		{"AA", 0, ErrChannelRepeated},
		{"X", 0, ErrChannelUnknown},
		{"rgb", 0, ErrChannelUnknown},
		{"RG B", 0, ErrChannelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChannelFlags(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseChannelFlags(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseChannelFlags(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestChannelFlagsString(t *testing.T) {
	tests := []struct {
		flags ChannelFlags
		want  string
	}{
		{0, ""},
		{Alpha | Red, "RA"},
		{RGB, "RGB"},
		{All, "RGBA"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestChannelFlagsBits(t *testing.T) {
	if Red != 0b1000 || Green != 0b0100 || Blue != 0b0010 || Alpha != 0b0001 {
		t.Errorf("flags = %04b %04b %04b %04b", Red, Green, Blue, Alpha)
	}
	if !All.Has(RGB) || RGB.Has(Alpha) {
		t.Error("Has() mismatch")
	}
}
