package pixel

import (
	"math"
	"testing"
)

func TestSetWithFlags(t *testing.T) {
	tests := []struct {
		flags ChannelFlags
		want  Pixel
	}{
		{0, RGBA(1, 2, 3, 4)},
		{Red, RGBA(10, 2, 3, 4)},
		{Green | Alpha, RGBA(1, 20, 3, 40)},
		{RGB, RGBA(10, 20, 30, 4)},
		{All, RGBA(10, 20, 30, 40)},
	}
	for _, tt := range tests {
		p := RGBA(1, 2, 3, 4)
		p.SetWithFlags(RGBA(10, 20, 30, 40), tt.flags)
		if p != tt.want {
			t.Errorf("SetWithFlags(%v) = %v, want %v", tt.flags, p, tt.want)
		}
	}
}

func TestSetWithFlagsF32(t *testing.T) {
	p := RGBA(1, 2, 3, 4)
	p.SetWithFlagsF32([4]float32{1, 0.5, -2, 3}, RGB)
	if want := RGBA(255, 128, 0, 4); p != want {
		t.Errorf("SetWithFlagsF32() = %v, want %v", p, want)
	}
}

func TestFromF32(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{0, 0},
		{1, 255},
		{-0.5, 0},
		{1.5, 255},
		{0.5, 128},
		{float32(math.NaN()), 0},
		{100.0 / 255.0, 100},
	}
	for _, tt := range tests {
		if got := FromF32(tt.in); got != tt.want {
			t.Errorf("FromF32(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRoundTripU8F32(t *testing.T) {
	for i := range 256 {
		var p Pixel
		p.SetRF32(RGBA(uint8(i), 0, 0, 0).RF32())
		if int(p.R()) != i {
			t.Errorf("round trip %d = %d", i, p.R())
		}
	}
}

func TestToHSV(t *testing.T) {
	tests := []struct {
		name    string
		p       Pixel
		h, s, v float32
	}{
		{"black", RGBA(0, 0, 0, 255), 0, 0, 0},
		{"white", RGBA(255, 255, 255, 255), 0, 0, 1},
		{"red", RGBA(255, 0, 0, 255), 0, 1, 1},
		{"green", RGBA(0, 255, 0, 255), 120, 1, 1},
		{"blue", RGBA(0, 0, 255, 255), 240, 1, 1},
		{"magenta", RGBA(255, 0, 255, 255), 300, 1, 1},
	}
	const eps = 1e-4
	for _, tt := range tests {
		got := ToHSV(tt.p)
		if absf(got.H-tt.h) > eps || absf(got.S-tt.s) > eps || absf(got.V-tt.v) > eps {
			t.Errorf("%s: ToHSV() = %+v, want h=%v s=%v v=%v", tt.name, got, tt.h, tt.s, tt.v)
		}
		if got.V != Value(tt.p) {
			t.Errorf("%s: Value() = %v, want %v", tt.name, Value(tt.p), got.V)
		}
	}
}

func TestLuma(t *testing.T) {
	if got := Luma(RGBA(255, 255, 255, 0)); got != 255 {
		t.Errorf("Luma(white) = %d, want 255", got)
	}
	if got := Luma(RGBA(100, 100, 100, 0)); got != 100 {
		t.Errorf("Luma(gray) = %d, want 100", got)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
