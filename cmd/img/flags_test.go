package main

import (
	"testing"

	"github.com/gogpu/img"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

func TestThreadsValue(t *testing.T) {
	tests := []struct {
		in      string
		want    threadsValue
		wantErr bool
	}{
		{"auto", 0, false},
		{"1", 1, false},
		{"16", 16, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"many", 0, true},
	}
	for _, tt := range tests {
		var v threadsValue
		err := v.Set(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if v != tt.want {
			t.Errorf("Set(%q) = %d, want %d", tt.in, v, tt.want)
		}
	}
	v := threadsValue(0)
	if got := v.String(); got != "auto" {
		t.Errorf("String() = %q, want %q", got, "auto")
	}
}

func TestSizeValue(t *testing.T) {
	tests := []struct {
		in      string
		want    primitive.Size
		wantErr bool
	}{
		{"640x480", primitive.MustSize(640, 480), false},
		{"1x1", primitive.MustSize(1, 1), false},
		{"0x5", primitive.Size{}, true},
		{"640", primitive.Size{}, true},
		{"ax5", primitive.Size{}, true},
		{"5x-1", primitive.Size{}, true},
	}
	for _, tt := range tests {
		var v sizeValue
		err := v.Set(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if v.size != tt.want {
			t.Errorf("Set(%q) = %v, want %v", tt.in, v.size, tt.want)
		}
	}
}

func TestGeometryValue(t *testing.T) {
	var v geometryValue
	if err := v.Set("200x100+10x20"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v.size != primitive.MustSize(200, 100) || v.at != primitive.Pt(10, 20) {
		t.Errorf("Set() = %v at %v, want 200x100 at (10, 20)", v.size, v.at)
	}
	if got, want := v.String(), "200x100+10x20"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	for _, in := range []string{"200x100", "200x100+10", "200x100+-1x0", "+1x1"} {
		var v geometryValue
		if err := v.Set(in); err == nil {
			t.Errorf("Set(%q) succeeded, want error", in)
		}
	}
}

func TestChannelsValue(t *testing.T) {
	tests := []struct {
		in      string
		want    pixel.ChannelFlags
		wantErr bool
	}{
		{"RGB", pixel.RGB, false},
		{"AR", pixel.Red | pixel.Alpha, false},
		{"rgb", 0, true},
		{"RR", 0, true},
		{"X", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		var v channelsValue
		err := v.Set(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && pixel.ChannelFlags(v) != tt.want {
			t.Errorf("Set(%q) = %v, want %v", tt.in, pixel.ChannelFlags(v), tt.want)
		}
	}
}

func TestInterpValue(t *testing.T) {
	var v interpValue
	if err := v.Set("bilinear"); err != nil || img.Interpolation(v) != img.Bilinear {
		t.Errorf("Set(bilinear) = %v, %v", img.Interpolation(v), err)
	}
	if err := v.Set("cubic-ish"); err == nil {
		t.Error("Set(cubic-ish) succeeded, want error")
	}
}
