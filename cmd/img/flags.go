package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gogpu/img"
	"github.com/gogpu/img/pixel"
	"github.com/gogpu/img/primitive"
)

var (
	errThreads  = errors.New(`threads must be "auto" or a positive number`)
	errSize     = errors.New("size must be in WIDTHxHEIGHT format")
	errGeometry = errors.New("geometry must be in WIDTHxHEIGHT+XxY format")
)

// threadsValue is the -t flag. Zero means auto.
type threadsValue int

var _ pflag.Value = (*threadsValue)(nil)

func (v *threadsValue) String() string {
	if *v == 0 {
		return "auto"
	}
	return strconv.Itoa(int(*v))
}

func (v *threadsValue) Set(s string) error {
	if s == "auto" {
		*v = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errThreads
	}
	*v = threadsValue(n)
	return nil
}

func (v *threadsValue) Type() string { return "auto|N" }

// sizeValue parses WIDTHxHEIGHT.
type sizeValue struct {
	size primitive.Size
	set  bool
}

var _ pflag.Value = (*sizeValue)(nil)

func (v *sizeValue) String() string {
	if !v.set {
		return ""
	}
	return v.size.String()
}

func (v *sizeValue) Set(s string) error {
	w, h, err := parsePair(s, errSize)
	if err != nil {
		return err
	}
	size, err := primitive.NewSize(w, h)
	if err != nil {
		return err
	}
	v.size, v.set = size, true
	return nil
}

func (v *sizeValue) Type() string { return "WxH" }

// geometryValue parses WIDTHxHEIGHT+XxY, a crop window and its top-left
// corner.
type geometryValue struct {
	size primitive.Size
	at   primitive.Point
	set  bool
}

var _ pflag.Value = (*geometryValue)(nil)

func (v *geometryValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%v+%dx%d", v.size, v.at.X(), v.at.Y())
}

func (v *geometryValue) Set(s string) error {
	sizePart, atPart, ok := strings.Cut(s, "+")
	if !ok {
		return errGeometry
	}
	var size sizeValue
	if err := size.Set(sizePart); err != nil {
		return err
	}
	x, y, err := parsePair(atPart, errGeometry)
	if err != nil {
		return err
	}
	at, err := primitive.NewPoint(x, y)
	if err != nil {
		return err
	}
	v.size, v.at, v.set = size.size, at, true
	return nil
}

func (v *geometryValue) Type() string { return "WxH+XxY" }

// channelsValue is the -f flag, a channel list such as RGB.
type channelsValue pixel.ChannelFlags

var _ pflag.Value = (*channelsValue)(nil)

func (v *channelsValue) String() string { return pixel.ChannelFlags(*v).String() }

func (v *channelsValue) Set(s string) error {
	f, err := pixel.ParseChannelFlags(s)
	if err != nil {
		return err
	}
	*v = channelsValue(f)
	return nil
}

func (v *channelsValue) Type() string { return "RGBA" }

// interpValue is the --interp flag.
type interpValue img.Interpolation

var _ pflag.Value = (*interpValue)(nil)

func (v *interpValue) String() string { return img.Interpolation(*v).String() }

func (v *interpValue) Set(s string) error {
	m, err := img.ParseInterpolation(s)
	if err != nil {
		return err
	}
	*v = interpValue(m)
	return nil
}

func (v *interpValue) Type() string { return "mode" }

func parsePair(s string, errFormat error) (int, int, error) {
	a, b, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, errFormat
	}
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errFormat
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errFormat
	}
	return x, y, nil
}
