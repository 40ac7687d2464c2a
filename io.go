package img

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP with image.Decode

	"github.com/gogpu/img/internal/logging"
)

// JPEGQuality is the quality used when saving JPEG files.
const JPEGQuality = 90

// DecodePNG decodes an 8-bit PNG into an Image.
//
// Palette-based images are rejected with ErrIndexedColor and any bit depth
// other than 8 with ErrBitDepth. Gray and RGB images become opaque RGBA.
func DecodePNG(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("img: read PNG: %w", err)
	}
	return decodePNG(data)
}

func decodePNG(data []byte) (*Image, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("img: decode PNG: %w", err)
	}
	if err := checkPNGModel(cfg.ColorModel); err != nil {
		return nil, err
	}
	// DecodeConfig has validated the IHDR chunk; byte 24 is its bit depth.
	if depth := data[24]; depth != 8 {
		return nil, fmt.Errorf("%w: %d-bit", ErrBitDepth, depth)
	}
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("img: decode PNG: %w", err)
	}
	return FromStd(src)
}

func checkPNGModel(m color.Model) error {
	if _, ok := m.(color.Palette); ok {
		return ErrIndexedColor
	}
	switch m {
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model:
		return ErrBitDepth
	}
	return nil
}

// EncodePNG writes im as an 8-bit RGBA PNG.
func EncodePNG(w io.Writer, im *Image) error {
	if err := png.Encode(w, im.ToStd()); err != nil {
		return fmt.Errorf("img: encode PNG: %w", err)
	}
	return nil
}

// Decode decodes a PNG, JPEG, BMP, TIFF or WebP image, detecting the format
// from its content. PNG input follows the rules of DecodePNG.
func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("img: read: %w", err)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("img: decode: %w", err)
	}
	logging.Logger().Debug("img: decode", "format", format, "bytes", len(data))

	if format == "png" {
		return decodePNG(data)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("img: decode %s: %w", format, err)
	}
	return FromStd(src)
}

// Encode writes im in the named format: "png", "jpeg", "bmp" or "tiff".
func Encode(w io.Writer, im *Image, format string) error {
	var err error
	switch format {
	case "png":
		return EncodePNG(w, im)
	case "jpeg":
		err = jpeg.Encode(w, im.ToStd(), &jpeg.Options{Quality: JPEGQuality})
	case "bmp":
		err = bmp.Encode(w, im.ToStd())
	case "tiff":
		err = tiff.Encode(w, im.ToStd(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("img: encode %s: %w", format, err)
	}
	return nil
}

// FormatFromPath returns the format name for the extension of path.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads and decodes the image file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("img: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Save encodes im into the file at path, choosing the format from the
// file extension.
func Save(path string, im *Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("img: create file: %w", err)
	}

	if err := Encode(f, im, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
