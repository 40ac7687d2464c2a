// Package img is an image transformation engine built on lazily evaluated
// views.
//
// # Overview
//
// An [Image] is a flat, row-major buffer of 8-bit RGBA pixels. Operations do
// not touch the buffer directly: each one builds a chain of views (package
// lens) over the source and then materializes the chain into a new Image,
// either on the calling goroutine or split across workers.
//
// # Quick Start
//
//	im, err := img.Load("in.png")
//	if err != nil {
//		return err
//	}
//	out, err := img.BlurGaussian(im, 2, 3, pixel.RGB, img.WithWorkers(0))
//	if err != nil {
//		return err
//	}
//	return img.Save("out.png", out)
//
// # Architecture
//
// The module is organized into:
//   - primitive: sizes, points, margins, areas, scales
//   - pixel: the RGBA pixel and channel flags
//   - lens: views, combinators, kernels and materialization
//   - kernel: convolution, Gaussian, mean, Sobel and Kuwahara kernels
//   - img (this package): Image, codecs and the filter entry points
//
// # Coordinate System
//
// The origin (0,0) is the top-left pixel; X increases right and Y increases
// down.
package img
