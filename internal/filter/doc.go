// Package filter builds the view chains behind img's image operations.
//
// Every filter takes a source view of pixels and returns a lazy view of the
// result; nothing is computed until the caller materializes it. Filters that
// need an intermediate snapshot (Canny, Kuwahara) take an Exec describing
// how to evaluate it.
//
// Filters provided:
//   - color: grayscale, sepia and negative as 4x5 color matrices, gamma via
//     a lookup table
//   - blur: mean and Gaussian convolution, shrinking the output by 2r
//   - geometry: crop and resize (nearest, bilinear, Catmull-Rom)
//   - detection: Canny edges
//   - painterly: Kuwahara
package filter
