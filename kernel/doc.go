// Package kernel provides the built-in neighborhood operators for
// lens.ApplyKernel: identity, weighted convolution (with Gaussian and mean
// presets), Sobel gradients and the two stages of the Kuwahara filter.
//
// Kernels are immutable once constructed and safe for concurrent use.
package kernel
