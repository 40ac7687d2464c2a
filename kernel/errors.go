package kernel

import "errors"

var (
	// ErrWeightsLength is returned when a weight table does not match its window.
	ErrWeightsLength = errors.New("kernel: weights length does not match window area")

	// ErrSigma is returned for a non-positive or non-finite Gaussian sigma.
	ErrSigma = errors.New("kernel: sigma must be finite and positive")

	// ErrRadius is returned for a radius outside the kernel's accepted range.
	ErrRadius = errors.New("kernel: invalid radius")
)
