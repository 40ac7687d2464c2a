// Package primitive provides the validated geometry value types used by the
// image engine: [Size], [Point], [Offset], [Margin], [Area] and [Scale].
//
// Every constructor validates its input and returns a typed error instead of
// panicking, so values built from untrusted input (command-line flags, file
// headers) can be checked once at the boundary. Arithmetic such as
// [Point.Translate] or [Scale.ApplySize] re-validates its result and fails
// rather than wrapping or saturating.
//
// All types are small immutable values and are safe to copy and share
// between goroutines.
//
// # Partial order
//
// [Size], [Point] and [Scale] are ordered componentwise. Two values compare
// as [Less] only when both components are less than or equal, and as
// [Greater] only when both are greater than or equal. Mixed pairs such as
// (20, 10) and (10, 20) are [Incomparable].
package primitive
